// Package pipeline drives a full load of an inspection export.
//
// A run splits the export into stage inputs and, inside one transaction,
// clears every table and executes the stages in dependency order:
// references, restaurants, restaurant contacts, inspections, violations.
// Each stage persists its output before the next one reads back the ids it
// needs, so lookups always see database-assigned identifiers. Any failure
// rolls the whole load back.
package pipeline
