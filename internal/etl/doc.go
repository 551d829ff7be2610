// Package etl turns flat inspection rows into resolved entity records.
//
// Every stage is a pure function over its inputs. Lookup indices are built by
// the caller from already-persisted entities and passed in explicitly, so a
// stage only ever sees identifiers the database has assigned:
//
//	types := etl.TransformRestaurantTypes(labels)   // persist
//	idx, _ := etl.IndexRestaurantTypes(persisted)
//	rs, err := etl.TransformRestaurants(rows, idx)  // persist
//	...
//	vs, err := etl.TransformViolations(rows, snapshot)
//
// Stages must run in that order with each output persisted before the next
// index is built. Nothing here enforces it; internal/pipeline does.
//
// A row that references an unknown key, carries an unparseable date, or
// matches no single inspection fails the whole call. Nothing is skipped or
// defaulted.
package etl
