// Package extract reads inspection export files into etl rows and splits
// them into the inputs each transform stage expects.
//
// Source files are messy in predictable ways: a UTF-8 BOM from Excel on
// Windows, stray invalid bytes, title rows above the header, ="..." formula
// wrappers around codes, and trailing blank lines. ReadRows deals with all of
// them before any row reaches the transformers.
package extract
