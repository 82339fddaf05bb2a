// Package model defines the shared data types for statement extraction:
// page-space geometry, located table structures, classification labels,
// and the typed transaction records produced by the pipeline.
//
// All geometry is expressed in PDF point units (1/72 inch) with a top-left
// origin, matching the coordinate space the table locator reports and the
// space the page renderer maps to pixels.
package model
