// Package tables locates ruled statement tables on a page from the
// horizontal and vertical line segments drawn in its content stream.
//
// Bank statements draw every table with full ruled borders, so the grid
// geometry alone defines the cells: aligned horizontal rules become row
// boundaries, aligned vertical rules become column boundaries, and a
// large vertical gap between rules separates one table from the next.
// Rows crossed by no interior vertical rule, such as section title bands,
// come back as a single full-width cell.
package tables
