package tables

import (
	"math"
	"sort"

	"github.com/GermanMF/table-reader-bank/model"
)

// Locator finds ruled tables given the line segments of one page.
type Locator interface {
	LocateTables(lines []model.Line) []*model.Table
}

// GridOptions tunes grid reconstruction.
type GridOptions struct {
	// AlignmentTolerance groups rules into one boundary when their
	// positions differ by at most this many points.
	AlignmentTolerance float64

	// MinLineLength drops decorative hairlines shorter than this.
	MinLineLength float64

	// MaxRowGap splits the page into separate tables where consecutive
	// horizontal boundaries sit further apart than this.
	MaxRowGap float64

	// SpanTolerance is the slack allowed when testing whether a vertical
	// rule covers a row band.
	SpanTolerance float64
}

// DefaultGridOptions returns settings calibrated for 300dpi statement
// geometry expressed in page points.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		AlignmentTolerance: 3.0,
		MinLineLength:      10.0,
		MaxRowGap:          50.0,
		SpanTolerance:      3.0,
	}
}

// GridLocator reconstructs tables from ruled lines.
type GridLocator struct {
	Options GridOptions
}

// NewGridLocator creates a locator with default options.
func NewGridLocator() *GridLocator {
	return &GridLocator{Options: DefaultGridOptions()}
}

// span is one covered interval on a boundary's perpendicular axis.
type span struct {
	lo, hi float64
}

// boundary is one grid axis position together with the intervals its rules
// cover. Stacked tables often share column positions, so coverage must stay
// per-segment: a rule belonging to the next table down must not cut cells
// in this one.
type boundary struct {
	Position float64
	spans    []span
	count    int
}

// covers reports whether a single rule on this boundary runs the full
// [lo, hi] interval, within tolerance.
func (b boundary) covers(lo, hi, tol float64) bool {
	for _, s := range b.spans {
		if s.lo <= lo+tol && s.hi >= hi-tol {
			return true
		}
	}
	return false
}

// overlaps reports whether any rule on this boundary touches [lo, hi].
func (b boundary) overlaps(lo, hi, tol float64) bool {
	for _, s := range b.spans {
		if s.lo <= hi+tol && s.hi >= lo-tol {
			return true
		}
	}
	return false
}

// LocateTables groups the page's ruled lines into tables, top to bottom.
func (gl *GridLocator) LocateTables(lines []model.Line) []*model.Table {
	var horizontals, verticals []model.Line
	for _, ln := range lines {
		if ln.Length() < gl.Options.MinLineLength {
			continue
		}
		switch {
		case ln.IsHorizontal(gl.Options.AlignmentTolerance):
			horizontals = append(horizontals, ln)
		case ln.IsVertical(gl.Options.AlignmentTolerance):
			verticals = append(verticals, ln)
		}
	}

	hBounds := gl.groupBoundaries(horizontals, true)
	vBounds := gl.groupBoundaries(verticals, false)
	if len(hBounds) < 2 || len(vBounds) < 2 {
		return nil
	}

	var out []*model.Table
	for _, cluster := range gl.splitClusters(hBounds) {
		if tbl := gl.buildTable(cluster, vBounds); tbl != nil {
			out = append(out, tbl)
		}
	}
	return out
}

// groupBoundaries merges rules aligned within tolerance into single axis
// boundaries. Horizontal rules group on Y, vertical rules on X; the
// returned boundaries are sorted by position.
func (gl *GridLocator) groupBoundaries(lines []model.Line, horizontal bool) []boundary {
	if len(lines) == 0 {
		return nil
	}

	sort.Slice(lines, func(i, j int) bool {
		return gl.axisPosition(lines[i], horizontal) < gl.axisPosition(lines[j], horizontal)
	})

	var groups []boundary
	cur := gl.newBoundary(lines[0], horizontal)
	for _, ln := range lines[1:] {
		pos := gl.axisPosition(ln, horizontal)
		if pos-cur.Position <= gl.Options.AlignmentTolerance {
			cur.Position = (cur.Position*float64(cur.count) + pos) / float64(cur.count+1)
			cur.count++
			lo, hi := gl.extent(ln, horizontal)
			cur.spans = append(cur.spans, span{lo: lo, hi: hi})
		} else {
			cur.spans = mergeSpans(cur.spans, gl.Options.AlignmentTolerance)
			groups = append(groups, cur)
			cur = gl.newBoundary(ln, horizontal)
		}
	}
	cur.spans = mergeSpans(cur.spans, gl.Options.AlignmentTolerance)
	return append(groups, cur)
}

func (gl *GridLocator) newBoundary(ln model.Line, horizontal bool) boundary {
	lo, hi := gl.extent(ln, horizontal)
	return boundary{
		Position: gl.axisPosition(ln, horizontal),
		spans:    []span{{lo: lo, hi: hi}},
		count:    1,
	}
}

// mergeSpans joins intervals that overlap or nearly touch, so a rule drawn
// as several strokes still covers a full row band.
func mergeSpans(spans []span, tol float64) []span {
	if len(spans) < 2 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })

	out := spans[:1]
	for _, s := range spans[1:] {
		last := &out[len(out)-1]
		if s.lo <= last.hi+tol {
			last.hi = math.Max(last.hi, s.hi)
		} else {
			out = append(out, s)
		}
	}
	return out
}

func (gl *GridLocator) axisPosition(ln model.Line, horizontal bool) float64 {
	if horizontal {
		return (ln.Start.Y + ln.End.Y) / 2
	}
	return (ln.Start.X + ln.End.X) / 2
}

func (gl *GridLocator) extent(ln model.Line, horizontal bool) (lo, hi float64) {
	if horizontal {
		return math.Min(ln.Start.X, ln.End.X), math.Max(ln.Start.X, ln.End.X)
	}
	return math.Min(ln.Start.Y, ln.End.Y), math.Max(ln.Start.Y, ln.End.Y)
}

// splitClusters breaks the sorted horizontal boundaries into runs where
// consecutive positions stay within MaxRowGap. Each run is one table
// candidate.
func (gl *GridLocator) splitClusters(hBounds []boundary) [][]boundary {
	var clusters [][]boundary
	start := 0
	for i := 1; i < len(hBounds); i++ {
		if hBounds[i].Position-hBounds[i-1].Position > gl.Options.MaxRowGap {
			clusters = append(clusters, hBounds[start:i])
			start = i
		}
	}
	return append(clusters, hBounds[start:])
}

// buildTable assembles cell geometry for one cluster of horizontal
// boundaries. Column boundaries are the vertical rules whose extent
// overlaps the cluster band; a vertical rule contributes a cell edge only
// in the rows it actually crosses, so uncrossed rows merge into wider
// cells with nil slots for the covered columns.
func (gl *GridLocator) buildTable(hBounds []boundary, vBounds []boundary) *model.Table {
	if len(hBounds) < 2 {
		return nil
	}
	top := hBounds[0].Position
	bottom := hBounds[len(hBounds)-1].Position

	var cols []boundary
	for _, v := range vBounds {
		if v.overlaps(top, bottom, gl.Options.SpanTolerance) {
			cols = append(cols, v)
		}
	}
	if len(cols) < 2 {
		return nil
	}

	tbl := &model.Table{
		BBox: model.NewBBox(cols[0].Position, top, cols[len(cols)-1].Position, bottom),
	}

	tol := gl.Options.SpanTolerance
	for i := 0; i+1 < len(hBounds); i++ {
		rowTop := hBounds[i].Position
		rowBottom := hBounds[i+1].Position

		// Indices of column boundaries that cross this row band. The
		// outer borders always count so every row closes on both sides.
		var crossing []int
		for j, c := range cols {
			if j == 0 || j == len(cols)-1 || c.covers(rowTop, rowBottom, tol) {
				crossing = append(crossing, j)
			}
		}

		row := model.Row{Cells: make([]*model.BBox, len(cols)-1)}
		for k := 0; k+1 < len(crossing); k++ {
			cell := model.NewBBox(cols[crossing[k]].Position, rowTop, cols[crossing[k+1]].Position, rowBottom)
			row.Cells[crossing[k]] = &cell
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl
}
