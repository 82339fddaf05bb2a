package render

import (
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/GermanMF/table-reader-bank/model"
)

// PageLines returns the straight path segments drawn on a page, converted
// to top-left-origin point coordinates. Rectangles contribute their four
// edges; curves are skipped. The statement draws its table rules in default
// user space, so the current transformation matrix is not tracked.
func (d *Document) PageLines(pageNr int) ([]model.Line, error) {
	if pageNr < 1 || pageNr > d.ctx.PageCount {
		return nil, fmt.Errorf("page number %d out of range [1, %d]", pageNr, d.ctx.PageCount)
	}

	content, err := d.pageContent(pageNr)
	if err != nil {
		return nil, err
	}

	pageHeight := d.sizes[pageNr-1].height
	raw := scanSegments(content)

	lines := make([]model.Line, 0, len(raw))
	for _, seg := range raw {
		// Flip from PDF bottom-origin to the top-origin space the
		// locator and renderer share.
		lines = append(lines, model.Line{
			Start: model.Point{X: seg.Start.X, Y: pageHeight - seg.Start.Y},
			End:   model.Point{X: seg.End.X, Y: pageHeight - seg.End.Y},
		})
	}
	return lines, nil
}

// pageContent concatenates a page's decoded content streams.
func (d *Document) pageContent(pageNr int) ([]byte, error) {
	pageDict, _, _, err := d.ctx.PageDict(pageNr, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get page dict: %w", err)
	}

	contents, found := pageDict.Find("Contents")
	if !found || contents == nil {
		return nil, nil
	}

	var out []byte
	appendStream := func(obj types.Object) error {
		sd, _, err := d.ctx.DereferenceStreamDict(obj)
		if err != nil || sd == nil {
			return err
		}
		if err := sd.Decode(); err != nil {
			return fmt.Errorf("failed to decode content stream: %w", err)
		}
		out = append(out, sd.Content...)
		out = append(out, '\n')
		return nil
	}

	resolved, err := d.ctx.Dereference(contents)
	if err != nil {
		return nil, err
	}

	if arr, ok := resolved.(types.Array); ok {
		for _, elem := range arr {
			if err := appendStream(elem); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	if err := appendStream(contents); err != nil {
		return nil, err
	}
	return out, nil
}

// scanSegments walks a content stream's path construction operators and
// collects straight segments in PDF user space. Only the operators the
// statement's rule drawing uses are interpreted: m, l, re, and h. Curve
// operators move the current point without emitting a segment.
func scanSegments(content []byte) []model.Line {
	var (
		segs     []model.Line
		operands []float64
		cur      model.Point
		start    model.Point
		havePt   bool
	)

	take := func(n int) []float64 {
		if len(operands) < n {
			return nil
		}
		return operands[len(operands)-n:]
	}

	tok := newTokenizer(content)
	for {
		token, ok := tok.next()
		if !ok {
			break
		}

		if v, err := strconv.ParseFloat(token, 64); err == nil {
			operands = append(operands, v)
			continue
		}

		switch token {
		case "m":
			if ops := take(2); ops != nil {
				cur = model.Point{X: ops[0], Y: ops[1]}
				start = cur
				havePt = true
			}
		case "l":
			if ops := take(2); ops != nil && havePt {
				next := model.Point{X: ops[0], Y: ops[1]}
				segs = append(segs, model.Line{Start: cur, End: next})
				cur = next
			}
		case "re":
			if ops := take(4); ops != nil {
				x, y, w, h := ops[0], ops[1], ops[2], ops[3]
				segs = append(segs,
					model.Line{Start: model.Point{X: x, Y: y}, End: model.Point{X: x + w, Y: y}},
					model.Line{Start: model.Point{X: x, Y: y + h}, End: model.Point{X: x + w, Y: y + h}},
					model.Line{Start: model.Point{X: x, Y: y}, End: model.Point{X: x, Y: y + h}},
					model.Line{Start: model.Point{X: x + w, Y: y}, End: model.Point{X: x + w, Y: y + h}},
				)
			}
		case "h":
			if havePt {
				segs = append(segs, model.Line{Start: cur, End: start})
				cur = start
			}
		case "c":
			if ops := take(2); ops != nil {
				cur = model.Point{X: ops[0], Y: ops[1]}
			}
		case "v", "y":
			if ops := take(2); ops != nil {
				cur = model.Point{X: ops[0], Y: ops[1]}
			}
		}
		operands = operands[:0]
	}

	return segs
}

// tokenizer splits a content stream into operand and operator tokens,
// skipping string literals, hex strings, names, dictionaries, and comments.
type tokenizer struct {
	data []byte
	pos  int
}

func newTokenizer(data []byte) *tokenizer {
	return &tokenizer{data: data}
}

func (t *tokenizer) next() (string, bool) {
	for t.pos < len(t.data) {
		b := t.data[t.pos]
		switch {
		case isWhitespace(b):
			t.pos++
		case b == '%':
			t.skipComment()
		case b == '(':
			t.skipStringLiteral()
		case b == '<':
			t.skipAngle()
		case b == '/':
			t.skipName()
		case b == '[' || b == ']' || b == '{' || b == '}' || b == '>':
			t.pos++
		default:
			return t.readToken(), true
		}
	}
	return "", false
}

func (t *tokenizer) readToken() string {
	begin := t.pos
	for t.pos < len(t.data) && !isWhitespace(t.data[t.pos]) && !isDelimiter(t.data[t.pos]) {
		t.pos++
	}
	if t.pos == begin {
		t.pos++ // lone delimiter, consume it
	}
	return string(t.data[begin:t.pos])
}

func (t *tokenizer) skipComment() {
	for t.pos < len(t.data) && t.data[t.pos] != '\n' {
		t.pos++
	}
}

func (t *tokenizer) skipStringLiteral() {
	depth := 0
	for t.pos < len(t.data) {
		switch t.data[t.pos] {
		case '\\':
			t.pos++ // skip escaped char
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				t.pos++
				return
			}
		}
		t.pos++
	}
}

func (t *tokenizer) skipAngle() {
	// "<<" opens a dictionary; "<" opens a hex string.
	if t.pos+1 < len(t.data) && t.data[t.pos+1] == '<' {
		t.pos += 2
		return
	}
	for t.pos < len(t.data) && t.data[t.pos] != '>' {
		t.pos++
	}
	if t.pos < len(t.data) {
		t.pos++
	}
}

func (t *tokenizer) skipName() {
	t.pos++
	for t.pos < len(t.data) && !isWhitespace(t.data[t.pos]) && !isDelimiter(t.data[t.pos]) {
		t.pos++
	}
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\f' || b == 0
}

func isDelimiter(b byte) bool {
	switch b {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}
