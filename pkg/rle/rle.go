// Package rle reads and writes the run-length-encoded Life pattern format
// (§6 of the core specification), centering a pattern's declared bounding
// box on world coordinate (0, 0) and validating the header's rule token
// against B3/S23, the only rule this module supports (§1 Non-goals).
package rle

import (
	"fmt"
	"strconv"
	"strings"

	"hashlife/pkg/quadtree"
)

// Kind distinguishes where in an RLE document a ParseError occurred.
type Kind int

const (
	Header Kind = iota
	Body
)

func (k Kind) String() string {
	if k == Header {
		return "header"
	}
	return "body"
}

// ParseError reports a malformed RLE document. For Body errors, Pos is a
// byte offset into the text that follows the header line; Header errors
// always carry Pos 0.
type ParseError struct {
	Kind Kind
	Pos  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rle: %s error at byte %d: %s", e.Kind, e.Pos, e.Msg)
}

// Read parses an RLE document and builds a fresh Universe whose live cells
// match the pattern, centering the declared x/y bounding box on the
// origin (§8 Scenario 1 fixes a blinker's center column at x=0, not its
// NW corner). Comment lines beginning with '#' are ignored.
func Read(src string) (*quadtree.Universe, error) {
	lines := strings.Split(src, "\n")

	headerIdx := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		headerIdx = i
		break
	}
	if headerIdx == -1 {
		return nil, &ParseError{Kind: Header, Pos: 0, Msg: "empty document"}
	}

	width, height, err := parseHeader(lines[headerIdx])
	if err != nil {
		return nil, err
	}

	arena := quadtree.NewArena(nil)
	cache, err := quadtree.NewCache(0, nil)
	if err != nil {
		return nil, err
	}
	uni := quadtree.NewUniverse(arena, cache)

	x0, y0 := -width/2, -height/2
	body := strings.Join(lines[headerIdx+1:], "\n")
	if err := parseBody(body, uni, x0, y0); err != nil {
		return nil, err
	}
	return uni, nil
}

func parseHeader(line string) (width, height int64, err error) {
	fields := strings.Split(line, ",")
	haveX, haveY := false, false
	for _, f := range fields {
		kv := strings.SplitN(strings.TrimSpace(f), "=", 2)
		if len(kv) != 2 {
			return 0, 0, &ParseError{Kind: Header, Pos: 0, Msg: "malformed key=value pair: " + f}
		}
		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])
		switch key {
		case "x":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return 0, 0, &ParseError{Kind: Header, Pos: 0, Msg: "invalid x: " + val}
			}
			width = n
			haveX = true
		case "y":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return 0, 0, &ParseError{Kind: Header, Pos: 0, Msg: "invalid y: " + val}
			}
			height = n
			haveY = true
		case "rule":
			if !validRule(val) {
				return 0, 0, &ParseError{Kind: Header, Pos: 0, Msg: "unsupported rule: " + val}
			}
		default:
			return 0, 0, &ParseError{Kind: Header, Pos: 0, Msg: "unknown header field: " + key}
		}
	}
	if !haveX || !haveY {
		return 0, 0, &ParseError{Kind: Header, Pos: 0, Msg: "missing x or y"}
	}
	return width, height, nil
}

// validRule accepts "B3/S23" case-insensitively, and nothing else: the only
// rule this module implements (§1 Non-goals: no non-B3/S23 variants).
func validRule(s string) bool {
	s = strings.ToUpper(strings.TrimSpace(s))
	return s == "B3/S23"
}

func parseBody(src string, uni *quadtree.Universe, x0, y0 int64) error {
	x, y := x0, y0
	i := 0
	for {
		for i < len(src) && (src[i] == ' ' || src[i] == '\t' || src[i] == '\n' || src[i] == '\r') {
			i++
		}
		if i >= len(src) {
			return &ParseError{Kind: Body, Pos: i, Msg: "unexpected end of pattern, expected '!'"}
		}
		if src[i] == '#' {
			for i < len(src) && src[i] != '\n' {
				i++
			}
			continue
		}
		if src[i] == '!' {
			return nil
		}

		count := int64(1)
		if src[i] >= '0' && src[i] <= '9' {
			start := i
			for i < len(src) && src[i] >= '0' && src[i] <= '9' {
				i++
			}
			n, err := strconv.ParseInt(src[start:i], 10, 64)
			if err != nil {
				return &ParseError{Kind: Body, Pos: start, Msg: "invalid run count"}
			}
			count = n
			if i >= len(src) {
				return &ParseError{Kind: Body, Pos: i, Msg: "run count with no tag"}
			}
		}

		switch src[i] {
		case 'b':
			x += count
		case 'o':
			for k := int64(0); k < count; k++ {
				if err := uni.Set(x+k, y, true); err != nil {
					return err
				}
			}
			x += count
		case '$':
			x = x0
			y += count
		default:
			return &ParseError{Kind: Body, Pos: i, Msg: fmt.Sprintf("unexpected character %q", src[i])}
		}
		i++
	}
}

// Write emits the live region of u as an RLE document, reading every cell
// of its bounding box with Get. Grounded on
// `original_source/src/export.rs`'s write, simplified to favor clarity:
// the whole body is written on one line, and trailing dead cells of a row
// are omitted.
func Write(u *quadtree.Universe) (string, error) {
	minX, minY, maxX, maxY, ok := u.BoundingBox()
	if !ok {
		return "x = 0, y = 0, rule = B3/S23\n!\n", nil
	}
	width := maxX - minX + 1
	height := maxY - minY + 1

	var b strings.Builder
	fmt.Fprintf(&b, "x = %d, y = %d, rule = B3/S23\n", width, height)

	for y := minY; y <= maxY; y++ {
		writeRow(&b, u, minX, maxX, y)
		if y < maxY {
			b.WriteByte('$')
		}
	}
	b.WriteByte('!')
	b.WriteByte('\n')
	return b.String(), nil
}

func writeRow(b *strings.Builder, u *quadtree.Universe, minX, maxX, y int64) {
	var run rune
	var count int64
	flush := func() {
		if count == 0 {
			return
		}
		if count > 1 {
			fmt.Fprintf(b, "%d", count)
		}
		b.WriteRune(run)
	}
	for x := minX; x <= maxX; x++ {
		tag := 'b'
		if u.Get(x, y) {
			tag = 'o'
		}
		if tag == run {
			count++
			continue
		}
		flush()
		run = tag
		count = 1
	}
	if run == 'o' {
		flush()
	}
}
