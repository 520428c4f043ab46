package textwarp

import "strconv"

// ParsePath tokenizes SVG-style path data into typed segments.
//
// The supported command set is M, L, C, Q, A and Z; lowercase commands take
// coordinates relative to the current point. Numeric tokens may be separated
// by whitespace or commas and may use exponent notation. As in SVG, a command
// letter may be followed by several argument groups, and extra groups after M
// are treated as line-tos.
//
// Elliptical arcs are approximated by a straight chord to the arc's declared
// end point. Z emits a closing line only when the current point is not
// already coincident with the subpath start.
//
// Unparseable or empty input yields an empty segment list; it is not an
// error. Downstream sampling substitutes a synthetic fallback line for such
// paths.
func ParsePath(data string) []PathSegment {
	var (
		segs    []PathSegment
		current Point
		start   Point
	)
	i := 0
	for i < len(data) {
		i = skipCommaWhitespace(data, i)
		if i >= len(data) {
			break
		}
		cmd := data[i]
		if !isPathCommand(cmd) {
			// Stray token; malformed input ends the parse with whatever
			// segments were recognized so far.
			break
		}
		i++
		rel := cmd >= 'a'
		switch cmd {
		case 'M', 'm':
			first := true
			for {
				pt, n, ok := scanPoint(data, i)
				if !ok {
					break
				}
				i = n
				if rel {
					pt = current.Translate(Vec2{pt.X, pt.Y})
				}
				if first {
					current = pt
					start = pt
					first = false
				} else {
					segs = append(segs, Line{current, pt}.Seg())
					current = pt
				}
			}
		case 'L', 'l':
			for {
				pt, n, ok := scanPoint(data, i)
				if !ok {
					break
				}
				i = n
				if rel {
					pt = current.Translate(Vec2{pt.X, pt.Y})
				}
				segs = append(segs, Line{current, pt}.Seg())
				current = pt
			}
		case 'Q', 'q':
			for {
				p1, n, ok := scanPoint(data, i)
				if !ok {
					break
				}
				p2, n2, ok := scanPoint(data, n)
				if !ok {
					break
				}
				i = n2
				if rel {
					p1 = current.Translate(Vec2{p1.X, p1.Y})
					p2 = current.Translate(Vec2{p2.X, p2.Y})
				}
				segs = append(segs, QuadBez{current, p1, p2}.Seg())
				current = p2
			}
		case 'C', 'c':
			for {
				p1, n, ok := scanPoint(data, i)
				if !ok {
					break
				}
				p2, n2, ok := scanPoint(data, n)
				if !ok {
					break
				}
				p3, n3, ok := scanPoint(data, n2)
				if !ok {
					break
				}
				i = n3
				if rel {
					p1 = current.Translate(Vec2{p1.X, p1.Y})
					p2 = current.Translate(Vec2{p2.X, p2.Y})
					p3 = current.Translate(Vec2{p3.X, p3.Y})
				}
				segs = append(segs, CubicBez{current, p1, p2, p3}.Seg())
				current = p3
			}
		case 'A', 'a':
			// rx ry x-axis-rotation large-arc-flag sweep-flag x y. Only the
			// end point matters: the arc is chorded.
			for {
				ok := true
				n := i
				for k := 0; k < 5; k++ {
					_, n, ok = scanNumber(data, n)
					if !ok {
						break
					}
				}
				if !ok {
					break
				}
				pt, n2, ok := scanPoint(data, n)
				if !ok {
					break
				}
				i = n2
				if rel {
					pt = current.Translate(Vec2{pt.X, pt.Y})
				}
				segs = append(segs, Line{current, pt}.Seg())
				current = pt
			}
		case 'Z', 'z':
			if current != start {
				segs = append(segs, Line{current, start}.Seg())
			}
			current = start
		}
	}
	return segs
}

func isPathCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'C', 'c', 'Q', 'q', 'A', 'a', 'Z', 'z':
		return true
	default:
		return false
	}
}

func skipCommaWhitespace(data string, i int) int {
	for i < len(data) {
		switch data[i] {
		case ' ', ',', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

// scanNumber scans a floating-point literal starting at i, skipping leading
// separators. It supports signs, decimal points and exponent notation.
func scanNumber(data string, i int) (float64, int, bool) {
	i = skipCommaWhitespace(data, i)
	j := i
	if j < len(data) && (data[j] == '+' || data[j] == '-') {
		j++
	}
	digits := false
	for j < len(data) && data[j] >= '0' && data[j] <= '9' {
		j++
		digits = true
	}
	if j < len(data) && data[j] == '.' {
		j++
		for j < len(data) && data[j] >= '0' && data[j] <= '9' {
			j++
			digits = true
		}
	}
	if !digits {
		return 0, i, false
	}
	if j < len(data) && (data[j] == 'e' || data[j] == 'E') {
		k := j + 1
		if k < len(data) && (data[k] == '+' || data[k] == '-') {
			k++
		}
		expDigits := false
		for k < len(data) && data[k] >= '0' && data[k] <= '9' {
			k++
			expDigits = true
		}
		if expDigits {
			j = k
		}
	}
	f, err := strconv.ParseFloat(data[i:j], 64)
	if err != nil {
		return 0, i, false
	}
	return f, j, true
}

// scanPoint scans an x, y coordinate pair.
func scanPoint(data string, i int) (Point, int, bool) {
	x, n, ok := scanNumber(data, i)
	if !ok {
		return Point{}, i, false
	}
	y, n2, ok := scanNumber(data, n)
	if !ok {
		return Point{}, i, false
	}
	return Pt(x, y), n2, true
}
