// Package render turns a read-only grid.Grid and a resolved theme.Theme
// into a deterministic SVG document: background color regions are traced
// into polygons, text is emitted as clustered <tspan> runs, and an
// optional window-chrome frame wraps the result.
package render

// Point is an integer cell-boundary coordinate: (0,0) is the top-left
// corner of the grid, (cols,rows) the bottom-right.
type Point struct{ X, Y int }

// Contour is a closed polygon as an open point list (first != last); the
// caller closes it with SVG's "Z".
type Contour []Point

// Shape is one traced region: a group key (its resolved background
// color) and the contour(s) that bound it — more than one when the
// region has holes.
type Shape[K comparable] struct {
	Key  K
	Path []Contour
}

// GroupFunc returns the group key for a grid cell, or ok=false if the
// cell belongs to no group (the default background, skipped entirely).
type GroupFunc[K comparable] func(x, y int) (key K, ok bool)

// Trace clusters a cols x rows grid of cells by GroupFunc into
// same-colored regions and traces each region's boundary into one or
// more closed contours (an outer boundary plus holes).
func Trace[K comparable](cols, rows int, group GroupFunc[K]) []Shape[K] {
	clusters := findClusters(cols, rows, group)
	shapes := make([]Shape[K], 0, len(clusters))
	for _, cl := range clusters {
		mask := newMask(cols, rows)
		for _, p := range cl.cells {
			mask.set(p.X, p.Y, true)
		}
		contours := extractContours(mask)
		contours = reorientContours(contours)
		path := make([]Contour, len(contours))
		for i, c := range contours {
			path[i] = optimizeContour(c)
		}
		shapes = append(shapes, Shape[K]{Key: cl.key, Path: path})
	}
	return shapes
}

type mask struct {
	cols, rows int
	data       []bool
}

func newMask(cols, rows int) *mask {
	return &mask{cols: cols, rows: rows, data: make([]bool, cols*rows)}
}

func (m *mask) get(x, y int) bool {
	if x < 0 || x >= m.cols || y < 0 || y >= m.rows {
		return false
	}
	return m.data[y*m.cols+x]
}

func (m *mask) set(x, y int, v bool) { m.data[y*m.cols+x] = v }

type cluster[K comparable] struct {
	key   K
	cells []Point
}

// findClusters performs 4-connected BFS over the grid, grouping cells
// that share a group key into clusters, in row-major scan order so
// output is deterministic.
func findClusters[K comparable](cols, rows int, group GroupFunc[K]) []cluster[K] {
	visited := newMask(cols, rows)
	var clusters []cluster[K]

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if visited.get(x, y) {
				continue
			}
			key, ok := group(x, y)
			if !ok {
				visited.set(x, y, true)
				continue
			}

			var cells []Point
			queue := []Point{{x, y}}
			visited.set(x, y, true)

			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				cells = append(cells, p)

				for _, d := range [4]Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} {
					nx, ny := p.X+d.X, p.Y+d.Y
					if nx < 0 || nx >= cols || ny < 0 || ny >= rows || visited.get(nx, ny) {
						continue
					}
					if nk, nok := group(nx, ny); nok && nk == key {
						visited.set(nx, ny, true)
						queue = append(queue, Point{nx, ny})
					}
				}
			}

			clusters = append(clusters, cluster[K]{key: key, cells: cells})
		}
	}
	return clusters
}

type segment struct{ from, to Point }

// extractBoundarySegments emits each true cell's four edges as a
// directed segment wherever the neighbor on that side is false or
// off-grid, oriented so that a cell at (x,y) covers corners (x,y) to
// (x+1,y+1) and segments chain into clockwise loops.
func extractBoundarySegments(m *mask) []segment {
	var segs []segment
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			if !m.get(x, y) {
				continue
			}
			if !m.get(x, y-1) {
				segs = append(segs, segment{Point{x, y}, Point{x + 1, y}})
			}
			if !m.get(x+1, y) {
				segs = append(segs, segment{Point{x + 1, y}, Point{x + 1, y + 1}})
			}
			if !m.get(x, y+1) {
				segs = append(segs, segment{Point{x + 1, y + 1}, Point{x, y + 1}})
			}
			if !m.get(x-1, y) {
				segs = append(segs, segment{Point{x, y + 1}, Point{x, y}})
			}
		}
	}
	return segs
}

// groupSegmentsIntoContours chains segments by matching endpoints into
// closed loops, merging consecutive collinear points as it goes.
func groupSegmentsIntoContours(segs []segment) []Contour {
	byStart := make(map[Point][]segment, len(segs))
	starts := make([]Point, 0, len(segs))
	for _, s := range segs {
		if _, seen := byStart[s.from]; !seen {
			starts = append(starts, s.from)
		}
		byStart[s.from] = append(byStart[s.from], s)
	}

	var contours []Contour
	for _, start := range starts {
		for len(byStart[start]) > 0 {
			contour := Contour{start}
			current := start
			for {
				bucket := byStart[current]
				if len(bucket) == 0 {
					break
				}
				next := bucket[0].to
				byStart[current] = bucket[1:]

				if len(contour) >= 2 {
					a := contour[len(contour)-2]
					b := contour[len(contour)-1]
					c := next
					collinear := (a.X == b.X && b.X == c.X) || (a.Y == b.Y && b.Y == c.Y)
					if collinear {
						contour = contour[:len(contour)-1]
					}
				}
				contour = append(contour, next)
				current = next
				if current == start {
					break
				}
			}
			contours = append(contours, contour)
		}
	}
	return contours
}

func extractContours(m *mask) []Contour {
	return groupSegmentsIntoContours(extractBoundarySegments(m))
}

// signedArea returns twice the signed area of a closed contour (last
// point implicitly connects back to the first). Positive means
// clockwise in this coordinate system (y grows downward).
func signedArea(c Contour) int {
	if len(c) < 2 {
		return 0
	}
	area2 := 0
	for i := 0; i < len(c); i++ {
		p1 := c[i]
		p2 := c[(i+1)%len(c)]
		area2 += p1.X*p2.Y - p1.Y*p2.X
	}
	return area2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func reverse(c Contour) Contour {
	out := make(Contour, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}

// reorientContours forces the contour with the largest absolute area
// (the outer boundary) clockwise and every other contour (a hole)
// counterclockwise.
func reorientContours(contours []Contour) []Contour {
	if len(contours) == 0 {
		return contours
	}

	outer, maxArea := 0, 0
	for i, c := range contours {
		if a := abs(signedArea(c)); a > maxArea {
			maxArea, outer = a, i
		}
	}

	out := make([]Contour, len(contours))
	copy(out, contours)
	if signedArea(out[outer]) < 0 {
		out[outer] = reverse(out[outer])
	}
	for i := range out {
		if i == outer {
			continue
		}
		if signedArea(out[i]) > 0 {
			out[i] = reverse(out[i])
		}
	}
	return out
}

// optimizeContour drops the duplicate closing point (the chainer
// produces a closed contour whose first and last point coincide) and
// removes any vertex strictly collinear with both neighbors, unless the
// contour is exactly a rectangle (4 points), which is always kept as-is.
func optimizeContour(c Contour) Contour {
	if len(c) >= 2 && c[0] == c[len(c)-1] {
		c = c[:len(c)-1]
	}
	if len(c) == 4 || len(c) < 3 {
		return c
	}

	n := len(c)
	optimized := make(Contour, 0, n)
	for i := 0; i < n; i++ {
		prev := c[(i+n-1)%n]
		curr := c[i]
		next := c[(i+1)%n]
		if (prev.X == curr.X && curr.X == next.X) || (prev.Y == curr.Y && curr.Y == next.Y) {
			continue
		}
		optimized = append(optimized, curr)
	}
	return optimized
}
