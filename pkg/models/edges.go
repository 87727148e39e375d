package models

// edgeSet collects unique undirected edges.
type edgeSet struct {
	seen  map[[2]int]struct{}
	edges [][]int
}

func newEdgeSet() *edgeSet {
	return &edgeSet{seen: make(map[[2]int]struct{})}
}

func (s *edgeSet) add(a, b int) {
	if a == b {
		return
	}
	key := [2]int{min(a, b), max(a, b)}
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.edges = append(s.edges, []int{a, b})
}

// triangleEdges returns the unique edges of the triangle list idx.
func triangleEdges(idx []int, base int) [][]int {
	s := newEdgeSet()
	for i := 0; i+2 < len(idx); i += 3 {
		a, b, c := base+idx[i], base+idx[i+1], base+idx[i+2]
		s.add(a, b)
		s.add(b, c)
		s.add(c, a)
	}
	return s.edges
}

// lineEdges returns one two-vertex edge per index pair.
func lineEdges(idx []int, base int) [][]int {
	var edges [][]int
	for i := 0; i+1 < len(idx); i += 2 {
		edges = append(edges, []int{base + idx[i], base + idx[i+1]})
	}
	return edges
}

// stripEdge returns idx as a single polyline, closed when loop is set.
func stripEdge(idx []int, base int, loop bool) [][]int {
	if len(idx) < 2 {
		return nil
	}
	edge := make([]int, 0, len(idx)+1)
	for _, i := range idx {
		edge = append(edge, base+i)
	}
	if loop && len(idx) > 2 {
		edge = append(edge, base+idx[0])
	}
	return [][]int{edge}
}

// sequence returns 0..n-1, used for non-indexed primitives.
func sequence(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
