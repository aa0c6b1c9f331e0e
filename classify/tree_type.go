package classify

import "github.com/lal-project/linarr/tree"

// Type is one of the structural tree shapes of spec.md §4.K.
type Type int

const (
	TypeEmpty Type = iota
	TypeSingleton
	TypeStar
	TypeQuasistar
	TypeBistar
	TypeLinear
	TypeCaterpillar
	TypeSpider
	TypeTwoLinear
	TypeUnknown
)

// String names a Type the way the teacher's own enum-to-string tables
// render their enums.
func (ty Type) String() string {
	switch ty {
	case TypeEmpty:
		return "empty"
	case TypeSingleton:
		return "singleton"
	case TypeStar:
		return "star"
	case TypeQuasistar:
		return "quasistar"
	case TypeBistar:
		return "bistar"
	case TypeLinear:
		return "linear"
	case TypeCaterpillar:
		return "caterpillar"
	case TypeSpider:
		return "spider"
	case TypeTwoLinear:
		return "two_linear"
	default:
		return "unknown"
	}
}

// TreeType classifies t by degree sequence and leaf-deletion tests, in
// order from most to least specific: a tree matching an earlier rule is
// never also reported under a later one.
func TreeType(t *tree.Tree) Type {
	n := t.NumVertices()
	switch {
	case n == 0:
		return TypeEmpty
	case n == 1:
		return TypeSingleton
	case n == 2:
		return TypeLinear
	}

	if isStar(t) {
		return TypeStar
	}
	if isQuasistar(t) {
		return TypeQuasistar
	}
	if isBistar(t) {
		return TypeBistar
	}
	if isPath(t) {
		return TypeLinear
	}
	if isCaterpillar(t) {
		return TypeCaterpillar
	}

	switch countDegreeAtLeast3(t) {
	case 1:
		return TypeSpider
	case 2:
		return TypeTwoLinear
	default:
		return TypeUnknown
	}
}

func countDegreeAtLeast3(t *tree.Tree) int {
	count := 0
	for v := 0; v < t.NumVertices(); v++ {
		if t.Degree(v) >= 3 {
			count++
		}
	}
	return count
}

// isStar reports whether exactly one vertex has degree n-1 and every
// other vertex has degree 1.
func isStar(t *tree.Tree) bool {
	n := t.NumVertices()
	centres := 0
	for v := 0; v < n; v++ {
		d := t.Degree(v)
		if d == n-1 {
			centres++
		} else if d != 1 {
			return false
		}
	}
	return centres == 1
}

// isQuasistar reports whether t is a star on n-1 vertices with one
// extra edge subdividing a single leaf edge: one vertex of degree n-2,
// one vertex of degree 2 adjacent to it, and n-2 leaves.
func isQuasistar(t *tree.Tree) bool {
	n := t.NumVertices()
	var centre, bridge int = -1, -1
	leaves := 0
	for v := 0; v < n; v++ {
		switch d := t.Degree(v); {
		case d == n-2:
			if centre != -1 {
				return false
			}
			centre = v
		case d == 2:
			if bridge != -1 {
				return false
			}
			bridge = v
		case d == 1:
			leaves++
		default:
			return false
		}
	}
	if centre == -1 || bridge == -1 {
		return false
	}
	return t.HasEdge(centre, bridge) && leaves == n-2
}

// isBistar reports whether t is a double star: two adjacent vertices of
// degree >1, every other vertex a leaf attached to one of them.
func isBistar(t *tree.Tree) bool {
	n := t.NumVertices()
	var centres []int
	for v := 0; v < n; v++ {
		if t.Degree(v) > 1 {
			centres = append(centres, v)
		}
	}
	if len(centres) != 2 {
		return false
	}
	return t.HasEdge(centres[0], centres[1])
}

// isPath reports whether t's degree sequence is exactly two 1s and
// (n-2) 2s — the linear (path) tree.
func isPath(t *tree.Tree) bool {
	ones := 0
	for v := 0; v < t.NumVertices(); v++ {
		switch t.Degree(v) {
		case 1:
			ones++
		case 2:
		default:
			return false
		}
	}
	return ones == 2
}

// isCaterpillar reports whether removing every current leaf from t
// leaves either nothing, a single vertex, or an induced path.
func isCaterpillar(t *tree.Tree) bool {
	n := t.NumVertices()
	removed := make([]bool, n)
	degree := make([]int, n)
	remaining := 0
	for v := 0; v < n; v++ {
		degree[v] = t.Degree(v)
		if degree[v] > 1 {
			remaining++
		} else {
			removed[v] = true
		}
	}
	if remaining <= 1 {
		return true
	}

	induced := make([]int, n)
	for v := 0; v < n; v++ {
		if removed[v] {
			continue
		}
		for _, nb := range t.Neighbors(v) {
			if !removed[nb] {
				induced[v]++
			}
		}
	}

	ones, twos := 0, 0
	for v := 0; v < n; v++ {
		if removed[v] {
			continue
		}
		switch induced[v] {
		case 1:
			ones++
		case 2:
			twos++
		default:
			return false
		}
	}
	return ones == 2 && twos == remaining-2
}
