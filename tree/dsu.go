package tree

// dsu is a disjoint-set-union structure with union by rank and path
// compression, grounded on the teacher's prim_kruskal.Kruskal DSU (there
// keyed by string vertex id; here specialized to dense int ids since
// Tree's vertex set is always [0,n)).
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

func (d *dsu) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}
	return u
}

// union merges the components of u and v, returning false if they were
// already in the same component (i.e. the edge {u,v} would close a cycle).
func (d *dsu) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}
	return true
}

// connected reports whether u and v are already in the same component,
// without merging components (find still compresses paths).
func (d *dsu) connected(u, v int) bool { return d.find(u) == d.find(v) }

// clone returns an independent copy, used by CanAddEdges to test a batch
// against a hypothetical copy without mutating the real structure.
func (d *dsu) clone() *dsu {
	c := &dsu{parent: append([]int(nil), d.parent...), rank: append([]int(nil), d.rank...)}
	return c
}
