package grid

import "github.com/matzehuels/navgrid/pkg/relation"

// unionFind resolves an original Line to the row that currently contains
// it. Parents point from absorbed handles to the handle of the merged row;
// roots are live rows.
type unionFind struct {
	parent []relation.Handle
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{parent: make([]relation.Handle, n)}
	for i := range u.parent {
		u.parent[i] = relation.Handle(i)
	}
	return u
}

// find returns the representative of h, compressing the path behind it.
func (u *unionFind) find(h relation.Handle) relation.Handle {
	root := h
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[h] != root {
		next := u.parent[h]
		u.parent[h] = root
		h = next
	}
	return root
}

// absorb records that a and b were merged into the new row into.
func (u *unionFind) absorb(a, b, into relation.Handle) {
	for relation.Handle(len(u.parent)) <= into {
		u.parent = append(u.parent, relation.Handle(len(u.parent)))
	}
	u.parent[a] = into
	u.parent[b] = into
}
