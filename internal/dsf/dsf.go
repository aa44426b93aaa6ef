// source: https://git.tartarus.org/simon/puzzles.git/filling.c

// Package dsf implements a disjoint-set forest over integer indices
// with an auxiliary cyclic linkage per class. The linkage ("ring")
// threads together every member of a class, so any algorithm holding
// one member can walk the whole class in O(size) without keeping a
// separate container per class.
package dsf

import "iter"

type DSF struct {
	parent []int
	size   []int
	// next[i] closes a simple cycle over the members of i's class.
	// Merging two classes swaps the two next pointers at the join
	// point, splicing the cycles in O(1).
	next []int
}

func New(n int) *DSF {
	d := &DSF{
		parent: make([]int, n),
		size:   make([]int, n),
		next:   make([]int, n),
	}
	d.Reset()
	return d
}

func (d *DSF) Len() int {
	return len(d.parent)
}

// Reset returns every element to its own singleton class.
func (d *DSF) Reset() {
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
		d.next[i] = i
	}
}

// Canonify returns the representative of i's class, compressing the
// path along the way.
func (d *DSF) Canonify(i int) int {
	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[i] != root {
		d.parent[i], i = root, d.parent[i]
	}
	return root
}

// Size returns the number of elements in i's class.
func (d *DSF) Size(i int) int {
	return d.size[d.Canonify(i)]
}

// Joined reports whether a and b are in the same class.
func (d *DSF) Joined(a, b int) bool {
	return d.Canonify(a) == d.Canonify(b)
}

// Merge unites the classes of a and b. It is a no-op when they are
// already one class. The union-find forest and the ring are updated
// together; they always describe the same partition.
func (d *DSF) Merge(a, b int) {
	a = d.Canonify(a)
	b = d.Canonify(b)
	if a == b {
		return
	}
	if d.size[a] < d.size[b] {
		a, b = b, a
	}
	d.parent[b] = a
	d.size[a] += d.size[b]
	d.next[a], d.next[b] = d.next[b], d.next[a]
}

// Component iterates over every member of i's class, starting at i,
// by following the ring.
func (d *DSF) Component(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		j := i
		for {
			if !yield(j) {
				return
			}
			j = d.next[j]
			if j == i {
				return
			}
		}
	}
}

// OnRing reports whether start lies on the cycle its next pointer
// leads to (Floyd). A well-formed ring puts every element on its own
// cycle; tests use this to catch a partition/ring divergence.
func (d *DSF) OnRing(start int) bool {
	turtle, rabbit := start, d.next[start]
	for rabbit != turtle {
		turtle = d.next[turtle]
		rabbit = d.next[d.next[rabbit]]
	}
	for {
		rabbit = d.next[rabbit]
		if start == rabbit {
			return true
		}
		if rabbit == turtle {
			return false
		}
	}
}
