package split

import "sort"

// repairRing converts a possibly self-intersecting ring produced by the
// clipper into zero or more simple rings. Sutherland-Hodgman connects
// disconnected pieces of a severed concave polygon with degenerate bridge
// edges running along the clip boundary; noding the ring at every
// self-intersection and re-extracting its simple loops dissolves those
// bridges into the separate pieces they join.
//
// The tagged outcome is carried by the returned slice: no rings (no area
// survived), a single ring, or multiple disjoint rings.
func repairRing(r Ring) Slice {
	r = r.dedupe()
	if len(r) < 3 {
		return Slice{}
	}
	// No area precheck here: a figure-eight's lobes have opposite winding and
	// cancel the raw shoelace sum, but each recovered loop still has area. The
	// loop filter below drops whatever really is flat.

	var rings []Ring
	for _, loop := range extractLoops(nodeRing(r)) {
		loop = loop.dedupe()
		if len(loop) >= 3 && loop.Area() > Tolerance {
			rings = append(rings, loop)
		}
	}
	if len(rings) == 0 {
		return Slice{}
	}
	return Slice{Rings: rings}
}

type edgeNode struct {
	t float64
	p Point
}

// nodeRing returns the ring's closed traversal with a vertex inserted at
// every self-intersection: proper crossings between non-adjacent edges,
// endpoints of one edge lying in the interior of another, and endpoints
// shared by collinear overlapping edges (the bridge case).
func nodeRing(r Ring) Ring {
	n := len(r)
	noded := make(Ring, 0, 2*n)
	for i := 0; i < n; i++ {
		a := r[i]
		b := r[CircularIndex(i+1, n)]
		ab := b.Sub(a)

		var nodes []edgeNode
		for j := 0; j < n; j++ {
			// Adjacent edges meet only at their shared vertex.
			if j == i || j == CircularIndex(i+1, n) || j == CircularIndex(i-1, n) {
				continue
			}
			c := r[j]
			d := r[CircularIndex(j+1, n)]
			cd := d.Sub(c)

			denom := ab.Cross(cd)
			if parallel(denom, ab, cd) {
				if !collinear(a, c, ab) {
					continue
				}
				// Overlapping collinear edges: node at the other edge's
				// endpoints where they fall inside this edge.
				for _, q := range []Point{c, d} {
					t := q.Sub(a).Dot(ab) / ab.Dot(ab)
					if interior(t) {
						nodes = append(nodes, edgeNode{t: t, p: q})
					}
				}
				continue
			}

			t := c.Sub(a).Cross(cd) / denom
			u := c.Sub(a).Cross(ab) / denom
			if u < -paramEps || u > 1+paramEps || !interior(t) {
				continue
			}
			nodes = append(nodes, edgeNode{t: t, p: a.Add(ab.Scale(t))})
		}

		sort.Slice(nodes, func(x, y int) bool { return nodes[x].t < nodes[y].t })
		noded = append(noded, a)
		for _, node := range nodes {
			last := noded[len(noded)-1]
			if samePoint(node.p, last) || samePoint(node.p, b) {
				continue
			}
			noded = append(noded, node.p)
		}
	}
	return noded
}

const paramEps = 1e-9

func interior(t float64) bool {
	return t > paramEps && t < 1-paramEps
}

func parallel(denom float64, ab, cd Vec) bool {
	scale := ab.Length() * cd.Length()
	return scale == 0 || denom > -1e-12*scale && denom < 1e-12*scale
}

func collinear(a, c Point, ab Vec) bool {
	ac := c.Sub(a)
	scale := ab.Length() * ac.Length()
	cross := ab.Cross(ac)
	return scale == 0 || cross > -1e-9*scale && cross < 1e-9*scale
}

// extractLoops walks a noded closed traversal and pinches off a simple loop
// every time a previously visited position reappears. Whatever remains after
// the walk is the final loop. A traversal with no repeated positions comes
// back unchanged as a single loop.
func extractLoops(noded Ring) []Ring {
	var loops []Ring
	path := make(Ring, 0, len(noded))
	for _, p := range noded {
		revisit := -1
		for i := len(path) - 1; i >= 0; i-- {
			if samePoint(path[i], p) {
				revisit = i
				break
			}
		}
		if revisit >= 0 {
			loop := append(Ring(nil), path[revisit:]...)
			if len(loop) >= 3 {
				loops = append(loops, loop)
			}
			path = path[:revisit]
		}
		path = append(path, p)
	}
	if len(path) >= 3 {
		loops = append(loops, path)
	}
	return loops
}
