package split

// clipToConvex clips the subject ring against a convex clip ring using
// Sutherland-Hodgman: the running output is filtered through the half-plane
// of each clip edge in turn. The subject may be concave; the clip ring must
// be convex and wound counterclockwise. The output ring may self-intersect
// when a cut creates a reentrant shape, which is the repairer's problem.
//
// If the running output empties at any clip edge the subject lies entirely
// outside that half-plane, and nil is returned immediately.
func clipToConvex(subject, clip Ring) Ring {
	output := subject
	cp1 := clip[len(clip)-1]
	for _, cp2 := range clip {
		if len(output) == 0 {
			return nil
		}
		input := output
		output = make(Ring, 0, len(input)+4)
		s := input[len(input)-1]
		for _, e := range input {
			if insideEdge(e, cp1, cp2) {
				if !insideEdge(s, cp1, cp2) {
					if p, ok := edgeIntersection(cp1, cp2, s, e); ok {
						output = append(output, p)
					}
				}
				output = append(output, e)
			} else if insideEdge(s, cp1, cp2) {
				if p, ok := edgeIntersection(cp1, cp2, s, e); ok {
					output = append(output, p)
				}
			}
			s = e
		}
		cp1 = cp2
	}
	if len(output) == 0 {
		return nil
	}
	return output
}

// insideEdge is the left-turn test: is p strictly left of the directed clip
// edge cp1->cp2? For a counterclockwise clip ring, left is inside.
func insideEdge(p, cp1, cp2 Point) bool {
	return cp2.Sub(cp1).Cross(p.Sub(cp1)) > 0
}

// edgeIntersection intersects the infinite lines through cp1->cp2 and s->e by
// the standard determinant formula. Parallel lines have a zero determinant
// and report no intersection.
func edgeIntersection(cp1, cp2, s, e Point) (Point, bool) {
	dc := cp1.Sub(cp2)
	dp := s.Sub(e)
	denom := dc.Cross(dp)
	if denom == 0 {
		return Point{}, false
	}
	n1 := cp1.X*cp2.Y - cp1.Y*cp2.X
	n2 := s.X*e.Y - s.Y*e.X
	return Point{
		X: (n1*dp.X - n2*dc.X) / denom,
		Y: (n1*dp.Y - n2*dc.Y) / denom,
	}, true
}
