// Polygon area partitioning for Go.
//
// This package slices a single simple polygon into an ordered sequence of
// sub-polygons, either an exact count of equal-area parts or parts of a fixed
// target area with a final remainder. The polygon must be a closed boundary
// in a planar, equal-area-consistent projected coordinate system; reproject
// geographic coordinates first (the geoio package does this for GeoJSON).
package ngesplit

import "github.com/supardi98/ngesplit/split"

type Point = split.Point
type Ring = split.Ring
type Slice = split.Slice
type Result = split.Result
type Options = split.Options

// SplitByCount partitions the polygon boundary into exactly n equal-area
// slices. Degenerate input (fewer than 4 points, zero area) yields an empty
// result rather than an error.
func SplitByCount(points []Point, n int) Result {
	return split.SplitByCount(split.Ring(points), n)
}

// SplitByArea partitions the polygon boundary into slices of targetArea each,
// with the final slice absorbing the remainder.
func SplitByArea(points []Point, targetArea float64) Result {
	return split.SplitByArea(split.Ring(points), targetArea)
}
