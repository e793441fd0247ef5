// Package geoio converts between GeoJSON documents and the splitter's rings,
// including the web-mercator round trip: GeoJSON coordinates are geographic
// (WGS84), which is not an equal-area-consistent system, so polygons are
// reprojected to EPSG:3857 before splitting and the slices are reprojected
// back afterward.
package geoio

import (
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"
	"github.com/pkg/errors"

	"github.com/supardi98/ngesplit/split"
)

// DecodeRings extracts the exterior ring of every polygonal geometry in a
// GeoJSON document. The document may be a FeatureCollection, a single
// Feature, or a bare Geometry. A MultiPolygon contributes its first polygon's
// exterior; non-polygonal geometries are skipped.
func DecodeRings(data []byte) ([]split.Ring, error) {
	geoms, err := decodeGeometries(data)
	if err != nil {
		return nil, err
	}
	var rings []split.Ring
	for _, g := range geoms {
		switch geom := g.(type) {
		case orb.Polygon:
			if len(geom) > 0 {
				rings = append(rings, fromOrbRing(geom[0]))
			}
		case orb.MultiPolygon:
			if len(geom) > 0 && len(geom[0]) > 0 {
				rings = append(rings, fromOrbRing(geom[0][0]))
			}
		}
	}
	if len(rings) == 0 {
		return nil, errors.New("no polygon geometries in input")
	}
	return rings, nil
}

func decodeGeometries(data []byte) ([]orb.Geometry, error) {
	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil {
		geoms := make([]orb.Geometry, 0, len(fc.Features))
		for _, f := range fc.Features {
			if f.Geometry != nil {
				geoms = append(geoms, f.Geometry)
			}
		}
		return geoms, nil
	}
	if f, err := geojson.UnmarshalFeature(data); err == nil && f.Geometry != nil {
		return []orb.Geometry{f.Geometry}, nil
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode geojson")
	}
	return []orb.Geometry{g.Geometry()}, nil
}

// EncodeResults marshals split results to a GeoJSON FeatureCollection, one
// feature per slice, tagged with its sequence number. Single-ring slices
// become Polygons; severed slices become MultiPolygons.
func EncodeResults(results []split.Result) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	part := 0
	for _, res := range results {
		for _, slice := range res {
			var f *geojson.Feature
			switch slice.Kind() {
			case split.EmptySlice:
				continue
			case split.SingleRing:
				f = geojson.NewFeature(orb.Polygon{toOrbRing(slice.Rings[0])})
			default:
				mp := make(orb.MultiPolygon, 0, len(slice.Rings))
				for _, r := range slice.Rings {
					mp = append(mp, orb.Polygon{toOrbRing(r)})
				}
				f = geojson.NewFeature(mp)
			}
			f.Properties = geojson.Properties{"part": part}
			fc.Append(f)
			part++
		}
	}
	data, err := json.Marshal(fc)
	if err != nil {
		return nil, errors.Wrap(err, "encode geojson")
	}
	return data, nil
}

// ToMercator reprojects a WGS84 ring to EPSG:3857 meters.
func ToMercator(r split.Ring) split.Ring {
	out := make(split.Ring, len(r))
	for i, p := range r {
		q := project.WGS84.ToMercator(orb.Point{p.X, p.Y})
		out[i] = split.Point{X: q[0], Y: q[1]}
	}
	return out
}

// FromMercator reprojects every ring of every slice back to WGS84 in place.
func FromMercator(res split.Result) split.Result {
	for _, slice := range res {
		for _, r := range slice.Rings {
			for i, p := range r {
				q := project.Mercator.ToWGS84(orb.Point{p.X, p.Y})
				r[i] = split.Point{X: q[0], Y: q[1]}
			}
		}
	}
	return res
}

// toOrbRing closes the ring and orients it counterclockwise, which is what
// GeoJSON consumers expect of an exterior ring.
func toOrbRing(r split.Ring) orb.Ring {
	if r.IsClockwise() {
		r = r.Reverse()
	}
	out := make(orb.Ring, 0, len(r)+1)
	for _, p := range r {
		out = append(out, orb.Point{p.X, p.Y})
	}
	if len(out) > 0 && out[0] != out[len(out)-1] {
		out = append(out, out[0])
	}
	return out
}

func fromOrbRing(r orb.Ring) split.Ring {
	out := make(split.Ring, 0, len(r))
	for _, p := range r {
		out = append(out, split.Point{X: p[0], Y: p[1]})
	}
	return out
}
