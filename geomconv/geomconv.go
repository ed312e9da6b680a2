/*
 * SPDX-License-Identifier: Apache-2.0
 */

// Package geomconv bridges go-geom geometries and the GeoJSON document
// tree the transcoder works on, so WKB sources can feed the encoder and
// decoded documents can flow back out as WKB.
package geomconv

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"
)

// ErrUnsupportedGeometry is returned for geometry shapes or layouts the
// wire format cannot carry (measured layouts, unknown concrete types).
var ErrUnsupportedGeometry = errors.New("unsupported geometry")

// ToGeoJSON converts a go-geom geometry into its GeoJSON equivalent.
func ToGeoJSON(t geom.T) (*geojson.Geometry, error) {
	// Collections carry no layout of their own; children are checked as
	// they are converted.
	if gc, ok := t.(*geom.GeometryCollection); ok {
		children := make([]*geojson.Geometry, 0, gc.NumGeoms())
		for _, child := range gc.Geoms() {
			c, err := ToGeoJSON(child)
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
		return geojson.NewCollectionGeometry(children...), nil
	}

	if err := checkLayout(t.Layout()); err != nil {
		return nil, err
	}
	switch g := t.(type) {
	case *geom.Point:
		return geojson.NewPointGeometry(g.Coords()), nil
	case *geom.MultiPoint:
		return geojson.NewMultiPointGeometry(fromCoords1(g.Coords())...), nil
	case *geom.LineString:
		return geojson.NewLineStringGeometry(fromCoords1(g.Coords())), nil
	case *geom.MultiLineString:
		return geojson.NewMultiLineStringGeometry(fromCoords2(g.Coords())...), nil
	case *geom.Polygon:
		return geojson.NewPolygonGeometry(fromCoords2(g.Coords())), nil
	case *geom.MultiPolygon:
		return geojson.NewMultiPolygonGeometry(fromCoords3(g.Coords())...), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedGeometry, "%T", t)
}

// FromGeoJSON converts a GeoJSON geometry into its go-geom equivalent.
func FromGeoJSON(g *geojson.Geometry) (geom.T, error) {
	switch g.Type {
	case geojson.GeometryPoint:
		return geom.NewPoint(layoutFor(len(g.Point))).SetCoords(g.Point)
	case geojson.GeometryMultiPoint:
		return geom.NewMultiPoint(layoutOf(g.MultiPoint)).SetCoords(toCoords1(g.MultiPoint))
	case geojson.GeometryLineString:
		return geom.NewLineString(layoutOf(g.LineString)).SetCoords(toCoords1(g.LineString))
	case geojson.GeometryMultiLineString:
		var first [][]float64
		if len(g.MultiLineString) > 0 {
			first = g.MultiLineString[0]
		}
		return geom.NewMultiLineString(layoutOf(first)).SetCoords(toCoords2(g.MultiLineString))
	case geojson.GeometryPolygon:
		var first [][]float64
		if len(g.Polygon) > 0 {
			first = g.Polygon[0]
		}
		return geom.NewPolygon(layoutOf(first)).SetCoords(toCoords2(g.Polygon))
	case geojson.GeometryMultiPolygon:
		var first [][]float64
		if len(g.MultiPolygon) > 0 && len(g.MultiPolygon[0]) > 0 {
			first = g.MultiPolygon[0][0]
		}
		return geom.NewMultiPolygon(layoutOf(first)).SetCoords(toCoords3(g.MultiPolygon))
	case geojson.GeometryCollection:
		gc := geom.NewGeometryCollection()
		for _, child := range g.Geometries {
			c, err := FromGeoJSON(child)
			if err != nil {
				return nil, err
			}
			if err := gc.Push(c); err != nil {
				return nil, errors.Wrapf(ErrUnsupportedGeometry, "%v", err)
			}
		}
		return gc, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedGeometry, "%q", g.Type)
}

func checkLayout(l geom.Layout) error {
	if l != geom.XY && l != geom.XYZ {
		return errors.Wrapf(ErrUnsupportedGeometry, "layout %v", l)
	}
	return nil
}

// layoutFor maps a coordinate width to a layout; empty widths fall back to
// 2D, matching the wire format's default dimension.
func layoutFor(stride int) geom.Layout {
	if stride == 3 {
		return geom.XYZ
	}
	return geom.XY
}

func layoutOf(points [][]float64) geom.Layout {
	if len(points) > 0 {
		return layoutFor(len(points[0]))
	}
	return geom.XY
}

func toCoords1(points [][]float64) []geom.Coord {
	out := make([]geom.Coord, len(points))
	for i, p := range points {
		out[i] = p
	}
	return out
}

func toCoords2(lines [][][]float64) [][]geom.Coord {
	out := make([][]geom.Coord, len(lines))
	for i, l := range lines {
		out[i] = toCoords1(l)
	}
	return out
}

func toCoords3(polygons [][][][]float64) [][][]geom.Coord {
	out := make([][][]geom.Coord, len(polygons))
	for i, p := range polygons {
		out[i] = toCoords2(p)
	}
	return out
}

func fromCoords1(coords []geom.Coord) [][]float64 {
	out := make([][]float64, len(coords))
	for i, c := range coords {
		out[i] = c
	}
	return out
}

func fromCoords2(coords [][]geom.Coord) [][][]float64 {
	out := make([][][]float64, len(coords))
	for i, c := range coords {
		out[i] = fromCoords1(c)
	}
	return out
}

func fromCoords3(coords [][][]geom.Coord) [][][][]float64 {
	out := make([][][][]float64, len(coords))
	for i, c := range coords {
		out[i] = fromCoords2(c)
	}
	return out
}
