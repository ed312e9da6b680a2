/*
 * SPDX-License-Identifier: Apache-2.0
 */

package transcode

import (
	"github.com/golang/protobuf/proto"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"

	"github.com/geobufio/geobuf/codec"
	"github.com/geobufio/geobuf/protos/geobufpb"
)

var (
	// ErrMalformedInput is returned when bytes do not parse as the Geobuf
	// schema, before any domain-level validation runs.
	ErrMalformedInput = errors.New("malformed geobuf input")

	// ErrUnknownGeometryType is returned when a geometry record carries a
	// shape tag with no matching GeoJSON variant.
	ErrUnknownGeometryType = errors.New("unknown geometry type")
)

// Decode parses Geobuf wire bytes back into the document they encode.
// It never returns a partial document: the first violation aborts.
func Decode(buf []byte) (*Document, error) {
	data := &geobufpb.Data{}
	if err := proto.Unmarshal(buf, data); err != nil {
		return nil, errors.Wrapf(ErrMalformedInput, "%v", err)
	}

	precision := data.GetPrecision()
	dimension := int(data.GetDimensions())
	if err := codec.Validate(precision, dimension); err != nil {
		return nil, err
	}

	switch t := data.DataType.(type) {
	case *geobufpb.Data_FeatureCollection_:
		fc := geojson.NewFeatureCollection()
		for _, pf := range t.FeatureCollection.GetFeatures() {
			f, err := decodeFeature(data.Keys, pf, precision, dimension)
			if err != nil {
				return nil, err
			}
			fc.AddFeature(f)
		}
		return NewFeatureCollectionDocument(fc), nil

	case *geobufpb.Data_Feature_:
		f, err := decodeFeature(data.Keys, t.Feature, precision, dimension)
		if err != nil {
			return nil, err
		}
		return NewFeatureDocument(f), nil

	case *geobufpb.Data_Geometry_:
		g, err := decodeGeometry(t.Geometry, precision, dimension)
		if err != nil {
			return nil, err
		}
		return NewGeometryDocument(g), nil
	}
	return nil, errors.Wrap(ErrMalformedInput, "missing data type")
}

func decodeFeature(keys []string, pf *geobufpb.Data_Feature, precision uint32,
	dimension int) (*geojson.Feature, error) {

	var g *geojson.Geometry
	if pf.GetGeometry() != nil {
		var err error
		g, err = decodeGeometry(pf.GetGeometry(), precision, dimension)
		if err != nil {
			return nil, err
		}
	}
	f := geojson.NewFeature(g)

	switch id := pf.GetIdType().(type) {
	case *geobufpb.Data_Feature_Id:
		f.ID = id.Id
	case *geobufpb.Data_Feature_IntId:
		// Numbers in the JSON-like document tree are float64; the encoder
		// only emits int ids small enough to survive the conversion.
		f.ID = float64(id.IntId)
	}

	props, err := decodeProperties(keys, pf.GetValues(), pf.GetProperties())
	if err != nil {
		return nil, err
	}
	f.Properties = props
	return f, nil
}

// decodeGeometry is the inverse of encodeGeometry.
func decodeGeometry(pg *geobufpb.Data_Geometry, precision uint32,
	dimension int) (*geojson.Geometry, error) {

	if pg.GetType() == geobufpb.Data_Geometry_GEOMETRYCOLLECTION {
		children := make([]*geojson.Geometry, 0, len(pg.GetGeometries()))
		for _, child := range pg.GetGeometries() {
			g, err := decodeGeometry(child, precision, dimension)
			if err != nil {
				return nil, err
			}
			children = append(children, g)
		}
		return geojson.NewCollectionGeometry(children...), nil
	}

	dec, err := codec.NewDecoder(precision, dimension, pg.GetCoords(), pg.GetLengths())
	if err != nil {
		return nil, err
	}

	switch pg.GetType() {
	case geobufpb.Data_Geometry_POINT:
		return geojson.NewPointGeometry(dec.Point()), nil
	case geobufpb.Data_Geometry_MULTIPOINT:
		return geojson.NewMultiPointGeometry(dec.Line()...), nil
	case geobufpb.Data_Geometry_LINESTRING:
		return geojson.NewLineStringGeometry(dec.Line()), nil
	case geobufpb.Data_Geometry_MULTILINESTRING:
		lines, err := dec.MultiLine()
		if err != nil {
			return nil, err
		}
		return geojson.NewMultiLineStringGeometry(lines...), nil
	case geobufpb.Data_Geometry_POLYGON:
		rings, err := dec.MultiLine()
		if err != nil {
			return nil, err
		}
		return geojson.NewPolygonGeometry(rings), nil
	case geobufpb.Data_Geometry_MULTIPOLYGON:
		polygons, err := dec.MultiPolygon()
		if err != nil {
			return nil, err
		}
		return geojson.NewMultiPolygonGeometry(polygons...), nil
	}
	return nil, errors.Wrapf(ErrUnknownGeometryType, "shape tag %d", pg.GetType())
}
