/*
 * SPDX-License-Identifier: Apache-2.0
 */

package transcode

import (
	"math"

	"github.com/golang/protobuf/proto"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/geobufio/geobuf/codec"
	"github.com/geobufio/geobuf/protos/geobufpb"
)

// Encode converts a document into Geobuf wire bytes. precision is the
// number of decimal digits retained per coordinate component, dimension the
// components per coordinate (2 or 3).
func Encode(doc *Document, precision uint32, dimension int) ([]byte, error) {
	if err := codec.Validate(precision, dimension); err != nil {
		return nil, err
	}

	dict := buildKeyDict(doc)
	data := &geobufpb.Data{
		Keys:       dict.keys,
		Dimensions: proto.Uint32(uint32(dimension)),
		Precision:  proto.Uint32(precision),
	}

	switch {
	case doc.FeatureCollection != nil:
		fc := &geobufpb.Data_FeatureCollection{
			Features: make([]*geobufpb.Data_Feature, 0, len(doc.FeatureCollection.Features)),
		}
		for _, f := range doc.FeatureCollection.Features {
			pf, err := encodeFeature(dict, f, precision, dimension)
			if err != nil {
				return nil, err
			}
			fc.Features = append(fc.Features, pf)
		}
		data.DataType = &geobufpb.Data_FeatureCollection_{FeatureCollection: fc}

	case doc.Feature != nil:
		pf, err := encodeFeature(dict, doc.Feature, precision, dimension)
		if err != nil {
			return nil, err
		}
		data.DataType = &geobufpb.Data_Feature_{Feature: pf}

	case doc.Geometry != nil:
		pg, err := encodeGeometry(doc.Geometry, precision, dimension)
		if err != nil {
			return nil, err
		}
		data.DataType = &geobufpb.Data_Geometry_{Geometry: pg}

	default:
		return nil, errors.New("empty document")
	}

	return proto.Marshal(data)
}

func encodeFeature(dict *keyDict, f *geojson.Feature, precision uint32,
	dimension int) (*geobufpb.Data_Feature, error) {

	out := &geobufpb.Data_Feature{}
	if f == nil {
		return out, nil
	}

	if f.Geometry != nil {
		pg, err := encodeGeometry(f.Geometry, precision, dimension)
		if err != nil {
			return nil, err
		}
		out.Geometry = pg
	}

	if f.ID != nil {
		switch id := f.ID.(type) {
		case string:
			out.IdType = &geobufpb.Data_Feature_Id{Id: id}
		default:
			// Integral ids get the compact sint64 slot. Anything the
			// document model does not admit (non-integral numbers,
			// composite values) is dropped.
			if v, err := cast.ToFloat64E(id); err == nil &&
				v == math.Trunc(v) && math.Abs(v) <= maxExactInt {
				out.IdType = &geobufpb.Data_Feature_IntId{IntId: int64(v)}
			}
		}
	}

	if len(f.Properties) > 0 {
		bag := &geobufpb.Data_Values{}
		triples, err := encodeProperties(dict, bag, f.Properties)
		if err != nil {
			return nil, err
		}
		out.Values = bag
		out.Properties = triples
	}
	return out, nil
}

// encodeGeometry recursively converts a geometry tree into a wire record,
// delegating coordinate flattening to the codec package.
func encodeGeometry(g *geojson.Geometry, precision uint32,
	dimension int) (*geobufpb.Data_Geometry, error) {

	out := &geobufpb.Data_Geometry{}

	if g.Type == geojson.GeometryCollection {
		out.Type = geobufpb.Data_Geometry_GEOMETRYCOLLECTION.Enum()
		out.Geometries = make([]*geobufpb.Data_Geometry, 0, len(g.Geometries))
		for _, child := range g.Geometries {
			pg, err := encodeGeometry(child, precision, dimension)
			if err != nil {
				return nil, err
			}
			out.Geometries = append(out.Geometries, pg)
		}
		return out, nil
	}

	enc, err := codec.NewEncoder(precision, dimension)
	if err != nil {
		return nil, err
	}

	switch g.Type {
	case geojson.GeometryPoint:
		out.Type = geobufpb.Data_Geometry_POINT.Enum()
		err = enc.AddPoint(g.Point)
	case geojson.GeometryMultiPoint:
		out.Type = geobufpb.Data_Geometry_MULTIPOINT.Enum()
		err = enc.AddLine(g.MultiPoint)
	case geojson.GeometryLineString:
		out.Type = geobufpb.Data_Geometry_LINESTRING.Enum()
		err = enc.AddLine(g.LineString)
	case geojson.GeometryMultiLineString:
		out.Type = geobufpb.Data_Geometry_MULTILINESTRING.Enum()
		err = enc.AddMultiLine(g.MultiLineString)
	case geojson.GeometryPolygon:
		out.Type = geobufpb.Data_Geometry_POLYGON.Enum()
		err = enc.AddMultiLine(g.Polygon)
	case geojson.GeometryMultiPolygon:
		out.Type = geobufpb.Data_Geometry_MULTIPOLYGON.Enum()
		err = enc.AddMultiPolygon(g.MultiPolygon)
	default:
		return nil, errors.Wrapf(ErrUnknownGeometryType, "%q", g.Type)
	}
	if err != nil {
		return nil, err
	}

	out.Coords = enc.Coords()
	out.Lengths = enc.Lengths()
	return out, nil
}
