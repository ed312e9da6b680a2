/*
 * SPDX-License-Identifier: Apache-2.0
 */

// Package transcode converts GeoJSON document trees to and from the Geobuf
// binary wire format. Coordinates are quantized and delta-coded, property
// keys are deduplicated into a document-wide dictionary, and property
// values are packed into type-segregated arrays.
package transcode

import (
	json "github.com/goccy/go-json"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// Document is a tagged union over the three top-level GeoJSON shapes.
// Exactly one field is set.
type Document struct {
	Geometry          *geojson.Geometry
	Feature           *geojson.Feature
	FeatureCollection *geojson.FeatureCollection
}

// NewGeometryDocument wraps a bare geometry.
func NewGeometryDocument(g *geojson.Geometry) *Document {
	return &Document{Geometry: g}
}

// NewFeatureDocument wraps a single feature.
func NewFeatureDocument(f *geojson.Feature) *Document {
	return &Document{Feature: f}
}

// NewFeatureCollectionDocument wraps a feature collection.
func NewFeatureCollectionDocument(fc *geojson.FeatureCollection) *Document {
	return &Document{FeatureCollection: fc}
}

// UnmarshalDocument parses GeoJSON text, dispatching on the "type" member.
func UnmarshalDocument(data []byte) (*Document, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrapf(ErrMalformedInput, "parsing GeoJSON: %v", err)
	}

	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "parsing FeatureCollection: %v", err)
		}
		return NewFeatureCollectionDocument(fc), nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "parsing Feature: %v", err)
		}
		return NewFeatureDocument(f), nil
	case "Point", "MultiPoint", "LineString", "MultiLineString",
		"Polygon", "MultiPolygon", "GeometryCollection":
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "parsing geometry: %v", err)
		}
		return NewGeometryDocument(g), nil
	}
	return nil, errors.Wrapf(ErrUnknownGeometryType, "GeoJSON type %q", probe.Type)
}

// MarshalJSON renders the wrapped value, so a Document serializes exactly
// like the GeoJSON object it holds.
func (d *Document) MarshalJSON() ([]byte, error) {
	switch {
	case d.FeatureCollection != nil:
		return json.Marshal(d.FeatureCollection)
	case d.Feature != nil:
		return json.Marshal(d.Feature)
	case d.Geometry != nil:
		return json.Marshal(d.Geometry)
	}
	return nil, errors.New("empty document")
}

// UnmarshalJSON parses GeoJSON text in place.
func (d *Document) UnmarshalJSON(data []byte) error {
	doc, err := UnmarshalDocument(data)
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}
