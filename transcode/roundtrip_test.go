/*
 * SPDX-License-Identifier: Apache-2.0
 */

package transcode

import (
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/require"
)

// roundTrip encodes the GeoJSON text and decodes the bytes back. All
// coordinates in these fixtures use at most six decimals, so they survive
// precision-6 quantization bit-exactly and documents compare equal.
func roundTrip(t *testing.T, geoJSON string) *Document {
	t.Helper()
	doc, err := UnmarshalDocument([]byte(geoJSON))
	require.NoError(t, err)

	buf, err := Encode(doc, 6, 2)
	require.NoError(t, err)

	got, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, doc, got)
	return got
}

func TestRoundTripGeometries(t *testing.T) {
	fixtures := []string{
		`{"type":"Point","coordinates":[100.0,0.0]}`,
		`{"type":"Point","coordinates":[-122.220718,37.72129]}`,
		`{"type":"MultiPoint","coordinates":[[100.0,0.0],[101.0,1.0]]}`,
		`{"type":"LineString","coordinates":[[100.0,0.0],[101.0,1.0],[101.25,2.5]]}`,
		`{"type":"MultiLineString","coordinates":[[[100.0,0.0],[101.0,1.0]],[[102.0,2.0],[103.0,3.0]]]}`,
		`{"type":"Polygon","coordinates":[[[100.0,0.0],[101.0,0.0],[101.0,1.0],[100.0,1.0],[100.0,0.0]]]}`,
		`{"type":"Polygon","coordinates":[[[100.0,0.0],[101.0,0.0],[101.0,1.0],[100.0,0.0]],[[100.2,0.2],[100.8,0.2],[100.8,0.8],[100.2,0.2]]]}`,
		`{"type":"MultiPolygon","coordinates":[[[[102.0,2.0],[103.0,2.0],[103.0,3.0],[102.0,2.0]]],[[[100.0,0.0],[101.0,0.0],[101.0,1.0],[100.0,0.0]],[[100.2,0.2],[100.8,0.2],[100.8,0.8],[100.2,0.2]]]]}`,
		`{"type":"MultiPolygon","coordinates":[[[[100.0,0.0],[101.0,0.0],[101.0,1.0],[100.0,0.0]]]]}`,
		`{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[100.0,0.0]},{"type":"LineString","coordinates":[[101.0,0.0],[102.0,1.0]]}]}`,
	}
	for _, fixture := range fixtures {
		roundTrip(t, fixture)
	}
}

func TestRoundTripFeature(t *testing.T) {
	got := roundTrip(t, `{
		"type": "Feature",
		"id": "station-42",
		"geometry": {"type": "Point", "coordinates": [100.0, 0.0]},
		"properties": {"name": "mast", "height": 33.5, "floors": 3, "active": true}
	}`)
	require.Equal(t, "station-42", got.Feature.ID)
	require.Equal(t, "mast", got.Feature.Properties["name"])
	require.Equal(t, 33.5, got.Feature.Properties["height"])
	require.Equal(t, float64(3), got.Feature.Properties["floors"])
	require.Equal(t, true, got.Feature.Properties["active"])
}

func TestRoundTripFeatureIntID(t *testing.T) {
	got := roundTrip(t, `{
		"type": "Feature",
		"id": 7,
		"geometry": {"type": "Point", "coordinates": [1.0, 2.0]},
		"properties": {}
	}`)
	require.Equal(t, float64(7), got.Feature.ID)
}

func TestRoundTripFeatureWithoutGeometry(t *testing.T) {
	got := roundTrip(t, `{
		"type": "Feature",
		"geometry": null,
		"properties": {"name": "nowhere"}
	}`)
	require.Nil(t, got.Feature.Geometry)
}

func TestRoundTripFeatureCollection(t *testing.T) {
	got := roundTrip(t, `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [1.0, 1.0]},
			 "properties": {"name": "a", "rank": 1}},
			{"type": "Feature", "geometry": {"type": "LineString",
			 "coordinates": [[0.0, 0.0], [1.0, 1.0]]},
			 "properties": {"name": "b", "rank": -2, "notes": null}}
		]
	}`)
	require.Len(t, got.FeatureCollection.Features, 2)
	require.Equal(t, float64(-2), got.FeatureCollection.Features[1].Properties["rank"])
	require.Contains(t, got.FeatureCollection.Features[1].Properties, "notes")
	require.Nil(t, got.FeatureCollection.Features[1].Properties["notes"])
}

func TestRoundTripEmptyStructures(t *testing.T) {
	got := roundTrip(t, `{"type":"FeatureCollection","features":[]}`)
	require.NotNil(t, got.FeatureCollection.Features)
	require.Empty(t, got.FeatureCollection.Features)

	got = roundTrip(t, `{"type":"Polygon","coordinates":[]}`)
	require.NotNil(t, got.Geometry.Polygon)
	require.Empty(t, got.Geometry.Polygon)

	got = roundTrip(t, `{"type":"GeometryCollection","geometries":[]}`)
	require.Empty(t, got.Geometry.Geometries)

	got = roundTrip(t, `{"type":"Feature","geometry":{"type":"Point","coordinates":[0.0,0.0]},"properties":{}}`)
	require.NotNil(t, got.Feature.Properties)
	require.Empty(t, got.Feature.Properties)
}

func TestRoundTripThreeDimensions(t *testing.T) {
	doc, err := UnmarshalDocument([]byte(
		`{"type":"LineString","coordinates":[[100.0,0.0,12.5],[101.0,1.0,13.25]]}`))
	require.NoError(t, err)

	buf, err := Encode(doc, 6, 3)
	require.NoError(t, err)
	got, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, doc, got)
}

func TestPrecisionBound(t *testing.T) {
	doc := NewGeometryDocument(geojson.NewPointGeometry([]float64{100.1234567, 0}))
	buf, err := Encode(doc, 6, 2)
	require.NoError(t, err)

	got, err := Decode(buf)
	require.NoError(t, err)
	require.InDelta(t, 100.123457, got.Geometry.Point[0], 5e-7)
}

func TestLowerPrecisionShrinksOutput(t *testing.T) {
	line := make([][]float64, 100)
	for i := range line {
		line[i] = []float64{float64(i) * 1.000001, float64(i) * 2.000002}
	}
	doc := NewGeometryDocument(geojson.NewLineStringGeometry(line))

	coarse, err := Encode(doc, 1, 2)
	require.NoError(t, err)
	fine, err := Encode(doc, 9, 2)
	require.NoError(t, err)
	require.Less(t, len(coarse), len(fine))
}

func TestEncodeValidatesArguments(t *testing.T) {
	doc := NewGeometryDocument(geojson.NewPointGeometry([]float64{1, 2}))

	_, err := Encode(doc, 16, 2)
	require.Error(t, err)

	_, err = Encode(doc, 6, 1)
	require.Error(t, err)

	_, err = Encode(doc, 6, 4)
	require.Error(t, err)
}

func TestEncodeCoordinateOverflow(t *testing.T) {
	doc := NewGeometryDocument(geojson.NewPointGeometry([]float64{1e300, 0}))
	_, err := Encode(doc, 6, 2)
	require.Error(t, err)
}
