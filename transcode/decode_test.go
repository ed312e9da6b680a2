/*
 * SPDX-License-Identifier: Apache-2.0
 */

package transcode

import (
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"

	"github.com/geobufio/geobuf/codec"
	"github.com/geobufio/geobuf/protos/geobufpb"
)

func TestDecodeTruncatedBytes(t *testing.T) {
	doc, err := UnmarshalDocument([]byte(
		`{"type":"LineString","coordinates":[[100.0,0.0],[101.0,1.0]]}`))
	require.NoError(t, err)
	buf, err := Encode(doc, 6, 2)
	require.NoError(t, err)

	for cut := 1; cut < 4; cut++ {
		_, err := Decode(buf[:len(buf)-cut])
		require.ErrorIs(t, err, ErrMalformedInput, "cut %d bytes", cut)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte{0xff, 0xff, 0xff, 0xff})
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestDecodeMissingDataType(t *testing.T) {
	buf, err := proto.Marshal(&geobufpb.Data{Precision: proto.Uint32(6)})
	require.NoError(t, err)
	_, err = Decode(buf)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestDecodeLengthsMismatch(t *testing.T) {
	data := &geobufpb.Data{
		Precision:  proto.Uint32(0),
		Dimensions: proto.Uint32(2),
		DataType: &geobufpb.Data_Geometry_{Geometry: &geobufpb.Data_Geometry{
			Type:    geobufpb.Data_Geometry_MULTILINESTRING.Enum(),
			Coords:  []int64{0, 0, 1, 1, 5, 5},
			Lengths: []uint32{2, 2}, // claims 4 points, buffer holds 3
		}},
	}
	buf, err := proto.Marshal(data)
	require.NoError(t, err)
	_, err = Decode(buf)
	require.ErrorIs(t, err, codec.ErrMalformedCoordinates)
}

func TestDecodeCoordsNotMultipleOfDimension(t *testing.T) {
	data := &geobufpb.Data{
		Precision:  proto.Uint32(0),
		Dimensions: proto.Uint32(2),
		DataType: &geobufpb.Data_Geometry_{Geometry: &geobufpb.Data_Geometry{
			Type:   geobufpb.Data_Geometry_LINESTRING.Enum(),
			Coords: []int64{0, 0, 1},
		}},
	}
	buf, err := proto.Marshal(data)
	require.NoError(t, err)
	_, err = Decode(buf)
	require.ErrorIs(t, err, codec.ErrMalformedCoordinates)
}

func TestDecodeInvalidDimensionOnWire(t *testing.T) {
	data := &geobufpb.Data{
		Precision:  proto.Uint32(6),
		Dimensions: proto.Uint32(7),
		DataType: &geobufpb.Data_Geometry_{Geometry: &geobufpb.Data_Geometry{
			Type: geobufpb.Data_Geometry_POINT.Enum(),
		}},
	}
	buf, err := proto.Marshal(data)
	require.NoError(t, err)
	_, err = Decode(buf)
	require.ErrorIs(t, err, codec.ErrInvalidDimension)
}

func TestDecodeInvalidPrecisionOnWire(t *testing.T) {
	data := &geobufpb.Data{
		Precision:  proto.Uint32(codec.MaxPrecision + 1),
		Dimensions: proto.Uint32(2),
		DataType: &geobufpb.Data_Geometry_{Geometry: &geobufpb.Data_Geometry{
			Type: geobufpb.Data_Geometry_POINT.Enum(),
		}},
	}
	buf, err := proto.Marshal(data)
	require.NoError(t, err)
	_, err = Decode(buf)
	require.ErrorIs(t, err, codec.ErrInvalidPrecision)
}

func TestDecodeUnknownGeometryTag(t *testing.T) {
	bad := geobufpb.Data_Geometry_Type(99)
	_, err := decodeGeometry(&geobufpb.Data_Geometry{Type: bad.Enum()}, 6, 2)
	require.ErrorIs(t, err, ErrUnknownGeometryType)
}

func TestDecodeBadPropertyTriple(t *testing.T) {
	data := &geobufpb.Data{
		Keys:       []string{"name"},
		Precision:  proto.Uint32(6),
		Dimensions: proto.Uint32(2),
		DataType: &geobufpb.Data_Feature_{Feature: &geobufpb.Data_Feature{
			Values:     &geobufpb.Data_Values{StringValues: []string{"x"}},
			Properties: []uint32{0, uint32(KindString), 5},
		}},
	}
	buf, err := proto.Marshal(data)
	require.NoError(t, err)
	_, err = Decode(buf)
	require.ErrorIs(t, err, ErrMalformedProperty)
}

func TestDecodeDefaults(t *testing.T) {
	// A Data message with no precision/dimensions fields uses the proto2
	// defaults: 6 digits, 2 dimensions.
	data := &geobufpb.Data{
		DataType: &geobufpb.Data_Geometry_{Geometry: &geobufpb.Data_Geometry{
			Type:   geobufpb.Data_Geometry_POINT.Enum(),
			Coords: []int64{100000000, 2000000},
		}},
	}
	buf, err := proto.Marshal(data)
	require.NoError(t, err)
	doc, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, []float64{100, 2}, doc.Geometry.Point)
}

func TestDocumentJSONDispatch(t *testing.T) {
	_, err := UnmarshalDocument([]byte(`{"type":"Curve","coordinates":[1,2]}`))
	require.ErrorIs(t, err, ErrUnknownGeometryType)

	_, err = UnmarshalDocument([]byte(`this is not json`))
	require.ErrorIs(t, err, ErrMalformedInput)
}
