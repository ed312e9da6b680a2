/*
 * SPDX-License-Identifier: Apache-2.0
 */

package transcode

import (
	"math"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/geobufio/geobuf/protos/geobufpb"
)

// ValueKind tags which typed array of a value bag holds a property value.
type ValueKind uint32

const (
	KindString ValueKind = iota
	KindDouble
	KindPosInt
	KindNegInt
	KindBool
	KindJSON
)

var (
	// ErrMalformedProperty is returned on decode when a property triple
	// does not address a value: bad triple arity, unknown kind, or an
	// offset outside the kind's array.
	ErrMalformedProperty = errors.New("property kind/offset mismatch")

	// ErrUnsupportedValueType is returned when a property value cannot be
	// serialized even as opaque JSON. Reaching it indicates a logic bug in
	// the caller, not malformed geographic data.
	ErrUnsupportedValueType = errors.New("property value cannot be encoded")
)

// maxExactInt is the largest float64 magnitude below which every integer is
// exactly representable (2^53). Integral values beyond it are stored as
// doubles so they survive the float round-trip unchanged.
const maxExactInt = float64(1 << 53)

// appendValue classifies v into one of the value kinds, appends it to the
// matching typed array of the bag and returns its (kind, offset) address.
// Offsets are monotonic per kind and never reused.
func appendValue(bag *geobufpb.Data_Values, v interface{}) (ValueKind, uint32, error) {
	switch t := v.(type) {
	case string:
		bag.StringValues = append(bag.StringValues, t)
		return KindString, uint32(len(bag.StringValues) - 1), nil
	case bool:
		bag.BoolValues = append(bag.BoolValues, t)
		return KindBool, uint32(len(bag.BoolValues) - 1), nil
	case nil, map[string]interface{}, []interface{}:
		// No dedicated array; carried as self-contained JSON text.
		return appendJSON(bag, v)
	default:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			// Structs and other exotic shapes still round-trip as JSON.
			return appendJSON(bag, v)
		}
		return appendNumber(bag, f)
	}
}

// appendNumber stores integral values as sign-split unsigned magnitudes and
// everything else as a double.
func appendNumber(bag *geobufpb.Data_Values, f float64) (ValueKind, uint32, error) {
	if f == math.Trunc(f) && math.Abs(f) <= maxExactInt {
		if !math.Signbit(f) {
			bag.PosIntValues = append(bag.PosIntValues, uint64(f))
			return KindPosInt, uint32(len(bag.PosIntValues) - 1), nil
		}
		bag.NegIntValues = append(bag.NegIntValues, uint64(-f))
		return KindNegInt, uint32(len(bag.NegIntValues) - 1), nil
	}
	bag.DoubleValues = append(bag.DoubleValues, f)
	return KindDouble, uint32(len(bag.DoubleValues) - 1), nil
}

func appendJSON(bag *geobufpb.Data_Values, v interface{}) (ValueKind, uint32, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return 0, 0, errors.Wrapf(ErrUnsupportedValueType, "%T: %v", v, err)
	}
	bag.JsonValues = append(bag.JsonValues, string(b))
	return KindJSON, uint32(len(bag.JsonValues) - 1), nil
}

// valueAt resolves a (kind, offset) pair back into a property value.
func valueAt(bag *geobufpb.Data_Values, kind ValueKind, offset uint32) (interface{}, error) {
	if bag == nil {
		return nil, errors.Wrap(ErrMalformedProperty, "property triple without a value bag")
	}
	switch kind {
	case KindString:
		if int(offset) >= len(bag.StringValues) {
			return nil, offsetErr(kind, offset, len(bag.StringValues))
		}
		return bag.StringValues[offset], nil
	case KindDouble:
		if int(offset) >= len(bag.DoubleValues) {
			return nil, offsetErr(kind, offset, len(bag.DoubleValues))
		}
		return bag.DoubleValues[offset], nil
	case KindPosInt:
		if int(offset) >= len(bag.PosIntValues) {
			return nil, offsetErr(kind, offset, len(bag.PosIntValues))
		}
		return float64(bag.PosIntValues[offset]), nil
	case KindNegInt:
		if int(offset) >= len(bag.NegIntValues) {
			return nil, offsetErr(kind, offset, len(bag.NegIntValues))
		}
		return -float64(bag.NegIntValues[offset]), nil
	case KindBool:
		if int(offset) >= len(bag.BoolValues) {
			return nil, offsetErr(kind, offset, len(bag.BoolValues))
		}
		return bag.BoolValues[offset], nil
	case KindJSON:
		if int(offset) >= len(bag.JsonValues) {
			return nil, offsetErr(kind, offset, len(bag.JsonValues))
		}
		var v interface{}
		if err := json.Unmarshal([]byte(bag.JsonValues[offset]), &v); err != nil {
			return nil, errors.Wrapf(ErrMalformedProperty, "opaque JSON value: %v", err)
		}
		return v, nil
	}
	return nil, errors.Wrapf(ErrMalformedProperty, "unknown value kind %d", kind)
}

func offsetErr(kind ValueKind, offset uint32, size int) error {
	return errors.Wrapf(ErrMalformedProperty,
		"offset %d outside kind %d array of %d values", offset, kind, size)
}

// encodeProperties packs a property map into the bag and returns its flat
// (key index, kind, offset) triples. Keys are visited in sorted order so
// repeated encodes of one document are byte-identical.
func encodeProperties(dict *keyDict, bag *geobufpb.Data_Values,
	props map[string]interface{}) ([]uint32, error) {

	triples := make([]uint32, 0, 3*len(props))
	for _, k := range sortedKeys(props) {
		kind, offset, err := appendValue(bag, props[k])
		if err != nil {
			return nil, err
		}
		triples = append(triples, dict.indexOf(k), uint32(kind), offset)
	}
	return triples, nil
}

// decodeProperties reads property triples back into a map.
func decodeProperties(keys []string, bag *geobufpb.Data_Values,
	triples []uint32) (map[string]interface{}, error) {

	if len(triples)%3 != 0 {
		return nil, errors.Wrapf(ErrMalformedProperty,
			"%d property indices do not form triples", len(triples))
	}
	props := make(map[string]interface{}, len(triples)/3)
	for i := 0; i < len(triples); i += 3 {
		key, err := resolveKey(keys, triples[i])
		if err != nil {
			return nil, err
		}
		v, err := valueAt(bag, ValueKind(triples[i+1]), triples[i+2])
		if err != nil {
			return nil, err
		}
		props[key] = v
	}
	return props, nil
}
