/*
 * SPDX-License-Identifier: Apache-2.0
 */

package codec

import (
	"math"

	"github.com/pkg/errors"
)

// MaxPrecision is the largest precision exponent the wire format accepts.
// 10^15 is the last power of ten whose scaled coordinates still leave
// headroom in an int64 for real-world longitude/latitude magnitudes.
const MaxPrecision = 15

var (
	// ErrInvalidPrecision is returned when a precision exponent is outside
	// the [0, MaxPrecision] range the wire format supports.
	ErrInvalidPrecision = errors.New("precision exponent out of range")

	// ErrCoordinateOverflow is returned when a scaled coordinate does not
	// fit in the wire's signed 64-bit integer.
	ErrCoordinateOverflow = errors.New("quantized coordinate overflows int64")
)

// Quantize converts a coordinate component to its scaled integer
// representation, round(x * 10^precision). Ties round half away from zero
// (math.Round), matching the reference implementation of the format.
func Quantize(x float64, precision uint32) (int64, error) {
	if precision > MaxPrecision {
		return 0, errors.Wrapf(ErrInvalidPrecision, "precision %d, max %d", precision, MaxPrecision)
	}
	v := math.Round(x * pow10(precision))
	// float64(math.MaxInt64) rounds up to 2^63, so exactly 2^63 must be
	// rejected too; -2^63 is representable and fine.
	if math.IsNaN(v) || v >= float64(math.MaxInt64) || v < float64(math.MinInt64) {
		return 0, errors.Wrapf(ErrCoordinateOverflow, "coordinate %v at precision %d", x, precision)
	}
	return int64(v), nil
}

// Dequantize is the inverse of Quantize up to the rounding error bound of
// 0.5 * 10^-precision.
func Dequantize(v int64, precision uint32) float64 {
	return float64(v) / pow10(precision)
}

func pow10(precision uint32) float64 {
	return math.Pow10(int(precision))
}

func validPrecision(precision uint32) error {
	if precision > MaxPrecision {
		return errors.Wrapf(ErrInvalidPrecision, "precision %d, max %d", precision, MaxPrecision)
	}
	return nil
}
