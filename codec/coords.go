/*
 * SPDX-License-Identifier: Apache-2.0
 */

package codec

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimension is returned when the coordinate dimension is not
	// 2 or 3.
	ErrInvalidDimension = errors.New("dimension must be 2 or 3")

	// ErrMalformedCoordinates is returned on decode when the lengths buffer
	// and the flat coordinate buffer disagree.
	ErrMalformedCoordinates = errors.New("coords/lengths mismatch")
)

// Encoder flattens nested coordinate arrays into one flat delta-coded
// integer stream, plus a lengths buffer describing how to re-nest it.
// Deltas are computed per axis across successive points and reset at every
// ring/part boundary, so each part starts with an absolute value.
type Encoder struct {
	dim       int
	precision uint32
	coords    []int64
	lengths   []uint32
}

// Validate checks an encode/decode parameter pair against the range the
// wire format supports.
func Validate(precision uint32, dim int) error {
	if err := validPrecision(precision); err != nil {
		return err
	}
	if dim < 2 || dim > 3 {
		return errors.Wrapf(ErrInvalidDimension, "dimension %d", dim)
	}
	return nil
}

// NewEncoder validates precision and dimension and returns an empty Encoder.
func NewEncoder(precision uint32, dim int) (*Encoder, error) {
	if err := Validate(precision, dim); err != nil {
		return nil, err
	}
	return &Encoder{dim: dim, precision: precision}, nil
}

// AddPoint appends one coordinate tuple as absolute quantized values.
func (e *Encoder) AddPoint(coord []float64) error {
	for j := 0; j < e.dim; j++ {
		v, err := Quantize(component(coord, j), e.precision)
		if err != nil {
			return err
		}
		e.coords = append(e.coords, v)
	}
	return nil
}

// AddLine appends one independent point sequence, delta-coded per axis.
func (e *Encoder) AddLine(points [][]float64) error {
	sum := make([]int64, e.dim)
	for _, p := range points {
		for j := 0; j < e.dim; j++ {
			v, err := Quantize(component(p, j), e.precision)
			if err != nil {
				return err
			}
			e.coords = append(e.coords, v-sum[j])
			sum[j] = v
		}
	}
	return nil
}

// AddMultiLine appends a list of point sequences (multi-linestring parts or
// polygon rings), emitting one point count per part. A single part needs no
// lengths buffer: the whole coordinate stream is that part.
func (e *Encoder) AddMultiLine(lines [][][]float64) error {
	if len(lines) == 1 {
		return e.AddLine(lines[0])
	}
	for _, points := range lines {
		e.lengths = append(e.lengths, uint32(len(points)))
		if err := e.AddLine(points); err != nil {
			return err
		}
	}
	return nil
}

// AddMultiPolygon appends a polygon list. The lengths buffer records, depth
// first, the polygon count, each polygon's ring count and each ring's point
// count. One polygon with one ring is unambiguous and elides the buffer.
func (e *Encoder) AddMultiPolygon(polygons [][][][]float64) error {
	if len(polygons) == 1 && len(polygons[0]) == 1 {
		return e.AddLine(polygons[0][0])
	}
	e.lengths = append(e.lengths, uint32(len(polygons)))
	for _, rings := range polygons {
		e.lengths = append(e.lengths, uint32(len(rings)))
		for _, points := range rings {
			e.lengths = append(e.lengths, uint32(len(points)))
			if err := e.AddLine(points); err != nil {
				return err
			}
		}
	}
	return nil
}

// Coords returns the flat delta-coded coordinate buffer built so far.
func (e *Encoder) Coords() []int64 {
	return e.coords
}

// Lengths returns the nesting buffer built so far, nil when unambiguous.
func (e *Encoder) Lengths() []uint32 {
	return e.lengths
}

// component pads documents narrower than the target dimension with zero.
func component(coord []float64, j int) float64 {
	if j < len(coord) {
		return coord[j]
	}
	return 0
}

// Decoder re-nests a flat delta-coded coordinate buffer using its lengths
// buffer and reverses quantization.
type Decoder struct {
	dim       int
	precision uint32
	coords    []int64
	lengths   []uint32
}

// NewDecoder validates precision, dimension and buffer alignment.
func NewDecoder(precision uint32, dim int, coords []int64, lengths []uint32) (*Decoder, error) {
	if err := Validate(precision, dim); err != nil {
		return nil, err
	}
	if len(coords)%dim != 0 {
		return nil, errors.Wrapf(ErrMalformedCoordinates,
			"%d coords is not a multiple of dimension %d", len(coords), dim)
	}
	return &Decoder{dim: dim, precision: precision, coords: coords, lengths: lengths}, nil
}

// Point decodes the buffer as absolute coordinate components.
func (d *Decoder) Point() []float64 {
	out := make([]float64, len(d.coords))
	for i, v := range d.coords {
		out[i] = Dequantize(v, d.precision)
	}
	return out
}

// Line decodes the whole buffer as one delta-coded point sequence.
func (d *Decoder) Line() [][]float64 {
	return d.line(d.coords)
}

func (d *Decoder) line(coords []int64) [][]float64 {
	points := make([][]float64, 0, len(coords)/d.dim)
	sum := make([]int64, d.dim)
	for i := 0; i+d.dim <= len(coords); i += d.dim {
		p := make([]float64, d.dim)
		for j := 0; j < d.dim; j++ {
			sum[j] += coords[i+j]
			p[j] = Dequantize(sum[j], d.precision)
		}
		points = append(points, p)
	}
	return points
}

// MultiLine decodes the buffer as a list of point sequences driven by the
// lengths buffer. An empty lengths buffer means a single part (or none, if
// the coordinate buffer is empty too).
func (d *Decoder) MultiLine() ([][][]float64, error) {
	if len(d.lengths) == 0 {
		if len(d.coords) == 0 {
			return [][][]float64{}, nil
		}
		return [][][]float64{d.line(d.coords)}, nil
	}
	lines := make([][][]float64, 0, len(d.lengths))
	i := 0
	for _, n := range d.lengths {
		end := i + int(n)*d.dim
		if end > len(d.coords) {
			return nil, errors.Wrapf(ErrMalformedCoordinates,
				"part of %d points exceeds %d remaining coords", n, len(d.coords)-i)
		}
		lines = append(lines, d.line(d.coords[i:end]))
		i = end
	}
	if i != len(d.coords) {
		return nil, errors.Wrapf(ErrMalformedCoordinates,
			"lengths consume %d of %d coords", i, len(d.coords))
	}
	return lines, nil
}

// MultiPolygon decodes the buffer as a list of ring lists.
func (d *Decoder) MultiPolygon() ([][][][]float64, error) {
	if len(d.lengths) == 0 {
		if len(d.coords) == 0 {
			return [][][][]float64{}, nil
		}
		return [][][][]float64{{d.line(d.coords)}}, nil
	}
	polygons := make([][][][]float64, 0, d.lengths[0])
	i, j := 0, 1
	for n := uint32(0); n < d.lengths[0]; n++ {
		if j >= len(d.lengths) {
			return nil, errors.Wrap(ErrMalformedCoordinates, "lengths buffer truncated")
		}
		numRings := int(d.lengths[j])
		j++
		rings := make([][][]float64, 0, numRings)
		for r := 0; r < numRings; r++ {
			if j >= len(d.lengths) {
				return nil, errors.Wrap(ErrMalformedCoordinates, "lengths buffer truncated")
			}
			end := i + int(d.lengths[j])*d.dim
			j++
			if end > len(d.coords) {
				return nil, errors.Wrapf(ErrMalformedCoordinates,
					"ring exceeds %d remaining coords", len(d.coords)-i)
			}
			rings = append(rings, d.line(d.coords[i:end]))
			i = end
		}
		polygons = append(polygons, rings)
	}
	if i != len(d.coords) || j != len(d.lengths) {
		return nil, errors.Wrapf(ErrMalformedCoordinates,
			"lengths consume %d of %d coords", i, len(d.coords))
	}
	return polygons, nil
}
