// Copyright 2025 wavecore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package waveaxis

import (
	"fmt"

	"github.com/wavecore/wavecore"
)

// UnaryStrip maps one input strip (length info.Shape[axis]) to one output
// strip (length outLen), the shape every DecA/DecD/RecA/RecD/SWTA/SWTD
// call has.
type UnaryStrip[S wavecore.Scalar] func(in, out []S) error

// BinaryStrip combines two input strips (possibly either one empty) into
// one output strip, the shape an IDWT call has.
type BinaryStrip[S wavecore.Scalar] func(a, b, out []S) error

// stripIterator walks every combination of indices outside axis, in the
// same mixed-radix order a nested loop over all other dimensions would
// produce, most-significant non-axis dimension first.
type stripIterator struct {
	shape []int
	axis  int
	idx   []int
	done  bool
}

func newStripIterator(shape []int, axis int) *stripIterator {
	return &stripIterator{shape: shape, axis: axis, idx: make([]int, len(shape))}
}

// next advances to the next strip position, returning false once every
// combination has been visited.
func (it *stripIterator) next() bool {
	if it.done {
		return false
	}
	for d := len(it.shape) - 1; d >= 0; d-- {
		if d == it.axis {
			continue
		}
		it.idx[d]++
		if it.idx[d] < it.shape[d] {
			return true
		}
		it.idx[d] = 0
	}
	it.done = true
	return false
}

func gatherStrip[S any](data []S, info ArrayInfo, idx []int, axis int, strip []S) {
	local := append([]int(nil), idx...)
	for k := range strip {
		local[axis] = k
		strip[k] = data[offset(info, local)]
	}
}

func scatterStrip[S any](data []S, info ArrayInfo, idx []int, axis int, strip []S) {
	local := append([]int(nil), idx...)
	for k := range strip {
		local[axis] = k
		data[offset(info, local)] = strip[k]
	}
}

// ApplyAxisUnary applies op to every 1-D strip of data along axis, the
// axis-apply harness for a single-input single-output transform such as
// DecA/DecD/RecA/RecD/SWTA/SWTD: every other dimension is held
// fixed while the strip selected by varying axis is extracted into a
// contiguous scratch buffer, transformed into an output strip that is
// zeroed before every call (so additive ops such as RecA/RecD start from
// zero), and copied back into a row-major output array of shape
// info.Shape with axis replaced by outLen.
func ApplyAxisUnary[S wavecore.Scalar](info ArrayInfo, data []S, axis, outLen int, op UnaryStrip[S]) (ArrayInfo, []S, error) {
	if axis < 0 || axis >= info.Rank() {
		return ArrayInfo{}, nil, fmt.Errorf("waveaxis: axis %d out of range: %w", axis, wavecore.ErrShapeMismatch)
	}
	outShape := append([]int(nil), info.Shape...)
	outShape[axis] = outLen
	outInfo := ArrayInfo{Shape: outShape, Strides: RowMajorStrides(outShape), ElemSize: info.ElemSize}
	outData := make([]S, Product(outShape))

	n := info.Shape[axis]
	in := make([]S, n)
	out := make([]S, outLen)

	it := newStripIterator(info.Shape, axis)
	for {
		gatherStrip(data, info, it.idx, axis, in)
		var zero S
		for k := range out {
			out[k] = zero
		}
		if err := op(in, out); err != nil {
			return ArrayInfo{}, nil, err
		}
		scatterStrip(outData, outInfo, it.idx, axis, out)
		if !it.next() {
			break
		}
	}
	return outInfo, outData, nil
}

// ApplyAxisBinary is ApplyAxisUnary's two-input counterpart, used for
// IDWT: a and b must agree on every dimension except axis. op may write
// the combined strip additively: ApplyAxisBinary zeroes out before every
// call.
func ApplyAxisBinary[S wavecore.Scalar](a ArrayInfo, aData []S, b ArrayInfo, bData []S, axis, outLen int, op BinaryStrip[S]) (ArrayInfo, []S, error) {
	if axis < 0 || axis >= a.Rank() {
		return ArrayInfo{}, nil, fmt.Errorf("waveaxis: axis %d out of range: %w", axis, wavecore.ErrShapeMismatch)
	}
	if err := sameOtherAxes(a, b, axis); err != nil {
		return ArrayInfo{}, nil, fmt.Errorf("%w: %v", wavecore.ErrShapeMismatch, err)
	}
	base := a
	if a.Shape[axis] == 0 {
		base = b
	}
	outShape := append([]int(nil), base.Shape...)
	outShape[axis] = outLen
	outInfo := ArrayInfo{Shape: outShape, Strides: RowMajorStrides(outShape), ElemSize: base.ElemSize}
	outData := make([]S, Product(outShape))

	na, nb := a.Shape[axis], b.Shape[axis]
	stripA := make([]S, na)
	stripB := make([]S, nb)
	out := make([]S, outLen)

	it := newStripIterator(base.Shape, axis)
	for {
		if na > 0 {
			gatherStrip(aData, a, it.idx, axis, stripA)
		}
		if nb > 0 {
			gatherStrip(bData, b, it.idx, axis, stripB)
		}
		var zero S
		for k := range out {
			out[k] = zero
		}
		if err := op(stripA, stripB, out); err != nil {
			return ArrayInfo{}, nil, err
		}
		scatterStrip(outData, outInfo, it.idx, axis, out)
		if !it.next() {
			break
		}
	}
	return outInfo, outData, nil
}
