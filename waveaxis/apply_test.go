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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wavecore/wavecore"
)

func TestApplyAxisUnaryDoublesEachStrip(t *testing.T) {
	// 2x3 array, row-major; doubling along axis 1 (length 3) should leave
	// axis 0 (length 2) untouched and double every element in place.
	shape := []int{2, 3}
	info := ArrayInfo{Shape: shape, Strides: RowMajorStrides(shape)}
	data := []float64{1, 2, 3, 4, 5, 6}

	double := func(in, out []float64) error {
		for i, v := range in {
			out[i] = v * 2
		}
		return nil
	}
	outInfo, outData, err := ApplyAxisUnary[float64](info, data, 1, 3, double)
	assert.NoError(t, err)
	assert.Equal(t, shape, outInfo.Shape)
	want := []float64{2, 4, 6, 8, 10, 12}
	assert.Equal(t, want, outData)
}

func TestApplyAxisUnaryChangesAxisLength(t *testing.T) {
	shape := []int{2, 4}
	info := ArrayInfo{Shape: shape, Strides: RowMajorStrides(shape)}
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	sumPairs := func(in, out []float64) error {
		for i := range out {
			out[i] = in[2*i] + in[2*i+1]
		}
		return nil
	}
	outInfo, outData, err := ApplyAxisUnary[float64](info, data, 1, 2, sumPairs)
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 2}, outInfo.Shape)
	assert.Equal(t, []float64{3, 7, 11, 15}, outData)
}

func TestApplyAxisUnaryAxisOutOfRange(t *testing.T) {
	shape := []int{2, 2}
	info := ArrayInfo{Shape: shape, Strides: RowMajorStrides(shape)}
	data := []float64{1, 2, 3, 4}
	_, _, err := ApplyAxisUnary[float64](info, data, 5, 2, func(in, out []float64) error { return nil })
	assert.ErrorIs(t, err, wavecore.ErrShapeMismatch)
}

func TestApplyAxisBinaryCombinesTwoArrays(t *testing.T) {
	shape := []int{3, 2}
	a := ArrayInfo{Shape: shape, Strides: RowMajorStrides(shape)}
	b := ArrayInfo{Shape: shape, Strides: RowMajorStrides(shape)}
	aData := []float64{1, 2, 3, 4, 5, 6}
	bData := []float64{10, 20, 30, 40, 50, 60}

	combine := func(x, y, out []float64) error {
		for i := range out {
			if i < len(x) {
				out[i] += x[i]
			}
			if i < len(y) {
				out[i] += y[i]
			}
		}
		return nil
	}
	outInfo, outData, err := ApplyAxisBinary[float64](a, aData, b, bData, 1, 2, combine)
	assert.NoError(t, err)
	assert.Equal(t, shape, outInfo.Shape)
	want := []float64{11, 22, 33, 44, 55, 66}
	assert.Equal(t, want, outData)
}

func TestApplyAxisBinaryShapeMismatch(t *testing.T) {
	a := ArrayInfo{Shape: []int{2, 3}, Strides: RowMajorStrides([]int{2, 3})}
	b := ArrayInfo{Shape: []int{3, 3}, Strides: RowMajorStrides([]int{3, 3})}
	_, _, err := ApplyAxisBinary[float64](a, make([]float64, 6), b, make([]float64, 9), 1, 3,
		func(x, y, out []float64) error { return nil })
	assert.ErrorIs(t, err, wavecore.ErrShapeMismatch)
}

func TestRowMajorStridesAndProduct(t *testing.T) {
	shape := []int{2, 3, 4}
	strides := RowMajorStrides(shape)
	assert.Equal(t, []int{12, 4, 1}, strides)
	assert.Equal(t, 24, Product(shape))
}
