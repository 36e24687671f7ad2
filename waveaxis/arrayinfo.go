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

// Package waveaxis applies the single-axis transforms of wavecore to one
// axis of a dense N-D array, holding every other axis fixed.
package waveaxis

import "fmt"

// ArrayInfo describes the shape of a dense N-D array together with its
// strides, in elements (not bytes): offset(idx) = sum(idx[d]*Strides[d]).
// ElemSize records the element width in bytes purely as a diagnostic
// field passed through from callers that track it for their own buffer
// management; the harness itself never dereferences raw memory, it always
// indexes a typed Go slice.
type ArrayInfo struct {
	Shape    []int
	Strides  []int
	ElemSize int
}

// Rank is the number of dimensions.
func (a ArrayInfo) Rank() int { return len(a.Shape) }

// RowMajorStrides computes C-contiguous (row-major) strides for shape: the
// default layout of a freshly allocated output array.
func RowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = acc
		acc *= shape[d]
	}
	return strides
}

// Product returns the total element count of shape.
func Product(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

// offset computes the flat index of idx under info.
func offset(info ArrayInfo, idx []int) int {
	o := 0
	for d, v := range idx {
		o += v * info.Strides[d]
	}
	return o
}

// sameOtherAxes reports whether a and b agree on every dimension except
// axis, the shape-compatibility check every axis-apply entry point runs
// before touching data.
func sameOtherAxes(a, b ArrayInfo, axis int) error {
	if a.Rank() != b.Rank() {
		return fmt.Errorf("waveaxis: rank mismatch %d != %d", a.Rank(), b.Rank())
	}
	for d := 0; d < a.Rank(); d++ {
		if d == axis {
			continue
		}
		if a.Shape[d] != b.Shape[d] {
			return fmt.Errorf("waveaxis: shape mismatch on axis %d: %d != %d", d, a.Shape[d], b.Shape[d])
		}
	}
	return nil
}
