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

package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullUpsampleRejectsOddFilter(t *testing.T) {
	out := make([]float64, 10)
	err := FullUpsample[float64, float64]([]float64{1, 2}, []float64{1, 2, 3}, out)
	assert.ErrorIs(t, err, ErrBadFilterLength)
}

func TestFullUpsampleDistributesEvenOddPhases(t *testing.T) {
	x := []float64{1, 2}
	filt := []float64{10, 20, 30, 40} // l=4
	out := make([]float64, 2*len(x)+len(filt)-2)
	err := FullUpsample[float64, float64](x, filt, out)
	assert.NoError(t, err)
	want := []float64{
		10 * 1, // out[0] = filt[0]*x[0]
		20 * 1, // out[1] = filt[1]*x[0]
		30*1 + 10*2, // out[2] = filt[2]*x[0] + filt[0]*x[1]
		40*1 + 20*2, // out[3] = filt[3]*x[0] + filt[1]*x[1]
		30 * 2,      // out[4] = filt[2]*x[1]
		40 * 2,      // out[5] = filt[3]*x[1]
	}
	for i := range want {
		assert.InDelta(t, want[i], out[i], 1e-12, "out[%d]", i)
	}
}

func TestUpsampleValidSplitHaarReconstructsExactly(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	decLo := []float64{invSqrt2, invSqrt2}
	decHi := []float64{-invSqrt2, invSqrt2}
	a := make([]float64, 4)
	d := make([]float64, 4)
	Downsample[float64, float64](x, len(x), decLo, ZeroPad, a)
	Downsample[float64, float64](x, len(x), decHi, ZeroPad, d)

	recLo := []float64{invSqrt2, invSqrt2}
	recHi := []float64{invSqrt2, -invSqrt2}
	out := make([]float64, 2*len(a)-len(recLo)+2)
	err := UpsampleValidSplit[float64, float64](a, recLo[:1], recLo[1:], out)
	assert.NoError(t, err)
	err = UpsampleValidSplit[float64, float64](d, recHi[:1], recHi[1:], out)
	assert.NoError(t, err)
	for i := range x {
		assert.InDelta(t, x[i], out[i], 1e-9, "out[%d]", i)
	}
}

func TestUpsampleValidSplitPeriodizationHaarReconstructsExactly(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	decLo := []float64{invSqrt2, invSqrt2}
	decHi := []float64{-invSqrt2, invSqrt2}
	a := make([]float64, 2)
	d := make([]float64, 2)
	DownsamplePeriodization[float64, float64](x, decLo, 2, 1, a)
	DownsamplePeriodization[float64, float64](x, decHi, 2, 1, d)

	recLo := []float64{invSqrt2, invSqrt2}
	recHi := []float64{invSqrt2, -invSqrt2}
	out := make([]float64, 2*len(x))
	err := UpsampleValidSplitPeriodization[float64, float64](a, recLo[:1], recLo[1:], out)
	assert.NoError(t, err)
	err = UpsampleValidSplitPeriodization[float64, float64](d, recHi[:1], recHi[1:], out)
	assert.NoError(t, err)
	for i := range x {
		assert.InDelta(t, x[i], out[i], 1e-9, "out[%d]", i)
	}
}

func TestUpsampleValidSplitShortSignalDoesNotPanic(t *testing.T) {
	c := []float64{5}
	filtEven := []float64{invSqrt2, invSqrt2}
	filtOdd := []float64{invSqrt2, -invSqrt2}
	out := make([]float64, 2*len(c))
	err := UpsampleValidSplitPeriodization[float64, float64](c, filtEven, filtOdd, out)
	assert.NoError(t, err)
}
