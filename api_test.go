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

package wavecore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
	"pgregory.net/rapid"
)

func haarWavelet(t *testing.T) DiscreteWavelet {
	t.Helper()
	w, err := DiscreteWaveletFromName("haar")
	assert.NoError(t, err)
	return w
}

func TestDecIDWTRoundTripPeriodization(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 64).Draw(rt, "n")
		x := rapid.SliceOfN(rapid.Float64Range(-100, 100), n, n).Draw(rt, "x")
		w := mustWavelet(rt, "db2")

		aLen := DWTOutLen(n, w.FilterLen(), Periodization)
		a := make([]float64, aLen)
		d := make([]float64, aLen)
		assert.NoError(rt, DecA[float64, float64](x, w, Periodization, a))
		assert.NoError(rt, DecD[float64, float64](x, w, Periodization, d))

		out := make([]float64, IDWTOutLen(aLen, w.FilterLen(), Periodization))
		assert.NoError(rt, IDWT[float64, float64](a, d, w, Periodization, out))

		for i := 0; i < n; i++ {
			if !scalar.EqualWithinAbsOrRel(out[i], x[i], 1e-6, 1e-6) {
				rt.Fatalf("roundtrip mismatch at %d: got %v want %v", i, out[i], x[i])
			}
		}
	})
}

func TestDecIDWTRoundTripZeroPad(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(4, 64).Draw(rt, "n")
		x := rapid.SliceOfN(rapid.Float64Range(-50, 50), n, n).Draw(rt, "x")
		w := haarWaveletRapid(rt)

		aLen := DWTOutLen(n, w.FilterLen(), ZeroPad)
		a := make([]float64, aLen)
		d := make([]float64, aLen)
		assert.NoError(rt, DecA[float64, float64](x, w, ZeroPad, a))
		assert.NoError(rt, DecD[float64, float64](x, w, ZeroPad, d))

		out := make([]float64, IDWTOutLen(aLen, w.FilterLen(), ZeroPad))
		assert.NoError(rt, IDWT[float64, float64](a, d, w, ZeroPad, out))

		// Zero-pad IDWT reproduces x on its interior; the Haar filter has
		// no boundary overlap at all so the whole signal round-trips.
		for i := 0; i < n; i++ {
			if !scalar.EqualWithinAbsOrRel(out[i], x[i], 1e-9, 1e-9) {
				rt.Fatalf("roundtrip mismatch at %d: got %v want %v", i, out[i], x[i])
			}
		}
	})
}

func TestDecIsLinear(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(4, 32).Draw(rt, "n")
		x := rapid.SliceOfN(rapid.Float64Range(-10, 10), n, n).Draw(rt, "x")
		y := rapid.SliceOfN(rapid.Float64Range(-10, 10), n, n).Draw(rt, "y")
		k := rapid.Float64Range(-5, 5).Draw(rt, "k")
		w := haarWaveletRapid(rt)

		sum := make([]float64, n)
		for i := range x {
			sum[i] = x[i] + k*y[i]
		}

		aLen := DWTOutLen(n, w.FilterLen(), ZeroPad)
		ax, ay, asum := make([]float64, aLen), make([]float64, aLen), make([]float64, aLen)
		assert.NoError(rt, DecA[float64, float64](x, w, ZeroPad, ax))
		assert.NoError(rt, DecA[float64, float64](y, w, ZeroPad, ay))
		assert.NoError(rt, DecA[float64, float64](sum, w, ZeroPad, asum))

		for i := 0; i < aLen; i++ {
			want := ax[i] + k*ay[i]
			if !scalar.EqualWithinAbsOrRel(asum[i], want, 1e-8, 1e-8) {
				rt.Fatalf("linearity mismatch at %d: got %v want %v", i, asum[i], want)
			}
		}
	})
}

func TestSWTLevelOneHaarMatchesCircularPairSum(t *testing.T) {
	// Level-1 SWT never decimates: a[o] is the circular pairwise sum
	// x[o]+x[o+1] (mod n), d[o] the corresponding difference, both scaled
	// by 1/sqrt(2) for Haar.
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	n := len(x)
	w := haarWavelet(t)
	a := make([]float64, n)
	d := make([]float64, n)
	assert.NoError(t, SWTA[float64, float64](x, w, 1, a))
	assert.NoError(t, SWTD[float64, float64](x, w, 1, d))

	for o := 0; o < n; o++ {
		next := x[(o+1)%n]
		assert.InDelta(t, (x[o]+next)*invSqrt2(), a[o], 1e-9, "a[%d]", o)
		assert.InDelta(t, (x[o]-next)*invSqrt2(), d[o], 1e-9, "d[%d]", o)
	}
}

func TestSWTLevelOutOfRange(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	w := haarWavelet(t)
	out := make([]float64, len(x))
	err := SWTA[float64, float64](x, w, 0, out)
	assert.ErrorIs(t, err, ErrLevelOutOfRange)
	err = SWTA[float64, float64](x, w, SWTMaxLevel(len(x))+1, out)
	assert.ErrorIs(t, err, ErrLevelOutOfRange)
}

func TestDecNullInput(t *testing.T) {
	w := haarWavelet(t)
	out := make([]float64, 0)
	err := DecA[float64, float64](nil, w, ZeroPad, out)
	assert.ErrorIs(t, err, ErrNullInput)
}

func TestIDWTNullInput(t *testing.T) {
	w := haarWavelet(t)
	out := make([]float64, 4)
	err := IDWT[float64, float64](nil, nil, w, ZeroPad, out)
	assert.ErrorIs(t, err, ErrNullInput)
}

func TestUnknownWaveletName(t *testing.T) {
	_, err := DiscreteWaveletFromName("not-a-real-wavelet")
	assert.ErrorIs(t, err, ErrUnknownWavelet)
}

func mustWavelet(rt *rapid.T, name string) DiscreteWavelet {
	w, err := DiscreteWaveletFromName(name)
	if err != nil {
		rt.Fatal(err)
	}
	return w
}

func haarWaveletRapid(rt *rapid.T) DiscreteWavelet {
	return mustWavelet(rt, "haar")
}

func invSqrt2() float64 { return 0.7071067811865476 }
