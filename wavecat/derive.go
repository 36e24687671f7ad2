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

// Package wavecat is the catalog of named wavelets: discrete filter banks
// for DWT/IDWT/SWT and closed-form evaluators for the continuous families
// used outside this module's own transforms.
package wavecat

// Filters holds the four filters a discrete wavelet's transforms are built
// from. Orthogonal families only ever need one independent filter (h,
// stored as RecLo); DeriveOrthogonal fills in the rest. Biorthogonal
// families need two independent filters, one per side of the transform;
// DeriveBiorthogonal fills in the remaining two.
type Filters struct {
	DecLo, DecHi []float64
	RecLo, RecHi []float64
}

// reverse returns a new slice with f's elements in reverse order.
func reverse(f []float64) []float64 {
	out := make([]float64, len(f))
	for i, v := range f {
		out[len(f)-1-i] = v
	}
	return out
}

// alternateSign returns a copy of f with every other element negated:
// element i is negated exactly when L-1-i is odd, i.e.
// out[i] = (-1)^(L-1-i) * f[i].
func alternateSign(f []float64) []float64 {
	l := len(f)
	out := make([]float64, l)
	for i, v := range f {
		if (l-1-i)%2 != 0 {
			v = -v
		}
		out[i] = v
	}
	return out
}

// DeriveOrthogonal builds the full four-filter bank from a single scaling
// (reconstruction low-pass) filter h, the construction every orthogonal
// family in this catalog (Haar, Daubechies, Symlets, Coiflets) shares:
//
//	recLo = h
//	decLo = reverse(h)
//	decHi[i] = (-1)^(L-1-i) * h[i]
//	recHi = reverse(decHi)
func DeriveOrthogonal(h []float64) Filters {
	decHi := alternateSign(h)
	return Filters{
		DecLo: reverse(h),
		DecHi: decHi,
		RecLo: append([]float64(nil), h...),
		RecHi: reverse(decHi),
	}
}

// DeriveBiorthogonal builds the four-filter bank for a biorthogonal pair
// given its two independent filters: decLo (the analysis low-pass) and
// recLo (the synthesis low-pass), which in general have different lengths:
//
//	decHi[i] = (-1)^i * recLo[Lr-1-i]
//	recHi[i] = (-1)^i * decLo[Ld-1-i]
func DeriveBiorthogonal(decLo, recLo []float64) Filters {
	lr := len(recLo)
	ld := len(decLo)
	decHi := make([]float64, lr)
	for i := range decHi {
		v := recLo[lr-1-i]
		if i%2 != 0 {
			v = -v
		}
		decHi[i] = v
	}
	recHi := make([]float64, ld)
	for i := range recHi {
		v := decLo[ld-1-i]
		if i%2 != 0 {
			v = -v
		}
		recHi[i] = v
	}
	return Filters{DecLo: decLo, DecHi: decHi, RecLo: recLo, RecHi: recHi}
}

// DeriveReverseBiorthogonal builds an rbioN.M filter bank from the already-
// derived biorN.M bank by swapping the decomposition and reconstruction
// sides and reversing each filter: rbio's analysis stage is bior's
// synthesis stage run backwards, and vice versa.
func DeriveReverseBiorthogonal(bior Filters) Filters {
	return Filters{
		DecLo: reverse(bior.RecLo),
		DecHi: reverse(bior.RecHi),
		RecLo: reverse(bior.DecLo),
		RecHi: reverse(bior.DecHi),
	}
}
