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

// FullUpsample simulates inserting a zero between every pair of samples of
// x (length n) and convolving the result with filt (even length l), adding
// ReconstructionOutLen(n, l) = 2n+l-2 samples into out. out must
// already be zeroed or otherwise hold the caller's running total; every
// write here is additive (+=), matching rec_a/rec_d's single-stream direct
// reconstruction semantics.
//
// Rather than materialize the zero-interleaved signal, each input sample
// x[i] is distributed straight into its two output phases by walking filt
// two taps at a time: x[i] lands at 2*i+2*j for even-indexed taps and
// 2*i+2*j+1 for odd-indexed taps.
func FullUpsample[S Scalar, R Real](x []S, filt []R, out []S) error {
	l := len(filt)
	if l < 2 || l%2 != 0 {
		return ErrBadFilterLength
	}
	add := mulAddFor[S, R]()
	half := l / 2
	for i, xi := range x {
		base := 2 * i
		for j := 0; j < half; j++ {
			out[base+2*j] = add(out[base+2*j], filt[2*j], xi)
			out[base+2*j+1] = add(out[base+2*j+1], filt[2*j+1], xi)
		}
	}
	return nil
}

// UpsampleValidSplit is the IDWT reconstruction engine: given c
// (length C coefficients) and a reconstruction filter already split into
// its even- and odd-indexed phases (each length L/2), it adds
// IDWTOutLen(C, L) = 2C-L+2 samples into out.
//
// Every output position n only ever receives contributions from filter taps
// whose index shares n's parity, since the conceptual zero-inserted signal
// is zero at every odd position. filtEven/filtOdd is exactly that split,
// precomputed once by the caller instead of re-derived per call. Because
// the engine only ever touches the overlapping valid region — i ranges over
// [L/2-1, C-1] — every c[i-j] it reads is already in range; no extension
// mode applies to the IDWT engine at all.
func UpsampleValidSplit[S Scalar, R Real](c []S, filtEven, filtOdd []R, out []S) error {
	half := len(filtEven)
	if half != len(filtOdd) || half < 1 {
		return ErrBadFilterLength
	}
	if len(c) < half {
		return ErrInvalidOutputLength
	}
	add := mulAddFor[S, R]()
	start := half - 1
	for i := start; i < len(c); i++ {
		var sumEven, sumOdd S
		for j := 0; j < half; j++ {
			idx := i - j
			sumEven = add(sumEven, filtEven[j], c[idx])
			sumOdd = add(sumOdd, filtOdd[j], c[idx])
		}
		o := 2 * (i - start)
		out[o] = add(out[o], 1, sumEven)
		out[o+1] = add(out[o+1], 1, sumOdd)
	}
	return nil
}

// UpsampleValidSplitPeriodization is the periodization specialization of
// UpsampleValidSplit: c is treated as circular with period C, and
// the engine produces all 2C output samples rather than trimming to a
// valid region, since periodization mode never shrinks a round trip.
//
// Output pair i (i over [0, C)) is the two-phase sum centred on
// coefficient i + (L/2)/2, the same alignment DownsamplePeriodization's
// i = L/2 + 2*o start gives the decomposition. When L/2 is odd that
// reproduces the original signal exactly. When L/2 is
// even that alignment is off by one slot; rotating the finished output
// right by one position before adding it in is the documented fix.
// Short signals (C < L/2) need no special casing: the circular index
// arithmetic (idx mod C, normalized into [0, C)) degrades to wrapping
// around the buffer more than once per output, which is exactly the
// "cyclically extend, then fold back" behavior called for, without any
// separate extension buffer.
func UpsampleValidSplitPeriodization[S Scalar, R Real](c []S, filtEven, filtOdd []R, out []S) error {
	half := len(filtEven)
	if half != len(filtOdd) || half < 1 {
		return ErrBadFilterLength
	}
	cn := len(c)
	if cn < 1 {
		return ErrInvalidOutputLength
	}
	add := mulAddFor[S, R]()
	pairs := make([]S, 2*cn)
	for i := 0; i < cn; i++ {
		var sumEven, sumOdd S
		for j := 0; j < half; j++ {
			idx := (i + half/2 - j) % cn
			if idx < 0 {
				idx += cn
			}
			sumEven = add(sumEven, filtEven[j], c[idx])
			sumOdd = add(sumOdd, filtOdd[j], c[idx])
		}
		pairs[2*i] = sumEven
		pairs[2*i+1] = sumOdd
	}
	rotate := half%2 == 0
	total := 2 * cn
	for o := 0; o < total; o++ {
		src := o
		if rotate {
			src = (o - 1 + total) % total
		}
		out[o] = add(out[o], 1, pairs[src])
	}
	return nil
}
