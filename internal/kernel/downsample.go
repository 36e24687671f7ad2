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

// Downsample computes the single-level, step-2 decimated convolution of x
// (length n) against filt (length l) for one of the eight non-periodization
// extension modes, writing len(out) samples (wavecore.DWTOutLen(n, l, mode))
// into out.
//
// Every output sample is produced by the same loop: for output index o, the
// input position is i = 1 + 2*o, and the sample at virtual index
// i-j (j ranging over the filter) is drawn from x directly when it falls in
// [0, n), and otherwise from virtualLeft/virtualRight. Splitting this into
// three named regions (left overhang, interior, right overhang) is an
// optimization, not a different algorithm: branching on idx per tap is
// exactly equivalent and also correct when l > n, when overhangs on both
// sides of a single output overlap.
func Downsample[S Scalar, R Real](x []S, n int, filt []R, mode Mode, out []S) {
	l := len(filt)
	add := mulAddFor[S, R]()
	for o := range out {
		i := 1 + 2*o
		var acc S
		for j := 0; j < l; j++ {
			idx := i - j
			var v S
			switch {
			case idx < 0:
				v = virtualLeft(x, n, -idx-1, mode)
			case idx >= n:
				v = virtualRight(x, n, idx-n, mode)
			default:
				v = x[idx]
			}
			acc = add(acc, filt[j], v)
		}
		out[o] = acc
	}
}

// DownsamplePeriodization computes the circularly-wrapped, à-trous-capable
// decimated convolution used by periodization-mode DWT and every SWT level.
//
// s is the output stride: 2 for a genuine DWT decomposition, 1 for SWT
// (which never decimates — SWTOutLen(n) == n, which only holds for s=1).
// fstep is the à-trous hole spacing between logical filter taps: 1 at SWT
// level one, 2^(level-1) at deeper levels, always 1 for plain DWT. Holes
// are never materialized as explicit zero taps; skipping by fstep in the
// index arithmetic has the same effect and is the kernel's only contact
// point with SWT's "dilate and don't decimate" doubling discipline.
//
// The signal is treated as circular with period n rounded up to a multiple
// of s (duplicating the last sample once when n is odd and s is 2); this is
// the same fixup that makes wavecore.DWTOutLen(n, l, Periodization) equal
// ceil(n/2) rather than floor. The number of output samples this function
// produces is that rounded period divided by s, i.e. len(out) is caller's
// responsibility to size correctly (DWTOutLen / SWTOutLen).
func DownsamplePeriodization[S Scalar, R Real](x []S, filt []R, s, fstep int, out []S) {
	n := len(x)
	nPad := n
	if rem := n % s; rem != 0 {
		nPad += s - rem
	}
	l := len(filt)
	leff := l * fstep
	half := leff / 2
	add := mulAddFor[S, R]()
	for o := range out {
		i := half + s*o
		var acc S
		for j := 0; j < l; j++ {
			raw := i - j*fstep
			p := raw % nPad
			if p < 0 {
				p += nPad
			}
			var v S
			if p < n {
				v = x[p]
			} else {
				v = x[n-1] // the single duplicated sample when n is odd
			}
			acc = add(acc, filt[j], v)
		}
		out[o] = acc
	}
}
