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
	"errors"
	"fmt"

	"github.com/wavecore/wavecore/internal/kernel"
)

// toFilter converts a wavelet's float64 filter to the coefficient
// precision R the call site operates at.
func toFilter[R Real](f []float64) []R {
	out := make([]R, len(f))
	for i, v := range f {
		out[i] = R(v)
	}
	return out
}

func wrapKernelErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, kernel.ErrBadFilterLength):
		return fmt.Errorf("wavecore: %w", ErrBadFilterLength)
	case errors.Is(err, kernel.ErrInvalidOutputLength):
		return fmt.Errorf("wavecore: %w", ErrInvalidOutputLength)
	default:
		return err
	}
}

// DecA computes the approximation (low-pass) half of a single-level DWT
// decomposition of x under w and mode, writing DWTOutLen(len(x),
// w.FilterLen(), mode) samples into out.
func DecA[S Scalar, R Real](x []S, w DiscreteWavelet, mode Mode, out []S) error {
	return decompose[S, R](x, w.decLo, mode, out)
}

// DecD computes the detail (high-pass) half of a single-level DWT
// decomposition, the same shape contract as DecA.
func DecD[S Scalar, R Real](x []S, w DiscreteWavelet, mode Mode, out []S) error {
	return decompose[S, R](x, w.decHi, mode, out)
}

func decompose[S Scalar, R Real](x []S, filt []float64, mode Mode, out []S) error {
	if len(x) == 0 {
		return fmt.Errorf("wavecore: dec: %w", ErrNullInput)
	}
	want := DWTOutLen(len(x), len(filt), mode)
	if len(out) != want {
		return fmt.Errorf("wavecore: dec: want %d, got %d: %w", want, len(out), ErrInvalidOutputLength)
	}
	f := toFilter[R](filt)
	if mode == Periodization {
		kernel.DownsamplePeriodization[S, R](x, f, 2, 1, out)
		return nil
	}
	kernel.Downsample[S, R](x, len(x), f, mode, out)
	return nil
}

// RecA adds the single-stream direct reconstruction contribution of
// approximation coefficients c through w's low-pass reconstruction filter
// into out. len(out) must equal ReconstructionOutLen
// (len(c), w.FilterLen()).
func RecA[S Scalar, R Real](c []S, w DiscreteWavelet, out []S) error {
	return reconstructDirect[S, R](c, w.recLo, out)
}

// RecD is RecA's high-pass counterpart.
func RecD[S Scalar, R Real](c []S, w DiscreteWavelet, out []S) error {
	return reconstructDirect[S, R](c, w.recHi, out)
}

func reconstructDirect[S Scalar, R Real](c []S, filt []float64, out []S) error {
	if len(c) == 0 {
		return fmt.Errorf("wavecore: rec: %w", ErrNullInput)
	}
	want := ReconstructionOutLen(len(c), len(filt))
	if len(out) != want {
		return fmt.Errorf("wavecore: rec: want %d, got %d: %w", want, len(out), ErrInvalidOutputLength)
	}
	f := toFilter[R](filt)
	return wrapKernelErr(kernel.FullUpsample[S, R](c, f, out))
}

// IDWT reconstructs a single level from approximation coefficients approx
// and detail coefficients detail, adding their contributions into out
// (len(out) == IDWTOutLen(C, w.FilterLen(), mode)). Either approx or
// detail (not both) may be nil, treated as all-zero; out is zeroed by the
// caller's allocation and both contributions are summed into it in place.
func IDWT[S Scalar, R Real](approx, detail []S, w DiscreteWavelet, mode Mode, out []S) error {
	if len(approx) == 0 && len(detail) == 0 {
		return fmt.Errorf("wavecore: idwt: %w", ErrNullInput)
	}
	c := approx
	if len(c) == 0 {
		c = detail
	}
	want := IDWTOutLen(len(c), w.filtLen, mode)
	if len(out) != want {
		return fmt.Errorf("wavecore: idwt: want %d, got %d: %w", want, len(out), ErrInvalidOutputLength)
	}
	half := w.filtLen / 2
	recLoEven, recLoOdd := splitPhases[R](w.recLo, half)
	recHiEven, recHiOdd := splitPhases[R](w.recHi, half)

	apply := func(c []S, even, odd []R) error {
		if len(c) == 0 {
			return nil
		}
		if mode == Periodization {
			return wrapKernelErr(kernel.UpsampleValidSplitPeriodization[S, R](c, even, odd, out))
		}
		return wrapKernelErr(kernel.UpsampleValidSplit[S, R](c, even, odd, out))
	}
	if err := apply(approx, recLoEven, recLoOdd); err != nil {
		return err
	}
	return apply(detail, recHiEven, recHiOdd)
}

// splitPhases splits a reconstruction filter (length L, even) into its
// even- and odd-indexed taps, each length L/2, in the coefficient
// precision R.
func splitPhases[R Real](filt []float64, half int) (even, odd []R) {
	even = make([]R, half)
	odd = make([]R, half)
	for j := 0; j < half; j++ {
		even[j] = R(filt[2*j])
		odd[j] = R(filt[2*j+1])
	}
	return even, odd
}

// SWTA computes one level of the stationary (à-trous) approximation
// transform: level must be in [1, SWTMaxLevel(len(x))]. len(out) must
// equal SWTOutLen(len(x)) == len(x).
func SWTA[S Scalar, R Real](x []S, w DiscreteWavelet, level int, out []S) error {
	return swt[S, R](x, w.decLo, level, out)
}

// SWTD is SWTA's detail counterpart.
func SWTD[S Scalar, R Real](x []S, w DiscreteWavelet, level int, out []S) error {
	return swt[S, R](x, w.decHi, level, out)
}

func swt[S Scalar, R Real](x []S, filt []float64, level int, out []S) error {
	n := len(x)
	if n == 0 {
		return fmt.Errorf("wavecore: swt: %w", ErrNullInput)
	}
	if level < 1 || level > SWTMaxLevel(n) {
		return fmt.Errorf("wavecore: swt: level %d out of range: %w", level, ErrLevelOutOfRange)
	}
	if len(out) != n {
		return fmt.Errorf("wavecore: swt: want %d, got %d: %w", n, len(out), ErrInvalidOutputLength)
	}
	f := toFilter[R](filt)
	fstep := 1 << (level - 1)
	kernel.DownsamplePeriodization[S, R](x, f, 1, fstep, out)
	return nil
}
