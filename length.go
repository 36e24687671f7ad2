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

import "math/bits"

// DWTOutLen is the output length of a single-level DWT decomposition of
// a length-N signal with a length-L filter. Total and pure.
func DWTOutLen(n, l int, mode Mode) int {
	if n < 1 || l < 1 {
		return 0
	}
	if mode == Periodization {
		return n/2 + n%2
	}
	return (n + l - 1) / 2
}

// ReconstructionOutLen is the length of a full (non-valid) upsampling
// reconstruction convolution from C coefficients with an L-tap filter.
func ReconstructionOutLen(c, l int) int {
	if c < 1 || l < 1 {
		return 0
	}
	return 2*c + l - 2
}

// IDWTOutLen is the output length of a single-level IDWT from C
// coefficients with an L-tap filter.
func IDWTOutLen(c, l int, mode Mode) int {
	if mode == Periodization {
		return 2 * c
	}
	return 2*c - l + 2
}

// SWTOutLen is the output length of one SWT level: always N, since SWT
// never downsamples.
func SWTOutLen(n int) int {
	return n
}

// DWTMaxLevel is the largest number of decomposition levels useful for a
// length-N signal with a length-L filter, per the same rule the
// reference library uses to warn callers before they ask for more
// levels than the data can support.
func DWTMaxLevel(n, l int) int {
	if l <= 1 || n < l-1 {
		return 0
	}
	level := 0
	for v := n / (l - 1); v > 1; v /= 2 {
		level++
	}
	return level
}

// SWTMaxLevel is the largest j such that 2^j divides N: the trailing
// zero count of N, 0 for odd N.
func SWTMaxLevel(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.TrailingZeros(uint(n))
}
