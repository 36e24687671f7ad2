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

// Package kernel implements the signal-extension-aware convolution
// kernels that underpin DWT, IDWT and SWT: downsampling convolution,
// upsampling convolution, and the extension-mode index
// remapping they both dispatch into. It is internal because its
// contract (explicit spans, status-only returns, no panics on data
// values) is meant to be consumed only through the wavecore and
// waveaxis public APIs, which own length validation before calling in.
package kernel

// Scalar is the set of signal element types the engine operates on: real
// single/double precision and complex single/double precision.
type Scalar interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Real is the coefficient precision matching a given Scalar: float32 for
// float32/complex64 signals, float64 for float64/complex128 signals.
// Nothing checks that S and R match: a mismatched pair compiles and runs,
// with each coefficient converted to S's precision in the multiply-add.
type Real interface {
	~float32 | ~float64
}

// mulAddFn is the building block every convolution kernel reduces to:
// acc + coeff*x, where coeff is always real and x may be complex. For
// complex S the real coefficient distributes over both components, so
// no complex multiplication ever occurs.
type mulAddFn[S Scalar, R Real] func(acc S, coeff R, x S) S

// mulAddFor resolves the multiply-add for (S, R) once per kernel
// invocation via a single type switch, rather than per tap: Go generics
// cannot convert a Real value directly to a complex Scalar (float64 does
// not convert to complex64), so the real/imaginary split has to be done
// through a dynamic type assertion somewhere. Resolving it once and
// closing over the result keeps the inner loops branch-free.
func mulAddFor[S Scalar, R Real]() mulAddFn[S, R] {
	var zero S
	switch any(zero).(type) {
	case complex64:
		return func(acc S, coeff R, x S) S {
			re := float64(coeff)
			sum := any(acc).(complex64) + complex64(complex(re, 0)*complex128(any(x).(complex64)))
			return any(sum).(S)
		}
	case complex128:
		return func(acc S, coeff R, x S) S {
			re := float64(coeff)
			sum := any(acc).(complex128) + complex(re, 0)*any(x).(complex128)
			return any(sum).(S)
		}
	case float32:
		return func(acc S, coeff R, x S) S {
			sum := any(acc).(float32) + float32(coeff)*any(x).(float32)
			return any(sum).(S)
		}
	default: // float64
		return func(acc S, coeff R, x S) S {
			sum := any(acc).(float64) + float64(coeff)*any(x).(float64)
			return any(sum).(S)
		}
	}
}

// scaleReal returns r*x for a plain float64 scalar r. Go's conversion
// rules permit T(x) between two numeric types only when both are
// integer/float or both are complex — there is no direct float64-to-S
// conversion when S may be complex — so this goes through the same
// dynamic type assertion as mulAddFor. Used wherever an extension mode
// multiplies a sample by an integer or real coefficient (Smooth's linear
// extrapolation, AntiReflect's running edge).
func scaleReal[S Scalar](r float64, x S) S {
	var zero S
	switch any(zero).(type) {
	case complex64:
		return any(complex64(complex(r, 0)) * any(x).(complex64)).(S)
	case complex128:
		return any(complex(r, 0)*any(x).(complex128)).(S)
	case float32:
		return any(float32(r) * any(x).(float32)).(S)
	default:
		return any(r * any(x).(float64)).(S)
	}
}
