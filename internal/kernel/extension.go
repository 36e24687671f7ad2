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

// virtualLeft returns the signal value at virtual index -1-k (k>=0, the
// k-th sample before index 0) under mode. x has length n>0. This and
// virtualRight are the only two functions in the package that know how
// each of the eight non-periodization modes behaves; every kernel loop
// funnels its boundary taps through them instead of materializing an
// extended buffer.
func virtualLeft[S Scalar](x []S, n, k int, mode Mode) S {
	switch mode {
	case ZeroPad:
		var zero S
		return zero
	case ConstantEdge:
		return x[0]
	case Smooth:
		if n < 2 {
			return x[0] // degrade to ConstantEdge for N<2
		}
		return x[0] + scaleReal(float64(k+1), x[0]-x[1])
	case Symmetric:
		// x[-1]=x[0], x[-2]=x[1], ...; period 2n.
		p := k % (2 * n)
		if p < n {
			return x[p]
		}
		return x[2*n-1-p]
	case AntiSymmetric:
		p := k % (2 * n)
		if p < n {
			return negate(x[p])
		}
		return x[2*n-1-p]
	case Reflect:
		// x[-1]=x[1], x[-2]=x[2], ...; period 2n-2 (needs n>=2).
		if n < 2 {
			return x[0]
		}
		period := 2 * (n - 1)
		p := (k + 1) % period
		if p < n {
			return x[p]
		}
		return x[period-p]
	case Periodic:
		p := k % n
		return x[n-1-p]
	case AntiReflect:
		return antiReflectLeft(x, n, k)
	default:
		var zero S
		return zero
	}
}

// virtualRight returns the signal value at virtual index n+k (k>=0, the
// k-th sample after index n-1) under mode.
func virtualRight[S Scalar](x []S, n, k int, mode Mode) S {
	switch mode {
	case ZeroPad:
		var zero S
		return zero
	case ConstantEdge:
		return x[n-1]
	case Smooth:
		if n < 2 {
			return x[n-1]
		}
		return x[n-1] + scaleReal(float64(k+1), x[n-1]-x[n-2])
	case Symmetric:
		p := k % (2 * n)
		if p < n {
			return x[n-1-p]
		}
		return x[p-n]
	case AntiSymmetric:
		p := k % (2 * n)
		if p < n {
			return negate(x[n-1-p])
		}
		return x[p-n]
	case Reflect:
		if n < 2 {
			return x[n-1]
		}
		period := 2 * (n - 1)
		p := (k + 1) % period
		if p < n {
			return x[n-1-p]
		}
		return x[n-1-(period-p)]
	case Periodic:
		p := k % n
		return x[p]
	case AntiReflect:
		return antiReflectRight(x, n, k)
	default:
		var zero S
		return zero
	}
}

// negate returns -x for any Scalar; used by AntiSymmetric.
func negate[S Scalar](x S) S {
	var zero S
	switch any(zero).(type) {
	case complex64:
		return any(-any(x).(complex64)).(S)
	case complex128:
		return any(-any(x).(complex128)).(S)
	case float32:
		return any(-any(x).(float32)).(S)
	default:
		return any(-any(x).(float64)).(S)
	}
}

// antiReflectLeft implements the whole-sample anti-symmetric extension of
// §4.2: the extension walks the signal in (n-1)-sample halves, alternately
// forward (le - (x[m]-x[0])) and backward (le + (x[n-1-m]-x[n-1])), where
// the running edge value le is the last sample of the previous half and so
// advances by 2*(x[0]-x[n-1]) every two halves. The per-call recurrence
// telescopes into the closed form below, so no cross-call state is
// needed — a prerequisite for the per-tap, any-order-of-k access pattern
// every kernel loop uses.
func antiReflectLeft[S Scalar](x []S, n, k int) S {
	if n < 2 {
		return x[0]
	}
	period := n - 1
	run := k / period
	m := k%period + 1
	edgeDelta := scaleReal(float64(2*(run/2)), x[0]-x[n-1])
	if run%2 == 0 {
		return x[0] + x[0] - x[m] + edgeDelta
	}
	return x[0] + x[0] - x[n-1] - x[n-1] + x[n-1-m] + edgeDelta
}

// antiReflectRight is the mirror image of antiReflectLeft about the
// right boundary.
func antiReflectRight[S Scalar](x []S, n, k int) S {
	if n < 2 {
		return x[n-1]
	}
	period := n - 1
	run := k / period
	m := k%period + 1
	edgeDelta := scaleReal(float64(2*(run/2)), x[n-1]-x[0])
	if run%2 == 0 {
		return x[n-1] + x[n-1] - x[n-1-m] + edgeDelta
	}
	return x[n-1] + x[n-1] - x[0] - x[0] + x[m] + edgeDelta
}
