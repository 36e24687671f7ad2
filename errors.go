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

import "errors"

// Error kinds. Every kernel and API function returns one of these
// (or nil), wrapped with fmt.Errorf("%w: ...") for positional context
// such as which axis or which length was at fault. Nothing is ever
// swallowed or retried internally, and nothing panics on data values.
var (
	// ErrUnknownWavelet: the (family, order) pair is not in the catalog.
	ErrUnknownWavelet = errors.New("wavecore: unknown wavelet")

	// ErrShapeMismatch: non-axis dimensions differ, or an axis length
	// does not satisfy the transform-specific length arithmetic.
	ErrShapeMismatch = errors.New("wavecore: shape mismatch")

	// ErrInvalidOutputLength: the caller-provided output span is the
	// wrong size for the requested operation.
	ErrInvalidOutputLength = errors.New("wavecore: invalid output length")

	// ErrBadFilterLength: a filter length is odd where an even length
	// is required (upsampling convolution, split-phase reconstruction).
	ErrBadFilterLength = errors.New("wavecore: bad filter length")

	// ErrLevelOutOfRange: an SWT level is < 1 or > swt_max_level(N).
	ErrLevelOutOfRange = errors.New("wavecore: level out of range")

	// ErrNullInput: both approximation and detail inputs are nil/empty
	// in an IDWT call, or the input of a DecA/DecD/RecA/RecD/SWTA/SWTD
	// call is empty.
	ErrNullInput = errors.New("wavecore: approximation and detail both nil")

	// ErrInternalAllocationFailure: a scratch allocation failed. The
	// engine has no allocator hooks of its own; this exists so callers
	// that plug in a bounded arena can surface an error instead of a
	// panic when it is exhausted.
	ErrInternalAllocationFailure = errors.New("wavecore: internal allocation failure")
)
