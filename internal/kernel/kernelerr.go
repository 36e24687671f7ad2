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

import "errors"

// The two error kinds a kernel function can raise on its own,
// without help from a caller that already knows wavelet/axis lengths.
// Every other kind (UnknownWavelet, ShapeMismatch, LevelOutOfRange,
// NullInput, InternalAllocationFailure) is a wavecore/waveaxis-level
// concern and lives there instead.
var (
	// ErrBadFilterLength: a filter length is odd where an even length
	// is required.
	ErrBadFilterLength = errors.New("kernel: bad filter length")

	// ErrInvalidOutputLength: the valid-split reconstruction has no room
	// to produce output.
	ErrInvalidOutputLength = errors.New("kernel: invalid output length")
)
