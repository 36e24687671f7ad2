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

import "github.com/wavecore/wavecore/internal/kernel"

// Scalar is the set of signal element types the engine operates on: real
// single/double precision and complex single/double precision.
type Scalar = kernel.Scalar

// Real is the coefficient precision matching a given Scalar: float32 for
// float32/complex64 signals, float64 for float64/complex128 signals.
type Real = kernel.Real
