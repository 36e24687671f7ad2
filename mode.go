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

// Mode selects how a kernel fabricates virtual samples outside [0, N).
// It is a type alias over the internal kernel package's mode so
// that kernel.Mode values can cross the package boundary without
// conversion.
type Mode = kernel.Mode

// All nine extension modes; see kernel.Mode's doc for behavior.
const (
	ZeroPad       = kernel.ZeroPad
	Symmetric     = kernel.Symmetric
	AntiSymmetric = kernel.AntiSymmetric
	Reflect       = kernel.Reflect
	AntiReflect   = kernel.AntiReflect
	ConstantEdge  = kernel.ConstantEdge
	Smooth        = kernel.Smooth
	Periodic      = kernel.Periodic
	Periodization = kernel.Periodization
)
