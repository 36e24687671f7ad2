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

// Mode selects how a kernel fabricates virtual samples outside [0, N).
// All nine modes are exposed uniformly here; some reference
// implementations surface only seven in older translation units, but
// that omission is not reproduced.
type Mode int

const (
	// ZeroPad treats every out-of-range sample as zero.
	ZeroPad Mode = iota
	// Symmetric mirrors about the half-sample point: x[-1]=x[0], x[-2]=x[1], ...
	Symmetric
	// AntiSymmetric mirrors with a sign flip: x[-1]=-x[0], x[-2]=-x[1], ...
	AntiSymmetric
	// Reflect mirrors about the whole-sample point, skipping the endpoint:
	// x[-1]=x[1], x[-2]=x[2], ...
	Reflect
	// AntiReflect extends with a running edge value so the extension is
	// C¹-continuous and anti-symmetric about both endpoints.
	AntiReflect
	// ConstantEdge repeats the boundary sample: x[-1]=x[-2]=...=x[0].
	ConstantEdge
	// Smooth linearly extrapolates from the two boundary samples.
	// Degrades to ConstantEdge when N<2.
	Smooth
	// Periodic wraps circularly without shortening the output.
	Periodic
	// Periodization wraps circularly and shortens the output to
	// ceil(N/2); it is handled by a dedicated kernel path, not by the generic extension table.
	Periodization
)

// String renders the mode the way diagnostic error payloads reference it.
func (m Mode) String() string {
	switch m {
	case ZeroPad:
		return "zero"
	case Symmetric:
		return "symmetric"
	case AntiSymmetric:
		return "antisymmetric"
	case Reflect:
		return "reflect"
	case AntiReflect:
		return "antireflect"
	case ConstantEdge:
		return "constant"
	case Smooth:
		return "smooth"
	case Periodic:
		return "periodic"
	case Periodization:
		return "periodization"
	default:
		return "unknown"
	}
}
