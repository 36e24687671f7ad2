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

// Package wavecore is the core numerical engine of a 1-D wavelet
// transform library: signal-extension-aware convolution kernels for the
// discrete wavelet transform (DWT), its inverse (IDWT), and the
// stationary wavelet transform (SWT), plus the wavelet catalog those
// kernels draw filter banks from.
//
// # Scope
//
// This package covers single-level, single-axis transforms and the
// length arithmetic that governs buffer sizing. Multi-level
// orchestration, wavelet packet trees, denoising, and N-D transforms
// beyond per-axis application are callers' responsibility; see
// [wavecore/waveaxis] for the per-axis harness over dense N-D arrays.
//
// # Usage
//
//	w, err := wavecore.DiscreteWaveletFromName("db2")
//	if err != nil {
//		// unknown family/order
//	}
//	a := make([]float64, wavecore.DWTOutLen(len(x), w.FilterLen(), wavecore.ZeroPad))
//	d := make([]float64, len(a))
//	if err := wavecore.DecA[float64, float64](x, w, wavecore.ZeroPad, a); err != nil {
//		// ...
//	}
//	if err := wavecore.DecD[float64, float64](x, w, wavecore.ZeroPad, d); err != nil {
//		// ...
//	}
//
// All functions are pure and synchronous; there is no internal
// concurrency and no global state. Wavelet values are immutable
// after construction and freely shareable across goroutines; buffers are
// always caller-owned.
package wavecore
