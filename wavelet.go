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

	"github.com/wavecore/wavecore/wavecat"
)

// DiscreteWavelet is a resolved filter bank ready to drive DecA/DecD/RecA/
// RecD/IDWT/SWTA/SWTD.
type DiscreteWavelet struct {
	name    string
	decLo   []float64
	decHi   []float64
	recLo   []float64
	recHi   []float64
	filtLen int
}

// Name is the catalog name the wavelet was resolved from.
func (w DiscreteWavelet) Name() string { return w.name }

// FilterLen is the common tap count L of all four filters.
func (w DiscreteWavelet) FilterLen() int { return w.filtLen }

// DiscreteWaveletFromName resolves a catalog name ("haar", "db2", "sym4",
// "bior1.3", "rbio1.3", ...) into a DiscreteWavelet, or ErrUnknownWavelet
// if name is not in the catalog.
func DiscreteWaveletFromName(name string) (DiscreteWavelet, error) {
	d, err := wavecat.FromName(name)
	if err != nil {
		if errors.Is(err, wavecat.ErrUnknownWavelet) {
			return DiscreteWavelet{}, fmt.Errorf("wavecore: %q: %w: %w", name, ErrUnknownWavelet, err)
		}
		return DiscreteWavelet{}, err
	}
	return DiscreteWavelet{
		name:    d.Name,
		decLo:   d.Filters.DecLo,
		decHi:   d.Filters.DecHi,
		recLo:   d.Filters.RecLo,
		recHi:   d.Filters.RecHi,
		filtLen: d.FilterLen(),
	}, nil
}

// ContinuousWavelet evaluates a continuous wavelet at a real argument.
// Its Eval returns complex128 uniformly since several families
// (Complex Morlet, Complex Gaussian, Shannon, Frequency B-Spline) are
// inherently complex-valued; real families report a zero imaginary part.
type ContinuousWavelet struct {
	name string
	eval func(float64) complex128
}

// Name is the catalog name the wavelet was resolved from.
func (w ContinuousWavelet) Name() string { return w.name }

// Eval evaluates the wavelet at x.
func (w ContinuousWavelet) Eval(x float64) complex128 { return w.eval(x) }

// ContinuousWaveletFromName resolves a continuous wavelet by name ("mexh",
// "morl", "gaus1".."gaus8", "cgau1".."cgau8", "shanB-C", "cmorB-C",
// "fbspM-B-C"), or ErrUnknownWavelet if name does not match any family.
func ContinuousWaveletFromName(name string) (ContinuousWavelet, error) {
	c, err := wavecat.ContinuousFromName(name)
	if err != nil {
		if errors.Is(err, wavecat.ErrUnknownContinuousWavelet) {
			return ContinuousWavelet{}, fmt.Errorf("wavecore: %q: %w", name, ErrUnknownWavelet)
		}
		return ContinuousWavelet{}, err
	}
	return ContinuousWavelet{name: c.Name, eval: c.Eval}, nil
}
