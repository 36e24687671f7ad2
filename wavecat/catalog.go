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

package wavecat

import "errors"

// ErrUnknownWavelet is returned by FromName when name is not a recognized
// discrete wavelet. The error wavecore.DiscreteWaveletFromName returns
// wraps both this value and wavecore.ErrUnknownWavelet, so callers can
// errors.Is against either package.
var ErrUnknownWavelet = errors.New("wavecat: unknown discrete wavelet")

// Discrete describes a named discrete wavelet: its catalog name and its
// filter bank. It carries no symmetry or vanishing-moment attributes.
type Discrete struct {
	Name    string
	Filters Filters
}

// FilterLen is the common length L of all four filters in the bank.
func (d Discrete) FilterLen() int {
	return len(d.Filters.DecLo)
}

// FromName resolves a discrete wavelet by its catalog name ("haar", "db2",
// "sym4", biorN.M, rbioN.M, ...) and returns its derived filter bank.
// Matching is exact and case-sensitive, the same convention the
// rest of the catalog's name strings use.
func FromName(name string) (Discrete, error) {
	if h, ok := discreteOrthogonal[name]; ok {
		return Discrete{Name: name, Filters: DeriveOrthogonal(h)}, nil
	}
	if bf, ok := biorthogonalPairs[name]; ok {
		return Discrete{Name: name, Filters: DeriveBiorthogonal(bf.decLo, bf.recLo)}, nil
	}
	if base, ok := reverseBiorthogonalOf[name]; ok {
		bf, ok := biorthogonalPairs[base]
		if !ok {
			return Discrete{}, ErrUnknownWavelet
		}
		bior := DeriveBiorthogonal(bf.decLo, bf.recLo)
		return Discrete{Name: name, Filters: DeriveReverseBiorthogonal(bior)}, nil
	}
	return Discrete{}, ErrUnknownWavelet
}

// biorPair is the two independent filters a biorthogonal family is built
// from, before DeriveBiorthogonal fills in the cross-derived highpasses.
type biorPair struct {
	decLo, recLo []float64
}

// biorthogonalPairs ships every biorthogonal family whose two independent
// filters reduce to small exact fractions instead of a long decimal
// table, so they can be transcribed and checked (sum-to-sqrt(2), the same
// invariant catalog_test.go runs on the orthogonal families) rather than
// copied blind from memory:
//
//   - bior1.1 is CDF(1,1), the biorthogonal-framework's degenerate case
//     that coincides with Haar.
//   - bior1.3 is CDF(1,3), a 6-tap analysis filter paired with a 2-tap
//     synthesis filter.
//   - bior2.2 is CDF(2,2), the LeGall 5/3 filter pair JPEG2000's
//     reversible mode is built on: a 5-tap lowpass [-1,2,6,2,-1]/8 and a
//     3-tap lowpass [1,2,1]/4, each individually scaled to sum to
//     sqrt(2) to match this catalog's normalization convention.
//
// The rest of the biorN.M / rbioN.M namespace (2.4, 2.6, 2.8, 3.x, 4.4,
// 5.5, 6.8, ...) resolves to ErrUnknownWavelet for the same
// never-fabricate-a-coefficient-table reason discreteOrthogonal
// documents: those filters don't reduce to small exact fractions, and
// original_source does not carry their generated table.
var biorthogonalPairs = map[string]biorPair{
	"bior1.1": {
		decLo: []float64{0.7071067811865476, 0.7071067811865476},
		recLo: []float64{0.7071067811865476, 0.7071067811865476},
	},
	"bior1.3": {
		decLo: []float64{
			-0.0883883476483184, 0.0883883476483184,
			0.7071067811865476, 0.7071067811865476,
			0.0883883476483184, -0.0883883476483184,
		},
		recLo: []float64{0.7071067811865476, 0.7071067811865476},
	},
	"bior2.2": {
		decLo: []float64{
			-0.17677669529663687, 0.35355339059327373, 1.0606601717798212,
			0.35355339059327373, -0.17677669529663687,
		},
		recLo: []float64{
			0.35355339059327373, 0.7071067811865475, 0.35355339059327373,
		},
	},
}

// reverseBiorthogonalOf maps an rbioN.M name to the biorM.N name its
// filter bank is swapped-and-reversed from.
var reverseBiorthogonalOf = map[string]string{
	"rbio1.1": "bior1.1",
	"rbio1.3": "bior1.3",
	"rbio2.2": "bior2.2",
}
