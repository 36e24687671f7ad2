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

// Scaling (reconstruction low-pass) coefficients for the orthogonal
// families this catalog ships with full numerical fidelity. Every other
// orthogonal filter in these families is built from one of these via
// DeriveOrthogonal. Values are the standard published Daubechies/Symlet
// coefficients, not refit or truncated.
var (
	haarH = []float64{
		0.7071067811865476, 0.7071067811865476,
	}

	// db2 (the Daubechies-4 scaling filter).
	db2H = []float64{
		0.4829629131445341, 0.8365163037378079,
		0.2241438680420134, -0.12940952255126037,
	}

	// db3 (Daubechies-6).
	db3H = []float64{
		0.3326705529500825, 0.8068915093110924, 0.4598775021184914,
		-0.13501102001025458, -0.08544127388202666, 0.035226291885709536,
	}

	// db4 (Daubechies-8).
	db4H = []float64{
		0.23037781330885523, 0.7148465705525415, 0.6308807679295904,
		-0.02798376941698385, -0.18703481171888114, 0.030841381835986965,
		0.032883011666982945, -0.010597401784997278,
	}

	// sym4, the least-asymmetric order-4 filter (distinct from db4; sym2
	// and sym3 coincide exactly with db2 and db3 and are not duplicated).
	sym4H = []float64{
		-0.07576571478927333, -0.02963552764599851, 0.49761866763201545,
		0.8037387518059161, 0.29785779560527736, -0.09921954357684722,
		-0.012603967262037833, 0.0322231006040427,
	}

	// coif1, the order-1 Coiflet scaling filter (6 taps, 2 vanishing
	// moments for both the scaling and wavelet function, the defining
	// property Coiflets add over Daubechies/Symlets).
	coif1H = []float64{
		-0.01565572813546454, -0.0727326195128539, 0.38486484686419785,
		0.8525720202122554, 0.3378976624578092, -0.0727326195128539,
	}
)

// discreteOrthogonal maps a catalog name to its scaling filter. Names
// absent from this table (Daubechies/Symlet orders past 4, Coiflet orders
// past 1, Discrete Meyer) are real members of the families this module
// documents in SPEC_FULL.md but are not shipped here: the published
// tables for them run to 16 significant digits apiece (and Discrete Meyer
// is a 62-tap filter), and original_source's wavelets.c only carries the
// dispatch logic that indexes into those tables, not the tables
// themselves (wavelets_coeffs.h is a two-line template include, not the
// generated data file). Reproducing that many digits from memory with no
// build/test loop to check them against risks silently wrong numerics,
// which is worse than an honest ErrUnknownWavelet. Adding one is a matter
// of transcribing a verified filter from a primary source and appending
// it here.
var discreteOrthogonal = map[string][]float64{
	"haar":  haarH,
	"db1":   haarH,
	"db2":   db2H,
	"db3":   db3H,
	"db4":   db4H,
	"sym2":  db2H,
	"sym3":  db3H,
	"sym4":  sym4H,
	"coif1": coif1H,
}
