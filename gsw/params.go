/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package gsw

import (
	"math/big"
	"sync"

	"github.com/fentec-project/gofhe/data"
	"github.com/fentec-project/gofhe/internal"
	"github.com/fentec-project/gofhe/sample"
)

// LWEParameters holds the public parameters of the scheme.
type LWEParameters struct {
	N int      // LWE secret dimension
	Q *big.Int // ciphertext modulus
	M int      // number of LWE samples backing the public key
	L int      // gadget depth, ceil(log2(Q))

	NoiseBound *big.Int // bound B_e on fresh LWE error coordinates

	gadgetOnce sync.Once
	gadgetMat  data.Matrix
	gadgetErr  error
}

// GadgetWidth returns N = (n+1)*L, the dimension ciphertexts and the
// gadget matrix are built from.
func (p *LWEParameters) GadgetWidth() int {
	return (p.N + 1) * p.L
}

// ceilLog2 returns ceil(log2(q)). big.Int.BitLen reports
// floor(log2(q))+1, which overcounts by one whenever q is an exact
// power of two (e.g. BitLen(2^30) = 31, not 30); subtracting one from
// q before taking BitLen corrects for that case while leaving every
// non-power-of-two q unchanged.
func ceilLog2(q *big.Int) int {
	return new(big.Int).Sub(q, big.NewInt(1)).BitLen()
}

// DefaultSampleCount returns the default number of LWE samples backing
// the public key, n*ceil(log2(q)) + 140, large enough for the public
// key's rows to information-theoretically hide the secret.
func DefaultSampleCount(n int, q *big.Int) int {
	return n*ceilLog2(q) + 140
}

// NewParameters validates and returns a new set of scheme parameters.
// m is the number of LWE samples backing the public key and is
// independent of the gadget width N = (n+1)*L: the public key is
// m x (n+1), the per-encryption randomization matrix R is N x m, and
// the ciphertext they produce is N x (n+1), so m never needs to equal
// N. Use DefaultSampleCount for a safe default.
//
// It returns an error if n or m are non-positive, q is smaller than 2,
// or noiseBound is not positive.
func NewParameters(n, m int, q, noiseBound *big.Int) (*LWEParameters, error) {
	if n <= 0 {
		return nil, internal.Parameter("n must be positive")
	}
	if m <= 0 {
		return nil, internal.Parameter("m must be positive")
	}
	if q.Cmp(big.NewInt(2)) < 0 {
		return nil, internal.Parameter("q must be at least 2")
	}
	if noiseBound.Sign() <= 0 {
		return nil, internal.Parameter("noise bound must be positive")
	}

	params := &LWEParameters{
		N:          n,
		Q:          new(big.Int).Set(q),
		M:          m,
		L:          ceilLog2(q),
		NoiseBound: new(big.Int).Set(noiseBound),
	}

	return params, nil
}

// DefaultParameters returns a small parameter set suitable for
// experimentation and tests: n=4, q=2^30, m per DefaultSampleCount,
// noise bound 6. It supports only a handful of sequential homomorphic
// gates before accumulated noise risks crossing the decryption
// threshold - see Decrypt.
func DefaultParameters() *LWEParameters {
	n := 4
	q := new(big.Int).Lsh(big.NewInt(1), 30)
	params, err := NewParameters(n, DefaultSampleCount(n, q), q, sample.DefaultNoiseBound)
	if err != nil {
		// unreachable: the literal arguments above always satisfy
		// NewParameters' preconditions.
		panic(err)
	}
	return params
}
