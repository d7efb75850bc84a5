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

package sample

import (
	"crypto/rand"
	"math/big"
)

// CenteredUniform samples random values uniformly from the symmetric
// range [-bound, bound]. It is the scheme's noise distribution: LWE
// error terms need only be small in absolute value, not shaped like a
// particular continuous distribution, so a bounded uniform draw is
// sufficient (see the comment on DefaultNoiseBound for the concrete
// default).
type CenteredUniform struct {
	bound *big.Int
	width *big.Int // 2*bound + 1, the size of the sampled range
}

// DefaultNoiseBound is the bound B_e used when a scheme does not
// specify its own: each error coordinate is drawn from [-6, 6]. It is
// small relative to the default ciphertext modulus q ~ 2^30, and is
// carried over from the reference construction this scheme is based
// on.
var DefaultNoiseBound = big.NewInt(6)

// NewCenteredUniform returns a sampler over [-bound, bound]. It panics
// if bound is not positive, mirroring the other constructors in this
// package that assume sane, caller-checked arguments.
func NewCenteredUniform(bound *big.Int) *CenteredUniform {
	if bound.Sign() <= 0 {
		panic("sample: noise bound must be positive")
	}
	width := new(big.Int).Lsh(bound, 1)
	width.Add(width, big.NewInt(1))

	return &CenteredUniform{bound: bound, width: width}
}

// Sample draws a value uniformly from [-bound, bound].
func (c *CenteredUniform) Sample() (*big.Int, error) {
	r, err := rand.Int(rand.Reader, c.width)
	if err != nil {
		return nil, err
	}

	r.Sub(r, c.bound)
	return r, nil
}
