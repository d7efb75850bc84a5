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
	"encoding/binary"
	"fmt"
	"math/big"

	"golang.org/x/crypto/salsa20"
)

// Deterministic samples values from [0, max) using a salsa20
// keystream as a pseudo-random number generator. Two samplers
// constructed with the same key and max produce the same sequence of
// values; samplers with different keys are independent. This is meant
// for tests that need repeatable matrices/vectors without threading a
// single global seed through every call site.
type Deterministic struct {
	key      *[32]byte
	max      *big.Int
	maxBytes int
	over     uint
	counter  uint64
}

// NewDeterministic returns a Deterministic sampler over [0, max),
// seeded by key. It returns an error if max is not at least 2.
func NewDeterministic(max *big.Int, key *[32]byte) (*Deterministic, error) {
	if max.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("upper bound on samples should be at least 2")
	}

	maxBits := new(big.Int).Sub(max, big.NewInt(1)).BitLen()
	maxBytes := (maxBits + 7) / 8
	over := uint((8 * maxBytes) - maxBits)

	return &Deterministic{
		key:      key,
		max:      max,
		maxBytes: maxBytes,
		over:     over,
	}, nil
}

// Sample returns the next pseudo-random value in [0, max), rejecting
// and re-drawing keystream blocks that fall outside the range.
func (d *Deterministic) Sample() (*big.Int, error) {
	nonce := make([]byte, 8)
	for {
		binary.LittleEndian.PutUint64(nonce, d.counter)
		d.counter++

		in := make([]byte, d.maxBytes)
		out := make([]byte, d.maxBytes)
		salsa20.XORKeyStream(out, in, nonce, d.key)
		out[0] >>= d.over

		v := new(big.Int).SetBytes(out)
		if v.Cmp(d.max) < 0 {
			return v, nil
		}
	}
}
