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

	"github.com/fentec-project/gofhe/internal"
	"github.com/pkg/errors"
)

func sameParams(a, b *LWEParameters) bool {
	return a.N == b.N && a.L == b.L && a.M == b.M && a.Q.Cmp(b.Q) == 0
}

// Not returns a ciphertext encrypting 1-bit(c), computed as G - C
// (mod q). Unlike the other gates, Not does not multiply ciphertext
// noise by the gadget width: it only negates and shifts it, so it
// never costs any of the noise budget.
func Not(c *Ciphertext) (*Ciphertext, error) {
	g, err := c.params.gadgetMatrix()
	if err != nil {
		return nil, err
	}

	negated, err := g.Subtract(c.C, c.params.Q)
	if err != nil {
		return nil, errors.Wrap(err, "cannot negate ciphertext")
	}

	return &Ciphertext{C: negated, params: c.params}, nil
}

// And returns a ciphertext encrypting bit(c1) AND bit(c2), computed
// as G^{-1}(c1) * c2 (mod q). This is the only gate that multiplies
// the noise of one of its operands by (roughly) the gadget width N,
// so it dominates the noise budget of any circuit built from these
// gates.
func And(c1, c2 *Ciphertext) (*Ciphertext, error) {
	if !sameParams(c1.params, c2.params) {
		return nil, internal.Parameter("ciphertexts were produced under different parameters")
	}

	g1Inv, err := rowGadgetInverse(c1.C, c1.params)
	if err != nil {
		return nil, err
	}

	prod, err := g1Inv.Multiply(c2.C, c1.params.Q)
	if err != nil {
		return nil, errors.Wrap(err, "cannot combine ciphertexts")
	}

	return &Ciphertext{C: prod, params: c1.params}, nil
}

// Nand returns a ciphertext encrypting NOT(bit(c1) AND bit(c2)).
func Nand(c1, c2 *Ciphertext) (*Ciphertext, error) {
	and, err := And(c1, c2)
	if err != nil {
		return nil, err
	}
	return Not(and)
}

// Or returns a ciphertext encrypting bit(c1) OR bit(c2), via De
// Morgan's law: a OR b = NOT(NOT(a) AND NOT(b)). This costs one more
// Not than And on each side, which is noise-free, plus the And
// itself.
func Or(c1, c2 *Ciphertext) (*Ciphertext, error) {
	notC1, err := Not(c1)
	if err != nil {
		return nil, err
	}
	notC2, err := Not(c2)
	if err != nil {
		return nil, err
	}
	return Nand(notC1, notC2)
}

// Xor returns a ciphertext encrypting bit(c1) XOR bit(c2), via the
// additive identity a XOR b = a + b - 2ab. Its noise is the sum of
// both operands' noise plus twice the noise of one And, since the
// Add and ScalarMultiply steps themselves add no noise of their own.
func Xor(c1, c2 *Ciphertext) (*Ciphertext, error) {
	if !sameParams(c1.params, c2.params) {
		return nil, internal.Parameter("ciphertexts were produced under different parameters")
	}

	sum, err := c1.C.Add(c2.C, c1.params.Q)
	if err != nil {
		return nil, errors.Wrap(err, "cannot add ciphertexts")
	}

	and, err := And(c1, c2)
	if err != nil {
		return nil, err
	}
	twoAnd := and.C.ScalarMultiply(big.NewInt(2), c1.params.Q)

	diff, err := sum.Subtract(twoAnd, c1.params.Q)
	if err != nil {
		return nil, errors.Wrap(err, "cannot combine ciphertexts")
	}

	return &Ciphertext{C: diff, params: c1.params}, nil
}
