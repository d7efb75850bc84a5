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

	"github.com/fentec-project/gofhe/data"
	"github.com/fentec-project/gofhe/internal"
	"github.com/fentec-project/gofhe/sample"
	"github.com/pkg/errors"
)

// Ciphertext is an N x (n+1) matrix encrypting a single bit, where
// N = (n+1)*L is the gadget width of its parameters.
type Ciphertext struct {
	C      data.Matrix
	params *LWEParameters
}

// Encrypt returns a fresh ciphertext for bit (which must be 0 or 1)
// under public key pk. It samples a random 0/1 matrix R of shape
// N x M and returns C = R*A + bit*G (mod q), where G is the gadget
// matrix for pk's parameters.
func Encrypt(bit int, pk *PublicKey) (*Ciphertext, error) {
	if bit != 0 && bit != 1 {
		return nil, internal.Parameter("plaintext bit must be 0 or 1")
	}

	params := pk.params
	width := params.GadgetWidth()

	r, err := data.NewRandomMatrix(width, params.M, sample.NewBit())
	if err != nil {
		return nil, errors.Wrap(err, "cannot sample encryption randomness")
	}

	rA, err := r.Multiply(pk.A, params.Q)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute R*A")
	}

	g, err := params.gadgetMatrix()
	if err != nil {
		return nil, err
	}
	bitG := g.ScalarMultiply(big.NewInt(int64(bit)), params.Q)

	c, err := rA.Add(bitG, params.Q)
	if err != nil {
		return nil, errors.Wrap(err, "cannot assemble ciphertext")
	}

	return &Ciphertext{C: c, params: params}, nil
}

// Decrypt recovers the plaintext bit encrypted in c under secret key
// sk. It computes v = C*sk, reads off the coordinate j* = n*L+(L-1)
// (the top bit of the gadget block tied to sk's constant-1
// coordinate), centers it modulo q, and compares its absolute value
// against 2^(L-2): a fresh or lightly-combined encryption of 0 keeps
// that coordinate near zero, while an encryption of 1 keeps it near
// 2^(L-1), so the midpoint 2^(L-2) separates the two as long as
// accumulated noise never crosses it.
func Decrypt(c *Ciphertext, sk *SecretKey) (int, error) {
	params := c.params
	v, err := c.C.MulVec(sk.s)
	if err != nil {
		return 0, errors.Wrap(err, "cannot apply secret key to ciphertext")
	}

	jStar := params.N*params.L + (params.L - 1)
	if jStar >= len(v) {
		return 0, internal.Parameter("ciphertext too small for these parameters")
	}

	centered := data.NewVector([]*big.Int{v[jStar]}).CenteredMod(params.Q)[0]

	threshold := new(big.Int).Lsh(big.NewInt(1), uint(params.L-2))
	if new(big.Int).Abs(centered).Cmp(threshold) > 0 {
		return 1, nil
	}
	return 0, nil
}
