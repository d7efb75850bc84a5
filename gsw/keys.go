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
	"github.com/fentec-project/gofhe/sample"
	"github.com/pkg/errors"
)

// SecretKey is the embedding vector sk = (s_1, ..., s_n, 1) of length
// n+1 used to decrypt ciphertexts and drive the homomorphic gates'
// noise bookkeeping.
type SecretKey struct {
	s      data.Vector
	params *LWEParameters
}

// PublicKey is an M x (n+1) matrix A such that A * sk is small
// (bounded by NoiseBound) modulo Q.
type PublicKey struct {
	A      data.Matrix
	params *LWEParameters
}

// KeyPair bundles a secret key with its matching public key.
type KeyPair struct {
	Secret *SecretKey
	Public *PublicKey
}

// GenerateKey samples a fresh key pair for params. It draws a random
// secret s in Z_q^n, a random public matrix A' in Z_q^{M x n}, and
// bounded noise e, then sets the public key's last column to
// -(A'*s + e) so that A*sk = A'*s - (A'*s+e) = -e is small, where
// sk = (s, 1).
func GenerateKey(params *LWEParameters) (*KeyPair, error) {
	s, err := data.NewRandomVector(params.N, sample.NewUniform(params.Q))
	if err != nil {
		return nil, errors.Wrap(err, "cannot sample secret key")
	}

	aPrime, err := data.NewRandomMatrix(params.M, params.N, sample.NewUniform(params.Q))
	if err != nil {
		return nil, errors.Wrap(err, "cannot sample public key matrix")
	}

	noise, err := data.NewRandomVector(params.M, sample.NewCenteredUniform(params.NoiseBound))
	if err != nil {
		return nil, errors.Wrap(err, "cannot sample key-generation noise")
	}

	b, err := aPrime.MulVec(s)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute public key")
	}
	b = b.Add(noise).Mod(params.Q)
	negB := b.MulScalar(big.NewInt(-1)).Mod(params.Q)

	a, err := aPrime.AddColumn(negB)
	if err != nil {
		return nil, errors.Wrap(err, "cannot assemble public key")
	}

	sk := make(data.Vector, params.N+1)
	copy(sk, s)
	sk[params.N] = big.NewInt(1)

	return &KeyPair{
		Secret: &SecretKey{s: sk, params: params},
		Public: &PublicKey{A: a, params: params},
	}, nil
}
