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
	"github.com/pkg/errors"
)

// gadgetMatrix returns the N x (n+1) gadget matrix G for params,
// building it once and caching the result: Encrypt and Not both need
// it, and (n+1)*L rows is wasted allocation to repeat on every call.
func (params *LWEParameters) gadgetMatrix() (data.Matrix, error) {
	params.gadgetOnce.Do(func() {
		params.gadgetMat, params.gadgetErr = newGadgetMatrix(params)
	})
	return params.gadgetMat, params.gadgetErr
}

// newGadgetMatrix builds the N x (n+1) gadget matrix G for params,
// where N = (n+1)*L. Row i*L+k has 2^k in column i and zero
// elsewhere, so that for a vector v of length n+1, (G*v)[i*L+k] =
// 2^k * v[i]. Encryption embeds the plaintext bit via column n (the
// secret key's constant-1 coordinate), which is why decryption reads
// out row n*L+(L-1), the top bit of that column's block.
func newGadgetMatrix(params *LWEParameters) (data.Matrix, error) {
	n1 := params.N + 1
	rows := make([]data.Vector, 0, n1*params.L)

	for i := 0; i < n1; i++ {
		for k := 0; k < params.L; k++ {
			row := make(data.Vector, n1)
			for c := range row {
				row[c] = big.NewInt(0)
			}
			row[i] = new(big.Int).Lsh(big.NewInt(1), uint(k))
			rows = append(rows, row)
		}
	}

	g, err := data.NewMatrix(rows)
	if err != nil {
		return data.Matrix{}, errors.Wrap(err, "cannot build gadget matrix")
	}

	return g, nil
}

// rowGadgetInverse applies data.GadgetInverse to every row of c (each
// of length n+1), stacking the results into the N x N binary matrix
// G^{-1}(c) that satisfies G^{-1}(c) * G = c (mod q). It is the
// matrix form of bit-decomposition used by the AND gate to keep
// ciphertext-by-ciphertext products from blowing up the modulus.
func rowGadgetInverse(c data.Matrix, params *LWEParameters) (data.Matrix, error) {
	rows := make([]data.Vector, c.Rows())
	for i := 0; i < c.Rows(); i++ {
		rows[i] = data.GadgetInverse(c.Row(i), params.L, params.Q)
	}

	decomposed, err := data.NewMatrix(rows)
	if err != nil {
		return data.Matrix{}, errors.Wrap(err, "cannot decompose ciphertext rows")
	}

	return decomposed, nil
}
