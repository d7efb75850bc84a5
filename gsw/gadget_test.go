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
	"testing"

	"github.com/fentec-project/gofhe/data"
	"github.com/stretchr/testify/assert"
)

func TestNewGadgetMatrix_Shape(t *testing.T) {
	params := DefaultParameters()
	g, err := newGadgetMatrix(params)
	assert.NoError(t, err)
	assert.Equal(t, params.GadgetWidth(), g.Rows())
	assert.Equal(t, params.N+1, g.Cols())
}

// TestGadgetMatrix_Cached checks that params.gadgetMatrix() memoizes
// its result instead of rebuilding it on every call.
func TestGadgetMatrix_Cached(t *testing.T) {
	params := DefaultParameters()
	g1, err := params.gadgetMatrix()
	assert.NoError(t, err)
	g2, err := params.gadgetMatrix()
	assert.NoError(t, err)
	assert.True(t, g1.Equals(g2))
	assert.Same(t, g1.Get(0, 0), g2.Get(0, 0), "second call should return the cached matrix, not a rebuilt one")
}

// TestRowGadgetInverse_ReconstructsExactly checks that
// G^{-1}(c) * G == c (mod q) for an arbitrary matrix of the right
// shape, which is the identity the AND gate relies on.
func TestRowGadgetInverse_ReconstructsExactly(t *testing.T) {
	params := DefaultParameters()
	g, err := newGadgetMatrix(params)
	assert.NoError(t, err)

	width := params.GadgetWidth()
	rows := make([]data.Vector, width)
	for i := 0; i < width; i++ {
		row := make(data.Vector, params.N+1)
		for j := range row {
			row[j] = big.NewInt(int64(7*i + 3*j + 1))
		}
		rows[i] = row
	}
	c, err := data.NewMatrix(rows)
	assert.NoError(t, err)
	c = c.Mod(params.Q)

	ginv, err := rowGadgetInverse(c, params)
	assert.NoError(t, err)

	reconstructed, err := ginv.Multiply(g, params.Q)
	assert.NoError(t, err)

	assert.True(t, reconstructed.Equals(c), "G^{-1}(c)*G should reconstruct c exactly mod q")
}
