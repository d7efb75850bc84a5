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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenteredUniform_Bound(t *testing.T) {
	bound := big.NewInt(6)
	sampler := NewCenteredUniform(bound)

	negBound := new(big.Int).Neg(bound)
	for i := 0; i < 500; i++ {
		v, err := sampler.Sample()
		assert.NoError(t, err)
		assert.True(t, v.Cmp(negBound) >= 0, "sample should be >= -bound")
		assert.True(t, v.Cmp(bound) <= 0, "sample should be <= bound")
	}
}

func TestCenteredUniform_PanicsOnNonPositiveBound(t *testing.T) {
	assert.Panics(t, func() {
		NewCenteredUniform(big.NewInt(0))
	})
}
