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
	"testing"

	"github.com/stretchr/testify/assert"
)

// setupKeys returns a fresh key pair under the default parameters,
// shared by every gate test below.
func setupKeys(t *testing.T) *KeyPair {
	t.Helper()
	keys, err := GenerateKey(DefaultParameters())
	assert.NoError(t, err)
	return keys
}

func encryptBit(t *testing.T, keys *KeyPair, bit int) *Ciphertext {
	t.Helper()
	ct, err := Encrypt(bit, keys.Public)
	assert.NoError(t, err)
	return ct
}

func decryptBit(t *testing.T, keys *KeyPair, ct *Ciphertext) int {
	t.Helper()
	bit, err := Decrypt(ct, keys.Secret)
	assert.NoError(t, err)
	return bit
}

func TestNot(t *testing.T) {
	keys := setupKeys(t)

	for _, bit := range []int{0, 1} {
		ct := encryptBit(t, keys, bit)
		notCt, err := Not(ct)
		assert.NoError(t, err)
		assert.Equal(t, 1-bit, decryptBit(t, keys, notCt))
	}
}

func TestAnd(t *testing.T) {
	keys := setupKeys(t)

	cases := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for _, tc := range cases {
		c1 := encryptBit(t, keys, tc[0])
		c2 := encryptBit(t, keys, tc[1])

		res, err := And(c1, c2)
		assert.NoError(t, err)
		assert.Equal(t, tc[0]&tc[1], decryptBit(t, keys, res), "AND(%d,%d)", tc[0], tc[1])
	}
}

func TestOr(t *testing.T) {
	keys := setupKeys(t)

	cases := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for _, tc := range cases {
		c1 := encryptBit(t, keys, tc[0])
		c2 := encryptBit(t, keys, tc[1])

		res, err := Or(c1, c2)
		assert.NoError(t, err)
		assert.Equal(t, tc[0]|tc[1], decryptBit(t, keys, res), "OR(%d,%d)", tc[0], tc[1])
	}
}

func TestNand(t *testing.T) {
	keys := setupKeys(t)

	cases := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for _, tc := range cases {
		c1 := encryptBit(t, keys, tc[0])
		c2 := encryptBit(t, keys, tc[1])

		res, err := Nand(c1, c2)
		assert.NoError(t, err)
		expected := 1 - (tc[0] & tc[1])
		assert.Equal(t, expected, decryptBit(t, keys, res), "NAND(%d,%d)", tc[0], tc[1])
	}
}

func TestXor(t *testing.T) {
	keys := setupKeys(t)

	cases := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for _, tc := range cases {
		c1 := encryptBit(t, keys, tc[0])
		c2 := encryptBit(t, keys, tc[1])

		res, err := Xor(c1, c2)
		assert.NoError(t, err)
		assert.Equal(t, tc[0]^tc[1], decryptBit(t, keys, res), "XOR(%d,%d)", tc[0], tc[1])
	}
}

// TestGateComposition chains two gates together - (a AND b) XOR a -
// to exercise noise growth across more than one level before
// decryption, without approaching DefaultParameters' noise budget.
func TestGateComposition(t *testing.T) {
	keys := setupKeys(t)

	for _, a := range []int{0, 1} {
		for _, b := range []int{0, 1} {
			ca := encryptBit(t, keys, a)
			cb := encryptBit(t, keys, b)

			and, err := And(ca, cb)
			assert.NoError(t, err)

			result, err := Xor(and, ca)
			assert.NoError(t, err)

			expected := (a & b) ^ a
			assert.Equal(t, expected, decryptBit(t, keys, result), "(%d AND %d) XOR %d", a, b, a)
		}
	}
}

func TestAnd_RejectsMismatchedParameters(t *testing.T) {
	keys1 := setupKeys(t)
	n2 := 5
	q2 := DefaultParameters().Q
	params2, err := NewParameters(n2, DefaultSampleCount(n2, q2), q2, DefaultParameters().NoiseBound)
	assert.NoError(t, err)
	keys2, err := GenerateKey(params2)
	assert.NoError(t, err)

	c1 := encryptBit(t, keys1, 1)
	c2 := encryptBit(t, keys2, 1)

	_, err = And(c1, c2)
	assert.Error(t, err)
}
