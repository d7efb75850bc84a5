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

package internal

import (
	"fmt"
)

var malformedStr = "is not of the proper form"

// MalformedMatrix reports a shape precondition violated by a matrix
// operation (new, getCol, add, subtract, multiply, asVector). It names the offending dimensions so callers can tell
// what went wrong without re-deriving it from a generic message.
func MalformedMatrix(op string, rows1, cols1, rows2, cols2 int) error {
	return fmt.Errorf("matrix %s: dimensions %dx%d and %dx%d %s", op, rows1, cols1, rows2, cols2, malformedStr)
}

// MalformedVector reports a length mismatch between two vectors, or
// between a vector and the matrix it is combined with. Vector.CheckBound
// also returns it, with len2 set to 0, when an element exceeds the bound.
func MalformedVector(op string, len1, len2 int) error {
	return fmt.Errorf("vector %s: lengths %d and %d %s", op, len1, len2, malformedStr)
}

// Parameter reports values that violate the scheme's preconditions:
// LWEParameters with n or m non-positive, q < 2 or a non-positive
// noise bound, a plaintext that is not a bit, ciphertexts combined
// under different parameters, or a ciphertext too small to decrypt.
func Parameter(msg string) error {
	return fmt.Errorf("parameter %s: %s", malformedStr, msg)
}
