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

// Package gsw implements a bit-level, leveled fully homomorphic
// encryption scheme based on the Learning With Errors problem, in
// the style of Gentry, Sahai and Waters (GSW13).
//
// A plaintext is a single bit. Ciphertexts support a NOT gate that
// never adds noise, and AND/OR/NAND/XOR gates that combine two
// ciphertexts and each add a bounded amount of noise. A ciphertext
// can be correctly decrypted as long as its accumulated noise stays
// below the decryption threshold 2^(L-2); this package does not
// implement bootstrapping, so the number of sequential gates a
// ciphertext can pass through is bounded by the chosen parameters.
package gsw
