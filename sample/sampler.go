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

import "math/big"

// Sampler chooses random *big.Int values from some probability
// distribution. Implementations back data.NewRandomVector and
// data.NewRandomMatrix, and stand in for the "Random" source the
// scheme is parameterized over: the scheme itself makes no quality
// assumption on Sample beyond what the caller's implementation
// provides (a CSPRNG-backed one is required for cryptographic use).
type Sampler interface {
	Sample() (*big.Int, error)
}
