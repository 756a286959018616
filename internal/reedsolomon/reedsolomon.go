/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package reedsolomon builds Reed-Solomon generator polynomials over
// GF(2^8) and computes the extended remainder (parity) of a data
// polynomial against one.
package reedsolomon

import "github.com/grkuntzmd/isoqr/internal/gf256"

// GeneratorPolynomial creates a Reed-Solomon error correction generator
// polynomial of the given degree: the product (x - r^0)(x - r^1)...
// (x - r^(degree-1)), with the leading x^degree term (always 1) dropped.
// Coefficients are stored from highest to lowest power, excluding that
// leading term; for example x^3 + 255*x^2 + 8x + 93 is [255, 8, 93].
func GeneratorPolynomial(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("degree out of range")
	}

	result := make([]byte, degree)
	result[degree-1] = 1 // Start off with the monomial x^0.

	root := byte(1)
	for i := 0; i < degree; i++ {
		// Multiply the current product by (x - root).
		for j := 0; j < len(result); j++ {
			result[j] = gf256.Multiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = gf256.Multiply(root, gf256.Primitive)
	}

	return result
}

// Remainder returns the Reed-Solomon parity codewords for the given data
// polynomial reduced modulo the given generator polynomial, both in the
// highest-to-lowest-power byte convention GeneratorPolynomial produces.
func Remainder(data, generator []byte) []byte {
	result := make([]byte, len(generator))
	for _, b := range data { // Polynomial long division.
		factor := b ^ result[0]
		copy(result[0:], result[1:])
		result[len(result)-1] = 0
		for i := 0; i < len(result); i++ {
			result[i] ^= gf256.Multiply(generator[i], factor)
		}
	}

	return result
}
