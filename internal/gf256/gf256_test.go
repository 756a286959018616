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

package gf256

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiply(t *testing.T) {
	cases := [][3]byte{
		{0x00, 0x00, 0x00},
		{0x01, 0x01, 0x01},
		{0x02, 0x02, 0x04},
		{0x00, 0x6E, 0x00},
		{0xB2, 0xDD, 0xE6},
		{0x41, 0x11, 0x25},
		{0xFF, 0xFF, 0xE2},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestMultiply %v", tc), func(t *testing.T) {
			assert.Equal(t, tc[2], Multiply(tc[0], tc[1]))
			assert.Equal(t, tc[2], Multiply(tc[1], tc[0])) // Commutative.
		})
	}
}

func TestMultiplyByZero(t *testing.T) {
	for x := 0; x < 256; x++ {
		assert.Equal(t, Element(0), Multiply(Element(x), 0))
	}
}

func TestMultiplyByOne(t *testing.T) {
	for x := 0; x < 256; x++ {
		assert.Equal(t, Element(x), Multiply(Element(x), 1))
	}
}

func TestAdd(t *testing.T) {
	assert.Equal(t, Element(0), Add(0x53, 0x53))
	assert.Equal(t, Element(0xFF), Add(0x0F, 0xF0))
	assert.Equal(t, Element(0x53), Add(0x53, 0))
}

func TestExpPeriod255(t *testing.T) {
	assert.Equal(t, Element(1), Exp(0))
	assert.Equal(t, Element(1), Exp(255))
	assert.Equal(t, Exp(10), Exp(265))

	seen := make(map[Element]bool)
	for i := 0; i < 255; i++ {
		e := Exp(i)
		assert.False(t, seen[e], "alpha^%d repeats an earlier power", i)
		seen[e] = true
	}
	assert.Equal(t, 255, len(seen))
}
