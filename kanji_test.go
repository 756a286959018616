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

package qrcodegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPotentialKanjiLead(t *testing.T) {
	assert.True(t, isPotentialKanjiLead(0x81))
	assert.True(t, isPotentialKanjiLead(0x9F))
	assert.True(t, isPotentialKanjiLead(0xE0))
	assert.True(t, isPotentialKanjiLead(0xEB))
	assert.False(t, isPotentialKanjiLead(0x80))
	assert.False(t, isPotentialKanjiLead(0xA0))
	assert.False(t, isPotentialKanjiLead(0xEC))
}

func TestIsKanjiPair(t *testing.T) {
	assert.True(t, isKanjiPair(0x93, 0x5F)) // "点"
	assert.True(t, isKanjiPair(0xEB, 0xBF)) // Boundary lead, boundary trail.
	assert.False(t, isKanjiPair(0xEB, 0xC0)) // Over the 0xEB-specific ceiling.
	assert.False(t, isKanjiPair(0x93, 0x3F)) // Trail below the valid range.
	assert.False(t, isKanjiPair(0x20, 0x40)) // Lead not in the potential range at all.
}

func TestCompressKanji(t *testing.T) {
	assert.Equal(t, 0xD9F, compressKanji(0x93, 0x5F)) // ISO/IEC 18004 worked example.
}

func TestMakeKanji(t *testing.T) {
	seg, err := MakeKanji([]byte{0x93, 0x5F})
	assert.Nil(t, err)
	assert.Equal(t, Kanji, seg.Mode)
	assert.Equal(t, 1, seg.NumChars)
	assert.Equal(t, 13, len(seg.Data))
}

func TestMakeKanjiOddLength(t *testing.T) {
	_, err := MakeKanji([]byte{0x93})
	assert.NotNil(t, err)
}

func TestMakeKanjiInvalidPair(t *testing.T) {
	_, err := MakeKanji([]byte{0x20, 0x40})
	assert.NotNil(t, err)
}
