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

// These exercise the ISO/IEC 18004 worked examples end to end: version/mask
// selection, not just the individual components that feed them.

func TestScenarioQRNumericFixedVersion(t *testing.T) {
	code, err := EncodeSegments(MakeSegments("01234567"), Medium, WithMinVersion(1), WithMaxVersion(1))
	assert.Nil(t, err)
	assert.Equal(t, Version(1), code.Version)
	assert.Equal(t, 21, code.Size)
	assert.Equal(t, Mask(0), code.Mask)
}

func TestScenarioQRAlphanumericAutoVersion(t *testing.T) {
	code, err := EncodeText("ABRACADABRA", Medium)
	assert.Nil(t, err)
	assert.Equal(t, Version(1), code.Version)
	assert.Equal(t, Mask(7), code.Mask)
}

func TestScenarioMicroQRNumericFixedVersion(t *testing.T) {
	code, err := EncodeMicroSegments(MakeSegments("01234567"), M2, Low, true, -1)
	assert.Nil(t, err)
	assert.Equal(t, M2, code.MicroVersion)
	assert.Equal(t, 13, code.Size)
	assert.Equal(t, Mask(1), code.Mask)
}

func TestScenarioMicroQRByteAutoVersion(t *testing.T) {
	code, err := EncodeMicroText("Wikipedia", Low, true)
	assert.Nil(t, err)
	assert.Equal(t, M3, code.MicroVersion)
	assert.Equal(t, Mask(2), code.Mask)
}

func TestScenarioQRWithECI(t *testing.T) {
	eci, err := MakeECI(9)
	assert.Nil(t, err)

	segs := append([]*QRSegment{eci}, MakeBytes([]byte{0xC1, 0xC2, 0xC3, 0xC4, 0xC5}))
	code, err := EncodeSegments(segs, Low, WithMinVersion(1), WithMaxVersion(1))
	assert.Nil(t, err)
	assert.Equal(t, Version(1), code.Version)
	assert.Equal(t, 21, code.Size)
	assert.Equal(t, Mask(5), code.Mask)
}
