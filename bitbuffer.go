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

type bitBuffer []byte

func (bb *bitBuffer) appendBits(value int, length int8) {
	if length > 31 || value>>length != 0 {
		panic("value out of range")
	}

	for i := length - 1; i >= 0; i-- { // Append data bit by bit.
		*bb = append(*bb, byte(value>>i&1))
	}
}

// appendSegmentHeader appends a segment's mode indicator (width
// modeIndicatorBits, 0 to omit it entirely, as Micro QR M1 does) followed by
// its character-count indicator (width countBits). Both QR and Micro QR
// segment assembly share this shape; only the indicator widths differ, per
// Mode.numCharCountBits and microCountBits respectively.
func (bb *bitBuffer) appendSegmentHeader(modeIndicator int, modeIndicatorBits int8, numChars int, countBits int8) {
	if numChars >= 1<<uint(countBits) {
		panic("segment character count does not fit the count indicator width")
	}
	if modeIndicatorBits > 0 {
		bb.appendBits(modeIndicator, modeIndicatorBits)
	}
	bb.appendBits(numChars, countBits)
}

// appendTerminatorAndBytePad appends up to maxTerminatorBits zero bits (fewer
// if the data capacity leaves less room) and then pads with zero bits up to
// the next byte boundary. Both QR and Micro QR finish their bit streams this
// way before byte-padding out to full capacity.
func (bb *bitBuffer) appendTerminatorAndBytePad(maxTerminatorBits int8, capacityBits int) {
	bb.appendBits(0, int8(min(int(maxTerminatorBits), capacityBits-len(*bb))))
	bb.appendBits(0, int8((8-len(*bb)%8)%8))
}
