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

import "fmt"

// isPotentialKanjiLead reports whether b could be the leading byte of a
// Shift-JIS kanji pair: 0x81-0x9F or 0xE0-0xEB.
func isPotentialKanjiLead(b byte) bool {
	return b >= 0x81 && b <= 0x9F || b >= 0xE0 && b <= 0xEB
}

// isKanjiPair reports whether (lead, trail) is a valid Shift-JIS kanji
// pair. 0xEB is only a valid lead when trail does not exceed 0xBF; every
// other lead in the potential range accepts the full trailing range.
func isKanjiPair(lead, trail byte) bool {
	if !isPotentialKanjiLead(lead) {
		return false
	}
	if lead == 0xEB && trail > 0xBF {
		return false
	}

	return trail >= 0x40 && trail <= 0x7E || trail >= 0x80 && trail <= 0xFC
}

// compressKanji folds a valid Shift-JIS pair into its 13-bit QR code,
// subtracting the family base (0x8140 below 0x9FFC, 0xC140 at or above)
// before repacking the high byte at a stride of 0xC0.
func compressKanji(lead, trail byte) int {
	packed := int(lead)<<8 | int(trail)
	var base int
	if packed < 0x9FFC {
		base = 0x8140
	} else {
		base = 0xC140
	}
	t := packed - base

	return (t>>8)*0xC0 + t&0xFF
}

// MakeKanji creates a kanji segment from a sequence of Shift-JIS byte
// pairs (big-endian on the wire, two bytes per logical character).
func MakeKanji(data []byte) (*QRSegment, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("kanji data must consist of byte pairs")
	}

	bb := make(bitBuffer, 0, len(data)/2*13)
	for i := 0; i < len(data); i += 2 {
		lead, trail := data[i], data[i+1]
		if !isKanjiPair(lead, trail) {
			return nil, fmt.Errorf("invalid Shift-JIS kanji pair %#02x %#02x", lead, trail)
		}
		bb.appendBits(compressKanji(lead, trail), 13)
	}

	return &QRSegment{
		Mode:     Kanji,
		NumChars: len(data) / 2,
		Data:     bb,
	}, nil
}
