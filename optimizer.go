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

import "strings"

// runThreshold is the minimum run length, in characters, below which it is
// cheaper to stay in the current mode (absorbing a foreign character) than
// to pay for a mode switch.
const runThreshold = 10

type segRange struct {
	mode  Mode
	start int
	end   int // Exclusive.
}

func isNumericByte(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphanumericByte(c byte) bool {
	return strings.IndexByte(alphanumericCharset, c) >= 0
}

// OptimizeSegments partitions data into a concatenation of segments -
// numeric, alphanumeric, byte, or kanji - that minimizes total encoded
// bits, using the standard threshold-10 QR heuristic: a foreign run
// shorter than runThreshold is absorbed into the surrounding mode rather
// than paying for a mode switch. Kanji characters are represented as
// adjacent Shift-JIS byte pairs within data, exactly as MakeKanji expects.
func OptimizeSegments(data []byte) ([]*QRSegment, error) {
	if len(data) == 0 {
		return []*QRSegment{}, nil
	}

	var ranges []segRange
	mode := Mode{} // Zero value is the "undefined" sentinel.
	start := 0

	publish := func(end int) {
		if end > start {
			ranges = append(ranges, segRange{mode, start, end})
		}
		start = end
	}

	isLeadOfValidPair := func(i int) bool {
		return i+1 < len(data) && isPotentialKanjiLead(data[i]) && isKanjiPair(data[i], data[i+1])
	}

	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case mode == Mode{}: // Undefined: move into the best mode for c.
			switch {
			case isNumericByte(c):
				mode = Numeric
			case isAlphanumericByte(c):
				mode = Alphanumeric
			case isLeadOfValidPair(i):
				mode = Kanji
			default:
				mode = Byte
			}
			start = i
			i++

		case mode == Numeric:
			if isNumericByte(c) {
				i++
			} else if i-start < runThreshold {
				if isAlphanumericByte(c) {
					mode = Alphanumeric
				} else {
					mode = Byte
				}
			} else {
				publish(i)
				mode = Mode{}
			}

		case mode == Alphanumeric:
			if isNumericByte(c) || isAlphanumericByte(c) {
				i++
			} else if i-start < runThreshold {
				mode = Byte
			} else {
				publish(i)
				mode = Mode{}
			}

		case mode == Kanji:
			if (i-start)%2 == 0 {
				if isLeadOfValidPair(i) {
					i++
				} else if i-start < runThreshold {
					mode = Byte // The kanji bytes already in the run are only byte-encodable.
				} else {
					publish(i)
					mode = Mode{}
				}
			} else {
				i++ // Completes the pair accepted on the previous, even offset.
			}

		default: // Byte.
			if i-start >= runThreshold && (isNumericByte(c) || isAlphanumericByte(c) || isLeadOfValidPair(i)) {
				publish(i)
				mode = Mode{}
			} else {
				i++
			}
		}
	}
	publish(len(data))

	// Phase 2: merge adjacent runs sharing the same mode.
	merged := ranges[:0]
	for _, r := range ranges {
		if n := len(merged); n > 0 && merged[n-1].mode == r.mode && merged[n-1].end == r.start {
			merged[n-1].end = r.end
		} else {
			merged = append(merged, r)
		}
	}

	segs := make([]*QRSegment, 0, len(merged))
	for _, r := range merged {
		chunk := data[r.start:r.end]

		var seg *QRSegment
		var err error
		switch r.mode {
		case Numeric:
			seg = MakeNumeric(string(chunk))
		case Alphanumeric:
			seg = MakeAlphanumeric(string(chunk))
		case Kanji:
			seg, err = MakeKanji(chunk)
		default:
			seg = MakeBytes(chunk)
		}
		if err != nil {
			return nil, err
		}

		segs = append(segs, seg)
	}

	return segs, nil
}
