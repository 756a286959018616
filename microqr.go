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
	"fmt"
	"math"
	"strings"

	"github.com/grkuntzmd/isoqr/internal/reedsolomon"
)

// microFormatMask is XORed over the 15-bit BCH-encoded Micro QR format
// information, analogous to the QR mask 0x5412 used in drawFormatBits.
const microFormatMask = 0x4445

// MicroQRCode represents a Micro QR code symbol (versions M1-M4).
type MicroQRCode struct {
	MicroVersion
	Size                 int
	ErrorCorrectionLevel ECC
	HasLevel             bool // False only for M1, which carries no explicit level.
	Mask
	Modules    [][]module
	IsFunction [][]bool
}

// Designator returns the ISO/IEC 18004 symbol designator string: "M1" for
// M1 (which never carries a level), otherwise "Mk-L".
func (q *MicroQRCode) Designator() string {
	if !q.HasLevel {
		return fmt.Sprintf("M%d", q.MicroVersion)
	}
	return fmt.Sprintf("M%d-%c", q.MicroVersion, levelLetter(q.ErrorCorrectionLevel))
}

func levelLetter(e ECC) byte {
	switch e {
	case Low:
		return 'L'
	case Medium:
		return 'M'
	case Quartile:
		return 'Q'
	case High:
		return 'H'
	default:
		panic("unknown error correction level")
	}
}

// microCountBits returns the count-indicator width for the given mode on
// the given Micro QR version, and whether that mode is available at all
// (M1 supports only numeric; M2 adds alphanumeric; M3/M4 add byte and
// kanji).
func microCountBits(m Mode, v MicroVersion) (int8, bool) {
	n := int8(v.number())
	switch m {
	case Numeric:
		return 3 + n, true
	case Alphanumeric:
		return 2 + n, v >= M2
	case Byte:
		return 2 + n, v >= M3
	case Kanji:
		return 1 + n, v >= M3
	default:
		return 0, false
	}
}

// microModeIndicator returns the mode indicator value Micro QR packs into
// its version.number()-bit mode field: 0/1/2/3 for numeric/alphanumeric/
// byte/kanji. This is a distinct, narrower encoding from Mode.modeBits
// (the 4-bit indicator full QR symbols use) and is not derivable from it
// by truncation.
func microModeIndicator(m Mode) int {
	switch m {
	case Numeric:
		return 0
	case Alphanumeric:
		return 1
	case Byte:
		return 2
	case Kanji:
		return 3
	default:
		panic("mode has no Micro QR indicator")
	}
}

// EncodeMicroSegments creates a Micro QR code structure from one or more
// segments for the requested designator.
func EncodeMicroSegments(segs []*QRSegment, version MicroVersion, level ECC, hasLevel bool, mask Mask) (*MicroQRCode, error) {
	if !validMicroDesignator(version, level, hasLevel) {
		return nil, fmt.Errorf("designator M%d/%v: %w", version, level, ErrDesignatorNotSupported)
	}

	dataCapacityBits := microTotalDataBits[version][effectiveMicroLevel(level, hasLevel)]

	dataUsedBits := 0
	for _, seg := range segs {
		cc, ok := microCountBits(seg.Mode, version)
		if !ok {
			return nil, fmt.Errorf("mode not available on M%d: %w", version, ErrDesignatorNotSupported)
		}
		if seg.NumChars >= 1<<uint(cc) {
			return nil, fmt.Errorf("segment too long for M%d: %w", version, ErrDataTooLarge)
		}
		dataUsedBits += int(version.number()) + int(cc) + len(seg.Data)
	}
	if dataUsedBits > dataCapacityBits {
		return nil, fmt.Errorf("data length = %d bits, capacity = %d bits: %w", dataUsedBits, dataCapacityBits, ErrDataTooLarge)
	}

	bb := make(bitBuffer, 0, dataCapacityBits)
	for _, seg := range segs {
		cc, _ := microCountBits(seg.Mode, version)
		bb.appendSegmentHeader(microModeIndicator(seg.Mode), int8(version.number()), seg.NumChars, cc)
		bb = append(bb, seg.Data...)
	}

	bb.appendTerminatorAndBytePad(int8(version.terminatorBits()), dataCapacityBits)
	for len(bb) < dataCapacityBits {
		end := min(len(bb)+8, dataCapacityBits)
		for len(bb) < end {
			bb = append(bb, 0)
		}
	}

	dataBytes := make([]byte, (len(bb)+7)/8)
	for i := 0; i < len(bb); i++ {
		dataBytes[i>>3] |= bb[i] << (7 - i&7)
	}

	generator := reedsolomon.GeneratorPolynomial(microGeneratorDegree[version][effectiveMicroLevel(level, hasLevel)])
	parity := reedsolomon.Remainder(dataBytes, generator)
	codewords := append(append([]byte{}, dataBytes...), parity...)

	size := version.size()
	code := MicroQRCode{
		MicroVersion:         version,
		Size:                 size,
		ErrorCorrectionLevel: effectiveMicroLevel(level, hasLevel),
		HasLevel:             version != M1,
		Modules:              make([][]module, size),
		IsFunction:           make([][]bool, size),
	}
	for i := 0; i < size; i++ {
		code.Modules[i] = make([]module, size)
		code.IsFunction[i] = make([]bool, size)
	}

	code.drawMicroFunctionPatterns()
	code.drawMicroCodewords(codewords, dataCapacityBits)
	code.Mask = code.handleMicroConstructorMasking(mask)
	code.IsFunction = nil

	return &code, nil
}

// effectiveMicroLevel defaults M1's implicit level to Low for table
// lookups, matching the original's "default L if unspecified" rule for
// versions that carry one, and M1's fixed single capacity entry.
func effectiveMicroLevel(level ECC, hasLevel bool) ECC {
	if !hasLevel {
		return Low
	}
	return level
}

// EncodeMicroText encodes text as a Micro QR code symbol, automatically
// choosing the smallest version (in ascending size) that can hold it at
// the requested level.
func EncodeMicroText(text string, level ECC, hasLevel bool) (*MicroQRCode, error) {
	segs := MakeSegments(text)
	return encodeMicroAutoVersion(segs, level, hasLevel)
}

// EncodeMicroBinary encodes a byte slice as a Micro QR code symbol,
// automatically choosing the smallest version that can hold it.
func EncodeMicroBinary(data []byte, level ECC, hasLevel bool) (*MicroQRCode, error) {
	seg := MakeBytes(data)
	return encodeMicroAutoVersion([]*QRSegment{seg}, level, hasLevel)
}

// EncodeMicroTextWithECI always fails: Micro QR symbols have no mode
// indicator value for ECI and cannot carry one, unlike full QR symbols.
// The parameters are kept so callers (notably the CLI) can reject
// --micro --eci combinations with a single, uniform error path.
func EncodeMicroTextWithECI(text string, eciAssignValue int, level ECC, hasLevel bool) (*MicroQRCode, error) {
	return nil, fmt.Errorf("Micro QR symbols do not support ECI: %w", ErrDesignatorNotSupported)
}

func encodeMicroAutoVersion(segs []*QRSegment, level ECC, hasLevel bool) (*MicroQRCode, error) {
	for _, v := range []MicroVersion{M1, M2, M3, M4} {
		if !validMicroDesignator(v, level, hasLevel) {
			continue
		}
		code, err := EncodeMicroSegments(segs, v, level, hasLevel, -1)
		if err == nil {
			return code, nil
		}
	}
	return nil, fmt.Errorf("no Micro QR version fits the given data: %w", ErrDataTooLarge)
}

func (q *MicroQRCode) setFunctionModule(x, y int, isBlack bool) {
	q.Modules[y][x] = bToModule(isBlack)
	q.IsFunction[y][x] = true
}

// drawMicroFunctionPatterns draws the single finder pattern, its
// separator, and the row/column-0 timing strips. Micro QR has no
// alignment patterns, no dark module, and no version information block.
func (q *MicroQRCode) drawMicroFunctionPatterns() {
	for i := 0; i < q.Size; i++ {
		q.setFunctionModule(i, 0, i%2 == 0)
		q.setFunctionModule(0, i, i%2 == 0)
	}

	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			x, y := 3+dx, 3+dy
			if x < 0 || x >= q.Size || y < 0 || y >= q.Size {
				continue
			}
			dist := max(abs(dx), abs(dy))
			q.setFunctionModule(x, y, dist != 2 && dist != 4)
		}
	}

	q.drawMicroFormatBits(0)
}

// drawMicroCodewords draws the codeword sequence, with its data part
// truncated to usedBits (the symbol's data capacity in bits; M1 and M3 end
// their data in a 4-bit codeword), plus all parity bits, along the same
// zig-zag traversal QR uses, skipping column 0 (the vertical timing strip)
// instead of column 6.
func (q *MicroQRCode) drawMicroCodewords(data []byte, usedBits int) {
	totalBits := len(data) * 8
	dataBytes := (usedBits + 7) / 8
	i := 0

	for right := q.Size - 1; right >= 1; right -= 2 {
		for vert := 0; vert < q.Size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				if x == 0 {
					continue
				}
				upward := (q.Size-1-right)&2 == 0
				var y int
				if upward {
					y = q.Size - 1 - vert
				} else {
					y = vert
				}

				if i == usedBits {
					i = dataBytes * 8 // Skip the zero bits that fill out the last data byte.
				}
				if !q.IsFunction[y][x] && i < totalBits {
					q.Modules[y][x] = module(getBit(int(data[i>>3]), 7-(i&7)))
					i++
				}
			}
		}
	}
}

// microMaskFunction applies one of the four Micro QR mask patterns.
func microMaskFunction(mask Mask, x, y int) bool {
	switch mask {
	case 0:
		return y%2 == 0
	case 1:
		return (y/2+x/3)%2 == 0
	case 2:
		return (y*x%2+y*x%3)%2 == 0
	case 3:
		return ((y+x)%2+y*x%3)%2 == 0
	default:
		panic("illegal Micro QR mask value")
	}
}

func (q *MicroQRCode) applyMask(mask Mask) {
	for y := 0; y < q.Size; y++ {
		for x := 0; x < q.Size; x++ {
			invert := microMaskFunction(mask, x, y) && !q.IsFunction[y][x]
			q.Modules[y][x] ^= module(bToI(invert))
		}
	}
}

// microHighScore computes the "high score" penalty micro QR maximizes:
// 16*min(sum1,sum2) + max(sum1,sum2), where sum1/sum2 count dark modules
// along the bottom row and right column, excluding the shared corner.
func (q *MicroQRCode) microHighScore() int {
	sum1, sum2 := 0, 0
	for x := 1; x < q.Size-1; x++ {
		sum1 += bToI(q.Modules[q.Size-1][x] == 1)
	}
	for y := 1; y < q.Size-1; y++ {
		sum2 += bToI(q.Modules[y][q.Size-1] == 1)
	}

	a, b := sum1, sum2
	if a > b {
		a, b = b, a
	}
	return 16*a + b
}

// handleMicroConstructorMasking chooses the mask maximizing microHighScore
// (or applies the caller's explicit choice), ties going to the lowest
// index, then writes the final format information.
func (q *MicroQRCode) handleMicroConstructorMasking(mask Mask) Mask {
	if mask == -1 {
		best := -math.MaxInt32
		for i := Mask(0); i < 4; i++ {
			q.applyMask(i)
			q.drawMicroFormatBits(i)
			score := q.microHighScore()
			if score > best {
				mask = i
				best = score
			}
			q.applyMask(i)
		}
	}

	if mask < 0 || 3 < mask {
		panic("illegal Micro QR mask value")
	}

	q.applyMask(mask)
	q.drawMicroFormatBits(mask)
	return mask
}

// drawMicroFormatBits draws the single copy of Micro QR format
// information: a 3-bit symbol number and 2-bit mask id, BCH-protected and
// masked, placed along column 8 (rows 1-8) then row 8 (columns 7 down to
// 1).
func (q *MicroQRCode) drawMicroFormatBits(mask Mask) {
	symbolNumber := microSymbolNumber[q.MicroVersion][q.ErrorCorrectionLevel]
	data := symbolNumber<<2 | int(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*0x537
	}
	bits := data<<10 | rem ^ microFormatMask
	if bits>>15 != 0 {
		panic("incorrect Micro QR format bits calculation")
	}

	for i := 0; i <= 7; i++ {
		q.setFunctionModule(8, i+1, getBitAsBool(bits, i))
	}
	for i := 8; i <= 14; i++ {
		q.setFunctionModule(15-i, 8, getBitAsBool(bits, i))
	}
}

func (q *MicroQRCode) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "MicroQRCode %s\n", q.Designator())
	for y := 0; y < q.Size; y++ {
		sb.WriteString("\t")
		for x := 0; x < q.Size; x++ {
			if q.Modules[y][x] == 1 {
				sb.WriteString("░")
			} else {
				sb.WriteString("▓")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToSVGString returns an SVG representation of the Micro QR code, in the
// same format QRCode.ToSVGString produces.
func (q *MicroQRCode) ToSVGString(border int, includeDocType bool) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("border must be non-negative")
	}

	var sb strings.Builder
	if includeDocType {
		sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	}
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", q.Size+border*2)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	for y := 0; y < q.Size; y++ {
		for x := 0; x < q.Size; x++ {
			if q.Modules[y][x] == 1 {
				if x != 0 && y != 0 {
					sb.WriteString(" ")
				}
				fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
			}
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
