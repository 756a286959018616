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

// Version is a QR code version number in the range [1, 40]. It determines
// the symbol's size (4*version + 17 modules square) and, together with the
// error correction level, its data capacity.
type Version int

// Mask identifies one of the eight QR mask patterns [0, 7], or -1 to
// request automatic selection.
type Mask int8

// module is a single rendered cell of a symbol: 0 (light) or 1 (dark).
type module byte
