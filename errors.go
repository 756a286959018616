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

import "errors"

// The fixed error taxonomy for symbol construction. Callers should use
// errors.Is against these sentinels rather than matching on message text.
var (
	// ErrDataTooLarge means no legal version (for the requested error
	// level) can hold the encoded message.
	ErrDataTooLarge = errors.New("data too large for any supported version")

	// ErrVersionTooSmall means the user requested a specific version that
	// cannot hold the message.
	ErrVersionTooSmall = errors.New("version does not support given data")

	// ErrDesignatorNotSupported means the requested (version, level)
	// combination is disallowed (e.g. Micro QR M1 with any explicit
	// level, or M2/M3 with level Q).
	ErrDesignatorNotSupported = errors.New("version and error level not supported")
)
