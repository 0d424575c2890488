/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package looseformat implements the on-disk loose-object framing: format
// detection, the legacy variable-length prefix, the canonical header, and
// the zlib stream wrapping both. Errors are plain sentinels here; the odb
// package classifies them into errors.CodeError values at its boundary.
package looseformat

import "fmt"

var (
	// ErrCorruptCompression marks a zlib stream that failed to decode, was
	// truncated, or left trailing bytes after the stream end.
	ErrCorruptCompression = fmt.Errorf("looseformat: corrupt compression stream")

	// ErrCorruptHeader marks a malformed canonical header or legacy prefix:
	// missing delimiters, a non-digit size, a leading-zero size, or an
	// unrecognized type tag.
	ErrCorruptHeader = fmt.Errorf("looseformat: corrupt object header")

	// ErrSizeMismatch marks an inflated payload length disagreeing with the
	// size declared in the header or legacy prefix.
	ErrSizeMismatch = fmt.Errorf("looseformat: declared size does not match payload length")
)
