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

package looseformat

// Format distinguishes the two on-disk loose-object encodings.
type Format uint8

const (
	// Current is the only format this library writes: a zlib stream whose
	// inflated bytes are the full canonical pre-image.
	Current Format = iota
	// Legacy is a read-only historical encoding: a 1-2 byte plaintext
	// prefix followed by a zlib stream of the payload only.
	Legacy
)

// Detect classifies a file's on-disk format from its first two bytes.
// A zlib stream's first byte is 0x78 under the default window size, and a
// valid zlib header's first two bytes, read as a big-endian uint16, are a
// multiple of 31. Any file shorter than 2 bytes cannot carry a zlib header
// and is treated as legacy (its prefix byte is consumed by the caller
// before the stream is located).
func Detect(b0, b1 byte) Format {
	if b0 == 0x78 && (int(b0)*256+int(b1))%31 == 0 {
		return Current
	}
	return Legacy
}
