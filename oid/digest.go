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

// Package oid implements the 160-bit content digest used to name every
// loose object, delegating hex conversion to the corpus's encoding.Coder
// abstraction (encoding/hexa) rather than calling encoding/hex directly.
package oid

import (
	"bytes"
	"fmt"

	enchex "github.com/sabouaram/godb/encoding/hexa"
)

// ErrInvalidFormat is returned by Parse and ParsePrefix when the input is
// not well-formed hex of an acceptable length. The odb package classifies
// this as odb.InvalidDigestFormat at its public boundary.
var ErrInvalidFormat = fmt.Errorf("oid: invalid digest format")

// Size is the byte length of a Digest.
const Size = 20

// HexSize is the length of a Digest's full hexadecimal text form.
const HexSize = Size * 2

// Digest is an opaque 160-bit object identifier. The zero value is not a
// valid digest of any object (no object hashes to all-zero bytes in
// practice, but callers should treat Zero() as a sentinel, not a real id).
type Digest [Size]byte

// Zero returns the sentinel empty digest.
func Zero() Digest {
	return Digest{}
}

// Bytes returns the digest's raw 20-byte form.
func (d Digest) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, d[:])
	return b
}

// Equal reports whether two digests are byte-wise identical.
func (d Digest) Equal(o Digest) bool {
	return bytes.Equal(d[:], o[:])
}

// String formats the digest as 40 lowercase hex characters.
func (d Digest) String() string {
	return string(enchex.New().Encode(d[:]))
}

// FanOut splits the digest into its two path-mapper segments: the lowercase
// hex of the first byte, and the lowercase hex of the remaining 19 bytes.
func (d Digest) FanOut() (dir string, rest string) {
	h := enchex.New()
	return string(h.Encode(d[:1])), string(h.Encode(d[1:]))
}

// FromBytes builds a Digest from an exact 20-byte slice.
func FromBytes(b []byte) (Digest, bool) {
	var d Digest

	if len(b) != Size {
		return d, false
	}

	copy(d[:], b)
	return d, true
}

// Parse decodes a 40-character lowercase or mixed-case hex string into a
// full Digest. It fails on any non-hex character or on a length other than
// HexSize.
func Parse(s string) (Digest, error) {
	var d Digest

	if len(s) != HexSize {
		return d, ErrInvalidFormat
	}

	b, err := enchex.New().Decode([]byte(s))
	if err != nil || len(b) != Size {
		return d, ErrInvalidFormat
	}

	copy(d[:], b)
	return d, nil
}
