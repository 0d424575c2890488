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

package oid

import (
	"strings"

	enchex "github.com/sabouaram/godb/encoding/hexa"
)

// Prefix is a parsed abbreviated digest: the matching bytes of the full
// digest plus an effective length (in hex nibbles) used by a store to
// compare against candidate full digests one nibble at a time.
type Prefix struct {
	bytes   Digest
	nibbles int
}

// Nibbles returns the number of leading hex nibbles this prefix fixes.
func (p Prefix) Nibbles() int {
	return p.nibbles
}

// Bytes returns the full-size backing array; only the first Nibbles()
// nibbles are meaningful, the rest are zero-padding.
func (p Prefix) Bytes() Digest {
	return p.bytes
}

// Matches reports whether the full digest d agrees with this prefix on
// every fixed nibble.
func (p Prefix) Matches(d Digest) bool {
	full := p.nibbles / 2
	if !bytes0Equal(p.bytes[:full], d[:full]) {
		return false
	}

	if p.nibbles%2 == 1 {
		want := p.bytes[full] & 0xf0
		got := d[full] & 0xf0
		if want != got {
			return false
		}
	}

	return true
}

func bytes0Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ParsePrefix decodes a 1-to-HexSize-character hex prefix. It fails on
// non-hex characters, an empty string, or a string longer than HexSize.
func ParsePrefix(s string) (Prefix, error) {
	var p Prefix

	n := len(s)
	if n < 1 || n > HexSize {
		return p, ErrInvalidFormat
	}

	padded := s
	if n%2 == 1 {
		padded = s + "0"
	}

	b, err := enchex.New().Decode([]byte(strings.ToLower(padded)))
	if err != nil || len(b) != len(padded)/2 {
		return p, ErrInvalidFormat
	}

	copy(p.bytes[:], b)
	p.nibbles = n

	return p, nil
}
