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

import (
	"strconv"

	"github.com/sabouaram/godb/objtype"
)

// EncodeHeader builds the canonical pre-image header "<type> <size>\0".
func EncodeHeader(kind objtype.ObjectType, size int) []byte {
	h := kind.String()
	s := strconv.Itoa(size)

	b := make([]byte, 0, len(h)+1+len(s)+1)
	b = append(b, h...)
	b = append(b, ' ')
	b = append(b, s...)
	b = append(b, 0)

	return b
}

// ParseHeader reads a canonical pre-image header from the start of buf and
// returns the decoded type, declared size, and the header's byte length
// (the offset of the first payload byte). It fails with ErrCorruptHeader
// on a missing space or NUL, an empty type name, an unknown type name, a
// non-digit size, or a size with a leading zero (other than the single
// digit "0").
func ParseHeader(buf []byte) (kind objtype.ObjectType, size int, headerLen int, err error) {
	sp := indexByte(buf, ' ')
	if sp <= 0 {
		return 0, 0, 0, ErrCorruptHeader
	}

	nul := indexByte(buf, 0)
	if nul < 0 || nul < sp {
		return 0, 0, 0, ErrCorruptHeader
	}

	name := string(buf[:sp])
	kind, ok := objtype.Parse(name)
	if !ok {
		return 0, 0, 0, ErrCorruptHeader
	}

	digits := buf[sp+1 : nul]
	if len(digits) == 0 {
		return 0, 0, 0, ErrCorruptHeader
	}

	if len(digits) > 1 && digits[0] == '0' {
		return 0, 0, 0, ErrCorruptHeader
	}

	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, 0, 0, ErrCorruptHeader
		}
	}

	size, convErr := strconv.Atoi(string(digits))
	if convErr != nil || size < 0 {
		return 0, 0, 0, ErrCorruptHeader
	}

	return kind, size, nul + 1, nil
}

func indexByte(b []byte, c byte) int {
	for i := range b {
		if b[i] == c {
			return i
		}
	}
	return -1
}
