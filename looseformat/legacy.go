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

import "github.com/sabouaram/godb/objtype"

// DecodeLegacyPrefix reads the variable-length legacy header from the
// start of buf. The first byte's high 3 bits (6..4) carry the object type
// tag (1=commit, 2=tree, 3=blob, 4=tag), its low 4 bits (3..0) carry the
// size's low 4 bits, and its bit 7 is a continuation flag: when set, the
// next byte contributes its own low 7 bits at the next 7-bit shift, and so
// on while each consumed byte's bit 7 remains set.
//
// It returns the decoded type, the declared payload size, and the number
// of prefix bytes consumed (the offset of the start of the zlib stream).
func DecodeLegacyPrefix(buf []byte) (kind objtype.ObjectType, size int, prefixLen int, err error) {
	if len(buf) < 1 {
		return 0, 0, 0, ErrCorruptHeader
	}

	b0 := buf[0]
	tag := objtype.LegacyTag((b0 >> 4) & 0x07)

	kind, ok := objtype.FromLegacyTag(tag)
	if !ok {
		return 0, 0, 0, ErrCorruptHeader
	}

	size = int(b0 & 0x0f)
	shift := uint(4)
	i := 1

	for b0&0x80 != 0 {
		if i >= len(buf) {
			return 0, 0, 0, ErrCorruptHeader
		}

		b0 = buf[i]
		size |= int(b0&0x7f) << shift
		shift += 7
		i++
	}

	return kind, size, i, nil
}
