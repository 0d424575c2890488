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

package odb

import (
	"errors"

	liberr "github.com/sabouaram/godb/errors"
	"github.com/sabouaram/godb/looseformat"
	"github.com/sabouaram/godb/oid"
)

// classifyFormatError translates the plain sentinel errors returned by
// looseformat into this package's typed error taxonomy.
func classifyFormatError(err error) liberr.Error {
	switch {
	case errors.Is(err, looseformat.ErrCorruptCompression):
		return CorruptCompression.Error(err)
	case errors.Is(err, looseformat.ErrCorruptHeader):
		return CorruptHeader.Error(err)
	case errors.Is(err, looseformat.ErrSizeMismatch):
		return SizeMismatch.Error(err)
	default:
		return Io.Error(err)
	}
}

// classifyDigestError translates oid's parse sentinel into InvalidDigestFormat.
func classifyDigestError(err error) liberr.Error {
	if errors.Is(err, oid.ErrInvalidFormat) {
		return InvalidDigestFormat.Error(err)
	}
	return InvalidArgument.Error(err)
}
