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

import errors "github.com/sabouaram/godb/errors"

const (
	NotFound errors.CodeError = iota + errors.MinPkgObjDb
	Io
	CorruptCompression
	CorruptHeader
	SizeMismatch
	DigestMismatch
	InvalidDigestFormat
	InvalidArgument
	AmbiguousPrefix
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(NotFound)
	errors.RegisterIdFctMessage(NotFound, getMessage)
}

func getMessage(code errors.CodeError) (message string) {
	switch code {
	case NotFound:
		return "requested digest has no file under the store"
	case Io:
		return "filesystem operation failed"
	case CorruptCompression:
		return "deflate stream failed to decode or has trailing bytes"
	case CorruptHeader:
		return "malformed object header"
	case SizeMismatch:
		return "declared size does not match payload length"
	case DigestMismatch:
		return "recomputed digest does not match the requested digest"
	case InvalidDigestFormat:
		return "digest string is not valid hex of an expected length"
	case InvalidArgument:
		return "required parameter is missing or empty"
	case AmbiguousPrefix:
		return "abbreviated digest prefix matches more than one object"
	}

	return ""
}
