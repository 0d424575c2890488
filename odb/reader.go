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
	"context"
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	liberr "github.com/sabouaram/godb/errors"
	"github.com/sabouaram/godb/hasher"
	"github.com/sabouaram/godb/looseformat"
	"github.com/sabouaram/godb/objtype"
	"github.com/sabouaram/godb/oid"
	"github.com/sabouaram/godb/rawobject"
)

// Read locates, decodes, and digest-verifies the object named d. It
// auto-detects the on-disk frame (current or legacy) and returns a
// CorruptCompression, CorruptHeader, SizeMismatch, or DigestMismatch
// classified error on any inconsistency, never a partially-decoded
// RawObject.
func (h *StoreHandle) Read(ctx context.Context, d oid.Digest) (*rawobject.Object, liberr.Error) {
	if err := ctx.Err(); err != nil {
		return nil, Io.Error(err)
	}

	p := objectPath(h.root, d)

	buf, rerr := os.ReadFile(p)
	if rerr != nil {
		if errors.Is(rerr, os.ErrNotExist) {
			return nil, NotFound.Error(rerr)
		}
		return nil, Io.Error(rerr)
	}

	h.log.WithFields(logrus.Fields{"op": "read", "digest": d.String(), "path": p}).Debug("loose object located")

	if err := ctx.Err(); err != nil {
		return nil, Io.Error(err)
	}

	var (
		kind    objtype.ObjectType
		payload []byte
		preimg  []byte
	)

	format := looseformat.Legacy
	if len(buf) >= 2 {
		format = looseformat.Detect(buf[0], buf[1])
	}

	if format == looseformat.Current {
		h.log.WithFields(logrus.Fields{"op": "read", "digest": d.String(), "format": "current"}).Debug("current format detected")

		inflated, ierr := looseformat.Inflate(buf, 0)
		if ierr != nil {
			return nil, classifyFormatError(ierr)
		}

		t, size, headerLen, herr := looseformat.ParseHeader(inflated)
		if herr != nil {
			return nil, classifyFormatError(herr)
		}

		if len(inflated)-headerLen != size {
			return nil, SizeMismatch.Error()
		}

		kind = t
		payload = inflated[headerLen:]
		preimg = inflated
	} else {
		h.log.WithFields(logrus.Fields{"op": "read", "digest": d.String(), "format": "legacy"}).Debug("legacy format detected")

		t, size, prefixLen, perr := looseformat.DecodeLegacyPrefix(buf)
		if perr != nil {
			return nil, classifyFormatError(perr)
		}

		if prefixLen > len(buf) {
			return nil, CorruptCompression.Error()
		}

		inflated, ierr := looseformat.Inflate(buf[prefixLen:], size)
		if ierr != nil {
			return nil, classifyFormatError(ierr)
		}

		if len(inflated) != size {
			return nil, SizeMismatch.Error()
		}

		kind = t
		payload = inflated
		preimg = looseformat.EncodeHeader(t, size)
		preimg = append(preimg, inflated...)
	}

	if err := ctx.Err(); err != nil {
		return nil, Io.Error(err)
	}

	got := hasher.New()
	got.Encode(preimg)
	if !got.Finalize().Equal(d) {
		h.log.WithFields(logrus.Fields{"op": "read", "digest": d.String()}).Warn("digest mismatch on read")
		return nil, DigestMismatch.Error()
	}

	out := make([]byte, len(payload))
	copy(out, payload)

	return rawobject.New(kind, out), nil
}
