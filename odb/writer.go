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
	"fmt"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"

	liberr "github.com/sabouaram/godb/errors"
	"github.com/sabouaram/godb/hasher"
	"github.com/sabouaram/godb/looseformat"
	"github.com/sabouaram/godb/oid"
	"github.com/sabouaram/godb/rawobject"
)

// Write builds the canonical pre-image for obj, mints its digest, and
// atomically places the current-format compressed file under the store.
// If a file already exists at the target path, the write is a no-op and
// the existing content's digest is returned unchanged (content-addressable
// stores never need to overwrite).
func (h *StoreHandle) Write(ctx context.Context, obj *rawobject.Object) (oid.Digest, liberr.Error) {
	if err := ctx.Err(); err != nil {
		return oid.Digest{}, Io.Error(err)
	}

	payload := obj.Payload()
	header := looseformat.EncodeHeader(obj.Type(), len(payload))

	hs := hasher.New()
	hs.Encode(header)
	hs.Encode(payload)
	d := hs.Finalize()

	p := objectPath(h.root, d)

	if _, statErr := os.Stat(p); statErr == nil {
		h.log.WithFields(logrus.Fields{"op": "write", "digest": d.String()}).Debug("object already present, no-op")
		return d, nil
	}

	if err := ctx.Err(); err != nil {
		return oid.Digest{}, Io.Error(err)
	}

	dir := fanOutDir(h.root, d)
	if err := h.ensureDir(dir); err != nil {
		return oid.Digest{}, err
	}

	preimg := make([]byte, 0, len(header)+len(payload))
	preimg = append(preimg, header...)
	preimg = append(preimg, payload...)

	compressed, derr := looseformat.Deflate(preimg)
	if derr != nil {
		return oid.Digest{}, Io.Error(derr)
	}

	if werr := h.atomicWrite(p, compressed); werr != nil {
		return oid.Digest{}, werr
	}

	h.log.WithFields(logrus.Fields{"op": "write", "digest": d.String(), "path": p}).Debug("object written")

	return d, nil
}

// ensureDir creates dir (mode h.dirPerm) if the process-local cache does
// not already record it as existing, then records it.
func (h *StoreHandle) ensureDir(dir string) liberr.Error {
	if _, ok := h.dirCache.Load(dir); ok {
		return nil
	}

	if err := os.MkdirAll(dir, h.dirPerm.FileMode()); err != nil {
		return Io.Error(err)
	}

	h.dirCache.Store(dir, struct{}{})
	return nil
}

// atomicWrite writes data to a sibling temporary file, optionally fsyncs
// it, then renames it into place at final. A rename failing because final
// now exists (a concurrent writer of the same content won the race) is
// treated as success and the temp file is unlinked.
func (h *StoreHandle) atomicWrite(final string, data []byte) liberr.Error {
	tmp := fmt.Sprintf("%s.tmp-%d", final, rand.Int63())

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, h.filePerm.FileMode())
	if err != nil {
		return Io.Error(err)
	}

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return Io.Error(err)
	}

	if h.fsync {
		if err = f.Sync(); err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
			return Io.Error(err)
		}
	}

	if err = f.Close(); err != nil {
		_ = os.Remove(tmp)
		return Io.Error(err)
	}

	if err = os.Rename(tmp, final); err != nil {
		if errors.Is(err, os.ErrExist) || fileExists(final) {
			_ = os.Remove(tmp)
			return nil
		}
		_ = os.Remove(tmp)
		return Io.Error(err)
	}

	return nil
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
