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

// Package hasher implements a streaming digest accumulator over the
// object database's canonical pre-image, in the shape of the corpus's
// encoding.Coder sub-packages but backed by SHA-1, since an object's
// identity is a 160-bit digest, not 256-bit.
package hasher

import (
	"crypto/sha1"
	"fmt"
	"hash"
	"io"

	libenc "github.com/sabouaram/godb/encoding"
	"github.com/sabouaram/godb/oid"
)

// Hasher extends the corpus's Coder interface with a typed Finalize, since
// a digest accumulator's natural output is an oid.Digest, not a raw byte
// slice.
type Hasher interface {
	libenc.Coder

	// Finalize sums the accumulated bytes into an oid.Digest. It does not
	// reset the underlying hash; call Reset first to reuse the instance.
	Finalize() oid.Digest
}

type crt struct {
	hsh hash.Hash
}

// New returns a fresh Hasher wrapping a crypto/sha1 accumulator. Each
// instance is single-use: feed bytes via Encode/EncodeReader/EncodeWriter,
// then call Finalize, or call Reset to start over.
func New() Hasher {
	return &crt{hsh: sha1.New()}
}

func (o *crt) Encode(p []byte) []byte {
	if o.hsh == nil {
		return make([]byte, 0)
	}

	if len(p) > 0 {
		if _, e := o.hsh.Write(p); e != nil {
			return make([]byte, 0)
		}
	}

	if q := o.hsh.Sum(nil); len(q) < 1 {
		return make([]byte, 0)
	} else {
		return q
	}
}

func (o *crt) Decode(p []byte) ([]byte, error) {
	return nil, fmt.Errorf("hasher: decode is not applicable to a digest accumulator")
}

func (o *crt) EncodeReader(r io.Reader) io.ReadCloser {
	f := func(p []byte) (n int, err error) {
		n, err = r.Read(p)

		if n > 0 && o.hsh != nil {
			o.hsh.Write(p[0:n])
		}

		return n, err
	}

	c := func() error {
		if rc, ok := r.(io.Closer); ok {
			return rc.Close()
		}
		return nil
	}

	return &reader{f: f, c: c}
}

func (o *crt) DecodeReader(r io.Reader) io.ReadCloser {
	return nil
}

func (o *crt) EncodeWriter(w io.Writer) io.WriteCloser {
	f := func(p []byte) (n int, err error) {
		n, err = w.Write(p)

		if n > 0 && o.hsh != nil {
			o.hsh.Write(p[0:n])
		}

		return n, err
	}

	c := func() error {
		if wc, ok := w.(io.Closer); ok {
			return wc.Close()
		}
		return nil
	}

	return &writer{f: f, c: c}
}

func (o *crt) DecodeWriter(w io.Writer) io.WriteCloser {
	return nil
}

func (o *crt) Reset() {
	if o.hsh != nil {
		o.hsh.Reset()
	}
}

func (o *crt) Finalize() oid.Digest {
	d, _ := oid.FromBytes(o.Encode(nil))
	return d
}

type reader struct {
	f func(p []byte) (n int, err error)
	c func() error
}

func (r *reader) Read(p []byte) (n int, err error) {
	if r.f == nil {
		return 0, fmt.Errorf("invalid reader")
	}
	return r.f(p)
}

func (r *reader) Close() error {
	if r.c == nil {
		return fmt.Errorf("invalid closer")
	}
	return r.c()
}

type writer struct {
	f func(p []byte) (n int, err error)
	c func() error
}

func (w *writer) Write(p []byte) (n int, err error) {
	if w.f == nil {
		return 0, fmt.Errorf("invalid writer")
	}
	return w.f(p)
}

func (w *writer) Close() error {
	if w.c == nil {
		return fmt.Errorf("invalid closer")
	}
	return w.c()
}
