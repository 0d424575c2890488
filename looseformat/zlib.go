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
	"bytes"
	"compress/zlib"
	"io"
)

// Inflate decompresses a zlib stream. When bound is greater than zero, the
// output buffer is pre-sized to bound and inflation fails with
// ErrSizeMismatch if more than bound bytes would be produced; when bound
// is zero, the output buffer grows by doubling with no cap. Any trailing
// byte left unread in src after the zlib stream ends is ErrCorruptCompression.
func Inflate(src []byte, bound int) ([]byte, error) {
	raw := bytes.NewReader(src)

	r, err := zlib.NewReader(raw)
	if err != nil {
		return nil, ErrCorruptCompression
	}
	defer r.Close()

	var out []byte
	if bound > 0 {
		out = make([]byte, 0, bound)
	} else {
		out = make([]byte, 0, 4096)
	}

	buf := make([]byte, 4096)
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			if bound > 0 && len(out)+n > bound {
				return nil, ErrSizeMismatch
			}
			out = append(out, buf[:n]...)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, ErrCorruptCompression
		}
	}

	// flate's reader stops reading raw exactly at the deflate stream's end,
	// so any byte raw has not yet consumed is trailing garbage in src.
	if raw.Len() > 0 {
		return nil, ErrCorruptCompression
	}

	return out, nil
}

// Deflate compresses data at the default level with the standard zlib
// two-byte header and trailing Adler-32 checksum. Output is deterministic
// for a given input and Go version; bit-exactness across independent
// implementations is not required, only round-trip fidelity.
func Deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
