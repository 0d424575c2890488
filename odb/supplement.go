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
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	errors "github.com/sabouaram/godb/errors"
	"github.com/sabouaram/godb/errors/pool"
	"github.com/sabouaram/godb/oid"
)

// Has reports whether an object named d exists under the store, without
// inflating or verifying its content. It is a cheap existence pre-check
// for callers (index/working-tree layers) that do not need the payload.
func (h *StoreHandle) Has(d oid.Digest) bool {
	_, err := os.Stat(objectPath(h.root, d))
	return err == nil
}

// ResolvePrefix scans the fan-out directory (or directories, for a
// sub-2-character prefix) implied by prefix and returns the unique
// matching digest. It fails NotFound with no match, AmbiguousPrefix with
// more than one, or InvalidDigestFormat if prefix is not valid hex.
func (h *StoreHandle) ResolvePrefix(prefix string) (oid.Digest, errors.Error) {
	pfx, perr := oid.ParsePrefix(prefix)
	if perr != nil {
		return oid.Digest{}, classifyDigestError(perr)
	}

	dirs := h.candidateFanOutDirs(prefix)

	var matches []oid.Digest
	for _, dirHex := range dirs {
		dirPath := filepath.Join(h.root, dirHex)

		entries, rerr := os.ReadDir(dirPath)
		if rerr != nil {
			continue
		}

		for _, e := range entries {
			if e.IsDir() {
				continue
			}

			full, ferr := oid.Parse(dirHex + e.Name())
			if ferr != nil {
				continue
			}

			if pfx.Matches(full) {
				matches = append(matches, full)
			}
		}
	}

	switch len(matches) {
	case 0:
		return oid.Digest{}, NotFound.Error()
	case 1:
		return matches[0], nil
	default:
		return oid.Digest{}, AmbiguousPrefix.Error()
	}
}

// candidateFanOutDirs returns the lowercase hex fan-out directory names
// (the 16 two-character names that begin with a 1-character prefix, or the
// single one implied by a prefix of 2+ characters) that could contain a
// digest matching prefix.
func (h *StoreHandle) candidateFanOutDirs(prefix string) []string {
	prefix = strings.ToLower(prefix)
	if len(prefix) >= 2 {
		return []string{prefix[:2]}
	}

	const hexDigits = "0123456789abcdef"
	var out []string
	for _, c := range hexDigits {
		out = append(out, prefix+string(c))
	}
	sort.Strings(out)
	return out
}

// VerifyAll reads and fully verifies every digest in digests, using a
// bounded worker pool, and collects one error per failing digest via
// errors/pool's thread-safe indexed collection. An empty slice means every
// digest verified.
func (h *StoreHandle) VerifyAll(ctx context.Context, digests []oid.Digest) []error {
	const workers = 8

	p := pool.New()

	var (
		wg  sync.WaitGroup
		sem = make(chan struct{}, workers)
	)

	for i, d := range digests {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx uint64, digest oid.Digest) {
			defer wg.Done()
			defer func() { <-sem }()

			if obj, err := h.Read(ctx, digest); err != nil {
				p.Set(idx+1, err)
			} else {
				obj.Close()
			}
		}(uint64(i), d)
	}

	wg.Wait()

	return p.Slice()
}
