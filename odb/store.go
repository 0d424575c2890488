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

// Package odb is a content-addressed loose-object store: it locates,
// decodes, verifies, and atomically writes objects named by a 160-bit
// digest under a two-level fan-out directory layout.
package odb

import (
	"os"

	"github.com/sirupsen/logrus"

	libatm "github.com/sabouaram/godb/atomic"
	errors "github.com/sabouaram/godb/errors"
	"github.com/sabouaram/godb/file/perm"
)

// StoreHandle is an open object root. It retains no file descriptors
// between operations; the only state carried across calls is the
// fan-out directory existence cache. Multiple handles over the same root
// are permitted and share no state with each other.
type StoreHandle struct {
	root     string
	fsync    bool
	dirPerm  perm.Perm
	filePerm perm.Perm
	log      *logrus.Logger

	dirCache libatm.MapTyped[string, struct{}]
}

// Open verifies root exists and is a directory, then returns a ready
// StoreHandle. It fails with Io if root is missing, unreadable, or not a
// directory.
func Open(opt Options) (*StoreHandle, errors.Error) {
	if opt.Root == "" {
		return nil, InvalidArgument.Error()
	}

	fi, e := os.Stat(opt.Root)
	if e != nil {
		return nil, Io.Error(e)
	}
	if !fi.IsDir() {
		return nil, Io.Errorf("object root %q is not a directory", opt.Root)
	}

	h := &StoreHandle{
		root:     opt.Root,
		fsync:    opt.Fsync,
		dirPerm:  opt.DirPerm,
		filePerm: opt.FilePerm,
		log:      logrus.StandardLogger(),
		dirCache: libatm.NewMapTyped[string, struct{}](),
	}

	h.log.WithFields(logrus.Fields{"op": "open", "root": opt.Root}).Info("object store opened")

	return h, nil
}

// SetLogger attaches a caller-supplied logger, replacing the package's
// standard logger. Passing nil restores logrus.StandardLogger().
func (h *StoreHandle) SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	h.log = l
}

// Root returns the absolute object root path this handle was opened on.
func (h *StoreHandle) Root() string {
	return h.root
}

// Close releases the handle's internal state. The store holds no
// persistent resource, so Close never fails; it exists so callers have a
// symmetric Open/Close lifecycle to defer.
func (h *StoreHandle) Close() errors.Error {
	h.log.WithFields(logrus.Fields{"op": "close", "root": h.root}).Info("object store closed")
	return nil
}
