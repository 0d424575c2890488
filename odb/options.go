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
	"github.com/sabouaram/godb/file/perm"
)

// Options configures a StoreHandle at Open. It carries no config-loader
// dependency of its own; JSON/YAML/CBOR marshaling on Perm lets a caller
// embedding the store in a larger service persist and restore one without
// this package depending on any binding framework.
type Options struct {
	// Root is the absolute path of the object root directory. Required.
	Root string `json:"root" yaml:"root" cbor:"root"`

	// Fsync controls whether a written loose-object file is fsynced before
	// the atomic rename. DefaultOptions sets it to true; in a zero-valued
	// Options it is false.
	Fsync bool `json:"fsync" yaml:"fsync" cbor:"fsync"`

	// DirPerm is the mode fan-out directories are created with.
	DirPerm perm.Perm `json:"dirPerm" yaml:"dirPerm" cbor:"dirPerm"`

	// FilePerm is the mode loose-object files (and their temp siblings)
	// are created with.
	FilePerm perm.Perm `json:"filePerm" yaml:"filePerm" cbor:"filePerm"`
}

// DefaultOptions returns Options for root with the conventional
// directory/file permissions and fsync enabled.
func DefaultOptions(root string) Options {
	dirPerm, _ := perm.ParseInt(0755)
	filePerm, _ := perm.ParseInt(0644)

	return Options{
		Root:     root,
		Fsync:    true,
		DirPerm:  dirPerm,
		FilePerm: filePerm,
	}
}
