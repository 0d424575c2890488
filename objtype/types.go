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

// Package objtype defines the closed set of loose-object kinds.
package objtype

type ObjectType uint8

const (
	Commit ObjectType = iota + 1
	Tree
	Blob
	Tag
)

// LegacyTag is the 3-bit type tag carried in a legacy-format prefix byte.
// It is distinct from the ObjectType iota values so the on-disk encoding
// survives reordering of the ObjectType constants.
type LegacyTag uint8

const (
	legacyCommit LegacyTag = 1
	legacyTree   LegacyTag = 2
	legacyBlob   LegacyTag = 3
	legacyTag    LegacyTag = 4
)

func List() []ObjectType {
	return []ObjectType{
		Commit,
		Tree,
		Blob,
		Tag,
	}
}

func ListString() []string {
	var (
		lst = List()
		res = make([]string, len(lst))
	)
	for i := range lst {
		res[i] = lst[i].String()
	}
	return res
}

func (o ObjectType) String() string {
	switch o {
	case Commit:
		return "commit"
	case Tree:
		return "tree"
	case Blob:
		return "blob"
	case Tag:
		return "tag"
	default:
		return ""
	}
}

// LegacyTag returns the 3-bit type tag this ObjectType carries in a legacy
// prefix byte, and false if the type has no legacy encoding.
func (o ObjectType) LegacyTag() (LegacyTag, bool) {
	switch o {
	case Commit:
		return legacyCommit, true
	case Tree:
		return legacyTree, true
	case Blob:
		return legacyBlob, true
	case Tag:
		return legacyTag, true
	default:
		return 0, false
	}
}

// FromLegacyTag resolves a 3-bit legacy prefix type tag back to an
// ObjectType. ok is false for any tag outside 1-4.
func FromLegacyTag(t LegacyTag) (ObjectType, bool) {
	switch t {
	case legacyCommit:
		return Commit, true
	case legacyTree:
		return Tree, true
	case legacyBlob:
		return Blob, true
	case legacyTag:
		return Tag, true
	default:
		return 0, false
	}
}

// Parse resolves a lowercase ASCII type name to an ObjectType. Unlike
// compress.Algorithm's lenient UnmarshalText, an unrecognized name is an
// error, not a default: ObjectType has no zero-value member to fall back to.
func Parse(name string) (ObjectType, bool) {
	switch name {
	case "commit":
		return Commit, true
	case "tree":
		return Tree, true
	case "blob":
		return Blob, true
	case "tag":
		return Tag, true
	default:
		return 0, false
	}
}
