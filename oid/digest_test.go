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

package oid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/godb/oid"
)

var _ = Describe("oid.Digest", func() {
	const commitHex = "3d7f8a6af076c8c3f20071a8935cdbe8228594d1"

	Describe("Parse and String", func() {
		It("round-trips a well-known digest through its hex text", func() {
			d, err := oid.Parse(commitHex)
			Expect(err).ToNot(HaveOccurred())
			Expect(d.String()).To(Equal(commitHex))
		})

		It("rejects a string shorter than 40 hex characters", func() {
			_, err := oid.Parse("3d7f8a6a")
			Expect(err).To(MatchError(oid.ErrInvalidFormat))
		})

		It("rejects non-hex characters", func() {
			_, err := oid.Parse("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")
			Expect(err).To(MatchError(oid.ErrInvalidFormat))
		})
	})

	Describe("FromBytes", func() {
		It("accepts exactly Size bytes", func() {
			b := make([]byte, oid.Size)
			d, ok := oid.FromBytes(b)
			Expect(ok).To(BeTrue())
			Expect(d).To(Equal(oid.Zero()))
		})

		It("rejects any other length", func() {
			_, ok := oid.FromBytes(make([]byte, oid.Size-1))
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Equal", func() {
		It("reports true for the same digest parsed twice", func() {
			a, _ := oid.Parse(commitHex)
			b, _ := oid.Parse(commitHex)
			Expect(a.Equal(b)).To(BeTrue())
		})

		It("reports false against the zero digest", func() {
			a, _ := oid.Parse(commitHex)
			Expect(a.Equal(oid.Zero())).To(BeFalse())
		})
	})

	Describe("FanOut", func() {
		It("splits the first byte from the remaining 19", func() {
			d, _ := oid.Parse(commitHex)
			dir, rest := d.FanOut()
			Expect(dir).To(Equal("3d"))
			Expect(rest).To(Equal("7f8a6af076c8c3f20071a8935cdbe8228594d1"))
			Expect(dir + rest).To(Equal(commitHex))
		})

		It("depends only on the digest bytes, not the root", func() {
			d, _ := oid.Parse(commitHex)
			dir1, rest1 := d.FanOut()
			dir2, rest2 := d.FanOut()
			Expect(dir1).To(Equal(dir2))
			Expect(rest1).To(Equal(rest2))
		})
	})
})
