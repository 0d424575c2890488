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

// Package rawobject holds the in-memory, single-owner representation of a
// decoded or about-to-be-written loose object.
package rawobject

import (
	"github.com/sabouaram/godb/objtype"
)

// Object carries an ObjectType plus an owned payload buffer. It is
// immutable after construction; callers that need to mutate the payload
// must Clone first.
type Object struct {
	kind    objtype.ObjectType
	payload []byte
	closed  bool
}

// New takes ownership of payload and returns an Object wrapping it. The
// caller must not retain or mutate payload after this call.
func New(kind objtype.ObjectType, payload []byte) *Object {
	return &Object{kind: kind, payload: payload}
}

// Type returns the object's kind.
func (o *Object) Type() objtype.ObjectType {
	return o.kind
}

// Payload returns the owned payload slice. Callers must not retain it
// past a Close call.
func (o *Object) Payload() []byte {
	if o.closed {
		return nil
	}
	return o.payload
}

// Len returns the payload length.
func (o *Object) Len() int {
	if o.closed {
		return 0
	}
	return len(o.payload)
}

// Clone returns a new Object with an independent copy of the payload.
func (o *Object) Clone() *Object {
	if o.closed {
		return New(o.kind, nil)
	}

	cp := make([]byte, len(o.payload))
	copy(cp, o.payload)
	return New(o.kind, cp)
}

// Close releases the payload buffer. After Close, Payload returns nil and
// Len returns 0. Close is idempotent.
func (o *Object) Close() {
	if o.closed {
		return
	}
	o.payload = nil
	o.closed = true
}
