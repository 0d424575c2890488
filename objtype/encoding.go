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

package objtype

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MarshalText implements encoding.TextMarshaler.
func (o ObjectType) MarshalText() ([]byte, error) {
	if s := o.String(); s != "" {
		return []byte(s), nil
	}

	return nil, fmt.Errorf("objtype: cannot marshal unknown type %d", uint8(o))
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// Unlike compress.Algorithm.UnmarshalText, an unrecognized value is a hard
// error. There is no "none" member to default to.
func (o *ObjectType) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, "\"'")

	t, ok := Parse(s)
	if !ok {
		return fmt.Errorf("objtype: unknown object type %q", s)
	}

	*o = t
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o ObjectType) MarshalJSON() ([]byte, error) {
	s, err := o.MarshalText()
	if err != nil {
		return nil, err
	}

	return append(append([]byte{'"'}, s...), '"'), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *ObjectType) UnmarshalJSON(b []byte) error {
	if n := []byte("null"); bytes.Equal(b, n) {
		return fmt.Errorf("objtype: null is not a valid object type")
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	return o.UnmarshalText([]byte(s))
}
