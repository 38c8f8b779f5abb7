// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package security

import (
	"encoding/json"
	"fmt"
	"io"
)

const redacted = "[SECRET]"

// Secret holds sensitive material such as a password. Formatting and
// marshalling it never reveals the content.
type Secret []byte

// String redacts the secret for fmt.Print* convenience.
func (s Secret) String() string { return redacted }

// Format implements fmt.Formatter to ensure `%v`, `%#v` and friends are redacted.
func (s Secret) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, redacted)
}

// Reveal returns the secret as a string.
func (s Secret) Reveal() string { return string(s) }

// Bytes returns a copy of the underlying bytes.
func (s Secret) Bytes() []byte {
	out := make([]byte, len(s))
	copy(out, s)
	return out
}

// Zero overwrites the underlying byte slice with zeros.
func (s *Secret) Zero() {
	if s == nil || *s == nil {
		return
	}
	clear(*s)
}

// MarshalJSON redacts secrets in JSON marshaling.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }

// MarshalText redacts secrets for text encoding.
func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// MarshalYAML redacts secrets for gopkg.in/yaml.v3.
func (s Secret) MarshalYAML() (any, error) { return redacted, nil }

// FromString creates a Secret from a string.
func FromString(in string) Secret { return Secret([]byte(in)) }

// FromBytes creates a Secret from bytes (it makes a copy).
func FromBytes(in []byte) Secret {
	out := make([]byte, len(in))
	copy(out, in)
	return Secret(out)
}
