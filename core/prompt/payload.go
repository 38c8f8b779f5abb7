// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package prompt

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/toeirei/connprompt/core/security"
)

// Field is one key/value entry of a Payload.
type Field struct {
	Name  string
	Value string
}

// Payload is the ordered, multipart-style key/value set a dialog submits.
type Payload struct {
	fields []Field
}

func (p *Payload) append(name, value string) {
	p.fields = append(p.fields, Field{Name: name, Value: value})
}

// Get returns the value stored under name.
func (p Payload) Get(name string) (string, bool) {
	for _, f := range p.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Has reports whether name is part of the payload.
func (p Payload) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Len returns the number of fields.
func (p Payload) Len() int { return len(p.fields) }

// Fields returns a copy of the fields in submission order.
func (p Payload) Fields() []Field {
	return append([]Field(nil), p.fields...)
}

// Values converts the payload to url.Values.
func (p Payload) Values() url.Values {
	v := make(url.Values, len(p.fields))
	for _, f := range p.fields {
		v.Add(f.Name, f.Value)
	}
	return v
}

// String lists the fields with passwords redacted, for logging.
func (p Payload) String() string {
	parts := make([]string, 0, len(p.fields))
	for _, f := range p.fields {
		value := f.Value
		if f.Name == KeyPassword || f.Name == KeyTunnelPassword {
			value = security.FromString(value).String()
		}
		parts = append(parts, f.Name+"="+value)
	}
	return strings.Join(parts, " ")
}

// BuildPayload assembles the submission payload. Only sections whose prompt
// flag is set contribute, and a save flag is only present when it is true
// and saving is allowed for that section.
func BuildPayload(data PromptData, state FormState) Payload {
	var p Payload
	if data.PromptTunnelPassword {
		p.append(KeyTunnelPassword, state.TunnelPassword)
		if state.SaveTunnelPassword && data.AllowSaveTunnelPassword {
			p.append(KeySaveTunnelPassword, strconv.FormatBool(true))
		}
	}
	if data.PromptPassword {
		p.append(KeyPassword, state.Password)
		if state.SavePassword && data.AllowSavePassword {
			p.append(KeySavePassword, strconv.FormatBool(true))
		}
	}
	return p
}
