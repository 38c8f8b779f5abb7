// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

package prompt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// Output formats understood by Encode.
const (
	FormatForm      = "form"
	FormatMultipart = "multipart"
	FormatJSON      = "json"
	FormatEnv       = "env"
)

// ErrUnknownFormat is returned by Encode for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown payload format")

// Formats lists the names accepted by Encode.
func Formats() []string {
	return []string{FormatForm, FormatMultipart, FormatJSON, FormatEnv}
}

// envNames maps payload keys to the variables written by the env format.
var envNames = map[string]string{
	KeyPassword:           "PGPASSWORD",
	KeySavePassword:       "CONNPROMPT_SAVE_PASSWORD",
	KeyTunnelPassword:     "CONNPROMPT_TUNNEL_PASSWORD",
	KeySaveTunnelPassword: "CONNPROMPT_SAVE_TUNNEL_PASSWORD",
}

// Encode writes p to w in the named format.
func Encode(w io.Writer, p Payload, format string) error {
	switch strings.ToLower(format) {
	case FormatForm, "":
		_, err := io.WriteString(w, p.Values().Encode()+"\n")
		return err
	case FormatMultipart:
		return encodeMultipart(w, p)
	case FormatJSON:
		return encodeJSON(w, p)
	case FormatEnv:
		return encodeEnv(w, p)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// encodeMultipart writes a Content-Type header line followed by a
// multipart/form-data body with one part per field.
func encodeMultipart(w io.Writer, p Payload) error {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range p.fields {
		if err := mw.WriteField(f.Name, f.Value); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Content-Type: %s\r\n\r\n", mw.FormDataContentType()); err != nil {
		return err
	}
	_, err := body.WriteTo(w)
	return err
}

// encodeJSON writes a flat object keeping payload order. Values are written
// as-is, without HTML escaping of &, < and >.
func encodeJSON(w io.Writer, p Payload) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range p.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := jsonString(f.Name)
		if err != nil {
			return err
		}
		v, err := jsonString(f.Value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteString("}\n")
	_, err := buf.WriteTo(w)
	return err
}

func jsonString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func encodeEnv(w io.Writer, p Payload) error {
	for _, f := range p.fields {
		name, ok := envNames[f.Name]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", name, shellescape.Quote(f.Value)); err != nil {
			return err
		}
	}
	return nil
}
