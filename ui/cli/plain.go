// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toeirei/connprompt/core/prompt"
	"github.com/toeirei/connprompt/core/security"
	"github.com/toeirei/connprompt/internal/i18n"
	"golang.org/x/term"
)

// PlainPrompter asks the dialog's questions line by line. It is used when no
// full screen terminal UI is wanted.
type PlainPrompter struct {
	out    io.Writer
	reader *bufio.Reader
	// readPassword reads a secret without echo. nil means read a plain line.
	readPassword func() ([]byte, error)
}

// NewPlainPrompter prompts on out and reads from in. Passwords are read
// without echo when in is a terminal.
func NewPlainPrompter(in io.Reader, out io.Writer) *PlainPrompter {
	p := &PlainPrompter{
		out:    out,
		reader: bufio.NewReader(in),
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		p.readPassword = func() ([]byte, error) {
			return term.ReadPassword(fd)
		}
	}
	return p
}

// Prompt asks for every password data requires and returns the payload
// built from the answers.
func (p *PlainPrompter) Prompt(data prompt.PromptData) (prompt.Payload, error) {
	var state prompt.FormState
	var err error

	if data.ErrMsg != "" {
		fmt.Fprintln(p.out, data.ErrMsg)
	}

	if data.PromptTunnelPassword {
		fmt.Fprintln(p.out, prompt.TunnelMessage(data))
		if state.TunnelPassword, err = p.secret(i18n.T("connect.tunnel_password_label")); err != nil {
			return prompt.Payload{}, err
		}
		if data.AllowSaveTunnelPassword {
			if state.SaveTunnelPassword, err = p.confirm(i18n.T("connect.save_password_question")); err != nil {
				return prompt.Payload{}, err
			}
		}
	}

	if data.PromptPassword {
		fmt.Fprintln(p.out, prompt.PasswordMessage(data))
		if state.Password, err = p.secret(i18n.T("connect.password_label")); err != nil {
			return prompt.Payload{}, err
		}
		if data.AllowSavePassword {
			if state.SavePassword, err = p.confirm(i18n.T("connect.save_password_question")); err != nil {
				return prompt.Payload{}, err
			}
		}
	}

	return prompt.BuildPayload(data, state), nil
}

func (p *PlainPrompter) secret(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if p.readPassword != nil {
		b, err := p.readPassword()
		fmt.Fprintln(p.out)
		secret := security.Secret(b)
		defer secret.Zero()
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return secret.Reveal(), nil
	}
	return p.line()
}

func (p *PlainPrompter) confirm(question string) (bool, error) {
	fmt.Fprint(p.out, question)
	answer, err := p.line()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "j", "ja":
		return true, nil
	}
	return false, nil
}

// line reads one line without its line ending. EOF before any input counts
// as cancellation.
func (p *PlainPrompter) line() (string, error) {
	s, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}
