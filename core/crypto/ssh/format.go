// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.

// package ssh provides convenience wrappers around the golang.org/x/crypto/ssh
// package for inspecting and writing SSH identity files.
package ssh // import "github.com/toeirei/connprompt/core/crypto/ssh"

import (
	"crypto"
	"encoding/pem"
	"errors"
	"fmt"

	"golang.org/x/crypto/ssh"
)

// IsEncrypted reports whether the PEM encoded private key needs a
// passphrase. Data that is not a private key at all is an error.
func IsEncrypted(pemBytes []byte) (bool, error) {
	_, err := ssh.ParseRawPrivateKey(pemBytes)
	var missing *ssh.PassphraseMissingError
	switch {
	case errors.As(err, &missing):
		return true, nil
	case err != nil:
		return false, fmt.Errorf("not a private key: %w", err)
	}
	return false, nil
}

// MarshalPrivateKey converts a private key to the OpenSSH PEM format,
// encrypted with passphrase unless it is empty.
func MarshalPrivateKey(key crypto.PrivateKey, comment, passphrase string) (*pem.Block, error) {
	var block *pem.Block
	var err error
	if passphrase == "" {
		block, err = ssh.MarshalPrivateKey(key, comment)
	} else {
		block, err = ssh.MarshalPrivateKeyWithPassphrase(key, comment, []byte(passphrase))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	return block, nil
}
