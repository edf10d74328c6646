// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package rand wraps the host's secure random-byte source, the RNG
// collaborator of spec §6. The library itself owns no policy about
// randomness: it only reads from crypto/rand.
package rand

import (
	"crypto/rand"
	"fmt"
)

// Bytes returns length cryptographically secure random bytes.
func Bytes(length int) []byte {
	b := make([]byte, length)

	if _, err := rand.Read(b); err != nil {
		// The host's CSPRNG failing is not a condition callers can recover
		// from meaningfully.
		panic(fmt.Errorf("unexpected error reading random bytes: %w", err))
	}

	return b
}
