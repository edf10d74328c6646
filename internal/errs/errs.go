// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package errs provides small helpers for building the sentinel errors used
// across this module's packages.
package errs

import (
	"errors"
	"fmt"
)

const prefixParam = "parameter error"

// Param wraps msg as a parameter error.
func Param(msg string) error {
	return New(prefixParam, msg)
}

// New returns an error prefixed with prefix and embedding msg as an error.
func New(prefix, msg string) error {
	return fmt.Errorf("%s : %w", prefix, errors.New(msg))
}
