// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID         = errors.New("invalid package id")
	ErrEmptyName         = errors.New("package name is required")
	ErrNegativeGroupSize = errors.New("group size cannot be negative")
	ErrGroupSizeRange    = errors.New("minimum group size exceeds maximum")
	ErrDuplicateID       = errors.New("duplicate package id")
)
