// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoPackagesFile is returned when the storage is created without a
	// fixture path.
	ErrNoPackagesFile = errors.New("packages file is not configured")

	// ErrReadingPackagesFile is returned when the fixture cannot be read.
	ErrReadingPackagesFile = errors.New("error reading packages file")

	// ErrDecodingPackagesFile is returned when the fixture is not a JSON array
	// of packages.
	ErrDecodingPackagesFile = errors.New("error decoding packages file")
)
