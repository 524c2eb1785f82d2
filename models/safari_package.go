// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
	"time"
)

// SafariPackage is a single catalogue record as served by the
// /api/safari-packages endpoint. Values are an immutable snapshot of the
// server state at fetch time.
type SafariPackage struct {
	// ID is the unique identifier of the package on the server.
	ID int64 `json:"id"`

	// Name is the display name of the package.
	Name string `json:"name"`

	// Description is free text shown under the name.
	Description string `json:"description"`

	// GroupSizeMin is the smallest group the package accepts.
	GroupSizeMin int `json:"group_size_min"`

	// GroupSizeMax is the largest group the package accepts.
	// The server is expected to keep GroupSizeMin <= GroupSizeMax, the client
	// does not enforce it.
	GroupSizeMax int `json:"group_size_max"`

	// Picture is a relative or absolute reference to the package image.
	// nil means the package has no image.
	Picture *string `json:"picture"`

	// CreatedAt is the timestamp when the package was created on the server.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the timestamp of the last server-side modification.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// GroupSizeLabel returns the group size in display form: "N people" when the
// bounds are equal and "min-max people" otherwise.
func (p SafariPackage) GroupSizeLabel() string {
	if p.GroupSizeMin == p.GroupSizeMax {
		return strconv.Itoa(p.GroupSizeMin) + " people"
	}
	return strconv.Itoa(p.GroupSizeMin) + "-" + strconv.Itoa(p.GroupSizeMax) + " people"
}

// HasPicture reports whether the package carries a non-empty picture reference.
func (p SafariPackage) HasPicture() bool {
	return p.Picture != nil && *p.Picture != ""
}

// PictureURL resolves the package picture against baseURL.
// See [ResolvePictureURL].
func (p SafariPackage) PictureURL(baseURL string) string {
	if !p.HasPicture() {
		return ""
	}
	return ResolvePictureURL(baseURL, *p.Picture)
}

// ResolvePictureURL turns a picture reference into an absolute URL.
//
// An empty picture resolves to an empty string ("no picture"). A picture that
// already starts with "http" is returned unchanged, anything else is treated as
// a path on the API host and prefixed with baseURL.
func ResolvePictureURL(baseURL, picture string) string {
	if picture == "" {
		return ""
	}
	if strings.HasPrefix(picture, "http") {
		return picture
	}
	return baseURL + picture
}
