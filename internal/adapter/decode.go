// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-safari-sync/models"
	"github.com/tidwall/gjson"
)

var (
	errInvalidJSON = errors.New("response body is not valid JSON")
	errNotAnArray  = errors.New("response body is not a JSON array")
)

// timestampLayouts are tried in order for created_at / updated_at.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// decodePackages parses a JSON array of package records.
//
// Only the envelope is validated: the body must be valid JSON and an array.
// Individual records are mapped field by field, so a record with missing or
// mistyped fields is passed through with zero values instead of failing the
// whole response.
func decodePackages(body []byte) ([]models.SafariPackage, error) {
	if !gjson.ValidBytes(body) {
		return nil, errInvalidJSON
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: got %s", errNotAnArray, jsonKind(root))
	}

	records := root.Array()
	packages := make([]models.SafariPackage, 0, len(records))
	for _, record := range records {
		packages = append(packages, packageFromJSON(record))
	}

	return packages, nil
}

func packageFromJSON(record gjson.Result) models.SafariPackage {
	return models.SafariPackage{
		ID:           record.Get("id").Int(),
		Name:         record.Get("name").String(),
		Description:  record.Get("description").String(),
		GroupSizeMin: int(record.Get("group_size_min").Int()),
		GroupSizeMax: int(record.Get("group_size_max").Int()),
		Picture:      optionalString(record.Get("picture")),
		CreatedAt:    optionalTime(record.Get("created_at")),
		UpdatedAt:    optionalTime(record.Get("updated_at")),
	}
}

func optionalString(v gjson.Result) *string {
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	s := v.String()
	if s == "" {
		return nil
	}
	return &s
}

func optionalTime(v gjson.Result) *time.Time {
	if v.Type != gjson.String || v.Str == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v.Str); err == nil {
			return &t
		}
	}
	return nil
}

func jsonKind(v gjson.Result) string {
	switch {
	case v.IsObject():
		return "object"
	case v.Type == gjson.String:
		return "string"
	case v.Type == gjson.Number:
		return "number"
	case v.Type == gjson.True, v.Type == gjson.False:
		return "boolean"
	default:
		return "null"
	}
}
