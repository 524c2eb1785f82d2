// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-safari-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the package identifier.
	FieldID = "id"

	// FieldName targets the display name of the package.
	FieldName = "name"

	// FieldGroupSize targets the group size bounds.
	FieldGroupSize = "group_size"
)

// SafariPackageValidator implements the Validator interface for catalogue
// records. It accepts models.SafariPackage, *models.SafariPackage and
// []models.SafariPackage; a slice is additionally checked for duplicate ids.
type SafariPackageValidator struct {
}

// NewSafariPackageValidator constructs a new SafariPackageValidator
// and returns it as the Validator interface.
func NewSafariPackageValidator() Validator {
	return &SafariPackageValidator{}
}

// Validate dispatches validation by the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj is not a safari package or a slice of
// them. When fields is empty, id, name and group size are validated.
func (v *SafariPackageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SafariPackage:
		return v.validatePackage(ctx, value, fields...)
	case *models.SafariPackage:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePackage(ctx, *value, fields...)
	case []models.SafariPackage:
		return v.validatePackages(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SafariPackageValidator) validatePackage(_ context.Context, p models.SafariPackage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldGroupSize}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if p.ID <= 0 {
				return ErrInvalidID
			}
		case FieldName:
			if strings.TrimSpace(p.Name) == "" {
				return ErrEmptyName
			}
		case FieldGroupSize:
			if p.GroupSizeMin < 0 || p.GroupSizeMax < 0 {
				return ErrNegativeGroupSize
			}
			if p.GroupSizeMin > p.GroupSizeMax {
				return ErrGroupSizeRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePackages validates every record and reports the first failure with
// its position in the list.
func (v *SafariPackageValidator) validatePackages(ctx context.Context, packages []models.SafariPackage, fields ...string) error {
	seen := make(map[int64]struct{}, len(packages))
	for i, p := range packages {
		if err := v.validatePackage(ctx, p, fields...); err != nil {
			return fmt.Errorf("package at index %d: %w", i, err)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("package at index %d: %w: %d", i, ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}
