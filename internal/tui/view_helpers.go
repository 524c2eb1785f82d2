// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"
)

const uiDivider = "──────────────────────────────────────────────────────"

const dateLayout = "Jan 2, 2006"

func fitText(v string, max int) string {
	v = strings.Join(strings.Fields(v), " ")
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Local().Format(dateLayout)
}

// visibleRange returns the [from, to) window of cards around selected that
// fits into perPage cards.
func visibleRange(selected, total, perPage int) (int, int) {
	if perPage <= 0 || total <= perPage {
		return 0, total
	}
	from := selected - perPage/2
	if from < 0 {
		from = 0
	}
	if from+perPage > total {
		from = total - perPage
	}
	return from, from + perPage
}
