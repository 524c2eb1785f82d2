// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "short body untouched",
			body: "catalogue is being rebuilt",
			want: "catalogue is being rebuilt",
		},
		{
			name: "exactly at the limit",
			body: strings.Repeat("a", maxErrorBodyLen),
			want: strings.Repeat("a", maxErrorBodyLen),
		},
		{
			name: "ascii over the limit",
			body: strings.Repeat("a", maxErrorBodyLen+50),
			want: strings.Repeat("a", maxErrorBodyLen) + "...",
		},
		{
			name: "two-byte rune across the limit",
			body: strings.Repeat("a", maxErrorBodyLen-1) + "é",
			want: strings.Repeat("a", maxErrorBodyLen-1) + "...",
		},
		{
			name: "cyrillic body",
			body: strings.Repeat("ж", maxErrorBodyLen),
			want: strings.Repeat("ж", maxErrorBodyLen/2) + "...",
		},
		{
			name: "four-byte rune across the limit",
			body: strings.Repeat("a", maxErrorBodyLen-2) + "🦁",
			want: strings.Repeat("a", maxErrorBodyLen-2) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateBody(tt.body)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestFetchPackages_LongMultibyteBodyStaysValidUTF8(t *testing.T) {
	body := strings.Repeat("a", maxErrorBodyLen-1) + "é" + strings.Repeat("b", 20)
	srv := packagesServer(t, http.StatusBadGateway, body)

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchPackages(context.Background())
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrHTTPStatus)
	assert.True(t, utf8.ValidString(err.Error()), "message must be valid UTF-8: %q", err.Error())
	assert.True(t, strings.HasSuffix(err.Error(), "..."))
}
