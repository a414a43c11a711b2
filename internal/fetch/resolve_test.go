// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		mirror  string
		want    string
		wantErr bool
	}{
		{
			name: "hebrew language code",
			arg:  "he",
			want: "https://dumps.wikimedia.org/hewiki/latest/hewiki-latest-pages-articles.xml.bz2",
		},
		{
			name: "long language code",
			arg:  "simple",
			want: "https://dumps.wikimedia.org/simplewiki/latest/simplewiki-latest-pages-articles.xml.bz2",
		},
		{
			name:   "custom mirror with trailing slash",
			arg:    "en",
			mirror: "https://mirror.example.org/",
			want:   "https://mirror.example.org/enwiki/latest/enwiki-latest-pages-articles.xml.bz2",
		},
		{
			name: "direct URL passes through",
			arg:  "https://dumps.wikimedia.org/hewiki/20260801/hewiki-20260801-pages-articles.xml.bz2",
			want: "https://dumps.wikimedia.org/hewiki/20260801/hewiki-20260801-pages-articles.xml.bz2",
		},
		{
			name:    "uppercase rejected",
			arg:     "HE",
			wantErr: true,
		},
		{
			name:    "local path rejected",
			arg:     "dumps/hewiki.xml",
			wantErr: true,
		},
		{
			name:    "empty argument",
			arg:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.arg, tt.mirror)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDestName(t *testing.T) {
	got := DestName("https://dumps.wikimedia.org/hewiki/latest/hewiki-latest-pages-articles.xml.bz2?ts=1")
	assert.Equal(t, "hewiki-latest-pages-articles.xml.bz2", got)
}
