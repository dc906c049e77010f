package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "versioned delivery URL",
			url:  "https://res.cloudinary.com/demo/image/upload/v1712345678/venues/venues_abc123.jpg",
			want: "venues/venues_abc123",
		},
		{
			name: "no version segment",
			url:  "https://res.cloudinary.com/demo/image/upload/receipts/receipts_xyz.png",
			want: "receipts/receipts_xyz",
		},
		{
			name: "folder starting with v is not a version",
			url:  "https://res.cloudinary.com/demo/image/upload/venues/venues_abc.jpg",
			want: "venues/venues_abc",
		},
		{
			name: "no extension",
			url:  "https://res.cloudinary.com/demo/image/upload/v1/reviews/reviews_1",
			want: "reviews/reviews_1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractPublicIDFromURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPublicIDFromURLNoUploadSegment(t *testing.T) {
	_, err := extractPublicIDFromURL("https://example.com/images/photo.jpg")
	assert.Error(t, err)
}
