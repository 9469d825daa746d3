package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedMediaURL(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"https://scontent-ams4-1.cdninstagram.com/v/t51.jpg", true},
		{"https://instagram.fosl4-1.fna.fbcdn.net/v/video.mp4", true},
		{"https://www.instagram.com/p/abc/media/", true},
		{"https://cdninstagram.com.evil.example/v/t51.jpg", false},
		{"https://evilinstagram.com/steal.jpg", false},
		{"https://notinstagram.com/x.jpg", false},
		{"https://evilfbcdn.net/x.mp4", false},
		{"https://instagram.com/p/abc/media/", true},
		{"https://example.com/image.jpg", false},
		{"https://user@evil.example/path", false},
		{"https://scontent.cdninstagram.com:443/v/t51.jpg", true},
		{"not a url", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsAllowedMediaURL(tc.url), "url %q", tc.url)
	}
}
