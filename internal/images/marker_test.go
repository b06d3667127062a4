package images

import "testing"

func TestExtractMarker(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "simple marker",
			text: "[GENERATE_IMAGE: 3 red apples in a row] Look at this!",
			want: "3 red apples in a row",
			ok:   true,
		},
		{
			name: "case insensitive",
			text: "[generate_image: a friendly cat] Hello!",
			want: "a friendly cat",
			ok:   true,
		},
		{
			name: "extra whitespace",
			text: "[GENERATE_IMAGE:    5 stars, cartoon style  ]",
			want: "5 stars, cartoon style",
			ok:   true,
		},
		{
			name: "no marker",
			text: "Just a plain teacher turn. 😊",
			want: "",
			ok:   false,
		},
		{
			name: "first of two markers wins",
			text: "[GENERATE_IMAGE: first] and [GENERATE_IMAGE: second]",
			want: "first",
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractMarker(tt.text)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ExtractMarker(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestStripMarkers(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{
			text: "[GENERATE_IMAGE: apples]\n\nLook at this picture! 🖼️",
			want: "Look at this picture! 🖼️",
		},
		{
			text: "Before [generate_image: cat] after",
			want: "Before  after",
		},
		{
			text: "No markers here.",
			want: "No markers here.",
		},
		{
			text: "[GENERATE_IMAGE: a][GENERATE_IMAGE: b] both gone",
			want: "both gone",
		},
	}

	for _, tt := range tests {
		if got := StripMarkers(tt.text); got != tt.want {
			t.Errorf("StripMarkers(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
