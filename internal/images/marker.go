package images

import (
	"regexp"
	"strings"
)

// markerRe matches the [GENERATE_IMAGE: description] marker the LLM
// embeds in a turn when it wants a picture shown.
var markerRe = regexp.MustCompile(`(?i)\[GENERATE_IMAGE:\s*([^\]]+)\]`)

// ExtractMarker returns the description from the first image marker in
// text, or "" and false when there is none.
func ExtractMarker(text string) (string, bool) {
	m := markerRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// StripMarkers removes every image marker from text. The result is what
// gets spoken aloud.
func StripMarkers(text string) string {
	return strings.TrimSpace(markerRe.ReplaceAllString(text, ""))
}
