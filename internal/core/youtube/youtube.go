// Package youtube extracts video ids from crowd-sourced reference text
// Recognized shapes
// 1 short link youtu.be/<id>
// 2 long link with a v=<id> query parameter
// The id is exactly 11 characters of letters digits hyphen underscore
// The first match wins; everything else is rejected
package youtube

import (
	"errors"
	"regexp"
)

// ErrInvalidReference is returned when no video id can be found
// the message is part of the wire contract for rejected submissions
var ErrInvalidReference = errors.New("Invalid YouTube URL or video id")

var idPattern = regexp.MustCompile(`(?:youtu\.be/|[?&]v=)([A-Za-z0-9_-]{11})`)

// ExtractVideoID scans raw for the first recognizable video id
func ExtractVideoID(raw string) (string, error) {
	m := idPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", ErrInvalidReference
	}
	return m[1], nil
}

// WatchURL returns the canonical watch page for a video id
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
