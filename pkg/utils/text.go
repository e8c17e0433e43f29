package utils

import "strings"

const DescriptionPreviewLength = 150

// TruncateDescription cuts text down to max characters and appends "..."
// only when something was actually cut off.
func TruncateDescription(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

// ResolveImage picks the stored image source for a record: a local media
// path wins over an external URL. Local paths are rebased onto the request
// origin so clients always receive an absolute URL. Returns nil when the
// record has no image at all.
func ResolveImage(imagePath, imageURL, origin string) *string {
	if imagePath != "" {
		resolved := strings.TrimSuffix(origin, "/") + "/media/" + strings.TrimPrefix(imagePath, "/")
		return &resolved
	}
	if imageURL != "" {
		return &imageURL
	}
	return nil
}
