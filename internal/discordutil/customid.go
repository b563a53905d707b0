package discordutil

import (
	"strings"
)

// Share action custom ID format: "share_gif:<path>|<tags>".
// The payload is round-tripped by Discord inside the clicked button, so it
// is the only state that crosses a request boundary.
const (
	ShareActionPrefix = "share_gif:"
	shareIDDelimiter  = "|"
)

// EncodeShareID builds the custom ID carried by a picker button.
// The result is capped at the Discord custom_id limit; a path and tag
// combination long enough to hit the cap is silently truncated, which can
// lose the tail of the tag string on decode. Paths themselves stay well
// under the cap in practice.
func EncodeShareID(path, tags string) string {
	id := ShareActionPrefix + path + shareIDDelimiter + tags
	return TruncateRunes(id, MaxCustomIDLength)
}

// DecodeShareID recovers the item path and tag string from a share custom
// ID. Returns ok=false when the ID does not carry the share prefix.
// A missing delimiter decodes as an empty tag string.
func DecodeShareID(customID string) (path, tags string, ok bool) {
	if !strings.HasPrefix(customID, ShareActionPrefix) {
		return "", "", false
	}
	payload := strings.TrimPrefix(customID, ShareActionPrefix)
	parts := strings.SplitN(payload, shareIDDelimiter, 2)
	path = parts[0]
	if len(parts) == 2 {
		tags = parts[1]
	}
	return path, tags, true
}

// TruncateRunes shortens s to at most max runes, preserving rune
// boundaries.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
