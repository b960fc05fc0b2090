// Package profile names the save slot a player's progress lives under.
// Local terminal play uses the fixed default; SSH sessions derive a
// profile from the connecting username so every player keeps their own
// venture.
package profile

import "strings"

// Default is the profile used for local terminal play.
const Default = "local"

// maxLen bounds sanitized profile names. SSH clients can send anything
// as a username.
const maxLen = 32

// Sanitize converts an arbitrary username into a safe profile name.
// Letters and digits are kept lowercased, '-' and '_' pass through,
// everything else is dropped. Returns Default when nothing usable
// remains.
func Sanitize(username string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(username)) {
		if b.Len() >= maxLen {
			break
		}
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return Default
	}
	return b.String()
}
