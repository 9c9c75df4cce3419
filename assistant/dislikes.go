package assistant

import (
	"regexp"
	"strings"
)

// dislikeCues are the literal substrings that flag a message as being about
// food dislikes. This check runs before everything except the empty-input
// guard and short-circuits all other intents.
var dislikeCues = []string{"don't like", "dislike", "hate", "remove", "don't want"}

// dislikePattern captures what follows a negation cue up to a period, the
// string end, or the literal word "and". Each cue occurrence contributes its
// own match.
var dislikePattern = regexp.MustCompile(`(?:don't like|dislike|hate|remove|don't want)\s+(.+?)(?:\.|$|and)`)

// IsDislikeMessage reports whether the text contains a dislike cue.
func IsDislikeMessage(text string) bool {
	lower := strings.ToLower(text)
	for _, cue := range dislikeCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}

// ExtractDislikedItems pulls the food terms out of a dislike message. A match
// like "milk and dryfruit" is split on the literal "and" with each fragment
// trimmed. May return nothing for messages that only hint at a dislike, in
// which case the caller asks for clarification instead of mutating state.
func ExtractDislikedItems(text string) []string {
	lower := strings.ToLower(text)
	var items []string
	for _, m := range dislikePattern.FindAllStringSubmatch(lower, -1) {
		for _, part := range strings.Split(m[1], "and") {
			part = strings.TrimSpace(part)
			if part != "" {
				items = append(items, part)
			}
		}
	}
	return items
}
