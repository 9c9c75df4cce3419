package assistant

import (
	"fmt"
	"math/rand"
	"strings"
)

const maxFoodsPerReply = 10

// recommendFoods renders up to 10 randomly chosen foods the session's user
// has not disliked, or the exhaustion notice when every food is disliked.
// Drawn foods are appended to the session's shown-food log. The log is an
// audit trail only: foods already shown can be drawn again on later calls.
func recommendFoods(session *Session) string {
	var available []string
	for _, f := range allFoods {
		if !session.IsDisliked(f) {
			available = append(available, f)
		}
	}

	if len(available) == 0 {
		return "You've marked all foods as disliked! 😅 Tell me 'remove <food>' to add it back."
	}

	count := maxFoodsPerReply
	if len(available) < count {
		count = len(available)
	}
	picked := sampleFoods(available, count)
	session.ShownFoods = append(session.ShownFoods, picked...)

	var list strings.Builder
	for _, f := range picked {
		if d, ok := foodDetails[f]; ok {
			fmt.Fprintf(&list, "%s • %s • %s (%s)\n", d.Label, d.TimeSlot, d.Benefit, d.Component)
		} else {
			fmt.Fprintf(&list, "🥗 %s • Rich in nutrients\n", f)
		}
	}

	return fmt.Sprintf("✨ **Eye-Healthy Foods for You** ✨\n\n%s\n📌 Tip: Rotate foods weekly for variety!\nType 'more foods' to see more! 🥕", list.String())
}

// sampleFoods draws a uniform random sample of n items without replacement.
func sampleFoods(pool []string, n int) []string {
	idx := rand.Perm(len(pool))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}
