// Package prompt builds the generation-service prompts for profile extraction
// and archetype variations. Pure string assembly, no IO.
package prompt

import (
	"fmt"
	"strings"

	"voiceloom/internal/core/archetype"
	"voiceloom/internal/core/scoring"
)

// DefaultSampleBudget caps the total characters of post text embedded in a
// profile prompt, keeping the request under the generation input limit
const DefaultSampleBudget = 12000

// Profile is the prompt pair for the one-shot voice profile extraction call
type Profile struct {
	System string
	User   string

	// SampleCount is how many posts survived the character budget
	SampleCount int
}

// BuildProfile assembles the profile-extraction prompt for a creator
// posts must already be sorted best-first; when the combined text exceeds
// budget, whole posts are dropped from the tail, individual posts are never
// truncated. budget <= 0 uses DefaultSampleBudget
func BuildProfile(handle, displayName string, posts []scoring.CuratedPost, budget int) Profile {
	if budget <= 0 {
		budget = DefaultSampleBudget
	}

	// keep the best-first prefix that fits the budget
	kept := posts
	total := 0
	for i, p := range posts {
		total += len(p.Text)
		if total > budget {
			kept = posts[:i]
			break
		}
	}
	// always keep at least the top post so one oversized post cannot empty the sample
	if len(kept) == 0 && len(posts) > 0 {
		kept = posts[:1]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the writing voice of @%s", handle)
	if displayName != "" && displayName != handle {
		fmt.Fprintf(&b, " (%s)", displayName)
	}
	fmt.Fprintf(&b, " from their %d highest-performing posts below.\n\n", len(kept))
	b.WriteString("Extract, as structured prose with clear section headings:\n")
	b.WriteString("1. Tone: emotional register, formality, attitude\n")
	b.WriteString("2. Vocabulary patterns: recurring words, phrases, slang, jargon\n")
	b.WriteString("3. Structural habits: sentence length, line breaks, punctuation, emoji use\n")
	b.WriteString("4. Recurring themes: topics and angles they return to\n\n")
	b.WriteString("Posts, best performing first:\n")
	for i, p := range kept {
		fmt.Fprintf(&b, "\n[%d] %s\n", i+1, p.Text)
	}

	return Profile{
		System:      "You are a writing-style analyst. You describe how an author writes, never what you think of them. Output only the analysis.",
		User:        b.String(),
		SampleCount: len(kept),
	}
}

// Variation is the prompt pair for one archetype generation call
type Variation struct {
	System string
	User   string
}

// BuildVariation assembles the generation prompt for one archetype
// profileSummary conditions the voice, idea is the caller's topic
func BuildVariation(profileSummary, idea string, a archetype.Archetype) Variation {
	var b strings.Builder
	b.WriteString("Voice profile of the creator to imitate:\n\n")
	b.WriteString(profileSummary)
	b.WriteString("\n\nTopic for the new post:\n")
	b.WriteString(idea)
	b.WriteString("\n\n")
	b.WriteString(archetype.Instruction(a))
	fmt.Fprintf(&b, ". Target length: %s.", archetype.LengthHint(a))
	b.WriteString(" Output only the post text, no quotes, no commentary.")

	return Variation{
		System: "You ghostwrite social posts in a specific creator's voice. You follow the voice profile exactly and never break character.",
		User:   b.String(),
	}
}
