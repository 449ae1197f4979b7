package swap

import (
	"regexp"
	"strings"
)

// swapPatterns match chat phrasings that reject a food. The first pattern
// that captures a plausible food name wins.
var swapPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:swap|replace|substitute|alternatives?\s+(?:for|to)|instead\s+of)\s+(?:the\s+)?(.+?)(?:\s*[,.?!]|$)`),
	regexp.MustCompile(`(?i)(?:i\s+)?(?:hate|dislike|can'?t\s+eat|don'?t\s+(?:like|want|have)|allergic\s+to|avoid)\s+(?:the\s+)?(.+?)(?:\s*[,.?!]|$)`),
	regexp.MustCompile(`(?i)(?:no|without|not)\s+(?:the\s+)?(.+?)(?:\s*[,.?!]|$)`),
	regexp.MustCompile(`(?i)give\s+me\s+something\s+(?:other|else|different)\s+(?:than|instead\s+of)\s+(?:the\s+)?(.+?)(?:\s*[,.?!]|$)`),
}

var fillerWords = regexp.MustCompile(`(?i)\b(please|ok|okay|though|btw)\b`)
var trailingPunct = regexp.MustCompile(`[,.?!]+$`)

// stopWords are captures that are not food names.
var stopWords = map[string]struct{}{
	"it": {}, "this": {}, "that": {}, "food": {}, "meal": {}, "thing": {},
	"option": {}, "something": {}, "anything": {}, "everything": {},
	"more": {}, "less": {}, "much": {}, "many": {},
}

// DetectRequest reports whether a user message asks for a food swap,
// returning the rejected food name in lowercase.
//
//	"I hate lentils"        → "lentils"
//	"swap the oat porridge" → "oat porridge"
//	"what's for dinner?"    → ""
func DetectRequest(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	for _, pattern := range swapPatterns {
		m := pattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		candidate := strings.ToLower(strings.TrimSpace(m[1]))
		candidate = strings.TrimSpace(trailingPunct.ReplaceAllString(candidate, ""))
		candidate = strings.TrimSpace(fillerWords.ReplaceAllString(candidate, ""))
		if candidate == "" || len(candidate) <= 1 {
			continue
		}
		if _, stop := stopWords[candidate]; stop {
			continue
		}
		return candidate, true
	}
	return "", false
}
