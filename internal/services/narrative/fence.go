package narrative

import "strings"

const fence = "```"

// UnwrapFence strips a surrounding markdown code fence from a model reply.
// An opening fence may carry a language tag; either side may be missing.
func UnwrapFence(s string) string {
	s = strings.TrimSpace(s)

	if rest, ok := strings.CutPrefix(s, fence); ok {
		// drop the language tag up to the first newline
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[nl+1:]
		} else {
			rest = strings.TrimLeft(rest, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
		}
		s = rest
	}

	if rest, ok := strings.CutSuffix(s, fence); ok {
		rest = strings.TrimSuffix(rest, "\n")
		rest = strings.TrimSuffix(rest, "\r")
		s = rest
	}

	return strings.TrimSpace(s)
}
