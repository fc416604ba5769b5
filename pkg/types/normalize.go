package types

import (
	"regexp"
	"strings"
)

// Normalization patterns: whitespace runs fold to a single dash, dash
// runs collapse, and the final form must be lowercase alphanumerics and
// dashes only.
var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	dashRun       = regexp.MustCompile(`-{2,}`)
	validTagName  = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// NormalizeTagName canonicalizes a raw tag name: trim, lowercase, fold
// whitespace runs to a dash, collapse dash runs, strip leading and
// trailing dashes. Returns ErrInvalidTagName when the input is empty or
// whitespace-only, when the result is empty, when it contains a
// character outside [a-z0-9-], or when it exceeds MaxTagNameLen.
//
// Deterministic and idempotent: normalizing an already-normalized name
// returns it unchanged. Every tag name is passed through here before
// persistence or comparison.
func NormalizeTagName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidTagName
	}

	name := whitespaceRun.ReplaceAllString(strings.ToLower(trimmed), "-")
	name = dashRun.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")

	if name == "" {
		return "", ErrInvalidTagName
	}
	if !validTagName.MatchString(name) {
		return "", ErrInvalidTagName
	}
	if len(name) > MaxTagNameLen {
		return "", ErrInvalidTagName
	}
	return name, nil
}
