package compiler

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// TitlePolicy controls how the form title reaches the output schema.
type TitlePolicy int

const (
	// TitleVerbatim copies the title unchanged.
	TitleVerbatim TitlePolicy = iota
	// TitleSanitize strips every HTML element from the title, keeping text.
	TitleSanitize
)

var (
	titlePolicyOnce sync.Once
	titleSanitizer  *bluemonday.Policy
)

// applyTitlePolicy returns the declared title unchanged unless it is a
// non-empty string and the policy asks for sanitising.
func applyTitlePolicy(policy TitlePolicy, title any) any {
	text, ok := title.(string)
	if policy != TitleSanitize || !ok || text == "" {
		return title
	}
	cleaned := titleStripper().Sanitize(text)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func titleStripper() *bluemonday.Policy {
	titlePolicyOnce.Do(func() {
		titleSanitizer = bluemonday.StrictPolicy()
	})
	return titleSanitizer
}
