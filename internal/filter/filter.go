// Package filter narrows verdict lists by test name and language.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/classify"
)

// Pattern is a compiled name filter. A pattern wrapped in slashes is a
// regular expression; anything else is a case-insensitive substring.
type Pattern struct {
	raw   string
	regex *regexp.Regexp
	lower string
}

// String returns the pattern as it was written.
func (p Pattern) String() string {
	return p.raw
}

// Compile transforms raw pattern strings into Pattern values. Blank entries
// are dropped.
func Compile(patterns []string) ([]Pattern, error) {
	result := make([]Pattern, 0, len(patterns))
	for _, raw := range patterns {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if len(raw) >= 2 && strings.HasPrefix(raw, "/") && strings.HasSuffix(raw, "/") {
			re, err := regexp.Compile(raw[1 : len(raw)-1])
			if err != nil {
				return nil, fmt.Errorf("compile regexp %q: %w", raw, err)
			}
			result = append(result, Pattern{raw: raw, regex: re})
			continue
		}
		result = append(result, Pattern{raw: raw, lower: strings.ToLower(raw)})
	}
	return result, nil
}

// Match reports whether the pattern matches s.
func (p Pattern) Match(s string) bool {
	if s == "" {
		return false
	}
	if p.regex != nil {
		return p.regex.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), p.lower)
}

// Criteria select which verdicts are kept. Empty fields select everything.
type Criteria struct {
	Include   []Pattern
	Exclude   []Pattern
	Languages []classify.Language
}

// Empty reports whether the criteria keep every verdict.
func (c Criteria) Empty() bool {
	return len(c.Include) == 0 && len(c.Exclude) == 0 && len(c.Languages) == 0
}

// NewCriteria compiles include and exclude patterns and parses language names.
func NewCriteria(include, exclude, languages []string) (Criteria, error) {
	var c Criteria
	var err error
	if c.Include, err = Compile(include); err != nil {
		return Criteria{}, fmt.Errorf("include: %w", err)
	}
	if c.Exclude, err = Compile(exclude); err != nil {
		return Criteria{}, fmt.Errorf("exclude: %w", err)
	}
	for _, name := range languages {
		if strings.TrimSpace(name) == "" {
			continue
		}
		lang, err := classify.ParseLanguage(name)
		if err != nil {
			return Criteria{}, err
		}
		c.Languages = append(c.Languages, lang)
	}
	return c, nil
}

// Verdicts returns the verdicts accepted by c, keeping their order. The input
// slice is not modified.
func Verdicts(verdicts []classify.Verdict, c Criteria) []classify.Verdict {
	if c.Empty() {
		return verdicts
	}
	result := make([]classify.Verdict, 0, len(verdicts))
	for _, v := range verdicts {
		if len(c.Languages) > 0 && !hasLanguage(c.Languages, v.Language) {
			continue
		}
		if len(c.Include) > 0 && !matchesAny(c.Include, v.Name) {
			continue
		}
		if matchesAny(c.Exclude, v.Name) {
			continue
		}
		result = append(result, v)
	}
	return result
}

func matchesAny(patterns []Pattern, name string) bool {
	for _, p := range patterns {
		if p.Match(name) {
			return true
		}
	}
	return false
}

func hasLanguage(langs []classify.Language, lang classify.Language) bool {
	for _, l := range langs {
		if l == lang {
			return true
		}
	}
	return false
}
