package classify

import (
	"fmt"
	"strings"
)

// Language is the source language of a test, derived from its file extension.
type Language string

const (
	LanguageC       Language = "C"
	LanguageCPP     Language = "C++"
	LanguageFortran Language = "Fortran"
	LanguageUnknown Language = "Unknown"
)

var extensionLanguages = map[string]Language{
	"c":   LanguageC,
	"cpp": LanguageCPP,
	"f90": LanguageFortran,
}

// Languages returns the recognized languages in canonical order.
func Languages() []Language {
	return []Language{LanguageC, LanguageCPP, LanguageFortran}
}

// Known reports whether l is one of the recognized languages.
func (l Language) Known() bool {
	return l == LanguageC || l == LanguageCPP || l == LanguageFortran
}

// Priority orders languages C < C++ < Fortran, with unknown last.
func (l Language) Priority() int {
	switch l {
	case LanguageC:
		return 0
	case LanguageCPP:
		return 1
	case LanguageFortran:
		return 2
	default:
		return 3
	}
}

// SplitName splits a test name at its last dot into base name and extension.
// A name without a dot has an empty extension.
func SplitName(name string) (base, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}

// LanguageOf returns the language of a test name. Extensions match
// case-insensitively.
func LanguageOf(name string) Language {
	_, ext := SplitName(name)
	if lang, ok := extensionLanguages[strings.ToLower(ext)]; ok {
		return lang
	}
	return LanguageUnknown
}

// ParseLanguage converts user input such as "cpp", "C++" or "f90" to a Language.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c":
		return LanguageC, nil
	case "c++", "cpp", "cxx":
		return LanguageCPP, nil
	case "fortran", "f90":
		return LanguageFortran, nil
	default:
		return "", fmt.Errorf("unknown language %q (expected c, c++, or fortran)", s)
	}
}
