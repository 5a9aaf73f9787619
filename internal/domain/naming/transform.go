// Package naming derives identifier variants from a raw resource name.
// Everything here is a pure function: same input, same output, no state.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/camelcase"
	"github.com/modgen/modgen/internal/domain"
)

// DeriveVariants turns the raw leaf segment of a resource path into the
// naming forms the templates consume. The raw input is trimmed first; an
// empty result or an embedded path separator is rejected.
//
// The case rules are lexical only: Lower is the case-fold of the input,
// Capitalized upper-cases the first code point. No pluralization or other
// language-aware transformation happens; the plural display form is a plain
// "s" concatenation.
func DeriveVariants(raw string) (domain.NameVariants, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.NameVariants{}, &domain.InvalidNameError{Raw: raw, Reason: "empty after trimming"}
	}
	if strings.ContainsAny(trimmed, `/\`) {
		return domain.NameVariants{}, &domain.InvalidNameError{Raw: raw, Reason: "contains a path separator"}
	}

	lower := strings.ToLower(trimmed)
	display := displayForm(trimmed)

	return domain.NameVariants{
		Lower:         lower,
		Capitalized:   capitalize(lower),
		Display:       display,
		DisplayPlural: display + "s",
	}, nil
}

// capitalize upper-cases the first code point and keeps the rest untouched.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// displayForm splits camelCase compounds into capitalized words, so that
// "orderItem" reads as "Order Item" inside generated comments and messages.
func displayForm(s string) string {
	words := camelcase.Split(s)
	for i, w := range words {
		words[i] = capitalize(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}
