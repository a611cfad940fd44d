// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are the human-readable identifiers of categories, companies, products and
// gallery categories (e.g., "tikinti-materiallari"). They are always derived from
// the Azerbaijani title. This package handles transliteration, accent removal and
// character sanitization. It is not aware of collisions; uniqueness is enforced
// by the database.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
	// pattern is the shape of every non-empty slug produced by [From].
	pattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// transliteration covers lowercase letters that NFD cannot reduce to ASCII.
// Letters with a decomposable accent (ş, ç, ö, ü, ğ, é) are left to the NFD step.
var transliteration = map[rune]string{
	// Azerbaijani and Turkish
	'ə': "e", 'ı': "i",

	// Western European
	'ß': "ss", 'æ': "ae", 'ø': "o", 'œ': "oe", 'ł': "l", 'đ': "d", 'þ': "th",

	// Russian Cyrillic
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Converts to lowercase.
// 2. Transliterates letters without an ASCII decomposition (ə, ı, Cyrillic).
// 3. Normalizes to NFD and removes combining marks (ş → s).
// 4. Replaces non-alphanumeric characters with hyphens.
// 5. Collapses multiple hyphens and trims leading/trailing hyphens.
//
// The result is deterministic and From(From(s)) == From(s). Blank input yields "".
func From(s string) string {
	// 1. Lowercase
	result := strings.ToLower(s)

	// 2. Transliterate
	result = transliterate(result)

	// 3. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ = transform.String(t, result)

	// 4. Replace whitespace and special chars with hyphens
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	// 5. Clean up hyphenation
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// Regenerate decides the slug of an entity whose primary title may have changed.
//
// A new slug is derived only when next is non-empty and differs from previous;
// otherwise current is kept. The boolean reports whether the slug was regenerated.
func Regenerate(previous, next, current string) (string, bool) {
	if next == "" || next == previous {
		return current, false
	}
	return From(next), true
}

// Valid reports whether s has the shape of a generated slug.
func Valid(s string) bool {
	return pattern.MatchString(s)
}

func transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if repl, ok := transliteration[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
