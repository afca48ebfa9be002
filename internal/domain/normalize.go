package domain

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName prepares a display name for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case and diacritics are preserved.
func NormalizeName(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

const slugFallback = "recipe"

// letterFolds spells out lowercase letters that have no NFD decomposition.
var letterFolds = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae",
	"œ", "oe",
	"ø", "o",
	"ł", "l",
	"đ", "d",
	"ð", "d",
	"þ", "th",
	"ı", "i",
)

// Slugify derives a URL-safe identifier from a recipe name: lowercase ASCII
// letters and digits separated by single hyphens. Diacritics are folded
// ("Crème Brûlée" becomes "creme-brulee") and letters such as ß or æ are
// spelled out. An empty result falls back to "recipe".
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range letterFolds.Replace(strings.ToLower(folded)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	if b.Len() == 0 {
		return slugFallback
	}
	return b.String()
}

// SlugCandidate returns the n-th candidate for base: base itself for n == 0,
// otherwise base-n.
func SlugCandidate(base string, n int) string {
	if n == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}
