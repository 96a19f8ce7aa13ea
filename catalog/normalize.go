// Package catalog implements the product query-and-normalization pipeline:
// building store query plans from filter criteria, executing them with
// skip/limit pagination, and reconciling the scrapers' inconsistent document
// shapes into canonical storefront products.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/halfsy-shop/halfsy-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// sizePlaceholder is a scraper artifact that shows up inside size lists and
// must never reach the client.
const sizePlaceholder = "see all sizes"

// Stringify renders any value the store may hand back as a plain string.
// Numeric BSON types keep their natural formatting (no trailing zeros);
// lists join with ", " so array-shaped fields like search_tags read the
// same as their comma-string siblings.
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case []string:
		return strings.Join(t, ", ")
	case primitive.A:
		return joinStringified(t)
	case []any:
		return joinStringified(t)
	default:
		return fmt.Sprint(t)
	}
}

func joinStringified(items []any) string {
	parts := make([]string, len(items))
	for i, e := range items {
		parts[i] = Stringify(e)
	}
	return strings.Join(parts, ", ")
}

// NormalizeSizes turns whatever the scraper stored under available_sizes
// (list, comma-separated string, lone scalar) into a clean string list.
// Empty entries and the "see all sizes" placeholder are dropped; an empty
// result is reported as nil.
func NormalizeSizes(v any) []string {
	return normalizeList(v, true)
}

// NormalizeColors is NormalizeSizes without the placeholder exclusion.
func NormalizeColors(v any) []string {
	return normalizeList(v, false)
}

func normalizeList(v any, dropPlaceholder bool) []string {
	if v == nil {
		return nil
	}

	var parts []string
	switch t := v.(type) {
	case []string:
		parts = append(parts, t...)
	case primitive.A:
		for _, e := range t {
			parts = append(parts, Stringify(e))
		}
	case []any:
		for _, e := range t {
			parts = append(parts, Stringify(e))
		}
	case string:
		parts = strings.Split(t, ",")
	default:
		parts = []string{Stringify(t)}
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if dropPlaceholder && strings.EqualFold(p, sizePlaceholder) {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ParseCurrencyAmount coerces a price value to a float. Numbers pass
// through; strings like "$1,234.56" are stripped to their digits and dot
// before parsing. Malformed input reports ok=false, never an error.
func ParseCurrencyAmount(v any) (amount float64, ok bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(t.String(), 64)
		return f, err == nil
	case string:
		var b strings.Builder
		for _, r := range t {
			if unicode.IsDigit(r) || r == '.' {
				b.WriteRune(r)
			}
		}
		if b.Len() == 0 {
			return 0, false
		}
		f, err := strconv.ParseFloat(b.String(), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// ResolveAlias reads a field that older scraper runs stored under a legacy
// key: the primary key wins when present, then the legacy one, then nil.
func ResolveAlias(doc models.RawProduct, primary, legacy string) any {
	if v, found := doc[primary]; found && v != nil {
		return v
	}
	if v, found := doc[legacy]; found && v != nil {
		return v
	}
	return nil
}

// TitleCase capitalizes the first letter of every whitespace-delimited word
// and of every hyphen-delimited sub-part within a word, so "wool-blend coat"
// becomes "Wool-Blend Coat".
func TitleCase(s string) string {
	if s == "" {
		return s
	}
	words := strings.Fields(s)
	for i, w := range words {
		parts := strings.Split(w, "-")
		for j, p := range parts {
			parts[j] = capitalize(p)
		}
		words[i] = strings.Join(parts, "-")
	}
	return strings.Join(words, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// AllCaps upper-cases text, passing empty strings through.
func AllCaps(s string) string {
	return strings.ToUpper(s)
}
