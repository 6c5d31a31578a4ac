package formatting

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rxMarkup    = regexp.MustCompile(`<[^>]*>`)
	rxSizeToken = regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*(?:KB|MB|GB|TB)\b`)
	rxBtih      = regexp.MustCompile(`(?i)urn:btih:([a-f0-9]{40})`)
	rxInfoHash  = regexp.MustCompile(`(?i)^[a-f0-9]{40}$`)
)

// StripMarkup removes embedded tags from a tag body and trims the result.
func StripMarkup(raw string) string {
	return strings.TrimSpace(rxMarkup.ReplaceAllString(raw, ""))
}

func NormalizeSpace(raw string) string {
	txt := strings.ReplaceAll(raw, "\n", "")
	txt = strings.ReplaceAll(txt, "\t", " ")
	txt = strings.ReplaceAll(txt, "  ", " ")
	return txt
}

// StripToNumber keeps only the characters that can form a decimal number.
func StripToNumber(str string) string {
	chars := "0123456789."
	var validChars []rune
	for _, c := range str {
		if strings.ContainsRune(chars, c) {
			validChars = append(validChars, c)
		}
	}
	return string(validChars)
}

// FindSizeToken scans description parts for the first size-looking token,
// e.g. "467.5GB". The tracker's pipe layout is informal, so positions are
// never trusted.
func FindSizeToken(parts []string) (string, bool) {
	for _, part := range parts {
		if token := rxSizeToken.FindString(part); token != "" {
			return strings.TrimSpace(token), true
		}
	}
	return "", false
}

// SizeStrToBytes converts a human readable size like "1.5GB" to a byte
// count, using binary multiples and rounding to the nearest integer.
// Unparseable numeric text counts as zero, unitless values pass through
// unscaled.
func SizeStrToBytes(str string) uint64 {
	str = strings.ToLower(NormalizeSpace(str))
	multiplier := float64(1)
	switch {
	case strings.Contains(str, "tb"):
		multiplier = 1 << 40
	case strings.Contains(str, "gb"):
		multiplier = 1 << 30
	case strings.Contains(str, "mb"):
		multiplier = 1 << 20
	case strings.Contains(str, "kb"):
		multiplier = 1 << 10
	}
	flt, err := strconv.ParseFloat(StripToNumber(str), 64)
	if err != nil {
		return 0
	}
	return uint64(math.Round(flt * multiplier))
}

// MagnetInfoHash pulls the 40 character urn:btih value out of a magnet URI,
// lower-cased. Empty when the URI carries no usable hash.
func MagnetInfoHash(magnet string) string {
	m := rxBtih.FindStringSubmatch(magnet)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

// IsInfoHash reports whether a string is exactly 40 hex characters.
func IsInfoHash(str string) bool {
	return rxInfoHash.MatchString(str)
}
