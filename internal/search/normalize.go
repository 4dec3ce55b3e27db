package search

import (
	"regexp"
	"strings"
)

// Vendor spec strings mix full-width characters, inconsistent spacing and
// ad-hoc notation ("RTX4070Ti", "ＲＴＸ　４０７０"). Filter options are
// canonical, so both sides are normalized before matching.

var (
	// \s is ASCII-only in RE2; U+3000 shows up in vendor strings.
	spaceRe = regexp.MustCompile(`[\s　]+`)

	rtxTiRe    = regexp.MustCompile(`RTX\s*(\d+)Ti\b`)
	rxTiRe     = regexp.MustCompile(`RX\s*(\d+)Ti\b`)
	superRe    = regexp.MustCompile(`(?i)\bsuper\b`)
	rtxSuperRe = regexp.MustCompile(`RTX\s*(\d+)\s*SUPER`)
	vramRe     = regexp.MustCompile(`(\w+)\s+(\d+GB)`)
	laptopRe   = regexp.MustCompile(`\s+Laptop\s+(\d+GB)`)
	arcRe      = regexp.MustCompile(`\bArc\s+([AB]\d+)`)

	intelPrefixRe = regexp.MustCompile(`(?i)\bIntel\s+`)
	processorRe   = regexp.MustCompile(`(?i)\bProcessor\s*$`)
	coreUltraRe   = regexp.MustCompile(`Core\s+Ultra\s+(\d+)\s+(\d+\w*)`)
	coreIRe       = regexp.MustCompile(`Core\s+i(\d+)-(\d+\w*)`)
	amdPrefixRe   = regexp.MustCompile(`(?i)\bAMD\s+`)
	ryzenRe       = regexp.MustCompile(`Ryzen\s+(\d+)\s+(\d+\w*)`)

	radeonIGPRe = regexp.MustCompile(`^(\d+M)$`)
)

// Normalize canonicalizes a spec string for matching. It is idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	normalized := strings.TrimSpace(text)
	normalized = foldWidth(normalized)
	normalized = spaceRe.ReplaceAllString(normalized, " ")
	normalized = normalizeGPU(normalized)
	normalized = normalizeCPU(normalized)
	normalized = normalizeIntegratedGPU(normalized)

	return strings.TrimSpace(normalized)
}

// foldWidth maps full-width Latin letters and digits to their half-width
// ASCII counterparts. Other full-width characters (kana, punctuation) are
// left alone; filter options never contain them.
func foldWidth(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'Ａ' && r <= 'Ｚ', r >= 'ａ' && r <= 'ｚ', r >= '０' && r <= '９':
			return r - 0xFEE0
		}
		return r
	}, s)
}

func normalizeGPU(text string) string {
	normalized := text

	// "RTX4070Ti" and friends get a space before the suffix.
	normalized = rtxTiRe.ReplaceAllString(normalized, "RTX ${1} Ti")
	normalized = rxTiRe.ReplaceAllString(normalized, "RX ${1} Ti")

	normalized = superRe.ReplaceAllString(normalized, "SUPER")
	normalized = rtxSuperRe.ReplaceAllString(normalized, "RTX ${1} SUPER")

	normalized = wrapVRAM(normalized)
	normalized = laptopRe.ReplaceAllString(normalized, " Laptop (${1})")

	// The Intel prefix added here is stripped again by the CPU pass, so
	// "Arc A770" and "Intel Arc A770" converge on the same form.
	normalized = arcRe.ReplaceAllString(normalized, "Intel Arc ${1}")

	return normalized
}

// wrapVRAM parenthesizes a trailing capacity ("RTX 4070 12GB" ->
// "RTX 4070 (12GB)"). A capacity already followed by ')' is left alone; RE2
// has no lookahead, so the following byte is checked by hand.
func wrapVRAM(s string) string {
	matches := vramRe.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		if m[1] < len(s) && s[m[1]] == ')' {
			continue
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(s[m[2]:m[3]])
		b.WriteString(" (")
		b.WriteString(s[m[4]:m[5]])
		b.WriteByte(')')
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

func normalizeCPU(text string) string {
	normalized := text

	normalized = intelPrefixRe.ReplaceAllString(normalized, "")
	normalized = processorRe.ReplaceAllString(normalized, "")

	normalized = coreUltraRe.ReplaceAllString(normalized, "Core Ultra ${1} ${2}")
	normalized = coreIRe.ReplaceAllString(normalized, "Core i${1}-${2}")

	normalized = amdPrefixRe.ReplaceAllString(normalized, "")
	normalized = ryzenRe.ReplaceAllString(normalized, "Ryzen ${1} ${2}")

	return normalized
}

func normalizeIntegratedGPU(text string) string {
	switch text {
	case "UHD":
		return "UHD Graphics"
	case "Iris Xe":
		return "Iris Xe Graphics"
	}
	return radeonIGPRe.ReplaceAllString(text, "Radeon ${1}")
}

// Matches reports whether a filter option and a product spec string refer to
// the same thing. Containment is checked both ways because sometimes the
// option is a prefix of the stored string and sometimes the reverse.
func Matches(filterValue, productValue string) bool {
	if filterValue == "" || productValue == "" {
		return false
	}

	nf := Normalize(filterValue)
	np := Normalize(productValue)

	return strings.Contains(np, nf) || strings.Contains(nf, np)
}

// MatchesAny reports whether any of the filter values matches the product
// value.
func MatchesAny(filterValues []string, productValue string) bool {
	for _, fv := range filterValues {
		if Matches(fv, productValue) {
			return true
		}
	}
	return false
}

// normalizeKeyword prepares free-text search input and its targets. Unlike
// Normalize it lowercases, so keyword search is case-insensitive.
func normalizeKeyword(text string) string {
	normalized := strings.ToLower(text)
	normalized = foldWidth(normalized)
	normalized = spaceRe.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}
