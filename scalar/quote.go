package scalar

import "regexp"

// keywordsNeedingQuotes are plain scalars that would be misread as a YAML
// 1.1 bool/null keyword if left unquoted, across the case variants the
// resolver recognizes (grounded on internal/resolve's resolveMapList:
// true/True/TRUE, false/False/FALSE, yes/Yes/YES, no/No/NO, on/On/ON,
// off/Off/OFF, null/Null/NULL, and the bare '~').
var keywordsNeedingQuotes = func() map[string]bool {
	words := [][]string{
		{"true", "True", "TRUE"},
		{"false", "False", "FALSE"},
		{"yes", "Yes", "YES"},
		{"no", "No", "NO"},
		{"on", "On", "ON"},
		{"off", "Off", "OFF"},
		{"null", "Null", "NULL"},
	}
	m := map[string]bool{"~": true}
	for _, variants := range words {
		for _, v := range variants {
			m[v] = true
		}
	}
	return m
}()

var (
	intLiteralRE   = regexp.MustCompile(`^[-+]?(0|[1-9][0-9_]*|0x[0-9a-fA-F_]+|0o[0-7_]+|0b[01_]+)$`)
	floatLiteralRE = regexp.MustCompile(`^[-+]?(\.[0-9]+|[0-9][0-9_]*(\.[0-9_]*)?)([eE][-+]?[0-9]+)?$`)
	floatSpecialRE = regexp.MustCompile(`^[-+]?\.(inf|Inf|INF)$|^\.(nan|NaN|NAN)$`)
)

// NeedQuotes reports whether s must be rendered as a double-quoted
// scalar to round-trip as a string, per spec section 4.2.
func NeedQuotes(s string) bool {
	if s == "" {
		return true
	}
	if isSpace(rune(s[0])) || isSpace(rune(s[len(s)-1])) {
		return true
	}
	if hasControlOrUnsafe(s) {
		return true
	}
	if containsColonSpace(s) || contains(s, " #") {
		return true
	}
	if startsWithIndicator(s[0]) {
		return true
	}
	if keywordsNeedingQuotes[s] {
		return true
	}
	if intLiteralRE.MatchString(s) || floatLiteralRE.MatchString(s) || floatSpecialRE.MatchString(s) {
		return true
	}
	return false
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }

func startsWithIndicator(b byte) bool {
	switch b {
	case '&', '*', '?', '|', '-', '<', '>', '=', '!', '%', '@', '`', '#', ',', '[', ']', '{', '}':
		return true
	default:
		return false
	}
}

func containsColonSpace(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == ':' && isSpace(rune(s[i+1])) {
			return true
		}
	}
	return false
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func hasControlOrUnsafe(s string) bool {
	for _, r := range s {
		if r < 0x20 && r != '\n' {
			return true
		}
		if r == 0x7F {
			return true
		}
		if !isSafePrintable(r) {
			return true
		}
	}
	return false
}
