package fixture

import "strings"

// Token is one comma-separated segment of a fixture input string. Key is
// empty for positional segments.
type Token struct {
	Key string
	Raw string
}

// Split breaks input on top-level commas only: commas inside brackets,
// braces, parentheses or quotes do not split. A segment is a key=value
// pair when an identifier and '=' appear before any bracket or quote;
// everything else is positional. Unbalanced closers are ignored rather
// than rejected.
func Split(input string) []Token {
	var toks []Token
	src := []rune(input)
	depth := 0
	var quote rune
	start := 0

	flush := func(end int) {
		seg := strings.TrimSpace(string(src[start:end]))
		start = end + 1
		if seg == "" {
			return
		}
		toks = append(toks, toToken(seg))
	}

	for i := 0; i < len(src); i++ {
		ch := src[i]
		switch {
		case quote != 0:
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == '[' || ch == '{' || ch == '(':
			depth++
		case ch == ']' || ch == '}' || ch == ')':
			if depth > 0 {
				depth--
			}
		case ch == ',' && depth == 0:
			flush(i)
		}
	}
	flush(len(src))
	return toks
}

// toToken recognizes key=value segments.
func toToken(seg string) Token {
	for i, ch := range seg {
		switch ch {
		case '[', '{', '(', '\'', '"':
			return Token{Raw: seg}
		case '=':
			key := strings.TrimSpace(seg[:i])
			if isIdent(key) {
				return Token{Key: key, Raw: strings.TrimSpace(seg[i+1:])}
			}
			return Token{Raw: seg}
		}
	}
	return Token{Raw: seg}
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		if isAlpha(ch) || ch == '_' || ch == '.' {
			continue
		}
		if i > 0 && isDigit(ch) {
			continue
		}
		return false
	}
	return true
}
