// plotcheck - a fixture-driven test corpus for gonum/plot charting primitives
// Copyright (C) 2026  The plotcheck authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package fixture interprets loosely structured textual test cases and
// dispatches them to the chart layer.
//
// The pipeline is: Split breaks an input string into positional and
// key=value tokens, Parse decodes each token as a literal of a small
// grammar, Numbers coerces parsed values into non-empty float series,
// and a per-chart descriptor reconciles argument lengths and invokes
// the drawing call. Every stage recovers locally from malformed input;
// the only fatal condition is an unknown chart-type name.
package fixture

import "strings"

// Kind enumerates the literal shapes the fixture grammar can produce.
type Kind int

const (
	None Kind = iota
	Number
	String
	List
	Map
)

// Value is one parsed fixture literal.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	List []Value

	// Map entries, in source order.
	Keys []string
	Vals []Value
}

// Parse interprets token as a literal: numbers, quoted strings,
// bracketed lists, parenthesized tuples, brace maps, and the words
// True, False and None. Anything that cannot be decoded comes back as
// the trimmed raw string; Parse never fails. A decoded string that
// itself starts with '[' or '{' is parsed a second time, to unwrap
// literals that were quoted twice in the fixture table.
func Parse(token string) Value {
	v, ok := parseLiteral(token)
	if !ok {
		return Value{Kind: String, Str: strings.TrimSpace(token)}
	}
	if v.Kind == String {
		inner := strings.TrimSpace(v.Str)
		if strings.HasPrefix(inner, "[") || strings.HasPrefix(inner, "{") {
			if u, ok := parseLiteral(inner); ok {
				return u
			}
		}
	}
	return v
}

// parseLiteral decodes the whole input as a single literal.
func parseLiteral(s string) (Value, bool) {
	p := &scanner{src: []rune(s)}
	p.skipSpace()
	v, ok := p.value()
	if !ok {
		return Value{}, false
	}
	p.skipSpace()
	if !p.eof() {
		return Value{}, false
	}
	return v, true
}

type scanner struct {
	src []rune
	pos int
}

func (p *scanner) peek() rune {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *scanner) advance() rune {
	ch := p.peek()
	if ch != 0 {
		p.pos++
	}
	return ch
}

func (p *scanner) eof() bool {
	return p.pos >= len(p.src)
}

func (p *scanner) skipSpace() {
	for {
		ch := p.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			p.pos++
			continue
		}
		break
	}
}

func (p *scanner) value() (Value, bool) {
	switch ch := p.peek(); {
	case ch == '\'' || ch == '"':
		return p.quoted()
	case ch == '[':
		return p.list('[', ']')
	case ch == '(':
		return p.list('(', ')')
	case ch == '{':
		return p.mapping()
	case ch == '-' || ch == '+' || ch == '.' || isDigit(ch):
		return p.number()
	case isAlpha(ch):
		return p.word()
	}
	return Value{}, false
}

func (p *scanner) quoted() (Value, bool) {
	quote := p.advance()
	var sb strings.Builder
	for {
		ch := p.advance()
		switch ch {
		case 0:
			return Value{}, false // unterminated
		case quote:
			return Value{Kind: String, Str: sb.String()}, true
		case '\\':
			esc := p.advance()
			switch esc {
			case 0:
				return Value{}, false
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			default:
				sb.WriteRune(esc)
			}
		default:
			sb.WriteRune(ch)
		}
	}
}

func (p *scanner) list(open, close rune) (Value, bool) {
	p.advance() // open
	v := Value{Kind: List, List: []Value{}}
	p.skipSpace()
	if p.peek() == close {
		p.advance()
		return v, true
	}
	for {
		elem, ok := p.value()
		if !ok {
			return Value{}, false
		}
		v.List = append(v.List, elem)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.advance()
			p.skipSpace()
			if p.peek() == close { // trailing comma
				p.advance()
				return v, true
			}
		case close:
			p.advance()
			return v, true
		default:
			return Value{}, false
		}
	}
}

func (p *scanner) mapping() (Value, bool) {
	p.advance() // '{'
	v := Value{Kind: Map}
	p.skipSpace()
	if p.peek() == '}' {
		p.advance()
		return v, true
	}
	for {
		key, ok := p.value()
		if !ok {
			return Value{}, false
		}
		p.skipSpace()
		if p.peek() != ':' {
			return Value{}, false
		}
		p.advance()
		p.skipSpace()
		val, ok := p.value()
		if !ok {
			return Value{}, false
		}
		v.Keys = append(v.Keys, keyString(key))
		v.Vals = append(v.Vals, val)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.advance()
			p.skipSpace()
			if p.peek() == '}' {
				p.advance()
				return v, true
			}
		case '}':
			p.advance()
			return v, true
		default:
			return Value{}, false
		}
	}
}

func (p *scanner) number() (Value, bool) {
	start := p.pos
	if ch := p.peek(); ch == '-' || ch == '+' {
		p.advance()
	}
	digits := false
	for isDigit(p.peek()) {
		p.advance()
		digits = true
	}
	if p.peek() == '.' {
		p.advance()
		for isDigit(p.peek()) {
			p.advance()
			digits = true
		}
	}
	if !digits {
		return Value{}, false
	}
	if ch := p.peek(); ch == 'e' || ch == 'E' {
		p.advance()
		if ch := p.peek(); ch == '-' || ch == '+' {
			p.advance()
		}
		expDigits := false
		for isDigit(p.peek()) {
			p.advance()
			expDigits = true
		}
		if !expDigits {
			return Value{}, false
		}
	}
	f, err := parseFloat(string(p.src[start:p.pos]))
	if err != nil {
		return Value{}, false
	}
	return Value{Kind: Number, Num: f}, true
}

// word accepts the three bare words the grammar knows. Any other word
// fails the parse, so the surrounding token falls back to a raw string.
func (p *scanner) word() (Value, bool) {
	start := p.pos
	for isAlpha(p.peek()) || isDigit(p.peek()) || p.peek() == '_' {
		p.advance()
	}
	switch string(p.src[start:p.pos]) {
	case "None":
		return Value{Kind: None}, true
	case "True":
		return Value{Kind: Number, Num: 1}, true
	case "False":
		return Value{Kind: Number, Num: 0}, true
	}
	return Value{}, false
}

// keyString renders a map key for lookup purposes.
func keyString(v Value) string {
	switch v.Kind {
	case String:
		return v.Str
	case Number:
		return formatFloat(v.Num)
	default:
		return ""
	}
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
