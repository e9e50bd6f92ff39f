// Package casing converts type names into field names.
package casing

import (
	"strings"
	"unicode"
)

const rawPrefix = "r#"

// keywords are the reserved words that cannot be used as a plain field name.
var keywords = map[string]struct{}{
	"as": {}, "async": {}, "await": {}, "break": {}, "const": {}, "continue": {},
	"crate": {}, "dyn": {}, "else": {}, "enum": {}, "extern": {}, "false": {},
	"fn": {}, "for": {}, "gen": {}, "if": {}, "impl": {}, "in": {}, "let": {},
	"loop": {}, "match": {}, "mod": {}, "move": {}, "mut": {}, "pub": {},
	"ref": {}, "return": {}, "static": {}, "struct": {}, "trait": {},
	"true": {}, "try": {}, "type": {}, "unsafe": {}, "use": {}, "where": {},
	"while": {}, "abstract": {}, "become": {}, "box": {}, "do": {},
	"final": {}, "macro": {}, "override": {}, "priv": {}, "typeof": {},
	"unsized": {}, "virtual": {}, "yield": {},
}

// ToSnake converts an identifier to snake_case.
// Examples:
//   - "UserProfile" -> "user_profile"
//   - "XMLParser" -> "xml_parser"
//   - "HTTP2Server" -> "http2_server"
//   - "r#Type" -> "r#type"
//
// Leading underscores are kept.
func ToSnake(ident string) string {
	prefix := ""
	if strings.HasPrefix(ident, rawPrefix) {
		prefix = rawPrefix
		ident = ident[len(rawPrefix):]
	}

	trimmed := strings.TrimLeft(ident, "_")
	leading := ident[:len(ident)-len(trimmed)]

	words := Words(trimmed)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}

	return prefix + leading + strings.Join(words, "_")
}

// ToFieldName converts a type name to the name of a field holding it.
// A name that collides with a keyword is written as a raw identifier.
func ToFieldName(typeName string) string {
	name := ToSnake(typeName)
	if IsKeyword(name) {
		return rawPrefix + name
	}

	return name
}

func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}

// Words splits a CamelCase, camelCase or snake_case identifier into words.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "getHTTPResponse" -> ["get", "HTTP", "Response"]
//   - "order_item" -> ["order", "item"]
func Words(s string) []string {
	if s == "" {
		return nil
	}

	var words []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if r == '_' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && startsWord(runes, i) && current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// startsWord reports whether a new word starts at position i.
func startsWord(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// "orderID": split before 'I'
	if isUpper && !isPrevUpper && prev != '_' {
		return true
	}

	// "XMLParser": split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	return isUpper && isPrevUpper && hasNextLower
}
