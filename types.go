// Copyright 2022 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package keyfile

import "errors"

// Validation errors returned by the scalar constructors in this package.
var (
	ErrInvalidGroupName  = errors.New("group name must be non-empty printable ASCII without '[' or ']'")
	ErrInvalidKey        = errors.New("key must be non-empty ASCII letters, digits, or '-'")
	ErrInvalidLanguage   = errors.New("language must be non-empty ASCII letters")
	ErrInvalidCountry    = errors.New("country must be non-empty ASCII letters")
	ErrInvalidEncoding   = errors.New("encoding must be non-empty ASCII letters, digits, or '-'")
	ErrInvalidModifier   = errors.New("modifier must be non-empty ASCII letters")
	ErrInvalidValue      = errors.New("value must not contain control characters")
	ErrInvalidWhitespace = errors.New("whitespace must contain only spaces or tabs")
	ErrInvalidDecor      = errors.New("decor lines must be empty or start with '#'")
)

// A GroupName is a validated group name: printable ASCII without brackets.
// The zero value is not a valid name; obtain one from NewGroupName.
type GroupName struct {
	s string
}

// NewGroupName validates s as a group name.
func NewGroupName(s string) (GroupName, error) {
	if !IsValidGroupName(s) {
		return GroupName{}, ErrInvalidGroupName
	}
	return GroupName{s}, nil
}

// String returns the name as a plain string.
func (n GroupName) String() string { return n.s }

// A Key is a validated entry key: ASCII letters, digits, and hyphens.
// The zero value is not a valid key; obtain one from NewKey.
type Key struct {
	s string
}

// NewKey validates s as an entry key.
func NewKey(s string) (Key, error) {
	if !IsValidKey(s) {
		return Key{}, ErrInvalidKey
	}
	return Key{s}, nil
}

// String returns the key as a plain string.
func (k Key) String() string { return k.s }

// A Language is a validated POSIX locale language identifier.
type Language struct {
	s string
}

// NewLanguage validates s as a language identifier.
func NewLanguage(s string) (Language, error) {
	if !isAlpha(s) {
		return Language{}, ErrInvalidLanguage
	}
	return Language{s}, nil
}

// String returns the identifier as a plain string.
func (l Language) String() string { return l.s }

// A Country is a validated POSIX locale country/territory identifier.
// The zero value means "no country".
type Country struct {
	s string
}

// NewCountry validates s as a country identifier.
func NewCountry(s string) (Country, error) {
	if !isAlpha(s) {
		return Country{}, ErrInvalidCountry
	}
	return Country{s}, nil
}

// String returns the identifier as a plain string.
func (c Country) String() string { return c.s }

// An Encoding is a validated POSIX locale encoding identifier. Encodings are
// accepted syntactically for compatibility, but this package never decodes
// anything other than UTF-8.
type Encoding struct {
	s string
}

// NewEncoding validates s as an encoding identifier.
func NewEncoding(s string) (Encoding, error) {
	if !isAlnumDash(s) {
		return Encoding{}, ErrInvalidEncoding
	}
	return Encoding{s}, nil
}

// String returns the identifier as a plain string.
func (e Encoding) String() string { return e.s }

// A Modifier is a validated POSIX locale modifier. The zero value means
// "no modifier".
type Modifier struct {
	s string
}

// NewModifier validates s as a locale modifier.
func NewModifier(s string) (Modifier, error) {
	if !isAlpha(s) {
		return Modifier{}, ErrInvalidModifier
	}
	return Modifier{s}, nil
}

// String returns the modifier as a plain string.
func (m Modifier) String() string { return m.s }

// A Value is a validated entry value: a single line free of control
// characters. The empty string is a valid value.
type Value struct {
	s string
}

// NewValue validates s as an entry value.
func NewValue(s string) (Value, error) {
	if !isValidValue(s) {
		return Value{}, ErrInvalidValue
	}
	return Value{s}, nil
}

// String returns the value as a plain string.
func (v Value) String() string { return v.s }

// A Whitespace is a validated run of blanks (spaces and tabs), possibly
// empty, as found around the '=' separator.
type Whitespace struct {
	s string
}

// NewWhitespace validates s as separator whitespace.
func NewWhitespace(s string) (Whitespace, error) {
	if !isBlank(s) {
		return Whitespace{}, ErrInvalidWhitespace
	}
	return Whitespace{s}, nil
}

// String returns the whitespace as a plain string.
func (w Whitespace) String() string { return w.s }

// A Decor is a validated list of decor lines: each line is either empty or a
// '#' comment, without line terminators. The zero value is an empty list.
type Decor struct {
	lines []string
}

// NewDecor validates lines as decor. The lines are copied.
func NewDecor(lines []string) (Decor, error) {
	for _, line := range lines {
		if !isDecorLine(line) {
			return Decor{}, ErrInvalidDecor
		}
	}
	d := Decor{lines: make([]string, len(lines))}
	copy(d.lines, lines)
	return d, nil
}

// Lines returns the decor lines. The returned slice must not be modified.
func (d Decor) Lines() []string { return d.lines }

// IsValidGroupName reports whether s can be used as a group name: one or
// more printable ASCII characters, excluding '[' and ']'.
func IsValidGroupName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c > 0x7e || c == '[' || c == ']' {
			return false
		}
	}
	return true
}

// IsValidKey reports whether s can be used as an entry key: one or more
// ASCII letters, digits, or hyphens.
func IsValidKey(s string) bool {
	return isAlnumDash(s)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

func isAlnumDash(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '-') {
			return false
		}
	}
	return true
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}

// isValidValue reports whether s is free of control characters (Unicode
// category Cc), including CR and LF.
func isValidValue(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f || (0x80 <= r && r <= 0x9f) {
			return false
		}
	}
	return true
}

func isDecorLine(line string) bool {
	return line == "" || line[0] == '#'
}
