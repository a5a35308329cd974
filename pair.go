// Copyright 2022 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package keyfile

import "strings"

// A KeyValuePair is one entry in a group: a key with an optional locale, a
// value, the whitespace surrounding the '=' separator, and the decor lines
// (comments and blank lines) immediately preceding the entry.
type KeyValuePair struct {
	key    string
	locale Locale
	value  string
	wsl    string
	wsr    string
	decor  []string
}

// NewKeyValuePair returns an entry with a single space on each side of the
// '=' separator and no decor. Pass the zero Locale for an untranslated key.
func NewKeyValuePair(key Key, locale Locale, value Value) *KeyValuePair {
	return &KeyValuePair{
		key:    key.s,
		locale: locale,
		value:  value.s,
		wsl:    " ",
		wsr:    " ",
	}
}

// NewKeyValuePairWithDecor returns an entry with every formatting field set
// explicitly.
func NewKeyValuePairWithDecor(key Key, locale Locale, value Value, wsl, wsr Whitespace, decor Decor) *KeyValuePair {
	return &KeyValuePair{
		key:    key.s,
		locale: locale,
		value:  value.s,
		wsl:    wsl.s,
		wsr:    wsr.s,
		decor:  decor.lines,
	}
}

// Key returns the entry key.
func (kv *KeyValuePair) Key() string { return kv.key }

// SetKey replaces the entry key and returns the previous one.
func (kv *KeyValuePair) SetKey(key Key) string {
	prev := kv.key
	kv.key = key.s
	return prev
}

// Locale returns the entry's locale. It is the zero Locale for an
// untranslated key.
func (kv *KeyValuePair) Locale() Locale { return kv.locale }

// SetLocale replaces the entry's locale and returns the previous one.
// Passing the zero Locale makes the entry untranslated.
func (kv *KeyValuePair) SetLocale(locale Locale) Locale {
	prev := kv.locale
	kv.locale = locale
	return prev
}

// Value returns the entry value.
func (kv *KeyValuePair) Value() string { return kv.value }

// SetValue replaces the entry value and returns the previous one.
func (kv *KeyValuePair) SetValue(value Value) string {
	prev := kv.value
	kv.value = value.s
	return prev
}

// Whitespace returns the blanks captured to the left and right of the '='
// separator.
func (kv *KeyValuePair) Whitespace() (left, right string) {
	return kv.wsl, kv.wsr
}

// SetWhitespace replaces the blanks around the '=' separator and returns the
// previous ones.
func (kv *KeyValuePair) SetWhitespace(left, right Whitespace) (prevLeft, prevRight string) {
	prevLeft, prevRight = kv.wsl, kv.wsr
	kv.wsl, kv.wsr = left.s, right.s
	return prevLeft, prevRight
}

// Decor returns the decor lines preceding the entry. The returned slice must
// not be modified.
func (kv *KeyValuePair) Decor() []string { return kv.decor }

// SetDecor replaces the decor lines preceding the entry and returns the
// previous ones.
func (kv *KeyValuePair) SetDecor(decor Decor) []string {
	prev := kv.decor
	kv.decor = decor.lines
	return prev
}

// Clone returns a deep copy of kv whose strings do not alias any parse
// input.
func (kv *KeyValuePair) Clone() *KeyValuePair {
	return &KeyValuePair{
		key:    strings.Clone(kv.key),
		locale: kv.locale.Clone(),
		value:  strings.Clone(kv.value),
		wsl:    strings.Clone(kv.wsl),
		wsr:    strings.Clone(kv.wsr),
		decor:  cloneLines(kv.decor),
	}
}

// String renders the entry as it appears in a file: its decor lines, then
// "key[locale]<ws>=<ws>value", each line newline-terminated.
func (kv *KeyValuePair) String() string {
	return string(kv.appendText(nil))
}

func (kv *KeyValuePair) appendText(buf []byte) []byte {
	for _, line := range kv.decor {
		buf = append(buf, line...)
		buf = append(buf, '\n')
	}
	buf = append(buf, kv.key...)
	if !kv.locale.IsZero() {
		buf = append(buf, '[')
		buf = append(buf, kv.locale.String()...)
		buf = append(buf, ']')
	}
	buf = append(buf, kv.wsl...)
	buf = append(buf, '=')
	buf = append(buf, kv.wsr...)
	buf = append(buf, kv.value...)
	buf = append(buf, '\n')
	return buf
}

func cloneLines(lines []string) []string {
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.Clone(line)
	}
	return out
}
