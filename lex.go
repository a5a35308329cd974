// Copyright 2022 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package keyfile

import "regexp"

// headerRE matches a group header line: a '[', one or more printable ASCII
// characters other than '[' (0x5b) and ']' (0x5d), and a closing ']'.
var headerRE = regexp.MustCompile(`^\[([\x20-\x5a\x5c\x5e-\x7e]+)\]$`)

// keyValueRE matches a key-value line: a key, an optional bracketed locale
// (lang, optional '_' country, optional '.' encoding, optional '@' modifier),
// blanks, '=', blanks, and a value running to the end of the line. The
// blanks on either side of the '=' are captured separately so they can be
// reproduced on output. Keep the character classes in sync with the
// validators in types.go.
var keyValueRE = regexp.MustCompile(`^([A-Za-z0-9-]+)` +
	`(?:\[([A-Za-z]+)(?:_([A-Za-z]+))?(?:\.([A-Za-z0-9-]+))?(?:@([A-Za-z]+))?\])?` +
	`([ \t]*)=([ \t]*)([^\p{Cc}]*)$`)

// matchHeader reports whether line is a group header, and if so returns the
// group name.
func matchHeader(line string) (name string, ok bool) {
	m := headerRE.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// A keyValueLine holds the fields of one matched key-value line. The locale
// is the zero Locale if the key carries none.
type keyValueLine struct {
	key    string
	locale Locale
	wsl    string
	wsr    string
	value  string
}

// matchKeyValue reports whether line is a key-value pair, and if so returns
// its fields.
func matchKeyValue(line string) (keyValueLine, bool) {
	m := keyValueRE.FindStringSubmatch(line)
	if m == nil {
		return keyValueLine{}, false
	}
	// Submatches: 1 key, 2 lang, 3 country, 4 encoding, 5 modifier,
	// 6 left whitespace, 7 right whitespace, 8 value.
	kv := keyValueLine{
		key:   m[1],
		wsl:   m[6],
		wsr:   m[7],
		value: m[8],
	}
	if m[2] != "" {
		kv.locale = Locale{
			lang:     m[2],
			country:  m[3],
			encoding: m[4],
			modifier: m[5],
		}
	}
	return kv, true
}
