// Copyright 2022 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package keyfile

import (
	"errors"
	"os"
	"regexp"
	"strings"
)

// ErrInvalidLocale is returned by ParseLocale for identifiers that do not
// match lang[_COUNTRY][.ENCODING][@MODIFIER].
var ErrInvalidLocale = errors.New("locale must match lang[_COUNTRY][.ENCODING][@MODIFIER]")

// localeRE matches a full POSIX-style locale identifier, like the locale
// part of keyValueRE in lex.go but anchored on its own.
var localeRE = regexp.MustCompile(`^([A-Za-z]+)(?:_([A-Za-z]+))?(?:\.([A-Za-z0-9-]+))?(?:@([A-Za-z]+))?$`)

// A Locale identifies a translation of a key's value: a required language
// with optional country, encoding, and modifier, written
// lang[_COUNTRY][.ENCODING][@MODIFIER]. The zero Locale means "no locale",
// i.e. an untranslated key. Locales are compared field-wise with ==.
//
// The encoding component exists only for syntactic compatibility: it is
// never rendered, and parsing a file that uses one fails. See ParseLocale.
type Locale struct {
	lang     string
	country  string
	encoding string
	modifier string
}

// NewLocale assembles a Locale from validated parts. The country and
// modifier may be their zero values to omit them.
func NewLocale(lang Language, country Country, modifier Modifier) Locale {
	return Locale{
		lang:     lang.s,
		country:  country.s,
		modifier: modifier.s,
	}
}

// ParseLocale parses a locale identifier like "de", "en_GB", "sr@latin", or
// "de_DE.UTF-8". Unlike Parse, it accepts an encoding component, since
// identifiers from the environment commonly carry one; the component is
// retained for comparisons but never rendered.
func ParseLocale(s string) (Locale, error) {
	m := localeRE.FindStringSubmatch(s)
	if m == nil {
		return Locale{}, ErrInvalidLocale
	}
	return Locale{
		lang:     m[1],
		country:  m[2],
		encoding: m[3],
		modifier: m[4],
	}, nil
}

// CurrentLocale determines the user's message locale from the LC_ALL,
// LC_MESSAGES, and LANG environment variables, in that order. It reports
// false if none is set or the first one set does not name a translation
// locale (for example "C" or "POSIX").
func CurrentLocale() (Locale, bool) {
	for _, key := range [...]string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		if v == "C" || v == "POSIX" {
			return Locale{}, false
		}
		l, err := ParseLocale(v)
		if err != nil {
			return Locale{}, false
		}
		return l, true
	}
	return Locale{}, false
}

// IsZero reports whether l is the zero Locale, meaning "no locale".
func (l Locale) IsZero() bool {
	return l == Locale{}
}

// Lang returns the language identifier.
func (l Locale) Lang() string { return l.lang }

// Country returns the country identifier, or "" if there is none.
func (l Locale) Country() string { return l.country }

// Encoding returns the encoding identifier, or "" if there is none.
func (l Locale) Encoding() string { return l.encoding }

// Modifier returns the locale modifier, or "" if there is none.
func (l Locale) Modifier() string { return l.modifier }

// SetLang replaces the language identifier and returns the previous one.
func (l *Locale) SetLang(lang Language) string {
	prev := l.lang
	l.lang = lang.s
	return prev
}

// SetCountry replaces the country identifier and returns the previous one.
// Passing the zero Country removes the component.
func (l *Locale) SetCountry(country Country) string {
	prev := l.country
	l.country = country.s
	return prev
}

// SetModifier replaces the locale modifier and returns the previous one.
// Passing the zero Modifier removes the component.
func (l *Locale) SetModifier(modifier Modifier) string {
	prev := l.modifier
	l.modifier = modifier.s
	return prev
}

// String renders the locale as lang[_COUNTRY][@MODIFIER]. The encoding, if
// any, is omitted.
func (l Locale) String() string {
	sb := new(strings.Builder)
	sb.Grow(len(l.lang) + len(l.country) + len(l.modifier) + 2)
	sb.WriteString(l.lang)
	if l.country != "" {
		sb.WriteByte('_')
		sb.WriteString(l.country)
	}
	if l.modifier != "" {
		sb.WriteByte('@')
		sb.WriteString(l.modifier)
	}
	return sb.String()
}

// Clone returns a copy of l whose strings do not alias any parse input.
func (l Locale) Clone() Locale {
	return Locale{
		lang:     strings.Clone(l.lang),
		country:  strings.Clone(l.country),
		encoding: strings.Clone(l.encoding),
		modifier: strings.Clone(l.modifier),
	}
}

// fallbacks returns the locales to try when looking up a translated value,
// most specific first: lang_COUNTRY@MODIFIER, lang_COUNTRY, lang@MODIFIER,
// lang. The encoding never participates in lookup.
func (l Locale) fallbacks() []Locale {
	out := make([]Locale, 0, 4)
	if l.country != "" && l.modifier != "" {
		out = append(out, Locale{lang: l.lang, country: l.country, modifier: l.modifier})
	}
	if l.country != "" {
		out = append(out, Locale{lang: l.lang, country: l.country})
	}
	if l.modifier != "" {
		out = append(out, Locale{lang: l.lang, modifier: l.modifier})
	}
	out = append(out, Locale{lang: l.lang})
	return out
}
