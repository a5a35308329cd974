// Copyright 2022 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package keyfile

import "strings"

// A Group is a named section of a keyfile: an ordered collection of entries
// keyed by (key, locale), plus the decor lines immediately preceding the
// group's header line. Entry order is the order of appearance in the source
// (or of insertion) and is preserved by edits.
type Group struct {
	name    string
	entries []*KeyValuePair
	decor   []string
}

// NewGroup returns an empty group with the given name and no decor.
func NewGroup(name GroupName) *Group {
	return &Group{name: name.s}
}

// NewGroupWithDecor returns an empty group with the given name and the decor
// lines to emit before its header.
func NewGroupWithDecor(name GroupName, decor Decor) *Group {
	return &Group{name: name.s, decor: decor.lines}
}

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// Decor returns the decor lines preceding the group header. The returned
// slice must not be modified.
func (g *Group) Decor() []string { return g.decor }

// SetDecor replaces the decor lines preceding the group header and returns
// the previous ones.
func (g *Group) SetDecor(decor Decor) []string {
	prev := g.decor
	g.decor = decor.lines
	return prev
}

// Get returns the entry with the given key and locale, or nil if there is
// none. Pass the zero Locale for the untranslated entry. A key and its
// translated variants are distinct entries.
func (g *Group) Get(key string, locale Locale) *KeyValuePair {
	if g == nil {
		return nil
	}
	for _, kv := range g.entries {
		if kv.key == key && kv.locale == locale {
			return kv
		}
	}
	return nil
}

// Value returns the value of the untranslated entry with the given key, or
// the empty string if there is none.
func (g *Group) Value(key string) string {
	v, _ := g.lookup(key)
	return v
}

func (g *Group) lookup(key string) (_ string, ok bool) {
	if kv := g.Get(key, Locale{}); kv != nil {
		return kv.value, true
	}
	return "", false
}

// LocalizedValue returns the best translation of the given key for the given
// locale, trying lang_COUNTRY@MODIFIER, lang_COUNTRY, lang@MODIFIER, and
// lang in turn, and falling back to the untranslated entry. It returns the
// empty string if no variant exists. The locale's encoding, if any, is
// ignored.
func (g *Group) LocalizedValue(key string, locale Locale) string {
	v, _ := g.lookupLocalized(key, locale)
	return v
}

func (g *Group) lookupLocalized(key string, locale Locale) (_ string, ok bool) {
	if g == nil {
		return "", false
	}
	if !locale.IsZero() {
		for _, l := range locale.fallbacks() {
			if kv := g.Get(key, l); kv != nil {
				return kv.value, true
			}
		}
	}
	return g.lookup(key)
}

// Entries returns the group's entries in order. The entries are shared, not
// copied; the returned slice itself may be modified freely.
func (g *Group) Entries() []*KeyValuePair {
	if g == nil {
		return nil
	}
	out := make([]*KeyValuePair, len(g.entries))
	copy(out, g.entries)
	return out
}

// Insert adds an entry to the group. If an entry with the same key and
// locale already exists, it is replaced at its original position and
// returned; otherwise the entry is appended and Insert returns nil.
func (g *Group) Insert(kv *KeyValuePair) *KeyValuePair {
	for i, old := range g.entries {
		if old.key == kv.key && old.locale == kv.locale {
			g.entries[i] = kv
			return old
		}
	}
	g.entries = append(g.entries, kv)
	return nil
}

// Remove removes and returns the entry with the given key and locale, or
// returns nil if there is none. The order of the remaining entries is
// preserved.
func (g *Group) Remove(key string, locale Locale) *KeyValuePair {
	for i, kv := range g.entries {
		if kv.key == key && kv.locale == locale {
			copy(g.entries[i:], g.entries[i+1:])
			// Zero out truncated element for garbage collection.
			g.entries[len(g.entries)-1] = nil
			g.entries = g.entries[:len(g.entries)-1]
			return kv
		}
	}
	return nil
}

// Clone returns a deep copy of g whose strings do not alias any parse input.
func (g *Group) Clone() *Group {
	out := &Group{
		name:    strings.Clone(g.name),
		entries: make([]*KeyValuePair, len(g.entries)),
		decor:   cloneLines(g.decor),
	}
	for i, kv := range g.entries {
		out.entries[i] = kv.Clone()
	}
	return out
}

// String renders the group as it appears in a file: its decor lines, the
// "[name]" header line, then each entry in order.
func (g *Group) String() string {
	return string(g.appendText(nil))
}

func (g *Group) appendText(buf []byte) []byte {
	for _, line := range g.decor {
		buf = append(buf, line...)
		buf = append(buf, '\n')
	}
	buf = append(buf, '[')
	buf = append(buf, g.name...)
	buf = append(buf, "]\n"...)
	for _, kv := range g.entries {
		buf = kv.appendText(buf)
	}
	return buf
}
