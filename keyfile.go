// Copyright 2022 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package keyfile

import "strings"

// A KeyFile is a parsed or programmatically built keyfile: an ordered
// collection of uniquely named groups plus any decor lines (comments and
// blank lines) after the last entry. The zero value is an empty file.
//
// A KeyFile produced by Parse keeps its strings as views into the input;
// see Clone.
type KeyFile struct {
	groups []*Group
	decor  []string
}

// New returns an empty KeyFile.
func New() *KeyFile {
	return new(KeyFile)
}

// Parse parses the full text of a keyfile. It makes a single pass over the
// input and stops at the first offending line; the returned error is one of
// *InvalidLineError, *DuplicateGroupError, *DuplicateKeyError,
// *EntryOutsideGroupError, or *UnsupportedEncodingError.
//
// The returned KeyFile's strings alias contents.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(contents string) (*KeyFile, error) {
	f := New()
	var current *Group
	var decor []string

	rest := contents
	for lineno := 0; rest != ""; lineno++ {
		var line string
		line, rest = cutLine(rest)

		if isDecorLine(line) {
			decor = append(decor, line)
			continue
		}

		if name, ok := matchHeader(line); ok {
			if current != nil {
				f.groups = append(f.groups, current)
			}
			if f.findGroup(name) != nil {
				return nil, &DuplicateGroupError{Name: name, Lineno: lineno}
			}
			current = &Group{name: name, decor: decor}
			decor = nil
			continue
		}

		if kv, ok := matchKeyValue(line); ok {
			if current == nil {
				return nil, &EntryOutsideGroupError{Key: kv.key, Lineno: lineno}
			}
			if kv.locale.encoding != "" {
				return nil, &UnsupportedEncodingError{Encoding: kv.locale.encoding, Lineno: lineno}
			}
			if current.Get(kv.key, kv.locale) != nil {
				return nil, &DuplicateKeyError{Key: compoundKey(kv.key, kv.locale), Lineno: lineno}
			}
			current.entries = append(current.entries, &KeyValuePair{
				key:    kv.key,
				locale: kv.locale,
				value:  kv.value,
				wsl:    kv.wsl,
				wsr:    kv.wsr,
				decor:  decor,
			})
			decor = nil
			continue
		}

		return nil, &InvalidLineError{Line: line, Lineno: lineno}
	}

	if current != nil {
		f.groups = append(f.groups, current)
	}
	f.decor = decor
	return f, nil
}

// cutLine splits s at its first newline, returning the line without the
// terminator and the text after it. The final line may be unterminated.
func cutLine(s string) (line, rest string) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// compoundKey formats a (key, locale) pair for diagnostics: "key" or
// "key[locale]".
func compoundKey(key string, locale Locale) string {
	if locale.IsZero() {
		return key
	}
	return key + "[" + locale.String() + "]"
}

func (f *KeyFile) findGroup(name string) *Group {
	if f == nil {
		return nil
	}
	for _, g := range f.groups {
		if g.name == name {
			return g
		}
	}
	return nil
}

// Group returns the group with the given name, or nil if there is none.
func (f *KeyFile) Group(name string) *Group {
	return f.findGroup(name)
}

// Groups returns the file's groups in order. The groups are shared, not
// copied; the returned slice itself may be modified freely.
func (f *KeyFile) Groups() []*Group {
	if f == nil {
		return nil
	}
	out := make([]*Group, len(f.groups))
	copy(out, f.groups)
	return out
}

// GroupNames returns the names of the file's groups in order.
func (f *KeyFile) GroupNames() []string {
	if f == nil {
		return nil
	}
	names := make([]string, len(f.groups))
	for i, g := range f.groups {
		names[i] = g.name
	}
	return names
}

// Value returns the value of the untranslated entry with the given key in
// the named group, or the empty string if the group or entry does not exist.
func (f *KeyFile) Value(group, key string) string {
	return f.findGroup(group).Value(key)
}

// LocalizedValue returns the best translation of the given key in the named
// group for the given locale. See Group.LocalizedValue.
func (f *KeyFile) LocalizedValue(group, key string, locale Locale) string {
	return f.findGroup(group).LocalizedValue(key, locale)
}

// InsertGroup adds a group to the file. If a group with the same name
// already exists, it is replaced at its original position and returned;
// otherwise the group is appended and InsertGroup returns nil.
func (f *KeyFile) InsertGroup(g *Group) *Group {
	for i, old := range f.groups {
		if old.name == g.name {
			f.groups[i] = g
			return old
		}
	}
	f.groups = append(f.groups, g)
	return nil
}

// RemoveGroup removes and returns the group with the given name, or returns
// nil if there is none. The order of the remaining groups is preserved.
func (f *KeyFile) RemoveGroup(name string) *Group {
	for i, g := range f.groups {
		if g.name == name {
			copy(f.groups[i:], f.groups[i+1:])
			// Zero out truncated element for garbage collection.
			f.groups[len(f.groups)-1] = nil
			f.groups = f.groups[:len(f.groups)-1]
			return g
		}
	}
	return nil
}

// Decor returns the decor lines after the last entry in the file. The
// returned slice must not be modified.
func (f *KeyFile) Decor() []string {
	if f == nil {
		return nil
	}
	return f.decor
}

// SetDecor replaces the decor lines after the last entry and returns the
// previous ones.
func (f *KeyFile) SetDecor(decor Decor) []string {
	prev := f.decor
	f.decor = decor.lines
	return prev
}

// Clone returns a deep copy of f that shares no strings with f or with the
// input f was parsed from. It copies structure only; values that were valid
// remain valid.
func (f *KeyFile) Clone() *KeyFile {
	if f == nil {
		return nil
	}
	out := &KeyFile{
		groups: make([]*Group, len(f.groups)),
		decor:  cloneLines(f.decor),
	}
	for i, g := range f.groups {
		out.groups[i] = g.Clone()
	}
	return out
}

// MarshalText serializes the file. Serializing an unmodified parsed file
// reproduces the input exactly, except that an unterminated final line gains
// a trailing newline.
func (f *KeyFile) MarshalText() ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	var buf []byte
	for _, g := range f.groups {
		buf = g.appendText(buf)
	}
	for _, line := range f.decor {
		buf = append(buf, line...)
		buf = append(buf, '\n')
	}
	return buf, nil
}

// UnmarshalText parses data, replacing f's groups and decor. The new
// contents do not alias data.
func (f *KeyFile) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}

// String renders the file as text. It is the inverse of Parse.
func (f *KeyFile) String() string {
	text, _ := f.MarshalText()
	return string(text)
}
