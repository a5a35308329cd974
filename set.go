// Copyright 2022 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package keyfile

import (
	"context"
	"fmt"
	"os"

	"zombiezen.com/go/log"
)

// A FileSet is a list of keyfiles to obtain values from in descending order
// of precedence, such as a user's desktop entry followed by the system-wide
// one it overrides.
type FileSet []*KeyFile

// ParseFiles reads and parses the files at the given paths and returns a
// FileSet. If the returned error is nil, the returned set's length will be
// the same as the number of arguments. ParseFiles stops on the first read or
// parse error, but ignores missing files, instead filling the corresponding
// element of the set with a nil *KeyFile.
func ParseFiles(ctx context.Context, paths ...string) (FileSet, error) {
	fset := make(FileSet, 0, len(paths))
	for _, p := range paths {
		contents, err := os.ReadFile(p)
		if os.IsNotExist(err) {
			log.Debugf(ctx, "Skipping missing keyfile %s", p)
			fset = append(fset, nil)
			continue
		}
		if err != nil {
			return fset, fmt.Errorf("parse keyfiles: %w", err)
		}
		parsed, err := Parse(string(contents))
		if err != nil {
			return fset, fmt.Errorf("parse keyfiles: %s: %w", p, err)
		}
		fset = append(fset, parsed)
	}
	return fset, nil
}

// Value returns the value of the untranslated entry with the given key in
// the named group from the first file in the set that has the entry, or the
// empty string if none does.
func (fset FileSet) Value(group, key string) string {
	for _, f := range fset {
		if v, ok := f.findGroup(group).lookup(key); ok {
			return v
		}
	}
	return ""
}

// LocalizedValue returns the best translation of the given key in the named
// group from the first file in the set that has any variant of the entry.
// See Group.LocalizedValue.
func (fset FileSet) LocalizedValue(group, key string, locale Locale) string {
	for _, f := range fset {
		if v, ok := f.findGroup(group).lookupLocalized(key, locale); ok {
			return v
		}
	}
	return ""
}

// Group returns the group with the given name from the first file in the
// set that has it, or nil if none does.
func (fset FileSet) Group(name string) *Group {
	for _, f := range fset {
		if g := f.findGroup(name); g != nil {
			return g
		}
	}
	return nil
}

// HasGroup reports whether any file in the set has a group with the given
// name.
func (fset FileSet) HasGroup(name string) bool {
	return fset.Group(name) != nil
}

// GroupNames returns the names of the groups present in any file in the
// set, in order of first appearance across files.
func (fset FileSet) GroupNames() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, f := range fset {
		for _, name := range f.GroupNames() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}
