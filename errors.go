// Copyright 2022 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package keyfile

import "fmt"

// An InvalidLineError reports a line that is neither empty, a comment, a
// group header, nor a key-value pair. Line numbers are 0-based.
type InvalidLineError struct {
	Line   string
	Lineno int
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("parse keyfile: line %d: invalid line %q", e.Lineno, e.Line)
}

// A DuplicateGroupError reports a group header whose name was already used
// by an earlier group. Lineno is the 0-based line number of the second
// header.
type DuplicateGroupError struct {
	Name   string
	Lineno int
}

func (e *DuplicateGroupError) Error() string {
	return fmt.Sprintf("parse keyfile: line %d: duplicate group %q", e.Lineno, e.Name)
}

// A DuplicateKeyError reports a key-value line whose (key, locale) pair was
// already used within the same group. Key includes the bracketed locale when
// the entry carries one, e.g. "Name[de]".
type DuplicateKeyError struct {
	Key    string
	Lineno int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("parse keyfile: line %d: duplicate key %q", e.Lineno, e.Key)
}

// An EntryOutsideGroupError reports a key-value line that appears before any
// group header. Every entry must belong to a group.
type EntryOutsideGroupError struct {
	Key    string
	Lineno int
}

func (e *EntryOutsideGroupError) Error() string {
	return fmt.Sprintf("parse keyfile: line %d: key %q before any group header", e.Lineno, e.Key)
}

// An UnsupportedEncodingError reports a key-value line whose locale carries
// an encoding component, like "Name[de.UTF-8]". Only UTF-8 input is
// supported, and re-serializing such a line would drop the component, so it
// is rejected up front.
type UnsupportedEncodingError struct {
	Encoding string
	Lineno   int
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("parse keyfile: line %d: unsupported locale encoding %q", e.Lineno, e.Encoding)
}
