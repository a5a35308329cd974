// Copyright 2022 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package keyfile provides a parser and serializer for the KeyFile format used
by freedesktop.org "desktop entry" (.desktop) files. See
https://specifications.freedesktop.org/desktop-entry-spec/latest/ for the
format specification.

This package is specifically designed for read-modify-write scenarios: a
parsed KeyFile records comments, blank lines, key order, and the whitespace
around the '=' separator, so that serializing an unmodified document
reproduces the input byte for byte.

Syntax

A keyfile is Unicode text encoded in UTF-8, processed line by line. Empty
lines and lines whose first character is a hash ('#') are decor: they carry
no data, but they are retained and attached to the group or key-value pair
that follows them (trailing decor is attached to the file itself).

A group header is a group name enclosed in square brackets on its own line.
Group names consist of printable ASCII characters other than '[' and ']':

	[Desktop Entry]

A key-value pair is a key and a value separated by an equals sign ('='):

	Name=Files

Keys consist of ASCII letters, digits, and hyphens. A key may carry a locale
in square brackets, marking the value as a translation:

	Name[de]=Dateien
	Name[en_GB]=Files
	Name[sr@latin]=Datoteke

A locale is a language, an optional '_' country, and an optional '@'
modifier, each ASCII alphabetic. The syntax additionally admits a '.'
encoding component (for example "de.UTF-8"), but this package only supports
UTF-8 input: parsing a line whose locale carries an encoding fails with an
UnsupportedEncodingError rather than silently dropping the component on
re-serialization.

Blanks (spaces and tabs) around the '=' separator are captured verbatim and
reproduced on output, not normalized. Values run to the end of the line and
may not contain control characters; there are no multi-line values, escape
sequences, or quoting.

Every key-value pair belongs to a group. Unlike INI dialects with an implicit
global section, a key-value line before the first group header is an error.
Group names are unique within a file, and (key, locale) pairs are unique
within a group; duplicates are parse errors.

Round-tripping

Parse followed by MarshalText is the identity on any successfully parsed,
newline-terminated input. If the input's final line is unterminated, output
gains exactly one trailing newline; no other byte changes. Mutations edit
documents in place: inserting over an existing group or key replaces the
value at its original position, and removals preserve the order of what
remains.

Strings in a parsed KeyFile alias the input string. This is free for
parse-inspect-discard usage, but it keeps the whole input reachable; use
Clone to obtain a document that is independent of the input buffer.
*/
package keyfile
