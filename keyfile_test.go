// Copyright 2022 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package keyfile

import (
	"encoding"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Ensure KeyFile satisfies the encoding.Text* interfaces.
var _ interface {
	encoding.TextMarshaler
	encoding.TextUnmarshaler
} = new(KeyFile)

// desktopFile is a realistic .desktop file exercising decor attachment,
// locales, and uneven separator whitespace.
const desktopFile = `#!/usr/bin/env xdg-open
# Generated by an installer; do not edit.

[Desktop Entry]
Type=Application
Name=Files
Name[de]=Dateien
Name[en_GB]=Files
Name[sr@latin]=Datoteke

# Extra actions follow.
[Desktop Action new-window]
Name = New Window
Exec=nautilus --new-window %U

# vim: ft=desktop
`

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		groups  map[string][]string // group name -> "compound key=value"
		decor   []string            // trailing file decor
		wantErr bool
	}{
		{
			name:   "Empty",
			groups: map[string][]string{},
		},
		{
			name:   "OnlyNewline",
			source: "\n",
			groups: map[string][]string{},
			decor:  []string{""},
		},
		{
			name:   "OnlyComments",
			source: "# one\n\n# two\n",
			groups: map[string][]string{},
			decor:  []string{"# one", "", "# two"},
		},
		{
			name:   "SingleGroup",
			source: "[Hello World]\none=one\ntwo = two\n",
			groups: map[string][]string{
				"Hello World": {"one=one", "two=two"},
			},
		},
		{
			name:   "LocalizedKey",
			source: "[Desktop Entry]\nName[de]=Dateien\n",
			groups: map[string][]string{
				"Desktop Entry": {"Name[de]=Dateien"},
			},
		},
		{
			name:   "SameKeyDifferentLocales",
			source: "[g]\nName=Files\nName[de]=Dateien\nName[de_DE]=Dateien\nName[de@euro]=Dateien\n",
			groups: map[string][]string{
				"g": {"Name=Files", "Name[de]=Dateien", "Name[de_DE]=Dateien", "Name[de@euro]=Dateien"},
			},
		},
		{
			name:   "EmptyValue",
			source: "[g]\nkey=\n",
			groups: map[string][]string{
				"g": {"key="},
			},
		},
		{
			name:   "Desktop",
			source: desktopFile,
			groups: map[string][]string{
				"Desktop Entry": {
					"Type=Application",
					"Name=Files",
					"Name[de]=Dateien",
					"Name[en_GB]=Files",
					"Name[sr@latin]=Datoteke",
				},
				"Desktop Action new-window": {
					"Name=New Window",
					"Exec=nautilus --new-window %U",
				},
			},
			decor: []string{"", "# vim: ft=desktop"},
		},
		{
			name:    "InvalidLine",
			source:  "[g]\nnot a key-value line\n",
			wantErr: true,
		},
		{
			name:    "DuplicateGroup",
			source:  "[a]\nk=v\n[b]\nk=v\n[a]\nk=v\n",
			wantErr: true,
		},
		{
			name:    "AdjacentDuplicateGroup",
			source:  "[a]\n[a]\n",
			wantErr: true,
		},
		{
			name:    "DuplicateKey",
			source:  "[g]\nName=Files\nName=Dateien\n",
			wantErr: true,
		},
		{
			name:    "DuplicateLocalizedKey",
			source:  "[g]\nName[de]=a\nName[de]=b\n",
			wantErr: true,
		},
		{
			name:    "EntryBeforeHeader",
			source:  "Name=Files\n[Desktop Entry]\n",
			wantErr: true,
		},
		{
			name:    "LocaleEncoding",
			source:  "[g]\nName[de.UTF-8]=Dateien\n",
			wantErr: true,
		},
		{
			name:    "ValueWithTab",
			source:  "[g]\nKeywords=a\tb\n",
			wantErr: true,
		},
		{
			name:    "CRLF",
			source:  "[g]\r\nk=v\r\n",
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := Parse(test.source)
			if test.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded; want error", test.source)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", test.source, err)
			}
			got := make(map[string][]string)
			for _, g := range f.Groups() {
				entries := []string{}
				for _, kv := range g.Entries() {
					entries = append(entries, compoundKey(kv.Key(), kv.Locale())+"="+kv.Value())
				}
				got[g.Name()] = entries
			}
			if diff := cmp.Diff(test.groups, got); diff != "" {
				t.Errorf("groups (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.decor, f.Decor()); diff != "" {
				t.Errorf("file decor (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("InvalidLine", func(t *testing.T) {
		_, err := Parse("[g]\nk=v\n???\n")
		var e *InvalidLineError
		if !errors.As(err, &e) {
			t.Fatalf("Parse error = %v; want *InvalidLineError", err)
		}
		if e.Line != "???" || e.Lineno != 2 {
			t.Errorf("error = %+v; want Line %q, Lineno 2", e, "???")
		}
	})
	t.Run("DuplicateGroup", func(t *testing.T) {
		_, err := Parse("[a]\n[b]\n[a]\n")
		var e *DuplicateGroupError
		if !errors.As(err, &e) {
			t.Fatalf("Parse error = %v; want *DuplicateGroupError", err)
		}
		if e.Name != "a" || e.Lineno != 2 {
			t.Errorf("error = %+v; want Name %q, Lineno 2", e, "a")
		}
	})
	t.Run("DuplicateKey", func(t *testing.T) {
		_, err := Parse("[g]\nName[de]=a\nName[de]=b\n")
		var e *DuplicateKeyError
		if !errors.As(err, &e) {
			t.Fatalf("Parse error = %v; want *DuplicateKeyError", err)
		}
		if e.Key != "Name[de]" || e.Lineno != 2 {
			t.Errorf("error = %+v; want Key %q, Lineno 2", e, "Name[de]")
		}
	})
	t.Run("EntryOutsideGroup", func(t *testing.T) {
		_, err := Parse("# comment\nName=Files\n")
		var e *EntryOutsideGroupError
		if !errors.As(err, &e) {
			t.Fatalf("Parse error = %v; want *EntryOutsideGroupError", err)
		}
		if e.Key != "Name" || e.Lineno != 1 {
			t.Errorf("error = %+v; want Key %q, Lineno 1", e, "Name")
		}
	})
	t.Run("UnsupportedEncoding", func(t *testing.T) {
		_, err := Parse("[g]\nName[de_DE.UTF-8]=Dateien\n")
		var e *UnsupportedEncodingError
		if !errors.As(err, &e) {
			t.Fatalf("Parse error = %v; want *UnsupportedEncodingError", err)
		}
		if e.Encoding != "UTF-8" || e.Lineno != 1 {
			t.Errorf("error = %+v; want Encoding %q, Lineno 1", e, "UTF-8")
		}
	})
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "Empty", source: ""},
		{name: "OnlyNewline", source: "\n"},
		{name: "OnlyComments", source: "# a\n\n# b\n"},
		{name: "ScenarioA", source: "[Hello World]\none=one\ntwo = two\n"},
		{name: "TabWhitespace", source: "[g]\nkey\t = \tvalue\n"},
		{name: "DecorEverywhere", source: "# file comment\n\n[a]\n# entry comment\n\nk=v\n\n[b]\nk2 = v2\n# trailing\n\n"},
		{name: "EmptyGroup", source: "[empty]\n[next]\nk=v\n"},
		{name: "Desktop", source: desktopFile},
		{name: "ValueWithEquals", source: "[g]\nExec=env FOO=bar cmd\n"},
		{name: "TrailingValueSpaceless", source: "[g]\nk=v \n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := Parse(test.source)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(test.source, f.String()); diff != "" {
				t.Errorf("render (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTripUnterminatedFinalLine(t *testing.T) {
	f, err := Parse("[g]\nk=v")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f.String(), "[g]\nk=v\n"; got != want {
		t.Errorf("render = %q; want %q", got, want)
	}
}

func TestInsertGroupReplacesInPlace(t *testing.T) {
	f, err := Parse("[a]\nk=old\n[b]\nk=v\n")
	if err != nil {
		t.Fatal(err)
	}
	name, err := NewGroupName("a")
	if err != nil {
		t.Fatal(err)
	}
	g := NewGroup(name)
	g.Insert(mustPair(t, "k", Locale{}, "new"))
	replaced := f.InsertGroup(g)
	if replaced == nil || replaced.Value("k") != "old" {
		t.Fatalf("InsertGroup returned %v; want replaced group with k=old", replaced)
	}
	// The new group keeps the old slot, ahead of [b].
	if got, want := f.String(), "[a]\nk = new\n[b]\nk=v\n"; got != want {
		t.Errorf("render = %q; want %q", got, want)
	}
}

func TestInsertGroupAppendsNew(t *testing.T) {
	f, err := Parse("[a]\nk=v\n")
	if err != nil {
		t.Fatal(err)
	}
	name, err := NewGroupName("b")
	if err != nil {
		t.Fatal(err)
	}
	if replaced := f.InsertGroup(NewGroup(name)); replaced != nil {
		t.Fatalf("InsertGroup returned %v; want nil", replaced)
	}
	if got, want := f.String(), "[a]\nk=v\n[b]\n"; got != want {
		t.Errorf("render = %q; want %q", got, want)
	}
}

func TestRemoveGroupPreservesOrder(t *testing.T) {
	f, err := Parse("[a]\nk=1\n[b]\nk=2\n[c]\nk=3\n")
	if err != nil {
		t.Fatal(err)
	}
	removed := f.RemoveGroup("b")
	if removed == nil || removed.Name() != "b" {
		t.Fatalf("RemoveGroup = %v; want group b", removed)
	}
	if got, want := f.String(), "[a]\nk=1\n[c]\nk=3\n"; got != want {
		t.Errorf("render = %q; want %q", got, want)
	}
	if f.RemoveGroup("nope") != nil {
		t.Error("RemoveGroup of missing group returned non-nil")
	}
}

func TestGroupInsertReplacesInPlace(t *testing.T) {
	f, err := Parse("[g]\none=1\ntwo=2\nthree=3\n")
	if err != nil {
		t.Fatal(err)
	}
	g := f.Group("g")
	replaced := g.Insert(mustPair(t, "two", Locale{}, "zwei"))
	if replaced == nil || replaced.Value() != "2" {
		t.Fatalf("Insert returned %v; want replaced entry with value 2", replaced)
	}
	if got, want := f.String(), "[g]\none=1\ntwo = zwei\nthree=3\n"; got != want {
		t.Errorf("render = %q; want %q", got, want)
	}
	if replaced := g.Insert(mustPair(t, "four", Locale{}, "4")); replaced != nil {
		t.Fatalf("Insert of new key returned %v; want nil", replaced)
	}
	if got, want := f.String(), "[g]\none=1\ntwo = zwei\nthree=3\nfour = 4\n"; got != want {
		t.Errorf("render = %q; want %q", got, want)
	}
}

func TestGroupRemovePreservesOrder(t *testing.T) {
	f, err := Parse("[g]\none=1\ntwo=2\nthree=3\n")
	if err != nil {
		t.Fatal(err)
	}
	g := f.Group("g")
	removed := g.Remove("two", Locale{})
	if removed == nil || removed.Value() != "2" {
		t.Fatalf("Remove = %v; want entry with value 2", removed)
	}
	if got, want := f.String(), "[g]\none=1\nthree=3\n"; got != want {
		t.Errorf("render = %q; want %q", got, want)
	}
	if g.Remove("two", Locale{}) != nil {
		t.Error("second Remove returned non-nil")
	}
}

func TestGroupGetDistinguishesLocales(t *testing.T) {
	f, err := Parse("[g]\nName=Files\nName[de]=Dateien\n")
	if err != nil {
		t.Fatal(err)
	}
	g := f.Group("g")
	de, err := ParseLocale("de")
	if err != nil {
		t.Fatal(err)
	}
	if kv := g.Get("Name", Locale{}); kv == nil || kv.Value() != "Files" {
		t.Errorf("Get(Name, zero) = %v; want Files", kv)
	}
	if kv := g.Get("Name", de); kv == nil || kv.Value() != "Dateien" {
		t.Errorf("Get(Name, de) = %v; want Dateien", kv)
	}
	if kv := g.Get("Name", Locale{lang: "fr"}); kv != nil {
		t.Errorf("Get(Name, fr) = %v; want nil", kv)
	}
}

func TestLocalizedValue(t *testing.T) {
	f, err := Parse(desktopFile)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		locale string // "" for the zero Locale
		want   string
	}{
		{locale: "", want: "Files"},
		{locale: "de", want: "Dateien"},
		{locale: "de_DE", want: "Dateien"},
		{locale: "de_DE.UTF-8", want: "Dateien"},
		{locale: "en_GB", want: "Files"},
		{locale: "sr@latin", want: "Datoteke"},
		{locale: "sr_RS@latin", want: "Datoteke"},
		{locale: "fr", want: "Files"},
	}
	for _, test := range tests {
		var l Locale
		if test.locale != "" {
			var err error
			l, err = ParseLocale(test.locale)
			if err != nil {
				t.Fatal(err)
			}
		}
		if got := f.LocalizedValue("Desktop Entry", "Name", l); got != test.want {
			t.Errorf("LocalizedValue(Name, %q) = %q; want %q", test.locale, got, test.want)
		}
	}
	if got := f.LocalizedValue("Desktop Entry", "Missing", Locale{}); got != "" {
		t.Errorf("LocalizedValue(Missing) = %q; want empty", got)
	}
}

func TestClone(t *testing.T) {
	f, err := Parse(desktopFile)
	if err != nil {
		t.Fatal(err)
	}
	clone := f.Clone()
	if diff := cmp.Diff(desktopFile, clone.String()); diff != "" {
		t.Fatalf("clone render (-want +got):\n%s", diff)
	}

	// Mutating the original must not affect the clone, and vice versa.
	v, err := NewValue("Bestanden")
	if err != nil {
		t.Fatal(err)
	}
	f.Group("Desktop Entry").Get("Name", Locale{}).SetValue(v)
	f.RemoveGroup("Desktop Action new-window")
	if diff := cmp.Diff(desktopFile, clone.String()); diff != "" {
		t.Errorf("clone render after mutating original (-want +got):\n%s", diff)
	}
}

func TestNilKeyFile(t *testing.T) {
	f := (*KeyFile)(nil)
	if got := f.Group("foo"); got != nil {
		t.Errorf("Group(...) = %v; want nil", got)
	}
	if got := f.Groups(); got != nil {
		t.Errorf("Groups() = %v; want nil", got)
	}
	if got := f.GroupNames(); got != nil {
		t.Errorf("GroupNames() = %v; want nil", got)
	}
	if got := f.Value("foo", "bar"); got != "" {
		t.Errorf("Value(...) = %q; want empty", got)
	}
	if got := f.LocalizedValue("foo", "bar", Locale{}); got != "" {
		t.Errorf("LocalizedValue(...) = %q; want empty", got)
	}
	if got, err := f.MarshalText(); err != nil {
		t.Errorf("MarshalText(): %v", err)
	} else if len(got) > 0 {
		t.Errorf("MarshalText() = %q; want empty", got)
	}
	if got := f.Clone(); got != nil {
		t.Errorf("Clone() = %v; want nil", got)
	}
}

func TestUnmarshalText(t *testing.T) {
	f := new(KeyFile)
	if err := f.UnmarshalText([]byte(desktopFile)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(desktopFile, f.String()); diff != "" {
		t.Errorf("render (-want +got):\n%s", diff)
	}
	if err := f.UnmarshalText([]byte("not a keyfile\n")); err == nil {
		t.Error("UnmarshalText of invalid input succeeded")
	}
}

func TestBuildProgrammatically(t *testing.T) {
	name, err := NewGroupName("Desktop Entry")
	if err != nil {
		t.Fatal(err)
	}
	decor, err := NewDecor([]string{"# Created programmatically"})
	if err != nil {
		t.Fatal(err)
	}
	g := NewGroupWithDecor(name, decor)
	g.Insert(mustPair(t, "Type", Locale{}, "Application"))
	de, err := ParseLocale("de")
	if err != nil {
		t.Fatal(err)
	}
	g.Insert(mustPair(t, "Name", Locale{}, "Files"))
	g.Insert(mustPair(t, "Name", de, "Dateien"))

	f := New()
	f.InsertGroup(g)
	want := "# Created programmatically\n" +
		"[Desktop Entry]\n" +
		"Type = Application\n" +
		"Name = Files\n" +
		"Name[de] = Dateien\n"
	if diff := cmp.Diff(want, f.String()); diff != "" {
		t.Errorf("render (-want +got):\n%s", diff)
	}
}

func mustPair(t *testing.T, key string, locale Locale, value string) *KeyValuePair {
	t.Helper()
	k, err := NewKey(key)
	if err != nil {
		t.Fatal(err)
	}
	v, err := NewValue(value)
	if err != nil {
		t.Fatal(err)
	}
	return NewKeyValuePair(k, locale, v)
}
