package config

import (
	"fmt"
	"sort"
)

// SectionKey identifies one section body: a section name plus an optional
// profile qualifier. An empty Profile denotes the base section.
type SectionKey struct {
	Name    string
	Profile string
}

// String renders the key in its source header form, without brackets.
func (k SectionKey) String() string {
	if k.Profile == "" {
		return k.Name
	}
	return fmt.Sprintf("%s@%s", k.Name, k.Profile)
}

// RawValue is the parse-time representation of a single option value. It is
// either a scalar line or an ordered sequence of lines produced by a
// list-section; the two are mutually exclusive.
type RawValue struct {
	Scalar string
	Lines  []string
	IsList bool
	Line   int // 1-based source line of the assignment or list-section header
}

// Copy returns a deep copy of the value. Lines are duplicated so that a
// resolved configuration never aliases the parsed document.
func (v RawValue) Copy() RawValue {
	out := v
	if v.Lines != nil {
		out.Lines = append([]string(nil), v.Lines...)
	}
	return out
}

// Option is one named entry of a section body, in declaration order.
type Option struct {
	Name  string
	Value RawValue
}

// Section is an ordered mapping from option name to raw value.
type Section struct {
	Key     SectionKey
	Line    int // source line of the first header that opened this section
	Options []Option

	index map[string]int
}

// NewSection creates an empty section body for the given key.
func NewSection(key SectionKey, line int) *Section {
	return &Section{Key: key, Line: line, index: make(map[string]int)}
}

// Lookup returns the raw value for an option name.
func (s *Section) Lookup(name string) (RawValue, bool) {
	i, ok := s.index[name]
	if !ok {
		return RawValue{}, false
	}
	return s.Options[i].Value, true
}

// Set stores a raw value under the given option name, replacing any earlier
// assignment of the same name while keeping its original position.
func (s *Section) Set(name string, value RawValue) {
	if i, ok := s.index[name]; ok {
		s.Options[i].Value = value
		return
	}
	s.index[name] = len(s.Options)
	s.Options = append(s.Options, Option{Name: name, Value: value})
}

// Names returns the option names in declaration order.
func (s *Section) Names() []string {
	names := make([]string, len(s.Options))
	for i, opt := range s.Options {
		names[i] = opt.Name
	}
	return names
}

// Document is the parsed form of one spec file: an ordered collection of
// section bodies, at most one per distinct SectionKey. A Document is
// immutable once its loader returns it.
type Document struct {
	Sections []*Section

	index map[SectionKey]*Section
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{index: make(map[SectionKey]*Section)}
}

// Section returns the body for the given key, if declared.
func (d *Document) Section(key SectionKey) (*Section, bool) {
	s, ok := d.index[key]
	return s, ok
}

// EnsureSection returns the body for the given key, creating and appending
// an empty one if the key has not been seen yet.
func (d *Document) EnsureSection(key SectionKey, line int) *Section {
	if s, ok := d.index[key]; ok {
		return s
	}
	s := NewSection(key, line)
	d.index[key] = s
	d.Sections = append(d.Sections, s)
	return s
}

// Profiles returns the sorted set of profile names used anywhere in the
// document.
func (d *Document) Profiles() []string {
	seen := make(map[string]bool)
	for _, s := range d.Sections {
		if s.Key.Profile != "" {
			seen[s.Key.Profile] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
