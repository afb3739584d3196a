package resolve

import (
	"github.com/vk/packspec/internal/config"
	"github.com/vk/packspec/internal/value"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ResolvedConfig is the flattened, profile-resolved configuration. It is
// immutable once returned by Resolve; re-resolving with a different profile
// produces a new instance rather than patching this one.
type ResolvedConfig struct {
	profile  string
	sections []*section
	index    map[string]*section
}

// section is one flattened section body, options in declaration order with
// overlay-replaced values keeping their base position.
type section struct {
	name    string
	options []config.Option
	idx     map[string]int
}

func (s *section) set(name string, v config.RawValue) {
	if i, ok := s.idx[name]; ok {
		s.options[i].Value = v
		return
	}
	s.idx[name] = len(s.options)
	s.options = append(s.options, config.Option{Name: name, Value: v})
}

func (rc *ResolvedConfig) ensure(name string) *section {
	if s, ok := rc.index[name]; ok {
		return s
	}
	s := &section{name: name, idx: make(map[string]int)}
	rc.index[name] = s
	rc.sections = append(rc.sections, s)
	return s
}

// Profile returns the profile name this configuration was resolved for;
// empty for the base configuration.
func (rc *ResolvedConfig) Profile() string {
	return rc.profile
}

// Sections returns the flattened section names in declaration order.
func (rc *ResolvedConfig) Sections() []string {
	names := make([]string, len(rc.sections))
	for i, s := range rc.sections {
		names[i] = s.name
	}
	return names
}

// Options returns the option names of a section in declaration order.
func (rc *ResolvedConfig) Options(sectionName string) []string {
	s, ok := rc.index[sectionName]
	if !ok {
		return nil
	}
	names := make([]string, len(s.options))
	for i, opt := range s.options {
		names[i] = opt.Name
	}
	return names
}

// Raw returns the raw merged value of an option. The second result reports
// presence: an empty-but-present list-section yields (value, true) with zero
// elements, while an absent option yields (zero, false).
func (rc *ResolvedConfig) Raw(sectionName, option string) (config.RawValue, bool) {
	s, ok := rc.index[sectionName]
	if !ok {
		return config.RawValue{}, false
	}
	i, ok := s.idx[option]
	if !ok {
		return config.RawValue{}, false
	}
	return s.options[i].Value.Copy(), true
}

// Has reports whether an option is present, regardless of its value.
func (rc *ResolvedConfig) Has(sectionName, option string) bool {
	_, ok := rc.Raw(sectionName, option)
	return ok
}

// Lookup returns the canonical typed value of an option: a list of strings
// for list-section values, a plain string otherwise.
func (rc *ResolvedConfig) Lookup(sectionName, option string) (cty.Value, bool) {
	raw, ok := rc.Raw(sectionName, option)
	if !ok {
		return cty.NilVal, false
	}
	return value.Canonical(raw), true
}

// StringOr returns the option coerced to a string, or def when absent.
func (rc *ResolvedConfig) StringOr(sectionName, option, def string) (string, error) {
	raw, ok := rc.Raw(sectionName, option)
	if !ok {
		return def, nil
	}
	v, err := value.Coerce(qualify(sectionName, option), raw, value.KindString)
	if err != nil {
		return "", err
	}
	return v.AsString(), nil
}

// IntOr returns the option coerced to an integer, or def when absent.
func (rc *ResolvedConfig) IntOr(sectionName, option string, def int64) (int64, error) {
	raw, ok := rc.Raw(sectionName, option)
	if !ok {
		return def, nil
	}
	v, err := value.Coerce(qualify(sectionName, option), raw, value.KindInt)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := gocty.FromCtyValue(v, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// BoolOr returns the option coerced to a boolean, or def when absent.
func (rc *ResolvedConfig) BoolOr(sectionName, option string, def bool) (bool, error) {
	raw, ok := rc.Raw(sectionName, option)
	if !ok {
		return def, nil
	}
	v, err := value.Coerce(qualify(sectionName, option), raw, value.KindBool)
	if err != nil {
		return false, err
	}
	return v.True(), nil
}

// ListOr returns the option coerced to an ordered string list, or def when
// absent. A present-but-empty list-section returns an empty slice, not def:
// empty and absent stay distinguishable for defaulting decisions.
func (rc *ResolvedConfig) ListOr(sectionName, option string, def []string) ([]string, error) {
	raw, ok := rc.Raw(sectionName, option)
	if !ok {
		return def, nil
	}
	v, err := value.Coerce(qualify(sectionName, option), raw, value.KindList)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, v.LengthInt())
	if err := gocty.FromCtyValue(v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func qualify(sectionName, option string) string {
	return sectionName + "." + option
}
