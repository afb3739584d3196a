// Package resolve merges a parsed document into the final, flattened
// configuration for one requested build profile.
//
// Resolution is a two-step merge: the base (profile-less) sections are laid
// down first, then every section carrying the requested profile is overlaid
// onto its base counterpart. Each option present in an overlay replaces the
// base value entirely; list values are never merged element-wise. Sections
// that exist only under the profile layer onto an empty base. Requesting a
// profile the document never mentions is not an error and yields the
// unmodified base configuration.
//
// Resolve is pure: identical (document, profile) inputs produce identical
// results, every call allocates a fresh ResolvedConfig, and the returned
// value never aliases the document's internals.
package resolve

import (
	"github.com/vk/packspec/internal/config"
)

// Resolve builds the flattened configuration for the requested profile. An
// empty profile name resolves the base configuration alone.
func Resolve(doc *config.Document, profile string) *ResolvedConfig {
	rc := &ResolvedConfig{
		profile: profile,
		index:   make(map[string]*section),
	}

	for _, s := range doc.Sections {
		if s.Key.Profile != "" {
			continue
		}
		rc.overlay(s)
	}

	if profile != "" {
		for _, s := range doc.Sections {
			if s.Key.Profile != profile {
				continue
			}
			rc.overlay(s)
		}
	}

	return rc
}

// overlay copies every option of src onto the target section, replacing
// whole values and creating the section if it has no base counterpart.
func (rc *ResolvedConfig) overlay(src *config.Section) {
	target := rc.ensure(src.Key.Name)
	for _, opt := range src.Options {
		target.set(opt.Name, opt.Value.Copy())
	}
}
