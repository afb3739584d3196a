// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface implemented by concrete
// format front-ends.
//
// The `config.Document` is the single source of truth for the `resolve` and
// `fileset` packages: an ordered set of sections, each holding ordered raw
// option values, exactly as declared in the source text. The document carries
// no typing decisions; coercion happens downstream, once a profile has been
// resolved. Concrete loaders, such as the spec-file loader, live in separate
// packages.
package config
