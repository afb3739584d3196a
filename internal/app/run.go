package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/packspec/internal/ctxlog"
	"github.com/vk/packspec/internal/fileset"
	"github.com/vk/packspec/internal/resolve"
)

// Run executes the main application logic: load the spec, resolve the
// requested profile, then emit whichever view the configuration asks for.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	doc, err := a.loader.Load(ctx, a.config.SpecPath)
	if err != nil {
		return fmt.Errorf("failed to load spec: %w", err)
	}

	if a.config.ListProfiles {
		for _, name := range doc.Profiles() {
			fmt.Fprintln(a.outW, name)
		}
		return nil
	}

	resolved := resolve.Resolve(doc, a.config.Profile)
	a.logger.Debug("Profile resolved.", "profile", a.config.Profile, "sections", len(resolved.Sections()))

	if a.config.ListFiles {
		return a.printFiles(ctx, resolved)
	}
	return a.emit(resolved)
}

// printFiles runs the file-set selector against the source root and prints
// one selected path per line.
func (a *App) printFiles(ctx context.Context, resolved *resolve.ResolvedConfig) error {
	rules, err := fileset.RulesFrom(resolved)
	if err != nil {
		return err
	}

	root, err := a.selectionRoot(resolved)
	if err != nil {
		return err
	}
	a.logger.Debug("Selecting files.", "root", root)

	result, err := fileset.Select(ctx, root, rules)
	if err != nil {
		return fmt.Errorf("file selection failed: %w", err)
	}
	for _, p := range result.Files {
		fmt.Fprintln(a.outW, p)
	}
	return nil
}

// selectionRoot determines the file-selection root: an explicit override
// wins, otherwise source.dir resolves relative to the spec file's directory.
func (a *App) selectionRoot(resolved *resolve.ResolvedConfig) (string, error) {
	if a.config.Root != "" {
		return a.config.Root, nil
	}
	dir, err := resolved.StringOr(fileset.Section, fileset.OptionDir, ".")
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(a.config.SpecPath), dir), nil
}
