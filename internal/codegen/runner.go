package codegen

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/vvakame/apollowrap/internal/log"
	"github.com/vvakame/apollowrap/plugin"
)

// Runner generates every target of a configuration that lists the wrapper plugin.
type Runner struct {
	Fs     afero.Fs
	Config *Config

	// DryRun receives the generated files instead of the filesystem when non-nil.
	DryRun io.Writer
}

// Result describes one generated target.
type Result struct {
	Path string
	Body string
}

// Validate checks the wrapper plugin configuration of every target using it.
func (r *Runner) Validate(ctx context.Context) error {
	logger := log.Named(ctx, "codegen")

	var result *multierror.Error
	for _, path := range r.Config.TargetPaths() {
		target := r.Config.Generates[path]
		if _, ok := target.Lookup(plugin.Name); !ok {
			logger.V(1).Info("skip target without wrapper plugin", "target", path)
			continue
		}

		if err := validateTarget(target); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
		}
	}

	return result.ErrorOrNil()
}

func validateTarget(target *Target) error {
	cfg, err := target.PluginConfig()
	if err != nil {
		return err
	}
	return plugin.Validate(cfg, target.Entries())
}

// Generate renders every target without writing anything.
func (r *Runner) Generate(ctx context.Context) ([]*Result, error) {
	logger := log.Named(ctx, "codegen")

	schema, err := LoadSchema(ctx, r.Fs, r.Config)
	if err != nil {
		return nil, err
	}
	docs, err := LoadDocuments(ctx, r.Fs, r.Config, schema)
	if err != nil {
		return nil, err
	}

	var results []*Result
	var merr *multierror.Error
	for _, path := range r.Config.TargetPaths() {
		target := r.Config.Generates[path]
		if _, ok := target.Lookup(plugin.Name); !ok {
			logger.V(1).Info("skip target without wrapper plugin", "target", path)
			continue
		}

		cfg, err := target.PluginConfig()
		if err == nil {
			err = plugin.Validate(cfg, target.Entries())
		}
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", path, err))
			continue
		}

		out := plugin.Generate(ctx, schema, docs, cfg)
		results = append(results, &Result{
			Path: r.Config.Resolve(path),
			Body: Join(out),
		})
	}

	return results, merr.ErrorOrNil()
}

// Run generates every target and writes them out.
// Targets that fail validation are reported together after the rest are written.
func (r *Runner) Run(ctx context.Context) error {
	logger := log.Named(ctx, "codegen")

	results, genErr := r.Generate(ctx)

	var merr *multierror.Error
	if genErr != nil {
		merr = multierror.Append(merr, genErr)
	}
	for _, result := range results {
		if err := r.write(result); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", result.Path, err))
			continue
		}
		logger.Info("generated", "path", result.Path)
	}

	return merr.ErrorOrNil()
}

func (r *Runner) write(result *Result) error {
	if r.DryRun != nil {
		_, err := fmt.Fprintf(r.DryRun, "// %s\n%s", result.Path, result.Body)
		return err
	}

	if err := r.Fs.MkdirAll(filepath.Dir(result.Path), 0755); err != nil {
		return err
	}
	return afero.WriteFile(r.Fs, result.Path, []byte(result.Body), 0644)
}

// Join lays out a plugin output the way it is written to disk.
func Join(out *plugin.Output) string {
	return strings.Join(out.Prepend, "\n") + "\n" + out.Content
}
