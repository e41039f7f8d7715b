package codegen

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/afero"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"
	"github.com/vvakame/apollowrap/internal/log"
	"github.com/vvakame/apollowrap/plugin"
)

// expandGlobs returns every file matching patterns, deduplicated and sorted.
func expandGlobs(fs afero.Fs, resolve func(string) string, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := afero.Glob(fs, resolve(pattern))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%s: no files matched", pattern)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}
	sort.Strings(files)

	return files, nil
}

// LoadSchema reads and validates the schema files matched by cfg.Schema.
// It returns nil without error when no schema is configured.
func LoadSchema(ctx context.Context, fs afero.Fs, cfg *Config) (*ast.Schema, error) {
	if len(cfg.Schema) == 0 {
		return nil, nil
	}

	files, err := expandGlobs(fs, cfg.Resolve, cfg.Schema)
	if err != nil {
		return nil, err
	}

	sources := make([]*ast.Source, 0, len(files))
	for _, file := range files {
		b, err := afero.ReadFile(fs, file)
		if err != nil {
			return nil, err
		}
		sources = append(sources, &ast.Source{Name: file, Input: string(b)})
	}

	log.Named(ctx, "codegen").V(1).Info("load schema", "files", files)

	schema, gErr := gqlparser.LoadSchema(sources...)
	if gErr != nil {
		return nil, gErr
	}

	return schema, nil
}

// LoadDocuments parses the operation files matched by cfg.Documents.
// Operation names must be unique across all files. When schema is non-nil the
// operations and fragments of every file are validated together against it.
func LoadDocuments(ctx context.Context, fs afero.Fs, cfg *Config, schema *ast.Schema) ([]*plugin.Document, error) {
	logger := log.Named(ctx, "codegen")

	files, err := expandGlobs(fs, cfg.Resolve, cfg.Documents)
	if err != nil {
		return nil, err
	}

	docs := make([]*plugin.Document, 0, len(files))
	merged := &ast.QueryDocument{}
	for _, file := range files {
		b, err := afero.ReadFile(fs, file)
		if err != nil {
			return nil, err
		}

		queryDoc, gErr := parser.ParseQuery(&ast.Source{Name: file, Input: string(b)})
		if gErr != nil {
			return nil, gErr
		}

		logger.V(1).Info("load document", "file", file, "operations", len(queryDoc.Operations), "fragments", len(queryDoc.Fragments))
		docs = append(docs, &plugin.Document{Location: file, Document: queryDoc})
		merged.Operations = append(merged.Operations, queryDoc.Operations...)
		merged.Fragments = append(merged.Fragments, queryDoc.Fragments...)
	}

	if gErrs := checkUniqueOperationNames(merged); len(gErrs) != 0 {
		return nil, gErrs
	}
	if schema != nil {
		gErrs := validator.Validate(schema, merged)
		if len(gErrs) != 0 {
			return nil, gErrs
		}
	}

	return docs, nil
}

// checkUniqueOperationNames reports named operations defined more than once.
func checkUniqueOperationNames(doc *ast.QueryDocument) gqlerror.List {
	var gErrs gqlerror.List
	seen := make(map[string]bool)
	for _, op := range doc.Operations {
		if op.Name == "" {
			continue
		}
		if seen[op.Name] {
			gErrs = append(gErrs, gqlerror.ErrorPosf(op.Position, `There can be only one operation named "%s".`, op.Name))
			continue
		}
		seen[op.Name] = true
	}
	return gErrs
}
