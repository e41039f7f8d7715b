// Package plugin generates typed Apollo client wrapper functions for GraphQL operations.
//
// For every named operation it emits one exported function that forwards to the
// configured client's query, mutate or subscribe method with the operation's document
// injected. Result, variables and document symbols are referenced by name and are
// expected to come from the typescript and typescript-operations companion plugins.
package plugin

import (
	"context"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/apollowrap/internal/log"
	"github.com/vvakame/apollowrap/internal/operation"
	"github.com/vvakame/apollowrap/internal/render"
)

// Name is the plugin name used in codegen configuration files.
const Name = "apollo-client-wrappers"

const DefaultClientName = "client"

type Config struct {
	// ApolloClientImport is emitted verbatim and must bring the client identifier into scope.
	ApolloClientImport string `yaml:"apolloClientImport" json:"apolloClientImport"`
	// ApolloClientName is the identifier wrappers call. Defaults to DefaultClientName.
	ApolloClientName string `yaml:"apolloClientName,omitempty" json:"apolloClientName,omitempty"`
}

func (cfg *Config) ClientName() string {
	if cfg == nil || cfg.ApolloClientName == "" {
		return DefaultClientName
	}
	return cfg.ApolloClientName
}

// Document is one parsed operations file. A nil Document has no definitions.
type Document struct {
	Location string
	Document *ast.QueryDocument
}

// Output is the generated unit handed back to the pipeline.
type Output struct {
	// Prepend holds the client import line and the option type import line.
	Prepend []string
	// Content holds one wrapper declaration per line.
	Content string
}

// Generate renders wrappers for every named operation in docs.
// The schema is accepted for pipeline symmetry and is not consulted.
func Generate(ctx context.Context, _ *ast.Schema, docs []*Document, cfg *Config) *Output {
	logger := log.Named(ctx, Name)

	queryDocs := make([]*ast.QueryDocument, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		queryDocs = append(queryDocs, doc.Document)
	}

	descs := operation.Extract(ctx, queryDocs)
	logger.V(1).Info("operations extracted", "documents", len(queryDocs), "operations", len(descs))

	var clientImport string
	if cfg != nil {
		clientImport = cfg.ApolloClientImport
	}

	return &Output{
		Prepend: []string{clientImport, render.TypeImport},
		Content: render.Content(ctx, descs, cfg.ClientName()),
	}
}
