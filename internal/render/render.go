// Package render turns operation descriptors into Apollo client wrapper declarations.
package render

import (
	"bytes"
	"context"

	"github.com/99designs/gqlgen/codegen/templates"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/apollowrap/internal/decl"
	"github.com/vvakame/apollowrap/internal/log"
	"github.com/vvakame/apollowrap/internal/operation"
)

const (
	// TypeImport imports the option types every wrapper signature refers to.
	TypeImport = `import type { QueryBaseOptions, MutationOptions, SubscriptionOptions } from "@apollo/client";`

	// NoVariablesType is used as the variables type of operations without variable definitions.
	NoVariablesType = "never"

	documentSuffix  = "Document"
	variablesSuffix = "Variables"
	optionsParam    = "opts"
	variablesField  = "variables"
)

type kindSpec struct {
	funcSuffix  string
	optionsType string
	// optionsWithResult is true when the options type takes the result type before the variables type.
	optionsWithResult bool
	method            string
	documentField     string
}

var kindSpecs = map[ast.Operation]*kindSpec{
	ast.Query: {
		funcSuffix:    "ClientQuery",
		optionsType:   "QueryBaseOptions",
		method:        "query",
		documentField: "query",
	},
	ast.Mutation: {
		funcSuffix:        "ClientMutation",
		optionsType:       "MutationOptions",
		optionsWithResult: true,
		method:            "mutate",
		documentField:     "mutation",
	},
	ast.Subscription: {
		funcSuffix:    "ClientSubscribe",
		optionsType:   "SubscriptionOptions",
		method:        "subscribe",
		documentField: "query",
	},
}

// FuncDecl builds the wrapper declaration for desc.
// It reports false for an operation kind it has no wrapper for.
func FuncDecl(desc *operation.Descriptor, clientName string) (*decl.FuncDecl, bool) {
	ks, ok := kindSpecs[desc.Kind]
	if !ok {
		return nil, false
	}

	typeBase := desc.NameUppercase + templates.UcFirst(string(desc.Kind))
	varsType := NoVariablesType
	if desc.HasVariables {
		varsType = typeBase + variablesSuffix
	}

	optionsArgs := []decl.TypeExpr{&decl.TypeRef{Name: varsType}}
	if ks.optionsWithResult {
		optionsArgs = append([]decl.TypeExpr{&decl.TypeRef{Name: typeBase}}, optionsArgs...)
	}

	optsType := &decl.IntersectionType{
		Types: []decl.TypeExpr{
			&decl.TypeRef{
				Name: "Omit",
				Args: []decl.TypeExpr{
					&decl.TypeRef{Name: ks.optionsType, Args: optionsArgs},
					&decl.StringLiteralType{Value: ks.documentField},
				},
			},
			&decl.ObjectType{
				Fields: []*decl.FieldType{
					{Name: variablesField, Type: &decl.TypeRef{Name: varsType}},
				},
			},
		},
	}

	call := &decl.CallExpr{
		Callee: &decl.Ident{Name: clientName + "." + ks.method},
		TypeArgs: []decl.TypeExpr{
			&decl.TypeRef{Name: typeBase},
			&decl.TypeRef{Name: varsType},
		},
		Args: []decl.Expr{
			&decl.ObjectLit{
				Entries: []decl.ObjectEntry{
					&decl.Property{Key: ks.documentField, Value: &decl.Ident{Name: desc.NameUppercase + documentSuffix}},
					&decl.Spread{Value: &decl.Ident{Name: optionsParam}},
				},
			},
		},
	}

	return &decl.FuncDecl{
		Name:   desc.Name + ks.funcSuffix,
		Params: []*decl.Param{{Name: optionsParam, Type: optsType}},
		Body:   []decl.Stmt{&decl.ReturnStmt{Value: call}},
	}, true
}

// FuncDecls builds declarations for descs, dropping operation kinds without a wrapper.
func FuncDecls(ctx context.Context, descs []*operation.Descriptor, clientName string) []*decl.FuncDecl {
	logger := log.Named(ctx, "render")

	decls := make([]*decl.FuncDecl, 0, len(descs))
	for _, desc := range descs {
		d, ok := FuncDecl(desc, clientName)
		if !ok {
			logger.V(1).Info("skip unsupported operation kind", "name", desc.Name, "kind", desc.Kind)
			continue
		}
		decls = append(decls, d)
	}

	return decls
}

// Content renders one wrapper per line for descs.
func Content(ctx context.Context, descs []*operation.Descriptor, clientName string) string {
	var buf bytes.Buffer
	decl.NewFormatter(&buf).FormatFuncDecls(FuncDecls(ctx, descs, clientName))

	return buf.String()
}
