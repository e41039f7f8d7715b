// Package operation extracts named operation definitions from parsed GraphQL documents.
package operation

import (
	"context"
	"fmt"

	"github.com/99designs/gqlgen/codegen/templates"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/apollowrap/internal/log"
)

// Descriptor is the normalized form of one named operation definition.
type Descriptor struct {
	Name          string
	NameUppercase string
	Kind          ast.Operation
	HasVariables  bool
}

func NewDescriptor(op *ast.OperationDefinition) *Descriptor {
	return &Descriptor{
		Name:          op.Name,
		NameUppercase: templates.UcFirst(op.Name),
		Kind:          op.Operation,
		HasVariables:  len(op.VariableDefinitions) != 0,
	}
}

// Extract returns a descriptor for every named operation in docs, in document order.
// nil documents, fragments and anonymous operations contribute nothing.
func Extract(ctx context.Context, docs []*ast.QueryDocument) []*Descriptor {
	logger := log.Named(ctx, "operation")

	var descs []*Descriptor
	for _, doc := range docs {
		if doc == nil {
			continue
		}

		for _, op := range doc.Operations {
			if op == nil {
				continue
			}
			if op.Name == "" {
				logger.V(1).Info(
					"skip anonymous operation",
					"operation", op.Operation,
					"position", positionOf(op.Position),
				)
				continue
			}

			descs = append(descs, NewDescriptor(op))
		}
	}

	return descs
}

func positionOf(pos *ast.Position) string {
	if pos == nil {
		return ""
	}
	var name string
	if pos.Src != nil {
		name = pos.Src.Name
	}
	return fmt.Sprintf("%s:%d:%d", name, pos.Line, pos.Column)
}
