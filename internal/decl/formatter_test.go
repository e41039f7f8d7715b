package decl

import (
	"bytes"
	"testing"
)

func TestFormatter(t *testing.T) {
	tests := []struct {
		name string
		decl *FuncDecl
		want string
	}{
		{
			name: "blank",
			decl: &FuncDecl{Name: "noop"},
			want: `export const noop = () => { }`,
		},
		{
			name: "return identifier",
			decl: &FuncDecl{
				Name: "identity",
				Params: []*Param{
					{Name: "v", Type: &TypeRef{Name: "string"}},
				},
				Body: []Stmt{
					&ReturnStmt{Value: &Ident{Name: "v"}},
				},
			},
			want: `export const identity = (v: string) => { return v }`,
		},
		{
			name: "multiple params",
			decl: &FuncDecl{
				Name: "pair",
				Params: []*Param{
					{Name: "a", Type: &TypeRef{Name: "number"}},
					{Name: "b", Type: &TypeRef{Name: "Array", Args: []TypeExpr{&TypeRef{Name: "number"}}}},
				},
				Body: []Stmt{&ReturnStmt{}},
			},
			want: `export const pair = (a: number, b: Array<number>) => { return }`,
		},
		{
			name: "generic call with object argument",
			decl: &FuncDecl{
				Name: "getUserClientQuery",
				Params: []*Param{
					{
						Name: "opts",
						Type: &IntersectionType{Types: []TypeExpr{
							&TypeRef{Name: "Omit", Args: []TypeExpr{
								&TypeRef{Name: "QueryBaseOptions", Args: []TypeExpr{&TypeRef{Name: "GetUserQueryVariables"}}},
								&StringLiteralType{Value: "query"},
							}},
							&ObjectType{Fields: []*FieldType{
								{Name: "variables", Type: &TypeRef{Name: "GetUserQueryVariables"}},
							}},
						}},
					},
				},
				Body: []Stmt{
					&ReturnStmt{Value: &CallExpr{
						Callee:   &Ident{Name: "client.query"},
						TypeArgs: []TypeExpr{&TypeRef{Name: "GetUserQuery"}, &TypeRef{Name: "GetUserQueryVariables"}},
						Args: []Expr{&ObjectLit{Entries: []ObjectEntry{
							&Property{Key: "query", Value: &Ident{Name: "GetUserDocument"}},
							&Spread{Value: &Ident{Name: "opts"}},
						}}},
					}},
				},
			},
			want: `export const getUserClientQuery = (opts: Omit<QueryBaseOptions<GetUserQueryVariables>, "query"> & { variables: GetUserQueryVariables }) => { return client.query<GetUserQuery, GetUserQueryVariables>({ query: GetUserDocument, ...opts }) }`,
		},
		{
			name: "call without arguments",
			decl: &FuncDecl{
				Name: "reset",
				Body: []Stmt{
					&ReturnStmt{Value: &CallExpr{Callee: &Ident{Name: "client.resetStore"}}},
				},
			},
			want: `export const reset = () => { return client.resetStore() }`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &bytes.Buffer{}
			f := NewFormatter(w)
			f.FormatFuncDecl(tt.decl)

			if got := w.String(); got != tt.want {
				t.Errorf("got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatFuncDecls(t *testing.T) {
	decls := []*FuncDecl{
		{Name: "a"},
		nil,
		{Name: "b"},
	}

	w := &bytes.Buffer{}
	NewFormatter(w).FormatFuncDecls(decls)

	want := "export const a = () => { }\nexport const b = () => { }\n"
	if got := w.String(); got != want {
		t.Errorf("got = %q, want %q", got, want)
	}

	w.Reset()
	NewFormatter(w).FormatFuncDecls(nil)
	if got := w.String(); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
