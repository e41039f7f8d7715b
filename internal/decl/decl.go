// Package decl is a small TypeScript declaration IR for generated wrapper functions.
package decl

// FuncDecl is an exported arrow function constant:
//
//	export const Name = (Params) => { Body }
type FuncDecl struct {
	Name   string
	Params []*Param
	Body   []Stmt
}

type Param struct {
	Name string
	Type TypeExpr
}

type TypeExpr interface {
	isTypeExpr()
}

var _ TypeExpr = (*TypeRef)(nil)
var _ TypeExpr = (*StringLiteralType)(nil)
var _ TypeExpr = (*IntersectionType)(nil)
var _ TypeExpr = (*ObjectType)(nil)

// TypeRef is a named type with optional type arguments, e.g. Omit<A, "b">.
type TypeRef struct {
	Name string
	Args []TypeExpr // optional
}

func (t *TypeRef) isTypeExpr() {}

// StringLiteralType is a quoted string used as a type, e.g. "query" in Omit<T, "query">.
type StringLiteralType struct {
	Value string
}

func (t *StringLiteralType) isTypeExpr() {}

// IntersectionType joins Types with &.
type IntersectionType struct {
	Types []TypeExpr
}

func (t *IntersectionType) isTypeExpr() {}

// ObjectType is an inline object type literal, e.g. { variables: V }.
type ObjectType struct {
	Fields []*FieldType
}

func (t *ObjectType) isTypeExpr() {}

type FieldType struct {
	Name string
	Type TypeExpr
}

type Stmt interface {
	isStmt()
}

var _ Stmt = (*ReturnStmt)(nil)

type ReturnStmt struct {
	Value Expr
}

func (s *ReturnStmt) isStmt() {}

type Expr interface {
	isExpr()
}

var _ Expr = (*Ident)(nil)
var _ Expr = (*CallExpr)(nil)
var _ Expr = (*ObjectLit)(nil)

// Ident is an identifier or a dotted member reference such as client.query.
type Ident struct {
	Name string
}

func (e *Ident) isExpr() {}

// CallExpr is Callee<TypeArgs>(Args). The type argument list is omitted when empty.
type CallExpr struct {
	Callee   Expr
	TypeArgs []TypeExpr // optional
	Args     []Expr
}

func (e *CallExpr) isExpr() {}

type ObjectLit struct {
	Entries []ObjectEntry
}

func (e *ObjectLit) isExpr() {}

type ObjectEntry interface {
	isObjectEntry()
}

var _ ObjectEntry = (*Property)(nil)
var _ ObjectEntry = (*Spread)(nil)

type Property struct {
	Key   string
	Value Expr
}

func (e *Property) isObjectEntry() {}

// Spread copies the properties of Value into the enclosing object literal: ...Value
type Spread struct {
	Value Expr
}

func (e *Spread) isObjectEntry() {}
