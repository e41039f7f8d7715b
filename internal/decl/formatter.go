package decl

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Formatter prints declarations as TypeScript, one declaration per line.
type Formatter interface {
	FormatFuncDecl(decl *FuncDecl)
	FormatFuncDecls(decls []*FuncDecl)
}

func NewFormatter(w io.Writer) Formatter {
	return &formatter{writer: w}
}

type formatter struct {
	writer io.Writer

	padNext bool
}

func (f *formatter) writeString(s string) {
	_, _ = f.writer.Write([]byte(s))
}

func (f *formatter) WriteNewline() *formatter {
	f.writeString("\n")
	f.padNext = false

	return f
}

func (f *formatter) WriteWord(word string) *formatter {
	if f.padNext {
		f.writeString(" ")
	}
	f.writeString(strings.TrimSpace(word))
	f.padNext = true

	return f
}

func (f *formatter) NoPadding() *formatter {
	f.padNext = false

	return f
}

// attach writes punct directly after the previous token.
func (f *formatter) attach(punct string) *formatter {
	return f.NoPadding().WriteWord(punct)
}

// open writes punct with no space on either side.
func (f *formatter) open(punct string) *formatter {
	return f.NoPadding().WriteWord(punct).NoPadding()
}

func (f *formatter) FormatFuncDecls(decls []*FuncDecl) {
	for _, decl := range decls {
		if decl == nil {
			continue
		}

		f.FormatFuncDecl(decl)
		f.WriteNewline()
	}
}

func (f *formatter) FormatFuncDecl(decl *FuncDecl) {
	f.WriteWord("export").WriteWord("const").WriteWord(decl.Name).WriteWord("=")

	f.WriteWord("(").NoPadding()
	for i, param := range decl.Params {
		if i != 0 {
			f.attach(",")
		}
		f.WriteWord(param.Name).attach(":")
		f.FormatTypeExpr(param.Type)
	}
	f.attach(")")

	f.WriteWord("=>").WriteWord("{")
	for _, stmt := range decl.Body {
		f.FormatStmt(stmt)
	}
	f.WriteWord("}")
}

func (f *formatter) FormatTypeExpr(typ TypeExpr) {
	switch typ := typ.(type) {
	case *TypeRef:
		f.WriteWord(typ.Name)
		if len(typ.Args) != 0 {
			f.open("<")
			f.formatTypeList(typ.Args)
			f.attach(">")
		}

	case *StringLiteralType:
		f.WriteWord(strconv.Quote(typ.Value))

	case *IntersectionType:
		for i, member := range typ.Types {
			if i != 0 {
				f.WriteWord("&")
			}
			f.FormatTypeExpr(member)
		}

	case *ObjectType:
		f.WriteWord("{")
		for i, field := range typ.Fields {
			if i != 0 {
				f.attach(",")
			}
			f.WriteWord(field.Name).attach(":")
			f.FormatTypeExpr(field.Type)
		}
		f.WriteWord("}")

	default:
		panic(fmt.Sprintf("unknown type: %T", typ))
	}
}

func (f *formatter) formatTypeList(types []TypeExpr) {
	for i, typ := range types {
		if i != 0 {
			f.attach(",")
		}
		f.FormatTypeExpr(typ)
	}
}

func (f *formatter) FormatStmt(stmt Stmt) {
	switch stmt := stmt.(type) {
	case *ReturnStmt:
		f.WriteWord("return")
		if stmt.Value != nil {
			f.FormatExpr(stmt.Value)
		}

	default:
		panic(fmt.Sprintf("unknown type: %T", stmt))
	}
}

func (f *formatter) FormatExpr(expr Expr) {
	switch expr := expr.(type) {
	case *Ident:
		f.WriteWord(expr.Name)

	case *CallExpr:
		f.FormatExpr(expr.Callee)
		if len(expr.TypeArgs) != 0 {
			f.open("<")
			f.formatTypeList(expr.TypeArgs)
			f.attach(">")
		}
		f.open("(")
		for i, arg := range expr.Args {
			if i != 0 {
				f.attach(",")
			}
			f.FormatExpr(arg)
		}
		f.attach(")")

	case *ObjectLit:
		f.WriteWord("{")
		for i, entry := range expr.Entries {
			if i != 0 {
				f.attach(",")
			}
			f.FormatObjectEntry(entry)
		}
		f.WriteWord("}")

	default:
		panic(fmt.Sprintf("unknown type: %T", expr))
	}
}

func (f *formatter) FormatObjectEntry(entry ObjectEntry) {
	switch entry := entry.(type) {
	case *Property:
		f.WriteWord(entry.Key).attach(":")
		f.FormatExpr(entry.Value)

	case *Spread:
		f.WriteWord("...").NoPadding()
		f.FormatExpr(entry.Value)

	default:
		panic(fmt.Sprintf("unknown type: %T", entry))
	}
}
