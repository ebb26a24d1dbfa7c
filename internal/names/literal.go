package names

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strconv"
	"text/template"
)

// LiteralOptions controls the generated Go source file.
type LiteralOptions struct {
	Package    string
	Identifier string
	// Property is only used in the generated doc comment.
	Property string
}

func (o LiteralOptions) withDefaults() LiteralOptions {
	if o.Package == "" {
		o.Package = "names"
	}
	if o.Identifier == "" {
		o.Identifier = "Names"
	}
	if o.Property == "" {
		o.Property = DefaultProperty
	}
	return o
}

var literalTemplate = template.Must(template.New("literal").
	Funcs(template.FuncMap{"quote": strconv.Quote}).
	Parse(`// Code generated by cartox extract. DO NOT EDIT.

package {{.Package}}

// {{.Identifier}} lists the unique {{.Property}} values in first-seen order.
var {{.Identifier}} = []string{ {{- if .Names}}
{{range .Names}}	{{quote .}},
{{end}}{{end}}}
`))

// SerializeLiteral renders the list as a gofmt-formatted Go source file
// declaring a single []string variable.
func SerializeLiteral(l List, opts LiteralOptions) ([]byte, error) {
	opts = opts.withDefaults()
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("%w: invalid package name %q", ErrUnencodable, opts.Package)
	}
	if !token.IsIdentifier(opts.Identifier) {
		return nil, fmt.Errorf("%w: invalid identifier %q", ErrUnencodable, opts.Identifier)
	}

	var buf bytes.Buffer
	err := literalTemplate.Execute(&buf, struct {
		LiteralOptions
		Names List
	}{opts, l})
	if err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnencodable, err)
	}

	return src, nil
}

// ParseLiteral reads back the first []string variable declared in a file
// produced by SerializeLiteral.
func ParseLiteral(src []byte) (List, error) {
	file, err := parser.ParseFile(token.NewFileSet(), "", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok || len(vs.Values) != 1 {
				continue
			}
			lit, ok := vs.Values[0].(*ast.CompositeLit)
			if !ok {
				continue
			}
			return literalStrings(lit)
		}
	}

	return nil, errors.New("no []string variable declared")
}

func literalStrings(lit *ast.CompositeLit) (List, error) {
	out := make(List, 0, len(lit.Elts))
	for _, elt := range lit.Elts {
		basic, ok := elt.(*ast.BasicLit)
		if !ok || basic.Kind != token.STRING {
			return nil, fmt.Errorf("unexpected element %T", elt)
		}
		s, err := strconv.Unquote(basic.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}
