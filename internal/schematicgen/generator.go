package schematicgen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// Directive marks a type for generation when no type names are given.
const Directive = "//schematic:derive"

// DefaultOutput is the file name generated code is written to.
const DefaultOutput = "schematic_gen.go"

// DefaultImport is the import path of the schematic package referenced by
// generated code.
const DefaultImport = "github.com/roach88/schematica/internal/schematic"

// GenError reports why a type cannot be generated.
type GenError struct {
	Type    string
	Message string
	Pos     token.Position
}

func (e *GenError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename, e.Pos.Line, e.Pos.Column,
			e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

type config struct {
	importPath string
	output     string
}

// Option configures the generator.
type Option func(*config)

// WithImport overrides the import path of the schematic package.
func WithImport(path string) Option {
	return func(c *config) {
		c.importPath = path
	}
}

// WithOutput sets the output file name, relative to the package directory.
// The file is also excluded from parsing.
func WithOutput(name string) Option {
	return func(c *config) {
		c.output = name
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		importPath: DefaultImport,
		output:     DefaultOutput,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result is the generated source for one package. Path is set once the
// source has been written by WriteFile.
type Result struct {
	Package string
	Types   []string
	Source  []byte
	Path    string
}

// target is one type to generate for.
type target struct {
	name       string
	typeParams []string
	fields     []string
}

// Generate parses the non-test Go files in dir and returns generated source
// for the named types. With no names, every type carrying Directive is used.
func Generate(dir string, typeNames []string, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)

	fset := token.NewFileSet()
	files, err := parsePackage(fset, dir, cfg.output)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no Go files in %s", dir)
	}

	specs := collectTypes(files)
	if len(typeNames) == 0 {
		typeNames = directiveTypes(files)
		if len(typeNames) == 0 {
			return nil, fmt.Errorf("no types in %s carry %s", dir, Directive)
		}
	}

	targets := make([]target, 0, len(typeNames))
	for _, name := range typeNames {
		spec, ok := specs[name]
		if !ok {
			return nil, &GenError{Type: name, Message: "type not found"}
		}
		tg, err := buildTarget(fset, spec)
		if err != nil {
			return nil, err
		}
		targets = append(targets, tg)
	}

	src, err := render(files[0].Name.Name, cfg.importPath, targets)
	if err != nil {
		return nil, err
	}
	return &Result{
		Package: files[0].Name.Name,
		Types:   typeNames,
		Source:  src,
	}, nil
}

// WriteFile runs Generate and writes the result into dir. Nothing is written
// when generation fails.
func WriteFile(dir string, typeNames []string, opts ...Option) (*Result, error) {
	res, err := Generate(dir, typeNames, opts...)
	if err != nil {
		return nil, err
	}
	out := filepath.Join(dir, newConfig(opts).output)
	if err := os.WriteFile(out, res.Source, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", out, err)
	}
	res.Path = out
	return res, nil
}

func parsePackage(fset *token.FileSet, dir, output string) ([]*ast.File, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)

	var files []*ast.File
	for _, path := range paths {
		base := filepath.Base(path)
		if strings.HasSuffix(base, "_test.go") || base == output {
			continue
		}
		f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		files = append(files, f)
	}
	return files, nil
}

func collectTypes(files []*ast.File) map[string]*ast.TypeSpec {
	specs := make(map[string]*ast.TypeSpec)
	for _, f := range files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, s := range gd.Specs {
				ts := s.(*ast.TypeSpec)
				specs[ts.Name.Name] = ts
			}
		}
	}
	return specs
}

// directiveTypes returns the types whose doc comment carries Directive, in
// file then declaration order.
func directiveTypes(files []*ast.File) []string {
	var names []string
	for _, f := range files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, s := range gd.Specs {
				ts := s.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				if hasDirective(doc) {
					names = append(names, ts.Name.Name)
				}
			}
		}
	}
	return names
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == Directive {
			return true
		}
	}
	return false
}

func buildTarget(fset *token.FileSet, spec *ast.TypeSpec) (target, error) {
	name := spec.Name.Name
	refuse := func(msg string) (target, error) {
		return target{}, &GenError{Type: name, Message: msg, Pos: fset.Position(spec.Pos())}
	}

	if spec.Assign.IsValid() {
		return refuse("type aliases cannot be generated; generate for the aliased type")
	}

	var st *ast.StructType
	switch t := spec.Type.(type) {
	case *ast.StructType:
		st = t
	case *ast.InterfaceType:
		return refuse("interface types are sum shapes and cannot be composed field by field")
	default:
		return refuse("only struct types can be composed field by field")
	}

	tg := target{name: name}
	if spec.TypeParams != nil {
		for _, field := range spec.TypeParams.List {
			for _, n := range field.Names {
				tg.typeParams = append(tg.typeParams, n.Name)
			}
		}
	}

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			embedded, ok := embeddedName(field.Type)
			if !ok {
				return refuse("cannot name embedded field")
			}
			tg.fields = append(tg.fields, embedded)
			continue
		}
		for _, n := range field.Names {
			if n.Name == "_" {
				continue
			}
			tg.fields = append(tg.fields, n.Name)
		}
	}
	if len(tg.fields) == 0 {
		return refuse("struct has no fields")
	}
	return tg, nil
}

// embeddedName returns the implicit field name of an embedded type.
func embeddedName(expr ast.Expr) (string, bool) {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name, true
	case *ast.SelectorExpr:
		return t.Sel.Name, true
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	default:
		return "", false
	}
}

func render(pkg, importPath string, targets []target) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by schematica gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	if path.Base(importPath) == "schematic" {
		fmt.Fprintf(&buf, "import %q\n", importPath)
	} else {
		// The last path element need not be the package name.
		fmt.Fprintf(&buf, "import schematic %q\n", importPath)
	}

	for _, tg := range targets {
		recv := tg.name
		if len(tg.typeParams) > 0 {
			recv += "[" + strings.Join(tg.typeParams, ", ") + "]"
		}
		fmt.Fprintf(&buf, "\nfunc (x %s) Instantiate(ctx *schematic.Context) error {\n", recv)
		for _, f := range tg.fields {
			fmt.Fprintf(&buf, "\tif err := schematic.Of(x.%s).Instantiate(ctx); err != nil {\n", f)
			buf.WriteString("\t\treturn err\n")
			buf.WriteString("\t}\n")
		}
		buf.WriteString("\treturn nil\n")
		buf.WriteString("}\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}
	return src, nil
}
