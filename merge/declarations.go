package merge

import (
	"path"
	"slices"
	"strings"

	"github.com/viant/classmerge/inspector/graph"
)

// Declarations is a read-only view over the primary class of a parsed file, the model itself is never modified
type Declarations struct {
	file    *graph.File
	typ     *graph.Type
	pkg     string
	fields  map[string]*graph.Field
	methods map[string]*graph.Function
}

// NewDeclarations indexes the type named after file, or the first type declared in file
func NewDeclarations(file *graph.File) (*Declarations, error) {
	if file == nil {
		return nil, &UnsupportedShapeError{Owner: "<nil>", Reason: "no class model"}
	}
	typ := file.LookupType(strings.TrimSuffix(path.Base(file.Name), path.Ext(file.Name)))
	if typ == nil {
		typ = file.PrimaryType()
	}
	if typ == nil {
		return nil, &UnsupportedShapeError{Owner: file.Path, Reason: "no type declared"}
	}
	pkg := typ.Package
	if pkg == "" {
		pkg = file.Package
	}
	ret := &Declarations{
		file:    file,
		typ:     typ,
		pkg:     pkg,
		fields:  make(map[string]*graph.Field, len(typ.Fields)),
		methods: make(map[string]*graph.Function, len(typ.Methods)),
	}
	for _, field := range typ.Fields {
		if _, ok := ret.fields[field.Name]; !ok {
			ret.fields[field.Name] = field
		}
	}
	for _, method := range typ.Methods {
		if _, ok := ret.methods[method.Name]; !ok {
			ret.methods[method.Name] = method
		}
	}
	return ret, nil
}

func (d *Declarations) Package() string {
	return d.pkg
}

// Name returns the primary type simple name
func (d *Declarations) Name() string {
	return d.typ.Name
}

func (d *Declarations) QualifiedName() string {
	if d.pkg == "" {
		return d.typ.Name
	}
	return d.pkg + "." + d.typ.Name
}

func (d *Declarations) Imports() []graph.Import {
	return slices.Clone(d.file.Imports)
}

// Extends returns the declared superclass, empty when none
func (d *Declarations) Extends() []string {
	return slices.Clone(d.typ.Extends)
}

func (d *Declarations) Constructors() []*graph.Function {
	return slices.Clone(d.typ.Constructors)
}

func (d *Declarations) Fields() []*graph.Field {
	return slices.Clone(d.typ.Fields)
}

func (d *Declarations) Methods() []*graph.Function {
	return slices.Clone(d.typ.Methods)
}

// FieldByName returns the named field or NotFoundError
func (d *Declarations) FieldByName(name string) (*graph.Field, error) {
	if field, ok := d.fields[name]; ok {
		return field, nil
	}
	return nil, &NotFoundError{Kind: "field", Name: name, Owner: d.QualifiedName()}
}

// MethodByName returns the first method declared with name or NotFoundError
func (d *Declarations) MethodByName(name string) (*graph.Function, error) {
	if method, ok := d.methods[name]; ok {
		return method, nil
	}
	return nil, &NotFoundError{Kind: "method", Name: name, Owner: d.QualifiedName()}
}

// MethodOverload returns the first method with name accepting parameterTypes or NotFoundError
func (d *Declarations) MethodOverload(name string, parameterTypes []string) (*graph.Function, error) {
	for _, method := range d.typ.Methods {
		if method.Name == name && slices.Equal(method.ParameterTypes(), parameterTypes) {
			return method, nil
		}
	}
	signature := name + "(" + strings.Join(parameterTypes, ", ") + ")"
	return nil, &NotFoundError{Kind: "method", Name: signature, Owner: d.QualifiedName()}
}

// PrimaryConstructor returns the first declared constructor, the only one taking part in a merge
func (d *Declarations) PrimaryConstructor() (*graph.Function, error) {
	if len(d.typ.Constructors) == 0 {
		return nil, &UnsupportedShapeError{Owner: d.QualifiedName(), Reason: "at least one declared constructor is required"}
	}
	return d.typ.Constructors[0], nil
}
