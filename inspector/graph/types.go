package graph

import (
	"reflect"
	"strings"
)

// Type represents a parsed class-like type with its declarations
type Type struct {
	Name         string       // Type simple name
	Kind         reflect.Kind // reflect kind approximation (Struct for classes, Interface for interfaces)
	Package      string       // Package name
	IsExported   bool
	Constructors []*Function // Constructors in declaration order
	Fields       []*Field    // Fields in declaration order
	Methods      []*Function // Methods in declaration order
	TypeParams   []*TypeParam
	Implements   []string
	Extends      []string
	Location     *Location

	fieldMap  map[string]int
	methodMap map[string]int
}

// QualifiedName returns package qualified type name
func (t *Type) QualifiedName() string {
	if t.Package == "" {
		return t.Name
	}
	return t.Package + "." + t.Name
}

// GetField retrieves a field by name
func (t *Type) GetField(name string) *Field {
	if t.Fields == nil {
		return nil
	}
	if idx, ok := t.fieldMap[name]; ok && idx < len(t.Fields) {
		return t.Fields[idx]
	}
	return nil
}

// GetMethod retrieves the first declared method with the given name
func (t *Type) GetMethod(name string) *Function {
	if t.Methods == nil {
		return nil
	}
	if idx, ok := t.methodMap[name]; ok && idx < len(t.Methods) {
		return t.Methods[idx]
	}
	return nil
}

// AddField adds a field to the type
func (t *Type) AddField(field *Field) {
	if t.fieldMap == nil {
		t.fieldMap = make(map[string]int)
	}
	t.Fields = append(t.Fields, field)
	if _, ok := t.fieldMap[field.Name]; !ok {
		t.fieldMap[field.Name] = len(t.Fields) - 1
	}
}

// AddMethod adds a method to the type, overloads keep the first index
func (t *Type) AddMethod(method *Function) {
	if t.methodMap == nil {
		t.methodMap = make(map[string]int)
	}
	t.Methods = append(t.Methods, method)
	if _, ok := t.methodMap[method.Name]; !ok {
		t.methodMap[method.Name] = len(t.Methods) - 1
	}
}

// AddConstructor adds a constructor to the type
func (t *Type) AddConstructor(constructor *Function) {
	constructor.IsConstructor = true
	t.Constructors = append(t.Constructors, constructor)
}

// Index rebuilds lookup maps, use it after assigning Fields or Methods directly
func (t *Type) Index() {
	t.fieldMap = make(map[string]int)
	t.methodMap = make(map[string]int)
	for i, field := range t.Fields {
		if _, ok := t.fieldMap[field.Name]; !ok {
			t.fieldMap[field.Name] = i
		}
	}
	for i, method := range t.Methods {
		if _, ok := t.methodMap[method.Name]; !ok {
			t.methodMap[method.Name] = i
		}
	}
}

// Location represents source byte range
type Location struct {
	Raw   string
	Start int
	End   int
}

type LocationNode struct {
	Text string
	Location
}

// Field represents a class field
type Field struct {
	Name       string
	Type       *Type
	Modifiers  []string // Modifiers in source order, i.e. private static final
	Location   *Location
	Comment    string // Javadoc text without markers
	IsExported bool
	IsStatic   bool
	IsConstant bool
}

// TypeName returns field type name
func (f *Field) TypeName() string {
	if f.Type == nil {
		return ""
	}
	return f.Type.Name
}

// HasModifier returns true if field declares the modifier
func (f *Field) HasModifier(modifier string) bool {
	for _, candidate := range f.Modifiers {
		if candidate == modifier {
			return true
		}
	}
	return false
}

// Function represents a method or constructor
type Function struct {
	Name          string
	Comment       string // Javadoc text without markers
	Modifiers     []string
	TypeParams    []*TypeParam
	Parameters    []*Parameter
	Results       []*Parameter
	Throws        []string
	Body          *LocationNode
	IsExported    bool
	Location      *Location
	IsStatic      bool
	IsConstructor bool
	Signature     string
}

// ResultType returns declared result type name, void when none
func (m *Function) ResultType() string {
	if len(m.Results) == 0 || m.Results[0].Type == nil || m.Results[0].Type.Name == "" {
		return "void"
	}
	return m.Results[0].Type.Name
}

// IsVoid returns true if function returns nothing
func (m *Function) IsVoid() bool {
	return m.ResultType() == "void"
}

// ParameterTypes returns ordered parameter type names
func (m *Function) ParameterTypes() []string {
	var result = make([]string, 0, len(m.Parameters))
	for _, param := range m.Parameters {
		result = append(result, param.TypeName())
	}
	return result
}

// ParameterNames returns ordered parameter names
func (m *Function) ParameterNames() []string {
	var result = make([]string, 0, len(m.Parameters))
	for _, param := range m.Parameters {
		result = append(result, param.Name)
	}
	return result
}

// TypeSignature returns name(T1, T2) form
func (m *Function) TypeSignature() string {
	return m.Name + "(" + strings.Join(m.ParameterTypes(), ", ") + ")"
}

// TypeParam represents a generic type parameter
type TypeParam struct {
	Name       string
	Constraint string
}

// Parameter represents a function parameter or result
type Parameter struct {
	Name string
	Type *Type
}

// TypeName returns parameter type name
func (p *Parameter) TypeName() string {
	if p.Type == nil {
		return ""
	}
	return p.Type.Name
}
