package graph

import "strings"

// File represents a source code file with its types
type File struct {
	Name    string   // File name
	Path    string   // File path
	Package string   // Package name
	Types   []*Type  // Types declared in this file
	Imports []Import // Imports used in this file
}

// Import represents an import declaration
type Import struct {
	Name     string // Simple imported name, * for on demand imports
	Path     string // Qualified import, i.e. java.util.List or java.util.*
	IsStatic bool
}

// String renders import declaration
func (i Import) String() string {
	builder := &strings.Builder{}
	builder.WriteString("import ")
	if i.IsStatic {
		builder.WriteString("static ")
	}
	builder.WriteString(i.Path)
	builder.WriteString(";")
	return builder.String()
}

// PrimaryType returns the first declared type
func (f *File) PrimaryType() *Type {
	if len(f.Types) == 0 {
		return nil
	}
	return f.Types[0]
}

// LookupType returns the first type declared with name, the file is not modified
func (f *File) LookupType(name string) *Type {
	for _, typ := range f.Types {
		if typ != nil && typ.Name == name {
			return typ
		}
	}
	return nil
}
