package java

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/viant/classmerge/inspector/graph"
)

// Inspector provides functionality to inspect Java code and extract class models
type Inspector struct {
	config *graph.Config
}

// NewInspector creates a new Java Inspector with the provided configuration
func NewInspector(config *graph.Config) *Inspector {
	if config == nil {
		config = graph.DefaultConfig()
	}
	return &Inspector{
		config: config,
	}
}

// InspectSource parses Java source code from a byte slice and extracts types
func (i *Inspector) InspectSource(src []byte) (*graph.File, error) {
	return i.inspect(context.Background(), src, "source.java")
}

// InspectFile parses a Java source file and extracts types
func (i *Inspector) InspectFile(filename string) (*graph.File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return i.inspect(context.Background(), src, filename)
}

// InspectContent parses Java source loaded by the caller, location is used for reporting only
func (i *Inspector) InspectContent(ctx context.Context, src []byte, location string) (*graph.File, error) {
	return i.inspect(ctx, src, location)
}

func (i *Inspector) inspect(ctx context.Context, src []byte, filename string) (*graph.File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	defer tree.Close()

	return i.processJavaFile(tree.RootNode(), src, filename), nil
}

// processJavaFile extracts package, imports and types from a Java file
func (i *Inspector) processJavaFile(rootNode *sitter.Node, src []byte, filename string) *graph.File {
	aFile := &graph.File{Path: filename, Name: filepath.Base(filename)}

	var typeNodes []*sitter.Node
	for j := 0; j < int(rootNode.NamedChildCount()); j++ {
		childNode := rootNode.NamedChild(j)
		switch childNode.Type() {
		case "package_declaration":
			aFile.Package = parsePackageDeclaration(childNode, src)
		case "import_declaration":
			if anImport, ok := parseImportDeclaration(childNode, src); ok {
				aFile.Imports = append(aFile.Imports, anImport)
			}
		case "class_declaration", "interface_declaration", "enum_declaration":
			typeNodes = append(typeNodes, childNode)
		}
	}

	for _, typeNode := range typeNodes {
		var aType *graph.Type
		switch typeNode.Type() {
		case "class_declaration":
			aType = parseClassDeclaration(typeNode, src)
		case "interface_declaration":
			aType = parseInterfaceDeclaration(typeNode, src)
		case "enum_declaration":
			aType = parseEnumDeclaration(typeNode, src)
		}
		if aType == nil {
			continue
		}
		if !i.config.IncludeUnexported && !aType.IsExported {
			continue
		}
		aType.Package = aFile.Package
		aFile.Types = append(aFile.Types, aType)
	}
	return aFile
}
