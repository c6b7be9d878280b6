package java

import (
	"reflect"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/classmerge/inspector/graph"
)

// parsePackageDeclaration extracts the package name from a Java source file
func parsePackageDeclaration(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "scoped_identifier", "identifier":
			return child.Content(source)
		}
	}
	return ""
}

// parseImportDeclaration extracts a single import declaration
func parseImportDeclaration(node *sitter.Node, source []byte) (graph.Import, bool) {
	text := strings.TrimSpace(node.Content(source))
	text = strings.TrimPrefix(text, "import")
	text = strings.TrimSuffix(strings.TrimSpace(text), ";")
	text = strings.TrimSpace(text)
	result := graph.Import{}
	if rest, ok := strings.CutPrefix(text, "static"); ok && len(rest) > 0 && (rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n') {
		result.IsStatic = true
		text = rest
	}
	text = strings.Join(strings.Fields(text), "")
	if text == "" {
		return result, false
	}
	result.Path = text
	result.Name = extractSimpleTypeName(text)
	return result, true
}

// parseClassDeclaration extracts class information from a Java source file
func parseClassDeclaration(node *sitter.Node, source []byte) *graph.Type {
	classType := newType(node, source, reflect.Struct)
	if classType == nil {
		return nil
	}
	classType.TypeParams = extractTypeParameters(node, source)

	if superNode := node.ChildByFieldName("superclass"); superNode != nil {
		for i := 0; i < int(superNode.NamedChildCount()); i++ {
			classType.Extends = append(classType.Extends, superNode.NamedChild(i).Content(source))
		}
	}
	if interfacesNode := node.ChildByFieldName("interfaces"); interfacesNode != nil {
		classType.Implements = append(classType.Implements, typeListNames(interfacesNode, source)...)
	}
	if bodyNode := node.ChildByFieldName("body"); bodyNode != nil {
		parseBody(classType, bodyNode, source)
	}
	classType.Index()
	return classType
}

// parseInterfaceDeclaration extracts interface information from a Java source file
func parseInterfaceDeclaration(node *sitter.Node, source []byte) *graph.Type {
	interfaceType := newType(node, source, reflect.Interface)
	if interfaceType == nil {
		return nil
	}
	interfaceType.TypeParams = extractTypeParameters(node, source)
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "extends_interfaces" {
			interfaceType.Extends = append(interfaceType.Extends, typeListNames(child, source)...)
		}
	}
	if bodyNode := node.ChildByFieldName("body"); bodyNode != nil {
		parseBody(interfaceType, bodyNode, source)
	}
	interfaceType.Index()
	return interfaceType
}

// parseEnumDeclaration extracts enum information, members live in enum_body_declarations
func parseEnumDeclaration(node *sitter.Node, source []byte) *graph.Type {
	enumType := newType(node, source, reflect.Int)
	if enumType == nil {
		return nil
	}
	if bodyNode := node.ChildByFieldName("body"); bodyNode != nil {
		for i := 0; i < int(bodyNode.NamedChildCount()); i++ {
			child := bodyNode.NamedChild(i)
			if child.Type() == "enum_body_declarations" {
				parseBody(enumType, child, source)
			}
		}
	}
	enumType.Index()
	return enumType
}

func newType(node *sitter.Node, source []byte, kind reflect.Kind) *graph.Type {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	result := &graph.Type{
		Name:       nameNode.Content(source),
		Kind:       kind,
		IsExported: hasModifier(parseModifiers(node), "public"),
		Location: &graph.Location{
			Start: int(node.StartByte()),
			End:   int(node.EndByte()),
		},
	}
	return result
}

func parseBody(owner *graph.Type, bodyNode *sitter.Node, source []byte) {
	for i := 0; i < int(bodyNode.NamedChildCount()); i++ {
		child := bodyNode.NamedChild(i)
		switch child.Type() {
		case "field_declaration", "constant_declaration":
			for _, field := range parseFieldDeclaration(child, source) {
				owner.AddField(field)
			}
		case "method_declaration":
			if method := parseMethodDeclaration(child, source); method != nil {
				owner.AddMethod(method)
			}
		case "constructor_declaration":
			if constructor := parseConstructorDeclaration(child, source, owner.Name); constructor != nil {
				owner.AddConstructor(constructor)
			}
		}
	}
}

// parseFieldDeclaration extracts one field per variable declarator
func parseFieldDeclaration(node *sitter.Node, source []byte) []*graph.Field {
	typeNode := node.ChildByFieldName("type")
	if typeNode == nil {
		return nil
	}
	modifiers := parseModifiers(node)
	comment := javadoc(node, source)
	isStatic := hasModifier(modifiers, "static")
	isFinal := hasModifier(modifiers, "final")

	var fields []*graph.Field
	for i := 0; i < int(node.NamedChildCount()); i++ {
		declaratorNode := node.NamedChild(i)
		if declaratorNode.Type() != "variable_declarator" {
			continue
		}
		nameNode := declaratorNode.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		fieldType := parseJavaType(typeNode, source)
		if dimensions := declaratorNode.ChildByFieldName("dimensions"); dimensions != nil {
			fieldType.Name += dimensions.Content(source)
			fieldType.Kind = reflect.Array
		}
		fields = append(fields, &graph.Field{
			Name:       nameNode.Content(source),
			Type:       fieldType,
			Modifiers:  modifiers,
			Comment:    comment,
			IsExported: hasModifier(modifiers, "public"),
			IsStatic:   isStatic,
			IsConstant: isFinal && isStatic,
			Location: &graph.Location{
				Raw:   node.Content(source),
				Start: int(node.StartByte()),
				End:   int(node.EndByte()),
			},
		})
	}
	return fields
}

// parseMethodDeclaration extracts method information from a class
func parseMethodDeclaration(node *sitter.Node, source []byte) *graph.Function {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	method := newFunction(node, source, nameNode.Content(source))
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		method.Results = []*graph.Parameter{{Type: parseJavaType(typeNode, source)}}
	}
	method.Signature = method.ResultType() + " " + method.TypeSignature()
	return method
}

// parseConstructorDeclaration extracts constructor information from a class
func parseConstructorDeclaration(node *sitter.Node, source []byte, className string) *graph.Function {
	constructor := newFunction(node, source, className)
	constructor.IsConstructor = true
	constructor.Results = []*graph.Parameter{{Type: &graph.Type{Name: className, Kind: reflect.Struct}}}
	constructor.Signature = constructor.TypeSignature()
	return constructor
}

func newFunction(node *sitter.Node, source []byte, name string) *graph.Function {
	modifiers := parseModifiers(node)
	result := &graph.Function{
		Name:       name,
		Comment:    javadoc(node, source),
		Modifiers:  modifiers,
		IsExported: hasModifier(modifiers, "public"),
		IsStatic:   hasModifier(modifiers, "static"),
		TypeParams: extractTypeParameters(node, source),
		Parameters: parseParameters(node.ChildByFieldName("parameters"), source),
		Location: &graph.Location{
			Raw:   node.Content(source),
			Start: int(node.StartByte()),
			End:   int(node.EndByte()),
		},
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == "throws" {
			result.Throws = typeListNames(child, source)
		}
	}
	if bodyNode := node.ChildByFieldName("body"); bodyNode != nil {
		result.Body = &graph.LocationNode{
			Text: bodyNode.Content(source),
			Location: graph.Location{
				Start: int(bodyNode.StartByte()),
				End:   int(bodyNode.EndByte()),
			},
		}
	}
	return result
}

// parseParameters extracts formal and variadic parameters
func parseParameters(parametersNode *sitter.Node, source []byte) []*graph.Parameter {
	var result = make([]*graph.Parameter, 0)
	if parametersNode == nil {
		return result
	}
	for i := 0; i < int(parametersNode.NamedChildCount()); i++ {
		paramNode := parametersNode.NamedChild(i)
		switch paramNode.Type() {
		case "formal_parameter":
			typeNode := paramNode.ChildByFieldName("type")
			nameNode := paramNode.ChildByFieldName("name")
			if typeNode == nil || nameNode == nil {
				continue
			}
			paramType := parseJavaType(typeNode, source)
			if dimensions := paramNode.ChildByFieldName("dimensions"); dimensions != nil {
				paramType.Name += dimensions.Content(source)
				paramType.Kind = reflect.Array
			}
			result = append(result, &graph.Parameter{Name: nameNode.Content(source), Type: paramType})
		case "spread_parameter":
			var paramType *graph.Type
			var paramName string
			for j := 0; j < int(paramNode.NamedChildCount()); j++ {
				child := paramNode.NamedChild(j)
				switch child.Type() {
				case "modifiers":
				case "variable_declarator":
					if nameNode := child.ChildByFieldName("name"); nameNode != nil {
						paramName = nameNode.Content(source)
					}
				default:
					if paramType == nil {
						paramType = parseJavaType(child, source)
					}
				}
			}
			if paramType == nil || paramName == "" {
				continue
			}
			paramType.Name += "..."
			paramType.Kind = reflect.Slice
			result = append(result, &graph.Parameter{Name: paramName, Type: paramType})
		}
	}
	return result
}

// parseModifiers returns keyword modifiers in source order, annotations are excluded
func parseModifiers(node *sitter.Node) []string {
	if node.NamedChildCount() == 0 {
		return nil
	}
	modifiersNode := node.NamedChild(0)
	if modifiersNode.Type() != "modifiers" {
		return nil
	}
	var result []string
	for i := 0; i < int(modifiersNode.ChildCount()); i++ {
		child := modifiersNode.Child(i)
		if child.IsNamed() {
			continue
		}
		result = append(result, child.Type())
	}
	return result
}

func hasModifier(modifiers []string, modifier string) bool {
	for _, candidate := range modifiers {
		if candidate == modifier {
			return true
		}
	}
	return false
}

func typeListNames(node *sitter.Node, source []byte) []string {
	var result []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "type_list" {
			result = append(result, typeListNames(child, source)...)
			continue
		}
		result = append(result, child.Content(source))
	}
	return result
}

// extractSimpleTypeName extracts the simple name from a possibly qualified name
// e.g., "java.util.List" -> "List"
func extractSimpleTypeName(qualifiedName string) string {
	lastDotIndex := strings.LastIndex(qualifiedName, ".")
	if lastDotIndex != -1 {
		return qualifiedName[lastDotIndex+1:]
	}
	return qualifiedName
}
