package java

import (
	"reflect"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/classmerge/inspector/graph"
)

// javaKinds maps Java primitive and well known types to reflect kinds
var javaKinds = map[string]reflect.Kind{
	"boolean": reflect.Bool,
	"char":    reflect.Int32,
	"byte":    reflect.Int8,
	"short":   reflect.Int16,
	"int":     reflect.Int32,
	"long":    reflect.Int64,
	"float":   reflect.Float32,
	"double":  reflect.Float64,
	"String":  reflect.String,
	"void":    reflect.Invalid,
}

// parseJavaType converts a Java type node to a graph.Type, the name keeps Java spelling
func parseJavaType(node *sitter.Node, source []byte) *graph.Type {
	typeInfo := &graph.Type{
		Name: strings.Join(strings.Fields(node.Content(source)), " "),
		Location: &graph.Location{
			Start: int(node.StartByte()),
			End:   int(node.EndByte()),
		},
	}
	switch node.Type() {
	case "integral_type", "floating_point_type", "boolean_type", "void_type":
		typeInfo.Kind = javaKinds[typeInfo.Name]
	case "array_type":
		typeInfo.Kind = reflect.Array
	case "type_identifier":
		if kind, ok := javaKinds[typeInfo.Name]; ok {
			typeInfo.Kind = kind
		} else {
			typeInfo.Kind = reflect.Ptr
		}
	case "scoped_type_identifier":
		typeInfo.Kind = reflect.Ptr
		if lastDotIndex := strings.LastIndex(typeInfo.Name, "."); lastDotIndex != -1 {
			typeInfo.Package = typeInfo.Name[:lastDotIndex]
		}
	case "generic_type":
		typeInfo.Kind = reflect.Ptr
		if typeArgsNode := namedChildOfType(node, "type_arguments"); typeArgsNode != nil {
			for i := 0; i < int(typeArgsNode.NamedChildCount()); i++ {
				typeInfo.TypeParams = append(typeInfo.TypeParams, &graph.TypeParam{
					Name:       typeArgsNode.NamedChild(i).Content(source),
					Constraint: "any",
				})
			}
		}
	}
	return typeInfo
}

// extractTypeParameters extracts generic type parameters from a declaration node
func extractTypeParameters(node *sitter.Node, source []byte) []*graph.TypeParam {
	typeParamNode := namedChildOfType(node, "type_parameters")
	if typeParamNode == nil {
		return nil
	}
	var params []*graph.TypeParam
	for i := 0; i < int(typeParamNode.NamedChildCount()); i++ {
		paramNode := typeParamNode.NamedChild(i)
		if paramNode.Type() != "type_parameter" {
			continue
		}
		var name, constraint string
		for j := 0; j < int(paramNode.NamedChildCount()); j++ {
			child := paramNode.NamedChild(j)
			switch child.Type() {
			case "type_identifier", "identifier":
				if name == "" {
					name = child.Content(source)
				}
			case "type_bound":
				bound := strings.TrimSpace(strings.TrimPrefix(child.Content(source), "extends"))
				if constraint == "" {
					constraint = bound
				} else {
					constraint += " & " + bound
				}
			}
		}
		if constraint == "" {
			constraint = "any"
		}
		params = append(params, &graph.TypeParam{Name: name, Constraint: constraint})
	}
	return params
}

func namedChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == nodeType {
			return child
		}
	}
	return nil
}
