package aspect

import (
	"fmt"
	"strings"

	"github.com/viant/classmerge/inspector/graph"
)

const indent = "    "

// names bound by generated advice, parameters reusing them get renamed
var reserved = map[string]bool{
	"target":    true,
	"created":   true,
	"companion": true,
	"value":     true,
	"result":    true,
}

type code struct {
	builder strings.Builder
	depth   int
}

func newCode() *code {
	return &code{depth: 1}
}

func (c *code) line(format string, args ...interface{}) {
	if format == "" {
		c.builder.WriteString("\n")
		return
	}
	c.builder.WriteString(strings.Repeat(indent, c.depth))
	fmt.Fprintf(&c.builder, format, args...)
	c.builder.WriteString("\n")
}

func (c *code) open(format string, args ...interface{}) {
	c.line(format+" {", args...)
	c.depth++
}

func (c *code) close() {
	c.depth--
	c.line("}")
}

// comment renders documentation text as line comments
func (c *code) comment(text string) {
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		c.line("// %s", line)
	}
}

func (c *code) String() string {
	return c.builder.String()
}

// bindings returns advice formal names for params
func bindings(params []*graph.Parameter) []string {
	names := make([]string, len(params))
	for i, param := range params {
		name := param.Name
		if name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		if reserved[name] {
			name += "Arg"
		}
		names[i] = name
	}
	return names
}

// formals renders advice formals, varargs become arrays
func formals(params []*graph.Parameter, names []string, leading ...string) string {
	result := append([]string{}, leading...)
	for i, param := range params {
		typeName := param.TypeName()
		if base, ok := strings.CutSuffix(typeName, "..."); ok {
			typeName = base + "[]"
		}
		result = append(result, typeName+" "+names[i])
	}
	return strings.Join(result, ", ")
}

// signatureTypes renders the parameter type pattern of a join point signature
func signatureTypes(params []*graph.Parameter) string {
	types := make([]string, len(params))
	for i, param := range params {
		types[i] = param.TypeName()
	}
	return strings.Join(types, ", ")
}

func argsPointcut(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return " && args(" + strings.Join(names, ", ") + ")"
}

func withinExclusion(aspectName string) string {
	return " && !within(" + aspectName + ")"
}

func throwsClause(method *graph.Function) string {
	if len(method.Throws) == 0 {
		return ""
	}
	return " throws " + strings.Join(method.Throws, ", ")
}

func join(leading string, names []string) string {
	return strings.Join(append([]string{leading}, names...), ", ")
}
