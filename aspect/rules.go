package aspect

import (
	"sort"
	"strings"

	"github.com/viant/classmerge/inspector/graph"
)

// Imports returns the sorted set union of import declarations, one per line
func Imports(lists ...[]graph.Import) string {
	unique := map[string]bool{}
	for _, list := range lists {
		for _, anImport := range list {
			unique[anImport.String()] = true
		}
	}
	lines := make([]string, 0, len(unique))
	for line := range unique {
		lines = append(lines, line)
	}
	sort.Strings(lines)
	builder := &strings.Builder{}
	for _, line := range lines {
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	return builder.String()
}

// Header opens the aspect declaration
func Header(aspectName string) string {
	return "public privileged aspect " + aspectName + " {\n"
}

// Footer closes the aspect declaration
func Footer() string {
	return "}\n"
}

// InstanceReference declares on owner the non-owning reference to its companion instance
func InstanceReference(owner, companion Entity) string {
	c := newCode()
	c.line("private %s %s.%s;", companion.Type(), owner.Type(), companion.Ref())
	return c.String()
}

// ConstructionPointcut matches construction of entity through ctor signature outside of the aspect
func ConstructionPointcut(aspectName string, entity Entity, ctor *graph.Function) string {
	names := bindings(ctor.Parameters)
	c := newCode()
	c.line("pointcut %s(%s) : call(%s.new(%s))%s%s;",
		entity.pointcutName(), formals(ctor.Parameters, names),
		entity.Type(), signatureTypes(ctor.Parameters),
		argsPointcut(names), withinExclusion(aspectName))
	return c.String()
}

// ConstructionAdvice triggers linking once the matched construction returns
func ConstructionAdvice(entity Entity, ctor *graph.Function) string {
	names := bindings(ctor.Parameters)
	c := newCode()
	c.open("after(%s) returning(%s created) : %s(%s)",
		formals(ctor.Parameters, names), entity.Type(),
		entity.pointcutName(), strings.Join(names, ", "))
	c.line("%s(%s);", entity.linkName(), join("created", names))
	c.close()
	return c.String()
}

// Seed lists instance fields introduced on Owner that take their value from the other instance when both get linked
type Seed struct {
	Owner  Entity
	Fields []string
}

// ConstructionLink builds the companion with the same arguments, copies seeded fields and links both instances by identity
func ConstructionLink(entity, companion Entity, ctor *graph.Function, seed Seed) string {
	names := bindings(ctor.Parameters)
	c := newCode()
	c.open("private static void %s(%s)", entity.linkName(), formals(ctor.Parameters, names, entity.Type()+" created"))
	c.open("if (created.%s != null)", companion.Ref())
	c.line("return;")
	c.close()
	c.line("%s companion = new %s(%s);", companion.Type(), companion.Type(), strings.Join(names, ", "))
	for _, name := range seed.Fields {
		if entity == seed.Owner {
			c.line("created.%s = companion.%s;", name, name)
		} else {
			c.line("companion.%s = created.%s;", name, name)
		}
	}
	c.line("created.%s = companion;", companion.Ref())
	c.line("companion.%s = created;", entity.Ref())
	c.close()
	return c.String()
}

// Storage tells where a redirected field lives on a
type Storage int

const (
	// Declared fields are declared by a itself
	Declared Storage = iota
	// Inherited fields come from a superclass of a
	Inherited
	// Introduced fields are added to a by the aspect and seeded on link
	Introduced
)

// FieldRedirect replaces every read and write of b's field storage with a's storage on the companion.
// Introduced storage is declared on a first. b's storage is left unused once linked.
func FieldRedirect(aspectName string, a, b Entity, field *graph.Field, storage Storage) string {
	c := newCode()
	c.comment(field.Comment)
	static := ""
	if field.IsStatic {
		static = "static "
	}
	typeName := field.TypeName()
	if storage == Introduced {
		c.line("private %s%s %s.%s;", static, typeName, a.Type(), field.Name)
		c.line("")
	}
	readOnly := field.HasModifier("final") && storage != Introduced
	exclusion := withinExclusion(aspectName)
	if field.IsStatic {
		c.open("%s around() : get(static %s %s.%s)%s", typeName, typeName, b.Type(), field.Name, exclusion)
		c.line("return %s.%s;", a.Type(), field.Name)
		c.close()
		if readOnly {
			return c.String()
		}
		c.line("")
		c.open("void around(%s value) : set(static %s %s.%s) && args(value)%s", typeName, typeName, b.Type(), field.Name, exclusion)
		c.line("%s.%s = value;", a.Type(), field.Name)
		c.close()
		return c.String()
	}

	c.open("%s around(%s target) : get(%s %s.%s) && target(target)%s", typeName, b.Type(), typeName, b.Type(), field.Name, exclusion)
	c.open("if (target.%s == null)", a.Ref())
	c.line("return proceed(target);")
	c.close()
	c.line("return target.%s.%s;", a.Ref(), field.Name)
	c.close()
	if readOnly {
		return c.String()
	}
	c.line("")
	c.open("void around(%s target, %s value) : set(%s %s.%s) && target(target) && args(value)%s", b.Type(), typeName, typeName, b.Type(), field.Name, exclusion)
	c.open("if (target.%s == null)", a.Ref())
	c.line("proceed(target, value);")
	c.line("return;")
	c.close()
	c.line("target.%s.%s = value;", a.Ref(), field.Name)
	c.close()
	return c.String()
}

// MethodOverride replaces calls to loser's method with the same call on the winner companion
func MethodOverride(aspectName string, loser, winner Entity, method *graph.Function) string {
	names := bindings(method.Parameters)
	resultType := method.ResultType()
	c := newCode()
	c.comment(method.Comment)
	if method.IsStatic {
		c.open("%s around(%s)%s : %s%s", resultType, formals(method.Parameters, names), throwsClause(method),
			callPattern(loser, method), argsPointcut(names)+withinExclusion(aspectName))
		c.line("%s%s.%s(%s);", returnKeyword(method), winner.Type(), method.Name, strings.Join(names, ", "))
		c.close()
		return c.String()
	}
	c.open("%s around(%s)%s : %s && target(target)%s", resultType,
		formals(method.Parameters, names, loser.Type()+" target"), throwsClause(method),
		callPattern(loser, method), argsPointcut(names)+withinExclusion(aspectName))
	c.open("if (target.%s == null)", winner.Ref())
	proceed(c, method, names)
	c.close()
	c.line("%starget.%s.%s(%s);", returnKeyword(method), winner.Ref(), method.Name, strings.Join(names, ", "))
	c.close()
	return c.String()
}

// MethodMerge chains a's method with the same named method on the b companion,
// before places the companion invocation ahead of a's own body
func MethodMerge(aspectName string, a, b Entity, method *graph.Function, before bool) string {
	names := bindings(method.Parameters)
	resultType := method.ResultType()
	c := newCode()
	c.comment(method.Comment)
	leading := []string{a.Type() + " target"}
	targetPointcut := " && target(target)"
	if method.IsStatic {
		leading = nil
		targetPointcut = ""
	}
	c.open("%s around(%s)%s : %s%s%s", resultType,
		formals(method.Parameters, names, leading...), throwsClause(method),
		callPattern(a, method), targetPointcut, argsPointcut(names)+withinExclusion(aspectName))
	if before {
		companionCall(c, b, method, names)
		c.line("%sproceed(%s);", returnKeyword(method), proceedArgs(method, names))
	} else if method.IsVoid() {
		c.line("proceed(%s);", proceedArgs(method, names))
		companionCall(c, b, method, names)
	} else {
		c.line("%s result = proceed(%s);", resultType, proceedArgs(method, names))
		companionCall(c, b, method, names)
		c.line("return result;")
	}
	c.close()
	return c.String()
}

func companionCall(c *code, companion Entity, method *graph.Function, names []string) {
	if method.IsStatic {
		c.line("%s.%s(%s);", companion.Type(), method.Name, strings.Join(names, ", "))
		return
	}
	c.open("if (target.%s != null)", companion.Ref())
	c.line("target.%s.%s(%s);", companion.Ref(), method.Name, strings.Join(names, ", "))
	c.close()
}

func proceed(c *code, method *graph.Function, names []string) {
	if method.IsVoid() {
		c.line("proceed(%s);", proceedArgs(method, names))
		c.line("return;")
		return
	}
	c.line("return proceed(%s);", proceedArgs(method, names))
}

func proceedArgs(method *graph.Function, names []string) string {
	if method.IsStatic {
		return strings.Join(names, ", ")
	}
	return join("target", names)
}

func callPattern(owner Entity, method *graph.Function) string {
	static := ""
	if method.IsStatic {
		static = "static "
	}
	return "call(" + static + method.ResultType() + " " + owner.Type() + "." + method.Name + "(" + signatureTypes(method.Parameters) + "))"
}

func returnKeyword(method *graph.Function) string {
	if method.IsVoid() {
		return ""
	}
	return "return "
}
