package merge

import (
	"fmt"
	"slices"
	"strings"

	"github.com/viant/classmerge/aspect"
	"github.com/viant/classmerge/inspector/graph"
	"go.uber.org/zap"
)

// Engine generates the merge aspect for a pair of class models
type Engine struct {
	logger     *zap.Logger
	aspectName string
}

// fieldRule is a resolved field redirect
type fieldRule struct {
	field   *graph.Field
	storage aspect.Storage
}

// methodRule is a resolved override or merge
type methodRule struct {
	method *graph.Function
	before bool
	bWins  bool
}

// Generate validates cfg, resolves every referenced declaration and assembles the aspect.
// The first failure aborts generation, no artifact is returned with an error.
func (e *Engine) Generate(a, b *graph.File, cfg *Config) (*Artifact, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	declA, err := NewDeclarations(a)
	if err != nil {
		return nil, err
	}
	declB, err := NewDeclarations(b)
	if err != nil {
		return nil, err
	}
	if declA.QualifiedName() == declB.QualifiedName() {
		return nil, &ConfigurationError{Option: "classB", Reason: fmt.Sprintf("%s can not be merged with itself", declA.QualifiedName())}
	}
	ctorA, ctorB, err := linkConstructors(declA, declB)
	if err != nil {
		return nil, err
	}
	fields, err := resolveFields(declA, declB, cfg)
	if err != nil {
		return nil, err
	}
	overrides, err := resolveOverrides(declA, declB, cfg)
	if err != nil {
		return nil, err
	}
	merges, err := resolveMerges(declA, declB, cfg)
	if err != nil {
		return nil, err
	}

	entityA := aspect.Entity{Package: declA.Package(), Name: declA.Name()}
	entityB := aspect.Entity{Package: declB.Package(), Name: declB.Name()}
	if entityA.Ref() == entityB.Ref() {
		return nil, &ConfigurationError{Option: "classB", Reason: fmt.Sprintf("%s and %s share reference name %s", declA.QualifiedName(), declB.QualifiedName(), entityA.Ref())}
	}
	name := e.aspectName
	if name == "" {
		name = "Merge" + declA.Name()
	}
	seed := aspect.Seed{Owner: entityA}
	for _, rule := range fields {
		if rule.storage == aspect.Introduced && !rule.field.IsStatic {
			seed.Fields = append(seed.Fields, rule.field.Name)
		}
	}

	blocks := []string{
		aspect.InstanceReference(entityA, entityB) + aspect.InstanceReference(entityB, entityA),
		aspect.ConstructionPointcut(name, entityA, ctorA),
		aspect.ConstructionPointcut(name, entityB, ctorB),
		aspect.ConstructionAdvice(entityA, ctorA),
		aspect.ConstructionAdvice(entityB, ctorB),
		aspect.ConstructionLink(entityA, entityB, ctorA, seed),
		aspect.ConstructionLink(entityB, entityA, ctorB, seed),
	}
	for _, rule := range fields {
		blocks = append(blocks, aspect.FieldRedirect(name, entityA, entityB, rule.field, rule.storage))
	}
	for _, rule := range overrides {
		loser, winner := entityB, entityA
		if rule.bWins {
			loser, winner = entityA, entityB
		}
		blocks = append(blocks, aspect.MethodOverride(name, loser, winner, rule.method))
	}
	for _, rule := range merges {
		blocks = append(blocks, aspect.MethodMerge(name, entityA, entityB, rule.method, rule.before))
	}

	builder := &strings.Builder{}
	if imports := aspect.Imports(declA.Imports(), declB.Imports()); imports != "" {
		builder.WriteString(imports)
		builder.WriteString("\n")
	}
	builder.WriteString(aspect.Header(name))
	builder.WriteString("\n")
	builder.WriteString(strings.Join(blocks, "\n"))
	builder.WriteString(aspect.Footer())

	artifact, err := NewArtifact(name, builder.String())
	if err != nil {
		return nil, err
	}
	e.logger.Debug("generated merge aspect",
		zap.String("aspect", name),
		zap.String("classA", declA.QualifiedName()),
		zap.String("classB", declB.QualifiedName()),
		zap.Int("fields", len(fields)),
		zap.Int("overrides", len(overrides)),
		zap.Int("merges", len(merges)),
		zap.String("hash", artifact.Hash))
	return artifact, nil
}

// linkConstructors returns first constructors, each must be able to build the companion from its own arguments
func linkConstructors(declA, declB *Declarations) (*graph.Function, *graph.Function, error) {
	ctorA, err := declA.PrimaryConstructor()
	if err != nil {
		return nil, nil, err
	}
	ctorB, err := declB.PrimaryConstructor()
	if err != nil {
		return nil, nil, err
	}
	if !slices.Equal(ctorA.ParameterTypes(), ctorB.ParameterTypes()) {
		return nil, nil, &UnsupportedShapeError{
			Owner:  declB.QualifiedName(),
			Reason: fmt.Sprintf("first constructor %s does not match %s of %s", ctorB.TypeSignature(), ctorA.TypeSignature(), declA.QualifiedName()),
		}
	}
	return ctorA, ctorB, nil
}

// resolveFields picks A's storage for every merged field. A field only B declares is taken
// as inherited when A extends a superclass, otherwise it gets introduced on A.
func resolveFields(declA, declB *Declarations, cfg *Config) ([]fieldRule, error) {
	if cfg.MergeFieldsByName {
		missing := aspect.Introduced
		if len(declA.Extends()) > 0 {
			missing = aspect.Inherited
		}
		union := UnionFields(declA.Fields(), declB.Fields())
		result := make([]fieldRule, 0, len(union))
		for _, field := range union {
			storage := aspect.Declared
			if _, err := declA.FieldByName(field.Name); err != nil {
				storage = missing
			}
			result = append(result, fieldRule{field: field, storage: storage})
		}
		return result, nil
	}
	result := make([]fieldRule, 0, len(cfg.FieldNamesToMerge))
	for _, name := range cfg.FieldNamesToMerge {
		field, err := declA.FieldByName(name)
		if err != nil {
			return nil, err
		}
		result = append(result, fieldRule{field: field, storage: aspect.Declared})
	}
	return result, nil
}

// resolveOverrides requires the method on the loser and a same parameter overload on the winner
func resolveOverrides(declA, declB *Declarations, cfg *Config) ([]methodRule, error) {
	var result []methodRule
	for _, override := range cfg.Overrides() {
		loser, winner := declB, declA
		if override.WinnerIsB {
			loser, winner = declA, declB
		}
		method, err := loser.MethodByName(override.Name)
		if err != nil {
			return nil, err
		}
		if _, err = winner.MethodOverload(override.Name, method.ParameterTypes()); err != nil {
			return nil, err
		}
		result = append(result, methodRule{method: method, bWins: override.WinnerIsB})
	}
	return result, nil
}

// resolveMerges sources each method from A, the companion call needs a same parameter overload on B
func resolveMerges(declA, declB *Declarations, cfg *Config) ([]methodRule, error) {
	var result []methodRule
	for _, entry := range cfg.Merges() {
		method, err := declA.MethodByName(entry.Name)
		if err != nil {
			return nil, err
		}
		if _, err = declB.MethodOverload(entry.Name, method.ParameterTypes()); err != nil {
			return nil, err
		}
		result = append(result, methodRule{method: method, before: entry.Before})
	}
	return result, nil
}

// NewEngine creates an engine
func NewEngine(opts ...Option) *Engine {
	ret := &Engine{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
