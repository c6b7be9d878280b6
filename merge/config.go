package merge

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config describes how two classes are merged
type Config struct {
	ClassA                string   `yaml:"classA" json:"classA"`
	ClassB                string   `yaml:"classB" json:"classB"`
	MergeFieldsByName     bool     `yaml:"mergeFieldsByName" json:"mergeFieldsByName"`
	FieldNamesToMerge     []string `yaml:"fieldNamesToMerge" json:"fieldNamesToMerge" validate:"unique,dive,required"`
	MethodNamesToMerge    []string `yaml:"methodNamesToMerge" json:"methodNamesToMerge" validate:"unique,dive,required"`
	MethodMergeOrder      []bool   `yaml:"methodMergeOrder" json:"methodMergeOrder" validate:"eqfield=MethodNamesToMerge"`
	MethodNamesToOverride []string `yaml:"methodNamesToOverride" json:"methodNamesToOverride" validate:"unique,dive,required"`
	OverrideWinnerIsB     []bool   `yaml:"overrideWinnerIsB" json:"overrideWinnerIsB" validate:"eqfield=MethodNamesToOverride"`
}

// MethodMerge is one method chaining entry
type MethodMerge struct {
	Name string
	// Before invokes the companion before the own body
	Before bool
}

// MethodOverride is one method replacement entry
type MethodOverride struct {
	Name      string
	WinnerIsB bool
}

// Merges returns method merge entries in configuration order
func (c *Config) Merges() []MethodMerge {
	var result = make([]MethodMerge, 0, len(c.MethodNamesToMerge))
	for i, name := range c.MethodNamesToMerge {
		result = append(result, MethodMerge{Name: name, Before: c.MethodMergeOrder[i]})
	}
	return result
}

// Overrides returns method override entries in configuration order
func (c *Config) Overrides() []MethodOverride {
	var result = make([]MethodOverride, 0, len(c.MethodNamesToOverride))
	for i, name := range c.MethodNamesToOverride {
		result = append(result, MethodOverride{Name: name, WinnerIsB: c.OverrideWinnerIsB[i]})
	}
	return result
}

var configValidate = newConfigValidator()

func newConfigValidator() *validator.Validate {
	ret := validator.New()
	ret.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return ret
}

// Validate checks option consistency, the first problem is returned as ConfigurationError
func (c *Config) Validate() error {
	if c == nil {
		return &ConfigurationError{Reason: "configuration is nil"}
	}
	if err := configValidate.Struct(c); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			return asConfigurationError(fieldErrors[0])
		}
		return &ConfigurationError{Reason: err.Error()}
	}
	if c.MergeFieldsByName && len(c.FieldNamesToMerge) > 0 {
		return &ConfigurationError{Option: "fieldNamesToMerge", Reason: "must be empty when mergeFieldsByName is true"}
	}
	overridden := make(map[string]bool, len(c.MethodNamesToOverride))
	for _, name := range c.MethodNamesToOverride {
		overridden[name] = true
	}
	for _, name := range c.MethodNamesToMerge {
		if overridden[name] {
			return &ConfigurationError{Option: "methodNamesToMerge", Reason: fmt.Sprintf("method %s is also listed in methodNamesToOverride", name)}
		}
	}
	return nil
}

// validateSources checks class locations required by file based configuration
func (c *Config) validateSources() error {
	if strings.TrimSpace(c.ClassA) == "" {
		return &ConfigurationError{Option: "classA", Reason: "is required"}
	}
	if strings.TrimSpace(c.ClassB) == "" {
		return &ConfigurationError{Option: "classB", Reason: "is required"}
	}
	return nil
}

func asConfigurationError(fieldError validator.FieldError) *ConfigurationError {
	option := fieldError.Namespace()
	if idx := strings.Index(option, "."); idx != -1 {
		option = option[idx+1:]
	}
	switch fieldError.Tag() {
	case "eqfield":
		return &ConfigurationError{Option: option, Reason: fmt.Sprintf("must have the same length as %s", toOptionName(fieldError.Param()))}
	case "unique":
		return &ConfigurationError{Option: option, Reason: "contains duplicate names"}
	case "required":
		return &ConfigurationError{Option: option, Reason: "name must not be empty"}
	}
	return &ConfigurationError{Option: option, Reason: fmt.Sprintf("failed %s validation", fieldError.Tag())}
}

func toOptionName(structField string) string {
	if field, ok := reflect.TypeOf(Config{}).FieldByName(structField); ok {
		return strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
	}
	return structField
}
