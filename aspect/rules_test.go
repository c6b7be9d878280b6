package aspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/classmerge/inspector/graph"
)

var (
	research   = Entity{Package: "personnel", Name: "Research"}
	department = Entity{Package: "org.hr", Name: "Research"}
)

func param(name, typeName string) *graph.Parameter {
	return &graph.Parameter{Name: name, Type: &graph.Type{Name: typeName}}
}

func method(name, result string, params ...*graph.Parameter) *graph.Function {
	ret := &graph.Function{Name: name, Parameters: params}
	if result != "" {
		ret.Results = []*graph.Parameter{{Type: &graph.Type{Name: result}}}
	}
	return ret
}

func TestEntity(t *testing.T) {
	tests := []struct {
		entity   Entity
		wantType string
		wantRef  string
	}{
		{entity: research, wantType: "personnel.Research", wantRef: "personnelResearch"},
		{entity: department, wantType: "org.hr.Research", wantRef: "orgHrResearch"},
		{entity: Entity{Name: "Main"}, wantType: "Main", wantRef: "main"},
	}
	for _, tt := range tests {
		t.Run(tt.wantType, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.entity.Type())
			assert.Equal(t, tt.wantRef, tt.entity.Ref())
		})
	}
}

func TestImports(t *testing.T) {
	actual := Imports(
		[]graph.Import{{Path: "java.util.List"}, {Path: "java.io.*"}},
		[]graph.Import{{Path: "java.util.List"}, {Path: "java.lang.Math.max", IsStatic: true}},
	)
	assert.Equal(t, "import java.io.*;\nimport java.util.List;\nimport static java.lang.Math.max;\n", actual)
	assert.Equal(t, "", Imports(nil, nil))
}

func TestConstruction(t *testing.T) {
	ctor := &graph.Function{Name: "Research", Parameters: []*graph.Parameter{param("name", "String"), param("target", "int")}}

	assert.Equal(t, "    private org.hr.Research personnel.Research.orgHrResearch;\n", InstanceReference(research, department))

	assert.Equal(t,
		"    pointcut personnelResearchConstruction(String name, int targetArg) : call(personnel.Research.new(String, int)) && args(name, targetArg) && !within(MergeResearch);\n",
		ConstructionPointcut("MergeResearch", research, ctor))

	assert.Equal(t, `    after(String name, int targetArg) returning(personnel.Research created) : personnelResearchConstruction(name, targetArg) {
        linkPersonnelResearch(created, name, targetArg);
    }
`, ConstructionAdvice(research, ctor))

	assert.Equal(t, `    private static void linkPersonnelResearch(personnel.Research created, String name, int targetArg) {
        if (created.orgHrResearch != null) {
            return;
        }
        org.hr.Research companion = new org.hr.Research(name, targetArg);
        created.orgHrResearch = companion;
        companion.personnelResearch = created;
    }
`, ConstructionLink(research, department, ctor, Seed{}))
}

func TestConstructionLink_Seed(t *testing.T) {
	ctor := &graph.Function{Name: "Research", Parameters: []*graph.Parameter{param("name", "String")}}
	seed := Seed{Owner: research, Fields: []string{"tags", "level"}}

	assert.Equal(t, `    private static void linkPersonnelResearch(personnel.Research created, String name) {
        if (created.orgHrResearch != null) {
            return;
        }
        org.hr.Research companion = new org.hr.Research(name);
        created.tags = companion.tags;
        created.level = companion.level;
        created.orgHrResearch = companion;
        companion.personnelResearch = created;
    }
`, ConstructionLink(research, department, ctor, seed))

	assert.Equal(t, `    private static void linkOrgHrResearch(org.hr.Research created, String name) {
        if (created.personnelResearch != null) {
            return;
        }
        personnel.Research companion = new personnel.Research(name);
        companion.tags = created.tags;
        companion.level = created.level;
        created.personnelResearch = companion;
        companion.orgHrResearch = created;
    }
`, ConstructionLink(department, research, ctor, seed))
}

func TestConstruction_NoArgs(t *testing.T) {
	ctor := &graph.Function{Name: "Research"}
	assert.Equal(t,
		"    pointcut personnelResearchConstruction() : call(personnel.Research.new()) && !within(MergeResearch);\n",
		ConstructionPointcut("MergeResearch", research, ctor))
	assert.Contains(t, ConstructionAdvice(research, ctor), "linkPersonnelResearch(created);")
}

func TestFieldRedirect(t *testing.T) {
	tests := []struct {
		name    string
		field   *graph.Field
		storage Storage
		expect  string
	}{
		{
			name:    "instance field",
			field:   &graph.Field{Name: "age", Type: &graph.Type{Name: "int"}, Modifiers: []string{"private"}},
			storage: Declared,
			expect: `    int around(org.hr.Research target) : get(int org.hr.Research.age) && target(target) && !within(MergeResearch) {
        if (target.personnelResearch == null) {
            return proceed(target);
        }
        return target.personnelResearch.age;
    }

    void around(org.hr.Research target, int value) : set(int org.hr.Research.age) && target(target) && args(value) && !within(MergeResearch) {
        if (target.personnelResearch == null) {
            proceed(target, value);
            return;
        }
        target.personnelResearch.age = value;
    }
`,
		},
		{
			name:    "final field is read only",
			field:   &graph.Field{Name: "id", Type: &graph.Type{Name: "long"}, Modifiers: []string{"private", "final"}},
			storage: Declared,
			expect: `    long around(org.hr.Research target) : get(long org.hr.Research.id) && target(target) && !within(MergeResearch) {
        if (target.personnelResearch == null) {
            return proceed(target);
        }
        return target.personnelResearch.id;
    }
`,
		},
		{
			name:    "static field",
			field:   &graph.Field{Name: "count", Type: &graph.Type{Name: "int"}, Modifiers: []string{"static"}, IsStatic: true},
			storage: Declared,
			expect: `    int around() : get(static int org.hr.Research.count) && !within(MergeResearch) {
        return personnel.Research.count;
    }

    void around(int value) : set(static int org.hr.Research.count) && args(value) && !within(MergeResearch) {
        personnel.Research.count = value;
    }
`,
		},
		{
			name:    "field introduced on A",
			field:   &graph.Field{Name: "tags", Type: &graph.Type{Name: "List<String>"}, Modifiers: []string{"private", "final"}},
			storage: Introduced,
			expect: `    private List<String> personnel.Research.tags;

    List<String> around(org.hr.Research target) : get(List<String> org.hr.Research.tags) && target(target) && !within(MergeResearch) {
        if (target.personnelResearch == null) {
            return proceed(target);
        }
        return target.personnelResearch.tags;
    }

    void around(org.hr.Research target, List<String> value) : set(List<String> org.hr.Research.tags) && target(target) && args(value) && !within(MergeResearch) {
        if (target.personnelResearch == null) {
            proceed(target, value);
            return;
        }
        target.personnelResearch.tags = value;
    }
`,
		},
		{
			name:    "field inherited by A",
			field:   &graph.Field{Name: "name", Type: &graph.Type{Name: "String"}, Modifiers: []string{"protected"}, Comment: "Display name\nNever null"},
			storage: Inherited,
			expect: `    // Display name
    // Never null
    String around(org.hr.Research target) : get(String org.hr.Research.name) && target(target) && !within(MergeResearch) {
        if (target.personnelResearch == null) {
            return proceed(target);
        }
        return target.personnelResearch.name;
    }

    void around(org.hr.Research target, String value) : set(String org.hr.Research.name) && target(target) && args(value) && !within(MergeResearch) {
        if (target.personnelResearch == null) {
            proceed(target, value);
            return;
        }
        target.personnelResearch.name = value;
    }
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := FieldRedirect("MergeResearch", research, department, tt.field, tt.storage)
			assert.Equal(t, tt.expect, actual)
		})
	}
}

func TestMethodOverride(t *testing.T) {
	tests := []struct {
		name   string
		loser  Entity
		winner Entity
		method *graph.Function
		expect string
	}{
		{
			name:   "void",
			loser:  research,
			winner: department,
			method: method("check", ""),
			expect: `    void around(personnel.Research target) : call(void personnel.Research.check()) && target(target) && !within(MergeResearch) {
        if (target.orgHrResearch == null) {
            proceed(target);
            return;
        }
        target.orgHrResearch.check();
    }
`,
		},
		{
			name:   "result with arguments",
			loser:  department,
			winner: research,
			method: method("test", "double", param("s", "String"), param("i", "int")),
			expect: `    double around(org.hr.Research target, String s, int i) : call(double org.hr.Research.test(String, int)) && target(target) && args(s, i) && !within(MergeResearch) {
        if (target.personnelResearch == null) {
            return proceed(target, s, i);
        }
        return target.personnelResearch.test(s, i);
    }
`,
		},
		{
			name:   "static with throws",
			loser:  research,
			winner: department,
			method: func() *graph.Function {
				ret := method("load", "int", param("path", "String"))
				ret.IsStatic = true
				ret.Throws = []string{"IOException"}
				return ret
			}(),
			expect: `    int around(String path) throws IOException : call(static int personnel.Research.load(String)) && args(path) && !within(MergeResearch) {
        return org.hr.Research.load(path);
    }
`,
		},
		{
			name:   "varargs",
			loser:  research,
			winner: department,
			method: method("join", "String", param("parts", "String...")),
			expect: `    String around(personnel.Research target, String[] parts) : call(String personnel.Research.join(String...)) && target(target) && args(parts) && !within(MergeResearch) {
        if (target.orgHrResearch == null) {
            return proceed(target, parts);
        }
        return target.orgHrResearch.join(parts);
    }
`,
		},
		{
			name:   "documented",
			loser:  research,
			winner: department,
			method: func() *graph.Function {
				ret := method("getAge", "int")
				ret.Comment = "Returns the age.\nNever negative."
				return ret
			}(),
			expect: `    // Returns the age.
    // Never negative.
    int around(personnel.Research target) : call(int personnel.Research.getAge()) && target(target) && !within(MergeResearch) {
        if (target.orgHrResearch == null) {
            return proceed(target);
        }
        return target.orgHrResearch.getAge();
    }
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, MethodOverride("MergeResearch", tt.loser, tt.winner, tt.method))
		})
	}
}

func TestMethodMerge(t *testing.T) {
	tests := []struct {
		name   string
		method *graph.Function
		before bool
		expect string
	}{
		{
			name:   "before",
			method: method("run", ""),
			before: true,
			expect: `    void around(personnel.Research target) : call(void personnel.Research.run()) && target(target) && !within(MergeResearch) {
        if (target.orgHrResearch != null) {
            target.orgHrResearch.run();
        }
        proceed(target);
    }
`,
		},
		{
			name:   "after",
			method: method("run", ""),
			expect: `    void around(personnel.Research target) : call(void personnel.Research.run()) && target(target) && !within(MergeResearch) {
        proceed(target);
        if (target.orgHrResearch != null) {
            target.orgHrResearch.run();
        }
    }
`,
		},
		{
			name:   "after with result",
			method: method("describe", "String", param("result", "String")),
			expect: `    String around(personnel.Research target, String resultArg) : call(String personnel.Research.describe(String)) && target(target) && args(resultArg) && !within(MergeResearch) {
        String result = proceed(target, resultArg);
        if (target.orgHrResearch != null) {
            target.orgHrResearch.describe(resultArg);
        }
        return result;
    }
`,
		},
		{
			name: "static before",
			method: func() *graph.Function {
				ret := method("reset", "")
				ret.IsStatic = true
				return ret
			}(),
			before: true,
			expect: `    void around() : call(static void personnel.Research.reset()) && !within(MergeResearch) {
        org.hr.Research.reset();
        proceed();
    }
`,
		},
		{
			name: "documented",
			method: func() *graph.Function {
				ret := method("run", "")
				ret.Comment = "Runs 100% of checks"
				return ret
			}(),
			expect: `    // Runs 100% of checks
    void around(personnel.Research target) : call(void personnel.Research.run()) && target(target) && !within(MergeResearch) {
        proceed(target);
        if (target.orgHrResearch != null) {
            target.orgHrResearch.run();
        }
    }
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, MethodMerge("MergeResearch", research, department, tt.method, tt.before))
		})
	}
}
