package merge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/classmerge/inspector/graph"
	"github.com/viant/classmerge/inspector/java"
	"github.com/viant/classmerge/merge"
)

const researchSource = `package personnel;

import java.util.List;

class Helper {
}

public class Research {
    private int age;
    private List<String> tags;

    public Research(String name) {
    }

    public Research(String name, int age) {
    }

    public void check() {
    }

    public void check(int level) {
    }

    public int getAge() {
        return age;
    }
}
`

func TestDeclarations(t *testing.T) {
	file, err := java.NewInspector(nil).InspectContent(context.Background(), []byte(researchSource), "src/personnel/Research.java")
	require.NoError(t, err)

	declarations, err := merge.NewDeclarations(file)
	require.NoError(t, err)
	assert.Equal(t, "personnel", declarations.Package())
	assert.Equal(t, "Research", declarations.Name())
	assert.Equal(t, "personnel.Research", declarations.QualifiedName())
	assert.Equal(t, []graph.Import{{Name: "List", Path: "java.util.List"}}, declarations.Imports())
	assert.Len(t, declarations.Constructors(), 2)
	assert.Len(t, declarations.Fields(), 2)
	assert.Len(t, declarations.Methods(), 3)

	t.Run("field by name", func(t *testing.T) {
		field, err := declarations.FieldByName("tags")
		require.NoError(t, err)
		assert.Equal(t, "List<String>", field.TypeName())

		_, err = declarations.FieldByName("salary")
		assert.ErrorIs(t, err, merge.ErrNotFound)
		assert.EqualError(t, err, "field salary not found in personnel.Research")
	})

	t.Run("method by name", func(t *testing.T) {
		method, err := declarations.MethodByName("check")
		require.NoError(t, err)
		assert.Empty(t, method.Parameters)

		overload, err := declarations.MethodOverload("check", []string{"int"})
		require.NoError(t, err)
		assert.Equal(t, []string{"level"}, overload.ParameterNames())

		_, err = declarations.MethodOverload("check", []string{"String"})
		assert.EqualError(t, err, "method check(String) not found in personnel.Research")
	})

	t.Run("primary constructor", func(t *testing.T) {
		ctor, err := declarations.PrimaryConstructor()
		require.NoError(t, err)
		assert.Equal(t, []string{"String"}, ctor.ParameterTypes())
	})

	t.Run("accessors return copies", func(t *testing.T) {
		fields := declarations.Fields()
		fields[0] = nil
		assert.NotNil(t, declarations.Fields()[0])
	})
}

func TestNewDeclarations_Shape(t *testing.T) {
	_, err := merge.NewDeclarations(nil)
	assert.ErrorIs(t, err, merge.ErrUnsupportedShape)

	_, err = merge.NewDeclarations(&graph.File{Name: "Empty.java", Package: "empty"})
	assert.ErrorIs(t, err, merge.ErrUnsupportedShape)

	file := &graph.File{Name: "Other.java", Package: "p1", Types: []*graph.Type{{Name: "Helper"}}}
	declarations, err := merge.NewDeclarations(file)
	require.NoError(t, err)
	assert.Equal(t, "p1.Helper", declarations.QualifiedName())

	_, err = declarations.PrimaryConstructor()
	assert.ErrorIs(t, err, merge.ErrUnsupportedShape)
}

func TestNewDeclarations_LeavesModelUntouched(t *testing.T) {
	newFile := func() *graph.File {
		return &graph.File{Name: "Research.java", Package: "personnel", Types: []*graph.Type{
			{Name: "Helper"},
			{
				Name:    "Research",
				Extends: []string{"Employee"},
				Fields:  []*graph.Field{{Name: "age"}, {Name: "age"}},
				Methods: []*graph.Function{{Name: "check"}, {Name: "check", Parameters: []*graph.Parameter{{Name: "level"}}}},
			},
		}}
	}
	file := newFile()

	declarations, err := merge.NewDeclarations(file)
	require.NoError(t, err)
	assert.Equal(t, "personnel.Research", declarations.QualifiedName())
	assert.Equal(t, []string{"Employee"}, declarations.Extends())

	field, err := declarations.FieldByName("age")
	require.NoError(t, err)
	assert.Same(t, file.Types[1].Fields[0], field)
	method, err := declarations.MethodByName("check")
	require.NoError(t, err)
	assert.Same(t, file.Types[1].Methods[0], method)

	assert.Equal(t, newFile(), file)
}
