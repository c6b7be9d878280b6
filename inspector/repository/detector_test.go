package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/classmerge/inspector/repository"
)

func TestDetector_DetectProject(t *testing.T) {
	tests := []struct {
		description string
		files       map[string]string
		probe       string
		expectType  string
		expectName  string
		expectRel   string
	}{
		{
			description: "maven project skips parent artifact",
			files: map[string]string{
				"pom.xml":                   "<project><parent><artifactId>corp-parent</artifactId></parent><artifactId>payroll</artifactId></project>",
				"src/payroll/Research.java": "package payroll;",
			},
			probe:      "src/payroll/Research.java",
			expectType: "java",
			expectName: "payroll",
			expectRel:  "src/payroll/Research.java",
		},
		{
			description: "gradle project reads settings",
			files: map[string]string{
				"build.gradle":    "apply plugin: 'java'",
				"settings.gradle": "rootProject.name = 'personnel'",
				"src/input.json":  "{}",
			},
			probe:      "src",
			expectType: "java",
			expectName: "personnel",
			expectRel:  "src",
		},
		{
			description: "go module",
			files: map[string]string{
				"go.mod":    "module github.com/acme/tool\n\ngo 1.24\n",
				"pkg/a.txt": "a",
			},
			probe:      "pkg/a.txt",
			expectType: "go",
			expectName: "github.com/acme/tool",
			expectRel:  "pkg/a.txt",
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			root := t.TempDir()
			for name, content := range tc.files {
				location := filepath.Join(root, name)
				require.NoError(t, os.MkdirAll(filepath.Dir(location), 0755))
				require.NoError(t, os.WriteFile(location, []byte(content), 0644))
			}
			project, err := repository.New().DetectProject(context.Background(), filepath.Join(root, tc.probe))
			require.NoError(t, err)
			expectRoot, _ := filepath.EvalSymlinks(root)
			actualRoot, _ := filepath.EvalSymlinks(project.RootPath)
			assert.Equal(t, expectRoot, actualRoot)
			assert.Equal(t, tc.expectType, project.Type)
			assert.Equal(t, tc.expectName, project.Name)
			assert.Equal(t, tc.expectRel, project.RelativePath)
		})
	}
}

func TestDetector_DetectProject_Missing(t *testing.T) {
	_, err := repository.New().DetectProject(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
