package repository

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

var (
	parentRegex     = regexp.MustCompile(`(?s)<parent>.*?</parent>`)
	artifactIDRegex = regexp.MustCompile(`<artifactId>\s*([^<\s]+)\s*</artifactId>`)
	gradleNameRegex = regexp.MustCompile(`(?:rootProject|project)\.name\s*=\s*['"]([^'"]+)['"]`)
)

// Detector identifies project root folders and provides project-related information
type Detector struct {
	// Common project root marker files/directories
	markers []string
	fs      afs.Service
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		markers: []string{
			"pom.xml",          // Java/Maven projects
			"build.gradle",     // Java/Gradle projects
			"build.gradle.kts", // Java/Gradle Kotlin DSL projects
			"go.mod",           // Go projects
			".git",             // Generic VCS marker
		},
		fs: afs.New(),
	}
}

// DetectProject identifies the project root for the given file path and returns project info
func (d *Detector) DetectProject(ctx context.Context, filePath string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, projectType := d.findProjectRoot(startDir)
	info := &Project{
		Type:     "unknown",
		RootPath: startDir,
	}
	if rootPath != "" {
		info.RootPath = rootPath
		info.Type = projectType
	}

	relPath, err := filepath.Rel(info.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	info.RelativePath = filepath.ToSlash(relPath)
	info.Name = d.extractProjectName(ctx, info)
	return info, nil
}

// findProjectRoot searches up from the current directory for project markers
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, determineProjectType(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

// extractProjectName attempts to extract a project name from build files
func (d *Detector) extractProjectName(ctx context.Context, project *Project) string {
	rootPath := project.RootPath
	switch project.Type {
	case "java":
		if name := d.match(ctx, filepath.Join(rootPath, "pom.xml"), artifactIDRegex, parentRegex); name != "" {
			return name
		}
		for _, candidate := range []string{"settings.gradle", "settings.gradle.kts", "build.gradle", "build.gradle.kts"} {
			if name := d.match(ctx, filepath.Join(rootPath, candidate), gradleNameRegex, nil); name != "" {
				return name
			}
		}
	case "go":
		goModPath := filepath.Join(rootPath, "go.mod")
		if content, _ := d.fs.DownloadWithURL(ctx, goModPath); len(content) > 0 {
			if mod, _ := modfile.Parse(goModPath, content, nil); mod != nil && mod.Module != nil {
				project.GoModule = mod.Module
				return mod.Module.Mod.Path
			}
		}
	}
	return filepath.Base(rootPath)
}

func (d *Detector) match(ctx context.Context, location string, expr, strip *regexp.Regexp) string {
	if _, err := os.Stat(location); err != nil {
		return ""
	}
	data, err := d.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return ""
	}
	if strip != nil {
		data = strip.ReplaceAll(data, nil)
	}
	matches := expr.FindSubmatch(data)
	if len(matches) < 2 {
		return ""
	}
	return string(matches[1])
}

// determineProjectType identifies the type of project based on the marker file
func determineProjectType(marker string) string {
	switch marker {
	case "go.mod":
		return "go"
	case "pom.xml", "build.gradle", "build.gradle.kts":
		return "java"
	case ".git":
		return "git"
	default:
		return "unknown"
	}
}
