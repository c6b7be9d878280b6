package repository

import "golang.org/x/mod/modfile"

// Project represents information about a detected project
type Project struct {
	RootPath     string // Absolute path to the project root directory
	Type         string // Type of project (java, go, git, unknown)
	Name         string // Name of the project (extracted from build files)
	RelativePath string // Path from project root to the specified file
	GoModule     *modfile.Module
}
