package project

import "errors"

// Validation errors for the answer model.
var (
	ErrEmptyProjectName   = errors.New("project name must not be empty")
	ErrUnsafeProjectName  = errors.New("project name contains unsafe characters")
	ErrUnknownFramework   = errors.New("unknown framework")
	ErrUnknownLanguage    = errors.New("unknown language")
	ErrUnknownRouting     = errors.New("unknown routing mode")
	ErrUnknownUILibrary   = errors.New("unknown ui library")
	ErrInvalidCombination = errors.New("invalid answer combination")
)

// Orchestration errors.
var (
	// ErrProjectExists is returned when the target directory already
	// contains a package.json and --force was not given.
	ErrProjectExists = errors.New("target directory already contains a project")

	// ErrNoProject is returned by feature detection when the current
	// directory does not look like a generated project.
	ErrNoProject = errors.New("no package.json found; run inside a generated project")

	// ErrUnknownFeature is returned by `add` for unrecognized features.
	ErrUnknownFeature = errors.New("unknown feature")
)
