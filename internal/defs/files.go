// Package defs holds file names and permissions shared across packages.
package defs

import "io/fs"

// Common file names written into generated projects.
const (
	// EnvFile is the environment file; it is never overwritten once present.
	EnvFile = ".env"

	// PackageJSON is the npm manifest produced by the upstream generators.
	PackageJSON = "package.json"

	// TSConfigJSON is the TypeScript module-resolution config.
	TSConfigJSON = "tsconfig.json"

	// JSConfigJSON is the JavaScript module-resolution config.
	JSConfigJSON = "jsconfig.json"

	// GitIgnore is the git exclusion file appended with env entries.
	GitIgnore = ".gitignore"

	// ReadmeMD is the generated project README.
	ReadmeMD = "README.md"

	// ViteConfigTS and ViteConfigJS are the Vite build configs.
	ViteConfigTS = "vite.config.ts"
	ViteConfigJS = "vite.config.js"
)

// ConfigYAML is the persisted wizard-defaults file under ~/.webstrap/.
const ConfigYAML = "config.yaml"

// ConfigDirName is the per-user configuration directory name.
const ConfigDirName = ".webstrap"

// Filesystem permissions for created directories and files.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)
