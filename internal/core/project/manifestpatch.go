package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/webstrap-cli/webstrap/internal/defs"
)

// PinnedNextDeps are merged into the create-next-app manifest so every
// scaffolded project carries the same toolchain regardless of what the
// generator shipped that week.
var PinnedNextDeps = map[string]string{
	"clsx": "^2.1.1",
}

// PinnedNextDevDeps are merged into devDependencies.
var PinnedNextDevDeps = map[string]string{
	"prettier": "^3.4.2",
}

// PinnedNextScripts are merged into the scripts block.
var PinnedNextScripts = map[string]string{
	"format": "prettier --write .",
}

// MergePackageJSON merges pinned dependency, devDependency, and script
// entries into root/package.json. Existing entries win: the generator's
// own pins are never replaced, only supplemented.
func MergePackageJSON(root string, deps, devDeps, scripts map[string]string) error {
	path := filepath.Join(root, defs.PackageJSON)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	mergeSection(manifest, "dependencies", deps)
	mergeSection(manifest, "devDependencies", devDeps)
	mergeSection(manifest, "scripts", scripts)

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return WriteFile(path, append(out, '\n'))
}

// mergeSection adds entries to a string-map section of the manifest,
// creating the section when absent and keeping existing keys.
func mergeSection(manifest map[string]any, key string, add map[string]string) {
	if len(add) == 0 {
		return
	}

	section, ok := manifest[key].(map[string]any)
	if !ok {
		section = make(map[string]any, len(add))
	}
	for k, v := range add {
		if _, exists := section[k]; !exists {
			section[k] = v
		}
	}
	manifest[key] = section
}

// RewritePathAlias rewrites the tsconfig/jsconfig paths block so "@/*"
// resolves to the project root (next) or src/ (react). Missing config
// files are not an error: JS Vite projects ship no jsconfig by default.
// It reports whether a config file was rewritten.
func RewritePathAlias(root string, ans Answers) (bool, error) {
	name := defs.TSConfigJSON
	if ans.Language == LanguageJS {
		name = defs.JSConfigJSON
	}
	path := filepath.Join(root, name)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}

	aliasTarget := "./*"
	if ans.Framework == FrameworkReact {
		aliasTarget = "./src/*"
	}

	opts, ok := cfg["compilerOptions"].(map[string]any)
	if !ok {
		opts = make(map[string]any)
	}
	opts["baseUrl"] = "."
	opts["paths"] = map[string]any{"@/*": []any{aliasTarget}}
	cfg["compilerOptions"] = opts

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return false, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := WriteFile(path, append(out, '\n')); err != nil {
		return false, err
	}
	return true, nil
}

// readFileIfExists returns the file content, or "" when the file does
// not exist.
func readFileIfExists(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
