package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/webstrap-cli/webstrap/internal/defs"
)

// DetectedProject describes a previously generated project, recovered
// from its manifest and config files for the `add` command.
type DetectedProject struct {
	Framework Framework
	Language  Language
	Routing   Routing // set for next projects only
	Root      string
}

// Detect inspects root and recovers the framework and language of an
// existing project. The framework comes from the manifest dependency
// set, the language from the presence of tsconfig.json.
func Detect(root string) (*DetectedProject, error) {
	data, err := os.ReadFile(filepath.Join(root, defs.PackageJSON))
	if os.IsNotExist(err) {
		return nil, ErrNoProject
	}
	if err != nil {
		return nil, fmt.Errorf("read package.json: %w", err)
	}

	var manifest struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse package.json: %w", err)
	}

	det := &DetectedProject{Root: root, Framework: FrameworkReact, Language: LanguageJS}

	if _, ok := manifest.Dependencies["next"]; ok {
		det.Framework = FrameworkNext
		det.Routing = RoutingPages
		if _, err := os.Stat(filepath.Join(root, "app")); err == nil {
			det.Routing = RoutingApp
		}
	}
	if _, err := os.Stat(filepath.Join(root, defs.TSConfigJSON)); err == nil {
		det.Language = LanguageTS
	}

	return det, nil
}

// ServicesDir returns the directory generated service files live in for
// the detected framework.
func (d *DetectedProject) ServicesDir() string {
	if d.Framework == FrameworkNext {
		return "services"
	}
	return "src/services"
}
