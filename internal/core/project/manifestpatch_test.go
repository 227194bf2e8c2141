package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readManifest(t *testing.T, root string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestMergePackageJSONSupplementsOnly(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{
  "name": "demo",
  "dependencies": {"next": "15.0.0", "clsx": "1.0.0"},
  "scripts": {"dev": "next dev"}
}`)

	err := MergePackageJSON(root, PinnedNextDeps, PinnedNextDevDeps, PinnedNextScripts)
	if err != nil {
		t.Fatalf("MergePackageJSON: %v", err)
	}

	m := readManifest(t, root)
	deps := m["dependencies"].(map[string]any)

	// Existing pins win over ours.
	if deps["clsx"] != "1.0.0" {
		t.Errorf("existing clsx pin replaced: %v", deps["clsx"])
	}
	if deps["next"] != "15.0.0" {
		t.Errorf("generator dependency lost: %v", deps["next"])
	}

	devDeps := m["devDependencies"].(map[string]any)
	if devDeps["prettier"] != "^3.4.2" {
		t.Errorf("prettier not merged: %v", devDeps)
	}

	scripts := m["scripts"].(map[string]any)
	if scripts["dev"] != "next dev" {
		t.Errorf("existing script replaced: %v", scripts["dev"])
	}
	if scripts["format"] != "prettier --write ." {
		t.Errorf("format script not merged: %v", scripts)
	}
}

func TestMergePackageJSONMissingFile(t *testing.T) {
	root := t.TempDir()
	if err := MergePackageJSON(root, PinnedNextDeps, nil, nil); err == nil {
		t.Fatal("expected error for missing package.json")
	}
}

func TestRewritePathAliasNext(t *testing.T) {
	root := t.TempDir()
	tsconfig := filepath.Join(root, "tsconfig.json")
	if err := os.WriteFile(tsconfig, []byte(`{"compilerOptions": {"strict": true}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	ans := validAnswers()
	rewritten, err := RewritePathAlias(root, ans)
	if err != nil {
		t.Fatalf("RewritePathAlias: %v", err)
	}
	if !rewritten {
		t.Fatal("config not rewritten")
	}

	data, _ := os.ReadFile(tsconfig)
	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatal(err)
	}
	opts := cfg["compilerOptions"].(map[string]any)
	if opts["strict"] != true {
		t.Error("existing compiler option lost")
	}
	if opts["baseUrl"] != "." {
		t.Errorf("baseUrl = %v", opts["baseUrl"])
	}
	paths := opts["paths"].(map[string]any)
	targets := paths["@/*"].([]any)
	if len(targets) != 1 || targets[0] != "./*" {
		t.Errorf("next alias target = %v", targets)
	}
}

func TestRewritePathAliasReactTargetsSrc(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "jsconfig.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	ans := Answers{ProjectName: "demo", Framework: FrameworkReact, Language: LanguageJS, UILibrary: UILibraryNone}
	rewritten, err := RewritePathAlias(root, ans)
	if err != nil || !rewritten {
		t.Fatalf("RewritePathAlias = %v, %v", rewritten, err)
	}

	data, _ := os.ReadFile(filepath.Join(root, "jsconfig.json"))
	var cfg map[string]any
	_ = json.Unmarshal(data, &cfg)
	paths := cfg["compilerOptions"].(map[string]any)["paths"].(map[string]any)
	if paths["@/*"].([]any)[0] != "./src/*" {
		t.Errorf("react alias target = %v", paths["@/*"])
	}
}

func TestRewritePathAliasMissingConfig(t *testing.T) {
	root := t.TempDir()
	ans := Answers{ProjectName: "demo", Framework: FrameworkReact, Language: LanguageJS, UILibrary: UILibraryNone}
	rewritten, err := RewritePathAlias(root, ans)
	if err != nil {
		t.Fatalf("missing config must not error: %v", err)
	}
	if rewritten {
		t.Error("reported rewrite with no config present")
	}
}
