package project

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/webstrap-cli/webstrap/internal/template"
)

// fakeRunner records invocations and simulates the upstream generators
// by writing the files create-next-app / Vite would leave behind.
type fakeRunner struct {
	calls      []string
	typescript bool
	failOn     string
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	call := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, call)

	if f.failOn != "" && strings.Contains(call, f.failOn) {
		return fmt.Errorf("simulated failure for %q", f.failOn)
	}

	if strings.Contains(call, "create-next-app@latest") || strings.Contains(call, "vite@latest") {
		var projectName string
		for i, a := range args {
			if a == "create-next-app@latest" || a == "vite@latest" {
				projectName = args[i+1]
				break
			}
		}
		root := filepath.Join(dir, projectName)
		if err := os.MkdirAll(root, 0o755); err != nil {
			return err
		}
		manifest := `{"name": %q, "dependencies": {"react": "19.0.0"}, "scripts": {"dev": "vite"}}`
		if strings.Contains(call, "create-next-app") {
			manifest = `{"name": %q, "dependencies": {"next": "15.0.0", "react": "19.0.0"}, "scripts": {"dev": "next dev"}}`
		}
		if err := os.WriteFile(filepath.Join(root, "package.json"), fmt.Appendf(nil, manifest, projectName), 0o644); err != nil {
			return err
		}
		if f.typescript {
			return os.WriteFile(filepath.Join(root, "tsconfig.json"), []byte(`{"compilerOptions": {}}`), 0o644)
		}
	}
	return nil
}

func (f *fakeRunner) calledWith(substr string) bool {
	return slices.ContainsFunc(f.calls, func(c string) bool {
		return strings.Contains(c, substr)
	})
}

// fakeVC records version-control operations.
type fakeVC struct {
	inited    bool
	staged    bool
	committed string
}

func (v *fakeVC) Init(context.Context) error     { v.inited = true; return nil }
func (v *fakeVC) StageAll(context.Context) error { v.staged = true; return nil }
func (v *fakeVC) Commit(_ context.Context, msg string) error {
	v.committed = msg
	return nil
}

func newTestInitializer(t *testing.T, r Runner, vc *fakeVC) *Initializer {
	t.Helper()
	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		t.Fatal(err)
	}
	resolver := template.NewResolver(template.NewRenderer(fsys))
	gitFn := func(string) (VersionControl, error) { return vc, nil }
	return NewInitializer(r, resolver, gitFn, nil)
}

func mustExist(t *testing.T, root string, rel string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
		t.Errorf("expected %s to exist: %v", rel, err)
	}
}

func mustNotExist(t *testing.T, root string, rel string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err == nil {
		t.Errorf("expected %s to be absent", rel)
	}
}

func TestInitNextFullStack(t *testing.T) {
	parent := t.TempDir()
	runner := &fakeRunner{typescript: true}
	vc := &fakeVC{}
	init := newTestInitializer(t, runner, vc)

	ans := validAnswers()
	ans.Redux = true
	ans.UILibrary = UILibraryShadcn

	result, err := init.Init(context.Background(), InitOptions{ParentDir: parent, Answers: ans})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	root := result.ProjectRoot
	if root != filepath.Join(parent, "my-app") {
		t.Errorf("project root = %q", root)
	}

	for _, dir := range PlanFolders(FrameworkNext) {
		mustExist(t, root, dir)
	}

	// Auth template set, rooted at the top level for next.
	mustExist(t, root, "services/apiClient.ts")
	mustExist(t, root, "services/endpoints.ts")
	mustExist(t, root, "lib/routes.ts")
	mustExist(t, root, "lib/auth.ts")

	// Redux template set.
	mustExist(t, root, "lib/store.ts")
	mustExist(t, root, "lib/userSlice.ts")
	mustExist(t, root, "lib/userThunks.ts")
	mustExist(t, root, "hooks/useStore.ts")

	mustExist(t, root, "README.md")

	env, err := os.ReadFile(filepath.Join(root, ".env"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(env), "NEXT_PUBLIC_API_URL") {
		t.Errorf(".env missing prefixed vars: %q", env)
	}
	if !strings.Contains(string(env), "AUTH_SECRET=") {
		t.Errorf(".env missing auth secret: %q", env)
	}

	// Manifest merge and alias rewrite ran.
	manifest, _ := os.ReadFile(filepath.Join(root, "package.json"))
	if !strings.Contains(string(manifest), "prettier") {
		t.Errorf("pinned devDependencies not merged: %s", manifest)
	}
	tsconfig, _ := os.ReadFile(filepath.Join(root, "tsconfig.json"))
	if !strings.Contains(string(tsconfig), "@/*") {
		t.Errorf("path alias not rewritten: %s", tsconfig)
	}

	if !runner.calledWith("axios") {
		t.Error("auth dependencies not installed")
	}
	if !runner.calledWith("@reduxjs/toolkit") {
		t.Error("redux dependencies not installed")
	}
	if !runner.calledWith("tailwind-merge") {
		t.Error("shadcn prerequisites not installed")
	}
	if len(result.NextSteps) == 0 {
		t.Error("shadcn follow-up step missing")
	}

	if !vc.inited || !vc.staged || vc.committed == "" {
		t.Errorf("version control not bootstrapped: %+v", vc)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestInitReactNoAuth(t *testing.T) {
	parent := t.TempDir()
	runner := &fakeRunner{}
	vc := &fakeVC{}
	init := newTestInitializer(t, runner, vc)

	ans := Answers{
		ProjectName: "my-app",
		Framework:   FrameworkReact,
		Language:    LanguageJS,
		UILibrary:   UILibraryNone,
	}

	result, err := init.Init(context.Background(), InitOptions{ParentDir: parent, Answers: ans})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	root := result.ProjectRoot

	for _, dir := range PlanFolders(FrameworkReact) {
		mustExist(t, root, dir)
	}

	// No auth requested: the auth set must be completely absent.
	mustNotExist(t, root, "src/services/apiClient.js")
	mustNotExist(t, root, "src/services/endpoints.js")
	mustNotExist(t, root, "src/routes/routes.js")
	mustNotExist(t, root, "src/utils/auth.js")
	mustNotExist(t, root, "src/store/store.js")

	mustExist(t, root, "vite.config.js")
	mustExist(t, root, "src/index.css")

	env, _ := os.ReadFile(filepath.Join(root, ".env"))
	if !strings.Contains(string(env), "VITE_API_URL") {
		t.Errorf(".env missing VITE_ vars: %q", env)
	}

	if !runner.calledWith("react-router-dom") {
		t.Error("router not installed for react")
	}
	if !runner.calledWith("tailwindcss") {
		t.Error("tailwind not installed for react")
	}
	if runner.calledWith("axios") {
		t.Error("auth dependencies installed without auth")
	}
}

func TestInitEnvFailureIsRecoverable(t *testing.T) {
	parent := t.TempDir()
	runner := &fakeRunner{typescript: true}
	vc := &fakeVC{}
	init := newTestInitializer(t, runner, vc)

	// A directory where .gitignore should be makes the env step fail.
	root := filepath.Join(parent, "my-app")
	if err := os.MkdirAll(filepath.Join(root, ".gitignore"), 0o755); err != nil {
		t.Fatal(err)
	}

	ans := validAnswers()
	result, err := init.Init(context.Background(), InitOptions{ParentDir: parent, Answers: ans})
	if err != nil {
		t.Fatalf("Init must survive an env failure: %v", err)
	}

	if len(result.Warnings) == 0 {
		t.Fatal("env failure not recorded as warning")
	}
	if !strings.Contains(result.Warnings[0], "environment") {
		t.Errorf("warning = %q", result.Warnings[0])
	}

	// Later steps still ran.
	mustExist(t, result.ProjectRoot, "README.md")
	mustExist(t, result.ProjectRoot, "services/apiClient.ts")
	if vc.committed == "" {
		t.Error("final step skipped after recoverable failure")
	}
}

func TestInitRefusesExistingProject(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "my-app")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	init := newTestInitializer(t, &fakeRunner{}, &fakeVC{})
	_, err := init.Init(context.Background(), InitOptions{ParentDir: parent, Answers: validAnswers()})
	if !errors.Is(err, ErrProjectExists) {
		t.Fatalf("Init = %v, want ErrProjectExists", err)
	}
}

func TestInitValidatesAnswersFirst(t *testing.T) {
	runner := &fakeRunner{}
	init := newTestInitializer(t, runner, &fakeVC{})

	ans := validAnswers()
	ans.AuthStorage = ""
	_, err := init.Init(context.Background(), InitOptions{ParentDir: t.TempDir(), Answers: ans})
	if !errors.Is(err, ErrInvalidCombination) {
		t.Fatalf("Init = %v, want validation error", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("steps ran despite invalid answers: %v", runner.calls)
	}
}

func TestInitFatalGeneratorFailureAborts(t *testing.T) {
	runner := &fakeRunner{failOn: "create-next-app"}
	vc := &fakeVC{}
	init := newTestInitializer(t, runner, vc)

	_, err := init.Init(context.Background(), InitOptions{ParentDir: t.TempDir(), Answers: validAnswers()})
	if err == nil {
		t.Fatal("expected generator failure to abort")
	}
	if vc.inited {
		t.Error("version control ran after fatal failure")
	}
}

// fakeReporter records progress callbacks.
type fakeReporter struct {
	total    int
	started  []string
	finished []string
}

func (r *fakeReporter) RunStarted(total int)     { r.total = total }
func (r *fakeReporter) StepStarted(name string)  { r.started = append(r.started, name) }
func (r *fakeReporter) StepFinished(name string) { r.finished = append(r.finished, name) }

func TestInitReportsEveryStep(t *testing.T) {
	runner := &fakeRunner{typescript: true}
	init := newTestInitializer(t, runner, &fakeVC{})
	rep := &fakeReporter{}
	init.SetReporter(rep)

	_, err := init.Init(context.Background(), InitOptions{ParentDir: t.TempDir(), Answers: validAnswers()})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	if rep.total != len(rep.started) {
		t.Errorf("announced %d steps, started %d", rep.total, len(rep.started))
	}
	if len(rep.finished) != len(rep.started) {
		t.Errorf("started %d steps, finished %d", len(rep.started), len(rep.finished))
	}
	if rep.started[0] != "create project root" {
		t.Errorf("first step = %q", rep.started[0])
	}
}
