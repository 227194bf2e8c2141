package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/webstrap-cli/webstrap/internal/defs"
	"github.com/webstrap-cli/webstrap/internal/template"
)

// Runner executes external commands. Satisfied by runner.Invoker; tests
// inject fakes.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// VersionControl is the subset of git operations the orchestrator needs.
type VersionControl interface {
	Init(ctx context.Context) error
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
}

// InitOptions configures one scaffolding run.
type InitOptions struct {
	ParentDir string  // directory the project root is created under
	Answers   Answers // validated user choices
	Force     bool    // allow scaffolding into an existing project dir
}

// InitResult summarizes the outcome of a scaffolding run.
type InitResult struct {
	ProjectRoot  string
	CreatedDirs  []string
	CreatedFiles []string
	Warnings     []string // non-fatal step failures
	NextSteps    []string // manual follow-ups, markdown lines
}

// Reporter receives step progress. The CLI wires a progress bar; nil
// is a no-op.
type Reporter interface {
	RunStarted(totalSteps int)
	StepStarted(name string)
	StepFinished(name string)
}

// step is one entry of the fixed orchestration table. A fatal step
// aborts the whole run on error; a recoverable one records a warning
// and lets the run continue. There is no rollback: a failed fatal step
// leaves a partially populated directory behind.
type step struct {
	name  string
	fatal bool
	run   func(ctx context.Context) error
}

// Initializer sequences the scaffolding steps for one project.
type Initializer struct {
	runner   Runner
	resolver *template.Resolver
	gitFn    func(root string) (VersionControl, error)
	reporter Reporter
	logger   *slog.Logger
}

// NewInitializer creates an Initializer with the given collaborators.
// gitFn is called lazily with the project root once it exists.
func NewInitializer(r Runner, resolver *template.Resolver, gitFn func(root string) (VersionControl, error), logger *slog.Logger) *Initializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Initializer{runner: r, resolver: resolver, gitFn: gitFn, logger: logger}
}

// SetReporter wires a progress reporter.
func (i *Initializer) SetReporter(rep Reporter) {
	i.reporter = rep
}

// Init runs the full scaffolding sequence. The step order is fixed;
// only the environment-file step is recoverable.
func (i *Initializer) Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	ans := opts.Answers
	if err := ans.Validate(); err != nil {
		return nil, err
	}

	root := filepath.Join(opts.ParentDir, ans.ProjectName)
	result := &InitResult{ProjectRoot: root}
	tmplCtx := i.buildContext(ans)

	i.logger.Info("scaffolding project",
		"root", root,
		"framework", ans.Framework,
		"language", ans.Language,
	)

	steps := []step{
		{name: "create project root", fatal: true, run: func(ctx context.Context) error {
			return i.createRoot(root, opts.Force)
		}},
		{name: "generate base project", fatal: true, run: func(ctx context.Context) error {
			cmd := GeneratorCommand(ans)
			return i.runner.Run(ctx, opts.ParentDir, cmd.Name, cmd.Args...)
		}},
		{name: "framework post-processing", fatal: true, run: func(ctx context.Context) error {
			return i.postProcess(ctx, root, ans, tmplCtx, result)
		}},
		{name: "create directory layout", fatal: true, run: func(ctx context.Context) error {
			return i.createLayout(root, ans, result)
		}},
		{name: "set up environment files", fatal: false, run: func(ctx context.Context) error {
			return i.setupEnv(root, tmplCtx, result)
		}},
		{name: "rewrite path aliases", fatal: true, run: func(ctx context.Context) error {
			_, err := RewritePathAlias(root, ans)
			return err
		}},
		{name: "write auth templates", fatal: true, run: func(ctx context.Context) error {
			return i.writeAuth(ctx, root, ans, tmplCtx, result)
		}},
		{name: "write redux templates", fatal: true, run: func(ctx context.Context) error {
			return i.writeRedux(ctx, root, ans, tmplCtx, result)
		}},
		{name: "install ui library", fatal: true, run: func(ctx context.Context) error {
			return i.installUI(ctx, root, ans, result)
		}},
		// Re-creating the layout is idempotent; it restores anything a
		// generator post-step may have pruned.
		{name: "recreate directory layout", fatal: true, run: func(ctx context.Context) error {
			return i.createLayout(root, ans, nil)
		}},
		{name: "write readme and initialize version control", fatal: true, run: func(ctx context.Context) error {
			return i.finalize(ctx, root, tmplCtx, result)
		}},
	}

	if i.reporter != nil {
		i.reporter.RunStarted(len(steps))
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i.reporter != nil {
			i.reporter.StepStarted(s.name)
		}

		err := s.run(ctx)
		if err != nil {
			if s.fatal {
				return nil, fmt.Errorf("%s: %w", s.name, err)
			}
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s", s.name, err))
			i.logger.Warn("recoverable step failed", "step", s.name, "error", err)
		}

		if i.reporter != nil {
			i.reporter.StepFinished(s.name)
		}
	}

	i.logger.Info("project scaffolded",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)
	return result, nil
}

// buildContext derives the render context from validated answers. The
// auth secret is generated here, once per run.
func (i *Initializer) buildContext(ans Answers) *template.Context {
	return template.NewContext(template.Params{
		ProjectName: ans.ProjectName,
		TypeScript:  ans.Language == LanguageTS,
		Next:        ans.Framework == FrameworkNext,
		AppRouter:   ans.Routing == RoutingApp,
		EnvPrefix:   EnvPrefix(ans.Framework),
		AuthSecret:  GenerateSecret(SecretLength),
		Auth:        ans.Auth,
		AuthStorage: string(ans.AuthStorage),
		Redux:       ans.Redux,
		UILibrary:   string(ans.UILibrary),
	})
}

// createRoot creates the project root and guards against scaffolding
// over an existing project unless forced.
func (i *Initializer) createRoot(root string, force bool) error {
	if !force {
		if _, err := os.Stat(filepath.Join(root, defs.PackageJSON)); err == nil {
			return fmt.Errorf("%w: %s", ErrProjectExists, root)
		}
	}
	return EnsureDir(root)
}

// postProcess applies framework-specific fixups after the upstream
// generator ran. Next projects get pinned manifest entries merged in;
// React projects get the router, the CSS framework, and a rewritten
// build config.
func (i *Initializer) postProcess(ctx context.Context, root string, ans Answers, tmplCtx *template.Context, result *InitResult) error {
	if ans.Framework == FrameworkNext {
		return MergePackageJSON(root, PinnedNextDeps, PinnedNextDevDeps, PinnedNextScripts)
	}

	install := InstallCommand(false, RouterPackages...)
	if err := i.runner.Run(ctx, root, install.Name, install.Args...); err != nil {
		return err
	}
	installTW := InstallCommand(true, TailwindPackages...)
	if err := i.runner.Run(ctx, root, installTW.Name, installTW.Args...); err != nil {
		return err
	}
	return i.writeKinds(root, tmplCtx, result, template.KindViteConfig, template.KindStylesheet)
}

// createLayout creates the planned directory set; re-creation is a
// no-op per directory.
func (i *Initializer) createLayout(root string, ans Answers, result *InitResult) error {
	for _, dir := range PlanFolders(ans.Framework) {
		if err := EnsureDir(filepath.Join(root, filepath.FromSlash(dir))); err != nil {
			return err
		}
		if result != nil {
			result.CreatedDirs = append(result.CreatedDirs, dir)
		}
	}
	return nil
}

// setupEnv writes .env (create-if-absent) and appends the gitignore
// exclusions. Failures here are recoverable by contract.
func (i *Initializer) setupEnv(root string, tmplCtx *template.Context, result *InitResult) error {
	file, err := i.resolver.Resolve(template.KindEnv, tmplCtx)
	if err != nil {
		return err
	}
	created, err := WriteEnvFile(root, file.Content)
	if err != nil {
		return err
	}
	if created {
		result.CreatedFiles = append(result.CreatedFiles, file.Path)
	}
	return AppendGitIgnoreEnv(root)
}

// writeAuth installs the HTTP-client dependencies and writes the auth
// template set. Skipped entirely when auth was not requested.
func (i *Initializer) writeAuth(ctx context.Context, root string, ans Answers, tmplCtx *template.Context, result *InitResult) error {
	if !ans.Auth {
		return nil
	}
	install := InstallCommand(false, AuthPackages...)
	if err := i.runner.Run(ctx, root, install.Name, install.Args...); err != nil {
		return err
	}
	return i.writeKinds(root, tmplCtx, result,
		template.KindAPIClient, template.KindRoutes, template.KindEndpoints, template.KindAuthHelpers)
}

// writeRedux installs the store dependencies and writes the redux
// template set. Skipped when redux was not requested.
func (i *Initializer) writeRedux(ctx context.Context, root string, ans Answers, tmplCtx *template.Context, result *InitResult) error {
	if !ans.Redux {
		return nil
	}
	install := InstallCommand(false, ReduxPackages...)
	if err := i.runner.Run(ctx, root, install.Name, install.Args...); err != nil {
		return err
	}
	return i.writeKinds(root, tmplCtx, result,
		template.KindReduxStore, template.KindReduxSlice, template.KindReduxThunks, template.KindReduxHooks)
}

// installUI installs the chosen UI library's dependency set and records
// follow-up steps for libraries with their own interactive initializer.
func (i *Initializer) installUI(ctx context.Context, root string, ans Answers, result *InitResult) error {
	pkgs := UIPackages(ans.UILibrary)
	if len(pkgs) == 0 {
		return nil
	}
	install := InstallCommand(false, pkgs...)
	if err := i.runner.Run(ctx, root, install.Name, install.Args...); err != nil {
		return err
	}
	if ans.UILibrary == UILibraryShadcn {
		result.NextSteps = append(result.NextSteps,
			"Run `npx shadcn@latest init` inside the project to finish shadcn setup.")
	}
	return nil
}

// finalize writes the README and bootstraps the git repository with an
// initial commit.
func (i *Initializer) finalize(ctx context.Context, root string, tmplCtx *template.Context, result *InitResult) error {
	if err := i.writeKinds(root, tmplCtx, result, template.KindReadme); err != nil {
		return err
	}

	vc, err := i.gitFn(root)
	if err != nil {
		return err
	}
	if err := vc.Init(ctx); err != nil {
		return err
	}
	if err := vc.StageAll(ctx); err != nil {
		return err
	}
	return vc.Commit(ctx, "Initial commit from webstrap")
}

// writeKinds resolves each kind and writes its output under root,
// overwriting existing generated sources.
func (i *Initializer) writeKinds(root string, tmplCtx *template.Context, result *InitResult, kinds ...template.Kind) error {
	for _, kind := range kinds {
		file, err := i.resolver.Resolve(kind, tmplCtx)
		if err != nil {
			return err
		}
		if err := WriteFile(filepath.Join(root, filepath.FromSlash(file.Path)), file.Content); err != nil {
			return err
		}
		if result != nil {
			result.CreatedFiles = append(result.CreatedFiles, file.Path)
		}
	}
	return nil
}
