package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/webstrap-cli/webstrap/internal/cli/wizard"
	"github.com/webstrap-cli/webstrap/internal/core/project"
	"github.com/webstrap-cli/webstrap/internal/git"
	"github.com/webstrap-cli/webstrap/internal/template"
	"github.com/webstrap-cli/webstrap/internal/ui"
	"github.com/webstrap-cli/webstrap/pkg/version"
)

var initCmd = &cobra.Command{
	Use:   "init [project-name]",
	Short: "Scaffold a new React or Next.js project",
	Long: `Scaffold a new project through the interactive wizard, or fully
from flags with --non-interactive.

Examples:
  webstrap init                       Run the wizard
  webstrap init my-app                Wizard with a preset project name
  webstrap init my-app --template next-ts --non-interactive
  webstrap init my-app --framework react --language js --non-interactive`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateInitFlags,
	RunE:    runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("template", "", "Shorthand preset: next-ts, next-js, react-ts, react-js")
	initCmd.Flags().String("framework", "", "Framework: next or react")
	initCmd.Flags().String("language", "", "Language: ts or js")
	initCmd.Flags().String("routing", "", "Next.js router: app or pages (next only)")
	initCmd.Flags().Bool("auth", false, "Include the authentication setup")
	initCmd.Flags().String("storage", "", "Token storage: cookie or localStorage (with --auth)")
	initCmd.Flags().String("ui", "", "UI library: none, shadcn, or antd")
	initCmd.Flags().Bool("redux", false, "Include a Redux Toolkit store")
	initCmd.Flags().Bool("non-interactive", false, "Skip the wizard; use flags and defaults")
	initCmd.Flags().Bool("force", false, "Scaffold even if the target directory holds a project")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateInitFlags validates flag values before execution.
func validateInitFlags(cmd *cobra.Command, _ []string) error {
	if tmpl := getStringFlag(cmd, "template"); tmpl != "" {
		if _, ok := project.TemplateShorthands[tmpl]; !ok {
			return fmt.Errorf("invalid --template value %q: must be one of: next-ts, next-js, react-ts, react-js", tmpl)
		}
	}

	if fw := getStringFlag(cmd, "framework"); fw != "" && fw != "next" && fw != "react" {
		return fmt.Errorf("invalid --framework value %q: must be next or react", fw)
	}
	if lang := getStringFlag(cmd, "language"); lang != "" && lang != "ts" && lang != "js" {
		return fmt.Errorf("invalid --language value %q: must be ts or js", lang)
	}
	if routing := getStringFlag(cmd, "routing"); routing != "" && routing != "app" && routing != "pages" {
		return fmt.Errorf("invalid --routing value %q: must be app or pages", routing)
	}
	if storage := getStringFlag(cmd, "storage"); storage != "" && storage != "cookie" && storage != "localStorage" {
		return fmt.Errorf("invalid --storage value %q: must be cookie or localStorage", storage)
	}
	if uiLib := getStringFlag(cmd, "ui"); uiLib != "" && uiLib != "none" && uiLib != "shadcn" && uiLib != "antd" {
		return fmt.Errorf("invalid --ui value %q: must be none, shadcn, or antd", uiLib)
	}

	return nil
}

// runInit executes the project scaffolding workflow.
func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// npm and git availability checks (git is a non-fatal warning, the
	// generator cannot run without npm)
	if _, err := exec.LookPath("npm"); err != nil {
		return fmt.Errorf("npm is required to generate projects; install Node.js first")
	}
	if _, err := exec.LookPath("git"); err != nil {
		_, _ = fmt.Fprintf(out, "%s git is not installed; the initial commit will fail.\n", symWarning())
	}

	ans, cancelled, err := collectAnswers(cmd, args)
	if err != nil {
		return err
	}
	if cancelled {
		_, _ = fmt.Fprintln(out, "Scaffolding cancelled.")
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	initializer := newInitializer()

	headless := ui.NewHeadlessManager()
	reporter := ui.NewStepReporter(ui.NewProgress(ui.NewTheme(), headless))
	initializer.SetReporter(reporter)
	defer reporter.Close()

	result, err := initializer.Init(cmd.Context(), project.InitOptions{
		ParentDir: cwd,
		Answers:   ans,
		Force:     getBoolFlag(cmd, "force"),
	})
	reporter.Close()
	if err != nil {
		return fmt.Errorf("scaffolding failed: %w", err)
	}

	printInitSummary(cmd, ans, result)
	return nil
}

// collectAnswers builds the validated answer set from flags, the
// --template shorthand, and the wizard. The bool result reports user
// cancellation, which is not an error.
func collectAnswers(cmd *cobra.Command, args []string) (project.Answers, bool, error) {
	var ans project.Answers

	if tmpl := getStringFlag(cmd, "template"); tmpl != "" {
		ans = project.TemplateShorthands[tmpl]
	}

	if len(args) > 0 {
		ans.ProjectName = project.NormalizeProjectName(args[0])
	}
	applyInitFlags(cmd, &ans)

	nonInteractive := getBoolFlag(cmd, "non-interactive") ||
		!isatty.IsTerminal(os.Stdin.Fd())

	if nonInteractive {
		// Auth defaults on; without the wizard only an explicit
		// --auth=false turns it off.
		if !cmd.Flags().Changed("auth") {
			ans.Auth = true
		}
		if ans.Auth && ans.AuthStorage == "" {
			ans.AuthStorage = project.AuthStorageCookie
		}
		applyConfigDefaults(&ans)
		return ans, false, ans.Validate()
	}

	PrintBanner(version.GetVersion())

	result, err := wizard.Run(wizard.DefaultQuestions(wizardDefaults(ans)))
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			return ans, true, nil
		}
		return ans, false, fmt.Errorf("wizard failed: %w", err)
	}

	ans = answersFromWizard(result)
	// Flags override wizard output so scripted partial runs stay stable.
	if len(args) > 0 {
		ans.ProjectName = project.NormalizeProjectName(args[0])
	}
	applyInitFlags(cmd, &ans)

	return ans, false, ans.Validate()
}

// applyInitFlags overlays explicitly set flags onto the answer set.
func applyInitFlags(cmd *cobra.Command, ans *project.Answers) {
	if fw := getStringFlag(cmd, "framework"); fw != "" {
		ans.Framework = project.Framework(fw)
	}
	if lang := getStringFlag(cmd, "language"); lang != "" {
		ans.Language = project.Language(lang)
	}
	if routing := getStringFlag(cmd, "routing"); routing != "" {
		ans.Routing = project.Routing(routing)
	}
	if cmd.Flags().Changed("auth") {
		ans.Auth = getBoolFlag(cmd, "auth")
	}
	if storage := getStringFlag(cmd, "storage"); storage != "" {
		ans.AuthStorage = project.AuthStorage(storage)
	}
	if uiLib := getStringFlag(cmd, "ui"); uiLib != "" {
		ans.UILibrary = project.UILibrary(uiLib)
	}
	if cmd.Flags().Changed("redux") {
		ans.Redux = getBoolFlag(cmd, "redux")
	}

	if ans.Framework == project.FrameworkNext && ans.Routing == "" {
		ans.Routing = project.RoutingApp
	}
	if ans.UILibrary == "" {
		ans.UILibrary = project.UILibraryNone
	}
	if ans.Auth && ans.AuthStorage == "" {
		ans.AuthStorage = project.AuthStorageCookie
	}
}

// applyConfigDefaults fills fields still empty in non-interactive mode
// from the persisted user config.
func applyConfigDefaults(ans *project.Answers) {
	if deps == nil || deps.Config == nil {
		return
	}
	cfg := deps.Config.Get()
	if cfg == nil {
		return
	}
	if ans.ProjectName == "" {
		ans.ProjectName = cfg.Defaults.ProjectName
	}
	if ans.Framework == "" {
		ans.Framework = project.Framework(cfg.Defaults.Framework)
	}
	if ans.Language == "" {
		ans.Language = project.Language(cfg.Defaults.Language)
	}
	if ans.UILibrary == "" || ans.UILibrary == project.UILibraryNone {
		if cfg.Defaults.UILibrary != "" {
			ans.UILibrary = project.UILibrary(cfg.Defaults.UILibrary)
		}
	}
	if ans.Framework == project.FrameworkNext && ans.Routing == "" {
		ans.Routing = project.RoutingApp
	}
}

// wizardDefaults maps preset answers onto wizard pre-selections, with
// the persisted config as fallback.
func wizardDefaults(ans project.Answers) wizard.Defaults {
	d := wizard.Defaults{
		ProjectName: ans.ProjectName,
		Framework:   string(ans.Framework),
		Language:    string(ans.Language),
		UILibrary:   string(ans.UILibrary),
	}
	if deps != nil && deps.Config != nil {
		if cfg := deps.Config.Get(); cfg != nil {
			if d.ProjectName == "" {
				d.ProjectName = cfg.Defaults.ProjectName
			}
			if d.Framework == "" {
				d.Framework = cfg.Defaults.Framework
			}
			if d.Language == "" {
				d.Language = cfg.Defaults.Language
			}
			if d.UILibrary == "" {
				d.UILibrary = cfg.Defaults.UILibrary
			}
		}
	}
	return d
}

// answersFromWizard converts a wizard result into the answer model.
func answersFromWizard(r *wizard.Result) project.Answers {
	return project.Answers{
		ProjectName: project.NormalizeProjectName(r.ProjectName),
		Framework:   project.Framework(r.Framework),
		Language:    project.Language(r.Language),
		Routing:     project.Routing(r.Routing),
		Auth:        r.Auth,
		AuthStorage: project.AuthStorage(r.AuthStorage),
		UILibrary:   project.UILibrary(r.UILibrary),
		Redux:       r.Redux,
	}
}

// newInitializer wires the scaffolding orchestrator from the shared
// dependencies.
func newInitializer() *project.Initializer {
	renderer := template.NewRenderer(mustEmbeddedTemplates())
	resolver := template.NewResolver(renderer)

	gitFn := func(root string) (project.VersionControl, error) {
		return git.NewClient(root)
	}
	return project.NewInitializer(deps.Invoker, resolver, gitFn, deps.Logger)
}

// mustEmbeddedTemplates returns the embedded template tree. The embed
// directive guarantees its presence at build time.
func mustEmbeddedTemplates() fs.FS {
	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		panic(fmt.Sprintf("embedded templates unavailable: %v", err))
	}
	return fsys
}

// printInitSummary renders the success card and next-step hints.
func printInitSummary(cmd *cobra.Command, ans project.Answers, result *project.InitResult) {
	out := cmd.OutOrStdout()

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Framework", string(ans.Framework)},
			{"Language", string(ans.Language)},
			{"Directories", fmt.Sprintf("%d created", len(result.CreatedDirs))},
			{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
		}),
	}
	for _, w := range result.Warnings {
		details = append(details, symWarning()+" "+cliWarn.Render(w))
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Project "+ans.ProjectName+" scaffolded", details...))

	var md strings.Builder
	md.WriteString("## Next steps\n\n")
	md.WriteString(fmt.Sprintf("1. `cd %s`\n", ans.ProjectName))
	md.WriteString("2. `npm install`\n")
	md.WriteString("3. `npm run dev`\n")
	for _, step := range result.NextSteps {
		md.WriteString(fmt.Sprintf("- %s\n", step))
	}
	_, _ = fmt.Fprintln(out, renderMarkdown(md.String()))
}
