package project

// Command is one external invocation: a binary name and its arguments.
// The invoker that executes these is injected; this package only
// decides WHAT to run.
type Command struct {
	Name string
	Args []string
}

// GeneratorCommand builds the upstream base-project generator
// invocation for the answers. It runs in the parent directory; the
// generator populates the project root itself.
func GeneratorCommand(ans Answers) Command {
	if ans.Framework == FrameworkNext {
		args := []string{
			"--yes",
			"create-next-app@latest",
			ans.ProjectName,
			"--eslint",
			"--no-tailwind",
			"--no-src-dir",
			"--import-alias", "@/*",
			"--skip-install",
			"--disable-git",
		}
		if ans.Language == LanguageTS {
			args = append(args, "--ts")
		} else {
			args = append(args, "--js")
		}
		if ans.Routing == RoutingApp {
			args = append(args, "--app")
		} else {
			args = append(args, "--no-app")
		}
		return Command{Name: "npx", Args: args}
	}

	tmpl := "react"
	if ans.Language == LanguageTS {
		tmpl = "react-ts"
	}
	return Command{
		Name: "npm",
		Args: []string{"create", "vite@latest", ans.ProjectName, "--", "--template", tmpl},
	}
}

// InstallCommand builds an `npm install` invocation for the packages.
// dev selects devDependencies.
func InstallCommand(dev bool, packages ...string) Command {
	args := []string{"install"}
	if dev {
		args = append(args, "--save-dev")
	}
	args = append(args, packages...)
	return Command{Name: "npm", Args: args}
}

// Dependency sets per feature. Unpinned entries are left to npm's
// resolution; pinned entries live in PinnedNextDeps.
var (
	AuthPackages   = []string{"axios", "js-cookie"}
	ReduxPackages  = []string{"@reduxjs/toolkit", "react-redux"}
	RouterPackages = []string{"react-router-dom"}

	// TailwindPackages are devDependencies: the Vite plugin wires the
	// CSS framework into the build.
	TailwindPackages = []string{"tailwindcss", "@tailwindcss/vite"}
)

// UIPackages returns the dependency set for the chosen UI library. The
// shadcn initializer is interactive and cannot be driven from here, so
// only its prerequisites are installed; init prints the follow-up step.
func UIPackages(lib UILibrary) []string {
	switch lib {
	case UILibraryAntd:
		return []string{"antd"}
	case UILibraryShadcn:
		return []string{"class-variance-authority", "clsx", "tailwind-merge", "lucide-react"}
	default:
		return nil
	}
}
