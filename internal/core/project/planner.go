package project

// nextDirs is the layout overlaid on a create-next-app output. The
// app/ and pages/ routing directories are owned by the generator and
// deliberately absent here.
var nextDirs = []string{
	"public",
	"components",
	"hooks",
	"lib",
	"styles",
	"types",
	"services",
}

// reactDirs is the layout overlaid on a Vite React output.
var reactDirs = []string{
	"public",
	"src/components",
	"src/hooks",
	"src/layouts",
	"src/services",
	"src/styles",
	"src/utils",
	"src/pages",
	"src/routes",
}

// genericDirs is the fallback layout for frameworks added later.
var genericDirs = []string{
	"public",
	"src/components",
	"src/hooks",
	"src/services",
	"src/styles",
	"src/utils",
}

// PlanFolders returns the ordered, duplicate-free set of relative
// directories to create under the project root for the given framework.
// Callers apply create-if-absent semantics per path, so re-planning and
// re-creating is always safe.
func PlanFolders(fw Framework) []string {
	var src []string
	switch fw {
	case FrameworkNext:
		src = nextDirs
	case FrameworkReact:
		src = reactDirs
	default:
		src = genericDirs
	}

	out := make([]string, len(src))
	copy(out, src)
	return out
}
