package template

import (
	"fmt"
	"path"
)

// Kind names one generated output file.
type Kind string

const (
	KindAPIClient   Kind = "api-client"
	KindRoutes      Kind = "routes"
	KindEndpoints   Kind = "endpoints"
	KindAuthHelpers Kind = "auth-helpers"
	KindReduxStore  Kind = "redux-store"
	KindReduxSlice  Kind = "redux-slice"
	KindReduxThunks Kind = "redux-thunks"
	KindReduxHooks  Kind = "redux-hooks"
	KindEnv         Kind = "env"
	KindReadme      Kind = "readme"
	KindViteConfig  Kind = "vite-config"
	KindStylesheet  Kind = "stylesheet"
)

// AllKinds is the generation order used by the orchestrator.
var AllKinds = []Kind{
	KindAPIClient,
	KindRoutes,
	KindEndpoints,
	KindAuthHelpers,
	KindReduxStore,
	KindReduxSlice,
	KindReduxThunks,
	KindReduxHooks,
	KindEnv,
	KindReadme,
	KindViteConfig,
	KindStylesheet,
}

// File is one resolved output: a path relative to the project root and
// its rendered content.
type File struct {
	Path    string
	Content []byte
}

// Resolver maps (kind, context) to rendered file content. It is a pure
// decision table over the answer axes: language picks the template
// variant, framework picks the output directory root and env prefix,
// auth storage picks the token strategy inside the client template.
type Resolver struct {
	renderer Renderer
}

// NewResolver creates a Resolver using the given renderer.
func NewResolver(r Renderer) *Resolver {
	return &Resolver{renderer: r}
}

// Applies reports whether the kind produces output for the context.
func Applies(kind Kind, ctx *Context) bool {
	switch kind {
	case KindAPIClient, KindRoutes, KindEndpoints, KindAuthHelpers:
		// Auth templates need a storage strategy; validation rejects
		// auth without one, so this also covers the auth=true gap.
		return ctx.Auth && (ctx.CookieAuth || ctx.LocalStorageAuth)
	case KindReduxStore, KindReduxSlice, KindReduxThunks, KindReduxHooks:
		return ctx.Redux
	case KindViteConfig, KindStylesheet:
		return !ctx.Next
	case KindEnv, KindReadme:
		return true
	default:
		return false
	}
}

// Resolve renders the template for kind and returns the output file.
// Kinds that do not apply to the context return ErrNotApplicable.
func (r *Resolver) Resolve(kind Kind, ctx *Context) (*File, error) {
	if !Applies(kind, ctx) {
		return nil, fmt.Errorf("%w: %s", ErrNotApplicable, kind)
	}

	name, err := templateName(kind, ctx)
	if err != nil {
		return nil, err
	}

	content, err := r.renderer.Render(name, ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", kind, err)
	}

	return &File{Path: OutputPath(kind, ctx), Content: content}, nil
}

// templateName returns the embedded template path for kind. Language
// picks the ts/js variant; env, readme, and stylesheet have a single
// variant.
func templateName(kind Kind, ctx *Context) (string, error) {
	ext := "js"
	if ctx.TS {
		ext = "ts"
	}

	switch kind {
	case KindAPIClient:
		return "api/client." + ext + ".tmpl", nil
	case KindRoutes:
		return "api/routes." + ext + ".tmpl", nil
	case KindEndpoints:
		return "api/endpoints." + ext + ".tmpl", nil
	case KindAuthHelpers:
		return "api/auth." + ext + ".tmpl", nil
	case KindReduxStore:
		return "redux/store." + ext + ".tmpl", nil
	case KindReduxSlice:
		return "redux/userSlice." + ext + ".tmpl", nil
	case KindReduxThunks:
		return "redux/userThunks." + ext + ".tmpl", nil
	case KindReduxHooks:
		return "redux/hooks." + ext + ".tmpl", nil
	case KindEnv:
		return "project/env.tmpl", nil
	case KindReadme:
		return "project/readme.md.tmpl", nil
	case KindViteConfig:
		return "react/vite.config." + ext + ".tmpl", nil
	case KindStylesheet:
		return "react/index.css.tmpl", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// OutputPath returns the project-relative destination for kind. Next
// projects root generated sources at the top level, Vite React projects
// under src/.
func OutputPath(kind Kind, ctx *Context) string {
	ext := ".js"
	if ctx.TS {
		ext = ".ts"
	}

	services := "src/services"
	lib := "src/utils"
	store := "src/store"
	hooks := "src/hooks"
	routes := "src/routes"
	if ctx.Next {
		services = "services"
		lib = "lib"
		store = "lib"
		hooks = "hooks"
		routes = "lib"
	}

	switch kind {
	case KindAPIClient:
		return path.Join(services, "apiClient"+ext)
	case KindRoutes:
		return path.Join(routes, "routes"+ext)
	case KindEndpoints:
		return path.Join(services, "endpoints"+ext)
	case KindAuthHelpers:
		return path.Join(lib, "auth"+ext)
	case KindReduxStore:
		return path.Join(store, "store"+ext)
	case KindReduxSlice:
		return path.Join(store, "userSlice"+ext)
	case KindReduxThunks:
		return path.Join(store, "userThunks"+ext)
	case KindReduxHooks:
		return path.Join(hooks, "useStore"+ext)
	case KindEnv:
		return ".env"
	case KindReadme:
		return "README.md"
	case KindViteConfig:
		return "vite.config" + ext
	case KindStylesheet:
		return "src/index.css"
	default:
		return ""
	}
}
