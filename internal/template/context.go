package template

import "github.com/webstrap-cli/webstrap/pkg/version"

// Context is the data passed to every template render. It is derived
// once per run from the validated answers; rendering the same Context
// twice yields byte-identical output.
type Context struct {
	ProjectName string
	Version     string

	TS        bool // TypeScript syntax variant
	Next      bool // Next.js framework (react otherwise)
	AppRouter bool // Next.js app router (pages otherwise)

	EnvPrefix  string // NEXT_PUBLIC_ or VITE_
	AuthSecret string // fixed for the run; .env is create-if-absent

	Auth             bool
	CookieAuth       bool // httpOnly-cookie token strategy
	LocalStorageAuth bool // client-stored token strategy
	Redux            bool

	UILibrary string

	// Auth-flow contract constants shared with authflow.go.
	LoginRoute            string
	RefreshEndpoint       string
	StatusUnauthorized    int
	StatusPaymentRequired int
	SessionExpiredMessage string
}

// Params carries the answer-derived inputs for context construction.
// The orchestrator owns the mapping from its answer model to these
// plain values, keeping this package free of upstream imports.
type Params struct {
	ProjectName string
	TypeScript  bool
	Next        bool
	AppRouter   bool
	EnvPrefix   string
	AuthSecret  string
	Auth        bool
	AuthStorage string // "cookie", "localStorage", or ""
	Redux       bool
	UILibrary   string
}

// NewContext builds a render Context. The auth secret in params should
// be generated once per run so every env render sees the same value.
func NewContext(p Params) *Context {
	return &Context{
		ProjectName: p.ProjectName,
		Version:     version.GetVersion(),

		TS:        p.TypeScript,
		Next:      p.Next,
		AppRouter: p.AppRouter,

		EnvPrefix:  p.EnvPrefix,
		AuthSecret: p.AuthSecret,

		Auth:             p.Auth,
		CookieAuth:       p.AuthStorage == "cookie",
		LocalStorageAuth: p.AuthStorage == "localStorage",
		Redux:            p.Redux,

		UILibrary: p.UILibrary,

		LoginRoute:            LoginRoute,
		RefreshEndpoint:       RefreshEndpoint,
		StatusUnauthorized:    StatusUnauthorized,
		StatusPaymentRequired: StatusPaymentRequired,
		SessionExpiredMessage: SessionExpiredMessage,
	}
}
