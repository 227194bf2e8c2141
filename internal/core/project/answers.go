package project

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Framework identifies the upstream base-project generator.
type Framework string

const (
	FrameworkReact Framework = "react"
	FrameworkNext  Framework = "next"
)

// Language selects the syntax variant of every generated template.
type Language string

const (
	LanguageJS Language = "js"
	LanguageTS Language = "ts"
)

// Routing selects the Next.js routing convention.
type Routing string

const (
	RoutingApp   Routing = "app"
	RoutingPages Routing = "pages"
)

// AuthStorage selects the token-persistence strategy of the generated
// API client.
type AuthStorage string

const (
	AuthStorageCookie       AuthStorage = "cookie"
	AuthStorageLocalStorage AuthStorage = "localStorage"
)

// UILibrary selects an extra dependency set; it never changes template
// content.
type UILibrary string

const (
	UILibraryNone   UILibrary = "none"
	UILibraryShadcn UILibrary = "shadcn"
	UILibraryAntd   UILibrary = "antd"
)

// Answers is the immutable record of user choices for one CLI run.
// It is constructed once (from wizard answers or flags), validated, and
// read-only thereafter.
type Answers struct {
	ProjectName string
	Framework   Framework
	Language    Language
	Routing     Routing // meaningful iff Framework == FrameworkNext
	Auth        bool
	AuthStorage AuthStorage // defined iff Auth == true
	UILibrary   UILibrary
	Redux       bool
}

// Characters that are unsafe in directory names on at least one
// supported platform.
const unsafeNameChars = `/\:*?"<>|`

// Validate checks the cross-field invariants declared by the answer
// model. Auth without a storage choice is rejected rather than silently
// skipping auth templates.
func (a Answers) Validate() error {
	name := strings.TrimSpace(a.ProjectName)
	if name == "" {
		return ErrEmptyProjectName
	}
	if strings.ContainsAny(name, unsafeNameChars) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrUnsafeProjectName, a.ProjectName)
	}

	switch a.Framework {
	case FrameworkReact, FrameworkNext:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFramework, a.Framework)
	}

	switch a.Language {
	case LanguageJS, LanguageTS:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, a.Language)
	}

	if a.Framework == FrameworkNext {
		if a.Routing != RoutingApp && a.Routing != RoutingPages {
			return fmt.Errorf("%w: %q", ErrUnknownRouting, a.Routing)
		}
	} else if a.Routing != "" {
		return fmt.Errorf("%w: routing %q is only valid for next", ErrInvalidCombination, a.Routing)
	}

	if a.Auth {
		if a.AuthStorage != AuthStorageCookie && a.AuthStorage != AuthStorageLocalStorage {
			return fmt.Errorf("%w: auth requires a storage choice (cookie or localStorage)", ErrInvalidCombination)
		}
	} else if a.AuthStorage != "" {
		return fmt.Errorf("%w: auth storage %q set but auth is disabled", ErrInvalidCombination, a.AuthStorage)
	}

	switch a.UILibrary {
	case UILibraryNone, UILibraryShadcn, UILibraryAntd:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUILibrary, a.UILibrary)
	}

	return nil
}

// NormalizeProjectName NFC-normalizes a raw project name and trims
// surrounding whitespace. Composed and decomposed Unicode input would
// otherwise produce visually identical but distinct directory names.
func NormalizeProjectName(raw string) string {
	return norm.NFC.String(strings.TrimSpace(raw))
}

// TemplateShorthands maps the --template flag values accepted by init
// to partial answers.
var TemplateShorthands = map[string]Answers{
	"next-ts":  {Framework: FrameworkNext, Language: LanguageTS, Routing: RoutingApp},
	"next-js":  {Framework: FrameworkNext, Language: LanguageJS, Routing: RoutingApp},
	"react-ts": {Framework: FrameworkReact, Language: LanguageTS},
	"react-js": {Framework: FrameworkReact, Language: LanguageJS},
}
