package wizard

// Defaults pre-selects wizard answers, typically from the persisted
// user config. Zero values fall back to built-in defaults.
type Defaults struct {
	ProjectName string
	Framework   string
	Language    string
	UILibrary   string
}

// DefaultQuestions returns the standard question set for project
// scaffolding. Question order matters: conditional questions reference
// earlier answers.
func DefaultQuestions(d Defaults) []Question {
	projectName := d.ProjectName
	if projectName == "" {
		projectName = "my-app"
	}
	framework := d.Framework
	if framework == "" {
		framework = "next"
	}
	language := d.Language
	if language == "" {
		language = "ts"
	}
	uiLibrary := d.UILibrary
	if uiLibrary == "" {
		uiLibrary = "none"
	}

	return []Question{
		{
			ID:          "project_name",
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Directory name for the new project.",
			Default:     projectName,
			Required:    true,
		},
		{
			ID:    "framework",
			Type:  QuestionTypeSelect,
			Title: "Framework",
			Options: []Option{
				{Label: "Next.js", Value: "next", Desc: "create-next-app"},
				{Label: "React", Value: "react", Desc: "Vite + React"},
			},
			Default:  framework,
			Required: true,
		},
		{
			ID:    "language",
			Type:  QuestionTypeSelect,
			Title: "Language",
			Options: []Option{
				{Label: "TypeScript", Value: "ts"},
				{Label: "JavaScript", Value: "js"},
			},
			Default:  language,
			Required: true,
		},
		{
			ID:    "routing",
			Type:  QuestionTypeSelect,
			Title: "Next.js router",
			Options: []Option{
				{Label: "App router", Value: "app", Desc: "app/ directory (recommended)"},
				{Label: "Pages router", Value: "pages", Desc: "pages/ directory"},
			},
			Default:  "app",
			Required: true,
			Condition: func(r *Result) bool {
				return r.Framework == "next"
			},
		},
		{
			ID:          "auth",
			Type:        QuestionTypeSelect,
			Title:       "Include authentication setup?",
			Description: "Axios API client with token refresh, route and endpoint constants.",
			Options: []Option{
				{Label: "Yes", Value: "true"},
				{Label: "No", Value: "false"},
			},
			Default:  "true",
			Required: true,
		},
		{
			ID:    "auth_storage",
			Type:  QuestionTypeSelect,
			Title: "Token storage",
			Options: []Option{
				{Label: "Cookies", Value: "cookie", Desc: "server-set httpOnly cookies"},
				{Label: "Local storage", Value: "localStorage", Desc: "tokens stored client-side"},
			},
			Default:  "cookie",
			Required: true,
			Condition: func(r *Result) bool {
				return r.Auth
			},
		},
		{
			ID:    "ui_library",
			Type:  QuestionTypeSelect,
			Title: "UI library",
			Options: []Option{
				{Label: "None", Value: "none"},
				{Label: "shadcn/ui", Value: "shadcn", Desc: "requires a follow-up init step"},
				{Label: "Ant Design", Value: "antd"},
			},
			Default:  uiLibrary,
			Required: true,
		},
		{
			ID:    "redux",
			Type:  QuestionTypeSelect,
			Title: "Include a Redux Toolkit store?",
			Options: []Option{
				{Label: "No", Value: "false"},
				{Label: "Yes", Value: "true"},
			},
			Default:  "false",
			Required: true,
		},
	}
}

// StorageQuestion returns the single token-storage question, used by
// `add api` and `add auth` when the storage mode was not given as a
// flag.
func StorageQuestion() []Question {
	return []Question{
		{
			ID:    "auth_storage",
			Type:  QuestionTypeSelect,
			Title: "Token storage",
			Options: []Option{
				{Label: "Cookies", Value: "cookie", Desc: "server-set httpOnly cookies"},
				{Label: "Local storage", Value: "localStorage", Desc: "tokens stored client-side"},
			},
			Default:  "cookie",
			Required: true,
		},
	}
}
