// Package wizard provides the interactive question flow for project
// scaffolding.
package wizard

import "errors"

// Result holds the user's selections from the init wizard. String
// values use the answer-model enum spellings ("react", "next", "ts",
// "cookie", ...).
type Result struct {
	ProjectName string
	Framework   string // react, next
	Language    string // js, ts
	Routing     string // app, pages (next only)
	Auth        bool
	AuthStorage string // cookie, localStorage (auth only)
	UILibrary   string // none, shadcn, antd
	Redux       bool
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	ID          string             // Unique identifier
	Type        QuestionType       // Select or Input
	Title       string             // Question title
	Description string             // Additional description
	Options     []Option           // Options for select questions
	Default     string             // Default value
	Required    bool               // Whether the field is required
	Condition   func(*Result) bool // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
