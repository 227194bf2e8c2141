package template

import "errors"

// Error definitions for the template package.
var (
	// ErrTemplateNotFound is returned when a named template is missing
	// from the embedded filesystem.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey is returned when strict rendering hits a
	// context key the template references but the context lacks.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken is returned when rendered output still contains
	// Go template tokens.
	ErrUnexpandedToken = errors.New("unexpanded token in rendered output")

	// ErrNotApplicable is returned by the resolver when a kind does not
	// apply to the given answers (for example redux templates when redux
	// was not selected).
	ErrNotApplicable = errors.New("template kind not applicable to answers")

	// ErrUnknownKind is returned for kinds outside the decision table.
	ErrUnknownKind = errors.New("unknown template kind")
)
