package template

// This file is the behavioral contract of the generated API client's
// authentication flow. The constants below are injected into the
// rendered axios templates, and NextAction is the executable form of
// the retry logic those templates embed, so the contract stays testable
// on the Go side.

// Routes and endpoints shared between the generated client and its
// routes-constants file.
const (
	LoginRoute      = "/login"
	RefreshEndpoint = "/auth/refresh"
)

// Status codes the generated client gives special treatment.
const (
	StatusUnauthorized    = 401
	StatusPaymentRequired = 402
)

// SessionExpiredMessage is the message of the session-expired error the
// generated client raises after a failed refresh.
const SessionExpiredMessage = "Session expired. Please log in again."

// RequestContext carries per-call-chain auth-flow state. The
// refresh-attempted flag lives here instead of module-level state so
// concurrent call chains never bleed into each other; it is reset at
// every terminal outcome.
type RequestContext struct {
	RefreshAttempted bool
}

// Action is the client's reaction to a response status.
type Action int

const (
	// ActionProceed delivers the response or normalized error to the caller.
	ActionProceed Action = iota
	// ActionRefreshAndRetry attempts exactly one token refresh, then
	// retries the original request with refreshed credentials.
	ActionRefreshAndRetry
	// ActionSessionExpired redirects to LoginRoute and raises a
	// session-expired error.
	ActionSessionExpired
	// ActionWarnQuota logs a quota/billing warning; control flow is
	// unchanged.
	ActionWarnQuota
)

// NextAction decides how the generated client reacts to a response
// status. hasRefreshIndicator is the refresh-token presence check: a
// client-side cookie-existence probe for the cookie variant, a stored
// refresh token for the localStorage variant.
func NextAction(status int, hasRefreshIndicator bool, rc *RequestContext) Action {
	switch status {
	case StatusPaymentRequired:
		return ActionWarnQuota
	case StatusUnauthorized:
		if rc.RefreshAttempted || !hasRefreshIndicator {
			// Terminal failure: reset so the next independent request
			// may attempt its own refresh.
			rc.RefreshAttempted = false
			return ActionSessionExpired
		}
		rc.RefreshAttempted = true
		return ActionRefreshAndRetry
	default:
		// Terminal outcome, success or non-auth error.
		rc.RefreshAttempted = false
		return ActionProceed
	}
}
