// Package roster builds canonical player records for a team, scraping depth
// chart pages first and falling back to the structured roster API.
package roster

import "fmt"

// UnknownTeamError is returned for identifiers outside the fixed 32-code
// set. No network call is attempted for such identifiers.
type UnknownTeamError struct {
	Code string
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("unknown team code: %s", e.Code)
}

// APIError represents a failure talking to the roster API.
type APIError struct {
	Team    string
	Message string
	Cause   error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("roster API error for %s: %s: %v", e.Team, e.Message, e.Cause)
	}
	return fmt.Sprintf("roster API error for %s: %s", e.Team, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}
