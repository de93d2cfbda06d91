// Package validator provides a lightweight, composable rule-based validation
// system for form-style input, used to reject bad credentials and product
// data before any network call is made.
//
// Rules are plain values combined with Apply:
//
//	err := validator.Apply(
//	    validator.RequiredString("email", email),
//	    validator.ValidEmail("email", email),
//	    validator.RequiredString("password", password),
//	)
//	if err != nil {
//	    // err is a ValidationErrors carrying per-field messages
//	}
//
// ValidationErrors implements error and keeps field association so callers
// can surface per-field messages in a form UI.
package validator
