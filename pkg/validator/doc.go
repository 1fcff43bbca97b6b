// Package validator provides rule-based input validation with structured,
// translatable errors.
//
// Rules are plain values combining a check with the error to report when the
// check fails; Apply runs a set of rules and returns ValidationErrors when
// any fail:
//
//	err := validator.Apply(
//	    validator.RequiredString("name", req.Name),
//	    validator.ValidEmail("email", req.Email),
//	)
//	if err != nil {
//	    // err is validator.ValidationErrors; map to a 400 response
//	}
package validator
