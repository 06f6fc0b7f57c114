package pompub

import (
	"github.com/go-playground/validator/v10"
)

// ValidateOptions adjusts validation to the caller's current action.
type ValidateOptions struct {
	// RequireCredentials makes empty repository credentials a violation.
	// Callers set it for actions that will actually upload.
	RequireCredentials bool
}

// Validate checks the final merged configuration against the publishing
// invariants and returns every violation. It is a pure function of its
// inputs and never fails hard; callers that need a hard stop wrap the result
// with AggregateValidationErrors.
func Validate(cfg Config, opts ValidateOptions) []ValidationError {
	v := validator.New()
	var out []ValidationError

	check := func(field, value, tag, code, message string) {
		if err := v.Var(value, tag); err != nil {
			out = append(out, ValidationError{Field: field, Code: code, Message: message})
		}
	}

	check(PathProjectName, cfg.ProjectInfo.Name, "required",
		CodeRequired, "project name must not be empty")
	check(PathProjectURL, cfg.ProjectInfo.URL, "omitempty,http_url",
		CodeInvalidURL, "project url must be an http(s) URL")
	check(PathSCMURL, cfg.ProjectInfo.SCM.URL, "omitempty,http_url",
		CodeInvalidURL, "scm url must be an http(s) URL")

	if opts.RequireCredentials {
		check(PathCredentialsUsername, cfg.Credentials.Username, "required",
			CodeRequired, "repository username must not be empty")
		check(PathCredentialsPassword, cfg.Credentials.Password, "required",
			CodeRequired, "repository password must not be empty")
	}

	return out
}
