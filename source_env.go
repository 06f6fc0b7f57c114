package pompub

import (
	"os"
	"strings"
)

// LookupEnv is the environment accessor the engine uses; it defaults to
// os.LookupEnv and is injected in tests.
type LookupEnv func(key string) (string, bool)

// envFields is the fixed set of recognized environment variables.
var envFields = map[string]string{
	"SONATYPE_USERNAME": PathCredentialsUsername,
	"SONATYPE_PASSWORD": PathCredentialsPassword,
	"SIGNING_KEY":       PathSigningKeyID,
	"SIGNING_PASSWORD":  PathSigningPass,
}

// loadEnvironment reads the recognized environment variables into a partial.
// Unset and blank variables are treated as not set.
func loadEnvironment(lookup LookupEnv) Partial {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var p Partial
	for key, fieldPath := range envFields {
		raw, ok := lookup(key)
		if !ok {
			continue
		}
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		switch fieldPath {
		case PathCredentialsUsername:
			p.Credentials.Username = value
		case PathCredentialsPassword:
			p.Credentials.Password = value
		case PathSigningKeyID:
			p.Signing.KeyID = value
		case PathSigningPass:
			p.Signing.Password = value
		}
	}
	return p
}
