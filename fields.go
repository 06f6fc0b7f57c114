package pompub

// Field paths name one leaf of the configuration tree. Provenance, property
// mapping and validation all speak in these dotted identifiers.
const (
	PathCredentialsUsername = "credentials.username"
	PathCredentialsPassword = "credentials.password"

	PathProjectName        = "projectInfo.name"
	PathProjectDescription = "projectInfo.description"
	PathProjectURL         = "projectInfo.url"
	PathSCMURL             = "projectInfo.scm.url"
	PathSCMConnection      = "projectInfo.scm.connection"
	PathSCMDevConnection   = "projectInfo.scm.developerConnection"
	PathLicenseName        = "projectInfo.license.name"
	PathLicenseURL         = "projectInfo.license.url"
	PathLicenseDist        = "projectInfo.license.distribution"
	PathDevelopers         = "projectInfo.developers"

	PathSigningKeyID   = "signing.keyId"
	PathSigningPass    = "signing.password"
	PathSigningKeyRing = "signing.secretKeyRingFile"

	PathAutoPublish    = "publishing.autoPublish"
	PathAggregation    = "publishing.aggregation"
	PathDryRun         = "publishing.dryRun"
	PathPublications   = "publishing.publications"
	PathExcludeModules = "publishing.excludeModules"

	PathValidationEnabled  = "validation.enabled"
	PathRequireCredentials = "validation.requireCredentials"
	PathAutoDetectEnabled  = "autoDetection.enabled"
)

// fieldPaths lists every leaf path in tree order.
var fieldPaths = []string{
	PathCredentialsUsername,
	PathCredentialsPassword,
	PathProjectName,
	PathProjectDescription,
	PathProjectURL,
	PathSCMURL,
	PathSCMConnection,
	PathSCMDevConnection,
	PathLicenseName,
	PathLicenseURL,
	PathLicenseDist,
	PathDevelopers,
	PathSigningKeyID,
	PathSigningPass,
	PathSigningKeyRing,
	PathAutoPublish,
	PathAggregation,
	PathDryRun,
	PathPublications,
	PathExcludeModules,
	PathValidationEnabled,
	PathRequireCredentials,
	PathAutoDetectEnabled,
}

// FieldPaths returns every leaf field path in tree order.
func FieldPaths() []string {
	return append([]string(nil), fieldPaths...)
}

// IsSecretPath reports whether the value at path must never be logged or
// displayed in full.
func IsSecretPath(path string) bool {
	switch path {
	case PathCredentialsPassword, PathSigningPass:
		return true
	}
	return false
}

// Redacted is what secret values are rendered as in logs and CLI output.
const Redacted = "[redacted]"

// RedactValue masks v when path names a secret field.
func RedactValue(path string, v any) any {
	if IsSecretPath(path) {
		if s, ok := v.(string); ok && s != "" {
			return Redacted
		}
	}
	return v
}

// walk calls fn for every field the partial sets, in tree order. Values are
// string, bool, []string or []Developer.
func (p Partial) walk(fn func(path string, value any)) {
	str := func(path, v string) {
		if v != "" {
			fn(path, v)
		}
	}
	b := func(path string, v *bool) {
		if v != nil {
			fn(path, *v)
		}
	}

	str(PathCredentialsUsername, p.Credentials.Username)
	str(PathCredentialsPassword, p.Credentials.Password)

	str(PathProjectName, p.ProjectInfo.Name)
	str(PathProjectDescription, p.ProjectInfo.Description)
	str(PathProjectURL, p.ProjectInfo.URL)
	str(PathSCMURL, p.ProjectInfo.SCM.URL)
	str(PathSCMConnection, p.ProjectInfo.SCM.Connection)
	str(PathSCMDevConnection, p.ProjectInfo.SCM.DeveloperConnection)
	str(PathLicenseName, p.ProjectInfo.License.Name)
	str(PathLicenseURL, p.ProjectInfo.License.URL)
	str(PathLicenseDist, p.ProjectInfo.License.Distribution)
	if len(p.ProjectInfo.Developers) > 0 {
		fn(PathDevelopers, append([]Developer(nil), p.ProjectInfo.Developers...))
	}

	str(PathSigningKeyID, p.Signing.KeyID)
	str(PathSigningPass, p.Signing.Password)
	str(PathSigningKeyRing, p.Signing.SecretKeyRingFile)

	b(PathAutoPublish, p.Publishing.AutoPublish)
	b(PathAggregation, p.Publishing.Aggregation)
	b(PathDryRun, p.Publishing.DryRun)
	if len(p.Publishing.Publications) > 0 {
		fn(PathPublications, append([]string(nil), p.Publishing.Publications...))
	}
	if len(p.Publishing.ExcludeModules) > 0 {
		fn(PathExcludeModules, append([]string(nil), p.Publishing.ExcludeModules...))
	}

	b(PathValidationEnabled, p.Validation.Enabled)
	b(PathRequireCredentials, p.Validation.RequireCredentials)
	b(PathAutoDetectEnabled, p.AutoDetection.Enabled)
}

// Value returns the resolved value at the given field path. The second
// return is false for unknown paths. Booleans come back as bool, the
// developer list as []Developer, the string sets as []string.
func (c Config) Value(path string) (any, bool) {
	switch path {
	case PathCredentialsUsername:
		return c.Credentials.Username, true
	case PathCredentialsPassword:
		return c.Credentials.Password, true
	case PathProjectName:
		return c.ProjectInfo.Name, true
	case PathProjectDescription:
		return c.ProjectInfo.Description, true
	case PathProjectURL:
		return c.ProjectInfo.URL, true
	case PathSCMURL:
		return c.ProjectInfo.SCM.URL, true
	case PathSCMConnection:
		return c.ProjectInfo.SCM.Connection, true
	case PathSCMDevConnection:
		return c.ProjectInfo.SCM.DeveloperConnection, true
	case PathLicenseName:
		return c.ProjectInfo.License.Name, true
	case PathLicenseURL:
		return c.ProjectInfo.License.URL, true
	case PathLicenseDist:
		return c.ProjectInfo.License.Distribution, true
	case PathDevelopers:
		return append([]Developer(nil), c.ProjectInfo.Developers...), true
	case PathSigningKeyID:
		return c.Signing.KeyID, true
	case PathSigningPass:
		return c.Signing.Password, true
	case PathSigningKeyRing:
		return c.Signing.SecretKeyRingFile, true
	case PathAutoPublish:
		return c.Publishing.AutoPublish, true
	case PathAggregation:
		return c.Publishing.Aggregation, true
	case PathDryRun:
		return c.Publishing.DryRun, true
	case PathPublications:
		return append([]string(nil), c.Publishing.Publications...), true
	case PathExcludeModules:
		return append([]string(nil), c.Publishing.ExcludeModules...), true
	case PathValidationEnabled:
		return c.Validation.Enabled, true
	case PathRequireCredentials:
		return c.Validation.RequireCredentials, true
	case PathAutoDetectEnabled:
		return c.AutoDetection.Enabled, true
	}
	return nil, false
}
