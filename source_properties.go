package pompub

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/magiconair/properties"
)

// Pseudo field paths for the single developer a properties file can
// describe. The assembled entry lands in projectInfo.developers.
const (
	pathDeveloperID      = "projectInfo.developer.id"
	pathDeveloperName    = "projectInfo.developer.name"
	pathDeveloperEmail   = "projectInfo.developer.email"
	pathDeveloperOrg     = "projectInfo.developer.organization"
	pathDeveloperOrgURL  = "projectInfo.developer.organizationUrl"
)

// propertyFields is the declarative table mapping properties-file keys to
// configuration field paths. Keys not listed here are ignored.
var propertyFields = map[string]string{
	"SONATYPE_USERNAME": PathCredentialsUsername,
	"SONATYPE_PASSWORD": PathCredentialsPassword,

	"POM_NAME":        PathProjectName,
	"POM_DESCRIPTION": PathProjectDescription,
	"POM_URL":         PathProjectURL,

	"POM_SCM_URL":            PathSCMURL,
	"POM_SCM_CONNECTION":     PathSCMConnection,
	"POM_SCM_DEV_CONNECTION": PathSCMDevConnection,

	"POM_LICENCE_NAME": PathLicenseName,
	"POM_LICENCE_URL":  PathLicenseURL,
	"POM_LICENCE_DIST": PathLicenseDist,

	"POM_DEVELOPER_ID":               pathDeveloperID,
	"POM_DEVELOPER_NAME":             pathDeveloperName,
	"POM_DEVELOPER_EMAIL":            pathDeveloperEmail,
	"POM_DEVELOPER_ORGANIZATION":     pathDeveloperOrg,
	"POM_DEVELOPER_ORGANIZATION_URL": pathDeveloperOrgURL,

	"signing.keyId":             PathSigningKeyID,
	"signing.password":          PathSigningPass,
	"signing.secretKeyRingFile": PathSigningKeyRing,

	"autoPublish": PathAutoPublish,
	"aggregation": PathAggregation,
	"dryRun":      PathDryRun,

	"validation.enabled":    PathValidationEnabled,
	"autoDetection.enabled": PathAutoDetectEnabled,
}

// parsePropertiesFile loads one key=value properties file into a partial.
// Unmapped keys are ignored, blank values are treated as not set, and a
// value that fails to parse produces a warning and leaves its field unset.
// The returned error means the file could not be read at all; callers
// degrade it to a warning.
func parsePropertiesFile(path string) (Partial, []LoadWarning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Partial{}, nil, err
	}

	pp, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return Partial{}, nil, err
	}
	pp.DisableExpansion = true

	var (
		partial  Partial
		warnings []LoadWarning
		dev      Developer
	)

	for _, key := range pp.Keys() {
		fieldPath, known := propertyFields[key]
		if !known {
			continue
		}
		raw, _ := pp.Get(key)
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		if w := setPartialField(&partial, &dev, fieldPath, value); w != "" {
			warnings = append(warnings, LoadWarning{
				Source:  SourceProperties,
				Path:    path,
				Key:     key,
				Message: w,
			})
		}
	}

	if !dev.IsZero() {
		partial.ProjectInfo.Developers = []Developer{dev}
	}

	return partial, warnings, nil
}

// setPartialField assigns value to the field named by fieldPath. It returns
// a non-empty warning message when the value cannot be parsed for the
// field's type; the field is then left unset.
func setPartialField(p *Partial, dev *Developer, fieldPath, value string) string {
	switch fieldPath {
	case PathCredentialsUsername:
		p.Credentials.Username = value
	case PathCredentialsPassword:
		p.Credentials.Password = value

	case PathProjectName:
		p.ProjectInfo.Name = value
	case PathProjectDescription:
		p.ProjectInfo.Description = value
	case PathProjectURL:
		p.ProjectInfo.URL = value
	case PathSCMURL:
		p.ProjectInfo.SCM.URL = value
	case PathSCMConnection:
		p.ProjectInfo.SCM.Connection = value
	case PathSCMDevConnection:
		p.ProjectInfo.SCM.DeveloperConnection = value
	case PathLicenseName:
		p.ProjectInfo.License.Name = value
	case PathLicenseURL:
		p.ProjectInfo.License.URL = value
	case PathLicenseDist:
		p.ProjectInfo.License.Distribution = value

	case pathDeveloperID:
		dev.ID = value
	case pathDeveloperName:
		dev.Name = value
	case pathDeveloperEmail:
		dev.Email = value
	case pathDeveloperOrg:
		dev.Organization = value
	case pathDeveloperOrgURL:
		dev.OrganizationURL = value

	case PathSigningKeyID:
		p.Signing.KeyID = value
	case PathSigningPass:
		p.Signing.Password = value
	case PathSigningKeyRing:
		p.Signing.SecretKeyRingFile = value

	case PathAutoPublish:
		return setPartialBool(&p.Publishing.AutoPublish, value)
	case PathAggregation:
		return setPartialBool(&p.Publishing.Aggregation, value)
	case PathDryRun:
		return setPartialBool(&p.Publishing.DryRun, value)
	case PathValidationEnabled:
		return setPartialBool(&p.Validation.Enabled, value)
	case PathAutoDetectEnabled:
		return setPartialBool(&p.AutoDetection.Enabled, value)
	}
	return ""
}

func setPartialBool(dst **bool, value string) string {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Sprintf("invalid boolean %q", value)
	}
	*dst = Bool(b)
	return ""
}
