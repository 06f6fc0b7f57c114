package pompub

import (
	"os"
	"path/filepath"
	"strings"
)

// Default license applied when no source supplied any license field.
const (
	defaultLicenseName = "The Apache Software License, Version 2.0"
	defaultLicenseURL  = "https://www.apache.org/licenses/LICENSE-2.0.txt"
	defaultLicenseDist = "repo"
)

// loadSmartDefaults computes conservative fallbacks against the
// configuration merged so far: it only ever fills fields that are still
// empty, which is what keeps its late application from shadowing the
// higher-precedence auto-detected values. It needs a project context to
// compute from; without one it contributes nothing. It never touches
// credentials or signing secrets.
func loadSmartDefaults(merged Config, proj ProjectContext) Partial {
	var p Partial
	if proj.Dir == "" {
		return p
	}

	if merged.ProjectInfo.Name == "" {
		if abs, err := filepath.Abs(proj.Dir); err == nil {
			if base := filepath.Base(abs); base != "." && base != string(filepath.Separator) {
				p.ProjectInfo.Name = base
			}
		}
	}

	lic := merged.ProjectInfo.License
	if lic.Name == "" && lic.URL == "" && lic.Distribution == "" {
		p.ProjectInfo.License = License{
			Name:         defaultLicenseName,
			URL:          defaultLicenseURL,
			Distribution: defaultLicenseDist,
		}
	}

	// A bare scm URL is common; derive the connection strings from it.
	if scm := merged.ProjectInfo.SCM; scm.URL != "" {
		repo := strings.TrimSuffix(scm.URL, "/")
		if !strings.HasSuffix(repo, ".git") {
			repo += ".git"
		}
		conn := "scm:git:" + repo
		if scm.Connection == "" {
			p.ProjectInfo.SCM.Connection = conn
		}
		if scm.DeveloperConnection == "" {
			p.ProjectInfo.SCM.DeveloperConnection = conn
		}
	}

	// The keyring path is not secret material; the key password is, and is
	// never defaulted.
	if merged.Signing.KeyID != "" && merged.Signing.SecretKeyRingFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			p.Signing.SecretKeyRingFile = filepath.Join(home, ".gnupg", "secring.gpg")
		}
	}

	return p
}
