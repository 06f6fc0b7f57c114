package detect

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pubforge/pompub"
)

// licenseFileNames are the files inspected, in order.
var licenseFileNames = []string{"LICENSE", "LICENSE.txt", "LICENSE.md", "COPYING"}

// knownLicenses maps a recognizable phrase from the license text to the
// published license entry.
var knownLicenses = []struct {
	marker  string
	license pompub.License
}{
	{
		marker: "apache license",
		license: pompub.License{
			Name:         "The Apache Software License, Version 2.0",
			URL:          "https://www.apache.org/licenses/LICENSE-2.0.txt",
			Distribution: "repo",
		},
	},
	{
		marker: "mit license",
		license: pompub.License{
			Name:         "MIT License",
			URL:          "https://opensource.org/licenses/MIT",
			Distribution: "repo",
		},
	},
	{
		marker: "permission is hereby granted, free of charge",
		license: pompub.License{
			Name:         "MIT License",
			URL:          "https://opensource.org/licenses/MIT",
			Distribution: "repo",
		},
	},
	{
		marker: "gnu general public license",
		license: pompub.License{
			Name:         "GNU General Public License v3.0",
			URL:          "https://www.gnu.org/licenses/gpl-3.0.txt",
			Distribution: "repo",
		},
	},
}

// LicenseFile recognizes the project license from a LICENSE file in the
// project root. Unknown license texts contribute nothing.
type LicenseFile struct{}

// Name implements pompub.Detector.
func (LicenseFile) Name() string {
	return "license-file"
}

// Detect implements pompub.Detector.
func (LicenseFile) Detect(proj pompub.ProjectContext) (pompub.Partial, error) {
	if proj.Dir == "" {
		return pompub.Partial{}, nil
	}

	for _, name := range licenseFileNames {
		head, err := readHead(filepath.Join(proj.Dir, name))
		if err != nil {
			continue
		}
		if lic, ok := classify(head); ok {
			var p pompub.Partial
			p.ProjectInfo.License = lic
			return p, nil
		}
	}
	return pompub.Partial{}, nil
}

// readHead returns the first couple of kilobytes of the file, which is
// plenty to identify a license header.
func readHead(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	head, err := io.ReadAll(io.LimitReader(f, 2048))
	if err != nil {
		return "", err
	}
	return string(head), nil
}

func classify(text string) (pompub.License, bool) {
	lowered := strings.ToLower(text)
	for _, k := range knownLicenses {
		if strings.Contains(lowered, k.marker) {
			return k.license, true
		}
	}
	return pompub.License{}, false
}
