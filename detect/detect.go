package detect

import (
	"github.com/pubforge/pompub"
)

// Defaults returns the standard detector set in its declaration order:
// git remote first, license file second.
func Defaults() []pompub.Detector {
	return []pompub.Detector{
		GitRemote{},
		LicenseFile{},
	}
}
