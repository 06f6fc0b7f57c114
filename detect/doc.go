// Package detect ships the default project detectors for the pompub
// resolution engine: a git-remote detector that derives project and SCM
// URLs from the repository origin, and a license-file detector that
// recognizes common licenses from a LICENSE file.
//
// Detectors only read the project directory and degrade to "found nothing"
// on anything unexpected; the engine merges their outputs in the order
// returned by Defaults.
package detect
