// Package pompub resolves the configuration for publishing signed artifacts
// to a Maven-Central-style repository from several independent sources, and
// can explain where every resolved value came from.
//
// # Sources and precedence
//
// Partial configurations come from five kinds of sources, merged field by
// field under a fixed total precedence order (lowest to highest):
//
//	defaults < smart-defaults < auto-detected < environment < properties < dsl
//
// A field is set by a source iff its value is non-empty (strings, lists) or
// explicitly assigned (booleans are tri-state in partials, so an explicit
// false overrides). The highest-precedence source that set a field wins;
// type defaults apply when none did.
//
// # Resolving
//
//	explicit := pompub.NewBuilder().ProjectName("widget").Build()
//
//	engine := pompub.NewEngine(pompub.WithDetectors(detect.Defaults()...))
//	res := engine.Resolve(pompub.ResolveRequest{
//		Explicit:            &explicit,
//		PropertiesPath:      "pompub.properties",
//		EnableAutoDetection: true,
//		Project:             pompub.ProjectContext{Dir: "."},
//	})
//
//	res.Config                                  // the merged configuration
//	res.Diagnostics.WinningSource("projectInfo.name") // provenance per field
//	res.Violations                              // reported, never thrown
//
// Resolve never fails: missing files and unset variables yield empty
// partials, malformed entries degrade to warnings, and validation results
// are reported for the caller to act on. Engines are safe for concurrent
// use across parallel subprojects; the properties-file cache is the only
// shared state and is keyed by absolute path and invalidated by
// modification time.
//
// # Key components
//
//   - Engine.Resolve: loads, merges, records provenance, validates
//   - Partial / Builder: the explicit (DSL) configuration surface
//   - Diagnostics: per-field (value, source) history and winners
//   - FileCache: mtime-invalidated cache of parsed properties files
//   - Validate: structured invariant checks over a final Config
//
// See the detect package for the default project detectors and cmd/pompub
// for a command-line caller.
package pompub
