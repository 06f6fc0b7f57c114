package pompub

import (
	"fmt"
	"time"
)

// SchemaVersion identifies the shape of the resolved configuration tree.
const SchemaVersion = "1"

// Source identifies where a configuration value came from. Sources form a
// total order: a numerically larger Source always beats a smaller one when
// both set the same field.
type Source int

// Configuration sources, lowest to highest precedence.
const (
	// SourceDefaults is the built-in type-default baseline.
	SourceDefaults Source = iota
	// SourceSmartDefaults holds context-computed fallbacks (directory name,
	// default license, keyring path).
	SourceSmartDefaults
	// SourceAutoDetected holds values supplied by project detectors
	// (git remotes, license files).
	SourceAutoDetected
	// SourceEnvironment holds values read from process environment variables.
	SourceEnvironment
	// SourceProperties holds values parsed from a key=value properties file.
	SourceProperties
	// SourceDSL holds values the caller assembled explicitly.
	SourceDSL
)

func (s Source) String() string {
	switch s {
	case SourceDefaults:
		return "defaults"
	case SourceSmartDefaults:
		return "smart-defaults"
	case SourceAutoDetected:
		return "auto-detected"
	case SourceEnvironment:
		return "environment"
	case SourceProperties:
		return "properties"
	case SourceDSL:
		return "dsl"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// MarshalYAML renders the source name rather than its rank.
func (s Source) MarshalYAML() (any, error) {
	return s.String(), nil
}

// ParseSource converts a source name back into a Source.
func ParseSource(name string) (Source, error) {
	for s := SourceDefaults; s <= SourceDSL; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("parse source: unknown source %q", name)
}

// Credentials holds the repository account used for uploads. Passwords are
// never written to logs in full; see IsSecretPath.
type Credentials struct {
	Username string `mapstructure:"username" yaml:"username"`
	Password string `mapstructure:"password" yaml:"password"`
}

// SCM describes the source-control coordinates published in the POM.
type SCM struct {
	URL                 string `mapstructure:"url" yaml:"url"`
	Connection          string `mapstructure:"connection" yaml:"connection"`
	DeveloperConnection string `mapstructure:"developerConnection" yaml:"developerConnection"`
}

// License describes the published license entry.
type License struct {
	Name         string `mapstructure:"name" yaml:"name"`
	URL          string `mapstructure:"url" yaml:"url"`
	Distribution string `mapstructure:"distribution" yaml:"distribution"`
}

// Developer is one entry of the published developer list. The list is keyed
// by position: a non-empty list from a higher-precedence source replaces the
// whole lower-precedence list, entries are never merged element-by-element.
type Developer struct {
	ID              string `mapstructure:"id" yaml:"id"`
	Name            string `mapstructure:"name" yaml:"name"`
	Email           string `mapstructure:"email" yaml:"email"`
	Organization    string `mapstructure:"organization" yaml:"organization"`
	OrganizationURL string `mapstructure:"organizationUrl" yaml:"organizationUrl"`
}

// IsZero reports whether every field of the developer is empty.
func (d Developer) IsZero() bool {
	return d == Developer{}
}

// ProjectInfo holds the published project metadata.
type ProjectInfo struct {
	Name        string      `mapstructure:"name" yaml:"name"`
	Description string      `mapstructure:"description" yaml:"description"`
	URL         string      `mapstructure:"url" yaml:"url"`
	SCM         SCM         `mapstructure:"scm" yaml:"scm"`
	License     License     `mapstructure:"license" yaml:"license"`
	Developers  []Developer `mapstructure:"developers" yaml:"developers"`
}

// Signing holds the GPG signing settings. The key password is secret; the
// key ID and keyring path are not.
type Signing struct {
	KeyID             string `mapstructure:"keyId" yaml:"keyId"`
	Password          string `mapstructure:"password" yaml:"password"`
	SecretKeyRingFile string `mapstructure:"secretKeyRingFile" yaml:"secretKeyRingFile"`
}

// Publishing holds the upload behavior toggles.
type Publishing struct {
	AutoPublish    bool     `yaml:"autoPublish"`
	Aggregation    bool     `yaml:"aggregation"`
	DryRun         bool     `yaml:"dryRun"`
	Publications   []string `yaml:"publications"`
	ExcludeModules []string `yaml:"excludeModules"`
}

// Validation holds the validation toggles consumed by callers and by
// Engine.Resolve itself.
type Validation struct {
	Enabled            bool `yaml:"enabled"`
	RequireCredentials bool `yaml:"requireCredentials"`
}

// AutoDetection holds the auto-detection toggle consumed by callers.
type AutoDetection struct {
	Enabled bool `yaml:"enabled"`
}

// Metadata describes how the configuration was produced.
type Metadata struct {
	// Sources lists every source that contributed at least one value,
	// in ascending precedence order. The defaults baseline is implicit
	// and never listed.
	Sources       []Source  `yaml:"sources"`
	LastModified  time.Time `yaml:"lastModified"`
	SchemaVersion string    `yaml:"schemaVersion"`
}

// Config is the fully resolved configuration tree. Instances are value types
// and are never mutated after Resolve returns; loaders and the merge engine
// only produce fresh copies.
type Config struct {
	Credentials   Credentials   `yaml:"credentials"`
	ProjectInfo   ProjectInfo   `yaml:"projectInfo"`
	Signing       Signing       `yaml:"signing"`
	Publishing    Publishing    `yaml:"publishing"`
	Validation    Validation    `yaml:"validation"`
	AutoDetection AutoDetection `yaml:"autoDetection"`
	Metadata      Metadata      `yaml:"metadata"`
}

// DefaultConfig returns the type-default baseline every resolution starts
// from: all strings empty, aggregation and the validation/auto-detection
// toggles on, everything else off.
func DefaultConfig() Config {
	return Config{
		Publishing: Publishing{
			AutoPublish: false,
			Aggregation: true,
			DryRun:      false,
		},
		Validation:    Validation{Enabled: true},
		AutoDetection: AutoDetection{Enabled: true},
		Metadata:      Metadata{SchemaVersion: SchemaVersion},
	}
}

// PublishingPartial mirrors Publishing with tri-state booleans: nil means
// "not mentioned" and never overrides, a non-nil false is an explicit value
// and does.
type PublishingPartial struct {
	AutoPublish    *bool    `mapstructure:"autoPublish" yaml:"autoPublish"`
	Aggregation    *bool    `mapstructure:"aggregation" yaml:"aggregation"`
	DryRun         *bool    `mapstructure:"dryRun" yaml:"dryRun"`
	Publications   []string `mapstructure:"publications" yaml:"publications"`
	ExcludeModules []string `mapstructure:"excludeModules" yaml:"excludeModules"`
}

// ValidationPartial mirrors Validation with tri-state booleans.
type ValidationPartial struct {
	Enabled            *bool `mapstructure:"enabled" yaml:"enabled"`
	RequireCredentials *bool `mapstructure:"requireCredentials" yaml:"requireCredentials"`
}

// AutoDetectionPartial mirrors AutoDetection with a tri-state boolean.
type AutoDetectionPartial struct {
	Enabled *bool `mapstructure:"enabled" yaml:"enabled"`
}

// Partial is a configuration with some fields unset, as produced by a single
// loader or assembled by a caller (the DSL surface). String fields are set
// iff non-empty, booleans iff non-nil, lists iff non-empty.
type Partial struct {
	Credentials   Credentials          `mapstructure:"credentials" yaml:"credentials"`
	ProjectInfo   ProjectInfo          `mapstructure:"projectInfo" yaml:"projectInfo"`
	Signing       Signing              `mapstructure:"signing" yaml:"signing"`
	Publishing    PublishingPartial    `mapstructure:"publishing" yaml:"publishing"`
	Validation    ValidationPartial    `mapstructure:"validation" yaml:"validation"`
	AutoDetection AutoDetectionPartial `mapstructure:"autoDetection" yaml:"autoDetection"`
}

// IsEmpty reports whether the partial sets no field at all. Loaders that
// find no input return an empty partial, and empty partials are skipped by
// the merge so they never show up in Metadata.Sources.
func (p Partial) IsEmpty() bool {
	empty := true
	p.walk(func(string, any) { empty = false })
	return empty
}

// Clone returns a deep copy of the partial. Slices are copied so callers
// can keep mutating their input after handing it to the engine.
func (p Partial) Clone() Partial {
	c := p
	if p.ProjectInfo.Developers != nil {
		c.ProjectInfo.Developers = append([]Developer(nil), p.ProjectInfo.Developers...)
	}
	c.Publishing.AutoPublish = cloneBool(p.Publishing.AutoPublish)
	c.Publishing.Aggregation = cloneBool(p.Publishing.Aggregation)
	c.Publishing.DryRun = cloneBool(p.Publishing.DryRun)
	if p.Publishing.Publications != nil {
		c.Publishing.Publications = append([]string(nil), p.Publishing.Publications...)
	}
	if p.Publishing.ExcludeModules != nil {
		c.Publishing.ExcludeModules = append([]string(nil), p.Publishing.ExcludeModules...)
	}
	c.Validation.Enabled = cloneBool(p.Validation.Enabled)
	c.Validation.RequireCredentials = cloneBool(p.Validation.RequireCredentials)
	c.AutoDetection.Enabled = cloneBool(p.AutoDetection.Enabled)
	return c
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

// Bool returns a pointer to b, for assembling Partial literals.
func Bool(b bool) *bool {
	return &b
}

// defaultsPartial is the baseline rendered as a partial, used only to feed
// the diagnostics recorder so FinalValue answers for fields no loader set.
func defaultsPartial() Partial {
	return Partial{
		Publishing: PublishingPartial{
			AutoPublish: Bool(false),
			Aggregation: Bool(true),
			DryRun:      Bool(false),
		},
		Validation:    ValidationPartial{Enabled: Bool(true), RequireCredentials: Bool(false)},
		AutoDetection: AutoDetectionPartial{Enabled: Bool(true)},
	}
}

// ProjectContext carries the facts about the project being configured that
// detectors and the smart-defaults loader may consult.
type ProjectContext struct {
	// Dir is the project root directory. Empty disables directory-derived
	// fallbacks.
	Dir string
}
