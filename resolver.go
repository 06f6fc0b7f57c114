package pompub

import (
	"log/slog"
	"sort"
	"time"
)

// ResolveRequest carries one project's inputs into Resolve.
type ResolveRequest struct {
	// Explicit is the caller-assembled configuration (the DSL source).
	// Nil means the caller set nothing explicitly.
	Explicit *Partial

	// PropertiesPath points at the key=value properties file. Empty skips
	// the properties source; a missing file is not an error.
	PropertiesPath string

	// EnableAutoDetection runs the engine's registered detectors. The
	// explicit configuration can still veto it via autoDetection.enabled.
	EnableAutoDetection bool

	// ValidateOnLoad additionally runs the validator over the properties
	// partial on its own and records violations as warnings.
	ValidateOnLoad bool

	// RequireCredentials marks the caller's current action as one that
	// needs repository credentials, making empty credentials a violation.
	RequireCredentials bool

	// Project describes the project for detectors and smart defaults.
	Project ProjectContext
}

// Resolution is everything one Resolve call produced.
type Resolution struct {
	Config      Config
	Diagnostics *Diagnostics
	Violations  []ValidationError
	Warnings    []LoadWarning
}

// Err wraps the violations into a single hard error, or returns nil when
// the configuration validated cleanly.
func (r *Resolution) Err() error {
	return AggregateValidationErrors(r.Violations)
}

// Engine is the layered configuration resolver. It is safe for concurrent
// use: the file cache is its only shared mutable state and every Resolve
// call gets its own diagnostics.
type Engine struct {
	cache     *FileCache
	detectors []Detector
	lookupEnv LookupEnv
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithFileCache substitutes the properties-file cache; tests use it for a
// fresh cache per test.
func WithFileCache(c *FileCache) Option {
	return func(e *Engine) { e.cache = c }
}

// WithDetectors registers the auto-detectors, run in the given order.
func WithDetectors(detectors ...Detector) Option {
	return func(e *Engine) { e.detectors = append(e.detectors, detectors...) }
}

// WithEnvLookup substitutes the environment accessor.
func WithEnvLookup(lookup LookupEnv) Option {
	return func(e *Engine) { e.lookupEnv = lookup }
}

// WithLogger makes the engine log source application at debug level.
// Secrets are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine returns an engine with its own file cache, no detectors, the
// process environment and no logging.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		cache:  NewFileCache(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve loads every configured source, merges them under the fixed
// precedence order, and returns the final configuration together with its
// provenance and any validation violations. It never fails: missing inputs
// yield empty partials and broken entries degrade to warnings.
//
// Sources are applied auto-detected, smart-defaults, environment,
// properties, then DSL. Smart defaults run second despite ranking below
// auto-detection because they are computed from the configuration merged so
// far and only fill fields that are still empty.
func (e *Engine) Resolve(req ResolveRequest) *Resolution {
	diag := newDiagnostics()
	log := e.logger.With("resolution", diag.ID().String())

	cfg := DefaultConfig()
	diag.recordPartial(defaultsPartial(), SourceDefaults)

	var (
		warnings    []LoadWarning
		contributed []Source
	)

	apply := func(p Partial, src Source) {
		if p.IsEmpty() {
			return
		}
		diag.recordPartial(p, src)
		cfg = applyPartial(cfg, p)
		contributed = append(contributed, src)
		log.Debug("applied configuration source", "source", src.String())
	}

	autodetect := req.EnableAutoDetection && len(e.detectors) > 0
	if req.Explicit != nil && req.Explicit.AutoDetection.Enabled != nil {
		autodetect = autodetect && *req.Explicit.AutoDetection.Enabled
	}
	if autodetect {
		p, w := loadAutoDetected(e.detectors, req.Project)
		warnings = append(warnings, w...)
		apply(p, SourceAutoDetected)
	}

	apply(loadSmartDefaults(cfg, req.Project), SourceSmartDefaults)
	apply(loadEnvironment(e.lookupEnv), SourceEnvironment)

	if req.PropertiesPath != "" {
		p, w, err := e.cache.GetOrLoad(req.PropertiesPath)
		if err != nil {
			warnings = append(warnings, LoadWarning{
				Source:  SourceProperties,
				Path:    req.PropertiesPath,
				Message: err.Error(),
			})
		}
		warnings = append(warnings, w...)
		if req.ValidateOnLoad && !p.IsEmpty() {
			for _, v := range Validate(applyPartial(DefaultConfig(), p), ValidateOptions{}) {
				warnings = append(warnings, LoadWarning{
					Source:  SourceProperties,
					Path:    req.PropertiesPath,
					Key:     v.Field,
					Message: v.Message,
				})
			}
		}
		apply(p, SourceProperties)
	}

	apply(loadDSL(req.Explicit), SourceDSL)

	sort.Slice(contributed, func(i, j int) bool { return contributed[i] < contributed[j] })
	cfg.Metadata.Sources = contributed
	cfg.Metadata.LastModified = time.Now().UTC()
	cfg.Metadata.SchemaVersion = SchemaVersion

	var violations []ValidationError
	if cfg.Validation.Enabled {
		violations = Validate(cfg, ValidateOptions{
			RequireCredentials: req.RequireCredentials || cfg.Validation.RequireCredentials,
		})
	}

	return &Resolution{
		Config:      cfg,
		Diagnostics: diag,
		Violations:  violations,
		Warnings:    warnings,
	}
}

// std is the process-wide engine behind the package-level Resolve. Its file
// cache lives for the process, keyed by file identity.
var std = NewEngine()

// Resolve resolves with the package default engine. The default engine has
// no detectors registered; callers that want auto-detection construct their
// own via NewEngine(WithDetectors(...)).
func Resolve(explicit *Partial, propertiesPath string, enableAutoDetection bool) *Resolution {
	return std.Resolve(ResolveRequest{
		Explicit:            explicit,
		PropertiesPath:      propertiesPath,
		EnableAutoDetection: enableAutoDetection,
	})
}
