package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pubforge/pompub"
)

// formatOptions controls how a resolution is rendered.
type formatOptions struct {
	Output      string // "table" or "yaml"
	ShowSecrets bool
}

func formatResolution(w io.Writer, res *pompub.Resolution, opts formatOptions) error {
	if opts.Output == "yaml" {
		return formatResolutionYAML(w, res, opts)
	}
	return formatResolutionTable(w, res, opts)
}

func formatResolutionTable(w io.Writer, res *pompub.Resolution, opts formatOptions) error {
	widest := 0
	for _, path := range pompub.FieldPaths() {
		if len(path) > widest {
			widest = len(path)
		}
	}

	for _, path := range pompub.FieldPaths() {
		value, _ := res.Config.Value(path)
		if !opts.ShowSecrets {
			value = pompub.RedactValue(path, value)
		}
		source := "defaults"
		if s, ok := res.Diagnostics.WinningSource(path); ok {
			source = s.String()
		}
		_, _ = fmt.Fprintf(w, "%-*s  %-14s  %s\n", widest, path, source, renderValue(value))
	}

	_, _ = fmt.Fprintf(w, "\nsources: %s\n", renderSources(res.Config.Metadata.Sources))

	for _, warn := range res.Warnings {
		_, _ = fmt.Fprintf(w, "warning: %s\n", warn)
	}
	for _, v := range res.Violations {
		_, _ = fmt.Fprintf(w, "invalid: %s (%s)\n", v.Error(), v.Code)
	}
	return nil
}

// yamlResolution is the machine-readable rendering of a resolution.
type yamlResolution struct {
	Config     pompub.Config     `yaml:"config"`
	Provenance map[string]string `yaml:"provenance"`
	Warnings   []string          `yaml:"warnings,omitempty"`
	Violations []string          `yaml:"violations,omitempty"`
}

func formatResolutionYAML(w io.Writer, res *pompub.Resolution, opts formatOptions) error {
	cfg := res.Config
	if !opts.ShowSecrets {
		if cfg.Credentials.Password != "" {
			cfg.Credentials.Password = pompub.Redacted
		}
		if cfg.Signing.Password != "" {
			cfg.Signing.Password = pompub.Redacted
		}
	}

	out := yamlResolution{
		Config:     cfg,
		Provenance: make(map[string]string),
	}
	for _, path := range pompub.FieldPaths() {
		if s, ok := res.Diagnostics.WinningSource(path); ok {
			out.Provenance[path] = s.String()
		}
	}
	for _, warn := range res.Warnings {
		out.Warnings = append(out.Warnings, warn.String())
	}
	for _, v := range res.Violations {
		out.Violations = append(out.Violations, v.Error())
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode resolution: %w", err)
	}
	return enc.Close()
}

func formatExplain(w io.Writer, res *pompub.Resolution, path string, showSecrets bool) {
	entries := res.Diagnostics.ValuesFor(path)
	if len(entries) == 0 {
		_, _ = fmt.Fprintf(w, "%s: no source set this field\n", path)
		return
	}

	winner, _ := res.Diagnostics.WinningSource(path)
	_, _ = fmt.Fprintf(w, "%s:\n", path)
	for i, e := range entries {
		value := e.Value
		if !showSecrets {
			value = pompub.RedactValue(path, value)
		}
		marker := " "
		if e.Source == winner {
			marker = "*"
		}
		_, _ = fmt.Fprintf(w, "  %s %d. %-14s %s\n", marker, i+1, e.Source.String(), renderValue(value))
	}
	final := res.Diagnostics.FinalValue(path)
	if !showSecrets {
		final = pompub.RedactValue(path, final)
	}
	_, _ = fmt.Fprintf(w, "final value (%s): %s\n", winner.String(), renderValue(final))
}

func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		if val == "" {
			return `""`
		}
		return val
	case bool:
		return fmt.Sprintf("%t", val)
	case []string:
		if len(val) == 0 {
			return "[]"
		}
		return strings.Join(val, ", ")
	case []pompub.Developer:
		ids := make([]string, len(val))
		for i, d := range val {
			switch {
			case d.ID != "":
				ids[i] = d.ID
			case d.Name != "":
				ids[i] = d.Name
			default:
				ids[i] = d.Email
			}
		}
		return strings.Join(ids, ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}

func renderSources(sources []pompub.Source) string {
	if len(sources) == 0 {
		return "(none)"
	}
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
