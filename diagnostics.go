package pompub

import (
	"sort"

	"github.com/google/uuid"
)

// ProvenanceEntry is one recorded (value, source) observation for a field.
type ProvenanceEntry struct {
	Value  any
	Source Source
}

// Diagnostics records every value any loader supplied for any field during
// one Resolve call, in arrival order, and answers "what won and who supplied
// it" per field. Instances belong to a single Resolve call and are not safe
// for concurrent mutation; reading after Resolve returns is fine.
type Diagnostics struct {
	id      uuid.UUID
	entries map[string][]ProvenanceEntry
	sources map[Source]struct{}
}

func newDiagnostics() *Diagnostics {
	return &Diagnostics{
		id:      uuid.New(),
		entries: make(map[string][]ProvenanceEntry),
		sources: make(map[Source]struct{}),
	}
}

// ID identifies this resolution, for correlating log lines when several
// projects resolve in parallel.
func (d *Diagnostics) ID() uuid.UUID {
	return d.id
}

// record stores one observation. Secrets are stored as-is; presentation
// layers redact via RedactValue.
func (d *Diagnostics) record(path string, value any, src Source) {
	d.entries[path] = append(d.entries[path], ProvenanceEntry{Value: value, Source: src})
	d.sources[src] = struct{}{}
}

// recordPartial stores an observation for every field the partial sets.
func (d *Diagnostics) recordPartial(p Partial, src Source) {
	p.walk(func(path string, value any) {
		d.record(path, value, src)
	})
}

// SourcesUsed returns every source that recorded at least one value, in
// ascending precedence order. The defaults baseline is included here (it
// always records) even though Metadata.Sources omits it.
func (d *Diagnostics) SourcesUsed() []Source {
	out := make([]Source, 0, len(d.sources))
	for s := range d.sources {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ValuesFor returns every recorded (value, source) pair for the field, in
// the order the loaders ran, not precedence order.
func (d *Diagnostics) ValuesFor(path string) []ProvenanceEntry {
	return append([]ProvenanceEntry(nil), d.entries[path]...)
}

// FinalValue returns the winning value for the field: the entry with the
// highest-precedence source, later arrivals breaking ties. It agrees exactly
// with the merge result for that field. For a known path nobody recorded it
// falls back to the type default.
func (d *Diagnostics) FinalValue(path string) any {
	entry, ok := d.winner(path)
	if !ok {
		if v, known := DefaultConfig().Value(path); known {
			return v
		}
		return nil
	}
	return entry.Value
}

// WinningSource returns the source that supplied the winning value, and
// false when nothing was recorded for the field.
func (d *Diagnostics) WinningSource(path string) (Source, bool) {
	entry, ok := d.winner(path)
	if !ok {
		return 0, false
	}
	return entry.Source, true
}

func (d *Diagnostics) winner(path string) (ProvenanceEntry, bool) {
	entries := d.entries[path]
	if len(entries) == 0 {
		return ProvenanceEntry{}, false
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Source >= best.Source {
			best = e
		}
	}
	return best, true
}

// FieldPathsSeen returns every field path with at least one recorded value,
// sorted lexically.
func (d *Diagnostics) FieldPathsSeen() []string {
	out := make([]string, 0, len(d.entries))
	for p := range d.entries {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
