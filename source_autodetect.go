package pompub

import "fmt"

// Detector supplies configuration inferred from the project itself. The
// engine runs detectors in the order they were registered and merges their
// outputs with the usual field-level rules, so a later detector overrides an
// earlier one where both set a field. Implementations live outside the
// engine (see the detect package for the defaults) and must be cheap,
// read-only and side-effect free.
type Detector interface {
	// Name identifies the detector in warnings and debug logs.
	Name() string

	// Detect inspects the project and returns whatever it could infer.
	// Finding nothing is an empty partial and a nil error.
	Detect(proj ProjectContext) (Partial, error)
}

// loadAutoDetected runs every detector and pre-merges their outputs into a
// single partial tagged auto-detected. A failing detector contributes a
// warning instead of aborting.
func loadAutoDetected(detectors []Detector, proj ProjectContext) (Partial, []LoadWarning) {
	var (
		combined Partial
		warnings []LoadWarning
	)
	for _, d := range detectors {
		p, err := d.Detect(proj)
		if err != nil {
			warnings = append(warnings, LoadWarning{
				Source:  SourceAutoDetected,
				Key:     d.Name(),
				Message: fmt.Sprintf("detector failed: %v", err),
			})
			continue
		}
		combined = mergePartial(combined, p)
	}
	return combined, warnings
}
