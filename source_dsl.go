package pompub

// loadDSL passes the caller-assembled partial through unchanged, detached
// from the caller's copy. The explicit configuration is already in its final
// shape; wizard and build-script DSLs construct a Partial (usually via
// Builder) and hand it over.
func loadDSL(explicit *Partial) Partial {
	if explicit == nil {
		return Partial{}
	}
	return explicit.Clone()
}
