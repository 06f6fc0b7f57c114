package pompub

// applyPartial merges one partial into an accumulated config and returns the
// new config. For every field the partial sets, the partial's value wins;
// everything else keeps the accumulator's value. List- and set-valued fields
// are replaced wholesale, never concatenated. Neither input is mutated.
//
// Callers apply partials in ascending precedence so that the last applied
// source wins per field; the smart-defaults loader is the one sanctioned
// exception (it runs after auto-detection but only fills fields still empty
// in its input, so it can never shadow an auto-detected value).
func applyPartial(cfg Config, p Partial) Config {
	out := cfg

	overrideString(&out.Credentials.Username, p.Credentials.Username)
	overrideString(&out.Credentials.Password, p.Credentials.Password)

	overrideString(&out.ProjectInfo.Name, p.ProjectInfo.Name)
	overrideString(&out.ProjectInfo.Description, p.ProjectInfo.Description)
	overrideString(&out.ProjectInfo.URL, p.ProjectInfo.URL)
	overrideString(&out.ProjectInfo.SCM.URL, p.ProjectInfo.SCM.URL)
	overrideString(&out.ProjectInfo.SCM.Connection, p.ProjectInfo.SCM.Connection)
	overrideString(&out.ProjectInfo.SCM.DeveloperConnection, p.ProjectInfo.SCM.DeveloperConnection)
	overrideString(&out.ProjectInfo.License.Name, p.ProjectInfo.License.Name)
	overrideString(&out.ProjectInfo.License.URL, p.ProjectInfo.License.URL)
	overrideString(&out.ProjectInfo.License.Distribution, p.ProjectInfo.License.Distribution)
	if len(p.ProjectInfo.Developers) > 0 {
		out.ProjectInfo.Developers = append([]Developer(nil), p.ProjectInfo.Developers...)
	}

	overrideString(&out.Signing.KeyID, p.Signing.KeyID)
	overrideString(&out.Signing.Password, p.Signing.Password)
	overrideString(&out.Signing.SecretKeyRingFile, p.Signing.SecretKeyRingFile)

	overrideBool(&out.Publishing.AutoPublish, p.Publishing.AutoPublish)
	overrideBool(&out.Publishing.Aggregation, p.Publishing.Aggregation)
	overrideBool(&out.Publishing.DryRun, p.Publishing.DryRun)
	if len(p.Publishing.Publications) > 0 {
		out.Publishing.Publications = append([]string(nil), p.Publishing.Publications...)
	}
	if len(p.Publishing.ExcludeModules) > 0 {
		out.Publishing.ExcludeModules = append([]string(nil), p.Publishing.ExcludeModules...)
	}

	overrideBool(&out.Validation.Enabled, p.Validation.Enabled)
	overrideBool(&out.Validation.RequireCredentials, p.Validation.RequireCredentials)
	overrideBool(&out.AutoDetection.Enabled, p.AutoDetection.Enabled)

	return out
}

// mergePartial layers src over dst and returns the combined partial. The
// same field-level override rules as applyPartial apply; it backs the
// auto-detection loader, which pre-merges detector outputs in declaration
// order before the combined result enters the main merge.
func mergePartial(dst, src Partial) Partial {
	out := dst.Clone()

	overrideString(&out.Credentials.Username, src.Credentials.Username)
	overrideString(&out.Credentials.Password, src.Credentials.Password)

	overrideString(&out.ProjectInfo.Name, src.ProjectInfo.Name)
	overrideString(&out.ProjectInfo.Description, src.ProjectInfo.Description)
	overrideString(&out.ProjectInfo.URL, src.ProjectInfo.URL)
	overrideString(&out.ProjectInfo.SCM.URL, src.ProjectInfo.SCM.URL)
	overrideString(&out.ProjectInfo.SCM.Connection, src.ProjectInfo.SCM.Connection)
	overrideString(&out.ProjectInfo.SCM.DeveloperConnection, src.ProjectInfo.SCM.DeveloperConnection)
	overrideString(&out.ProjectInfo.License.Name, src.ProjectInfo.License.Name)
	overrideString(&out.ProjectInfo.License.URL, src.ProjectInfo.License.URL)
	overrideString(&out.ProjectInfo.License.Distribution, src.ProjectInfo.License.Distribution)
	if len(src.ProjectInfo.Developers) > 0 {
		out.ProjectInfo.Developers = append([]Developer(nil), src.ProjectInfo.Developers...)
	}

	overrideString(&out.Signing.KeyID, src.Signing.KeyID)
	overrideString(&out.Signing.Password, src.Signing.Password)
	overrideString(&out.Signing.SecretKeyRingFile, src.Signing.SecretKeyRingFile)

	overridePtr(&out.Publishing.AutoPublish, src.Publishing.AutoPublish)
	overridePtr(&out.Publishing.Aggregation, src.Publishing.Aggregation)
	overridePtr(&out.Publishing.DryRun, src.Publishing.DryRun)
	if len(src.Publishing.Publications) > 0 {
		out.Publishing.Publications = append([]string(nil), src.Publishing.Publications...)
	}
	if len(src.Publishing.ExcludeModules) > 0 {
		out.Publishing.ExcludeModules = append([]string(nil), src.Publishing.ExcludeModules...)
	}

	overridePtr(&out.Validation.Enabled, src.Validation.Enabled)
	overridePtr(&out.Validation.RequireCredentials, src.Validation.RequireCredentials)
	overridePtr(&out.AutoDetection.Enabled, src.AutoDetection.Enabled)

	return out
}

// overrideString overwrites dst only when v is set (non-empty). An empty
// string means "not set in this source", so it never clobbers.
func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// overrideBool overwrites dst only when v was explicitly assigned. A nil
// pointer means the source did not mention the field; an explicit false does
// override.
func overrideBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func overridePtr(dst **bool, v *bool) {
	if v != nil {
		*dst = cloneBool(v)
	}
}
