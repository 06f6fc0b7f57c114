package pompub

// Builder assembles the explicit (DSL) configuration fluently. Every setter
// marks its fields as explicitly assigned, so Aggregation(false) really does
// override a lower-precedence true. Build returns a detached Partial; the
// builder can keep being used afterwards.
//
//	explicit := pompub.NewBuilder().
//		ProjectName("widget").
//		Credentials("deploy", secret).
//		AutoPublish(true).
//		Build()
type Builder struct {
	p Partial
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Credentials sets the repository account.
func (b *Builder) Credentials(username, password string) *Builder {
	b.p.Credentials.Username = username
	b.p.Credentials.Password = password
	return b
}

// ProjectName sets the published project name.
func (b *Builder) ProjectName(name string) *Builder {
	b.p.ProjectInfo.Name = name
	return b
}

// Description sets the published project description.
func (b *Builder) Description(description string) *Builder {
	b.p.ProjectInfo.Description = description
	return b
}

// ProjectURL sets the published project URL.
func (b *Builder) ProjectURL(url string) *Builder {
	b.p.ProjectInfo.URL = url
	return b
}

// SCM sets the source-control coordinates. Empty strings leave the
// corresponding field unset.
func (b *Builder) SCM(url, connection, developerConnection string) *Builder {
	b.p.ProjectInfo.SCM = SCM{
		URL:                 url,
		Connection:          connection,
		DeveloperConnection: developerConnection,
	}
	return b
}

// License sets the published license entry.
func (b *Builder) License(name, url, distribution string) *Builder {
	b.p.ProjectInfo.License = License{
		Name:         name,
		URL:          url,
		Distribution: distribution,
	}
	return b
}

// Developer appends one developer to the list.
func (b *Builder) Developer(d Developer) *Builder {
	b.p.ProjectInfo.Developers = append(b.p.ProjectInfo.Developers, d)
	return b
}

// Signing sets the GPG signing settings. Empty strings leave the
// corresponding field unset.
func (b *Builder) Signing(keyID, password, secretKeyRingFile string) *Builder {
	b.p.Signing = Signing{
		KeyID:             keyID,
		Password:          password,
		SecretKeyRingFile: secretKeyRingFile,
	}
	return b
}

// AutoPublish explicitly sets publishing.autoPublish.
func (b *Builder) AutoPublish(v bool) *Builder {
	b.p.Publishing.AutoPublish = Bool(v)
	return b
}

// Aggregation explicitly sets publishing.aggregation.
func (b *Builder) Aggregation(v bool) *Builder {
	b.p.Publishing.Aggregation = Bool(v)
	return b
}

// DryRun explicitly sets publishing.dryRun.
func (b *Builder) DryRun(v bool) *Builder {
	b.p.Publishing.DryRun = Bool(v)
	return b
}

// Publications replaces the publication set.
func (b *Builder) Publications(names ...string) *Builder {
	b.p.Publishing.Publications = append([]string(nil), names...)
	return b
}

// ExcludeModules replaces the excluded-module set.
func (b *Builder) ExcludeModules(names ...string) *Builder {
	b.p.Publishing.ExcludeModules = append([]string(nil), names...)
	return b
}

// ValidationEnabled explicitly toggles validation.
func (b *Builder) ValidationEnabled(v bool) *Builder {
	b.p.Validation.Enabled = Bool(v)
	return b
}

// RequireCredentials explicitly toggles the credentials requirement.
func (b *Builder) RequireCredentials(v bool) *Builder {
	b.p.Validation.RequireCredentials = Bool(v)
	return b
}

// AutoDetectionEnabled explicitly toggles auto-detection.
func (b *Builder) AutoDetectionEnabled(v bool) *Builder {
	b.p.AutoDetection.Enabled = Bool(v)
	return b
}

// Build returns the assembled partial, detached from the builder.
func (b *Builder) Build() Partial {
	return b.p.Clone()
}
