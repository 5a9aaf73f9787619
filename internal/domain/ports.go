package domain

// Materializer writes rendered artifacts to disk and reports what it wrote.
// A failure returns the partial report accumulated so far alongside the error.
type Materializer interface {
	Materialize(artifacts []GeneratedArtifact) (GenerationReport, error)
}

// ConfigLoader reads project-level configuration.
type ConfigLoader interface {
	Load(projectPath string) (Config, error)
}

// GitInfo provides repository metadata for history entries.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// HistoryStore persists generation records across invocations.
type HistoryStore interface {
	Save(projectPath string, record GenerationRecord) error
	Load(projectPath string) ([]GenerationRecord, error)
}
