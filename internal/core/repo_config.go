package core

// RepoConfig is the optional in-repo configuration file (.pr-sentinel.yml)
// read from the pull request's head revision. Fields left empty fall back to
// the repository record's defaults.
type RepoConfig struct {
	ReviewStyle ReviewStyle `yaml:"review_style"`
	IgnorePaths []string    `yaml:"ignore_paths"`
}

// DefaultRepoConfig returns a config with no overrides set.
func DefaultRepoConfig() *RepoConfig {
	return &RepoConfig{}
}
