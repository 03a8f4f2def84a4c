package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Repository RepositoryConfig `yaml:"repository"`
	Source     string           `yaml:"source"`
	Wiki       WikiConfig       `yaml:"wiki"`
	Sidebar    SidebarConfig    `yaml:"sidebar"`
	Publish    PublishConfig    `yaml:"publish"`
	Watch      WatchConfig      `yaml:"watch"`
}

// RepositoryConfig identifies the repository the wiki belongs to
type RepositoryConfig struct {
	Owner string `yaml:"owner"`
	Name  string `yaml:"name"`
	URL   string `yaml:"url,omitempty"` // overrides the derived GitHub URL when set
}

// RepoURL returns the repository web URL, derived from owner/name unless overridden.
func (r RepositoryConfig) RepoURL() string {
	if r.URL != "" {
		return r.URL
	}
	return fmt.Sprintf("https://github.com/%s/%s", r.Owner, r.Name)
}

// DocsURL returns the published documentation URL for the repository.
func (r RepositoryConfig) DocsURL() string {
	return fmt.Sprintf("https://%s.github.io/%s/", r.Owner, r.Name)
}

// WikiConfig represents wiki output configuration
type WikiConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // Clean output directory before preparing (preserves .git)
}

// SidebarConfig controls sidebar section assembly
type SidebarConfig struct {
	Title         string   `yaml:"title,omitempty"`
	Sections      []Section `yaml:"sections,omitempty"`
	Subcategories []string `yaml:"subcategories,omitempty"` // display-name prefixes stripped after the section prefix
}

// Section is one sidebar grouping: pages matching Prefix-*.md under a heading
type Section struct {
	Title  string `yaml:"title"`
	Prefix string `yaml:"prefix"`
}

// PublishConfig controls committing the prepared wiki
type PublishConfig struct {
	Commit  bool   `yaml:"commit"`
	Message string `yaml:"message,omitempty"`
	Author  string `yaml:"author,omitempty"`
	Email   string `yaml:"email,omitempty"`
}

// WatchConfig controls continuous-preparation mode
type WatchConfig struct {
	Debounce    string `yaml:"debounce,omitempty"` // duration string, e.g. "2s"
	MetricsAddr string `yaml:"metrics_addr,omitempty"`
}

// DebounceDuration parses the configured debounce window, falling back to
// the default when unset or unparseable.
func (w WatchConfig) DebounceDuration() time.Duration {
	if d, err := time.ParseDuration(w.Debounce); err == nil && d > 0 {
		return d
	}
	return 2 * time.Second
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	if err := loadEnvFile(); err != nil {
		// Don't fail if .env doesn't exist, just log it
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyDefaults fills in defaults for optional fields.
func (c *Config) applyDefaults() {
	if c.Source == "" {
		c.Source = "."
	}
	if c.Wiki.Directory == "" {
		c.Wiki.Directory = "./wiki"
	}
	if c.Sidebar.Title == "" {
		c.Sidebar.Title = "📚 Documentation"
	}
	if len(c.Sidebar.Sections) == 0 {
		c.Sidebar.Sections = defaultSections()
	}
	if len(c.Sidebar.Subcategories) == 0 {
		c.Sidebar.Subcategories = defaultSubcategories()
	}
	if c.Publish.Message == "" {
		c.Publish.Message = "Update wiki content"
	}
	if c.Watch.Debounce == "" {
		c.Watch.Debounce = "2s"
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Repository.Owner == "" {
		return fmt.Errorf("repository.owner is required")
	}
	if c.Repository.Name == "" {
		return fmt.Errorf("repository.name is required")
	}
	return nil
}
