// Package config provides configuration structures for the search server.
// It defines the corpus, queries and runtime options loaded from YAML.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gcbaptista/search-server/internal/requests"
	"github.com/gcbaptista/search-server/model"
)

// DocumentConfig describes one document to index at startup.
type DocumentConfig struct {
	ID      int                  `yaml:"id"`
	Text    string               `yaml:"text"`
	Status  model.DocumentStatus `yaml:"status"`  // ACTUAL when omitted
	Ratings []int                `yaml:"ratings"` // Averaged, truncated toward zero
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls request metrics collection.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Settings is the top-level configuration of the search server.
type Settings struct {
	StopWords     string           `yaml:"stop_words"`     // Space separated
	Documents     []DocumentConfig `yaml:"documents"`      // Indexed in order; failures are skipped
	Queries       []string         `yaml:"queries"`        // Run after indexing
	StatusFilter  string           `yaml:"status_filter"`  // Status used to filter results
	PageSize      int              `yaml:"page_size"`      // Results per printed page
	RequestWindow int              `yaml:"request_window"` // Requests remembered by the tracker
	Workers       int              `yaml:"workers"`        // Parallel queries, 0 = unlimited
	Logging       LoggingConfig    `yaml:"logging"`
	Metrics       MetricsConfig    `yaml:"metrics"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides, then fills in defaults for any missing values.
func Load(path string) (*Settings, error) {
	settings := &Settings{}
	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the command line
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(settings)
	settings.ApplyDefaults()
	return settings, nil
}

func applyEnvOverrides(settings *Settings) {
	if v := os.Getenv("SEARCH_STOP_WORDS"); v != "" {
		settings.StopWords = v
	}
	if v := os.Getenv("SEARCH_STATUS_FILTER"); v != "" {
		settings.StatusFilter = v
	}
	if v := os.Getenv("SEARCH_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			settings.PageSize = n
		}
	}
	if v := os.Getenv("SEARCH_REQUEST_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			settings.RequestWindow = n
		}
	}
	if v := os.Getenv("SEARCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			settings.Workers = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		settings.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		settings.Logging.Format = v
	}
}

// ApplyDefaults applies default values to the settings
func (settings *Settings) ApplyDefaults() {
	if settings.StatusFilter == "" {
		settings.StatusFilter = model.StatusActual.String()
	}
	if settings.PageSize == 0 {
		settings.PageSize = 2
	}
	if settings.RequestWindow == 0 {
		settings.RequestWindow = requests.DefaultWindow
	}
	if settings.Logging.Level == "" {
		settings.Logging.Level = "info"
	}
	if settings.Logging.Format == "" {
		settings.Logging.Format = "text"
	}
	// Initialize empty slices if nil to prevent nil pointer issues
	if settings.Documents == nil {
		settings.Documents = []DocumentConfig{}
	}
	if settings.Queries == nil {
		settings.Queries = []string{}
	}
}

// Validate returns every problem found in the settings.
// Document text is not validated here; the engine rejects bad documents one by one.
func (settings *Settings) Validate() []string {
	var problems []string

	if settings.PageSize <= 0 {
		problems = append(problems, "page_size must be positive")
	}
	if settings.RequestWindow <= 0 {
		problems = append(problems, "request_window must be positive")
	}
	if settings.Workers < 0 {
		problems = append(problems, "workers cannot be negative")
	}
	if _, err := model.ParseDocumentStatus(settings.StatusFilter); err != nil {
		problems = append(problems, "Invalid status_filter '"+settings.StatusFilter+"'")
	}
	switch strings.ToLower(settings.Logging.Format) {
	case "text", "json":
	default:
		problems = append(problems, "Invalid logging format '"+settings.Logging.Format+"' (must be 'text' or 'json')")
	}

	problems = append(problems, checkDuplicateIDs(settings.Documents)...)
	return problems
}

// Status returns the parsed status filter.
func (settings *Settings) Status() (model.DocumentStatus, error) {
	return model.ParseDocumentStatus(settings.StatusFilter)
}

// checkDuplicateIDs reports document ids listed more than once
func checkDuplicateIDs(docs []DocumentConfig) []string {
	var problems []string
	seen := make(map[int]bool)

	for _, doc := range docs {
		if seen[doc.ID] {
			problems = append(problems, fmt.Sprintf("Duplicate document id %d found in documents", doc.ID))
		}
		seen[doc.ID] = true
	}

	return problems
}
