package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/search-server/model"
)

const sampleConfig = `
stop_words: "and in with"
documents:
  - id: 1
    text: "fluffy cat fluffy tail"
    ratings: [7, 2, 7]
  - id: 3
    text: "well-groomed starling Evgeniy"
    status: banned
    ratings: [9]
queries:
  - "fluffy well-groomed cat"
status_filter: BANNED
page_size: 3
workers: 2
logging:
  level: debug
  format: json
metrics:
  enabled: true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	settings, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "and in with", settings.StopWords)
	require.Len(t, settings.Documents, 2)
	assert.Equal(t, model.StatusActual, settings.Documents[0].Status, "status defaults to ACTUAL")
	assert.Equal(t, model.StatusBanned, settings.Documents[1].Status)
	assert.Equal(t, []int{7, 2, 7}, settings.Documents[0].Ratings)
	assert.Equal(t, []string{"fluffy well-groomed cat"}, settings.Queries)
	assert.Equal(t, 3, settings.PageSize)
	assert.Equal(t, 1440, settings.RequestWindow)
	assert.Equal(t, 2, settings.Workers)
	assert.Equal(t, "debug", settings.Logging.Level)
	assert.True(t, settings.Metrics.Enabled)
	assert.Empty(t, settings.Validate())

	status, err := settings.Status()
	require.NoError(t, err)
	assert.Equal(t, model.StatusBanned, status)
}

func TestLoad_NoFile(t *testing.T) {
	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ACTUAL", settings.StatusFilter)
	assert.Equal(t, 2, settings.PageSize)
	assert.Equal(t, "text", settings.Logging.Format)
	assert.NotNil(t, settings.Documents)
	assert.NotNil(t, settings.Queries)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "documents:\n  - id: 1\n    status: deleted\n"))
	assert.Error(t, err, "unknown status is rejected while decoding")

	_, err = Load(writeConfig(t, "page_size: [1, 2]"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SEARCH_STOP_WORDS", "a the")
	t.Setenv("SEARCH_PAGE_SIZE", "4")
	t.Setenv("SEARCH_WORKERS", "not-a-number")
	t.Setenv("LOG_FORMAT", "json")

	settings, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "a the", settings.StopWords)
	assert.Equal(t, 4, settings.PageSize)
	assert.Equal(t, 2, settings.Workers, "unparsable override is ignored")
	assert.Equal(t, "json", settings.Logging.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		problems int
	}{
		{
			name:     "defaults are valid",
			settings: Settings{},
			problems: 0,
		},
		{
			name:     "bad status filter",
			settings: Settings{StatusFilter: "DELETED"},
			problems: 1,
		},
		{
			name:     "negative workers and bad format",
			settings: Settings{Workers: -1, Logging: LoggingConfig{Format: "xml"}},
			problems: 2,
		},
		{
			name: "duplicate document ids",
			settings: Settings{Documents: []DocumentConfig{
				{ID: 1, Text: "a"}, {ID: 2, Text: "b"}, {ID: 1, Text: "c"},
			}},
			problems: 1,
		},
		{
			name:     "negative page size",
			settings: Settings{PageSize: -2, RequestWindow: -1},
			problems: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := tt.settings
			settings.ApplyDefaults()
			problems := settings.Validate()
			assert.Len(t, problems, tt.problems, "problems: %v", problems)
		})
	}
}
