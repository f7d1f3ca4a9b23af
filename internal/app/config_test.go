package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "public-holidays-hk/en.json", cfg.SourceFile)
	assert.Equal(t, "public-holidays-hk/holidays.csv", cfg.OutputFile)
}

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Config
	}{
		{
			name: "all keys",
			yaml: "source_file: in.json\noutput_file: out.csv\ndatabase_file: out.db\nverbose: true\n",
			want: Config{SourceFile: "in.json", OutputFile: "out.csv", DatabaseFile: "out.db", Verbose: true},
		},
		{
			name: "partial",
			yaml: "output_file: 2025/holidays.csv\n",
			want: Config{SourceFile: DefaultSourceFile, OutputFile: "2025/holidays.csv", DatabaseFile: DefaultDatabaseFile},
		},
		{
			name: "blank keys",
			yaml: "source_file: \"\"\noutput_file:\n",
			want: DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))

			cfg, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source_file: [unterminated\n"), 0644))
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config")
}
