package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "raw_shelter_data.csv", cfg.Input.Path)
	assert.Equal(t, "Daily_Shelter_Report.pdf", cfg.Output.Path)
	assert.Equal(t, []string{"ACTIVE", "ARRIVED"}, cfg.Report.AllowedStatuses)
}

func TestLoadFormats(t *testing.T) {
	files := map[string]string{
		"c.json": `{"input":{"path":"in.xlsx","format":"XLSX","sheet":"Roster"},"report":{"allowed_statuses":["ACTIVE"]}}`,
		"c.yaml": "input:\n  path: in.xlsx\n  format: XLSX\n  sheet: Roster\nreport:\n  allowed_statuses: [ACTIVE]\n",
		"c.toml": "[input]\npath = \"in.xlsx\"\nformat = \"XLSX\"\nsheet = \"Roster\"\n[report]\nallowed_statuses = [\"ACTIVE\"]\n",
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, name, content))
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())
			assert.Equal(t, "in.xlsx", cfg.Input.Path)
			assert.Equal(t, "xlsx", cfg.Input.Format)
			assert.Equal(t, "Roster", cfg.Input.Sheet)
			assert.Equal(t, []string{"ACTIVE"}, cfg.Report.AllowedStatuses)
			assert.Equal(t, "Daily_Shelter_Report.pdf", cfg.Output.Path, "unset keys keep defaults")
		})
	}
}

func TestEnvOverridesFile(t *testing.T) {
	p := writeFile(t, "c.json", `{"input":{"path":"from-file.csv"},"logging":{"level":"debug"}}`)
	t.Setenv("SHELTER_INPUT_PATH", "from-env.csv")
	t.Setenv("SHELTER_REPORT_ALLOWED_STATUSES", "ACTIVE,DEPARTED")
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "from-env.csv", cfg.Input.Path)
	assert.Equal(t, []string{"ACTIVE", "DEPARTED"}, cfg.Report.AllowedStatuses)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "c.ini", "x=1"))
	assert.ErrorIs(t, err, ErrUnsupportedFile)

	_, err = Load(writeFile(t, "c.json", "{"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"input path", func(c *Config) { c.Input.Path = "" }, ErrMissingInputPath},
		{"input format", func(c *Config) { c.Input.Format = "xml" }, ErrInvalidInputFormat},
		{"output path", func(c *Config) { c.Output.Path = "" }, ErrMissingOutputPath},
		{"output format", func(c *Config) { c.Output.Format = "docx" }, ErrInvalidOutput},
		{"export format", func(c *Config) { c.Export.Format = "xlsx" }, ErrInvalidExport},
		{"no statuses", func(c *Config) { c.Report.AllowedStatuses = nil }, ErrNoAllowedStatuses},
		{"blank status", func(c *Config) { c.Report.AllowedStatuses = []string{""} }, ErrNoAllowedStatuses},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, ErrInvalidLogLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}

	cfg := Default()
	cfg.Logging.Level = "WARNING"
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "warn", cfg.Logging.Level)
}
