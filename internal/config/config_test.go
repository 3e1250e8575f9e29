package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfig_Defaults(t *testing.T) {
	cfg := GetConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, FORMAT_TEXT, cfg.LogFormat)
	assert.Equal(t, FORMAT_TEXT, cfg.OutputFormat)
	assert.Equal(t, "prim", cfg.MstMethod)
	assert.Empty(t, cfg.InputFile)
	assert.Empty(t, cfg.MetricsAddr)
	assert.False(t, cfg.ValidateTree)
	assert.False(t, cfg.StrictInput)
}

func TestGetConfig_Environment(t *testing.T) {
	t.Setenv("MSTGEN_OUTPUT_FORMAT", "JSON")
	t.Setenv("MSTGEN_MST_METHOD", "kruskal")
	t.Setenv("MSTGEN_VALIDATE_TREE", "true")

	cfg := GetConfig()

	assert.Equal(t, FORMAT_JSON, cfg.OutputFormat)
	assert.Equal(t, "kruskal", cfg.MstMethod)
	assert.True(t, cfg.ValidateTree)
}

func TestLoad_OverridesWinOverEnvironment(t *testing.T) {
	t.Setenv("MSTGEN_LOG_LEVEL", "warn")

	cfg := Load(map[string]interface{}{
		LOG_LEVEL:    "debug",
		STRICT_INPUT: true,
		INPUT_FILE:   "points.txt",
	})

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.StrictInput)
	assert.Equal(t, "points.txt", cfg.InputFile)
}

func TestConfig_String(t *testing.T) {
	cfg := Config{LogLevel: "info", OutputFormat: "json", ValidateTree: true}

	s := cfg.String()
	assert.Contains(t, s, "Log_Level: info\n")
	assert.Contains(t, s, "Output_Format: json\n")
	assert.Contains(t, s, "Validate_Tree: true\n")
}
