package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	ENV_PREFIX = "MSTGEN"

	LOG_LEVEL     = "Log_Level"
	LOG_FORMAT    = "Log_Format"
	OUTPUT_FORMAT = "Output_Format"
	INPUT_FILE    = "Input_File"
	MST_METHOD    = "Mst_Method"
	VALIDATE_TREE = "Validate_Tree"
	STRICT_INPUT  = "Strict_Input"
	METRICS_ADDR  = "Metrics_Addr"

	FORMAT_TEXT = "text"
	FORMAT_JSON = "json"
)

type Config struct {
	LogLevel     string
	LogFormat    string
	OutputFormat string
	InputFile    string
	MstMethod    string
	ValidateTree bool
	StrictInput  bool
	MetricsAddr  string
}

func (c Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", LOG_LEVEL, c.LogLevel)
	fmt.Fprintf(&b, "%s: %s\n", LOG_FORMAT, c.LogFormat)
	fmt.Fprintf(&b, "%s: %s\n", OUTPUT_FORMAT, c.OutputFormat)
	fmt.Fprintf(&b, "%s: %s\n", INPUT_FILE, c.InputFile)
	fmt.Fprintf(&b, "%s: %s\n", MST_METHOD, c.MstMethod)
	fmt.Fprintf(&b, "%s: %t\n", VALIDATE_TREE, c.ValidateTree)
	fmt.Fprintf(&b, "%s: %t\n", STRICT_INPUT, c.StrictInput)
	fmt.Fprintf(&b, "%s: %s", METRICS_ADDR, c.MetricsAddr)
	return b.String()
}

// GetConfig reads defaults and MSTGEN_* environment variables.
func GetConfig() *Config {
	return Load(nil)
}

// Load is GetConfig with explicit overrides, keyed by the constants above.
// Overrides win over the environment; command line flags are passed this way.
func Load(overrides map[string]interface{}) *Config {
	options := viper.New()

	options.SetDefault(LOG_LEVEL, "info")
	options.SetDefault(LOG_FORMAT, FORMAT_TEXT)
	options.SetDefault(OUTPUT_FORMAT, FORMAT_TEXT)
	options.SetDefault(INPUT_FILE, "")
	options.SetDefault(MST_METHOD, "prim")
	options.SetDefault(VALIDATE_TREE, false)
	options.SetDefault(STRICT_INPUT, false)
	options.SetDefault(METRICS_ADDR, "")
	options.SetEnvPrefix(ENV_PREFIX)
	options.AutomaticEnv()

	for key, value := range overrides {
		options.Set(key, value)
	}

	return &Config{
		LogLevel:     strings.ToLower(options.GetString(LOG_LEVEL)),
		LogFormat:    strings.ToLower(options.GetString(LOG_FORMAT)),
		OutputFormat: strings.ToLower(options.GetString(OUTPUT_FORMAT)),
		InputFile:    options.GetString(INPUT_FILE),
		MstMethod:    strings.ToLower(options.GetString(MST_METHOD)),
		ValidateTree: options.GetBool(VALIDATE_TREE),
		StrictInput:  options.GetBool(STRICT_INPUT),
		MetricsAddr:  options.GetString(METRICS_ADDR),
	}
}
