package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "zemdomu"

	// ConfigEnvVar names the environment variable pointing at a config file
	ConfigEnvVar = "ZEMDOMU_CONFIG"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "ZEMDOMU"
)

// Exit codes for the check command
const (
	ExitOK         = 0
	ExitViolations = 1
	ExitError      = 2
)
