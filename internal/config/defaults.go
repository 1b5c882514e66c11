package config

import "time"

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputDir is where the build leaves the test binary, relative to the project path
	DefaultOutputDir = "output/bin"
	// DefaultBinaryName is the default test binary name
	DefaultBinaryName = "gtest_LSPServer_test"
	// DefaultSDKEnvVar names the environment variable pointing at the SDK
	DefaultSDKEnvVar = "CANGJIE_HOME"
	// DefaultEnvSetupScript is the script, relative to the SDK path, sourced before the binary runs
	DefaultEnvSetupScript = "envsetup.sh"
	// DefaultConfigFile is read from the working directory when present
	DefaultConfigFile = "gtp.yaml"
	// DefaultMaxJobs caps the parallel lane when no job count is given
	DefaultMaxJobs = 32
	// DefaultSuiteTimeout bounds a single suite run, 0 disables it
	DefaultSuiteTimeout = 30 * time.Minute
	// DefaultDiscoveryTimeout bounds the list-mode invocation
	DefaultDiscoveryTimeout = 2 * time.Minute
)

// DefaultChildEnv is added to the environment of every test binary invocation
var DefaultChildEnv = map[string]string{
	"ZERO_AR_DATE": "1",
	"LANG":         "C.UTF-8",
}
