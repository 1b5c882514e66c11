package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrSDKPathUnset is returned when the SDK environment variable is not set
	ErrSDKPathUnset = errors.New("sdk path environment variable not set")
	// ErrSDKPathMissing is returned when the SDK path does not exist
	ErrSDKPathMissing = errors.New("sdk path does not exist")
	// ErrOutputDirMissing is returned when the output directory does not exist
	ErrOutputDirMissing = errors.New("output directory does not exist")
	// ErrBinaryMissing is returned when the test binary is not in the output directory
	ErrBinaryMissing = errors.New("test binary not found")
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string `yaml:"project_path"`
	OutputDir   string `yaml:"output_dir"`
	ReportDir   string `yaml:"report_dir"`

	// Test binary and its environment
	BinaryName     string            `yaml:"binary"`
	SDKEnvVar      string            `yaml:"sdk_env"`
	EnvSetupScript string            `yaml:"env_setup_script"`
	Env            map[string]string `yaml:"env"`

	// Execution settings
	Jobs             int           `yaml:"jobs"`
	SuiteTimeout     time.Duration `yaml:"suite_timeout"`
	DiscoveryTimeout time.Duration `yaml:"discovery_timeout"`

	// Windows selects cmd.exe instead of bash for child invocations
	Windows bool `yaml:"-"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// Flags holds command-line flags
type Flags struct {
	Jobs       int
	Timeout    time.Duration
	TimeoutSet bool
	Filter     string
	NoProgress bool
	Plain      bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:      DefaultProjectPath,
		OutputDir:        DefaultOutputDir,
		BinaryName:       DefaultBinaryName,
		SDKEnvVar:        DefaultSDKEnvVar,
		EnvSetupScript:   DefaultEnvSetupScript,
		SuiteTimeout:     DefaultSuiteTimeout,
		DiscoveryTimeout: DefaultDiscoveryTimeout,
		Windows:          runtime.GOOS == "windows",
	}
	if cfg.Windows {
		cfg.BinaryName += ".exe"
		cfg.EnvSetupScript = "envsetup.bat"
	}
	cfg.Env = make(map[string]string, len(DefaultChildEnv))
	for k, v := range DefaultChildEnv {
		cfg.Env[k] = v
	}
	return cfg
}

// Load creates a config with defaults and overlays the YAML file at path.
// An empty path reads DefaultConfigFile if it exists.
func Load(path string) (*Config, error) {
	cfg := New()

	required := path != ""
	if !required {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Env == nil {
		cfg.Env = make(map[string]string)
	}
	for k, v := range DefaultChildEnv {
		if _, ok := cfg.Env[k]; !ok {
			cfg.Env[k] = v
		}
	}

	return cfg, nil
}

// ApplyFlags copies command flags into the config, overriding file values when set.
// An explicit zero timeout disables the per-suite deadline.
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Jobs > 0 {
		c.Jobs = flags.Jobs
	}
	if flags.TimeoutSet {
		c.SuiteTimeout = flags.Timeout
	}
}

// GetOutputDir returns the absolute directory holding the test binary
func (c *Config) GetOutputDir() string {
	p := c.OutputDir
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.ProjectPath, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetReportDir returns the directory the JSON reports are written to, the output directory by default
func (c *Config) GetReportDir() string {
	if c.ReportDir == "" {
		return c.GetOutputDir()
	}
	if filepath.IsAbs(c.ReportDir) {
		return c.ReportDir
	}
	return filepath.Join(c.GetOutputDir(), c.ReportDir)
}

// GetBinaryPath returns the path to the test binary
func (c *Config) GetBinaryPath() string {
	return filepath.Join(c.GetOutputDir(), c.BinaryName)
}

// GetSDKPath resolves the SDK path from the configured environment variable
func (c *Config) GetSDKPath() (string, error) {
	value, ok := os.LookupEnv(c.SDKEnvVar)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s", ErrSDKPathUnset, c.SDKEnvVar)
	}
	if abs, err := filepath.Abs(value); err == nil {
		value = abs
	}
	return value, nil
}

// GetEnvSetupPath returns the environment setup script inside the SDK
func (c *Config) GetEnvSetupPath() (string, error) {
	sdk, err := c.GetSDKPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(sdk, c.EnvSetupScript), nil
}

// JobCount returns the parallel lane size for the given number of suites
func (c *Config) JobCount(totalSuites int) int {
	if c.Jobs > 0 {
		return c.Jobs
	}
	jobs := min(DefaultMaxJobs, totalSuites)
	if jobs < 1 {
		jobs = 1
	}
	return jobs
}

// Validate checks the preconditions of a test run
func (c *Config) Validate() error {
	sdk, err := c.GetSDKPath()
	if err != nil {
		return err
	}
	if info, err := os.Stat(sdk); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSDKPathMissing, sdk)
	}

	out := c.GetOutputDir()
	if info, err := os.Stat(out); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputDirMissing, out)
	}

	if _, err := os.Stat(c.GetBinaryPath()); err != nil {
		return fmt.Errorf("%w: %s", ErrBinaryMissing, c.GetBinaryPath())
	}
	return nil
}
