package lib

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config contains the configuration of the pacfuncs tools.
type Config struct {
	Resolver ResolverConfig `yaml:"resolver"`
	Logging  LoggingConfig  `yaml:"logging"`
	Misc     MiscConfig     `yaml:"misc"`
}

// ResolverConfig describes how host names are resolved.
type ResolverConfig struct {
	// Type is one of "os" (the default), "dns", "hosts" and "chain".
	Type        string   `yaml:"type"`
	Nameservers []string `yaml:"nameservers"`
	Net         string   `yaml:"net"`
	HostsFile   string   `yaml:"hosts_file"`
	Chain       []string `yaml:"chain"`
	Timeout     string   `yaml:"timeout"`
	// LocalAddress overrides the detected address of this machine.
	LocalAddress string `yaml:"local_address"`
}

// LoggingConfig contains configuration about logging.
type LoggingConfig struct {
	File   string `yaml:"file"`
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MiscConfig contains configuration that doesn't fall into any of above.
type MiscConfig struct {
	// Timezone is the IANA name of the zone used as local time by the time
	// based predicates. The system zone is used if empty.
	Timezone string `yaml:"timezone"`
}

// ErrNoConfigFile is returned by ParseConfigFile when no file is given and
// none is found in the default locations.
var ErrNoConfigFile = errors.New(
	"no config file found in the default locations")

// ParseConfigFile parses a given configuration file into a Config struct.
// If an empty string is given, the configuration file will be searched
// in some default locations.
func ParseConfigFile(configFile string) (*Config, error) {
	var err error
	if configFile == "" {
		if configFile, err = getDefaultConfigFile(); err != nil {
			return nil, err
		}
	}

	configData, err := ioutil.ReadFile(configFile)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return ParseConfig(configData)
}

// ParseConfig parses YAML configuration data. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return nil, errors.WithMessage(err, "invalid configuration")
	}
	return &config, nil
}

// LoadConfig is like ParseConfigFile, except that a missing default
// configuration file is not an error and results in an empty Config.
func LoadConfig(configFile string) (*Config, error) {
	config, err := ParseConfigFile(configFile)
	if configFile == "" && errors.Cause(err) == ErrNoConfigFile {
		return &Config{}, nil
	}
	return config, err
}

func getDefaultConfigFile() (string, error) {
	candidates := []string{
		"pacfuncs.yml",
		filepath.Join(GetHomePath(), ".pacfuncs.yml"),
	}
	if runtime.GOOS != "windows" {
		candidates = append(candidates,
			"/usr/local/etc/pacfuncs.yml",
			"/usr/local/etc/pacfuncs/config.yml",
			"/usr/etc/pacfuncs.yml",
			"/usr/etc/pacfuncs/config.yml")
	}
	for _, c := range candidates {
		if s, err := os.Stat(c); err == nil && s.Mode().IsRegular() {
			return c, nil
		}
	}
	return "", ErrNoConfigFile
}
