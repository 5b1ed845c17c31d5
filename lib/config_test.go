package lib

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
resolver:
  type: chain
  chain: [hosts, dns]
  nameservers: ["127.0.0.1:5353", "10.0.0.1"]
  net: tcp
  hosts_file: /tmp/hosts
  timeout: 2s
  local_address: 192.168.1.10
logging:
  level: debug
  format: console
misc:
  timezone: Asia/Shanghai
`

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(testConfig))
	require.NoError(t, err)
	assert.Equal(t, ResolverConfig{
		Type:         "chain",
		Chain:        []string{"hosts", "dns"},
		Nameservers:  []string{"127.0.0.1:5353", "10.0.0.1"},
		Net:          "tcp",
		HostsFile:    "/tmp/hosts",
		Timeout:      "2s",
		LocalAddress: "192.168.1.10",
	}, config.Resolver)
	assert.Equal(t, LoggingConfig{Level: "debug", Format: "console"},
		config.Logging)
	assert.Equal(t, "Asia/Shanghai", config.Misc.Timezone)

	_, err = ParseConfig([]byte("resolver:\n  typo: os\n"))
	assert.Error(t, err)
}

func TestParseConfigFile(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "pacfuncs_TestParseConfigFile")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(tmpDir) }()

	file := filepath.Join(tmpDir, "pacfuncs.yml")
	require.NoError(t, ioutil.WriteFile(file, []byte(testConfig), 0600))
	config, err := ParseConfigFile(file)
	require.NoError(t, err)
	assert.Equal(t, "chain", config.Resolver.Type)

	_, err = ParseConfigFile(filepath.Join(tmpDir, "missing.yml"))
	assert.Error(t, err)
	_, err = LoadConfig(filepath.Join(tmpDir, "missing.yml"))
	assert.Error(t, err)
}

func TestLoadConfigDefault(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "pacfuncs_TestLoadConfigDefault")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(tmpDir) }()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(wd) }()
	home := os.Getenv("HOME")
	require.NoError(t, os.Setenv("HOME", tmpDir))
	defer func() { _ = os.Setenv("HOME", home) }()

	if _, err = getDefaultConfigFile(); err == nil {
		t.Skip("a system wide configuration file exists")
	}
	_, err = ParseConfigFile("")
	assert.Equal(t, ErrNoConfigFile, errors.Cause(err))
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, config)

	require.NoError(t, ioutil.WriteFile(
		filepath.Join(tmpDir, ".pacfuncs.yml"), []byte(testConfig), 0600))
	config, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "chain", config.Resolver.Type)
}
