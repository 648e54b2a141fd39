package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/aacboard/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend   = "backend"
	cfgKeyDataDir   = "data_dir"
	cfgKeyBoardFile = "board_file"

	defaultBackend = types.BackendText
)

// configFile is the structure written to config.yaml by init.
type configFile struct {
	Backend   string `yaml:"backend"`
	DataDir   string `yaml:"data_dir,omitempty"`
	BoardFile string `yaml:"board_file,omitempty"`
}

// loadConfig reads config.yaml from configDir using Viper. A missing
// directory or file is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyBoardFile, types.DefaultBoardFile)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing creates config.yaml with the given values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(path string, cfg configFile) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
