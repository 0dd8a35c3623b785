// Package iofs prepares the file system locations GNanno depends on:
// config, cache and log directories, and the default config file.
package iofs

import (
	"fmt"
	"os"

	"github.com/gnames/gnanno/pkg/config"
	"gopkg.in/yaml.v3"
)

const configHeader = `# GNanno configuration file.
#
# Settings here can be overridden with GNANNO_* environment variables
# and CLI flags. Delete this file to regenerate it with defaults.

`

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes a documented config.yaml with default values
// to the config directory. Does not overwrite an existing file.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	body, err := yaml.Marshal(config.New())
	if err != nil {
		return CopyFileError(configPath, err)
	}

	content := fmt.Sprintf("%s%s", configHeader, body)
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}
