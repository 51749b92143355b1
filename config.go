// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avlsort.yaml"

type SortConfig struct {
	Algorithm string `yaml:"algorithm"`
}

type BenchConfig struct {
	Size     int   `yaml:"size"`
	Trials   int   `yaml:"trials"`
	Seed     int64 `yaml:"seed"` // 0 picks a time based seed
	Progress bool  `yaml:"progress"`
}

type ReplConfig struct {
	Prompt       string `yaml:"prompt"`
	CacheMinutes int    `yaml:"cache_minutes"`
	BloomSize    uint   `yaml:"bloom_size"`
	BloomHashes  uint   `yaml:"bloom_hashes"`
}

type Config struct {
	Sort     SortConfig  `yaml:"sort"`
	Bench    BenchConfig `yaml:"bench"`
	Repl     ReplConfig  `yaml:"repl"`
	LogLevel string      `yaml:"log_level"`
}

var defaultConfig = Config{
	Sort: SortConfig{
		Algorithm: "quick",
	},
	Bench: BenchConfig{
		Size:     1000,
		Trials:   20,
		Progress: true,
	},
	Repl: ReplConfig{
		Prompt:       "avl> ",
		CacheMinutes: 30,
		BloomSize:    4096,
		BloomHashes:  4,
	},
	LogLevel: "warn",
}

// LoadConfig reads the YAML config at path, or ~/.avlsort.yaml when path is
// empty. A missing file yields the defaults. Keys absent from the file keep
// their default values. A file that cannot be read or parsed yields the
// defaults together with the error so callers can warn about it.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig

	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return &config, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &config, nil
	}
	if err != nil {
		return &config, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig
		return &fallback, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// displaySettings prints the effective settings, creating the default
// config file first when none exists.
func displaySettings(w io.Writer, path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	styles := GetStyles()

	created := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, styles.Title.Render("avlsort configuration"))
	if created {
		fmt.Fprintf(w, "Config file: %s %s\n\n", path, styles.Muted.Render("(newly created)"))
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", path)
	}

	out, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = w.Write(out)
	return err
}
