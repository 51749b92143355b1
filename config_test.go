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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("config = %+v; want defaults", *config)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "sort:\n  algorithm: merge\nbench:\n  trials: 5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned %v", err)
	}
	if config.Sort.Algorithm != "merge" {
		t.Errorf("Sort.Algorithm = %q; want merge", config.Sort.Algorithm)
	}
	if config.Bench.Trials != 5 {
		t.Errorf("Bench.Trials = %d; want 5", config.Bench.Trials)
	}
	// Keys missing from the file keep their defaults.
	if config.Bench.Size != defaultConfig.Bench.Size || config.Repl.Prompt != defaultConfig.Repl.Prompt {
		t.Errorf("defaults not preserved: %+v", *config)
	}
}

func TestLoadConfigInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("sort: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err == nil {
		t.Errorf("LoadConfig should report a parse error")
	}
	if *config != defaultConfig {
		t.Errorf("config = %+v; want defaults on parse error", *config)
	}
}

func TestDisplaySettingsCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	var out bytes.Buffer

	if err := displaySettings(&out, path); err != nil {
		t.Fatalf("displaySettings returned %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file not created: %v", err)
	}
	if !strings.Contains(out.String(), "newly created") || !strings.Contains(out.String(), "algorithm: quick") {
		t.Errorf("unexpected settings output:\n%s", out.String())
	}

	out.Reset()
	if err := displaySettings(&out, path); err != nil {
		t.Fatalf("displaySettings returned %v", err)
	}
	if strings.Contains(out.String(), "newly created") {
		t.Errorf("existing file reported as newly created")
	}
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer

	logger := newLogger("info", false, &out)
	if logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v; want info", logger.GetLevel())
	}

	logger = newLogger("info", true, &out)
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("verbose level = %v; want debug", logger.GetLevel())
	}

	logger = newLogger("chatty", false, &out)
	if logger.GetLevel() != logrus.WarnLevel {
		t.Errorf("fallback level = %v; want warn", logger.GetLevel())
	}
	if !strings.Contains(out.String(), "unknown log level") {
		t.Errorf("unknown level not reported: %q", out.String())
	}
}
