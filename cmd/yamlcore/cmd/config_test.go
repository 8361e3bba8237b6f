// Copyright 2026 CUE Authors
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

package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func clearEnv(t *testing.T) {
	for _, name := range []string{configEnv, "YAMLCORE_PARSER", "YAMLCORE_COLOR", "YAMLCORE_LOG"} {
		t.Setenv(name, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := loadConfig("")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cfg, defaultConfig()))
	qt.Assert(t, qt.IsNil(cfg.validate()))
}

func TestLoadConfigPrecedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "yamlcore.toml")
	err := os.WriteFile(path, []byte("parser = \"goccy\"\ncolor = \"never\"\n"), 0o666)
	qt.Assert(t, qt.IsNil(err))

	cfg, err := loadConfig(path)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cfg, config{Parser: "goccy", Color: "never", Log: "warn"}))

	t.Setenv("YAMLCORE_COLOR", "always")
	t.Setenv(configEnv, path)
	cfg, err = loadConfig("")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cfg, config{Parser: "goccy", Color: "always", Log: "warn"}))
}

func TestDecodeConfigUnknownField(t *testing.T) {
	cfg := defaultConfig()
	err := decodeConfig(strings.NewReader("parser = \"goccy\"\nlevel = 3\n"), &cfg)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		cfg     config
		wantErr string
	}{
		{config{Parser: "goccy", Color: "auto", Log: "debug"}, ""},
		{config{Parser: "yamlv3", Color: "never", Log: "ERROR"}, ""},
		{config{Parser: "libyaml", Color: "auto", Log: "warn"}, `unknown parser "libyaml"`},
		{config{Parser: "yamlv3", Color: "auto", Log: "loud"}, `invalid log level "loud"`},
		{config{Parser: "yamlv3", Color: "rainbow", Log: "warn"}, `invalid color mode "rainbow": .*`},
	}
	for _, test := range tests {
		err := test.cfg.validate()
		if test.wantErr == "" {
			qt.Assert(t, qt.IsNil(err), qt.Commentf("%+v", test.cfg))
		} else {
			qt.Assert(t, qt.ErrorMatches(err, test.wantErr))
		}
	}
}

func TestErrorPrefix(t *testing.T) {
	var buf bytes.Buffer
	qt.Assert(t, qt.Equals(config{Color: "auto"}.errorPrefix(&buf), "yamlcore:"))
	qt.Assert(t, qt.Equals(config{Color: "never"}.errorPrefix(&buf), "yamlcore:"))
	qt.Assert(t, qt.StringContains(config{Color: "always"}.errorPrefix(&buf), "\x1b[31m"))
}

func TestNewLoggerOmitsTime(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, slog.LevelDebug).Debug("hello", "n", 1)
	qt.Assert(t, qt.Equals(buf.String(), "level=DEBUG msg=hello n=1\n"))
}
