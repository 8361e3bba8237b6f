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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/joeshaw/envdecode"
	"github.com/mattn/go-isatty"
	"github.com/pelletier/go-toml/v2"

	"cuelang.org/yamlcore/encoding/yaml"
)

// config holds the settings shared by all commands. Later sources
// override earlier ones: defaults, the TOML file, the environment, and
// finally command-line flags.
type config struct {
	Parser string `toml:"parser" env:"YAMLCORE_PARSER"`
	Color  string `toml:"color" env:"YAMLCORE_COLOR"`
	Log    string `toml:"log" env:"YAMLCORE_LOG"`
}

const configEnv = "YAMLCORE_CONFIG"

func defaultConfig() config {
	return config{
		Parser: yaml.YAMLv3.String(),
		Color:  "auto",
		Log:    "warn",
	}
}

// loadConfig reads the config file at path, or the one named by
// $YAMLCORE_CONFIG when path is empty, then applies the environment.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		path = os.Getenv(configEnv)
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		if err := decodeConfig(f, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, err
	}
	return cfg, nil
}

func decodeConfig(r io.Reader, cfg *config) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func (cfg config) parser() (yaml.Parser, error) {
	return yaml.ParseParser(cfg.Parser)
}

func (cfg config) logLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.Log)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", cfg.Log)
	}
	return l, nil
}

func (cfg config) validate() error {
	if _, err := cfg.parser(); err != nil {
		return err
	}
	if _, err := cfg.logLevel(); err != nil {
		return err
	}
	switch cfg.Color {
	case "auto", "always", "never":
		return nil
	}
	return fmt.Errorf("invalid color mode %q: must be auto, always or never", cfg.Color)
}

// useColor reports whether output written to w should be colored.
func (cfg config) useColor(w io.Writer) bool {
	switch cfg.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// errorPrefix returns the prefix for error messages on w.
func (cfg config) errorPrefix(w io.Writer) string {
	const prefix = "yamlcore:"
	if !cfg.useColor(w) {
		return prefix
	}
	c := color.New(color.FgRed)
	c.EnableColor()
	return c.Sprint(prefix)
}
