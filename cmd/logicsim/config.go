// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"

	"github.com/markkurossi/tabulate"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the content of the optional configuration file.
type Config struct {
	LogLevel      string `yaml:"log_level"`
	TableStyle    string `yaml:"table_style"`
	EagerSimulate bool   `yaml:"eager_simulate"`
}

func defaultConfig() Config {
	return Config{LogLevel: "warn", TableStyle: "unicode-light"}
}

// loadConfig reads the config file at path on top of the defaults. Unknown
// fields are an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// an empty file decodes to io.EOF and leaves the defaults.
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if _, err := tableStyle(cfg.TableStyle); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

var styles = map[string]tabulate.Style{
	"plain":         tabulate.Plain,
	"ascii":         tabulate.ASCII,
	"unicode":       tabulate.Unicode,
	"unicode-light": tabulate.UnicodeLight,
	"github":        tabulate.Github,
}

func tableStyle(name string) (tabulate.Style, error) {
	s, ok := styles[name]
	if !ok {
		return s, errors.Errorf("unknown table style %q", name)
	}
	return s, nil
}
