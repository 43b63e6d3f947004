// Copyright 2021 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

type Config struct {
	Logger  log.Logger `yaml:"-" json:"-"`
	Logging Logging

	Http  HTTP
	Admin Admin

	Conversion Conversion
}

type Logging struct {
	Format string
}

type HTTP struct {
	BindAddress string
}

type Admin struct {
	BindAddress string
}

// Conversion bounds what the HTTP upload surface accepts.
type Conversion struct {
	// MaxFileBytes caps how much of an uploaded payment listing is
	// read. Listings past this size are truncated, which surfaces as
	// row errors rather than a hung server.
	MaxFileBytes int64
}

func Empty() *Config {
	return &Config{
		Logger: log.NewNopLogger(),
		Http: HTTP{
			BindAddress: ":8585",
		},
		Admin: Admin{
			BindAddress: ":9595",
		},
		Conversion: Conversion{
			MaxFileBytes: 10 * 1024 * 1024,
		},
	}
}

func FromFile(path string) (*Config, error) {
	cfg := Empty()
	if path != "" {
		bs, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %v", path, err)
		}
		return Read(bs)
	}
	cfg = setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Read(data []byte) (*Config, error) {
	vip := viper.New()
	vip.SetConfigType("yaml")
	if err := vip.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("problem reading config: %v", err)
	}

	cfg := Empty()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("problem unmarshaling config: %v", err)
	}

	cfg = setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyLogFormat overrides the configured log format, used by the
// -log.format command line flag.
func (cfg *Config) ApplyLogFormat(format string) {
	if format == "" {
		return
	}
	cfg.Logging.Format = format
	setupLogger(cfg)
}

func setupLogger(cfg *Config) *Config {
	if strings.EqualFold(cfg.Logging.Format, "json") {
		cfg.Logger = log.NewJSONLogger(os.Stderr)
	} else {
		cfg.Logger = log.NewLogfmtLogger(os.Stderr)
	}

	cfg.Logger = log.With(cfg.Logger, "ts", log.DefaultTimestampUTC)
	cfg.Logger = log.With(cfg.Logger, "caller", log.DefaultCaller)

	return cfg
}

// Validate checks a Config's fields and confirms their values conform
// to expectations.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.New("missing Config")
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "", "plain", "json":
		// fine
	default:
		return fmt.Errorf("logging: unknown format %q", cfg.Logging.Format)
	}

	if cfg.Http.BindAddress == "" {
		return errors.New("http: missing bind address")
	}
	if cfg.Admin.BindAddress == "" {
		return errors.New("admin: missing bind address")
	}
	if cfg.Conversion.MaxFileBytes <= 0 {
		return errors.New("conversion: max file bytes must be positive")
	}
	return nil
}
