/*
 * Copyright 2024 The rmf-core Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config holds the YAML-loaded server configuration.
package config

import (
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config holds everything cmd/rmf-schedule-server needs to start.
type Config struct {
	// ListenAddr is the address the HTTP pull API binds to.
	ListenAddr string `yaml:"ListenAddr"`
	// LogLevel is parsed with utils/log.ParseLevel; an empty value keeps the
	// logger's default.
	LogLevel string `yaml:"LogLevel"`
	// CullPeriodSeconds, when positive, runs Cull on that period against a
	// horizon of CullHorizonSeconds before now. Zero disables automatic
	// culling.
	CullPeriodSeconds int `yaml:"CullPeriodSeconds"`
	// CullHorizonSeconds is how far before "now" a lineage's head must
	// finish to be culled.
	CullHorizonSeconds int `yaml:"CullHorizonSeconds"`
}

// CullPeriod is the convenience time.Duration view of CullPeriodSeconds.
func (c Config) CullPeriod() time.Duration {
	return time.Duration(c.CullPeriodSeconds) * time.Second
}

// CullHorizon is the convenience time.Duration view of CullHorizonSeconds.
func (c Config) CullHorizon() time.Duration {
	return time.Duration(c.CullHorizonSeconds) * time.Second
}

// Default returns the configuration a fresh install starts from.
func Default() Config {
	return Config{
		ListenAddr:         ":8080",
		LogLevel:           "info",
		CullPeriodSeconds:  0,
		CullHorizonSeconds: 0,
	}
}

// Load reads and parses the YAML config file at path, starting from Default
// so an incomplete file still produces a usable Config.
func Load(path string) (Config, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config file")
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config file")
	}
	return cfg, nil
}
