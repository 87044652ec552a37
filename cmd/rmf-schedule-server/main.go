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

package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AlexandreBarral/rmf-core/config"
	"github.com/AlexandreBarral/rmf-core/metrics"
	"github.com/AlexandreBarral/rmf-core/schedule"
	"github.com/AlexandreBarral/rmf-core/server"
	"github.com/AlexandreBarral/rmf-core/spacetime"
	"github.com/AlexandreBarral/rmf-core/utils/log"
)

const name = `rmf-schedule-server`
const desc = `HTTP pull surface over an in-memory shared trajectory schedule database`

var (
	configFile  string
	logLevel    string
	showVersion bool
)

var version = "unknown"

func init() {
	flag.StringVar(&configFile, "config", "", "Config file path (optional; a Default() config is used if unset)")
	flag.StringVar(&logLevel, "log-level", "", "Override the config file's log level")
	flag.BoolVar(&showVersion, "version", false, "Show version information and exit")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "\n%s\n\n", desc)
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [arguments]\n", name)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("%v %v\n", name, version)
		os.Exit(0)
	}

	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			log.WithError(err).WithField("config", configFile).Fatal("load config failed")
		}
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err != nil {
		log.WithError(err).WithField("log_level", cfg.LogLevel).Warning("invalid log level, keeping default")
	} else {
		log.SetLevel(lvl)
	}

	log.WithField("config", spew.Sdump(cfg)).Debug("rmf-schedule-server: starting")

	db := schedule.NewDatabase(spacetime.BoundingBoxDetector{})

	registry := prometheus.NewRegistry()
	if err := registry.Register(metrics.NewCollector(db)); err != nil {
		log.WithError(err).Fatal("register metrics collector failed")
	}

	httpServer := server.New(cfg.ListenAddr, db)

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(":9090", metricsMux); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("metrics server failed")
		}
	}()

	stopCull := make(chan struct{})
	if cfg.CullPeriod() > 0 {
		go runCullLoop(db, cfg.CullPeriod(), cfg.CullHorizon(), stopCull)
	}

	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("rmf-schedule-server: listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("api server failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	close(stopCull)
	if err := server.Shutdown(httpServer); err != nil {
		log.WithError(err).Error("shutdown failed")
	}
}

func runCullLoop(db *schedule.Database, period, horizon time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			v := db.Cull(time.Now().Add(-horizon))
			log.WithField("version", v).Debug("rmf-schedule-server: culled")
		}
	}
}
