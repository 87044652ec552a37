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

// Package metrics exposes a Database's live state as Prometheus gauges.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/AlexandreBarral/rmf-core/schedule"
)

func namespace(s string) string {
	return fmt.Sprintf("rmf_schedule_%s", s)
}

type scheduleGauge struct {
	desc    *prometheus.Desc
	eval    func(*Collector) float64
	valType prometheus.ValueType
}

// Collector is a prometheus.Collector over a Database. Unlike a metric that
// caches a background-polled snapshot, every Collect call reads db directly:
// db's own RWMutex already makes that cheap and consistent, so there is
// nothing worth caching.
type Collector struct {
	db     *schedule.Database
	gauges []scheduleGauge
}

// NewCollector returns a Collector over db.
func NewCollector(db *schedule.Database) *Collector {
	c := &Collector{db: db}
	c.gauges = []scheduleGauge{
		{
			desc: prometheus.NewDesc(
				namespace("latest_version"),
				"Highest version ever assigned by the database.",
				nil, nil,
			),
			eval:    func(c *Collector) float64 { return float64(c.db.LatestVersion()) },
			valType: prometheus.GaugeValue,
		},
		{
			desc: prometheus.NewDesc(
				namespace("active_lineages"),
				"Number of lineages with a current, non-erased head.",
				nil, nil,
			),
			eval:    func(c *Collector) float64 { return float64(c.db.ActiveLineages()) },
			valType: prometheus.GaugeValue,
		},
	}
	return c
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, g := range c.gauges {
		ch <- g.desc
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, g := range c.gauges {
		ch <- prometheus.MustNewConstMetric(g.desc, g.valType, g.eval(c))
	}
}
