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

package server

import (
	"expvar"
	"net/http"
	"sync"
	"time"

	mw "github.com/zserge/metric"
)

var expvarLock sync.Mutex

// recordRequestCost publishes a rolling latency histogram and a request
// counter per route under expvar, lazily on first use. This is a cheap,
// dependency-free-of-Prometheus window into request timing; the Prometheus
// gauges in the metrics package cover the Database's own state instead.
func recordRequestCost(route string, start time.Time, status int) {
	succeeded := status < 500
	var name, nameC string
	if succeeded {
		name, nameC = "t_ok:"+route, "c_ok:"+route
	} else {
		name, nameC = "t_err:"+route, "c_err:"+route
	}

	val := expvar.Get(name)
	valC := expvar.Get(nameC)
	if val == nil || valC == nil {
		expvarLock.Lock()
		if expvar.Get(name) == nil {
			expvar.Publish(name, mw.NewHistogram("10s1s", "1m5s", "1h1m"))
			expvar.Publish(nameC, mw.NewCounter("10s1s", "1h1m"))
		}
		expvarLock.Unlock()
		val = expvar.Get(name)
		valC = expvar.Get(nameC)
	}
	val.(mw.Metric).Add(time.Since(start).Seconds())
	valC.(mw.Metric).Add(1)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps h so every request's latency and outcome is recorded
// under route via recordRequestCost.
func instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: rw, status: http.StatusOK}
		h(rec, r)
		recordRequestCost(route, start, rec.status)
	}
}
