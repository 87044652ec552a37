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

// Package server exposes a Database's mutation API and Changes over HTTP,
// for local experimentation and for mirrors that cannot link the Go package
// directly. This is supplemental plumbing, not part of the core's contract:
// callers that embed the module use schedule.Database's typed API directly.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/AlexandreBarral/rmf-core/schedule"
	"github.com/AlexandreBarral/rmf-core/trajectory"
	"github.com/AlexandreBarral/rmf-core/utils/log"
)

var apiTimeout = 10 * time.Second

func sendResponse(rw http.ResponseWriter, code int, success bool, msg string, data interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	_ = json.NewEncoder(rw).Encode(map[string]interface{}{
		"success": success,
		"message": msg,
		"data":    data,
	})
}

func sendError(rw http.ResponseWriter, code int, err error) {
	sendResponse(rw, code, false, err.Error(), nil)
}

// API is the gorilla/mux handler set wrapping a Database.
type API struct {
	db *schedule.Database
}

// NewRouter builds the full route tree for db.
func NewRouter(db *schedule.Database) *mux.Router {
	a := &API{db: db}
	router := mux.NewRouter()

	router.HandleFunc("/trajectories", instrument("insert", a.insert)).Methods(http.MethodPost)
	router.HandleFunc("/trajectories/{id:[0-9]+}/interrupt", instrument("interrupt", a.interrupt)).Methods(http.MethodPost)
	router.HandleFunc("/trajectories/{id:[0-9]+}/delay", instrument("delay", a.delay)).Methods(http.MethodPost)
	router.HandleFunc("/trajectories/{id:[0-9]+}", instrument("replace", a.replace)).Methods(http.MethodPut)
	router.HandleFunc("/trajectories/{id:[0-9]+}", instrument("erase", a.erase)).Methods(http.MethodDelete)
	router.HandleFunc("/cull", instrument("cull", a.cull)).Methods(http.MethodPost)
	router.HandleFunc("/changes", instrument("changes", a.changes)).Methods(http.MethodGet)
	router.HandleFunc("/version", instrument("version", a.version)).Methods(http.MethodGet)

	return router
}

// New returns an *http.Server serving db's API at addr, wrapped in the same
// CORS handling the rest of the corpus's HTTP surfaces use.
func New(addr string, db *schedule.Database) *http.Server {
	router := NewRouter(db)
	return &http.Server{
		Addr:         addr,
		ReadTimeout:  apiTimeout,
		WriteTimeout: apiTimeout * 10,
		IdleTimeout:  apiTimeout,
		Handler: handlers.CORS(
			handlers.AllowedHeaders([]string{"Content-Type"}),
		)(router),
	}
}

// Shutdown gracefully stops srv, grounded on the same context.Background
// shutdown the rest of the corpus's HTTP surfaces use.
func Shutdown(srv *http.Server) error {
	return srv.Shutdown(context.Background())
}

type wireWaypoint struct {
	TimeUnixNano int64   `json:"time_unix_nano"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Yaw          float64 `json:"yaw"`
}

type wireTrajectory struct {
	Waypoints []wireWaypoint `json:"waypoints"`
}

func (w wireTrajectory) toTrajectory() (trajectory.Trajectory, error) {
	waypoints := make([]trajectory.Waypoint, len(w.Waypoints))
	for i, wp := range w.Waypoints {
		waypoints[i] = trajectory.Waypoint{
			Time:     time.Unix(0, wp.TimeUnixNano).UTC(),
			Position: trajectory.Position{X: wp.X, Y: wp.Y, Yaw: wp.Yaw},
		}
	}
	return trajectory.New(waypoints...)
}

func fromTrajectory(t trajectory.Trajectory) wireTrajectory {
	waypoints := t.Waypoints()
	wire := wireTrajectory{Waypoints: make([]wireWaypoint, len(waypoints))}
	for i, wp := range waypoints {
		wire.Waypoints[i] = wireWaypoint{
			TimeUnixNano: wp.Time.UnixNano(),
			X:            wp.Position.X,
			Y:            wp.Position.Y,
			Yaw:          wp.Position.Yaw,
		}
	}
	return wire
}

func idFromVars(r *http.Request) (schedule.Version, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return schedule.Version(id), nil
}

func (a *API) insert(rw http.ResponseWriter, r *http.Request) {
	var body wireTrajectory
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(rw, http.StatusBadRequest, err)
		return
	}
	traj, err := body.toTrajectory()
	if err != nil {
		sendError(rw, http.StatusBadRequest, err)
		return
	}
	v, err := a.db.Insert(traj)
	if err != nil {
		sendError(rw, http.StatusUnprocessableEntity, err)
		return
	}
	log.WithField("version", v).Debug("server: inserted trajectory")
	sendResponse(rw, http.StatusOK, true, "", map[string]schedule.Version{"version": v})
}

func (a *API) interrupt(rw http.ResponseWriter, r *http.Request) {
	id, err := idFromVars(r)
	if err != nil {
		sendError(rw, http.StatusBadRequest, err)
		return
	}
	var body struct {
		Interruption wireTrajectory `json:"interruption"`
		DelayNanos   int64          `json:"delay_nanos"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(rw, http.StatusBadRequest, err)
		return
	}
	interruption, err := body.Interruption.toTrajectory()
	if err != nil {
		sendError(rw, http.StatusBadRequest, err)
		return
	}
	v, err := a.db.Interrupt(id, interruption, time.Duration(body.DelayNanos))
	if err != nil {
		sendError(rw, http.StatusUnprocessableEntity, err)
		return
	}
	sendResponse(rw, http.StatusOK, true, "", map[string]schedule.Version{"version": v})
}

func (a *API) delay(rw http.ResponseWriter, r *http.Request) {
	id, err := idFromVars(r)
	if err != nil {
		sendError(rw, http.StatusBadRequest, err)
		return
	}
	var body struct {
		FromUnixNano int64 `json:"from_unix_nano"`
		DelayNanos   int64 `json:"delay_nanos"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(rw, http.StatusBadRequest, err)
		return
	}
	v, err := a.db.Delay(id, time.Unix(0, body.FromUnixNano).UTC(), time.Duration(body.DelayNanos))
	if err != nil {
		sendError(rw, http.StatusUnprocessableEntity, err)
		return
	}
	sendResponse(rw, http.StatusOK, true, "", map[string]schedule.Version{"version": v})
}

func (a *API) replace(rw http.ResponseWriter, r *http.Request) {
	id, err := idFromVars(r)
	if err != nil {
		sendError(rw, http.StatusBadRequest, err)
		return
	}
	var body wireTrajectory
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(rw, http.StatusBadRequest, err)
		return
	}
	traj, err := body.toTrajectory()
	if err != nil {
		sendError(rw, http.StatusBadRequest, err)
		return
	}
	v, err := a.db.Replace(id, traj)
	if err != nil {
		sendError(rw, http.StatusUnprocessableEntity, err)
		return
	}
	sendResponse(rw, http.StatusOK, true, "", map[string]schedule.Version{"version": v})
}

func (a *API) erase(rw http.ResponseWriter, r *http.Request) {
	id, err := idFromVars(r)
	if err != nil {
		sendError(rw, http.StatusBadRequest, err)
		return
	}
	v, err := a.db.Erase(id)
	if err != nil {
		sendError(rw, http.StatusUnprocessableEntity, err)
		return
	}
	sendResponse(rw, http.StatusOK, true, "", map[string]schedule.Version{"version": v})
}

func (a *API) cull(rw http.ResponseWriter, r *http.Request) {
	var body struct {
		BeforeUnixNano int64 `json:"before_unix_nano"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(rw, http.StatusBadRequest, err)
		return
	}
	v := a.db.Cull(time.Unix(0, body.BeforeUnixNano).UTC())
	sendResponse(rw, http.StatusOK, true, "", map[string]schedule.Version{"version": v})
}

func parseOptionalVersion(raw string) (*schedule.Version, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	v := schedule.Version(n)
	return &v, nil
}

func parseOptionalUnixNano(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	t := time.Unix(0, n).UTC()
	return &t, nil
}

func (a *API) changes(rw http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	after, err := parseOptionalVersion(q.Get("after"))
	if err != nil {
		sendError(rw, http.StatusBadRequest, err)
		return
	}
	lower, err := parseOptionalUnixNano(q.Get("lower"))
	if err != nil {
		sendError(rw, http.StatusBadRequest, err)
		return
	}
	upper, err := parseOptionalUnixNano(q.Get("upper"))
	if err != nil {
		sendError(rw, http.StatusBadRequest, err)
		return
	}

	patch := a.db.Changes(schedule.WindowQuery(lower, upper, after))
	sendResponse(rw, http.StatusOK, true, "", formatPatch(patch))
}

func (a *API) version(rw http.ResponseWriter, r *http.Request) {
	sendResponse(rw, http.StatusOK, true, "", map[string]schedule.Version{"version": a.db.LatestVersion()})
}

// wireChange carries the same payload schedule.Change does, so a mirror
// that can only speak JSON can reconstruct trajectory state from a Patch
// exactly as a Go caller does: Trajectory for KindInsert/KindReplace,
// Interruption/DelayNanos for KindInterrupt, FromUnixNano/DelayNanos for
// KindDelay.
type wireChange struct {
	ID           schedule.Version   `json:"id"`
	Kind         string             `json:"kind"`
	OriginalID   *schedule.Version  `json:"original_id,omitempty"`
	CulledIDs    []schedule.Version `json:"culled_ids,omitempty"`
	Trajectory   *wireTrajectory    `json:"trajectory,omitempty"`
	Interruption *wireTrajectory    `json:"interruption,omitempty"`
	FromUnixNano *int64             `json:"from_unix_nano,omitempty"`
	DelayNanos   *int64             `json:"delay_nanos,omitempty"`
}

func formatPatch(patch *schedule.Patch) map[string]interface{} {
	changes := make([]wireChange, patch.Len())
	for i := 0; i < patch.Len(); i++ {
		c := patch.At(i)
		wc := wireChange{ID: c.ID(), Kind: c.Kind().String()}
		if originalID, ok := c.OriginalID(); ok {
			wc.OriginalID = &originalID
		}
		if culled, ok := c.CulledIDs(); ok {
			wc.CulledIDs = culled
		}
		if traj, ok := c.Trajectory(); ok {
			wire := fromTrajectory(traj)
			wc.Trajectory = &wire
		}
		if interruption, ok := c.Interruption(); ok {
			wire := fromTrajectory(interruption)
			wc.Interruption = &wire
		}
		if from, ok := c.From(); ok {
			nanos := from.UnixNano()
			wc.FromUnixNano = &nanos
		}
		if delay, ok := c.Delay(); ok {
			nanos := int64(delay)
			wc.DelayNanos = &nanos
		}
		changes[i] = wc
	}
	return map[string]interface{}{
		"changes":        changes,
		"latest_version": patch.LatestVersion(),
	}
}
