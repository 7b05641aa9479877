// Package health reports liveness of the service and of the subjects it depends on.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var log = logrus.WithField("package", "health")

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "undefined"
)

// GetVersion returns service's version and commit.
func GetVersion() string {
	return fmt.Sprintf("%s-%s", version, commit)
}

// Pinger is a subject of health check.
type Pinger interface {
	Name() string
	// Ping returns optional meta information about subject.
	Ping(ctx context.Context) (interface{}, error)
}

type pingFunc struct {
	name string
	f    func(ctx context.Context) error
}

func (p pingFunc) Name() string {
	return p.name
}

func (p pingFunc) Ping(ctx context.Context) (interface{}, error) {
	return nil, p.f(ctx)
}

// PingFunc names f as a subject, e.g. PingFunc("postgres", db.PingContext).
func PingFunc(name string, f func(ctx context.Context) error) Pinger {
	return pingFunc{name: name, f: f}
}

// Subject is a result of subject's ping.
type Subject struct {
	Meta  interface{} `json:"meta,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Status is a body of health check response.
type Status struct {
	Version  string             `json:"version"`
	Commit   string             `json:"commit"`
	Subjects map[string]Subject `json:"subjects"`
}

// Healthy returns true if every subject answered without error.
func (s Status) Healthy() bool {
	for _, v := range s.Subjects {
		if v.Error != "" {
			return false
		}
	}

	return true
}

// Check pings all subjects concurrently; every ping is limited by timeout.
func Check(ctx context.Context, timeout time.Duration, pingers ...Pinger) Status {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	results := make([]Subject, len(pingers))

	var gr errgroup.Group
	for i := range pingers {
		i := i
		gr.Go(func() error {
			meta, err := pingers[i].Ping(ctx)

			results[i].Meta = meta
			if err != nil {
				results[i].Error = err.Error()
			}

			return nil
		})
	}
	_ = gr.Wait()

	status := Status{
		Version:  version,
		Commit:   commit,
		Subjects: make(map[string]Subject, len(pingers)),
	}
	for i, p := range pingers {
		status.Subjects[p.Name()] = results[i]
	}

	return status
}

// Handler serves result of Check; unhealthy status is replied with 503.
func Handler(timeout time.Duration, pingers ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := Check(r.Context(), timeout, pingers...)

		code := http.StatusOK
		if !status.Healthy() {
			for k, v := range status.Subjects {
				if v.Error != "" {
					log.WithField("subject", k).Error(v.Error)
				}
			}
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(status)
	}
}
