// Package healthcheck provides named dependency health checks and an
// HTTP handler exposing their aggregate status.
package healthcheck

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// Status of a single check or the aggregate.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// CheckFunc probes one dependency.
type CheckFunc func(ctx context.Context) error

// Result is the outcome of one check.
type Result struct {
	Name    string        `json:"name"`
	Status  Status        `json:"status"`
	Error   string        `json:"error,omitempty"`
	Latency time.Duration `json:"latency_ns"`
}

// Report is the aggregate health report.
type Report struct {
	Status  Status    `json:"status"`
	Checks  []Result  `json:"checks"`
	Time    time.Time `json:"time"`
	Version string    `json:"version"`
}

// Checker runs registered dependency checks.
type Checker struct {
	mu      sync.RWMutex
	checks  map[string]CheckFunc
	order   []string
	timeout time.Duration
	version string
}

// New creates a checker. Each check gets the given timeout.
func New(version string, timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Checker{
		checks:  make(map[string]CheckFunc),
		timeout: timeout,
		version: version,
	}
}

// Register adds a named check. Re-registering a name replaces it.
func (c *Checker) Register(name string, check CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.checks[name]; !exists {
		c.order = append(c.order, name)
	}
	c.checks[name] = check
}

// Run executes all checks and aggregates the results.
func (c *Checker) Run(ctx context.Context) Report {
	c.mu.RLock()
	defer c.mu.RUnlock()

	report := Report{
		Status:  StatusHealthy,
		Time:    time.Now(),
		Version: c.version,
	}

	for _, name := range c.order {
		check := c.checks[name]

		checkCtx, cancel := context.WithTimeout(ctx, c.timeout)
		start := time.Now()
		err := check(checkCtx)
		cancel()

		result := Result{
			Name:    name,
			Status:  StatusHealthy,
			Latency: time.Since(start),
		}
		if err != nil {
			result.Status = StatusUnhealthy
			result.Error = err.Error()
			report.Status = StatusUnhealthy
		}
		report.Checks = append(report.Checks, result)
	}

	return report
}

// Handler exposes the health report over HTTP. Unhealthy reports get
// a 503 status.
func (c *Checker) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := c.Run(r.Context())

		status := http.StatusOK
		if report.Status != StatusHealthy {
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(report)
	}
}
