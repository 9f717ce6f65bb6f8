package healthcheck

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckerRun(t *testing.T) {
	t.Run("AllHealthy", func(t *testing.T) {
		c := New("1.0.0", time.Second)
		c.Register("database", func(ctx context.Context) error { return nil })
		c.Register("cache", func(ctx context.Context) error { return nil })

		report := c.Run(context.Background())

		assert.Equal(t, StatusHealthy, report.Status)
		assert.Equal(t, "1.0.0", report.Version)
		require.Len(t, report.Checks, 2)
		assert.Equal(t, "database", report.Checks[0].Name)
		assert.Equal(t, "cache", report.Checks[1].Name)
	})

	t.Run("OneFailureMakesAggregateUnhealthy", func(t *testing.T) {
		c := New("1.0.0", time.Second)
		c.Register("database", func(ctx context.Context) error { return nil })
		c.Register("cache", func(ctx context.Context) error { return errors.New("connection refused") })

		report := c.Run(context.Background())

		assert.Equal(t, StatusUnhealthy, report.Status)
		assert.Equal(t, StatusHealthy, report.Checks[0].Status)
		assert.Equal(t, StatusUnhealthy, report.Checks[1].Status)
		assert.Equal(t, "connection refused", report.Checks[1].Error)
	})

	t.Run("CheckTimeout", func(t *testing.T) {
		c := New("1.0.0", 10*time.Millisecond)
		c.Register("slow", func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
				return nil
			}
		})

		report := c.Run(context.Background())
		assert.Equal(t, StatusUnhealthy, report.Status)
	})

	t.Run("NoChecksIsHealthy", func(t *testing.T) {
		c := New("1.0.0", time.Second)
		report := c.Run(context.Background())
		assert.Equal(t, StatusHealthy, report.Status)
	})
}

func TestCheckerHandler(t *testing.T) {
	t.Run("HealthyReturns200", func(t *testing.T) {
		c := New("1.0.0", time.Second)
		c.Register("database", func(ctx context.Context) error { return nil })

		rec := httptest.NewRecorder()
		c.Handler()(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var report Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, StatusHealthy, report.Status)
	})

	t.Run("UnhealthyReturns503", func(t *testing.T) {
		c := New("1.0.0", time.Second)
		c.Register("database", func(ctx context.Context) error { return errors.New("down") })

		rec := httptest.NewRecorder()
		c.Handler()(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
