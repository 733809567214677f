package random

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-meal-max/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDraw(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected float64
		wantErr  bool
	}{
		{name: "plain value", raw: "0.42", expected: 0.42},
		{name: "trailing newline", raw: "0.07\n", expected: 0.07},
		{name: "zero is allowed", raw: "0.00", expected: 0},
		{name: "one is out of range", raw: "1.00", wantErr: true},
		{name: "negative value", raw: "-0.10", wantErr: true},
		{name: "not a number", raw: "Error: quota exceeded", wantErr: true},
		{name: "empty body", raw: "", wantErr: true},
		{name: "NaN", raw: "NaN", wantErr: true},
		{name: "hex float", raw: "0x1p-1", wantErr: true},
		{name: "exponent", raw: "5e-1", wantErr: true},
		{name: "leading plus", raw: "+0.5", wantErr: true},
		{name: "bare fraction", raw: ".5", wantErr: true},
		{name: "digit separators", raw: "0.4_2", wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseDraw(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, models.ErrRandomSourceUnavailable))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestFixedSource(t *testing.T) {
	value, err := Fixed(0.5).Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.5, value)

	_, err = Fixed(1.5).Next(context.Background())
	assert.ErrorIs(t, err, models.ErrRandomSourceUnavailable)
}

func TestLocalSource(t *testing.T) {
	source := NewLocalSource()
	for i := 0; i < 100; i++ {
		value, err := source.Next(context.Background())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, value, 0.0)
		assert.Less(t, value, 1.0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := source.Next(ctx)
	assert.ErrorIs(t, err, models.ErrRandomSourceUnavailable)
}

func TestRandomOrgSource(t *testing.T) {
	t.Run("returns parsed value", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			fmt.Fprint(w, "0.73\n")
		}))
		defer server.Close()

		value, err := NewRandomOrgSource(server.URL, time.Second).Next(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0.73, value)
	})

	t.Run("rejects non numeric body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html>busy</html>")
		}))
		defer server.Close()

		_, err := NewRandomOrgSource(server.URL, time.Second).Next(context.Background())
		assert.ErrorIs(t, err, models.ErrRandomSourceUnavailable)
	})

	t.Run("rejects out of range value", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "7.5")
		}))
		defer server.Close()

		_, err := NewRandomOrgSource(server.URL, time.Second).Next(context.Background())
		assert.ErrorIs(t, err, models.ErrRandomSourceUnavailable)
		assert.Contains(t, err.Error(), "outside [0, 1)")
	})

	t.Run("rejects error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, "0.5")
		}))
		defer server.Close()

		_, err := NewRandomOrgSource(server.URL, time.Second).Next(context.Background())
		assert.ErrorIs(t, err, models.ErrRandomSourceUnavailable)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("times out on slow server", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		_, err := NewRandomOrgSource(server.URL, 50*time.Millisecond).Next(context.Background())
		assert.ErrorIs(t, err, models.ErrRandomSourceUnavailable)
		assert.Contains(t, err.Error(), "timed out")
	})

	t.Run("unreachable host", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := NewRandomOrgSource(url, time.Second).Next(context.Background())
		assert.ErrorIs(t, err, models.ErrRandomSourceUnavailable)
	})
}

func TestNewRandomOrgSourceDefaults(t *testing.T) {
	source := NewRandomOrgSource("", 0)
	assert.Equal(t, RandomOrgURL, source.url)
	assert.Equal(t, DefaultTimeout, source.timeout)
}
