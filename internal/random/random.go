// Package random supplies the draws that decide battle upsets.
//
// Every Source returns a value in [0,1). Adapters never clamp a bad value
// into range; an unreachable generator or a malformed answer is reported as
// a RandomUnavailable domain error and the caller decides what to do.
package random

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/franciscosanchezn/gin-meal-max/internal/models"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of this package's logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// DefaultTimeout caps a single request to an external generator.
const DefaultTimeout = 5 * time.Second

// Source supplies random draws in [0,1)
type Source interface {
	// Next returns the next draw
	Next(ctx context.Context) (float64, error)
}

var plainDecimal = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// ParseDraw parses a plain decimal answer from a generator and checks it
// falls in [0,1).
func ParseDraw(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if !plainDecimal.MatchString(trimmed) {
		return 0, models.NewRandomUnavailableError(fmt.Sprintf("invalid random value: %q", trimmed), nil)
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, models.NewRandomUnavailableError(fmt.Sprintf("invalid random value: %q", trimmed), err)
	}
	if err := checkRange(value); err != nil {
		return 0, err
	}
	return value, nil
}

func checkRange(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 || value >= 1 {
		return models.NewRandomUnavailableError(fmt.Sprintf("random value %v is outside [0, 1)", value), nil)
	}
	return nil
}

// Fixed always returns the same draw. Useful to pin a battle outcome.
type Fixed float64

// Next returns the fixed value, or an error if it is outside [0,1)
func (f Fixed) Next(ctx context.Context) (float64, error) {
	if err := checkRange(float64(f)); err != nil {
		return 0, err
	}
	return float64(f), nil
}

// LocalSource draws from the process PRNG, for running without network access.
type LocalSource struct{}

// NewLocalSource creates a LocalSource
func NewLocalSource() *LocalSource {
	return &LocalSource{}
}

// Next returns a pseudo-random value rounded down to two decimal places,
// matching the precision of the random.org adapter.
func (s *LocalSource) Next(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, models.NewRandomUnavailableError("random draw cancelled", err)
	}
	//nolint:gosec // not used for security
	value := math.Floor(rand.Float64()*100) / 100
	log.WithField("value", value).Debug("Drew local random number")
	return value, nil
}
