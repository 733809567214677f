package random

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-meal-max/internal/models"
	"github.com/sirupsen/logrus"
)

// RandomOrgURL asks random.org for one decimal fraction with two decimal places.
const RandomOrgURL = "https://www.random.org/decimal-fractions/?num=1&dec=2&col=1&format=plain&rnd=new"

// maxBodyBytes bounds how much of a response is read; a valid answer is a few bytes.
const maxBodyBytes = 64

// RandomOrgSource fetches draws from random.org over HTTP
type RandomOrgSource struct {
	url     string
	timeout time.Duration
	client  *http.Client
}

// NewRandomOrgSource creates a source for the given URL. An empty URL uses
// RandomOrgURL and a non-positive timeout uses DefaultTimeout.
func NewRandomOrgSource(url string, timeout time.Duration) *RandomOrgSource {
	if url == "" {
		url = RandomOrgURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RandomOrgSource{
		url:     url,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

// Next performs one GET request and parses the plain-text answer
func (s *RandomOrgSource) Next(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	log.WithField("url", s.url).Info("Fetching random number")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return 0, models.NewRandomUnavailableError("build random request", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			log.WithField("timeout", s.timeout).Error("Request for random number timed out")
			return 0, models.NewRandomUnavailableError("request for random number timed out", err)
		}
		log.WithError(err).Error("Request for random number failed")
		return 0, models.NewRandomUnavailableError("request for random number failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WithField("status", resp.StatusCode).Error("Random number service returned an error status")
		return 0, models.NewRandomUnavailableError(
			fmt.Sprintf("random number service returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.WithError(err).Error("Failed to read random number response")
		return 0, models.NewRandomUnavailableError("read random number response", err)
	}

	value, err := ParseDraw(string(body))
	if err != nil {
		log.WithError(err).Error("Invalid response from random number service")
		return 0, err
	}

	log.WithFields(logrus.Fields{"value": value}).Info("Received random number")
	return value, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
