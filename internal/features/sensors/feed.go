package sensors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/carbonsentinel/api/internal/pkg/geo"
	"github.com/carbonsentinel/api/internal/pkg/logger"
	apperrors "github.com/carbonsentinel/api/pkg/errors"
)

// Feed pulls point-in-time readings from the external air-quality API.
//
// Failure policy is fail-open: any transport or parse error degrades to an
// empty reading set plus a logged warning, so the map still renders with
// report pins only. When fetches race, the last one to complete overwrites
// the Latest slot; there is no cancellation.
type Feed struct {
	baseURL string
	client  *http.Client
	log     *logger.Logger

	mu     sync.Mutex
	latest []Reading
}

func NewFeed(baseURL string, log *logger.Logger) *Feed {
	return &Feed{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
		latest:  []Reading{},
	}
}

// FetchReadings issues one request against the feed and returns the
// normalized result. The returned slice is never nil.
func (f *Feed) FetchReadings(ctx context.Context, region string, limit int) []Reading {
	readings, err := f.fetch(ctx, region, limit)
	if err != nil {
		f.log.Warn("%v, serving empty overlay: %v", apperrors.ErrFeedUnavailable, err)
		readings = []Reading{}
	}

	f.mu.Lock()
	f.latest = readings
	f.mu.Unlock()

	return readings
}

// Latest returns the most recently completed fetch result.
func (f *Feed) Latest() []Reading {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Reading, len(f.latest))
	copy(out, f.latest)
	return out
}

func (f *Feed) fetch(ctx context.Context, region string, limit int) ([]Reading, error) {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("city", region)
	q.Set("parameter", "pm25")
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var payload feedPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return normalize(&payload), nil
}

// normalize maps upstream records into Readings, dropping records whose
// coordinates are missing. Everything else missing is tolerated.
func normalize(payload *feedPayload) []Reading {
	readings := make([]Reading, 0, len(payload.Results))

	for _, rec := range payload.Results {
		if rec.Coordinates == nil || rec.Coordinates.Latitude == nil || rec.Coordinates.Longitude == nil {
			continue
		}

		reading := Reading{
			StationLabel: rec.Location,
			Location: geo.Coordinates{
				Latitude:  *rec.Coordinates.Latitude,
				Longitude: *rec.Coordinates.Longitude,
			},
		}

		if len(rec.Measurements) > 0 {
			reading.Value = rec.Measurements[0].Value
		}

		reading.ObservedAt = observedAt(&rec)
		readings = append(readings, reading)
	}

	return readings
}

func observedAt(rec *feedRecord) time.Time {
	if rec.Date != nil {
		if t, err := time.Parse(time.RFC3339, rec.Date.UTC); err == nil {
			return t
		}
	}
	if len(rec.Measurements) > 0 {
		if t, err := time.Parse(time.RFC3339, rec.Measurements[0].LastUpdated); err == nil {
			return t
		}
	}
	return time.Time{}
}
