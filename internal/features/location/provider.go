package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPProvider resolves the submitter's position from a JSON lookup
// endpoint returning {"latitude": ..., "longitude": ...}.
type HTTPProvider struct {
	url    string
	client *http.Client
}

func NewHTTPProvider(url string) *HTTPProvider {
	return &HTTPProvider{
		url:    url,
		client: &http.Client{Timeout: acquireTimeout},
	}
}

func (p *HTTPProvider) CurrentPosition(ctx context.Context) (*Position, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", p.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return nil, ErrPermissionDenied
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("position lookup returned status %d", resp.StatusCode)
	}

	var body struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Latitude == nil || body.Longitude == nil {
		return nil, ErrPositionUnavailable
	}

	pos := &Position{AcquiredAt: time.Now()}
	pos.Coordinates.Latitude = *body.Latitude
	pos.Coordinates.Longitude = *body.Longitude
	return pos, nil
}
