package sensors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/carbonsentinel/api/internal/pkg/logger"
)

const goodPayload = `{
	"results": [
		{
			"location": "Nairobi US Embassy",
			"coordinates": {"latitude": -1.2921, "longitude": 36.8219},
			"measurements": [{"parameter": "pm25", "value": 38.5, "unit": "µg/m³"}],
			"date": {"utc": "2026-01-01T06:00:00Z"}
		},
		{
			"location": "No Coordinates Station",
			"measurements": [{"parameter": "pm25", "value": 12.0}]
		},
		{
			"location": "Zero Reading Station",
			"coordinates": {"latitude": -1.30, "longitude": 36.80},
			"measurements": [{"parameter": "pm25", "value": 0}]
		},
		{
			"location": "No Measurement Station",
			"coordinates": {"latitude": -1.31, "longitude": 36.81}
		}
	]
}`

func newTestFeed(url string) *Feed {
	return NewFeed(url, logger.Component("sensors"))
}

func TestFetchReadings_NormalizesAndDrops(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Nairobi", r.URL.Query().Get("city"))
		require.Equal(t, "pm25", r.URL.Query().Get("parameter"))
		require.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Write([]byte(goodPayload))
	}))
	defer srv.Close()

	feed := newTestFeed(srv.URL)
	readings := feed.FetchReadings(context.Background(), "Nairobi", 5)

	// The record without coordinates is dropped; everything else survives.
	require.Len(t, readings, 3)

	require.Equal(t, "Nairobi US Embassy", readings[0].StationLabel)
	require.Equal(t, -1.2921, readings[0].Location.Latitude)
	require.NotNil(t, readings[0].Value)
	require.Equal(t, 38.5, *readings[0].Value)
	require.Equal(t, time.Date(2026, 1, 1, 6, 0, 0, 0, time.UTC), readings[0].ObservedAt.UTC())

	// Zero is a valid reading, distinct from missing.
	require.NotNil(t, readings[1].Value)
	require.Equal(t, 0.0, *readings[1].Value)

	// Missing measurement is nil, not zero.
	require.Nil(t, readings[2].Value)
}

func TestFetchReadings_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	feed := newTestFeed(srv.URL)
	readings := feed.FetchReadings(context.Background(), "Nairobi", 5)

	require.NotNil(t, readings)
	require.Len(t, readings, 0)
}

func TestFetchReadings_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	feed := newTestFeed(srv.URL)
	readings := feed.FetchReadings(context.Background(), "Nairobi", 5)

	require.NotNil(t, readings)
	require.Len(t, readings, 0)
}

func TestFetchReadings_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{`))
	}))
	defer srv.Close()

	feed := newTestFeed(srv.URL)
	readings := feed.FetchReadings(context.Background(), "Nairobi", 5)

	require.NotNil(t, readings)
	require.Len(t, readings, 0)
}

func TestLatest_LastCompletionWins(t *testing.T) {
	payloads := []string{
		`{"results": [{"location": "A", "coordinates": {"latitude": 1, "longitude": 1}}]}`,
		`{"results": []}`,
	}
	var call int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payloads[call]))
		call++
	}))
	defer srv.Close()

	feed := newTestFeed(srv.URL)

	feed.FetchReadings(context.Background(), "Nairobi", 5)
	require.Len(t, feed.Latest(), 1)

	// A later completion replaces the slot wholesale, even with fewer rows.
	feed.FetchReadings(context.Background(), "Nairobi", 5)
	require.Len(t, feed.Latest(), 0)
}

func TestLatest_ReturnsCopy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"location": "A", "coordinates": {"latitude": 1, "longitude": 1}}]}`))
	}))
	defer srv.Close()

	feed := newTestFeed(srv.URL)
	feed.FetchReadings(context.Background(), "Nairobi", 5)

	snapshot := feed.Latest()
	snapshot[0].StationLabel = "mutated"

	require.Equal(t, "A", feed.Latest()[0].StationLabel)
}
