package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtsidehq/courtside-backend/internal/availability"
	"github.com/courtsidehq/courtside-backend/internal/resource"
	"github.com/courtsidehq/courtside-backend/internal/timeline"
)

type stubService struct {
	result *timeline.Result
	filter resource.Filter
	date   string
}

func (s *stubService) GetTimeline(_ context.Context, filter resource.Filter, date string, _ int) (*timeline.Result, error) {
	s.filter = filter
	s.date = date
	return s.result, nil
}

func newTestRouter(svc timeline.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r.Group("/v1"), NewHandler(svc))
	return r
}

func sampleResult() *timeline.Result {
	price := decimal.RequireFromString("40")
	result := &timeline.Result{
		Slots: []timeline.Entry{
			{
				ResourceID:   "r1",
				ResourceName: "Court A",
				Sport:        "padel",
				VendorName:   "Acme Sports",
				Interval:     availability.TimeInterval{Start: 9 * 60, End: 11 * 60},
				Status:       timeline.ClassificationAvailable,
				TotalPrice:   &price,
				Actions:      timeline.ActionsFor(timeline.ClassificationAvailable),
			},
			{
				ResourceID:   "r1",
				ResourceName: "Court A",
				Sport:        "padel",
				VendorName:   "Acme Sports",
				Interval:     availability.TimeInterval{Start: 10 * 60, End: 12 * 60},
				Status:       timeline.ClassificationPrivateMatch,
				Actions:      timeline.ActionsFor(timeline.ClassificationPrivateMatch),
			},
		},
	}
	for _, e := range result.Slots {
		result.Summary = addSummary(result.Summary, e.Status)
	}
	return result
}

func addSummary(s timeline.Summary, class timeline.Classification) timeline.Summary {
	switch class {
	case timeline.ClassificationAvailable:
		s.Available++
	case timeline.ClassificationOpenMatch:
		s.OpenMatches++
	case timeline.ClassificationPrivateMatch:
		s.PrivateMatches++
	default:
		s.Unavailable++
	}
	return s
}

func TestTimelineEndpoint(t *testing.T) {
	svc := &stubService{result: sampleResult()}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/timeline?date=2026-03-04&duration_minutes=120&sport=padel", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2026-03-04", svc.date)
	assert.Equal(t, "padel", svc.filter.Sport)

	var body TimelineResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.Len(t, body.Slots, 2)
	assert.Equal(t, "09:00", body.Slots[0].StartTime)
	assert.Equal(t, "11:00", body.Slots[0].EndTime)
	assert.Equal(t, "available", body.Slots[0].Status)
	assert.Equal(t, []string{"book"}, body.Slots[0].Actions)
	require.NotNil(t, body.Slots[0].TotalPrice)
	assert.True(t, body.Slots[0].TotalPrice.Equal(decimal.RequireFromString("40")))

	assert.Equal(t, "private_match", body.Slots[1].Status)
	assert.Empty(t, body.Slots[1].Actions)
	assert.Nil(t, body.Slots[1].TotalPrice)

	total := body.Summary.Available + body.Summary.OpenMatches +
		body.Summary.PrivateMatches + body.Summary.Unavailable
	assert.Equal(t, len(body.Slots), total)
}

func TestTimelineEndpointNullPriceSerialization(t *testing.T) {
	router := newTestRouter(&stubService{result: sampleResult()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/timeline?date=2026-03-04", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_price":null`)
	assert.Contains(t, w.Body.String(), `"actions":[]`)
}

func TestTimelineEndpointMissingDate(t *testing.T) {
	router := newTestRouter(&stubService{result: sampleResult()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/timeline", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
