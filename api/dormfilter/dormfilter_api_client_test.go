package dormfilter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dorm-finder/api"
	"dorm-finder/models"
	"dorm-finder/models/dorm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params() models.DormFilterParams {
	return models.DormFilterParams{
		CampusLocation: "GradCenter",
		IsSuite:        models.ALL,
		HasKitchen:     models.ALL,
		BathroomType:   "Private, Communal",
		MinRoomSize:    "0",
		MaxRoomSize:    "1000",
		RoomCapacity:   models.ALL,
		FloorNumber:    "5",
	}
}

func TestDormFilterApiClient_Filter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/filter", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "GradCenter", q.Get("campusLocation"))
		assert.Equal(t, "Private, Communal", q.Get("bathroomType"))
		assert.Equal(t, "5", q.Get("floorNumber"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"success","filteredDormRoomSet":[
			{"roomNumber":"GRADCTR D 520 522","roomCapacity":"Three","isSuite":true,
			 "dormBuilding":{"buildingName":"GRAD_CENTER_D"},"commonAreaSize":210}]}`))
	}))
	defer server.Close()

	client := NewDormFilterApiClient(api.NewHTTPClient(server.URL))
	resp, err := client.Filter(context.Background(), params())

	require.NoError(t, err)
	require.True(t, resp.Succeeded())
	require.Len(t, resp.FilteredDormRoomSet, 1)
	l := resp.FilteredDormRoomSet[0]
	assert.Equal(t, dorm.Three, l.RoomCapacity)
	assert.Equal(t, dorm.GradCenterD, l.Building())
	assert.Equal(t, 5, l.Floor())
}

func TestDormFilterApiClient_NonSuccessIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"result":        "error_bad_request",
			"error_message": "bad request: floorNumber parameter is missing or empty",
		})
	}))
	defer server.Close()

	resp, err := NewDormFilterApiClient(api.NewHTTPClient(server.URL)).Filter(context.Background(), params())
	require.NoError(t, err)
	assert.False(t, resp.Succeeded())
	assert.Contains(t, resp.ErrorMessage, "floorNumber")
}

func TestDormFilterApiClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewDormFilterApiClient(api.NewHTTPClient(server.URL)).Filter(context.Background(), params())
	assert.EqualError(t, err, "unexpected status code: 500 Internal Server Error")
}

type stubBackend struct{ got models.DormFilterParams }

func (s *stubBackend) Filter(p models.DormFilterParams) *models.DormFilterResponse {
	s.got = p
	return &models.DormFilterResponse{DormFilterParams: p, Result: models.RESULT_SUCCESS}
}

func TestDormFilterApiClientMock_Filter(t *testing.T) {
	backend := &stubBackend{}
	client := NewDormFilterApiClientMock(backend)

	resp, err := client.Filter(context.Background(), params())
	require.NoError(t, err)
	assert.True(t, resp.Succeeded())
	assert.Equal(t, params(), backend.got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.Filter(ctx, params())
	assert.ErrorIs(t, err, context.Canceled)
}
