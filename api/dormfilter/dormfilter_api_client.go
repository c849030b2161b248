package dormfilter

import (
	"context"

	"dorm-finder/api"
	"dorm-finder/models"
)

const FILTER_ENDPOINT = "/filter"

// DormFilterApiClient calls GET /filter over HTTP.
type DormFilterApiClient struct {
	*api.HTTPClient
}

func NewDormFilterApiClient(httpClient *api.HTTPClient) *DormFilterApiClient {
	return &DormFilterApiClient{
		HTTPClient: httpClient,
	}
}

// Filter sends params as the query string. A non-success result is returned
// as a response, not an error.
func (c *DormFilterApiClient) Filter(ctx context.Context, params models.DormFilterParams) (*models.DormFilterResponse, error) {
	var response models.DormFilterResponse
	endpoint := FILTER_ENDPOINT + "?" + params.ToValues().Encode()
	if err := c.Request(ctx, "GET", endpoint, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
