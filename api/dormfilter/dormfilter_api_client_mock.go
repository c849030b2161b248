package dormfilter

import (
	"context"

	"dorm-finder/models"
)

// Backend answers filter queries in process.
type Backend interface {
	Filter(params models.DormFilterParams) *models.DormFilterResponse
}

// DormFilterApiClientMock answers queries from an in-process backend instead
// of going over HTTP.
type DormFilterApiClientMock struct {
	backend Backend
}

func NewDormFilterApiClientMock(backend Backend) *DormFilterApiClientMock {
	return &DormFilterApiClientMock{backend: backend}
}

func (c *DormFilterApiClientMock) Filter(ctx context.Context, params models.DormFilterParams) (*models.DormFilterResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.backend.Filter(params), nil
}
