package dormfilter

import (
	"context"

	"dorm-finder/models"
)

// DormFilterAPI is the search endpoint the finder UI queries.
type DormFilterAPI interface {
	Filter(ctx context.Context, params models.DormFilterParams) (*models.DormFilterResponse, error)
}
