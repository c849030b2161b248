package redis

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dorm-finder/db"
	"dorm-finder/models/dorm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRedisFilterCacheDAO_SetAndGet(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisFilterCacheDAO(mockClient, time.Hour, discardLogger())

	listings := []dorm.Listing{
		{RoomNumber: "DIMAN 201", RoomCapacity: dorm.Two, RoomSize: 180, BathroomType: dorm.Communal,
			DormBuilding: dorm.NewBuilding(dorm.DimanHouse)},
	}
	require.NoError(t, dao.SetFilterResult("b=*", listings))

	stored, err := mockClient.Get("dorm_filter_v1:b=*")
	require.NoError(t, err)
	assert.Contains(t, stored, "DIMAN 201")

	got, found, err := dao.GetFilterResult("b=*")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "DIMAN 201", got[0].RoomNumber)
	assert.Equal(t, dorm.Two, got[0].RoomCapacity)
	assert.Equal(t, dorm.DimanHouse, got[0].Building())
}

func TestRedisFilterCacheDAO_Miss(t *testing.T) {
	dao := NewRedisFilterCacheDAO(db.NewMockRedisClient(context.Background()), time.Hour, discardLogger())

	got, found, err := dao.GetFilterResult("nothing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestRedisFilterCacheDAO_EmptyResultIsAHit(t *testing.T) {
	dao := NewRedisFilterCacheDAO(db.NewMockRedisClient(context.Background()), time.Hour, discardLogger())

	require.NoError(t, dao.SetFilterResult("empty", nil))
	got, found, err := dao.GetFilterResult("empty")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
}

func TestRedisFilterCacheDAO_ListAndInvalidate(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisFilterCacheDAO(mockClient, 0, discardLogger())

	require.NoError(t, dao.SetFilterResult("a", nil))
	require.NoError(t, dao.SetFilterResult("b", nil))
	require.NoError(t, mockClient.Set("unrelated", "x"))

	keys, err := dao.ListCachedCriteriaKeys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	n, err := dao.InvalidateAll()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	keys, err = dao.ListCachedCriteriaKeys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = mockClient.Get("unrelated")
	assert.NoError(t, err)
}
