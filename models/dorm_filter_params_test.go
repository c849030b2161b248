package models

import (
	"errors"
	"testing"

	"dorm-finder/models/dorm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allParams() DormFilterParams {
	return DormFilterParams{
		CampusLocation: "All",
		IsSuite:        "All",
		HasKitchen:     "All",
		BathroomType:   "All",
		MinRoomSize:    "All",
		MaxRoomSize:    "All",
		RoomCapacity:   "All",
		FloorNumber:    "All",
	}
}

func TestDormFilterParams_ToValues(t *testing.T) {
	p := allParams()
	p.CampusLocation = "GradCenter, WristonQuad"

	q := p.ToValues()

	assert.Equal(t, "GradCenter, WristonQuad", q.Get("campusLocation"))
	assert.Equal(t, "All", q.Get("floorNumber"))
	assert.Len(t, q, 8)
}

func TestDormFilterParams_Criteria_All(t *testing.T) {
	c, err := allParams().Criteria(0, 99999)
	require.NoError(t, err)

	assert.Nil(t, c.Buildings)
	assert.Nil(t, c.Floors)
	assert.Equal(t, 0, c.MinRoomSize)
	assert.Equal(t, 99999, c.MaxRoomSize)
	assert.True(t, c.Matches(dorm.Listing{RoomNumber: "DIMAN 201", RoomSize: 150}))
}

func TestDormFilterParams_Criteria_Values(t *testing.T) {
	p := allParams()
	p.CampusLocation = "gradcenter"
	p.FloorNumber = "5, six"
	p.RoomCapacity = "One, 2"
	p.IsSuite = "TRUE,false"
	p.MinRoomSize = "100"
	p.MaxRoomSize = "400"

	c, err := p.Criteria(0, 99999)
	require.NoError(t, err)

	assert.True(t, c.Buildings[dorm.GradCenterD])
	assert.False(t, c.Buildings[dorm.DimanHouse])
	assert.Equal(t, map[int]bool{5: true, 6: true}, c.Floors)
	assert.Equal(t, map[dorm.RoomCapacity]bool{dorm.One: true, dorm.Two: true}, c.Capacities)
	assert.Equal(t, map[bool]bool{true: true, false: true}, c.IsSuite)
	assert.Equal(t, 100, c.MinRoomSize)
	assert.Equal(t, 400, c.MaxRoomSize)
}

func TestDormFilterParams_Criteria_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *DormFilterParams)
	}{
		{"missing location", func(p *DormFilterParams) { p.CampusLocation = "" }},
		{"unknown location", func(p *DormFilterParams) { p.CampusLocation = "Keeney" }},
		{"bad bool", func(p *DormFilterParams) { p.HasKitchen = "maybe" }},
		{"bad bathroom", func(p *DormFilterParams) { p.BathroomType = "Outhouse" }},
		{"bad size", func(p *DormFilterParams) { p.MinRoomSize = "big" }},
		{"bad capacity", func(p *DormFilterParams) { p.RoomCapacity = "Seven" }},
		{"bad floor", func(p *DormFilterParams) { p.FloorNumber = "12" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := allParams()
			tt.mutate(&p)
			_, err := p.Criteria(0, 99999)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBadRequest))
		})
	}
}

func TestDormFilterParams_Criteria_InvertedSizeRangeMatchesNothing(t *testing.T) {
	p := allParams()
	p.MinRoomSize = "500"
	p.MaxRoomSize = "100"
	c, err := p.Criteria(0, 99999)
	require.NoError(t, err)
	assert.Equal(t, 500, c.MinRoomSize)
	assert.Equal(t, 100, c.MaxRoomSize)
	assert.False(t, c.Matches(dorm.Listing{RoomNumber: "DIMAN 201", RoomSize: 150, RoomCapacity: dorm.One}))
}

func TestDormFilterCriteria_Matches(t *testing.T) {
	p := allParams()
	p.CampusLocation = "GradCenter"
	p.FloorNumber = "5"
	c, err := p.Criteria(0, 99999)
	require.NoError(t, err)

	gradCtr := dorm.Listing{RoomNumber: "GRADCTR D 520 522", RoomSize: 150, DormBuilding: dorm.NewBuilding(dorm.GradCenterD)}
	diman := dorm.Listing{RoomNumber: "DIMAN 201", RoomSize: 150, DormBuilding: dorm.NewBuilding(dorm.DimanHouse)}
	wrongFloor := dorm.Listing{RoomNumber: "GRADCTR A 310", RoomSize: 150, DormBuilding: dorm.NewBuilding(dorm.GradCenterA)}

	assert.True(t, c.Matches(gradCtr))
	assert.False(t, c.Matches(diman))
	assert.False(t, c.Matches(wrongFloor))
}

func TestDormFilterCriteria_CacheKey(t *testing.T) {
	a := allParams()
	a.FloorNumber = "1,2"
	a.BathroomType = "Private, Communal"
	b := allParams()
	b.FloorNumber = "2, 1"
	b.BathroomType = "communal,private"

	ca, err := a.Criteria(0, 99999)
	require.NoError(t, err)
	cb, err := b.Criteria(0, 99999)
	require.NoError(t, err)

	assert.Equal(t, ca.CacheKey(), cb.CacheKey())

	all, err := allParams().Criteria(0, 99999)
	require.NoError(t, err)
	assert.NotEqual(t, ca.CacheKey(), all.CacheKey())
}
