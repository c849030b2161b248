package util

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dorm-finder/models/dorm"
)

const (
	COLUMN_BUILDING         = "Building"
	COLUMN_ROOM             = "Room"
	COLUMN_SUITE            = "Suite"
	COLUMN_ROOM_TYPE        = "Room Type"
	COLUMN_ROOM_SIZE        = "Room Size"
	COLUMN_HAS_KITCHEN      = "Has Kitchen?"
	COLUMN_IS_SUITE         = "Is Suite?"
	COLUMN_HAS_BATHROOM     = "Has Bathroom?"
	COLUMN_FLOOR_PLAN_LINK  = "Floor Plan Link"
	COLUMN_COMMON_AREA_SIZE = "Common Area Size"
)

var requiredColumns = []string{
	COLUMN_BUILDING, COLUMN_ROOM, COLUMN_SUITE, COLUMN_ROOM_TYPE, COLUMN_ROOM_SIZE,
	COLUMN_HAS_KITCHEN, COLUMN_IS_SUITE, COLUMN_HAS_BATHROOM, COLUMN_FLOOR_PLAN_LINK,
	COLUMN_COMMON_AREA_SIZE,
}

type csvRow struct {
	line   int
	fields map[string]string
}

func (r csvRow) get(column string) string {
	return strings.TrimSpace(r.fields[column])
}

// ParseRoomListings reads the room dataset. Consecutive suite rows sharing a
// Suite value fold into a single suite listing; every other row is a standalone room.
func ParseRoomListings(reader io.Reader) ([]dorm.Listing, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read room dataset header: %w", err)
	}
	index := map[string]int{}
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("room dataset is missing column %q", c)
		}
	}

	var listings []dorm.Listing
	var suiteRows []csvRow
	flushSuite := func() error {
		if len(suiteRows) == 0 {
			return nil
		}
		suite, err := parseSuite(suiteRows)
		if err != nil {
			return err
		}
		listings = append(listings, suite)
		suiteRows = nil
		return nil
	}

	line := 1
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row := csvRow{line: line, fields: map[string]string{}}
		for column, i := range index {
			if i < len(record) {
				row.fields[column] = record[i]
			}
		}

		isSuite, err := parseYesNo(row.get(COLUMN_IS_SUITE))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(suiteRows) > 0 && (!isSuite || row.get(COLUMN_SUITE) != suiteRows[0].get(COLUMN_SUITE)) {
			if err := flushSuite(); err != nil {
				return nil, err
			}
		}
		if isSuite {
			suiteRows = append(suiteRows, row)
			continue
		}
		room, err := parseRoom(row)
		if err != nil {
			return nil, err
		}
		listings = append(listings, room)
	}
	if err := flushSuite(); err != nil {
		return nil, err
	}
	return listings, nil
}

func parseRoom(row csvRow) (dorm.Listing, error) {
	building, err := dorm.ParseBuildingName(row.get(COLUMN_BUILDING))
	if err != nil {
		return dorm.Listing{}, fmt.Errorf("line %d: %w", row.line, err)
	}
	capacity, err := dorm.CapacityFromRoomType(row.get(COLUMN_ROOM_TYPE))
	if err != nil {
		return dorm.Listing{}, fmt.Errorf("line %d: %w", row.line, err)
	}
	size, err := strconv.Atoi(row.get(COLUMN_ROOM_SIZE))
	if err != nil {
		return dorm.Listing{}, fmt.Errorf("line %d: invalid room size %q", row.line, row.get(COLUMN_ROOM_SIZE))
	}
	kitchen, err := parseYesNo(row.get(COLUMN_HAS_KITCHEN))
	if err != nil {
		return dorm.Listing{}, fmt.Errorf("line %d: %w", row.line, err)
	}
	bathroom, err := parseBathroom(row.get(COLUMN_HAS_BATHROOM))
	if err != nil {
		return dorm.Listing{}, fmt.Errorf("line %d: %w", row.line, err)
	}
	isSuite, _ := parseYesNo(row.get(COLUMN_IS_SUITE))

	return dorm.Listing{
		RoomNumber:    row.get(COLUMN_ROOM),
		RoomCapacity:  capacity,
		RoomSize:      size,
		FloorPlanLink: row.get(COLUMN_FLOOR_PLAN_LINK),
		HasKitchen:    kitchen,
		IsSuite:       isSuite,
		BathroomType:  bathroom,
		DormBuilding:  dorm.NewBuilding(building),
	}, nil
}

// parseSuite builds the suite from its rows. The header fields come from the
// first row; capacity is the rooms' total, capped at Six.
func parseSuite(rows []csvRow) (dorm.Listing, error) {
	rooms := make([]dorm.Listing, 0, len(rows))
	total := 0
	for _, row := range rows {
		room, err := parseRoom(row)
		if err != nil {
			return dorm.Listing{}, err
		}
		total += int(room.RoomCapacity)
		rooms = append(rooms, room)
	}
	first := rows[0]
	commonArea, err := strconv.Atoi(first.get(COLUMN_COMMON_AREA_SIZE))
	if err != nil {
		return dorm.Listing{}, fmt.Errorf("line %d: invalid common area size %q", first.line, first.get(COLUMN_COMMON_AREA_SIZE))
	}
	if total > int(dorm.Six) {
		total = int(dorm.Six)
	}

	suite := rooms[0]
	suite.SuiteNumber = first.get(COLUMN_SUITE)
	suite.IsSuite = true
	suite.RoomCapacity = dorm.RoomCapacity(total)
	suite.CommonAreaSize = commonArea
	suite.Rooms = rooms
	return suite, nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, fmt.Errorf("expected Yes or No, got %q", s)
}

func parseBathroom(s string) (dorm.BathroomType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return dorm.Private, nil
	case "semi":
		return dorm.SemiPrivate, nil
	case "no":
		return dorm.Communal, nil
	}
	return "", fmt.Errorf("unknown bathroom value %q", s)
}
