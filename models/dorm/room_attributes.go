package dorm

import (
	"fmt"
	"strconv"
	"strings"
)

// BathroomType describes who shares the bathroom a room uses.
type BathroomType string

const (
	Private     BathroomType = "Private"
	SemiPrivate BathroomType = "SemiPrivate"
	Communal    BathroomType = "Communal"
)

var BathroomTypes = []BathroomType{Private, SemiPrivate, Communal}

// ParseBathroomType accepts a bathroom token in any case.
func ParseBathroomType(s string) (BathroomType, error) {
	s = strings.TrimSpace(s)
	for _, b := range BathroomTypes {
		if strings.EqualFold(string(b), s) {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown bathroom type %q", s)
}

// RoomCapacity is the number of residents a room or suite houses.
type RoomCapacity int

const (
	One RoomCapacity = iota + 1
	Two
	Three
	Four
	Five
	Six
)

var RoomCapacities = []RoomCapacity{One, Two, Three, Four, Five, Six}

var capacityTokens = []string{"One", "Two", "Three", "Four", "Five", "Six"}
var capacityLabels = []string{"Single", "Double", "Triple", "Quad", "Quintuple", "Sextuple"}

func (c RoomCapacity) valid() bool {
	return c >= One && c <= Six
}

// Token is the query token for the capacity, e.g. "Two".
func (c RoomCapacity) Token() string {
	if !c.valid() {
		return strconv.Itoa(int(c))
	}
	return capacityTokens[c-1]
}

// Label is the room type shown on cards, e.g. "Double".
func (c RoomCapacity) Label() string {
	if !c.valid() {
		return strconv.Itoa(int(c))
	}
	return capacityLabels[c-1]
}

func (c RoomCapacity) String() string {
	return c.Label()
}

// ParseRoomCapacity accepts One..Six, Single..Sextuple or 1..6 in any case.
func ParseRoomCapacity(s string) (RoomCapacity, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		c := RoomCapacity(n)
		if !c.valid() {
			return 0, fmt.Errorf("room capacity %d out of range", n)
		}
		return c, nil
	}
	for i := range capacityTokens {
		if strings.EqualFold(capacityTokens[i], s) || strings.EqualFold(capacityLabels[i], s) {
			return RoomCapacity(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unknown room capacity %q", s)
}

// CapacityFromRoomType reads a free-text room type such as "Double" or "Quad Suite".
func CapacityFromRoomType(roomType string) (RoomCapacity, error) {
	lower := strings.ToLower(roomType)
	for i, label := range capacityLabels {
		if strings.Contains(lower, strings.ToLower(label)) {
			return RoomCapacity(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unknown room type %q", roomType)
}

// Floors are the floor numbers a listing can be on.
const (
	MinFloor = 0
	MaxFloor = 8
)

var floorWords = []string{"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight"}

// ParseFloorNumber accepts 0..8 as digits or words.
func ParseFloorNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < MinFloor || n > MaxFloor {
			return 0, fmt.Errorf("floor number %d out of range", n)
		}
		return n, nil
	}
	for i, w := range floorWords {
		if strings.EqualFold(w, s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown floor number %q", s)
}
