package dorm

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Listing is a standalone room or a suite. IsSuite selects which fields apply:
// suites carry SuiteNumber, CommonAreaSize and their constituent Rooms.
type Listing struct {
	RoomNumber     string       `json:"roomNumber"`
	SuiteNumber    string       `json:"suiteNumber,omitempty"`
	RoomCapacity   RoomCapacity `json:"roomCapacity"`
	RoomSize       int          `json:"roomSize"`
	FloorPlanLink  string       `json:"floorPlanLink"`
	HasKitchen     bool         `json:"hasKitchen"`
	IsSuite        bool         `json:"isSuite"`
	BathroomType   BathroomType `json:"bathroomType"`
	DormBuilding   Building     `json:"dormBuilding"`
	CommonAreaSize int          `json:"commonAreaSize,omitempty"`
	Rooms          []Listing    `json:"dormRooms,omitempty"`
}

// Size is the size the listing is filtered and sorted by: the common area for
// suites, the room itself otherwise.
func (l Listing) Size() int {
	if l.IsSuite {
		return l.CommonAreaSize
	}
	return l.RoomSize
}

// FirstNumber is the first run of digits in the room number, or -1 if there is
// none or it does not fit an int. "GRADCTR D 520 522" gives 520.
func (l Listing) FirstNumber() int {
	start, end := -1, len(l.RoomNumber)
	for i := 0; i < len(l.RoomNumber); i++ {
		c := l.RoomNumber[i]
		isDigit := c >= '0' && c <= '9'
		if isDigit && start < 0 {
			start = i
		}
		if !isDigit && start >= 0 {
			end = i
			break
		}
	}
	if start < 0 {
		return -1
	}
	n, err := strconv.Atoi(l.RoomNumber[start:end])
	if err != nil {
		return -1
	}
	return n
}

// Floor is the hundreds digit of the first number in the room number.
// "DIMAN 201" is on floor 2, "BARBOUR 080 081" on floor 0. A room number with
// no usable number counts as floor 0.
func (l Listing) Floor() int {
	n := l.FirstNumber()
	if n < 0 {
		return 0
	}
	return n / 100
}

// Building returns the listing's building token.
func (l Listing) Building() BuildingName {
	return l.DormBuilding.BuildingName
}

// MarshalJSON writes the capacity as its token, e.g. "Two".
func (c RoomCapacity) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Token())
}

// UnmarshalJSON accepts either a token or a number in One..Six.
func (c *RoomCapacity) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if !RoomCapacity(n).valid() {
			return fmt.Errorf("room capacity %d out of range", n)
		}
		*c = RoomCapacity(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("room capacity: %w", err)
	}
	parsed, err := ParseRoomCapacity(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
