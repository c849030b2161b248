package detail

import (
	"dorm-finder/models/dorm"
)

// RoomCard summarises a standalone room, or one room inside a suite.
type RoomCard struct {
	Number        string
	Type          string
	Bathroom      string
	Kitchen       string
	Size          int
	FloorPlanLink string
}

// SuiteCard summarises a suite and its rooms.
type SuiteCard struct {
	Number         string
	Capacity       string
	Bathroom       string
	Kitchen        string
	CommonAreaSize int
	FloorPlanLink  string
	Rooms          []RoomCard
}

// Card holds exactly one of Suite or Room.
type Card struct {
	Building string
	Suite    *SuiteCard
	Room     *RoomCard
}

func (c Card) IsSuite() bool {
	return c.Suite != nil
}

// NewCard picks the card kind from the listing's IsSuite flag.
func NewCard(l dorm.Listing) Card {
	card := Card{Building: l.Building().DisplayName()}
	if l.IsSuite {
		suite := &SuiteCard{
			Number:         suiteNumber(l),
			Capacity:       l.RoomCapacity.Label(),
			Bathroom:       bathroomLabel(l.BathroomType),
			Kitchen:        yesNo(l.HasKitchen),
			CommonAreaSize: l.CommonAreaSize,
			FloorPlanLink:  l.FloorPlanLink,
		}
		for _, r := range l.Rooms {
			suite.Rooms = append(suite.Rooms, roomCard(r))
		}
		card.Suite = suite
		return card
	}
	room := roomCard(l)
	card.Room = &room
	return card
}

func roomCard(l dorm.Listing) RoomCard {
	return RoomCard{
		Number:        l.RoomNumber,
		Type:          l.RoomCapacity.Label(),
		Bathroom:      bathroomLabel(l.BathroomType),
		Kitchen:       yesNo(l.HasKitchen),
		Size:          l.RoomSize,
		FloorPlanLink: l.FloorPlanLink,
	}
}

func suiteNumber(l dorm.Listing) string {
	if l.SuiteNumber != "" {
		return l.SuiteNumber
	}
	return l.RoomNumber
}

func bathroomLabel(b dorm.BathroomType) string {
	if b == dorm.SemiPrivate {
		return "Semi-Private"
	}
	return string(b)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
