package dorm

import (
	"fmt"
	"strings"
)

// CampusLocation groups dorm buildings by campus neighborhood.
type CampusLocation string

const (
	WristonQuad   CampusLocation = "WristonQuad"
	MainGreen     CampusLocation = "MainGreen"
	GradCenter    CampusLocation = "GradCenter"
	GregorianQuad CampusLocation = "GregorianQuad"
	Pembroke      CampusLocation = "Pembroke"
	RuthJSimmons  CampusLocation = "RuthJSimmons"
	ThayerStreet  CampusLocation = "ThayerStreet"
	EastCampus    CampusLocation = "EastCampus"
	Machado       CampusLocation = "Machado"
)

// CampusLocations lists every location in display order.
var CampusLocations = []CampusLocation{
	WristonQuad, MainGreen, GradCenter, GregorianQuad, Pembroke,
	RuthJSimmons, ThayerStreet, EastCampus, Machado,
}

var campusBuildings = map[CampusLocation][]BuildingName{
	WristonQuad:   {BuxtonHouse, ChapinHouse, DimanHouse, GoddardHouse, HarknessHouse, MarcyHouse, OlneyHouse, SearsHouse},
	MainGreen:     {HopeCollege, SlaterHall},
	GradCenter:    {GradCenterA, GradCenterB, GradCenterC, GradCenterD},
	GregorianQuad: {VartanGregorianQuadA, VartanGregorianQuadB},
	Pembroke:      {NewPembroke1, NewPembroke2, NewPembroke3, WestHouse},
	RuthJSimmons:  {HegemanHall, LittlefieldHall},
	ThayerStreet:  {CaswellHall},
	EastCampus:    {BarbourHall, KingHouse, MindenHall, PerkinsHall, YoungOrchard2, YoungOrchard4, YoungOrchard10},
	Machado:       {MachadoHouse},
}

// Buildings returns the buildings located in l.
func (l CampusLocation) Buildings() []BuildingName {
	return campusBuildings[l]
}

// Label is the human readable location, e.g. "Wriston Quad".
func (l CampusLocation) Label() string {
	switch l {
	case RuthJSimmons:
		return "Ruth J Simmons"
	}
	var b strings.Builder
	for i, r := range string(l) {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseCampusLocation accepts a location token in any case.
func ParseCampusLocation(s string) (CampusLocation, error) {
	s = strings.TrimSpace(s)
	for _, l := range CampusLocations {
		if strings.EqualFold(string(l), s) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown campus location %q", s)
}

// LocationOf returns the campus location of a building.
func LocationOf(name BuildingName) (CampusLocation, bool) {
	for _, l := range CampusLocations {
		for _, b := range campusBuildings[l] {
			if b == name {
				return l, true
			}
		}
	}
	return "", false
}
