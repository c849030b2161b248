package dorm

// Building holds the static facts about a dorm building.
type Building struct {
	BuildingName      BuildingName   `json:"buildingName"`
	PeoplePerWasher   float64        `json:"peoplePerWasher"`
	Year              int            `json:"year"`
	Address           string         `json:"address"`
	CampusLocation    CampusLocation `json:"campusLocation"`
	HasElevatorAccess bool           `json:"hasElevatorAccess"`
}

type buildingData struct {
	peoplePerWasher float64
	year            int
	address         string
	elevator        bool
}

var buildingTable = map[BuildingName]buildingData{
	BuxtonHouse:   {0, 1951, "27 Brown St, Providence, RI 02906", false},
	ChapinHouse:   {38.33, 1951, "116 Thayer St, Providence, RI 02906", false},
	DimanHouse:    {29.5, 1951, "41 Charlesfield St, Providence, RI 02906", false},
	GoddardHouse:  {39.33, 1951, "39 Charlesfield St, Providence, RI 02906", false},
	HarknessHouse: {29, 1951, "47 Charlesfield St, Providence, RI 02906", false},
	MarcyHouse:    {58, 1951, "115 George St, Providence, RI 02906", false},
	OlneyHouse:    {39.33, 1951, "29 Brown St, Providence, RI 02906", false},
	SearsHouse:    {23, 1951, "113 George St, Providence, RI 02906", false},

	HopeCollege: {39, 1822, "71 Waterman St, Providence, RI 02906", false},
	SlaterHall:  {28, 1879, "70 George St, Providence, RI 02906", false},

	GradCenterA: {36.67, 1968, "40 Charlesfield St, Providence, RI 02906", false},
	GradCenterB: {38.33, 1968, "44 Charlesfield St, Providence, RI 02906", false},
	GradCenterC: {36.67, 1968, "82 Thayer St, Providence, RI 02906", false},
	GradCenterD: {38, 1968, "90 Thayer St, Providence, RI 02906", false},

	VartanGregorianQuadA: {28.5, 1991, "103 Thayer St, Providence, RI 02906", true},
	VartanGregorianQuadB: {28.5, 1991, "101 Thayer St, Providence, RI 02906", true},

	HegemanHall:     {56.5, 1991, "128 George St, Providence, RI 02906", true},
	LittlefieldHall: {34, 1926, "102 George St, Providence, RI 02906", false},

	CaswellHall: {47, 1903, "168 Thayer St, Providence, RI 02906", false},

	BarbourHall:    {56, 1904, "100 Charlesfield St, Providence, RI 02906", false},
	KingHouse:      {27, 1895, "154 Hope St, Providence, RI 02912", false},
	MindenHall:     {25.33, 1912, "121 Waterman St, Providence, RI 02906", true},
	PerkinsHall:    {38.6, 1960, "154 Power St, Providence, RI 02906", false},
	YoungOrchard2:  {28, 1973, "Young Orchard Ave #2, Providence, RI 02906", false},
	YoungOrchard4:  {28, 1973, "Young Orchard Ave #4, Providence, RI 02906", false},
	YoungOrchard10: {18.67, 1973, "Young Orchard Ave #10, Providence, RI 02906", false},

	MachadoHouse: {425, 1912, "87 Prospect St, Providence, RI 02906", false},
}

// NewBuilding looks up the static facts for name. Buildings without recorded facts
// (the Pembroke houses) only carry their name and location.
func NewBuilding(name BuildingName) Building {
	b := Building{BuildingName: name}
	if loc, ok := LocationOf(name); ok {
		b.CampusLocation = loc
	}
	if d, ok := buildingTable[name]; ok {
		b.PeoplePerWasher = d.peoplePerWasher
		b.Year = d.year
		b.Address = d.address
		b.HasElevatorAccess = d.elevator
	}
	return b
}

// AllBuildings returns every known building with its facts.
func AllBuildings() []Building {
	names := BuildingNames()
	out := make([]Building, 0, len(names))
	for _, n := range names {
		out = append(out, NewBuilding(n))
	}
	return out
}
