package buildinginfo

import (
	"fmt"
	"io/fs"
	"strconv"

	"dorm-finder/models"
	"dorm-finder/models/dorm"
	"dorm-finder/resources"
	"dorm-finder/util"
)

// NO_INFORMATION is shown for buildings the table has no facts for.
const NO_INFORMATION = "No information currently, to be updated"

// Fact is one labelled line of a building's info page.
type Fact struct {
	Label string
	Value string
}

// Page is everything the info view renders for one building.
type Page struct {
	Name        string
	Facts       []Fact
	Placeholder string
}

// Table maps building names to their descriptive record. Lookups accept any
// spelling NormalizeBuildingName folds together.
type Table struct {
	entries map[string]models.BuildingInfo
	names   []string
}

// NewTable indexes infos, keeping their order for Names.
func NewTable(infos []models.BuildingInfo) *Table {
	t := &Table{entries: make(map[string]models.BuildingInfo, len(infos))}
	for _, info := range infos {
		key := dorm.NormalizeBuildingName(info.Name)
		if _, dup := t.entries[key]; !dup {
			t.names = append(t.names, info.Name)
		}
		t.entries[key] = info
	}
	return t
}

// Load reads the bundled building info table from fsys.
func Load(fsys fs.FS) (*Table, error) {
	infos, err := util.ReadBuildingInfoFromJSON(fsys, resources.BUILDING_INFO_JSON, resources.BUILDING_INFO_SCHEMA)
	if err != nil {
		return nil, fmt.Errorf("failed to load building info: %w", err)
	}
	return NewTable(infos), nil
}

// Names lists the buildings in table order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

func (t *Table) Lookup(name string) (models.BuildingInfo, bool) {
	info, ok := t.entries[dorm.NormalizeBuildingName(name)]
	return info, ok
}

// Page builds the info view for name. Unknown buildings and buildings without
// recorded facts get the NO_INFORMATION placeholder.
func (t *Table) Page(name string) Page {
	info, ok := t.Lookup(name)
	if !ok {
		return Page{Name: name, Placeholder: NO_INFORMATION}
	}
	page := Page{Name: info.Name}
	if !info.HasDetails() {
		page.Placeholder = NO_INFORMATION
		return page
	}

	page.Facts = append(page.Facts, Fact{"Address", info.Address})
	if info.Neighborhood != "" {
		page.Facts = append(page.Facts, Fact{"Neighborhood", info.Neighborhood})
	}
	if info.YearBuilt > 0 {
		page.Facts = append(page.Facts, Fact{"Year Built", strconv.Itoa(info.YearBuilt)})
	}
	if info.HasElevator != nil {
		page.Facts = append(page.Facts, Fact{"Elevator Access", yesNo(*info.HasElevator)})
	}
	if info.PeoplePerWasher != nil {
		page.Facts = append(page.Facts, Fact{"People per Washer", strconv.FormatFloat(*info.PeoplePerWasher, 'f', -1, 64)})
	}
	return page
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
