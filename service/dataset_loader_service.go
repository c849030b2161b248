package services

import (
	"fmt"
	"io/fs"
	"log/slog"

	"dorm-finder/models/dorm"
	"dorm-finder/resources"
	"dorm-finder/util"
)

// LoadRoomListings parses the bundled room dataset from fsys.
func LoadRoomListings(fsys fs.FS, logger *slog.Logger) ([]dorm.Listing, error) {
	f, err := fsys.Open(resources.ROOMS_CSV)
	if err != nil {
		return nil, fmt.Errorf("failed to open room dataset: %w", err)
	}
	defer f.Close()

	listings, err := util.ParseRoomListings(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse room dataset: %w", err)
	}

	suites := 0
	for _, l := range listings {
		if l.IsSuite {
			suites++
		}
	}
	logger.Info("[DatasetLoader] Loaded room dataset", "listings", len(listings), "suites", suites)
	return listings, nil
}
