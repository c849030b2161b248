package search

import "dorm-finder/models/dorm"

// MatchedBuildingNames returns the display name of every building with a
// listing, deduplicated, in first-seen order.
func MatchedBuildingNames(listings []dorm.Listing) []string {
	seen := map[string]bool{}
	var names []string
	for _, l := range listings {
		name := l.Building().DisplayName()
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
