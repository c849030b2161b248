package resources

import "embed"

const ROOMS_CSV = "rooms.csv"
const BUILDINGS_GEOJSON = "buildings.geojson"
const BUILDING_INFO_JSON = "building_info.json"
const BUILDING_FEATURES_SCHEMA = "schemas/building_features.json"
const BUILDING_INFO_SCHEMA = "schemas/building_info.json"
const TEMPLATES_GLOB = "templates/*.html"

// FS holds the bundled dataset, its schemas and the page templates.
//
//go:embed rooms.csv buildings.geojson building_info.json schemas templates
var FS embed.FS
