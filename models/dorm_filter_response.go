package models

import "dorm-finder/models/dorm"

const RESULT_SUCCESS = "success"
const RESULT_ERROR_BAD_REQUEST = "error_bad_request"
const RESULT_ERROR_DATASOURCE = "error_datasource"

// DormFilterResponse is the /filter response body. The embedded params echo the query.
type DormFilterResponse struct {
	DormFilterParams
	Result              string          `json:"result"`
	ErrorMessage        string          `json:"error_message,omitempty"`
	FilteredDormRoomSet []dorm.Listing  `json:"filteredDormRoomSet"`
	DormBuildingList    []dorm.Building `json:"dormBuildingList,omitempty"`
}

// Succeeded reports whether the backend accepted the query.
func (r *DormFilterResponse) Succeeded() bool {
	return r.Result == RESULT_SUCCESS
}
