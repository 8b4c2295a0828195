package v1

import (
	fg_uuid "github.com/fguardian/backend/internal/uuid"
)

type URIID struct {
	ID fg_uuid.UUID `uri:"id"` // The ID of the resource
}

type URIMonth struct {
	Year  int `uri:"year" example:"2025"` // Year of the report
	Month int `uri:"month" example:"1"`   // Month of the report, 1 to 12
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
