package http

type (
	// ChatRequest struct - HTTP request DTO.
	// SearchType rides as a plain string; it is normalized onto a domain
	// SearchType at the parse boundary, where unknown values collapse to
	// the default knowledge-base mode.
	ChatRequest struct {
		Message    string `json:"message" validate:"required" form:"message" query:"message"`
		SearchType string `json:"searchType" validate:"omitempty" form:"searchType" query:"searchType"`
	}
)
