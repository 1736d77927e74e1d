package request

// ImportFiscalXMLRequest is the JSON alternative to multipart upload for
// importing a fiscal document.
type ImportFiscalXMLRequest struct {
	XML string `json:"xml" binding:"required"`
}

// FiscalFilterRequest represents fiscal document filter parameters
type FiscalFilterRequest struct {
	Search    string `form:"search"`
	Direction string `form:"direction" binding:"omitempty,oneof=inbound outbound"`
	Status    string `form:"status" binding:"omitempty,oneof=authorized pending"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
