package dto

type SearchQuery struct {
	Q     string `form:"q"`
	Type  string `form:"type" validate:"omitempty,oneof=jobs news all"`
	Limit int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

type SearchResults struct {
	Jobs interface{} `json:"jobs,omitempty"`
	News interface{} `json:"news,omitempty"`
}
