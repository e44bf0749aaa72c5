package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest is the request body for /predict and /analyze.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// HistoryRequest carries the pagination parameters for /history.
type HistoryRequest struct {
	Page     int `json:"page" validate:"min=1"`
	PageSize int `json:"page_size" validate:"min=1,max=100"`
}

// Validate validates the HistoryRequest using the validator.
func (r *HistoryRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
