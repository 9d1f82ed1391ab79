package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type FaqQuestionRequest struct {
	Question string `json:"question"`
}

func (req *FaqQuestionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Question, validation.Required, validation.Length(1, 255)),
	)
}

type FaqUpdateRequest struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	IsPublished bool   `json:"is_published"`
}

func (req *FaqUpdateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Question, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Answer, validation.Length(0, 511)),
	)
}
