package main

import "encoding/json"

type CourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Duration    string `json:"duration" validate:"required"`
	Format      string `json:"format" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Category    string `json:"category" validate:"required"`
}

// FeedbackRequest takes the rating as a json.Number so fractional values can
// be rejected explicitly instead of silently truncated.
type FeedbackRequest struct {
	Name    string      `json:"name" validate:"required"`
	Email   string      `json:"email" validate:"required,email"`
	Course  string      `json:"course" validate:"required"`
	Rating  json.Number `json:"rating" validate:"required"`
	Comment string      `json:"feedback" validate:"required"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}
