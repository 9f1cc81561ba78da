package dto

// ClassifyRequest represents the request body for an expense classification.
type ClassifyRequest struct {
	Name string `json:"name" binding:"required"`
}

// ClassifyResponse represents the suggested category and jar for an expense.
type ClassifyResponse struct {
	Category string `json:"category"`
	Jar      string `json:"jar"`
	Fallback bool   `json:"fallback"`
}

// AdviceResponse represents the advisor's commentary on the user's budget.
// Advice always carries a displayable message, also when no advice was generated.
type AdviceResponse struct {
	Advice        string `json:"advice"`
	NotEnoughData bool   `json:"not_enough_data"`
	Unavailable   bool   `json:"unavailable"`
	Code          string `json:"code,omitempty"`
}
