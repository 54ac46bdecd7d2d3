package models

// SentimentCategory represents the overall polarity of an analyzed text
type SentimentCategory string

const (
	SentimentPositive SentimentCategory = "Positive"
	SentimentNegative SentimentCategory = "Negative"
	SentimentNeutral  SentimentCategory = "Neutral"
)

// SentimentResult represents the outcome of analyzing one or more texts.
// Score is a confidence value in [0,1] where higher means more positive.
// RiskLevel goes from 1 (best) to 5 (most concerning).
type SentimentResult struct {
	Category        SentimentCategory `json:"category"`
	Score           float64           `json:"score"`
	RiskLevel       int               `json:"risk_level"`
	Message         string            `json:"message"`
	Recommendations []string          `json:"recommendations"`
}

// IsNegative returns true if the result classified as negative sentiment
func (r *SentimentResult) IsNegative() bool {
	return r.Category == SentimentNegative
}
