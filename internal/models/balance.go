package models

// Balance is one participant's net financial position for an event.
// It is derived per computation and discarded after use.
type Balance struct {
	ParticipantID   string  `json:"participant_id"`
	ParticipantName string  `json:"participant_name"`
	Spent           float64 `json:"spent"`      // sum of prices of items this participant fronted
	ShouldPay       float64 `json:"should_pay"` // sum of this participant's shares
	Balance         float64 `json:"balance"`    // Positive = owed money, Negative = owes money
}
