package models

// DefaultCurrency is used when an event does not name its currency.
const DefaultCurrency = "RUB"

// Event is a fully hydrated snapshot of one planned event.
type Event struct {
	// ID is the unique identifier for the event (UUID format).
	ID string `json:"id" yaml:"id"`

	// Title is the human-readable name of the event (e.g., "Summer BBQ").
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Currency is the ISO 4217 code amounts are displayed in.
	// Empty means DefaultCurrency. No conversion is ever performed.
	Currency string `json:"currency,omitempty" yaml:"currency,omitempty"`

	// Participants is the full membership list of the event.
	Participants []Participant `json:"participants" yaml:"participants"`

	// Items are the purchases logged for the event.
	Items []LineItem `json:"items" yaml:"items"`
}

// CurrencyCode returns the event currency, falling back to DefaultCurrency.
func (e Event) CurrencyCode() string {
	if e.Currency == "" {
		return DefaultCurrency
	}
	return e.Currency
}

// Participant is a member of an event.
type Participant struct {
	// ID is the opaque participant identifier.
	ID string `json:"id" yaml:"id"`

	// Name is the display name used in balances and payment messages.
	Name string `json:"name" yaml:"name"`
}
