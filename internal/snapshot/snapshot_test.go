package snapshot

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/models"
)

func TestLoadFile(t *testing.T) {
	for _, name := range []string{"camping.yaml", "camping.json"} {
		t.Run(name, func(t *testing.T) {
			event, err := LoadFile(filepath.Join("testdata", name), "RUB")
			require.NoError(t, err)

			assert.Equal(t, "camping-2026", event.ID)
			assert.Equal(t, "RUB", event.Currency)
			require.Len(t, event.Participants, 3)
			assert.Equal(t, "Alice", event.Participants[0].Name)

			require.Len(t, event.Items, 3)
			assert.Equal(t, "tent", event.Items[0].ID)
			require.NotNil(t, event.Items[0].Price)
			assert.Equal(t, 3000.0, *event.Items[0].Price)

			// Food has no id in the file.
			_, err = uuid.Parse(event.Items[1].ID)
			assert.NoError(t, err, "expected a generated uuid, got %q", event.Items[1].ID)

			assert.Nil(t, event.Items[2].Price, "boat rental has no price yet")
			assert.Equal(t, []string{"p2", "p3"}, event.Items[2].Participants)
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile("testdata/camping.toml", "RUB")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile("testdata/missing.yaml", "RUB")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	t.Run("unknown fields are rejected", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{"participants": [], "budget": 10}`), FormatJSON)
		assert.Error(t, err)

		_, err = Decode(strings.NewReader("participants: []\nbudget: 10\n"), FormatYAML)
		assert.Error(t, err)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := Decode(strings.NewReader(""), Format("xml"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{"participants": [`), FormatJSON)
		assert.Error(t, err)
	})
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"event.json", FormatJSON, false},
		{"event.YAML", FormatYAML, false},
		{"dir/event.yml", FormatYAML, false},
		{"event.csv", "", true},
		{"event", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	event := &models.Event{
		Participants: []models.Participant{
			{ID: " p1 ", Name: "  Alice "},
			{ID: "p2"},
			{Name: "Ghost"},
		},
		Items: []models.LineItem{
			{Name: " Tent ", Price: models.Price(10), ResponsibleID: "p1"},
			{ID: "x"},
		},
	}

	Normalize(event, "usd")

	_, err := uuid.Parse(event.ID)
	assert.NoError(t, err)
	assert.Equal(t, "USD", event.Currency)

	assert.Equal(t, models.Participant{ID: "p1", Name: "Alice"}, event.Participants[0])
	assert.Equal(t, models.Participant{ID: "p2", Name: "p2"}, event.Participants[1])
	assert.NotEmpty(t, event.Participants[2].ID)
	assert.Equal(t, "Ghost", event.Participants[2].Name)

	assert.NotEmpty(t, event.Items[0].ID)
	assert.Equal(t, "Tent", event.Items[0].Name)
	assert.Equal(t, "x", event.Items[1].Name)
}

func TestNormalize_KeepsExplicitCurrency(t *testing.T) {
	event := &models.Event{ID: "e", Currency: " eur"}
	Normalize(event, "USD")
	assert.Equal(t, "EUR", event.Currency)

	event = &models.Event{ID: "e"}
	Normalize(event, "")
	assert.Equal(t, models.DefaultCurrency, event.Currency)
}

func TestNormalize_TrimsItemReferences(t *testing.T) {
	event := &models.Event{
		ID:           "e",
		Participants: []models.Participant{{ID: " a ", Name: "Ann"}, {ID: "b", Name: "Ben"}},
		Items: []models.LineItem{
			{ID: "i", Name: "Fuel", Price: models.Price(100), ResponsibleID: " a ", Participants: []string{" a ", "b "}},
		},
	}

	Normalize(event, "")

	assert.Equal(t, "a", event.Items[0].ResponsibleID)
	assert.Equal(t, []string{"a", "b"}, event.Items[0].Participants)
	assert.Empty(t, Check(event))

	var sum float64
	for _, b := range calculator.ComputeBalances(event.Participants, event.Items) {
		sum += b.Balance
		switch b.ParticipantID {
		case "a":
			assert.InDelta(t, 50, b.Balance, 1e-9)
		case "b":
			assert.InDelta(t, -50, b.Balance, 1e-9)
		}
	}
	assert.InDelta(t, 0, sum, 1e-9)
}

func TestNormalize_Deterministic(t *testing.T) {
	newEvent := func() *models.Event {
		return &models.Event{
			Title:        "Picnic",
			Participants: []models.Participant{{Name: "Ann"}, {Name: "Ben"}},
			Items: []models.LineItem{
				{Name: "Bread", Price: models.Price(30)},
				{Name: "Cheese", Price: models.Price(90)},
			},
		}
	}
	// Items need someone to pay for them; reference the generated participant ids.
	hydrate := func() *models.Event {
		event := newEvent()
		Normalize(event, "")
		for i := range event.Items {
			event.Items[i].ResponsibleID = event.Participants[0].ID
			event.Items[i].Participants = []string{event.Participants[0].ID, event.Participants[1].ID}
		}
		return event
	}

	first, second := hydrate(), hydrate()
	assert.Equal(t, first, second)
	_, err := uuid.Parse(first.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.Items[0].ID, first.Items[1].ID)
	assert.NotEqual(t, first.Participants[0].ID, first.Participants[1].ID)

	assert.Equal(t,
		calculator.Settle(*first, "Card 1234"),
		calculator.Settle(*second, "Card 1234"),
	)

	other := newEvent()
	other.Title = "Barbecue"
	Normalize(other, "")
	assert.NotEqual(t, first.ID, other.ID)
}

func TestNormalize_Idempotent(t *testing.T) {
	event := &models.Event{
		Title:        " Trip ",
		Participants: []models.Participant{{Name: "Ann"}},
		Items:        []models.LineItem{{Name: "Fuel"}},
	}
	Normalize(event, "eur")
	once := *event
	once.Participants = append([]models.Participant(nil), event.Participants...)
	once.Items = append([]models.LineItem(nil), event.Items...)

	Normalize(event, "eur")
	assert.Equal(t, once, *event)
}

func TestValidate(t *testing.T) {
	members := []models.Participant{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}

	tests := []struct {
		name  string
		event models.Event
		want  error
	}{
		{
			name:  "valid",
			event: models.Event{Participants: members, Items: []models.LineItem{{ID: "i", Price: models.Price(0), ResponsibleID: "a"}}},
		},
		{
			name:  "unpriced items are fine",
			event: models.Event{Participants: members, Items: []models.LineItem{{ID: "i"}}},
		},
		{
			name:  "no participants",
			event: models.Event{},
			want:  ErrNoParticipants,
		},
		{
			name:  "duplicate participant",
			event: models.Event{Participants: append(members, models.Participant{ID: "a"})},
			want:  ErrDuplicateParticipant,
		},
		{
			name:  "negative price",
			event: models.Event{Participants: members, Items: []models.LineItem{{ID: "i", Price: models.Price(-1)}}},
			want:  ErrInvalidPrice,
		},
		{
			name:  "infinite price",
			event: models.Event{Participants: members, Items: []models.LineItem{{ID: "i", Price: models.Price(math.Inf(1))}}},
			want:  ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.event)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
