// Package snapshot hydrates event snapshots for the settlement engine.
//
// The engine trusts its input, so everything that can be wrong with a snapshot
// is handled here: decoding, filling in missing ids, rejecting malformed
// events (Validate) and reporting references the engine will silently ignore
// (Check).
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/settleup/internal/models"
)

var (
	ErrNoParticipants       = errors.New("event has no participants")
	ErrDuplicateParticipant = errors.New("duplicate participant id")
	ErrInvalidPrice         = errors.New("item price must be a non-negative number")
	ErrUnsupportedFormat    = errors.New("unsupported snapshot format")
)

// Format is the encoding of a snapshot file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode reads one event from r. Unknown fields are rejected.
func Decode(r io.Reader, format Format) (*models.Event, error) {
	event := &models.Event{}
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(event); err != nil {
			return nil, fmt.Errorf("failed to decode json snapshot: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(event); err != nil {
			return nil, fmt.Errorf("failed to decode yaml snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return event, nil
}

// LoadFile reads, normalizes and validates the snapshot stored at path.
func LoadFile(path, defaultCurrency string) (*models.Event, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	event, err := Decode(f, format)
	if err != nil {
		return nil, err
	}
	Normalize(event, defaultCurrency)
	if err := Validate(event); err != nil {
		return nil, err
	}
	return event, nil
}

// idNamespace scopes the ids Normalize derives for events that lack one.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/mmynk/settleup/snapshot"))

// Normalize fills in what the engine expects to be present:
// ids for events, participants and items that lack one, trimmed ids and names,
// and a currency code.
//
// Generated ids are name-based UUIDs derived from the snapshot content, so the
// same snapshot always normalizes to the same ids.
func Normalize(event *models.Event, defaultCurrency string) {
	event.ID = strings.TrimSpace(event.ID)
	event.Currency = strings.ToUpper(strings.TrimSpace(event.Currency))
	if event.Currency == "" {
		event.Currency = strings.ToUpper(defaultCurrency)
	}
	if event.Currency == "" {
		event.Currency = models.DefaultCurrency
	}

	for i := range event.Participants {
		p := &event.Participants[i]
		p.ID = strings.TrimSpace(p.ID)
		p.Name = strings.TrimSpace(p.Name)
	}
	for i := range event.Items {
		item := &event.Items[i]
		item.ID = strings.TrimSpace(item.ID)
		item.Name = strings.TrimSpace(item.Name)
		item.ResponsibleID = strings.TrimSpace(item.ResponsibleID)
		for k := range item.Participants {
			item.Participants[k] = strings.TrimSpace(item.Participants[k])
		}
	}

	if event.ID == "" {
		event.ID = uuid.NewSHA1(idNamespace, contentKey(event)).String()
	}
	scope := uuid.NewSHA1(idNamespace, []byte(event.ID))

	for i := range event.Participants {
		p := &event.Participants[i]
		if p.ID == "" {
			p.ID = uuid.NewSHA1(scope, []byte(fmt.Sprintf("participant/%d/%s", i, p.Name))).String()
		}
		if p.Name == "" {
			p.Name = p.ID
		}
	}
	for i := range event.Items {
		item := &event.Items[i]
		if item.ID == "" {
			item.ID = uuid.NewSHA1(scope, []byte(fmt.Sprintf("item/%d/%s", i, item.Name))).String()
		}
		if item.Name == "" {
			item.Name = item.ID
		}
	}
}

// contentKey identifies an event by everything it contains.
func contentKey(event *models.Event) []byte {
	key, err := json.Marshal(event)
	if err != nil {
		// Only non-finite prices fail to marshal; Validate rejects those anyway.
		return []byte(event.Title)
	}
	return key
}

// Validate rejects snapshots the engine must not be called with.
func Validate(event *models.Event) error {
	if len(event.Participants) == 0 {
		return ErrNoParticipants
	}

	seen := make(map[string]bool, len(event.Participants))
	for _, p := range event.Participants {
		if seen[p.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateParticipant, p.ID)
		}
		seen[p.ID] = true
	}

	for _, item := range event.Items {
		if !item.Priced() {
			continue
		}
		price := *item.Price
		if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
			return fmt.Errorf("%w: item %s has price %v", ErrInvalidPrice, item.ID, price)
		}
	}
	return nil
}
