package snapshot

import (
	"fmt"

	"github.com/mmynk/settleup/internal/models"
)

// WarningKind classifies a data-integrity problem.
type WarningKind string

const (
	UnknownResponsible  WarningKind = "unknown_responsible"
	UnknownCostSharer   WarningKind = "unknown_cost_sharer"
	NoCostSharers       WarningKind = "no_cost_sharers"
	DuplicateCostSharer WarningKind = "duplicate_cost_sharer"
)

// Warning is a problem the engine tolerates but the caller should surface.
type Warning struct {
	Kind          WarningKind `json:"kind"`
	ItemID        string      `json:"item_id"`
	ParticipantID string      `json:"participant_id,omitempty"`
	Message       string      `json:"message"`
}

// Check reports references the engine will ignore or handle by policy:
//   - responsible or cost-sharer ids that are not event members
//   - priced items nobody shares (charged to the responsible participant)
//   - a cost-sharer listed twice on one item
func Check(event *models.Event) []Warning {
	members := make(map[string]bool, len(event.Participants))
	for _, p := range event.Participants {
		members[p.ID] = true
	}

	var warnings []Warning
	for _, item := range event.Items {
		if !members[item.ResponsibleID] {
			warnings = append(warnings, Warning{
				Kind:          UnknownResponsible,
				ItemID:        item.ID,
				ParticipantID: item.ResponsibleID,
				Message:       fmt.Sprintf("item %q is paid by %q who is not a participant", item.Name, item.ResponsibleID),
			})
		}

		if item.Priced() && len(item.Participants) == 0 {
			warnings = append(warnings, Warning{
				Kind:    NoCostSharers,
				ItemID:  item.ID,
				Message: fmt.Sprintf("item %q has a price but nobody shares it", item.Name),
			})
		}

		listed := make(map[string]bool, len(item.Participants))
		for _, id := range item.Participants {
			if listed[id] {
				warnings = append(warnings, Warning{
					Kind:          DuplicateCostSharer,
					ItemID:        item.ID,
					ParticipantID: id,
					Message:       fmt.Sprintf("%q is listed more than once on item %q", id, item.Name),
				})
				continue
			}
			listed[id] = true

			if !members[id] {
				warnings = append(warnings, Warning{
					Kind:          UnknownCostSharer,
					ItemID:        item.ID,
					ParticipantID: id,
					Message:       fmt.Sprintf("item %q is shared by %q who is not a participant", item.Name, id),
				})
			}
		}
	}
	return warnings
}
