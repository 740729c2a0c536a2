package models

import "testing"

func TestLineItem(t *testing.T) {
	item := LineItem{ResponsibleID: "a", Participants: []string{"a", "b"}}

	if item.Priced() {
		t.Error("item without a price should not be priced")
	}
	if got := item.Amount(); got != 0 {
		t.Errorf("Amount() = %v, want 0", got)
	}
	if !item.SharedBy("b") || item.SharedBy("c") {
		t.Errorf("SharedBy: want b shared and c not, participants %v", item.Participants)
	}

	item.Price = Price(12.5)
	if !item.Priced() || item.Amount() != 12.5 {
		t.Errorf("priced item: Priced()=%v Amount()=%v", item.Priced(), item.Amount())
	}
}
