// Package models defines the domain types exchanged with the settlement engine.
//
// # Snapshot
//
// The engine works on an [Event] snapshot that the surrounding application has
// already loaded:
//   - Participant: a member of the event (opaque ID plus display name)
//   - LineItem: a purchase logged for the event, fronted by one participant and
//     split among a set of cost-sharers
//
// # Derived values
//
// These are produced per computation and never stored:
//   - Balance: one participant's spent / share / net position
//   - TransferInstruction: one debtor-to-creditor payment that clears balances
//   - ItemShare: a debtor's share of one item, attached to their transfers
//
// # Design Principles
//
// 1. **Snapshots are read-only**: the engine only produces new values
// 2. **IDs, not pointers**: items reference participants by ID strings
// 3. **Missing prices are explicit**: LineItem.Price is a pointer, nil meaning
// "to be determined"
package models
