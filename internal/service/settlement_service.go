// Package service exposes the settlement engine over Connect RPC.
package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/snapshot"
)

const (
	// SettlementServiceName is the fully-qualified name of the SettlementService.
	SettlementServiceName = "settleup.v1.SettlementService"

	// ComputeBalancesProcedure is the path of the ComputeBalances RPC.
	ComputeBalancesProcedure = "/" + SettlementServiceName + "/ComputeBalances"
	// SettleProcedure is the path of the Settle RPC.
	SettleProcedure = "/" + SettlementServiceName + "/Settle"
)

// SettlementService is a stateless Connect service: every request carries the
// whole event snapshot and nothing is kept between calls.
type SettlementService struct {
	defaultCurrency string
	metrics         *metrics.Metrics
}

// NewSettlementService creates a SettlementService.
// m may be nil when metrics are disabled.
func NewSettlementService(defaultCurrency string, m *metrics.Metrics) *SettlementService {
	return &SettlementService{defaultCurrency: defaultCurrency, metrics: m}
}

// NewSettlementServiceHandler builds an HTTP handler serving both procedures.
// It returns the path to mount the handler on.
func NewSettlementServiceHandler(svc *SettlementService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	computeBalances := connect.NewUnaryHandler(ComputeBalancesProcedure, svc.ComputeBalances, opts...)
	settle := connect.NewUnaryHandler(SettleProcedure, svc.Settle, opts...)

	return "/" + SettlementServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ComputeBalancesProcedure:
			computeBalances.ServeHTTP(w, r)
		case SettleProcedure:
			settle.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// ComputeBalances returns every participant's position for the submitted event.
func (s *SettlementService) ComputeBalances(ctx context.Context, req *connect.Request[ComputeBalancesRequest]) (*connect.Response[ComputeBalancesResponse], error) {
	event := req.Msg.Event
	warnings, err := s.hydrate(ctx, &event)
	if err != nil {
		return nil, err
	}

	balances := calculator.ComputeBalances(event.Participants, event.Items)
	slog.DebugContext(ctx, "Balances computed",
		"event_id", event.ID,
		"participants", len(event.Participants),
		"items", len(event.Items),
	)

	return connect.NewResponse(&ComputeBalancesResponse{
		EventID:  event.ID,
		Currency: event.Currency,
		Balances: balances,
		Warnings: warnings,
	}), nil
}

// Settle computes balances and the transfers that clear them.
func (s *SettlementService) Settle(ctx context.Context, req *connect.Request[SettleRequest]) (*connect.Response[SettleResponse], error) {
	event := req.Msg.Event
	warnings, err := s.hydrate(ctx, &event)
	if err != nil {
		return nil, err
	}

	res := calculator.Settle(event, req.Msg.PaymentDetails)
	if s.metrics != nil {
		s.metrics.TransfersPlanned.Observe(float64(len(res.Transfers)))
	}
	for _, t := range res.Transfers {
		slog.DebugContext(ctx, "Transfer planned",
			"event_id", event.ID,
			"from", t.FromID,
			"to", t.ToID,
			"amount", t.Amount,
		)
	}
	slog.InfoContext(ctx, "Settlement planned",
		"event_id", event.ID,
		"transfers", len(res.Transfers),
		"with_messages", len(res.Messages) > 0,
	)

	return connect.NewResponse(&SettleResponse{
		EventID:   event.ID,
		Currency:  event.Currency,
		Balances:  res.Balances,
		Transfers: res.Transfers,
		Messages:  res.Messages,
		Warnings:  warnings,
	}), nil
}

// hydrate normalizes and validates the snapshot, then reports integrity warnings.
func (s *SettlementService) hydrate(ctx context.Context, event *models.Event) ([]snapshot.Warning, error) {
	snapshot.Normalize(event, s.defaultCurrency)
	if err := snapshot.Validate(event); err != nil {
		slog.WarnContext(ctx, "Rejected snapshot", "event_id", event.ID, "error", err)
		return nil, toConnectError(err)
	}

	warnings := snapshot.Check(event)
	for _, w := range warnings {
		slog.WarnContext(ctx, "Snapshot integrity warning",
			"event_id", event.ID,
			"kind", w.Kind,
			"item_id", w.ItemID,
			"participant_id", w.ParticipantID,
		)
		if s.metrics != nil {
			s.metrics.WarningsTotal.WithLabelValues(string(w.Kind)).Inc()
		}
	}
	return warnings, nil
}

// toConnectError maps snapshot validation errors to CodeInvalidArgument.
// Anything else is a server fault.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, snapshot.ErrNoParticipants),
		errors.Is(err, snapshot.ErrDuplicateParticipant),
		errors.Is(err, snapshot.ErrInvalidPrice),
		errors.Is(err, snapshot.ErrUnsupportedFormat):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
