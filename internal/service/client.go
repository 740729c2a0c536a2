package service

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// SettlementServiceClient calls a remote SettlementService.
type SettlementServiceClient struct {
	computeBalances *connect.Client[ComputeBalancesRequest, ComputeBalancesResponse]
	settle          *connect.Client[SettleRequest, SettleResponse]
}

// NewSettlementServiceClient creates a client for the service at baseURL
// (e.g. http://localhost:8080).
func NewSettlementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SettlementServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &SettlementServiceClient{
		computeBalances: connect.NewClient[ComputeBalancesRequest, ComputeBalancesResponse](
			httpClient, baseURL+ComputeBalancesProcedure, opts...,
		),
		settle: connect.NewClient[SettleRequest, SettleResponse](
			httpClient, baseURL+SettleProcedure, opts...,
		),
	}
}

// ComputeBalances calls settleup.v1.SettlementService.ComputeBalances.
func (c *SettlementServiceClient) ComputeBalances(ctx context.Context, req *connect.Request[ComputeBalancesRequest]) (*connect.Response[ComputeBalancesResponse], error) {
	return c.computeBalances.CallUnary(ctx, req)
}

// Settle calls settleup.v1.SettlementService.Settle.
func (c *SettlementServiceClient) Settle(ctx context.Context, req *connect.Request[SettleRequest]) (*connect.Response[SettleResponse], error) {
	return c.settle.CallUnary(ctx, req)
}
