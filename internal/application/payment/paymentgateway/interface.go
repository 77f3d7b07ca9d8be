package paymentgateway

import "context"

// Gateway defines the interface for payment gateway integrations.
type Gateway interface {
	// CreateOrder registers an order with the gateway and returns the
	// gateway's order reference plus the buyer approval URL.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error)
	// CaptureOrder settles an approved order. The returned capture must be
	// verified against the local amount before the plan is applied.
	CaptureOrder(ctx context.Context, gatewayOrderID string) (*CaptureResult, error)
}

// CreateOrderRequest contains the data needed to open a gateway order.
type CreateOrderRequest struct {
	OrderNo     string
	AmountCents int64
	Currency    string
	Description string
	ReturnURL   string
	CancelURL   string
}

type CreateOrderResponse struct {
	GatewayOrderID string
	ApprovalURL    string
}

// CaptureResult is the gateway's settlement outcome.
type CaptureResult struct {
	GatewayOrderID string
	AmountCents    int64
	Currency       string
	Completed      bool
	RawStatus      string
}
