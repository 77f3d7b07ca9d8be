package payment

import (
	"context"
	"fmt"
	"sync"

	"github.com/hostmail-io/hostmail/internal/application/payment/paymentgateway"
	"github.com/hostmail-io/hostmail/internal/shared/id"
	"github.com/hostmail-io/hostmail/internal/shared/logger"
)

// SandboxGateway is an in-memory gateway for development and tests. Every
// order is approvable immediately and every capture settles for the exact
// order amount.
type SandboxGateway struct {
	logger logger.Interface

	mu     sync.Mutex
	orders map[string]paymentgateway.CreateOrderRequest
}

func NewSandboxGateway(log logger.Interface) *SandboxGateway {
	return &SandboxGateway{
		logger: log,
		orders: make(map[string]paymentgateway.CreateOrderRequest),
	}
}

func (g *SandboxGateway) CreateOrder(ctx context.Context, req paymentgateway.CreateOrderRequest) (*paymentgateway.CreateOrderResponse, error) {
	gatewayOrderID, err := id.GenerateWithPrefix("sbx", 16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate sandbox order id: %w", err)
	}

	g.mu.Lock()
	g.orders[gatewayOrderID] = req
	g.mu.Unlock()

	g.logger.Debugw("sandbox order created", "gateway_order_id", gatewayOrderID, "order_no", req.OrderNo)

	return &paymentgateway.CreateOrderResponse{
		GatewayOrderID: gatewayOrderID,
		ApprovalURL:    fmt.Sprintf("https://sandbox.hostmail.local/approve/%s", gatewayOrderID),
	}, nil
}

func (g *SandboxGateway) CaptureOrder(ctx context.Context, gatewayOrderID string) (*paymentgateway.CaptureResult, error) {
	g.mu.Lock()
	req, ok := g.orders[gatewayOrderID]
	g.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("unknown sandbox order: %s", gatewayOrderID)
	}

	return &paymentgateway.CaptureResult{
		GatewayOrderID: gatewayOrderID,
		AmountCents:    req.AmountCents,
		Currency:       req.Currency,
		Completed:      true,
		RawStatus:      "COMPLETED",
	}, nil
}
