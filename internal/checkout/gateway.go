package checkout

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Result is the gateway's answer to a charge attempt.
type Result struct {
	Success       bool
	FailureReason string
}

// Gateway is the payment boundary. A real implementation would submit an
// intent to a payment provider and poll or receive a webhook for
// settlement; the contract here is just the final outcome.
type Gateway interface {
	Charge(ctx context.Context, data PaymentData, amount decimal.Decimal) (Result, error)
}

// SimulatedGateway stands in for a real provider: it waits a fixed delay
// and succeeds, unless FailureReason is set (used to exercise the failure
// path in tests and demos).
type SimulatedGateway struct {
	Delay         time.Duration
	FailureReason string
}

func (g SimulatedGateway) Charge(ctx context.Context, _ PaymentData, _ decimal.Decimal) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-time.After(g.Delay):
	}
	if g.FailureReason != "" {
		return Result{Success: false, FailureReason: g.FailureReason}, nil
	}
	return Result{Success: true}, nil
}
