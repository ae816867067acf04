// Package payment holds the payment gateways. Only a simulation exists; no
// real processor is contacted.
package payment

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const referencePrefix = "sim_"

type simulatedGateway struct {
	logger *slog.Logger
}

// NewGateway returns the gateway selected by payment.mode.
func NewGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	mode := constants.PaymentModeSimulated
	if cfg.Payment != nil && cfg.Payment.Mode != "" {
		mode = cfg.Payment.Mode
	}

	if mode != constants.PaymentModeSimulated {
		return nil, errors.Errorf("unsupported payment mode: %s", mode)
	}

	logger.Warn("Payment gateway is simulated; every charge is approved")

	return NewSimulatedGateway(logger), nil
}

// NewSimulatedGateway approves every charge and issues a sim_ reference.
func NewSimulatedGateway(logger *slog.Logger) service.PaymentGateway {
	return &simulatedGateway{logger: logger}
}

func (g *simulatedGateway) Charge(ctx context.Context, req service.PaymentRequest) (*service.PaymentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if req.Amount.IsNegative() {
		return nil, errors.Errorf("charge amount must not be negative: %s", req.Amount)
	}

	reference := referencePrefix + strings.ReplaceAll(uuid.NewString(), "-", "")

	g.logger.InfoContext(ctx, "Simulated payment approved",
		slog.String("order_id", req.OrderID.String()),
		slog.String("method", req.Method),
		slog.String("amount", req.Amount.StringFixed(2)),
		slog.String("reference", reference),
	)

	return &service.PaymentResult{
		Approved:  true,
		Reference: reference,
		Simulated: true,
	}, nil
}
