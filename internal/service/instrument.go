package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"smartpay-rewards/internal/core/ports"
	"smartpay-rewards/internal/observability"
	"smartpay-rewards/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Operation names used for spans and the rewards_operations_total counter.
const (
	opMintRewards      = "mint_rewards"
	opRedeemRewards    = "redeem_rewards"
	opInitializeMint   = "initialize_mint"
	opUpdateRewardRate = "update_reward_rate"
)

func startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return observability.Tracer().Start(ctx, op, trace.WithAttributes(attrs...))
}

// finish ends the span and counts the operation.
func finish(span trace.Span, metrics *observability.Metrics, op string, err error) {
	outcome := outcomeOf(err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.String("rewards.outcome", outcome))
	span.End()
	metrics.Operation(op, outcome)
}

func outcomeOf(err error) string {
	if err == nil {
		return observability.OutcomeSuccess
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError {
		return observability.OutcomeRejected
	}
	return observability.OutcomeError
}

// ledgerError maps token ledger faults onto engine error codes.
func ledgerError(err error) error {
	var appErr *apperror.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, ports.ErrLedgerInsufficientFunds):
		return apperror.ErrInsufficientBalance()
	case errors.Is(err, ports.ErrLedgerUnauthorized):
		return apperror.ErrUnauthorized()
	case errors.Is(err, ports.ErrLedgerMintNotFound):
		return apperror.ErrProgramNotInitialized()
	default:
		return apperror.ErrLedgerFailure(err)
	}
}

// lockError reports a lock wait that hit the server's lock_timeout as
// SYS_002 and anything else as a database error.
func lockError(what string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "55P03" {
		return apperror.ErrLockTimeout(fmt.Errorf("%s: %w", what, err))
	}
	return apperror.ErrDatabaseError(fmt.Errorf("%s: %w", what, err))
}
