package cont

import (
	"context"

	"OchiqMuloqot/entity"
)

type contextKey string

const operatorKey contextKey = "operator"

// PutOperator stores the authenticated operator in the request context.
func PutOperator(ctx context.Context, op *entity.Operator) context.Context {
	return context.WithValue(ctx, operatorKey, op)
}

// GetOperator returns the operator placed by the authenticate middleware.
func GetOperator(ctx context.Context) (*entity.Operator, bool) {
	op, ok := ctx.Value(operatorKey).(*entity.Operator)
	return op, ok
}
