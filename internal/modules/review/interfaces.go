package review

import (
	"context"

	"pawconnect/internal/domain"
	"pawconnect/internal/flow"
)

type ReviewStore interface {
	flow.StageSource
	AddReview(ctx context.Context, r domain.Review) error
}
