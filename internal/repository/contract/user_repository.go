package contract

import (
	"context"

	"github.com/shreyansh1410/aiNotes/internal/entity"
	"github.com/shreyansh1410/aiNotes/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
