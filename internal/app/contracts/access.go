package contracts

import (
	"context"
	"pidelocal-service/internal/app/models"
)

type Authorizer interface {
	Authorize(ctx context.Context, identity models.Identity, slug string) models.AccessDecision
}
