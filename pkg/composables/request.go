package composables

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/TheEightboys/hsehubfinal-sub002/pkg/constants"
)

var (
	ErrNoCompanyID = errors.New("no company id found in context")
)

// Actor identifies the human behind a request. Authentication itself is an
// external collaborator; the actor arrives resolved on trusted headers.
type Actor struct {
	Email string
	Role  string
}

func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

func UseLogger(ctx context.Context) logrus.FieldLogger {
	logger := ctx.Value(constants.LoggerKey)
	if logger == nil {
		return logrus.StandardLogger()
	}
	return logger.(logrus.FieldLogger)
}

func WithCompanyID(ctx context.Context, companyID uuid.UUID) context.Context {
	return context.WithValue(ctx, constants.CompanyIDKey, companyID)
}

func UseCompanyID(ctx context.Context) (uuid.UUID, error) {
	companyID := ctx.Value(constants.CompanyIDKey)
	if companyID == nil {
		return uuid.Nil, ErrNoCompanyID
	}
	return companyID.(uuid.UUID), nil
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, constants.ActorKey, actor)
}

func UseActor(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(constants.ActorKey).(Actor)
	return actor, ok
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, constants.RequestIDKey, id)
}

func UseRequestID(ctx context.Context) string {
	id, _ := ctx.Value(constants.RequestIDKey).(string)
	return id
}
