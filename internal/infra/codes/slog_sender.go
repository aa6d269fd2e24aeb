package codes

import (
	"context"
	"log/slog"

	"critica/internal/domain/entity"
	"critica/internal/domain/service"
)

// slogSender is the development CodeSender: it writes the code to the log
// instead of dispatching a real email. A mail-backed sender can replace it
// behind the same interface.
type slogSender struct {
	logger *slog.Logger
}

// NewSlogSender is the constructor for slogSender.
func NewSlogSender(logger *slog.Logger) service.CodeSender {
	return &slogSender{logger: logger}
}

func (s *slogSender) SendCode(_ context.Context, user *entity.User, code string) error {
	s.logger.Info("Confirmation code dispatched",
		slog.String("username", user.Username),
		slog.String("email", user.Email),
		slog.String("code", code),
	)

	return nil
}
