package impl

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"critica/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "user-" + uuid.NewString()[:8],
		Email:    "u@example.com",
		Role:     role,
	}
}
