package service

import (
	"context"

	"critica/internal/domain/entity"
)

// CodeService issues and verifies one-time confirmation codes for the
// passwordless signup flow. Codes are short-lived and single-use; issuing a
// new code invalidates any previous one for the same user.
type CodeService interface {
	// IssueCode generates a fresh confirmation code for the user and stores
	// it for later verification. The raw code is returned exactly once, for
	// out-of-band delivery.
	IssueCode(ctx context.Context, user *entity.User) (string, error)

	// VerifyCode reports whether the code matches the user's outstanding
	// confirmation code, consuming it on success.
	VerifyCode(ctx context.Context, username, code string) (bool, error)
}

// CodeSender dispatches a confirmation code to the user out-of-band.
// Transport details (mail provider, templates) are not this core's concern.
type CodeSender interface {
	SendCode(ctx context.Context, user *entity.User, code string) error
}
