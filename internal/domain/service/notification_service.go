package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrInvalidPushToken marks a send that failed because the token is no
// longer valid for the transport.
var ErrInvalidPushToken = errors.New("push token invalid or unregistered")

// PushService delivers a single push notification.
type PushService interface {
	// SendSingleNotification sends one message to one token. Errors caused
	// by a dead token wrap ErrInvalidPushToken.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
