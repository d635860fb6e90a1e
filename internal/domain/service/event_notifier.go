package service

import "context"

// EventNotifier tells the external event service that an account is going
// away so hosted events can be cancelled and participations removed.
type EventNotifier interface {
	// UserLeaving announces the deletion of the given account. The call is
	// best-effort; the account deletion does not depend on its outcome.
	UserLeaving(ctx context.Context, userID, token string) error
}
