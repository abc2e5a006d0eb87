package state

import "github.com/spec-kit/incubtek-portal/internal/domain"

// PrependNotifications puts fresh records, in their given order, ahead of the existing list.
func PrependNotifications(list, fresh []domain.Notification) []domain.Notification {
	next := make([]domain.Notification, 0, len(list)+len(fresh))
	next = append(next, fresh...)
	return append(next, list...)
}
