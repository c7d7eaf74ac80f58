package domain

import "time"

// User id is a string so external identities can be carried as-is; a
// uuid is assigned when the caller supplies none.
type User struct {
	ID     string
	Name   string
	Email  *string
	Avatar *string
}

type CreateUserInput struct {
	ID     string
	Name   string
	Email  *string
	Avatar *string
}

type Notification struct {
	ID        int64
	Title     string
	Body      string
	TaskID    *int64
	Read      bool
	CreatedAt time.Time
}

type CreateNotificationInput struct {
	Title  string
	Body   string
	TaskID *int64
}
