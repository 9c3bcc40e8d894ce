package domain

import "strings"

// Actor пользователь, от имени которого выполняется запрос
type Actor struct {
	Email string
	Admin bool
}

// Is returns true if the actor has the given email
func (a Actor) Is(email string) bool {
	return a.Email != "" && strings.EqualFold(strings.TrimSpace(a.Email), strings.TrimSpace(email))
}

// CanManage returns true if the actor is the owner of the resource or an admin
func (a Actor) CanManage(ownerEmail string) bool {
	return a.Admin || a.Is(ownerEmail)
}
