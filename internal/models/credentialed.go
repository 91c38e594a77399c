package models

import "time"

// Credentialed is the common surface of the two account models. The
// credential service works against this interface so login and the
// password-reset flow are implemented once.
type Credentialed interface {
	GetID() string
	GetName() string
	GetEmail() string
	GetImage() string
	GetRole() string
	GetPasswordHash() string
	SetPasswordHash(hash string)
	SetResetToken(digest string, expiresAt time.Time)
	ClearResetToken()
}
