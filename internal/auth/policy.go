package auth

import "errors"

// ErrForbidden is returned when the principal does not own the resource it mutates.
var ErrForbidden = errors.New("access denied")

// AuthorizeOwnerMutation allows a mutation only when the principal's email is
// exactly the resource owner's email. The comparison is case-sensitive.
func AuthorizeOwnerMutation(p Principal, ownerEmail string) error {
	if p.Email == "" || p.Email != ownerEmail {
		return ErrForbidden
	}
	return nil
}
