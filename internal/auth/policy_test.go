package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizeOwnerMutation(t *testing.T) {
	tests := []struct {
		name      string
		principal Principal
		owner     string
		allowed   bool
	}{
		{"owner", Principal{UserID: 1, Email: "t@x.com"}, "t@x.com", true},
		{"different user", Principal{UserID: 2, Email: "u@x.com"}, "t@x.com", false},
		{"case differs", Principal{UserID: 1, Email: "T@x.com"}, "t@x.com", false},
		{"anonymous", Principal{}, "t@x.com", false},
		{"anonymous against empty owner", Principal{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeOwnerMutation(tt.principal, tt.owner)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrForbidden)
			}
		})
	}
}
