package users

import (
	"strings"

	passwordvalidator "github.com/wagslane/go-password-validator"

	"github.com/pingreng/pingr-server/internal/shared"
)

// minPasswordEntropy roughly corresponds to an 8+ character password mixing
// cases and digits.
const minPasswordEntropy = 40

func validateUsername(username string) error {
	if len(username) < 5 || len(username) > 100 {
		return shared.Errorf(shared.ErrValidation, "Username must be between 5 and 100 characters.")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) < 5 || len(email) > 255 || !strings.Contains(email, "@") {
		return shared.Errorf(shared.ErrValidation, "A valid email address is required.")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 || len(password) > 50 {
		return shared.Errorf(shared.ErrValidation, "Password must be between 8 and 50 characters.")
	}
	if err := passwordvalidator.Validate(password, minPasswordEntropy); err != nil {
		return shared.Errorf(shared.ErrValidation, "Password is too weak: %s.", err.Error())
	}
	return nil
}
