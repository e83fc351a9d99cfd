package auth

import (
	"regexp"
	"strings"

	"github.com/estivensal7/Moment-API/internal/common"
	"github.com/estivensal7/Moment-API/internal/models"
)

var emailRegex = regexp.MustCompile(`^([0-9a-zA-Z]([-.\w]*[0-9a-zA-Z])*@([0-9a-zA-Z][-\w]*[0-9a-zA-Z]\.)+[a-zA-Z]{2,9})$`)

// ValidateRegister checks a registration request and returns a
// ValidationError carrying every failing field, or nil if the input is
// well formed.
func ValidateRegister(req *models.RegisterRequest) *common.ValidationError {
	fields := map[string]string{}

	if strings.TrimSpace(req.Username) == "" {
		fields["username"] = "Username must not be empty."
	}
	if strings.TrimSpace(req.Email) == "" {
		fields["email"] = "Email must not be empty."
	} else if !emailRegex.MatchString(req.Email) {
		fields["email"] = "Email must be a valid email address."
	}
	if req.Password == "" {
		fields["password"] = "Password must not be empty."
	} else if req.Password != req.ConfirmPassword {
		fields["confirm_password"] = "Passwords must match."
	}
	if req.PrivacyStatus != models.PrivacyPublic && req.PrivacyStatus != models.PrivacyPrivate {
		fields["privacy_status"] = "Privacy status must be 'public' or 'private'."
	}

	if len(fields) > 0 {
		return &common.ValidationError{Fields: fields}
	}
	return nil
}

// ValidateLogin checks a login request the same way.
func ValidateLogin(req *models.LoginRequest) *common.ValidationError {
	fields := map[string]string{}

	if strings.TrimSpace(req.Username) == "" {
		fields["username"] = "Username must not be empty."
	}
	if req.Password == "" {
		fields["password"] = "Password must not be empty."
	}

	if len(fields) > 0 {
		return &common.ValidationError{Fields: fields}
	}
	return nil
}
