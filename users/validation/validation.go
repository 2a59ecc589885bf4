package validation

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	zxcvbn "github.com/nbutton23/zxcvbn-go"

	"github.com/hirelink/hirelink-api/users/models"
)

const (
	usernameMaxLength = 55
	nameMaxLength     = 55
	passwordMinLength = 6
	passwordMaxLength = 55
	photoMaxLength    = 500

	// minPasswordScore is the weakest zxcvbn strength accepted.
	minPasswordScore = 2
)

// ValidateCreateUserRequest returns the list of violations, empty when the
// payload is valid.
func ValidateCreateUserRequest(req *models.CreateUserRequest) []string {
	var violations []string

	if strings.TrimSpace(req.Username) == "" {
		violations = append(violations, "username is required")
	} else {
		if len(req.Username) > usernameMaxLength {
			violations = append(violations, fmt.Sprintf("username cannot exceed %d characters", usernameMaxLength))
		}
		if strings.Contains(req.Username, " ") {
			violations = append(violations, "username cannot contain spaces")
		}
	}

	if req.Password == "" {
		violations = append(violations, "password is required")
	} else {
		violations = append(violations, validatePassword(req.Password)...)
	}

	if strings.TrimSpace(req.FirstName) == "" {
		violations = append(violations, "first_name is required")
	} else if len(req.FirstName) > nameMaxLength {
		violations = append(violations, fmt.Sprintf("first_name cannot exceed %d characters", nameMaxLength))
	}

	if strings.TrimSpace(req.LastName) == "" {
		violations = append(violations, "last_name is required")
	} else if len(req.LastName) > nameMaxLength {
		violations = append(violations, fmt.Sprintf("last_name cannot exceed %d characters", nameMaxLength))
	}

	if strings.TrimSpace(req.Email) == "" {
		violations = append(violations, "email is required")
	} else if !isValidEmail(req.Email) {
		violations = append(violations, "invalid email format")
	}

	violations = append(violations, validatePhotoURL(req.PhotoURL)...)

	return violations
}

// ValidateUpdateUserRequest validates only the fields present in a partial
// update.
func ValidateUpdateUserRequest(req *models.UpdateUserRequest) []string {
	var violations []string

	if req.Password != nil {
		if *req.Password == "" {
			violations = append(violations, "password cannot be empty")
		} else {
			violations = append(violations, validatePassword(*req.Password)...)
		}
	}

	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			violations = append(violations, "first_name cannot be empty or whitespace only")
		} else if len(*req.FirstName) > nameMaxLength {
			violations = append(violations, fmt.Sprintf("first_name cannot exceed %d characters", nameMaxLength))
		}
	}

	if req.LastName != nil {
		if strings.TrimSpace(*req.LastName) == "" {
			violations = append(violations, "last_name cannot be empty or whitespace only")
		} else if len(*req.LastName) > nameMaxLength {
			violations = append(violations, fmt.Sprintf("last_name cannot exceed %d characters", nameMaxLength))
		}
	}

	if req.Email != nil && !isValidEmail(*req.Email) {
		violations = append(violations, "invalid email format")
	}

	violations = append(violations, validatePhotoURL(req.PhotoURL)...)

	return violations
}

func validatePassword(password string) []string {
	var violations []string

	if len(password) < passwordMinLength {
		violations = append(violations, fmt.Sprintf("password must be at least %d characters", passwordMinLength))
	}
	if len(password) > passwordMaxLength {
		violations = append(violations, fmt.Sprintf("password cannot exceed %d characters", passwordMaxLength))
	}
	if len(violations) == 0 {
		if zxcvbn.PasswordStrength(password, nil).Score < minPasswordScore {
			violations = append(violations, "password is too weak")
		}
	}

	return violations
}

func validatePhotoURL(photoURL *string) []string {
	var violations []string

	if photoURL != nil && *photoURL != "" {
		if !isValidURL(*photoURL) {
			violations = append(violations, "invalid photo_url format")
		}
		if len(*photoURL) > photoMaxLength {
			violations = append(violations, fmt.Sprintf("photo_url cannot exceed %d characters", photoMaxLength))
		}
	}

	return violations
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func isValidURL(urlStr string) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}
