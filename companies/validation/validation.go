package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hirelink/hirelink-api/companies/models"
)

const (
	handleMaxLength = 40
	nameMaxLength   = 100
	logoMaxLength   = 500
)

// ValidateCreateCompanyRequest returns the list of violations, empty when
// the payload is valid.
func ValidateCreateCompanyRequest(req *models.CreateCompanyRequest) []string {
	var violations []string

	if strings.TrimSpace(req.Handle) == "" {
		violations = append(violations, "handle is required")
	} else {
		if len(req.Handle) > handleMaxLength {
			violations = append(violations, fmt.Sprintf("handle cannot exceed %d characters", handleMaxLength))
		}
		if strings.Contains(req.Handle, " ") {
			violations = append(violations, "handle cannot contain spaces")
		}
	}

	if strings.TrimSpace(req.Name) == "" {
		violations = append(violations, "name is required")
	} else if len(req.Name) > nameMaxLength {
		violations = append(violations, fmt.Sprintf("name cannot exceed %d characters", nameMaxLength))
	}

	violations = append(violations, validateOptionalFields(req.NumEmployees, req.LogoURL)...)

	return violations
}

// ValidateUpdateCompanyRequest validates only the fields present in a
// partial update.
func ValidateUpdateCompanyRequest(req *models.UpdateCompanyRequest) []string {
	var violations []string

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			violations = append(violations, "name cannot be empty or whitespace only")
		} else if len(*req.Name) > nameMaxLength {
			violations = append(violations, fmt.Sprintf("name cannot exceed %d characters", nameMaxLength))
		}
	}

	violations = append(violations, validateOptionalFields(req.NumEmployees, req.LogoURL)...)

	return violations
}

func validateOptionalFields(numEmployees *int, logoURL *string) []string {
	var violations []string

	if numEmployees != nil && *numEmployees < 0 {
		violations = append(violations, "num_employees cannot be negative")
	}

	if logoURL != nil && *logoURL != "" {
		if !isValidURL(*logoURL) {
			violations = append(violations, "invalid logo_url format")
		}
		if len(*logoURL) > logoMaxLength {
			violations = append(violations, fmt.Sprintf("logo_url cannot exceed %d characters", logoMaxLength))
		}
	}

	return violations
}

func isValidURL(urlStr string) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}
