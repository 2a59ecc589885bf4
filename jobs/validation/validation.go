package validation

import (
	"fmt"
	"strings"

	"github.com/hirelink/hirelink-api/jobs/models"
)

const titleMaxLength = 100

// ValidateCreateJobRequest returns the list of violations, empty when the
// payload is valid.
func ValidateCreateJobRequest(req *models.CreateJobRequest) []string {
	var violations []string

	if strings.TrimSpace(req.Title) == "" {
		violations = append(violations, "title is required")
	} else if len(req.Title) > titleMaxLength {
		violations = append(violations, fmt.Sprintf("title cannot exceed %d characters", titleMaxLength))
	}

	if strings.TrimSpace(req.CompanyHandle) == "" {
		violations = append(violations, "company_handle is required")
	}

	violations = append(violations, validateOptionalFields(req.Salary, req.Equity)...)

	return violations
}

// ValidateUpdateJobRequest validates only the fields present in a partial
// update.
func ValidateUpdateJobRequest(req *models.UpdateJobRequest) []string {
	var violations []string

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			violations = append(violations, "title cannot be empty or whitespace only")
		} else if len(*req.Title) > titleMaxLength {
			violations = append(violations, fmt.Sprintf("title cannot exceed %d characters", titleMaxLength))
		}
	}

	if req.CompanyHandle != nil && strings.TrimSpace(*req.CompanyHandle) == "" {
		violations = append(violations, "company_handle cannot be empty or whitespace only")
	}

	violations = append(violations, validateOptionalFields(req.Salary, req.Equity)...)

	return violations
}

func validateOptionalFields(salary, equity *float64) []string {
	var violations []string

	if salary != nil && *salary < 0 {
		violations = append(violations, "salary cannot be negative")
	}

	if equity != nil && (*equity < 0 || *equity > 1) {
		violations = append(violations, "equity must be between 0 and 1")
	}

	return violations
}
