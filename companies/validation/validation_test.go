package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirelink/hirelink-api/companies/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestValidateCreateCompanyRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        *models.CreateCompanyRequest
		violations int
	}{
		{
			name:       "valid minimal",
			req:        &models.CreateCompanyRequest{Handle: "rithm", Name: "Rithm School"},
			violations: 0,
		},
		{
			name: "valid full",
			req: &models.CreateCompanyRequest{
				Handle:       "rithm",
				Name:         "Rithm School",
				NumEmployees: intPtr(50),
				Description:  strPtr("coding school"),
				LogoURL:      strPtr("https://example.com/logo.png"),
			},
			violations: 0,
		},
		{
			name:       "missing handle",
			req:        &models.CreateCompanyRequest{Name: "Rithm School"},
			violations: 1,
		},
		{
			name:       "missing name",
			req:        &models.CreateCompanyRequest{Handle: "rithm"},
			violations: 1,
		},
		{
			name:       "handle with spaces",
			req:        &models.CreateCompanyRequest{Handle: "bad handle", Name: "X"},
			violations: 1,
		},
		{
			name:       "handle too long",
			req:        &models.CreateCompanyRequest{Handle: strings.Repeat("a", 41), Name: "X"},
			violations: 1,
		},
		{
			name: "negative employees and bad logo",
			req: &models.CreateCompanyRequest{
				Handle:       "rithm",
				Name:         "Rithm School",
				NumEmployees: intPtr(-1),
				LogoURL:      strPtr("not-a-url"),
			},
			violations: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateCreateCompanyRequest(tt.req)
			assert.Len(t, got, tt.violations)
		})
	}
}

func TestValidateUpdateCompanyRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        *models.UpdateCompanyRequest
		violations int
	}{
		{
			name:       "empty update is structurally valid",
			req:        &models.UpdateCompanyRequest{},
			violations: 0,
		},
		{
			name:       "valid name change",
			req:        &models.UpdateCompanyRequest{Name: strPtr("New Name")},
			violations: 0,
		},
		{
			name:       "whitespace name",
			req:        &models.UpdateCompanyRequest{Name: strPtr("   ")},
			violations: 1,
		},
		{
			name:       "negative employees",
			req:        &models.UpdateCompanyRequest{NumEmployees: intPtr(-5)},
			violations: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateUpdateCompanyRequest(tt.req)
			assert.Len(t, got, tt.violations)
		})
	}
}
