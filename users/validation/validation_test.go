package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirelink/hirelink-api/users/models"
)

func strPtr(s string) *string { return &s }

func validCreateRequest() models.CreateUserRequest {
	return models.CreateUserRequest{
		Username:  "testusername1",
		Password:  "Str0ng-Passw0rd",
		FirstName: "Test",
		LastName:  "User",
		Email:     "test@example.com",
	}
}

func TestValidateCreateUserRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.CreateUserRequest)
		wantAny bool
	}{
		{"valid", func(r *models.CreateUserRequest) {}, false},
		{"missing username", func(r *models.CreateUserRequest) { r.Username = "" }, true},
		{"username with spaces", func(r *models.CreateUserRequest) { r.Username = "bad name" }, true},
		{"missing password", func(r *models.CreateUserRequest) { r.Password = "" }, true},
		{"short password", func(r *models.CreateUserRequest) { r.Password = "abc" }, true},
		{"weak password", func(r *models.CreateUserRequest) { r.Password = "password" }, true},
		{"bad email", func(r *models.CreateUserRequest) { r.Email = "not-an-email" }, true},
		{"missing first name", func(r *models.CreateUserRequest) { r.FirstName = "" }, true},
		{"bad photo url", func(r *models.CreateUserRequest) { r.PhotoURL = strPtr("not a url") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			violations := ValidateCreateUserRequest(&req)
			if tt.wantAny {
				assert.NotEmpty(t, violations)
			} else {
				assert.Empty(t, violations)
			}
		})
	}
}

func TestValidateUpdateUserRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.UpdateUserRequest
		wantAny bool
	}{
		{"empty update is structurally fine", models.UpdateUserRequest{}, false},
		{"valid fields", models.UpdateUserRequest{FirstName: strPtr("New"), Email: strPtr("new@example.com")}, false},
		{"weak password", models.UpdateUserRequest{Password: strPtr("password")}, true},
		{"whitespace first name", models.UpdateUserRequest{FirstName: strPtr("  ")}, true},
		{"bad email", models.UpdateUserRequest{Email: strPtr("nope")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := ValidateUpdateUserRequest(&tt.req)
			if tt.wantAny {
				assert.NotEmpty(t, violations)
			} else {
				assert.Empty(t, violations)
			}
		})
	}
}
