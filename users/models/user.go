package models

// User represents a user row. The password column holds a bcrypt hash and
// never serializes.
type User struct {
	Username  string  `json:"username" db:"username"`
	Password  string  `json:"-" db:"password"`
	FirstName string  `json:"first_name" db:"first_name"`
	LastName  string  `json:"last_name" db:"last_name"`
	Email     string  `json:"email" db:"email"`
	PhotoURL  *string `json:"photo_url" db:"photo_url"`
	IsAdmin   bool    `json:"is_admin" db:"is_admin"`
}

// UserSummary is the projection used by list responses.
type UserSummary struct {
	Username  string `json:"username" db:"username"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Email     string `json:"email" db:"email"`
}

// UserApplication is a job application attached to a user record.
type UserApplication struct {
	Title         string `json:"title" db:"title"`
	CompanyHandle string `json:"company_handle" db:"company_handle"`
	State         string `json:"state" db:"state"`
}

// UserDetails is a user with their job applications attached.
type UserDetails struct {
	User
	Jobs []UserApplication `json:"jobs"`
}

// UserCredentials carries the stored secret material for a login check.
type UserCredentials struct {
	Username string `db:"username"`
	Password string `db:"password"`
	IsAdmin  bool   `db:"is_admin"`
}

type CreateUserRequest struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	PhotoURL  *string `json:"photo_url,omitempty"`
}

// UpdateUserRequest carries the optional fields of a partial update. The
// username and is_admin flags are immutable through this surface and
// deliberately absent.
type UpdateUserRequest struct {
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	PhotoURL  *string `json:"photo_url,omitempty"`
}
