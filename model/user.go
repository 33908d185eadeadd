package model

import "time"

// UserEntity represents the users table entity. Password holds the bcrypt
// digest and is never serialized in a response.
type UserEntity struct {
	ID                uint64     `db:"id" bson:"_id" json:"id"`
	FirstName         string     `db:"first_name" bson:"first_name" json:"firstName"`
	LastName          string     `db:"last_name" bson:"last_name" json:"lastName"`
	Nickname          string     `db:"nickname" bson:"nickname" json:"nickname"`
	Email             string     `db:"email" bson:"email" json:"email"`
	Password          string     `db:"password" bson:"password" json:"-"`
	Phone             string     `db:"phone" bson:"phone" json:"phone"`
	Gender            string     `db:"gender" bson:"gender" json:"gender"`
	DateOfBirth       string     `db:"date_of_birth" bson:"date_of_birth" json:"dateOfBirth,omitempty"`
	BirthCity         string     `db:"birth_city" bson:"birth_city" json:"birthCity,omitempty"`
	BirthState        string     `db:"birth_state" bson:"birth_state" json:"birthState,omitempty"`
	BirthCountry      string     `db:"birth_country" bson:"birth_country" json:"birthCountry,omitempty"`
	CurrentCity       string     `db:"current_city" bson:"current_city" json:"currentCity"`
	CurrentState      string     `db:"current_state" bson:"current_state" json:"currentState"`
	CurrentCountry    string     `db:"current_country" bson:"current_country" json:"currentCountry"`
	Gotra             string     `db:"gotra" bson:"gotra" json:"gotra"`
	Pravara           string     `db:"pravara" bson:"pravara" json:"pravara"`
	Community         string     `db:"community" bson:"community" json:"community"`
	Occupation        string     `db:"occupation" bson:"occupation" json:"occupation,omitempty"`
	Company           string     `db:"company" bson:"company" json:"company,omitempty"`
	Industry          string     `db:"industry" bson:"industry" json:"industry,omitempty"`
	PrimaryLanguage   string     `db:"primary_language" bson:"primary_language" json:"primaryLanguage"`
	SecondaryLanguage string     `db:"secondary_language" bson:"secondary_language" json:"secondaryLanguage,omitempty"`
	Bio               string     `db:"bio" bson:"bio" json:"bio,omitempty"`
	HideEmail         bool       `db:"hide_email" bson:"hide_email" json:"hideEmail"`
	HidePhone         bool       `db:"hide_phone" bson:"hide_phone" json:"hidePhone"`
	HideDob           bool       `db:"hide_dob" bson:"hide_dob" json:"hideDob"`
	ProfileCompleted  bool       `db:"profile_completed" bson:"profile_completed" json:"profileCompleted"`
	CreatedAt         time.Time  `db:"created_at" bson:"created_at" json:"createdAt"`
	UpdatedAt         *time.Time `db:"updated_at" bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
}

// RegisterRequest carries the minimal field set for account creation.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Nickname  string `json:"nickname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Phone     string `json:"phone" validate:"required"`
}

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both register and login. RedirectTo tells the
// client where to route next: the profile page when onboarding is unfinished,
// the dashboard otherwise.
type AuthResponse struct {
	User       *UserEntity `json:"user"`
	Token      string      `json:"token"`
	RedirectTo string      `json:"redirectTo"`
}

// CurrentUserResponse wraps the authenticated user for GET /api/auth/me.
type CurrentUserResponse struct {
	User *UserEntity `json:"user"`
}

// ProfileResponse wraps a profile read.
type ProfileResponse struct {
	Profile *UserEntity `json:"profile"`
}

// ProfileUpdateRequest is a partial update: nil means "leave unchanged", a
// pointer to the empty string clears the field. Password, timestamps and the
// derived profileCompleted flag are deliberately absent so clients cannot
// supply them.
type ProfileUpdateRequest struct {
	FirstName         *string `json:"firstName"`
	LastName          *string `json:"lastName"`
	Nickname          *string `json:"nickname"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Phone             *string `json:"phone"`
	Gender            *string `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth       *string `json:"dateOfBirth"`
	BirthCity         *string `json:"birthCity"`
	BirthState        *string `json:"birthState"`
	BirthCountry      *string `json:"birthCountry"`
	CurrentCity       *string `json:"currentCity"`
	CurrentState      *string `json:"currentState"`
	CurrentCountry    *string `json:"currentCountry"`
	Gotra             *string `json:"gotra"`
	Pravara           *string `json:"pravara"`
	Community         *string `json:"community"`
	Occupation        *string `json:"occupation"`
	Company           *string `json:"company"`
	Industry          *string `json:"industry"`
	PrimaryLanguage   *string `json:"primaryLanguage"`
	SecondaryLanguage *string `json:"secondaryLanguage"`
	Bio               *string `json:"bio"`
	HideEmail         *bool   `json:"hideEmail"`
	HidePhone         *bool   `json:"hidePhone"`
	HideDob           *bool   `json:"hideDob"`
}

// ProfileUpdateResponse carries the refreshed profile. RedirectTo is
// "/dashboard" once the profile became complete, null otherwise.
type ProfileUpdateResponse struct {
	Profile    *UserEntity `json:"profile"`
	Message    string      `json:"message"`
	RedirectTo *string     `json:"redirectTo"`
}

// CompletionResponse is returned by the check-completion endpoint.
type CompletionResponse struct {
	IsComplete bool    `json:"isComplete"`
	RedirectTo *string `json:"redirectTo"`
}

// DashboardResponse is the placeholder payload of the gated dashboard.
type DashboardResponse struct {
	Message string `json:"message"`
}
