package apiclient

import "github.com/vantrang/shopkit/pkg/validator"

// Product is a catalog entry as served by the remote API.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// validate rejects payloads that decoded structurally but carry unusable
// data, keeping bad records out of in-memory state.
func (p Product) validate() error {
	return validator.Apply(
		validator.RequiredNum("id", p.ID),
		validator.RequiredString("name", p.Name),
		validator.MinNum("price", p.Price, 0),
	)
}

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// Validate checks the input before it ever reaches the wire.
func (in ProductInput) Validate() error {
	return validator.Apply(
		validator.RequiredString("name", in.Name),
		validator.MinNum("price", in.Price, 0),
	)
}

// User is the profile record served by GET /users/me and embedded in login
// responses. Optional fields keep the wire names of the mobile client.
type User struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Username    string  `json:"username,omitempty"`
	Avatar      string  `json:"avatar,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	MemberSince int     `json:"memberSince,omitempty"`
}

func (u User) validate() error {
	return validator.Apply(
		validator.RequiredNum("id", u.ID),
		validator.RequiredString("name", u.Name),
	)
}

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate rejects incomplete credentials before any network call.
func (c Credentials) Validate() error {
	return validator.Apply(
		validator.RequiredString("email", c.Email),
		validator.ValidEmail("email", c.Email),
		validator.RequiredString("password", c.Password),
	)
}

// Registration is the sign-up form payload. ConfirmPassword is checked
// locally and never sent over the wire.
type Registration struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

// Validate rejects incomplete or mismatched registration data before any
// network call.
func (r Registration) Validate() error {
	return validator.Apply(
		validator.RequiredString("email", r.Email),
		validator.ValidEmail("email", r.Email),
		validator.RequiredString("password", r.Password),
		validator.MinLenString("password", r.Password, 6),
		validator.EqualStrings("confirm_password", r.ConfirmPassword, r.Password),
	)
}

// LoginResult is the response of POST /users/login. The user profile is
// optional; when absent the session manager resolves it separately.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user,omitempty"`
}

func (r LoginResult) validate() error {
	return validator.Apply(
		validator.RequiredString("access_token", r.AccessToken),
	)
}
