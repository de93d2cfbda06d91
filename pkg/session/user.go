package session

// User is the profile record the session manager owns. JSON names match the
// documents the mobile client historically persisted under the user-data key,
// so records written by older builds still decode.
type User struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Username    string  `json:"username,omitempty"`
	Avatar      string  `json:"avatar,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	MemberSince int     `json:"memberSince,omitempty"`
}

// Valid reports whether the record carries the minimum fields the UI needs.
// Persisted records failing this check are treated as corrupt and re-resolved.
func (u User) Valid() bool {
	return u.ID > 0 && u.Name != "" && u.Email != ""
}

// PlaceholderUser returns the fixed demo profile used when no persisted
// profile exists and the remote resolver is unavailable. Override with
// WithPlaceholder.
func PlaceholderUser() User {
	return User{
		ID:          1,
		Name:        "Nguyễn Văn A",
		Email:       "user@example.com",
		Username:    "nguyenvana123",
		Avatar:      "https://randomuser.me/api/portraits/men/32.jpg",
		Rating:      4.8,
		MemberSince: 2022,
	}
}
