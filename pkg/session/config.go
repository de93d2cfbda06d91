package session

// Config holds session manager configuration. The storage keys default to
// the names the mobile client has always used, so previously persisted
// state keeps restoring.
type Config struct {
	// TokenKey is the persistence key holding the bearer token.
	TokenKey string `env:"SESSION_TOKEN_KEY" envDefault:"access_token"`

	// UserDataKey is the persistence key holding the serialized profile.
	UserDataKey string `env:"SESSION_USER_DATA_KEY" envDefault:"user_data"`
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		TokenKey:    "access_token",
		UserDataKey: "user_data",
	}
}
