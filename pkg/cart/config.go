package cart

// Config holds cart manager configuration.
type Config struct {
	// StorageKey is the persistence key holding the serialized line list.
	StorageKey string `env:"CART_STORAGE_KEY" envDefault:"cart"`
}

// DefaultConfig returns default cart configuration.
func DefaultConfig() Config {
	return Config{
		StorageKey: "cart",
	}
}
