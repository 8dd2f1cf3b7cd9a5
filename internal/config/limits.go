package config

const (
	// MaxProjectNameLength fits PostgreSQL VARCHAR(255).
	MaxProjectNameLength = 255

	// MaxDeveloperNameLength fits PostgreSQL VARCHAR(255).
	MaxDeveloperNameLength = 255

	// MaxAddressLength fits PostgreSQL VARCHAR(500).
	MaxAddressLength = 500

	// Username bounds
	MinUsernameLength = 3
	MaxUsernameLength = 50

	// MinPasswordLength applies to new passwords only
	MinPasswordLength = 6

	// MaxPasswordLength is the bcrypt input limit in bytes
	MaxPasswordLength = 72

	// RecentProjectsLimit is how many projects the dashboard shows
	RecentProjectsLimit = 5
)
