// Package constants collects configuration values shared across layers.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Payment modes. Only the simulation exists.
const (
	PaymentModeSimulated = "simulated"
)

// Context keys set by the auth middleware.
const (
	ContextKeyUserID = "userID"
	ContextKeyRoles  = "roles"
)
