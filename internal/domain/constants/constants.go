// Package constants defines configuration values shared across layers.
package constants

const (
	// EnvDevelop is the env.env value used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the env.env value used in production.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal pushes events over HTTP to a local worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
