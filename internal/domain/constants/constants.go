// Package constants holds string values shared between config and wiring.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderRedis  = "redis"
)

// Attribute keys carried on published incident events.
const (
	AttrIncidentID = "incident_id"
	AttrRequestID  = "request_id"
)
