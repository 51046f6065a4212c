package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Document collections / tables
const (
	CollectionShops    = "shops"
	CollectionProducts = "products"
	CollectionOffers   = "offers"
	CollectionLogs     = "logs"
)

// BlobPrefixProducts is the object prefix for product images.
const BlobPrefixProducts = "products"

// EnvLocal is the env.env value of a developer machine.
const EnvLocal = "local"
