package x

// Validater is any type that can check its own content. Persisted
// models and incoming messages implement it so buckets and handlers
// can reject broken data before it is stored or acted on.
type Validater interface {
	Validate() error
}
