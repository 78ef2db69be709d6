package service

// ViewCache caches rendered views keyed by their path, e.g. "/buildings" or
// "/equipment/<id>". Mutating use cases decide which paths a change affects
// and invalidate them; how the cache stores entries is an infrastructure
// concern.
type ViewCache interface {
	// Get returns the cached payload for a path, if present.
	Get(path string) (any, bool)

	// Set stores a payload for a path until it is invalidated or expires.
	Set(path string, payload any)

	// Invalidate drops the cached payloads for the given paths. Unknown
	// paths are ignored.
	Invalidate(paths ...string)
}
