package cache

// hitResult is the outcome of a cache lookup. claimed means the caller now
// owns the (invalid) entry and is responsible for setting or deleting it.
type hitResult[T any] struct {
	data    T
	valid   bool
	claimed bool
}

type Cache[T any] interface {
	getOrClaim(key string) hitResult[T]
	set(key string, data T)
	delete(key string)
	wait()
}
