package strategy

// fetchOnce is a memoized asynchronous fetch of a single snapshot field.
// While the field is empty every attempt issues the query again; the answer
// is committed only if the field is still empty when it arrives, so the first
// writer wins and a late answer never clobbers a value that got there first.
type fetchOnce[T comparable] struct {
	store *store
	field field[T]
	query func(callback func(T))
}

func (f fetchOnce[T]) attempt() {
	if !empty(f.store, f.field) {
		return
	}

	f.query(func(v T) {
		fillOnce(f.store, f.field, v)
	})
}

// backfiller is implemented by every fetchOnce regardless of its value type.
type backfiller interface {
	attempt()
}
