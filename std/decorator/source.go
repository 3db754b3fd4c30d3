package decorator

// Iterator is a lazy forward-only sequence. Next returns false when the
// sequence is exhausted, and it must keep returning false after that.
type Iterator[T any] interface {
	Next() (T, bool)
}

// IteratorFunc is an adapter to use a function as an Iterator.
type IteratorFunc[T any] func() (T, bool)

func (f IteratorFunc[T]) Next() (T, bool) {
	return f()
}

// FromChan returns an Iterator which receives from ch until it's closed.
func FromChan[T any](ch <-chan T) Iterator[T] {
	return IteratorFunc[T](func() (T, bool) {
		v, ok := <-ch
		return v, ok
	})
}

// IterateSlice returns a forward-only Iterator over items. The slice is not
// copied.
func IterateSlice[T any](items []T) Iterator[T] {
	i := 0
	return IteratorFunc[T](func() (v T, ok bool) {
		if i >= len(items) {
			return v, false
		}
		v = items[i]
		i++
		return v, true
	})
}

// Source is a sequence which pagination can be applied to. The only
// implementations are Items and Stream.
type Source[T any] interface {
	paginate(p Paginate) ([]T, Page)
}

// Items is a materialized source: the whole collection is in memory and its
// length is known.
type Items[T any] []T

func (items Items[T]) paginate(p Paginate) ([]T, Page) {
	n := len(items)
	start, end := window(p, n)
	results := make([]T, end-start)
	copy(results, items[start:end])
	remaining := n - end
	return results, Page{Count: len(results), Offset: p.Offset, Remaining: &remaining}
}

// Stream is a lazy source. Applying pagination to it reads at most
// offset+limit items from the Iterator and leaves the rest unread.
type Stream[T any] struct {
	Iterator[T]
}

// NewStream returns a Stream reading from it.
func NewStream[T any](it Iterator[T]) Stream[T] {
	return Stream[T]{Iterator: it}
}

func (s Stream[T]) paginate(p Paginate) ([]T, Page) {
	results := make([]T, 0)
	exhausted := false
	for i := 0; i < p.Offset; i++ {
		if _, ok := s.Next(); !ok {
			exhausted = true
			break
		}
	}
	for !exhausted && len(results) < p.Limit {
		v, ok := s.Next()
		if !ok {
			break
		}
		results = append(results, v)
	}
	return results, Page{Count: len(results), Offset: p.Offset}
}

// Apply applies p to the source and returns the results and the Page
// decorator describing them.
func Apply[T any](p Paginate, src Source[T]) ([]T, Page) {
	return src.paginate(p)
}

// ApplyOptional is Apply for messages where the ~paginate decorator is
// optional. Without it all items are returned and the page is nil.
func ApplyOptional[T any](p *Paginate, src Source[T]) ([]T, *Page) {
	if p == nil {
		return collect(src), nil
	}
	results, page := src.paginate(*p)
	return results, &page
}

func collect[T any](src Source[T]) []T {
	switch s := src.(type) {
	case Items[T]:
		results := make([]T, len(s))
		copy(results, s)
		return results
	case Stream[T]:
		results := make([]T, 0)
		for v, ok := s.Next(); ok; v, ok = s.Next() {
			results = append(results, v)
		}
		return results
	}
	return nil
}

// PageItems applies the optional pagination to a materialized slice.
func PageItems[T any](p *Paginate, items []T) ([]T, *Page) {
	return ApplyOptional[T](p, Items[T](items))
}

// WithPaginate is embedded in the messages querying a paginated object.
type WithPaginate struct {
	Paginate *Paginate `json:"~paginate,omitempty"`
}

// WithPage is embedded in the messages containing a paginated object.
type WithPage struct {
	Page *Page `json:"~page,omitempty"`
}
