package decorator

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

var (
	// ErrNotImplemented is returned when pagination is applied to a value
	// that is neither a materialized sequence nor a lazy one.
	ErrNotImplemented = errors.New("paginate apply is not implemented for type")

	// ErrLimitMissing is returned when a ~paginate decorator has no limit.
	ErrLimitMissing = errors.New("paginate limit is required")
)

var validate = validator.New()

// Page is the ~page decorator for messages containing a paginated object.
// Remaining is nil when it cannot be known without draining the source.
type Page struct {
	Count     int  `json:"count"`
	Offset    int  `json:"offset"`
	Remaining *int `json:"remaining,omitempty"`
}

// RemainingCount returns the remaining item count and tells if it's known.
func (p Page) RemainingCount() (n int, ok bool) {
	if p.Remaining == nil {
		return 0, false
	}
	return *p.Remaining, true
}

func (p Page) String() string {
	if p.Remaining == nil {
		return fmt.Sprintf("count=%d offset=%d", p.Count, p.Offset)
	}
	return fmt.Sprintf("count=%d offset=%d remaining=%d",
		p.Count, p.Offset, *p.Remaining)
}

// Paginate is the ~paginate decorator for messages querying a paginated
// object. Offset defaults to zero when it's missing from the message.
type Paginate struct {
	Limit  int `json:"limit" validate:"gte=0"`
	Offset int `json:"offset" validate:"gte=0"`
}

// Validate checks that limit and offset are not negative.
func (p Paginate) Validate() (err error) {
	defer err2.Handle(&err, "paginate")
	return validate.Struct(p)
}

func (p *Paginate) UnmarshalJSON(data []byte) (err error) {
	defer err2.Handle(&err, "~paginate")

	var raw struct {
		Limit  *int `json:"limit"`
		Offset *int `json:"offset"`
	}
	try.To(json.Unmarshal(data, &raw))
	if raw.Limit == nil {
		return ErrLimitMissing
	}
	p.Limit = *raw.Limit
	p.Offset = 0
	if raw.Offset != nil {
		p.Offset = *raw.Offset
	}
	return p.Validate()
}

// Apply applies the pagination to items and returns the paginated results
// and the Page decorator for them. The variant is selected by the capabilities
// of items:
//   - slices and arrays are materialized sequences, Page.Remaining is set
//   - Iterator values, func() (T, bool) and receive channels are lazy
//     sequences which are consumed, Page.Remaining is nil
//
// Other types and nil channels, functions and pointers return
// ErrNotImplemented.
func (p Paginate) Apply(items any) (results []any, page Page, err error) {
	rv := reflect.ValueOf(items)
	if isNilSource(rv) {
		return nil, Page{}, fmt.Errorf("%w: nil %T", ErrNotImplemented, items)
	}
	switch v := items.(type) {
	case Iterator[any]:
		results, page = Stream[any]{Iterator: v}.paginate(p)
		return results, page, nil
	case func() (any, bool):
		results, page = Stream[any]{Iterator: IteratorFunc[any](v)}.paginate(p)
		return results, page, nil
	}

	if next, ok := nextMethod(rv); ok {
		results, page = Stream[any]{Iterator: next}.paginate(p)
		return results, page, nil
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		results, page = applyIndexed(p, rv)
		return results, page, nil
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir != 0 {
			results, page = Stream[any]{Iterator: chanIterator(rv)}.paginate(p)
			return results, page, nil
		}
	}
	return nil, Page{}, fmt.Errorf("%w: %T", ErrNotImplemented, items)
}

// isNilSource tells if rv is a nil lazy source. Receiving from a nil channel
// blocks forever.
func isNilSource(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Pointer:
		return rv.IsNil()
	}
	return false
}

func applyIndexed(p Paginate, rv reflect.Value) ([]any, Page) {
	n := rv.Len()
	start, end := window(p, n)
	results := make([]any, 0, end-start)
	for i := start; i < end; i++ {
		results = append(results, rv.Index(i).Interface())
	}
	remaining := n - end
	return results, Page{Count: len(results), Offset: p.Offset, Remaining: &remaining}
}

// window returns half-open bounds of the page inside a sequence of length n.
func window(p Paginate, n int) (start, end int) {
	start = min(max(p.Offset, 0), n)
	end = start + max(min(p.Limit, n-start), 0)
	return start, end
}

// nextMethod finds a Next() (T, bool) method from a typed iterator.
func nextMethod(rv reflect.Value) (Iterator[any], bool) {
	if !rv.IsValid() {
		return nil, false
	}
	m := rv.MethodByName("Next")
	if !m.IsValid() {
		return nil, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 2 || mt.Out(1).Kind() != reflect.Bool {
		return nil, false
	}
	return IteratorFunc[any](func() (any, bool) {
		out := m.Call(nil)
		return out[0].Interface(), out[1].Bool()
	}), true
}

func chanIterator(rv reflect.Value) Iterator[any] {
	return IteratorFunc[any](func() (any, bool) {
		v, ok := rv.Recv()
		if !ok {
			return nil, false
		}
		return v.Interface(), true
	})
}
