// Package streams is a channel-backed ordered sequence facility. Elements
// travel as datum-or-error values, so a producer failure reaches the consumer
// in-band and terminates the stream.
package streams

type Elem[T any] struct {
	data T
	err  error
}

func Of[T any](data T) Elem[T] {
	return Elem[T]{data: data}
}

func Fail[T any](err error) Elem[T] {
	return Elem[T]{err: err}
}

func (e Elem[T]) Data() T {
	return e.data
}

func (e Elem[T]) Err() error {
	return e.err
}

type Stream[T any] <-chan Elem[T]

func FromSlice[T any](source []T) Stream[T] {
	ch := make(chan Elem[T])
	go func() {
		defer close(ch)
		for _, data := range source {
			ch <- Of(data)
		}
	}()
	return ch
}

// Generate runs producer in its own goroutine; each sink call emits one
// element, and a non-nil producer result is emitted last as the stream's
// terminal error.
func Generate[T any](producer func(sink func(data T)) error) Stream[T] {
	ch := make(chan Elem[T])
	go func() {
		defer close(ch)
		if err := producer(func(data T) { ch <- Of(data) }); err != nil {
			ch <- Fail[T](err)
		}
	}()
	return ch
}

func Map[P any, Q any](s Stream[P], mapper func(data P) Q) Stream[Q] {
	ch := make(chan Elem[Q])
	go func() {
		defer close(ch)
		for elem := range s {
			if elem.err != nil {
				ch <- Fail[Q](elem.err)
				return
			}
			ch <- Of(mapper(elem.data))
		}
	}()
	return ch
}

// ForEach drives the stream in order. It stops on the first stream error or
// callback error and returns it unchanged.
func (s Stream[T]) ForEach(fn func(data T) error) error {
	for elem := range s {
		if elem.err != nil {
			return elem.err
		}
		if err := fn(elem.data); err != nil {
			return err
		}
	}
	return nil
}

func (s Stream[T]) Slice() ([]T, error) {
	result := make([]T, 0)
	err := s.ForEach(func(data T) error {
		result = append(result, data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
