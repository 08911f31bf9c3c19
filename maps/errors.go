package maps

import "strconv"

// KeyMappingError reports a key mapper failure for the element at Index.
// The underlying failure is reachable via errors.Unwrap.
type KeyMappingError struct {
	Index int
	Err   error
}

func (e *KeyMappingError) Error() string {
	return "key mapping failed on element " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
}

func (e *KeyMappingError) Unwrap() error {
	return e.Err
}

// ValueMappingError reports a value mapper failure for the element at Index.
type ValueMappingError struct {
	Index int
	Err   error
}

func (e *ValueMappingError) Error() string {
	return "value mapping failed on element " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
}

func (e *ValueMappingError) Unwrap() error {
	return e.Err
}
