package market

import "fmt"

// ErrorKind classifies a failed load
type ErrorKind int

const (
	KindNetwork ErrorKind = iota
	KindStatus
	KindParse
	KindAPI
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindParse:
		return "parse"
	case KindAPI:
		return "api"
	default:
		return "unknown"
	}
}

// LoadError is returned when points for a range could not be loaded
type LoadError struct {
	Kind  ErrorKind
	Range TimeRange
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Range, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
