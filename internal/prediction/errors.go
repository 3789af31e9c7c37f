package prediction

import (
	"encoding/json"
	"fmt"
)

// ErrOracleUnavailable means the oracle could not be reached or did not
// answer in time.
type ErrOracleUnavailable struct {
	Err error
}

func (e *ErrOracleUnavailable) Error() string {
	return fmt.Sprintf("oracle unavailable: %v", e.Err)
}

func (e *ErrOracleUnavailable) Unwrap() error { return e.Err }

// ErrOracleContract means the oracle answered but the reply does not have
// the declared shape.
type ErrOracleContract struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrOracleContract) Error() string {
	return fmt.Sprintf("oracle contract violation: %v", e.Err)
}

func (e *ErrOracleContract) Unwrap() error { return e.Err }
