package d3d9to11

import "errors"

// Sentinel errors mirroring the legacy error taxonomy.
var (
	// ErrInvalidCall reports an operation invoked with arguments or in a
	// state the legacy API rejects.
	ErrInvalidCall = errors.New("d3d9: invalid call")

	// ErrNotFound reports a query for a binding that is not present.
	ErrNotFound = errors.New("d3d9: not found")

	// ErrWasStillDrawing reports a non-blocking lock that would have had
	// to wait for outstanding GPU work.
	ErrWasStillDrawing = errors.New("d3d9: was still drawing")
)

// DriverError wraps a failure reported by the native backend with the
// operation that triggered it.
type DriverError struct {
	Op  string
	Err error
}

func (e *DriverError) Error() string {
	return "d3d9: " + e.Op + ": " + e.Err.Error()
}

func (e *DriverError) Unwrap() error { return e.Err }

// driverErr wraps a backend error, passing sentinel values through so
// callers can still match them with errors.Is.
func driverErr(op string, err error) error {
	return &DriverError{Op: op, Err: err}
}

// UnimplementedError is the panic value raised by legacy entry points
// this layer does not carry.
type UnimplementedError struct {
	Op string
}

func (e *UnimplementedError) Error() string {
	return "d3d9: not implemented: " + e.Op
}

// unimplemented aborts the calling operation. Reaching one of these entry
// points means the application depends on functionality outside this
// layer, and continuing would corrupt rendering state.
func unimplemented(op string) {
	Logger().Error("not implemented", "op", op)
	panic(&UnimplementedError{Op: op})
}
