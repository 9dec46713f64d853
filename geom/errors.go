package geom

import "errors"

var ErrInvalidGeometry = errors.New("invalid geometry")

// InvalidGeometryError reports why a geometry was rejected.
type InvalidGeometryError struct {
	Reason string
}

func newInvalidGeometry(reason string) *InvalidGeometryError {
	return &InvalidGeometryError{Reason: reason}
}

func (e *InvalidGeometryError) Error() string {
	return ErrInvalidGeometry.Error() + ": " + e.Reason
}

func (e *InvalidGeometryError) Is(target error) bool {
	return target == ErrInvalidGeometry
}
