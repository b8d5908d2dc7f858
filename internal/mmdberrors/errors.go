// Package mmdberrors defines the typed error values returned while parsing
// and walking a MaxMind DB image.
package mmdberrors

import "fmt"

// InvalidMetadataError indicates the trailing metadata block could not be
// located or decoded into a well-formed map.
type InvalidMetadataError struct {
	Reason string
}

func (e *InvalidMetadataError) Error() string {
	return fmt.Sprintf("invalid metadata: %s", e.Reason)
}

// InvalidRecordSizeError indicates metadata declared a record_size this
// reader does not know how to lay out a node with.
type InvalidRecordSizeError struct {
	Size uint
}

func (e *InvalidRecordSizeError) Error() string {
	return fmt.Sprintf("invalid record size in metadata: %d", e.Size)
}

// InvalidDatabaseTypeError indicates the database_type string in metadata
// does not match any of the type strings the requested record type accepts.
type InvalidDatabaseTypeError struct {
	Observed string
}

func (e *InvalidDatabaseTypeError) Error() string {
	return fmt.Sprintf("invalid database type: %q", e.Observed)
}

// InvalidSearchTreeSizeError indicates the computed search tree size does
// not leave room for the 16-byte data section separator before the data
// section begins.
type InvalidSearchTreeSizeError struct{}

func (e *InvalidSearchTreeSizeError) Error() string {
	return "invalid search tree size"
}

// InvalidOffsetError indicates a decode operation ran past the end of the
// buffer it was reading.
type InvalidOffsetError struct{}

func (e *InvalidOffsetError) Error() string {
	return "invalid offset in data section"
}

// InvalidNodeError indicates the search tree walk used up every bit of the
// address while the current record still named an internal node (a value
// below node_count).
type InvalidNodeError struct{}

func (e *InvalidNodeError) Error() string {
	return "invalid node in search tree"
}

// NotFoundError indicates the looked-up address resolved to an empty
// (unassigned) branch of the search tree.
type NotFoundError struct{}

func (e *NotFoundError) Error() string {
	return "address not found in database"
}

// IPv4OnlyError indicates an IPv6 address was looked up against a database
// whose metadata declares ip_version 4.
type IPv4OnlyError struct{}

func (e *IPv4OnlyError) Error() string {
	return "cannot look up an IPv6 address in an IPv4-only database"
}

// CorruptSearchTreeError indicates the tree walk produced a record offset
// inconsistent with the declared node_count and record_size.
type CorruptSearchTreeError struct{}

func (e *CorruptSearchTreeError) Error() string {
	return "search tree is corrupt"
}

// InvalidSizeError indicates a scalar value's declared payload size cannot
// encode the type its control byte claims (for example a float64 whose
// payload is not 8 bytes).
type InvalidSizeError struct {
	Kind string
	Size uint
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("data section contains bad data (%s size of %d)", e.Kind, e.Size)
}

// UTF8Error wraps a UTF-8 validation failure encountered while strict
// validation is enabled.
type UTF8Error struct {
	Err error
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 in string: %v", e.Err)
}

func (e *UTF8Error) Unwrap() error {
	return e.Err
}

// NewOffsetError returns the canonical InvalidOffsetError value.
func NewOffsetError() error {
	return &InvalidOffsetError{}
}

// NewInvalidMetadataError reports malformed metadata with a formatted
// reason.
func NewInvalidMetadataError(format string, args ...any) error {
	return &InvalidMetadataError{Reason: fmt.Sprintf(format, args...)}
}
