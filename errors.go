package mmdb

import (
	"github.com/ipdbgo/mmdb/internal/mmdberrors"
	"github.com/ipdbgo/mmdb/mmdbdata"
)

// The error kinds a Reader's construction or lookup methods can return.
// Each is a distinct type so callers can distinguish failure modes with
// errors.As rather than string matching.
type (
	// InvalidMetadataError indicates the trailing metadata block could
	// not be located or decoded.
	InvalidMetadataError = mmdberrors.InvalidMetadataError
	// InvalidRecordSizeError indicates an unsupported record_size in
	// metadata.
	InvalidRecordSizeError = mmdberrors.InvalidRecordSizeError
	// InvalidDatabaseTypeError indicates the database_type in metadata
	// does not match any type the requested record accepts.
	InvalidDatabaseTypeError = mmdberrors.InvalidDatabaseTypeError
	// InvalidSearchTreeSizeError indicates the search tree size computed
	// from metadata leaves no room for the data section separator.
	InvalidSearchTreeSizeError = mmdberrors.InvalidSearchTreeSizeError
	// InvalidOffsetError indicates a decode ran past the end of a
	// buffer.
	InvalidOffsetError = mmdberrors.InvalidOffsetError
	// InvalidDataTypeError indicates a decoded value's kind did not match
	// what the caller's reader expected, after following at most one
	// pointer hop.
	InvalidDataTypeError = mmdbdata.InvalidDataTypeError
	// InvalidNodeError indicates the search tree walk used up every bit
	// of the address while still on an internal node.
	InvalidNodeError = mmdberrors.InvalidNodeError
	// UnknownFieldError indicates a record's schema does not recognize
	// a decoded map key.
	UnknownFieldError = mmdbdata.UnknownFieldError
	// NotFoundError indicates the looked-up address is not present in
	// the database.
	NotFoundError = mmdberrors.NotFoundError
	// IPv4OnlyError indicates an IPv6 address was looked up against an
	// IPv4-only database.
	IPv4OnlyError = mmdberrors.IPv4OnlyError
	// CorruptSearchTreeError indicates a resolved data offset fell
	// outside the data section.
	CorruptSearchTreeError = mmdberrors.CorruptSearchTreeError
	// InvalidSizeError indicates a scalar value's payload size cannot
	// encode the type its control byte claims.
	InvalidSizeError = mmdberrors.InvalidSizeError
	// UTF8Error indicates invalid UTF-8 was encountered while strict
	// validation was enabled.
	UTF8Error = mmdberrors.UTF8Error
)
