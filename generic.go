package mmdb

import (
	"net/netip"
	"slices"

	"github.com/ipdbgo/mmdb/internal/mmdberrors"
	"github.com/ipdbgo/mmdb/mmdbdata"
)

// ptrRecord constrains the second type parameter of Reader/Open to be a
// pointer to T that implements mmdbdata.Record. Combined with Go's
// core-type inference, it lets callers write mmdb.Open[records.City](data)
// without spelling out the pointer type parameter themselves.
type ptrRecord[T any] interface {
	*T
	mmdbdata.Record
}

type config struct {
	validateUTF8 bool
}

// Option configures Open.
type Option func(*config)

// WithStrictUTF8 makes string decoding reject byte ranges that are not
// valid UTF-8, returning a UTF8Error. By default this validation is
// skipped, which is the faster path and matches how most deployed
// databases are already known to be encoded.
func WithStrictUTF8() Option {
	return func(c *config) { c.validateUTF8 = true }
}

// Reader is a handle on an opened MaxMind DB image, parameterized by the
// record type Lookup decodes into.
type Reader[T any, PT ptrRecord[T]] struct {
	r *reader
}

// Open parses image as a MaxMind DB and returns a Reader that decodes
// lookups into T. Open returns an error if the image is malformed, or if
// its metadata database_type does not match one of the strings T's
// AcceptedDatabaseTypes returns.
//
// image is borrowed for the lifetime of the returned Reader and any
// record values it decodes: string fields in those records alias image
// directly.
func Open[T any, PT ptrRecord[T]](image []byte, opts ...Option) (*Reader[T, PT], error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	base, err := newReader(image, cfg.validateUTF8)
	if err != nil {
		return nil, err
	}

	var probe T
	accepted := PT(&probe).AcceptedDatabaseTypes()
	if !slices.Contains(accepted, base.metadata.DatabaseType) {
		return nil, &mmdberrors.InvalidDatabaseTypeError{Observed: base.metadata.DatabaseType}
	}

	return &Reader[T, PT]{r: base}, nil
}

// Metadata returns the database's metadata.
func (rd *Reader[T, PT]) Metadata() Metadata {
	return rd.r.metadata
}

// Lookup returns the record associated with ip. It returns a NotFoundError
// if ip falls in an unassigned branch of the search tree, and an
// IPv4OnlyError if ip is an IPv6 address looked up against an IPv4-only
// database.
func (rd *Reader[T, PT]) Lookup(ip netip.Addr) (T, error) {
	var zero T

	pointer, _, err := rd.r.lookupPointer(ip)
	if err != nil {
		return zero, err
	}
	if pointer == 0 {
		return zero, &mmdberrors.NotFoundError{}
	}

	offset, err := rd.r.resolveDataPointer(pointer)
	if err != nil {
		return zero, err
	}

	var out T
	if err := PT(&out).UnmarshalMaxMindDB(rd.r.decoderAt(offset)); err != nil {
		return zero, err
	}
	return out, nil
}
