// Package decoder implements the primitive tagged-value decoding used by
// the MaxMind DB data section: control byte parsing, size and pointer
// arithmetic, and scalar/string extraction.
package decoder

import "fmt"

// Kind identifies the wire type carried by a control byte.
type Kind int

// Data kind constants, ordered to match the 3-bit (or extended) type tag
// used on the wire.
const (
	KindExtended Kind = iota
	KindPointer
	KindString
	KindFloat64
	KindBytes
	KindUint16
	KindUint32
	KindMap
	KindInt32
	KindUint64
	KindUint128
	KindSlice
	KindContainer
	KindEndMarker
	KindBool
	KindFloat32
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindExtended:
		return "Extended"
	case KindPointer:
		return "Pointer"
	case KindString:
		return "String"
	case KindFloat64:
		return "Float64"
	case KindBytes:
		return "Bytes"
	case KindUint16:
		return "Uint16"
	case KindUint32:
		return "Uint32"
	case KindMap:
		return "Map"
	case KindInt32:
		return "Int32"
	case KindUint64:
		return "Uint64"
	case KindUint128:
		return "Uint128"
	case KindSlice:
		return "Slice"
	case KindContainer:
		return "Container"
	case KindEndMarker:
		return "EndMarker"
	case KindBool:
		return "Bool"
	case KindFloat32:
		return "Float32"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// IsContainer reports whether k is Map or Slice.
func (k Kind) IsContainer() bool {
	return k == KindMap || k == KindSlice
}

// IsScalar reports whether k is one of the non-container, non-pointer,
// non-control value kinds.
func (k Kind) IsScalar() bool {
	switch k {
	case KindString, KindFloat64, KindBytes, KindUint16, KindUint32,
		KindInt32, KindUint64, KindUint128, KindBool, KindFloat32:
		return true
	default:
		return false
	}
}
