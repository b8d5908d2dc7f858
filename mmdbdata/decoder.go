// Package mmdbdata defines the high-level, callback-based decoder that
// record types use to unmarshal themselves out of a MaxMind DB data
// section, along with the interfaces a record type must implement.
package mmdbdata

import (
	"fmt"
	"math/big"

	"github.com/ipdbgo/mmdb/internal/decoder"
)

// Decoder decodes the single value stored at a specific offset in a data
// section. A Decoder is reused across sibling map/slice elements by the
// callback-driven Decode* methods; callers must not retain one past the
// callback invocation it was handed to.
type Decoder struct {
	prim          decoder.DataDecoder
	offset        uint
	hasNextOffset bool
	nextOffset    uint
}

// NewDecoder returns a Decoder for the value stored at offset in prim's
// buffer.
func NewDecoder(prim decoder.DataDecoder, offset uint) *Decoder {
	return &Decoder{prim: prim, offset: offset}
}

func (d *Decoder) reset(offset uint) {
	d.offset = offset
	d.hasNextOffset = false
	d.nextOffset = 0
}

func (d *Decoder) next(numberToSkip uint) error {
	if numberToSkip > 1 || !d.hasNextOffset {
		offset, err := d.prim.NextValueOffset(d.offset, numberToSkip)
		if err != nil {
			return err
		}
		d.reset(offset)
		return nil
	}
	d.reset(d.nextOffset)
	return nil
}

func (d *Decoder) setNextOffset(offset uint) {
	if !d.hasNextOffset {
		d.hasNextOffset = true
		d.nextOffset = offset
	}
}

func (d *Decoder) sibling(offset uint) *Decoder {
	return &Decoder{prim: d.prim, offset: offset}
}

// InvalidDataTypeError indicates a value's control byte carried a kind
// other than the one the caller's scalar/map/slice reader expected, after
// following at most one pointer hop to the concrete value.
type InvalidDataTypeError struct {
	Kind     decoder.Kind
	Expected decoder.Kind
}

func (e *InvalidDataTypeError) Error() string {
	if e.Expected == decoder.KindExtended {
		return fmt.Sprintf("unexpected kind %s", e.Kind)
	}
	return fmt.Sprintf("unexpected kind %s, expected %s", e.Kind, e.Expected)
}

func unexpectedKindErr(expected, actual decoder.Kind) error {
	return &InvalidDataTypeError{Kind: actual, Expected: expected}
}

// decodeCtrlDataAndFollow reaches the concrete value of the expected kind,
// dereferencing at most one pointer. A pointer whose target is itself a
// pointer is not defined by the format and raises InvalidDataTypeError.
func (d *Decoder) decodeCtrlDataAndFollow(expected decoder.Kind) (uint, uint, error) {
	kind, size, next, err := d.prim.DecodeCtrlData(d.offset)
	if err != nil {
		return 0, 0, err
	}
	if kind == decoder.KindPointer {
		pointer, afterPtr, err := d.prim.DecodePointer(size, next)
		if err != nil {
			return 0, 0, err
		}
		d.setNextOffset(afterPtr)
		kind, size, next, err = d.prim.DecodeCtrlData(pointer)
		if err != nil {
			return 0, 0, err
		}
	}
	if kind != expected {
		return 0, 0, unexpectedKindErr(expected, kind)
	}
	return size, next, nil
}

// Kind reports the wire kind of the value at the decoder's current offset,
// resolving at most one leading pointer. A pointer to another pointer is
// not defined by the format and raises InvalidDataTypeError.
func (d *Decoder) Kind() (decoder.Kind, error) {
	kind, size, next, err := d.prim.DecodeCtrlData(d.offset)
	if err != nil {
		return 0, err
	}
	if kind != decoder.KindPointer {
		return kind, nil
	}
	pointer, _, err := d.prim.DecodePointer(size, next)
	if err != nil {
		return 0, err
	}
	kind, _, _, err = d.prim.DecodeCtrlData(pointer)
	if err != nil {
		return 0, err
	}
	if kind == decoder.KindPointer {
		return 0, &InvalidDataTypeError{Kind: decoder.KindPointer}
	}
	return kind, nil
}

// DecodeBool decodes the current value as a bool.
func (d *Decoder) DecodeBool() (bool, error) {
	size, offset, err := d.decodeCtrlDataAndFollow(decoder.KindBool)
	if err != nil {
		return false, err
	}
	value, _ := d.prim.DecodeBool(size, offset)
	d.setNextOffset(offset)
	return value, nil
}

// DecodeString decodes the current value as a zero-copy string aliasing the
// database image.
func (d *Decoder) DecodeString() (string, error) {
	size, offset, err := d.decodeCtrlDataAndFollow(decoder.KindString)
	if err != nil {
		return "", err
	}
	value, next, err := d.prim.DecodeString(size, offset)
	if err != nil {
		return "", err
	}
	d.setNextOffset(next)
	return value, nil
}

// DecodeBytes decodes the current value as a byte slice (copied, since
// callers expect to own it independent of the record's lifetime).
func (d *Decoder) DecodeBytes() ([]byte, error) {
	size, offset, err := d.decodeCtrlDataAndFollow(decoder.KindBytes)
	if err != nil {
		return nil, err
	}
	value, next, err := d.prim.DecodeBytes(size, offset)
	if err != nil {
		return nil, err
	}
	d.setNextOffset(next)
	return value, nil
}

// DecodeFloat32 decodes the current value as a float32.
func (d *Decoder) DecodeFloat32() (float32, error) {
	size, offset, err := d.decodeCtrlDataAndFollow(decoder.KindFloat32)
	if err != nil {
		return 0, err
	}
	value, next, err := d.prim.DecodeFloat32(size, offset)
	if err != nil {
		return 0, err
	}
	d.setNextOffset(next)
	return value, nil
}

// DecodeFloat64 decodes the current value as a float64.
func (d *Decoder) DecodeFloat64() (float64, error) {
	size, offset, err := d.decodeCtrlDataAndFollow(decoder.KindFloat64)
	if err != nil {
		return 0, err
	}
	value, next, err := d.prim.DecodeFloat64(size, offset)
	if err != nil {
		return 0, err
	}
	d.setNextOffset(next)
	return value, nil
}

// DecodeInt32 decodes the current value as an int32.
func (d *Decoder) DecodeInt32() (int32, error) {
	size, offset, err := d.decodeCtrlDataAndFollow(decoder.KindInt32)
	if err != nil {
		return 0, err
	}
	value, next, err := d.prim.DecodeInt32(size, offset)
	if err != nil {
		return 0, err
	}
	d.setNextOffset(next)
	return value, nil
}

// DecodeUint16 decodes the current value as a uint16.
func (d *Decoder) DecodeUint16() (uint16, error) {
	size, offset, err := d.decodeCtrlDataAndFollow(decoder.KindUint16)
	if err != nil {
		return 0, err
	}
	value, next, err := d.prim.DecodeUint16(size, offset)
	if err != nil {
		return 0, err
	}
	d.setNextOffset(next)
	return value, nil
}

// DecodeUint32 decodes the current value as a uint32.
func (d *Decoder) DecodeUint32() (uint32, error) {
	size, offset, err := d.decodeCtrlDataAndFollow(decoder.KindUint32)
	if err != nil {
		return 0, err
	}
	value, next, err := d.prim.DecodeUint32(size, offset)
	if err != nil {
		return 0, err
	}
	d.setNextOffset(next)
	return value, nil
}

// DecodeUint64 decodes the current value as a uint64.
func (d *Decoder) DecodeUint64() (uint64, error) {
	size, offset, err := d.decodeCtrlDataAndFollow(decoder.KindUint64)
	if err != nil {
		return 0, err
	}
	value, next, err := d.prim.DecodeUint64(size, offset)
	if err != nil {
		return 0, err
	}
	d.setNextOffset(next)
	return value, nil
}

// DecodeUint128 decodes the current value as a 128-bit unsigned integer.
func (d *Decoder) DecodeUint128() (*big.Int, error) {
	size, offset, err := d.decodeCtrlDataAndFollow(decoder.KindUint128)
	if err != nil {
		return nil, err
	}
	value, next, err := d.prim.DecodeUint128(size, offset)
	if err != nil {
		return nil, err
	}
	d.setNextOffset(next)
	return value, nil
}

// DecodeMap decodes the current value as a map, invoking cb once per
// key/value pair in wire order. Returning ok=false from cb stops iteration
// early and skips the remaining pairs without decoding them; returning a
// non-nil error aborts DecodeMap immediately with that error.
func (d *Decoder) DecodeMap(cb func(key string, value *Decoder) (bool, error)) error {
	size, offset, err := d.decodeCtrlDataAndFollow(decoder.KindMap)
	if err != nil {
		return err
	}

	elem := d.sibling(offset)
	for i := uint(0); i < size; i++ {
		key, err := elem.DecodeString()
		if err != nil {
			return err
		}
		if err := elem.next(1); err != nil {
			return err
		}

		ok, cbErr := cb(key, elem)

		if err := elem.next(1); err != nil {
			return err
		}
		if cbErr != nil {
			return cbErr
		}
		if !ok {
			return elem.next((size - i - 1) * 2)
		}
	}

	d.setNextOffset(elem.offset)
	return nil
}

// DecodeSlice decodes the current value as a slice, invoking cb once per
// element in wire order. Returning ok=false from cb stops iteration early
// and skips the remaining elements without decoding them; returning a
// non-nil error aborts DecodeSlice immediately with that error.
func (d *Decoder) DecodeSlice(cb func(value *Decoder) (bool, error)) error {
	size, offset, err := d.decodeCtrlDataAndFollow(decoder.KindSlice)
	if err != nil {
		return err
	}

	elem := d.sibling(offset)
	for i := uint(0); i < size; i++ {
		ok, cbErr := cb(elem)

		if err := elem.next(1); err != nil {
			return err
		}
		if cbErr != nil {
			return cbErr
		}
		if !ok {
			return elem.next(size - i - 1)
		}
	}

	d.setNextOffset(elem.offset)
	return nil
}

// Unmarshaler is implemented by any type that knows how to decode itself
// from a single MaxMind DB value.
type Unmarshaler interface {
	UnmarshalMaxMindDB(d *Decoder) error
}

// Record is implemented by the built-in top-level record types
// (records.Country, records.City, and so on). AcceptedDatabaseTypes lists
// the metadata database_type strings the record is valid for.
type Record interface {
	Unmarshaler
	AcceptedDatabaseTypes() []string
}

// UnknownFieldError is returned by a Record's UnmarshalMaxMindDB when the
// decoded map contains a key the record's schema does not recognize.
type UnknownFieldError struct {
	Key string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Key)
}
