package decoder

import (
	"errors"
	"math"
	"math/big"
	"unicode/utf8"
	"unsafe"

	"github.com/ipdbgo/mmdb/internal/mmdberrors"
)

// DataDecoder decodes primitive tagged values out of a MaxMind DB data
// section. It does not allocate for fixed-width scalar or string values:
// strings alias the backing buffer directly via unsafe.String. The
// exceptions are DecodeUint128, which returns a new *big.Int, and
// DecodeBytes, which returns a copy.
type DataDecoder struct {
	buffer       []byte
	validateUTF8 bool
}

// NewDataDecoder creates a DataDecoder over buffer. When validateUTF8 is
// true, DecodeString rejects byte ranges that are not valid UTF-8.
func NewDataDecoder(buffer []byte, validateUTF8 bool) DataDecoder {
	return DataDecoder{buffer: buffer, validateUTF8: validateUTF8}
}

// Buffer returns the underlying buffer for direct, bounds-checked access.
func (d *DataDecoder) Buffer() []byte {
	return d.buffer
}

// DecodeCtrlData decodes the control byte and any size-extension bytes
// starting at offset, returning the value's Kind, its size, and the offset
// of the first byte following the control data.
func (d *DataDecoder) DecodeCtrlData(offset uint) (Kind, uint, uint, error) {
	newOffset := offset + 1
	if offset >= uint(len(d.buffer)) {
		return 0, 0, 0, mmdberrors.NewOffsetError()
	}
	ctrlByte := d.buffer[offset]

	kind := Kind(ctrlByte >> 5)
	if kind == KindExtended {
		if newOffset >= uint(len(d.buffer)) {
			return 0, 0, 0, mmdberrors.NewOffsetError()
		}
		kind = Kind(d.buffer[newOffset] + 7)
		newOffset++
	}

	size, newOffset, err := d.sizeFromCtrlByte(ctrlByte, newOffset, kind)
	return kind, size, newOffset, err
}

func (d *DataDecoder) sizeFromCtrlByte(ctrlByte byte, offset uint, kind Kind) (uint, uint, error) {
	size := uint(ctrlByte & 0x1f)
	if kind == KindExtended {
		return size, offset, nil
	}
	if size < 29 {
		return size, offset, nil
	}

	bytesToRead := size - 28
	newOffset := offset + bytesToRead
	if newOffset > uint(len(d.buffer)) {
		return 0, 0, mmdberrors.NewOffsetError()
	}
	if size == 29 {
		return 29 + uint(d.buffer[offset]), offset + 1, nil
	}

	sizeBytes := d.buffer[offset:newOffset]
	switch {
	case size == 30:
		size = 285 + uintFromBytes(0, sizeBytes)
	default:
		size = uintFromBytes(0, sizeBytes) + 65821
	}
	return size, newOffset, nil
}

// DecodePointer decodes a pointer value, returning the absolute offset it
// refers to within the data section and the offset following the pointer's
// own encoding.
func (d *DataDecoder) DecodePointer(size, offset uint) (uint, uint, error) {
	pointerSize := ((size >> 3) & 0x3) + 1
	newOffset := offset + pointerSize
	if newOffset > uint(len(d.buffer)) {
		return 0, 0, mmdberrors.NewOffsetError()
	}
	pointerBytes := d.buffer[offset:newOffset]

	var prefix uint
	if pointerSize != 4 {
		prefix = size & 0x7
	}
	unpacked := uintFromBytes(prefix, pointerBytes)

	var base uint
	switch pointerSize {
	case 2:
		base = 2048
	case 3:
		base = 526336
	}

	return unpacked + base, newOffset, nil
}

// DecodeBool decodes a bool value whose payload is carried entirely in size.
func (d *DataDecoder) DecodeBool(size, offset uint) (bool, uint) {
	return size != 0, offset
}

// DecodeBytes decodes a raw byte slice, copying it so callers can retain it
// independent of the record's lifetime rules.
func (d *DataDecoder) DecodeBytes(size, offset uint) ([]byte, uint, error) {
	if offset+size > uint(len(d.buffer)) {
		return nil, 0, mmdberrors.NewOffsetError()
	}
	newOffset := offset + size
	out := make([]byte, size)
	copy(out, d.buffer[offset:newOffset])
	return out, newOffset, nil
}

// DecodeString decodes a string that aliases the underlying buffer; no
// allocation or copy is performed.
func (d *DataDecoder) DecodeString(size, offset uint) (string, uint, error) {
	if offset+size > uint(len(d.buffer)) {
		return "", 0, mmdberrors.NewOffsetError()
	}
	newOffset := offset + size
	raw := d.buffer[offset:newOffset]
	if d.validateUTF8 && !utf8.Valid(raw) {
		return "", 0, &mmdberrors.UTF8Error{Err: errInvalidUTF8}
	}
	if size == 0 {
		return "", newOffset, nil
	}
	return unsafe.String(unsafe.SliceData(raw), len(raw)), newOffset, nil
}

var errInvalidUTF8 = errors.New("invalid UTF-8 byte sequence")

// DecodeFloat32 decodes a 32-bit IEEE-754 float.
func (d *DataDecoder) DecodeFloat32(size, offset uint) (float32, uint, error) {
	if size != 4 {
		return 0, 0, &mmdberrors.InvalidSizeError{Kind: "float32", Size: size}
	}
	if offset+size > uint(len(d.buffer)) {
		return 0, 0, mmdberrors.NewOffsetError()
	}
	newOffset := offset + size
	bits := beUint32(d.buffer[offset:newOffset])
	return math.Float32frombits(bits), newOffset, nil
}

// DecodeFloat64 decodes a 64-bit IEEE-754 float.
func (d *DataDecoder) DecodeFloat64(size, offset uint) (float64, uint, error) {
	if size != 8 {
		return 0, 0, &mmdberrors.InvalidSizeError{Kind: "float64", Size: size}
	}
	if offset+size > uint(len(d.buffer)) {
		return 0, 0, mmdberrors.NewOffsetError()
	}
	newOffset := offset + size
	bits := beUint64(d.buffer[offset:newOffset])
	return math.Float64frombits(bits), newOffset, nil
}

// DecodeInt32 decodes a big-endian signed integer of up to 4 bytes.
func (d *DataDecoder) DecodeInt32(size, offset uint) (int32, uint, error) {
	if offset+size > uint(len(d.buffer)) {
		return 0, 0, mmdberrors.NewOffsetError()
	}
	newOffset := offset + size
	var val int32
	for _, b := range d.buffer[offset:newOffset] {
		val = (val << 8) | int32(b)
	}
	return val, newOffset, nil
}

// DecodeUint16 decodes a big-endian unsigned integer of up to 2 bytes.
func (d *DataDecoder) DecodeUint16(size, offset uint) (uint16, uint, error) {
	if offset+size > uint(len(d.buffer)) {
		return 0, 0, mmdberrors.NewOffsetError()
	}
	newOffset := offset + size
	var val uint16
	for _, b := range d.buffer[offset:newOffset] {
		val = (val << 8) | uint16(b)
	}
	return val, newOffset, nil
}

// DecodeUint32 decodes a big-endian unsigned integer of up to 4 bytes.
func (d *DataDecoder) DecodeUint32(size, offset uint) (uint32, uint, error) {
	if offset+size > uint(len(d.buffer)) {
		return 0, 0, mmdberrors.NewOffsetError()
	}
	newOffset := offset + size
	var val uint32
	for _, b := range d.buffer[offset:newOffset] {
		val = (val << 8) | uint32(b)
	}
	return val, newOffset, nil
}

// DecodeUint64 decodes a big-endian unsigned integer of up to 8 bytes.
func (d *DataDecoder) DecodeUint64(size, offset uint) (uint64, uint, error) {
	if offset+size > uint(len(d.buffer)) {
		return 0, 0, mmdberrors.NewOffsetError()
	}
	newOffset := offset + size
	var val uint64
	for _, b := range d.buffer[offset:newOffset] {
		val = (val << 8) | uint64(b)
	}
	return val, newOffset, nil
}

// DecodeUint128 decodes a big-endian unsigned integer of up to 16 bytes.
func (d *DataDecoder) DecodeUint128(size, offset uint) (*big.Int, uint, error) {
	if offset+size > uint(len(d.buffer)) {
		return nil, 0, mmdberrors.NewOffsetError()
	}
	newOffset := offset + size
	val := new(big.Int).SetBytes(d.buffer[offset:newOffset])
	return val, newOffset, nil
}

// DecodeKey decodes a map key as a zero-copy string, following at most one
// pointer hop. A key whose pointer targets another pointer is not defined
// by the format and is rejected.
func (d *DataDecoder) DecodeKey(offset uint) (string, uint, error) {
	kind, size, dataOffset, err := d.DecodeCtrlData(offset)
	if err != nil {
		return "", 0, err
	}
	if kind == KindPointer {
		pointer, ptrOffset, err := d.DecodePointer(size, dataOffset)
		if err != nil {
			return "", 0, err
		}
		kind, size, dataOffset, err = d.DecodeCtrlData(pointer)
		if err != nil {
			return "", 0, err
		}
		if kind != KindString {
			return "", 0, mmdberrors.NewInvalidMetadataError(
				"unexpected type when decoding map key: %v", kind,
			)
		}
		key, _, err := d.DecodeString(size, dataOffset)
		return key, ptrOffset, err
	}
	if kind != KindString {
		return "", 0, mmdberrors.NewInvalidMetadataError(
			"unexpected type when decoding map key: %v", kind,
		)
	}
	return d.DecodeString(size, dataOffset)
}

// NextValueOffset returns the offset following numberToSkip consecutive
// values starting at offset, without decoding them.
func (d *DataDecoder) NextValueOffset(offset, numberToSkip uint) (uint, error) {
	if numberToSkip == 0 {
		return offset, nil
	}
	kind, size, offset, err := d.DecodeCtrlData(offset)
	if err != nil {
		return 0, err
	}
	switch kind {
	case KindPointer:
		_, offset, err = d.DecodePointer(size, offset)
		if err != nil {
			return 0, err
		}
	case KindMap:
		numberToSkip += 2 * size
	case KindSlice:
		numberToSkip += size
	case KindBool:
	default:
		offset += size
	}
	return d.NextValueOffset(offset, numberToSkip-1)
}

func uintFromBytes(prefix uint, b []byte) uint {
	val := prefix
	for _, c := range b {
		val = (val << 8) | uint(c)
	}
	return val
}

func beUint32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
}

func beUint64(b []byte) uint64 {
	_ = b[7]
	var v uint64
	for _, c := range b[:8] {
		v = (v << 8) | uint64(c)
	}
	return v
}
