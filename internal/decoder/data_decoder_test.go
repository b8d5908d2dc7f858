package decoder

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// decodeFromHex builds a DataDecoder over the bytes hexStr decodes to; the
// encoded value starts at offset 0.
func decodeFromHex(t *testing.T, hexStr string) DataDecoder {
	t.Helper()
	raw, err := hex.DecodeString(hexStr)
	require.NoError(t, err, "invalid hex fixture %q", hexStr)
	return NewDataDecoder(raw, false)
}

func TestDecodeCtrlDataBool(t *testing.T) {
	tests := map[string]bool{
		"0007": false,
		"0107": true,
	}
	for hexStr, expected := range tests {
		t.Run(hexStr, func(t *testing.T) {
			d := decodeFromHex(t, hexStr)
			kind, size, offset, err := d.DecodeCtrlData(0)
			require.NoError(t, err)
			require.Equal(t, KindBool, kind)
			value, _ := d.DecodeBool(size, offset)
			require.Equal(t, expected, value)
		})
	}
}

func TestDecodeFloat64(t *testing.T) {
	tests := map[string]float64{
		"680000000000000000": 0.0,
		"683FE0000000000000": 0.5,
		"68400921FB54442EEA": 3.14159265359,
		"68405EC00000000000": 123.0,
		"68BFE0000000000000": -0.5,
		"68C00921FB54442EEA": -3.14159265359,
	}
	for hexStr, expected := range tests {
		t.Run(hexStr, func(t *testing.T) {
			d := decodeFromHex(t, hexStr)
			kind, size, offset, err := d.DecodeCtrlData(0)
			require.NoError(t, err)
			require.Equal(t, KindFloat64, kind)
			value, newOffset, err := d.DecodeFloat64(size, offset)
			require.NoError(t, err)
			require.InDelta(t, expected, value, 1e-9)
			require.Equal(t, uint(len(d.Buffer())), newOffset)
		})
	}
}

func TestDecodeFloat32(t *testing.T) {
	tests := map[string]float32{
		"040800000000": 0.0,
		"04083F800000": 1.0,
		"0408BF800000": -1.0,
		"04084048F5C3": 3.14,
	}
	for hexStr, expected := range tests {
		t.Run(hexStr, func(t *testing.T) {
			d := decodeFromHex(t, hexStr)
			kind, size, offset, err := d.DecodeCtrlData(0)
			require.NoError(t, err)
			require.Equal(t, KindFloat32, kind)
			value, _, err := d.DecodeFloat32(size, offset)
			require.NoError(t, err)
			require.InDelta(t, expected, value, 1e-5)
		})
	}
}

func TestDecodeFloat64RejectsBadSize(t *testing.T) {
	// float64 control byte with a 4-byte payload: undecodable.
	raw := []byte{0x64, 0x3f, 0x80, 0x00, 0x00}
	d := NewDataDecoder(raw, false)
	_, size, offset, err := d.DecodeCtrlData(0)
	require.NoError(t, err)
	_, _, err = d.DecodeFloat64(size, offset)
	require.Error(t, err)
}

func TestDecodeUint16TruncatesWidePayload(t *testing.T) {
	// A uint16 control byte carrying a 4-byte payload keeps only the low
	// 16 bits.
	raw := []byte{0xa4, 0x01, 0x02, 0x03, 0x04}
	d := NewDataDecoder(raw, false)
	kind, size, offset, err := d.DecodeCtrlData(0)
	require.NoError(t, err)
	require.Equal(t, KindUint16, kind)
	value, _, err := d.DecodeUint16(size, offset)
	require.NoError(t, err)
	require.Equal(t, uint16(0x0304), value)
}

func TestDecodeInt32(t *testing.T) {
	tests := map[string]int32{
		"0001":         0,
		"0101ff":       255,
		"0401ffffffff": -1,
		"020101f4":     500,
		"04017fffffff": 2147483647,
		"040180000001": -2147483647,
	}
	for hexStr, expected := range tests {
		t.Run(hexStr, func(t *testing.T) {
			d := decodeFromHex(t, hexStr)
			kind, size, offset, err := d.DecodeCtrlData(0)
			require.NoError(t, err)
			require.Equal(t, KindInt32, kind)
			value, _, err := d.DecodeInt32(size, offset)
			require.NoError(t, err)
			require.Equal(t, expected, value)
		})
	}
}

func TestDecodeUint16(t *testing.T) {
	tests := map[string]uint16{
		"a0":     0,
		"a1ff":   255,
		"a201f4": 500,
		"a2ffff": 65535,
	}
	for hexStr, expected := range tests {
		t.Run(hexStr, func(t *testing.T) {
			d := decodeFromHex(t, hexStr)
			kind, size, offset, err := d.DecodeCtrlData(0)
			require.NoError(t, err)
			require.Equal(t, KindUint16, kind)
			value, _, err := d.DecodeUint16(size, offset)
			require.NoError(t, err)
			require.Equal(t, expected, value)
		})
	}
}

func TestDecodeUint32(t *testing.T) {
	tests := map[string]uint32{
		"c0":         0,
		"c1ff":       255,
		"c201f4":     500,
		"c3ffffff":   16777215,
		"c4ffffffff": 4294967295,
	}
	for hexStr, expected := range tests {
		t.Run(hexStr, func(t *testing.T) {
			d := decodeFromHex(t, hexStr)
			kind, size, offset, err := d.DecodeCtrlData(0)
			require.NoError(t, err)
			require.Equal(t, KindUint32, kind)
			value, _, err := d.DecodeUint32(size, offset)
			require.NoError(t, err)
			require.Equal(t, expected, value)
		})
	}
}

func TestDecodeUint64(t *testing.T) {
	tests := map[string]uint64{
		"0002":                 0,
		"020201f4":             500,
		"0802ffffffffffffffff": 18446744073709551615,
	}
	for hexStr, expected := range tests {
		t.Run(hexStr, func(t *testing.T) {
			d := decodeFromHex(t, hexStr)
			kind, size, offset, err := d.DecodeCtrlData(0)
			require.NoError(t, err)
			require.Equal(t, KindUint64, kind)
			value, _, err := d.DecodeUint64(size, offset)
			require.NoError(t, err)
			require.Equal(t, expected, value)
		})
	}
}

func TestDecodeUint128(t *testing.T) {
	d := decodeFromHex(t, "1003ffffffffffffffffffffffffffffffff")
	kind, size, offset, err := d.DecodeCtrlData(0)
	require.NoError(t, err)
	require.Equal(t, KindUint128, kind)
	value, _, err := d.DecodeUint128(size, offset)
	require.NoError(t, err)
	expected := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	require.Equal(t, 0, expected.Cmp(value))
}

func TestDecodeString(t *testing.T) {
	tests := map[string]string{
		"40":       "",
		"4131":     "1",
		"43e4baba": "人",
		"5b4142434445464748494a4b4c4d4e4f505152535455565758595a5b": "ABCDEFGHIJKLMNOPQRSTUVWXYZ[",
	}
	for hexStr, expected := range tests {
		t.Run(hexStr, func(t *testing.T) {
			d := decodeFromHex(t, hexStr)
			kind, size, offset, err := d.DecodeCtrlData(0)
			require.NoError(t, err)
			require.Equal(t, KindString, kind)
			value, newOffset, err := d.DecodeString(size, offset)
			require.NoError(t, err)
			require.Equal(t, expected, value)
			require.Equal(t, uint(len(d.Buffer())), newOffset)
		})
	}
}

func TestDecodeStringStrictUTF8Rejects(t *testing.T) {
	raw := []byte{0x41, 0xff}
	d := NewDataDecoder(raw, true)
	kind, size, offset, err := d.DecodeCtrlData(0)
	require.NoError(t, err)
	require.Equal(t, KindString, kind)
	_, _, err = d.DecodeString(size, offset)
	require.Error(t, err)
}

func TestDecodeStringLaxUTF8Allows(t *testing.T) {
	raw := []byte{0x41, 0xff}
	d := NewDataDecoder(raw, false)
	_, size, offset, err := d.DecodeCtrlData(0)
	require.NoError(t, err)
	_, _, err = d.DecodeString(size, offset)
	require.NoError(t, err)
}

func TestDecodeStringAliasesBuffer(t *testing.T) {
	raw, err := hex.DecodeString("4548656c6c6f")
	require.NoError(t, err)
	d := NewDataDecoder(raw, false)
	_, size, offset, err := d.DecodeCtrlData(0)
	require.NoError(t, err)
	value, _, err := d.DecodeString(size, offset)
	require.NoError(t, err)
	require.Equal(t, "Hello", value)

	// A zero-copy decode must alias the original buffer: mutating raw
	// through the backing array is visible through value.
	raw[1] = 'h'
	require.Equal(t, "hello", value)
}

func TestDecodeBytes(t *testing.T) {
	raw, err := hex.DecodeString("8548656c6c6f")
	require.NoError(t, err)
	d := NewDataDecoder(raw, false)
	kind, size, offset, err := d.DecodeCtrlData(0)
	require.NoError(t, err)
	require.Equal(t, KindBytes, kind)
	value, _, err := d.DecodeBytes(size, offset)
	require.NoError(t, err)
	require.Equal(t, []byte("Hello"), value)
}

// TestDecodePointerSizeClasses exercises all four pointer size classes
// and their distinct base offsets, per the control-byte pointer encoding.
func TestDecodePointerSizeClasses(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		expected uint
	}{
		{"size1_zero", []byte{0x20, 0x00}, 0},
		{"size1_one", []byte{0x20, 0x01}, 1},
		{"size2_zero", []byte{0x28, 0x00, 0x00}, 2048},
		{"size3_zero", []byte{0x30, 0x00, 0x00, 0x00}, 526336},
		{"size4_five", []byte{0x38, 0x00, 0x00, 0x00, 0x05}, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDataDecoder(tc.raw, false)
			kind, size, offset, err := d.DecodeCtrlData(0)
			require.NoError(t, err)
			require.Equal(t, KindPointer, kind)
			pointer, newOffset, err := d.DecodePointer(size, offset)
			require.NoError(t, err)
			require.Equal(t, tc.expected, pointer)
			require.Equal(t, uint(len(tc.raw)), newOffset)
		})
	}
}

func TestDecodeCtrlDataExtendedTypes(t *testing.T) {
	tests := map[string]Kind{
		"0001": KindInt32,
		"0002": KindUint64,
		"0003": KindUint128,
		"0004": KindSlice,
		"0007": KindBool,
		"0008": KindFloat32,
	}
	for hexStr, expected := range tests {
		t.Run(hexStr, func(t *testing.T) {
			d := decodeFromHex(t, hexStr)
			kind, _, _, err := d.DecodeCtrlData(0)
			require.NoError(t, err)
			require.Equal(t, expected, kind)
		})
	}
}

func TestDecodeCtrlDataExtendedSize(t *testing.T) {
	// size=29 -> one extra byte, size = 29 + extra.
	raw := []byte{0xe0 | 0x1d, 0x00} // map tag (0xe0) with low5=29 (0x1d)
	d := NewDataDecoder(raw, false)
	kind, size, _, err := d.DecodeCtrlData(0)
	require.NoError(t, err)
	require.Equal(t, KindMap, kind)
	require.Equal(t, uint(29), size)
}

func TestDecodeCtrlDataOffsetError(t *testing.T) {
	d := NewDataDecoder([]byte{}, false)
	_, _, _, err := d.DecodeCtrlData(0)
	require.Error(t, err)
}

func TestDecodeKeyFollowsOnePointerHop(t *testing.T) {
	// buffer: [0]=pointer to offset 2, [2]=string "ab"
	raw := []byte{0x20, 0x02, 0x42, 'a', 'b'}
	d := NewDataDecoder(raw, false)
	key, _, err := d.DecodeKey(0)
	require.NoError(t, err)
	require.Equal(t, "ab", key)
}

func TestDecodeKeyRejectsPointerToPointer(t *testing.T) {
	// buffer: [0]=pointer to offset 2, [2]=pointer to offset 4, [4]=string
	raw := []byte{0x20, 0x02, 0x20, 0x04, 0x42, 'a', 'b'}
	d := NewDataDecoder(raw, false)
	_, _, err := d.DecodeKey(0)
	require.Error(t, err)
}

func TestNextValueOffsetSkipsScalar(t *testing.T) {
	// A uint16 value (0xa1 0xff) followed by a marker byte.
	raw := []byte{0xa1, 0xff, 0x99}
	d := NewDataDecoder(raw, false)
	next, err := d.NextValueOffset(0, 1)
	require.NoError(t, err)
	require.Equal(t, uint(2), next)
}

func TestNextValueOffsetSkipsMapRecursively(t *testing.T) {
	// map{"a": "b"} (size 1) followed by a marker byte.
	raw := []byte{0xe1, 0x41, 'a', 0x41, 'b', 0x99}
	d := NewDataDecoder(raw, false)
	next, err := d.NextValueOffset(0, 1)
	require.NoError(t, err)
	require.Equal(t, uint(5), next)
}
