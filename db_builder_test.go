package mmdb

import (
	"math"

	"github.com/ipdbgo/mmdb/internal/decoder"
)

func newDataDecoderForTest(buf []byte) decoder.DataDecoder {
	return decoder.NewDataDecoder(buf, false)
}

// Hand-rolled control-byte encoders used to assemble synthetic MaxMind DB
// images for testing, mirroring the wire format the decoder package reads.

func bEncStr(s string) []byte {
	return append([]byte{0x40 | byte(len(s))}, s...)
}

func bEncU16(v uint16) []byte {
	return []byte{0xa0 | 2, byte(v >> 8), byte(v)}
}

func bEncU32(v uint32) []byte {
	return []byte{0xc0 | 4, byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func bEncU64(v uint64) []byte {
	out := []byte{8, 2} // extended: size=8, type=Uint64(9)-7=2
	for i := 7; i >= 0; i-- {
		out = append(out, byte(v>>(uint(i)*8)))
	}
	return out
}

func bEncBool(b bool) []byte {
	size := byte(0)
	if b {
		size = 1
	}
	return []byte{size, 7} // extended: type=Bool(14)-7=7
}

func bEncF64(f float64) []byte {
	bits := math.Float64bits(f)
	out := []byte{0x68}
	for i := 7; i >= 0; i-- {
		out = append(out, byte(bits>>(uint(i)*8)))
	}
	return out
}

type bKV struct {
	key []byte
	val []byte
}

func bField(name string, val []byte) bKV {
	return bKV{key: bEncStr(name), val: val}
}

func bEncMap(pairs ...bKV) []byte {
	out := []byte{0xe0 | byte(len(pairs))}
	for _, p := range pairs {
		out = append(out, p.key...)
		out = append(out, p.val...)
	}
	return out
}

func bEncSlice(elems ...[]byte) []byte {
	out := []byte{byte(len(elems)), 4} // extended: type=Slice(11)-7=4
	for _, e := range elems {
		out = append(out, e...)
	}
	return out
}

// testMetadata holds the inputs to buildImage's metadata map. A zero
// majorVersion, databaseType or description takes a default (2,
// "GeoIP2-Country", an "en" description); every other field is encoded
// as given, so callers set nodeCount, recordSize and ipVersion themselves.
type testMetadata struct {
	majorVersion uint16
	minorVersion uint16
	nodeCount    uint32
	recordSize   uint16
	ipVersion    uint16
	databaseType string
	languages    []string
	buildEpoch   uint64
	description  map[string]string
}

func bEncMetadata(m testMetadata) []byte {
	if m.majorVersion == 0 {
		m.majorVersion = 2
	}
	if m.databaseType == "" {
		m.databaseType = "GeoIP2-Country"
	}
	if m.description == nil {
		m.description = map[string]string{"en": "Test Database"}
	}
	langSlice := bEncSlice()
	if len(m.languages) > 0 {
		elems := make([][]byte, len(m.languages))
		for i, l := range m.languages {
			elems[i] = bEncStr(l)
		}
		langSlice = bEncSlice(elems...)
	}

	var descPairs []bKV
	for k, v := range m.description {
		descPairs = append(descPairs, bField(k, bEncStr(v)))
	}

	return bEncMap(
		bField("binary_format_major_version", bEncU16(m.majorVersion)),
		bField("binary_format_minor_version", bEncU16(m.minorVersion)),
		bField("node_count", bEncU32(m.nodeCount)),
		bField("record_size", bEncU16(m.recordSize)),
		bField("ip_version", bEncU16(m.ipVersion)),
		bField("database_type", bEncStr(m.databaseType)),
		bField("languages", langSlice),
		bField("build_epoch", bEncU64(m.buildEpoch)),
		bField("description", bEncMap(descPairs...)),
	)
}

// buildImage assembles a full MaxMind DB image: search tree, a 16-byte
// zero separator, the data section, the metadata marker, and the
// metadata map.
func buildImage(tree, data []byte, m testMetadata) []byte {
	out := append([]byte{}, tree...)
	out = append(out, make([]byte, dataSectionSeparatorSize)...)
	out = append(out, data...)
	out = append(out, metadataStartMarker...)
	out = append(out, bEncMetadata(m)...)
	return out
}

// singleNodeTree builds the smallest possible search tree: one 24-bit
// node whose left child misses (value == nodeCount) and whose right
// child resolves to the data section's offset-0 value.
func singleNodeTree() []byte {
	return []byte{
		0x00, 0x00, 0x01, // left = nodeCount (1): miss
		0x00, 0x00, 0x11, // right = nodeCount+16+0 (17): data offset 0
	}
}
