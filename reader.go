package mmdb

import (
	"net/netip"

	"github.com/ipdbgo/mmdb/internal/decoder"
	"github.com/ipdbgo/mmdb/internal/mmdberrors"
	"github.com/ipdbgo/mmdb/mmdbdata"
)

const dataSectionSeparatorSize = 16

// reader holds the type-independent parts of an opened database: the
// search tree, the data-section primitive decoder, and the derived
// traversal fields. Reader[T, PT] wraps one of these with the record type
// used to decode lookup results.
type reader struct {
	buffer            []byte // full image; the search tree is buffer[:searchTreeSize]
	data              decoder.DataDecoder
	metadata          Metadata
	nodeOffsetMult    uint
	ipv4Start         uint
	ipv4StartBitDepth int
}

func newReader(image []byte, validateUTF8 bool) (*reader, error) {
	metadataStart, ok := findMetadataStart(image)
	if !ok {
		return nil, &mmdberrors.InvalidMetadataError{Reason: "metadata marker not found"}
	}

	metadataPrim := decoder.NewDataDecoder(image[metadataStart:], validateUTF8)
	metadata, err := decodeMetadata(metadataPrim)
	if err != nil {
		return nil, err
	}

	if metadata.RecordSize != 24 && metadata.RecordSize != 28 && metadata.RecordSize != 32 {
		return nil, &mmdberrors.InvalidRecordSizeError{Size: metadata.RecordSize}
	}

	nodeOffsetMult := metadata.RecordSize / 4
	searchTreeSize := metadata.NodeCount * nodeOffsetMult
	dataSectionStart := searchTreeSize + dataSectionSeparatorSize
	markerLen := uint(len(metadataStartMarker))
	dataSectionEnd := metadataStart - markerLen
	if dataSectionStart > dataSectionEnd {
		return nil, &mmdberrors.InvalidSearchTreeSizeError{}
	}

	r := &reader{
		buffer:         image,
		data:           decoder.NewDataDecoder(image[dataSectionStart:dataSectionEnd], validateUTF8),
		metadata:       metadata,
		nodeOffsetMult: nodeOffsetMult,
	}
	r.setIPv4Start()

	return r, nil
}

func (r *reader) decoderAt(offset uint) *mmdbdata.Decoder {
	return mmdbdata.NewDecoder(r.data, offset)
}

func (r *reader) resolveDataPointer(pointer uint) (uint, error) {
	if pointer < r.metadata.NodeCount+dataSectionSeparatorSize {
		return 0, &mmdberrors.CorruptSearchTreeError{}
	}
	resolved := pointer - r.metadata.NodeCount - dataSectionSeparatorSize
	if resolved >= uint(len(r.data.Buffer())) {
		return 0, &mmdberrors.CorruptSearchTreeError{}
	}
	return resolved, nil
}

func (r *reader) lookupPointer(ip netip.Addr) (uint, int, error) {
	if r.metadata.IPVersion == 4 && !ip.Is4() {
		return 0, 0, &mmdberrors.IPv4OnlyError{}
	}

	node, depth, err := r.traverseTree(ip, 128)
	if err != nil {
		return 0, 0, err
	}

	nodeCount := r.metadata.NodeCount
	switch {
	case node == nodeCount:
		return 0, depth, nil
	case node > nodeCount:
		return node, depth, nil
	default:
		return 0, depth, &mmdberrors.InvalidNodeError{}
	}
}
