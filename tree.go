package mmdb

import (
	"net/netip"

	"github.com/ipdbgo/mmdb/internal/mmdberrors"
)

// readNodeBySize reads the left (bit==0) or right (bit==1) record of the
// node at offset, for the given record size in bits.
func readNodeBySize(buffer []byte, offset, bit, recordSize uint) uint {
	switch recordSize {
	case 24:
		offset += bit * 3
		return (uint(buffer[offset]) << 16) |
			(uint(buffer[offset+1]) << 8) |
			uint(buffer[offset+2])
	case 28:
		if bit == 0 {
			return ((uint(buffer[offset+3]) & 0xF0) << 20) |
				(uint(buffer[offset]) << 16) |
				(uint(buffer[offset+1]) << 8) |
				uint(buffer[offset+2])
		}
		return ((uint(buffer[offset+3]) & 0x0F) << 24) |
			(uint(buffer[offset+4]) << 16) |
			(uint(buffer[offset+5]) << 8) |
			uint(buffer[offset+6])
	case 32:
		offset += bit * 4
		return (uint(buffer[offset]) << 24) |
			(uint(buffer[offset+1]) << 16) |
			(uint(buffer[offset+2]) << 8) |
			uint(buffer[offset+3])
	default:
		return 0
	}
}

// setIPv4Start walks 96 bits left from the tree root so that IPv4 lookups
// in a dual-stack database enter the tree at the nested IPv4 subtree
// instead of walking the ::/96 prefix every time. IPv4-mapped IPv6
// addresses (::ffff:a.b.c.d) are not IPv4 addresses to netip and walk
// from the root.
func (r *reader) setIPv4Start() {
	if r.metadata.IPVersion != 6 {
		r.ipv4StartBitDepth = 96
		return
	}

	nodeCount := r.metadata.NodeCount
	node := uint(0)
	i := 0
	for ; i < 96 && node < nodeCount; i++ {
		node = readNodeBySize(r.buffer, node*r.nodeOffsetMult, 0, r.metadata.RecordSize)
	}
	r.ipv4Start = node
	r.ipv4StartBitDepth = i
}

func (r *reader) traverseTree(ip netip.Addr, stopBit int) (uint, int, error) {
	switch r.metadata.RecordSize {
	case 24:
		n, depth := r.traverseTreeN(ip, stopBit, 6, 3)
		return n, depth, nil
	case 28:
		n, depth := r.traverseTree28(ip, stopBit)
		return n, depth, nil
	case 32:
		n, depth := r.traverseTreeN(ip, stopBit, 8, 4)
		return n, depth, nil
	default:
		return 0, 0, &mmdberrors.InvalidRecordSizeError{Size: r.metadata.RecordSize}
	}
}

// traverseTreeN walks the tree for the byte-aligned record sizes (24 and
// 32 bits), where nodeStride is the per-node byte width and halfStride is
// the byte width of one child record.
func (r *reader) traverseTreeN(ip netip.Addr, stopBit int, nodeStride, halfStride uint) (uint, int) {
	i := 0
	node := uint(0)
	if ip.Is4() {
		i = r.ipv4StartBitDepth
		node = r.ipv4Start
	}
	nodeCount := r.metadata.NodeCount
	buffer := r.buffer
	ip16 := ip.As16()

	for ; i < stopBit && node < nodeCount; i++ {
		byteIdx := i >> 3
		bitPos := 7 - (i & 7)
		bit := (uint(ip16[byteIdx]) >> bitPos) & 1

		offset := node*nodeStride + bit*halfStride
		node = readBigEndian(buffer, offset, halfStride)
	}
	return node, i
}

func (r *reader) traverseTree28(ip netip.Addr, stopBit int) (uint, int) {
	i := 0
	node := uint(0)
	if ip.Is4() {
		i = r.ipv4StartBitDepth
		node = r.ipv4Start
	}
	nodeCount := r.metadata.NodeCount
	buffer := r.buffer
	ip16 := ip.As16()

	for ; i < stopBit && node < nodeCount; i++ {
		byteIdx := i >> 3
		bitPos := 7 - (i & 7)
		bit := (uint(ip16[byteIdx]) >> bitPos) & 1

		baseOffset := node * 7
		sharedByte := uint(buffer[baseOffset+3])
		mask := uint(0xF0 >> (bit * 4))
		shift := 20 + bit*4
		nibble := (sharedByte & mask) << shift
		offset := baseOffset + bit*4

		node = nibble |
			(uint(buffer[offset]) << 16) |
			(uint(buffer[offset+1]) << 8) |
			uint(buffer[offset+2])
	}
	return node, i
}

func readBigEndian(buffer []byte, offset, width uint) uint {
	var v uint
	for _, b := range buffer[offset : offset+width] {
		v = (v << 8) | uint(b)
	}
	return v
}
