package mmdb

import "github.com/ipdbgo/mmdb/internal/mmdberrors"

// Verify checks the database more strictly than decoding requires: it
// validates metadata field ranges, confirms the 16-byte data section
// separator is all zero bytes, and walks the full search tree resolving
// every leaf to make sure each one decodes without error. It never runs
// implicitly; call it explicitly when you want to validate an image
// before trusting lookups against it.
func (rd *Reader[T, PT]) Verify() error {
	if err := rd.verifyMetadata(); err != nil {
		return err
	}
	if err := rd.verifyDataSectionSeparator(); err != nil {
		return err
	}
	for result := range rd.Networks() {
		if result.Err != nil {
			return result.Err
		}
	}
	return nil
}

func (rd *Reader[T, PT]) verifyMetadata() error {
	m := rd.r.metadata

	switch {
	case m.BinaryFormatMajorVersion != 2:
		return mmdberrors.NewInvalidMetadataError(
			"binary_format_major_version: expected 2, got %d", m.BinaryFormatMajorVersion)
	case m.DatabaseType == "":
		return mmdberrors.NewInvalidMetadataError("database_type: expected non-empty string")
	case len(m.Description) == 0:
		return mmdberrors.NewInvalidMetadataError("description: expected non-empty map")
	case m.IPVersion != 4 && m.IPVersion != 6:
		return mmdberrors.NewInvalidMetadataError("ip_version: expected 4 or 6, got %d", m.IPVersion)
	case m.RecordSize != 24 && m.RecordSize != 28 && m.RecordSize != 32:
		return mmdberrors.NewInvalidMetadataError("record_size: expected 24, 28, or 32, got %d", m.RecordSize)
	case m.NodeCount == 0:
		return mmdberrors.NewInvalidMetadataError("node_count: expected a positive integer")
	}
	return nil
}

func (rd *Reader[T, PT]) verifyDataSectionSeparator() error {
	r := rd.r
	start := r.metadata.NodeCount * r.nodeOffsetMult
	separator := r.buffer[start : start+dataSectionSeparatorSize]
	for _, b := range separator {
		if b != 0 {
			return mmdberrors.NewInvalidMetadataError("data section separator contains a non-zero byte")
		}
	}
	return nil
}
