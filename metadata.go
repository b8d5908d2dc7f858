package mmdb

import (
	"bytes"
	"time"

	"github.com/ipdbgo/mmdb/internal/decoder"
	"github.com/ipdbgo/mmdb/internal/mmdberrors"
	"github.com/ipdbgo/mmdb/mmdbdata"
)

var metadataStartMarker = []byte("\xAB\xCD\xEFMaxMind.com")

// Metadata holds the metadata decoded from the trailing metadata block of
// a MaxMind DB image.
type Metadata struct {
	// Description contains localized database descriptions, keyed by
	// language code (e.g. "en", "zh-CN").
	Description map[string]string

	// DatabaseType indicates the structure of data records associated
	// with this database, e.g. "GeoIP2-City". Names starting with
	// "GeoIP" are reserved for MaxMind databases.
	DatabaseType string

	// Languages lists locale codes this database may contain localized
	// data for.
	Languages []string

	// BinaryFormatMajorVersion is the major version of the MaxMind DB
	// binary format. The only version this reader understands is 2.
	BinaryFormatMajorVersion uint

	// BinaryFormatMinorVersion is the minor version of the binary
	// format.
	BinaryFormatMinorVersion uint

	// BuildEpoch is the database build timestamp as Unix epoch seconds.
	BuildEpoch uint

	// IPVersion is 4 for an IPv4-only database or 6 for one that also
	// supports IPv6 addresses.
	IPVersion uint

	// NodeCount is the number of nodes in the search tree.
	NodeCount uint

	// RecordSize is the size in bits of each record in the search tree:
	// 24, 28, or 32.
	RecordSize uint
}

// BuildTime returns the database build time as a time.Time, converted
// from BuildEpoch.
func (m Metadata) BuildTime() time.Time {
	return time.Unix(int64(m.BuildEpoch), 0)
}

// findMetadataStart scans image backward for the metadata marker and
// returns the offset of the first byte following it, or false if the
// marker is absent.
func findMetadataStart(image []byte) (uint, bool) {
	idx := bytes.LastIndex(image, metadataStartMarker)
	if idx == -1 {
		return 0, false
	}
	return uint(idx + len(metadataStartMarker)), true
}

func decodeMetadata(prim decoder.DataDecoder) (Metadata, error) {
	d := mmdbdata.NewDecoder(prim, 0)

	var m Metadata
	err := d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "description":
			m.Description, err = decodeLocaleStringMap(v)
		case "database_type":
			m.DatabaseType, err = v.DecodeString()
		case "languages":
			m.Languages, err = decodeStringSlice(v)
		case "binary_format_major_version":
			var n uint16
			n, err = v.DecodeUint16()
			m.BinaryFormatMajorVersion = uint(n)
		case "binary_format_minor_version":
			var n uint16
			n, err = v.DecodeUint16()
			m.BinaryFormatMinorVersion = uint(n)
		case "build_epoch":
			var n uint64
			n, err = v.DecodeUint64()
			m.BuildEpoch = uint(n)
		case "ip_version":
			var n uint16
			n, err = v.DecodeUint16()
			m.IPVersion = uint(n)
		case "node_count":
			var n uint32
			n, err = v.DecodeUint32()
			m.NodeCount = uint(n)
		case "record_size":
			var n uint16
			n, err = v.DecodeUint16()
			m.RecordSize = uint(n)
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
	if err != nil {
		return Metadata{}, mmdberrors.NewInvalidMetadataError("%v", err)
	}
	return m, nil
}

func decodeLocaleStringMap(d *mmdbdata.Decoder) (map[string]string, error) {
	out := make(map[string]string)
	err := d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		value, err := v.DecodeString()
		if err != nil {
			return false, err
		}
		out[key] = value
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodeStringSlice(d *mmdbdata.Decoder) ([]string, error) {
	var out []string
	err := d.DecodeSlice(func(v *mmdbdata.Decoder) (bool, error) {
		s, err := v.DecodeString()
		if err != nil {
			return false, err
		}
		out = append(out, s)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
