// Package records defines the eight built-in top-level record schemas
// (Country, City, Enterprise, ISP, ConnectionType, AnonymousIP, ASN,
// Domain) and their shared sub-record types, each decoding itself from a
// *mmdbdata.Decoder without runtime reflection.
package records

import "github.com/ipdbgo/mmdb/mmdbdata"

// NameEntry is one locale/name pair out of a record's "names" map.
type NameEntry struct {
	Locale string
	Value  string
}

// NameMap holds the localized display names attached to a geographic
// entity, in wire order. A nil NameMap means the field was absent from
// the record entirely, distinct from a present-but-empty map.
type NameMap []NameEntry

// Get returns the name for the given locale and whether it was present.
func (m NameMap) Get(locale string) (string, bool) {
	for _, e := range m {
		if e.Locale == locale {
			return e.Value, true
		}
	}
	return "", false
}

func decodeNames(d *mmdbdata.Decoder) (NameMap, error) {
	out := NameMap{}
	err := d.DecodeMap(func(locale string, v *mmdbdata.Decoder) (bool, error) {
		value, err := v.DecodeString()
		if err != nil {
			return false, err
		}
		out = append(out, NameEntry{Locale: locale, Value: value})
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
