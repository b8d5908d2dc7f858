package records

import "github.com/ipdbgo/mmdb/mmdbdata"

// ContinentInfo describes the continent an address resolves to.
type ContinentInfo struct {
	GeonameID uint32
	Code      *string
	Names     NameMap
}

func decodeContinent(d *mmdbdata.Decoder) (*ContinentInfo, error) {
	out := &ContinentInfo{}
	err := d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "geoname_id":
			out.GeonameID, err = v.DecodeUint32()
		case "code":
			out.Code, err = decodeOptionalString(v)
		case "names":
			out.Names, err = decodeNames(v)
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CountryInfo describes a country-level entity: the country of residence,
// the registered country, or (nested as RepresentedCountryInfo) the
// country represented by a military or diplomatic address.
type CountryInfo struct {
	GeonameID         uint32
	ISOCode           *string
	Names             NameMap
	IsInEuropeanUnion bool
	Confidence        *uint16 // Enterprise only
}

func decodeCountry(d *mmdbdata.Decoder) (*CountryInfo, error) {
	out := &CountryInfo{}
	err := d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "geoname_id":
			out.GeonameID, err = v.DecodeUint32()
		case "iso_code":
			out.ISOCode, err = decodeOptionalString(v)
		case "names":
			out.Names, err = decodeNames(v)
		case "is_in_european_union":
			out.IsInEuropeanUnion, err = v.DecodeBool()
		case "confidence":
			out.Confidence, err = decodeOptionalUint16(v)
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RepresentedCountryInfo is a CountryInfo plus the represented_country
// "type" field (for example "military" for a military base address).
type RepresentedCountryInfo struct {
	CountryInfo
	Type *string
}

func decodeRepresentedCountry(d *mmdbdata.Decoder) (*RepresentedCountryInfo, error) {
	out := &RepresentedCountryInfo{}
	err := d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "geoname_id":
			out.GeonameID, err = v.DecodeUint32()
		case "iso_code":
			out.ISOCode, err = decodeOptionalString(v)
		case "names":
			out.Names, err = decodeNames(v)
		case "is_in_european_union":
			out.IsInEuropeanUnion, err = v.DecodeBool()
		case "confidence":
			out.Confidence, err = decodeOptionalUint16(v)
		case "type":
			out.Type, err = decodeOptionalString(v)
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SubdivisionInfo describes one level of a country's administrative
// subdivision (state, province, and similar).
type SubdivisionInfo struct {
	GeonameID  uint32
	ISOCode    *string
	Names      NameMap
	Confidence *uint16 // Enterprise only
}

func decodeSubdivision(d *mmdbdata.Decoder) (SubdivisionInfo, error) {
	var out SubdivisionInfo
	err := d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "geoname_id":
			out.GeonameID, err = v.DecodeUint32()
		case "iso_code":
			out.ISOCode, err = decodeOptionalString(v)
		case "names":
			out.Names, err = decodeNames(v)
		case "confidence":
			out.Confidence, err = decodeOptionalUint16(v)
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
	return out, err
}

// CityInfo describes the city an address resolves to.
type CityInfo struct {
	GeonameID  uint32
	Names      NameMap
	Confidence *uint16 // Enterprise only
}

func decodeCity(d *mmdbdata.Decoder) (*CityInfo, error) {
	out := &CityInfo{}
	err := d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "geoname_id":
			out.GeonameID, err = v.DecodeUint32()
		case "names":
			out.Names, err = decodeNames(v)
		case "confidence":
			out.Confidence, err = decodeOptionalUint16(v)
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LocationInfo carries the latitude/longitude and supporting location
// fields for a city-level record.
type LocationInfo struct {
	Latitude       float64
	Longitude      float64
	AccuracyRadius uint16
	TimeZone       *string
	MetroCode      uint16
}

func decodeLocation(d *mmdbdata.Decoder) (*LocationInfo, error) {
	out := &LocationInfo{}
	err := d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "latitude":
			out.Latitude, err = v.DecodeFloat64()
		case "longitude":
			out.Longitude, err = v.DecodeFloat64()
		case "accuracy_radius":
			out.AccuracyRadius, err = v.DecodeUint16()
		case "time_zone":
			out.TimeZone, err = decodeOptionalString(v)
		case "metro_code":
			out.MetroCode, err = v.DecodeUint16()
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PostalInfo carries the postal code for a city-level record.
type PostalInfo struct {
	Code       *string
	Confidence *uint16 // Enterprise only
}

func decodePostal(d *mmdbdata.Decoder) (*PostalInfo, error) {
	out := &PostalInfo{}
	err := d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "code":
			out.Code, err = decodeOptionalString(v)
		case "confidence":
			out.Confidence, err = decodeOptionalUint16(v)
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TraitsInfo carries the network-level traits attached to a city-level
// record (ISP, connection type, proxy/anonymizer flags, and similar).
// Most fields are populated only in Enterprise databases.
type TraitsInfo struct {
	IsAnonymousProxy             bool
	IsSatelliteProvider          bool
	IsLegitimateProxy            *bool
	StaticIPScore                *float64
	AutonomousSystemNumber       *uint32
	AutonomousSystemOrganization *string
	ISP                          *string
	Organization                 *string
	ConnectionType               *string
	Domain                       *string
	UserType                     *string
}

func decodeTraits(d *mmdbdata.Decoder) (*TraitsInfo, error) {
	out := &TraitsInfo{}
	err := d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "is_anonymous_proxy":
			out.IsAnonymousProxy, err = v.DecodeBool()
		case "is_satellite_provider":
			out.IsSatelliteProvider, err = v.DecodeBool()
		case "is_legitimate_proxy":
			out.IsLegitimateProxy, err = decodeOptionalBool(v)
		case "static_ip_score":
			out.StaticIPScore, err = decodeOptionalFloat64(v)
		case "autonomous_system_number":
			out.AutonomousSystemNumber, err = decodeOptionalUint32(v)
		case "autonomous_system_organization":
			out.AutonomousSystemOrganization, err = decodeOptionalString(v)
		case "isp":
			out.ISP, err = decodeOptionalString(v)
		case "organization":
			out.Organization, err = decodeOptionalString(v)
		case "connection_type":
			out.ConnectionType, err = decodeOptionalString(v)
		case "domain":
			out.Domain, err = decodeOptionalString(v)
		case "user_type":
			out.UserType, err = decodeOptionalString(v)
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodeOptionalString(v *mmdbdata.Decoder) (*string, error) {
	s, err := v.DecodeString()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func decodeOptionalBool(v *mmdbdata.Decoder) (*bool, error) {
	b, err := v.DecodeBool()
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func decodeOptionalUint16(v *mmdbdata.Decoder) (*uint16, error) {
	n, err := v.DecodeUint16()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func decodeOptionalUint32(v *mmdbdata.Decoder) (*uint32, error) {
	n, err := v.DecodeUint32()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func decodeOptionalFloat64(v *mmdbdata.Decoder) (*float64, error) {
	f, err := v.DecodeFloat64()
	if err != nil {
		return nil, err
	}
	return &f, nil
}
