package records

import "github.com/ipdbgo/mmdb/mmdbdata"

// City is the record type for GeoIP2-City, GeoLite2-City, and
// DBIP-City-Lite style databases.
type City struct {
	Continent          *ContinentInfo
	Country            *CountryInfo
	Subdivisions       []SubdivisionInfo
	City               *CityInfo
	Location           *LocationInfo
	Postal             *PostalInfo
	RegisteredCountry  *CountryInfo
	RepresentedCountry *RepresentedCountryInfo
	Traits             *TraitsInfo
}

// AcceptedDatabaseTypes implements mmdbdata.Record.
func (*City) AcceptedDatabaseTypes() []string {
	return []string{"GeoIP2-City", "GeoLite2-City", "DBIP-City-Lite"}
}

// UnmarshalMaxMindDB implements mmdbdata.Unmarshaler.
func (c *City) UnmarshalMaxMindDB(d *mmdbdata.Decoder) error {
	return d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "continent":
			c.Continent, err = decodeContinent(v)
		case "country":
			c.Country, err = decodeCountry(v)
		case "subdivisions":
			c.Subdivisions, err = decodeSubdivisions(v)
		case "city":
			c.City, err = decodeCity(v)
		case "location":
			c.Location, err = decodeLocation(v)
		case "postal":
			c.Postal, err = decodePostal(v)
		case "registered_country":
			c.RegisteredCountry, err = decodeCountry(v)
		case "represented_country":
			c.RepresentedCountry, err = decodeRepresentedCountry(v)
		case "traits":
			c.Traits, err = decodeTraits(v)
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
}

func decodeSubdivisions(d *mmdbdata.Decoder) ([]SubdivisionInfo, error) {
	var out []SubdivisionInfo
	err := d.DecodeSlice(func(v *mmdbdata.Decoder) (bool, error) {
		sub, err := decodeSubdivision(v)
		if err != nil {
			return false, err
		}
		out = append(out, sub)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Enterprise is the record type for GeoIP2-Enterprise databases. It shares
// City's schema; the Confidence fields on its sub-records, and
// TraitsInfo's Enterprise-only fields, are populated where City leaves
// them nil.
type Enterprise struct {
	Continent          *ContinentInfo
	Country            *CountryInfo
	Subdivisions       []SubdivisionInfo
	City               *CityInfo
	Location           *LocationInfo
	Postal             *PostalInfo
	RegisteredCountry  *CountryInfo
	RepresentedCountry *RepresentedCountryInfo
	Traits             *TraitsInfo
}

// AcceptedDatabaseTypes implements mmdbdata.Record.
func (*Enterprise) AcceptedDatabaseTypes() []string {
	return []string{"GeoIP2-Enterprise"}
}

// UnmarshalMaxMindDB implements mmdbdata.Unmarshaler.
func (e *Enterprise) UnmarshalMaxMindDB(d *mmdbdata.Decoder) error {
	return d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "continent":
			e.Continent, err = decodeContinent(v)
		case "country":
			e.Country, err = decodeCountry(v)
		case "subdivisions":
			e.Subdivisions, err = decodeSubdivisions(v)
		case "city":
			e.City, err = decodeCity(v)
		case "location":
			e.Location, err = decodeLocation(v)
		case "postal":
			e.Postal, err = decodePostal(v)
		case "registered_country":
			e.RegisteredCountry, err = decodeCountry(v)
		case "represented_country":
			e.RepresentedCountry, err = decodeRepresentedCountry(v)
		case "traits":
			e.Traits, err = decodeTraits(v)
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
}
