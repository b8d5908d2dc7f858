package records

import "github.com/ipdbgo/mmdb/mmdbdata"

// Country is the record type for GeoIP2-Country, GeoLite2-Country, and
// DBIP-Country-Lite style databases.
type Country struct {
	Continent          *ContinentInfo
	Country            *CountryInfo
	RegisteredCountry  *CountryInfo
	RepresentedCountry *RepresentedCountryInfo
	Traits             *TraitsInfo
}

// AcceptedDatabaseTypes implements mmdbdata.Record.
func (*Country) AcceptedDatabaseTypes() []string {
	return []string{"GeoIP2-Country", "GeoLite2-Country", "DBIP-Country-Lite"}
}

// UnmarshalMaxMindDB implements mmdbdata.Unmarshaler.
func (c *Country) UnmarshalMaxMindDB(d *mmdbdata.Decoder) error {
	return d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "continent":
			c.Continent, err = decodeContinent(v)
		case "country":
			c.Country, err = decodeCountry(v)
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
