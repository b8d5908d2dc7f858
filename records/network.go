package records

import "github.com/ipdbgo/mmdb/mmdbdata"

// ISP is the record type for GeoIP2-ISP databases.
type ISP struct {
	AutonomousSystemNumber       *uint32
	AutonomousSystemOrganization *string
	ISP                          *string
	Organization                 *string
}

// AcceptedDatabaseTypes implements mmdbdata.Record.
func (*ISP) AcceptedDatabaseTypes() []string { return []string{"GeoIP2-ISP"} }

// UnmarshalMaxMindDB implements mmdbdata.Unmarshaler.
func (r *ISP) UnmarshalMaxMindDB(d *mmdbdata.Decoder) error {
	return d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "autonomous_system_number":
			r.AutonomousSystemNumber, err = decodeOptionalUint32(v)
		case "autonomous_system_organization":
			r.AutonomousSystemOrganization, err = decodeOptionalString(v)
		case "isp":
			r.ISP, err = decodeOptionalString(v)
		case "organization":
			r.Organization, err = decodeOptionalString(v)
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
}

// ConnectionType is the record type for GeoIP2-Connection-Type databases.
type ConnectionType struct {
	ConnectionType *string
}

// AcceptedDatabaseTypes implements mmdbdata.Record.
func (*ConnectionType) AcceptedDatabaseTypes() []string {
	return []string{"GeoIP2-Connection-Type"}
}

// UnmarshalMaxMindDB implements mmdbdata.Unmarshaler.
func (r *ConnectionType) UnmarshalMaxMindDB(d *mmdbdata.Decoder) error {
	return d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "connection_type":
			r.ConnectionType, err = decodeOptionalString(v)
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
}

// AnonymousIP is the record type for GeoIP2-Anonymous-IP databases.
type AnonymousIP struct {
	IsAnonymous        *bool
	IsAnonymousVPN     *bool
	IsHostingProvider  *bool
	IsPublicProxy      *bool
	IsTorExitNode      *bool
	IsResidentialProxy *bool
}

// AcceptedDatabaseTypes implements mmdbdata.Record.
func (*AnonymousIP) AcceptedDatabaseTypes() []string {
	return []string{"GeoIP2-Anonymous-IP"}
}

// UnmarshalMaxMindDB implements mmdbdata.Unmarshaler.
func (r *AnonymousIP) UnmarshalMaxMindDB(d *mmdbdata.Decoder) error {
	return d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "is_anonymous":
			r.IsAnonymous, err = decodeOptionalBool(v)
		case "is_anonymous_vpn":
			r.IsAnonymousVPN, err = decodeOptionalBool(v)
		case "is_hosting_provider":
			r.IsHostingProvider, err = decodeOptionalBool(v)
		case "is_public_proxy":
			r.IsPublicProxy, err = decodeOptionalBool(v)
		case "is_tor_exit_node":
			r.IsTorExitNode, err = decodeOptionalBool(v)
		case "is_residential_proxy":
			r.IsResidentialProxy, err = decodeOptionalBool(v)
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
}

// ASN is the record type for GeoLite2-ASN and DBIP-ASN-Lite databases.
type ASN struct {
	AutonomousSystemNumber       *uint32
	AutonomousSystemOrganization *string
}

// AcceptedDatabaseTypes implements mmdbdata.Record.
func (*ASN) AcceptedDatabaseTypes() []string {
	return []string{"GeoLite2-ASN", "DBIP-ASN-Lite"}
}

// UnmarshalMaxMindDB implements mmdbdata.Unmarshaler.
func (r *ASN) UnmarshalMaxMindDB(d *mmdbdata.Decoder) error {
	return d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "autonomous_system_number":
			r.AutonomousSystemNumber, err = decodeOptionalUint32(v)
		case "autonomous_system_organization":
			r.AutonomousSystemOrganization, err = decodeOptionalString(v)
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
}

// Domain is the record type for GeoIP2-Domain databases.
type Domain struct {
	Domain *string
}

// AcceptedDatabaseTypes implements mmdbdata.Record.
func (*Domain) AcceptedDatabaseTypes() []string { return []string{"GeoIP2-Domain"} }

// UnmarshalMaxMindDB implements mmdbdata.Unmarshaler.
func (r *Domain) UnmarshalMaxMindDB(d *mmdbdata.Decoder) error {
	return d.DecodeMap(func(key string, v *mmdbdata.Decoder) (bool, error) {
		var err error
		switch key {
		case "domain":
			r.Domain, err = decodeOptionalString(v)
		default:
			return false, &mmdbdata.UnknownFieldError{Key: key}
		}
		return true, err
	})
}
