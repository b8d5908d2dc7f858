// Package mmdb provides a zero-copy reader for the MaxMind DB binary
// format used by GeoIP2, GeoLite2, and DBIP-style IP-to-geolocation
// databases (.mmdb files already loaded into memory).
//
// # Basic usage
//
//	data, err := os.ReadFile("GeoLite2-City.mmdb")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	db, err := mmdb.Open[records.City](data)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ip, err := netip.ParseAddr("81.2.69.142")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	city, err := db.Lookup(ip)
//	if err != nil {
//		log.Fatal(err)
//	}
//	name, _ := city.City.Names.Get("en")
//	fmt.Println(name)
//
// # Database types
//
// Open is parameterized by one of the built-in record types in the
// records package (Country, City, Enterprise, ISP, ConnectionType,
// AnonymousIP, ASN, Domain) or any caller type implementing
// mmdbdata.Record. Open rejects a database whose metadata database_type
// does not match one the requested record type accepts.
//
// # Lifetime
//
// A Reader borrows the byte slice passed to Open for as long as the
// Reader and any record it decoded are in use: string fields in decoded
// records alias that buffer directly rather than copying it.
//
// # Thread safety
//
// A Reader is immutable after Open returns. All of its methods, and all
// Lookup calls against it, are safe to use concurrently from multiple
// goroutines.
package mmdb
