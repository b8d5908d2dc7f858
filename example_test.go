package mmdb

import (
	"fmt"
	"log"
	"net/netip"

	"github.com/ipdbgo/mmdb/records"
)

// ExampleOpen shows a lookup against a country database image already
// loaded into memory.
func ExampleOpen() {
	image := buildImage(singleNodeTree(), countryDataSection(), testMetadata{
		nodeCount:    1,
		recordSize:   24,
		ipVersion:    4,
		databaseType: "GeoIP2-Country",
	})

	db, err := Open[records.Country](image)
	if err != nil {
		log.Fatal(err)
	}

	record, err := db.Lookup(netip.MustParseAddr("200.1.1.1"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(*record.Country.ISOCode)
	// Output:
	// US
}

// ExampleReader_Networks enumerates every assigned network in a database.
func ExampleReader_Networks() {
	image := buildImage(singleNodeTree(), countryDataSection(), testMetadata{
		nodeCount:    1,
		recordSize:   24,
		ipVersion:    4,
		databaseType: "GeoIP2-Country",
	})

	db, err := Open[records.Country](image)
	if err != nil {
		log.Fatal(err)
	}

	for result := range db.Networks() {
		if result.Err != nil {
			log.Fatal(result.Err)
		}
		fmt.Printf("%s: %s\n", result.Prefix, *result.Record.Country.ISOCode)
	}
	// Output:
	// 128.0.0.0/1: US
}
