package mmdb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ipdbgo/mmdb/records"
)

// twoLeafTree builds a 2-node, 24-bit tree:
//
//	node0: left=1 (internal, -> node1), right=leaf at dataOffset2
//	node1: left=leaf at dataOffset1, right=2 (miss, == nodeCount)
func twoLeafTree(nodeCount uint32, dataOffset1, dataOffset2 uint32) []byte {
	right0 := nodeCount + 16 + dataOffset2
	left1 := nodeCount + 16 + dataOffset1
	return []byte{
		0x00, 0x00, 0x01, byte(right0 >> 16), byte(right0 >> 8), byte(right0), // node0
		byte(left1 >> 16), byte(left1 >> 8), byte(left1), byte(nodeCount >> 16), byte(nodeCount >> 8), byte(nodeCount), // node1
	}
}

func TestNetworksIPv4OnlyDatabase(t *testing.T) {
	country1 := countryDataSection() // US
	country2 := bEncMap(
		bField("country", bEncMap(
			bField("iso_code", bEncStr("CA")),
			bField("is_in_european_union", bEncBool(false)),
		)),
	)
	data := append(append([]byte{}, country1...), country2...)

	image := buildImage(twoLeafTree(2, 0, uint32(len(country1))), data, testMetadata{
		nodeCount:    2,
		recordSize:   24,
		ipVersion:    4,
		databaseType: "GeoIP2-Country",
	})

	db, err := Open[records.Country](image)
	require.NoError(t, err)

	var got []NetworkResult[records.Country]
	for res := range db.Networks() {
		got = append(got, res)
	}
	require.Len(t, got, 2)

	require.NoError(t, got[0].Err)
	require.Equal(t, "128.0.0.0/1", got[0].Prefix.String())
	require.Equal(t, "CA", *got[0].Record.Country.ISOCode)
	require.True(t, got[0].Prefix.Addr().Is4())

	require.NoError(t, got[1].Err)
	require.Equal(t, "0.0.0.0/2", got[1].Prefix.String())
	require.Equal(t, "US", *got[1].Record.Country.ISOCode)
	require.True(t, got[1].Prefix.Addr().Is4())
}

func TestNetworksDualStackWalksFromTreeRoot(t *testing.T) {
	image := buildImage(singleNodeTree(), countryDataSection(), testMetadata{
		nodeCount:    1,
		recordSize:   24,
		ipVersion:    6,
		databaseType: "GeoIP2-Country",
	})

	db, err := Open[records.Country](image)
	require.NoError(t, err)

	var got []NetworkResult[records.Country]
	for res := range db.Networks() {
		got = append(got, res)
	}
	require.Len(t, got, 1)
	require.NoError(t, got[0].Err)
	require.Equal(t, "8000::/1", got[0].Prefix.String())
	require.False(t, got[0].Prefix.Addr().Is4())
}

func TestNetworksStopsEarlyWhenCallerBreaks(t *testing.T) {
	country1 := countryDataSection()
	country2 := bEncMap(
		bField("country", bEncMap(bField("iso_code", bEncStr("CA")))),
	)
	data := append(append([]byte{}, country1...), country2...)

	image := buildImage(twoLeafTree(2, 0, uint32(len(country1))), data, testMetadata{
		nodeCount:    2,
		recordSize:   24,
		ipVersion:    4,
		databaseType: "GeoIP2-Country",
	})

	db, err := Open[records.Country](image)
	require.NoError(t, err)

	var got []NetworkResult[records.Country]
	for res := range db.Networks() {
		got = append(got, res)
		break
	}
	require.Len(t, got, 1)
}

func TestNetworksReportsCorruptPointerViaErrField(t *testing.T) {
	// right child (5) falls inside the gap between nodeCount(1) and
	// nodeCount+dataSectionSeparatorSize(17): not a valid data pointer.
	tree := []byte{
		0x00, 0x00, 0x01, // left: miss
		0x00, 0x00, 0x05, // right: corrupt
	}
	image := buildImage(tree, countryDataSection(), testMetadata{
		nodeCount:    1,
		recordSize:   24,
		ipVersion:    4,
		databaseType: "GeoIP2-Country",
	})

	db, err := Open[records.Country](image)
	require.NoError(t, err)

	var got []NetworkResult[records.Country]
	for res := range db.Networks() {
		got = append(got, res)
	}
	require.Len(t, got, 1)
	require.Error(t, got[0].Err)
}
