package frodopir

import (
	"bytes"
	"testing"

	"github.com/itzmeanjan/frodopir/rng"
)

func zeroSeed() []byte {
	return make([]byte, SeedLen)
}

func deterministicDB(seedStr string, numRows, rowByteLen uint64) []byte {
	p := rng.NewPrngFromSeed([]byte(seedStr))
	buf := make([]byte, numRows*rowByteLen)
	if _, err := p.Read(buf); err != nil {
		panic(err)
	}
	return buf
}

func setupPair(t *testing.T, params *Params, seed, rawDB []byte) (*Server, *Client) {
	t.Helper()

	server, hintBytes, err := ServerSetup(params, seed, rawDB)
	if err != nil {
		t.Fatalf("ServerSetup: %v", err)
	}

	client, err := ClientSetup(params, seed, hintBytes)
	if err != nil {
		t.Fatalf("ClientSetup: %v", err)
	}
	return server, client
}

func queryRow(t *testing.T, server *Server, client *Client, csprng *rng.Csprng, params *Params, index uint64) []byte {
	t.Helper()

	if ok := client.PrepareQuery(index, csprng); !ok {
		t.Fatalf("PrepareQuery(%d) returned false", index)
	}

	q := make([]byte, 4*params.NumRows)
	if ok := client.Query(index, q); !ok {
		t.Fatalf("Query(%d) returned false", index)
	}

	resp, err := server.Respond(q)
	if err != nil {
		t.Fatalf("Respond(%d): %v", index, err)
	}

	row := make([]byte, params.RowByteLen)
	if ok := client.ProcessResponse(index, resp, row); !ok {
		t.Fatalf("ProcessResponse(%d) returned false", index)
	}
	return row
}

// TestEndToEndSmoke retrieves a single row from a small database: N=2^16,
// ℓ=32, b=10, seed μ = 16 zero bytes, raw DB generated from the
// deterministic PRNG seeded with μ, query index 31.
func TestEndToEndSmoke(t *testing.T) {
	const numRows, rowByteLen, bitlen = 1 << 16, 32, 10
	params, err := NewParams(numRows, rowByteLen, bitlen)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	seed := zeroSeed()
	p := rng.NewPrngFromSeed(seed)
	rawDB := make([]byte, numRows*rowByteLen)
	if _, err := p.Read(rawDB); err != nil {
		t.Fatalf("generate raw db: %v", err)
	}

	server, client := setupPair(t, params, seed, rawDB)
	csprng := rng.NewCsprngFromSeed([]byte("S1-client-csprng-seed"))

	const index = 31
	got := queryRow(t, server, client, csprng, params, index)
	want := rawDB[index*rowByteLen : (index+1)*rowByteLen]
	if !bytes.Equal(got, want) {
		t.Fatalf("decoded row %d != source row", index)
	}
}

// TestEndToEndBoundaryIndices retrieves the first and last row of the
// database, index 0 and index N-1, in sequence on the same client.
func TestEndToEndBoundaryIndices(t *testing.T) {
	const numRows, rowByteLen, bitlen = 1 << 16, 32, 10
	params, err := NewParams(numRows, rowByteLen, bitlen)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	seed := []byte("S2-setup-seed-0123456")[:SeedLen]
	rawDB := deterministicDB("S2-raw-db-seed", numRows, rowByteLen)

	server, client := setupPair(t, params, seed, rawDB)
	csprng := rng.NewCsprngFromSeed([]byte("S2-client-csprng-seed"))

	for _, index := range []uint64{0, numRows - 1} {
		got := queryRow(t, server, client, csprng, params, index)
		want := rawDB[index*rowByteLen : (index+1)*rowByteLen]
		if !bytes.Equal(got, want) {
			t.Fatalf("decoded row %d != source row", index)
		}
	}
}

// TestPrepareQueryRejectsDuplicate checks that a second PrepareQuery(31)
// on an already-prepared index returns false, and the original in-flight
// query still completes successfully.
func TestPrepareQueryRejectsDuplicate(t *testing.T) {
	const numRows, rowByteLen, bitlen = 1 << 16, 32, 10
	params, err := NewParams(numRows, rowByteLen, bitlen)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	seed := []byte("S3-setup-seed-0123456")[:SeedLen]
	rawDB := deterministicDB("S3-raw-db-seed", numRows, rowByteLen)
	server, client := setupPair(t, params, seed, rawDB)
	csprng := rng.NewCsprngFromSeed([]byte("S3-client-csprng-seed"))

	const index = 31
	if ok := client.PrepareQuery(index, csprng); !ok {
		t.Fatal("first PrepareQuery returned false")
	}
	if ok := client.PrepareQuery(index, csprng); ok {
		t.Fatal("second PrepareQuery for the same index returned true")
	}

	q := make([]byte, 4*numRows)
	if ok := client.Query(index, q); !ok {
		t.Fatal("Query returned false after rejected duplicate prepare")
	}
	resp, err := server.Respond(q)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	row := make([]byte, rowByteLen)
	if ok := client.ProcessResponse(index, resp, row); !ok {
		t.Fatal("ProcessResponse returned false")
	}
	want := rawDB[index*rowByteLen : (index+1)*rowByteLen]
	if !bytes.Equal(row, want) {
		t.Fatal("decoded row != source row after duplicate-prepare rejection")
	}
}

// TestOutOfOrderCallsRejected checks that, on a fresh client, calling
// Query before PrepareQuery fails, and so does ProcessResponse.
func TestOutOfOrderCallsRejected(t *testing.T) {
	const numRows, rowByteLen, bitlen = 1 << 16, 32, 10
	params, err := NewParams(numRows, rowByteLen, bitlen)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	seed := []byte("S4-setup-seed-0123456")[:SeedLen]
	rawDB := deterministicDB("S4-raw-db-seed", numRows, rowByteLen)
	_, client := setupPair(t, params, seed, rawDB)

	const index = 5
	q := make([]byte, 4*numRows)
	if ok := client.Query(index, q); ok {
		t.Fatal("Query succeeded before PrepareQuery")
	}

	resp := make([]byte, 4*params.Cols)
	row := make([]byte, rowByteLen)
	if ok := client.ProcessResponse(index, resp, row); ok {
		t.Fatal("ProcessResponse succeeded before PrepareQuery")
	}
}

// TestQueryStateMachineIndependence checks that two distinct indices'
// query state evolves independently, and every transition outside the
// accepting sequence returns false and changes nothing.
func TestQueryStateMachineIndependence(t *testing.T) {
	const numRows, rowByteLen, bitlen = 1 << 16, 32, 10
	params, err := NewParams(numRows, rowByteLen, bitlen)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	seed := []byte("SM-setup-seed-01234567")[:SeedLen]
	rawDB := deterministicDB("SM-raw-db-seed", numRows, rowByteLen)
	_, client := setupPair(t, params, seed, rawDB)
	csprng := rng.NewCsprngFromSeed([]byte("SM-client-csprng-seed"))

	const indexA, indexB = 10, 20

	if ok := client.PrepareQuery(indexA, csprng); !ok {
		t.Fatal("PrepareQuery(A) failed")
	}

	// B is untouched; operating on B before its own prepare must fail.
	q := make([]byte, 4*numRows)
	if ok := client.Query(indexB, q); ok {
		t.Fatal("Query(B) succeeded before PrepareQuery(B)")
	}

	if ok := client.PrepareQuery(indexB, csprng); !ok {
		t.Fatal("PrepareQuery(B) failed")
	}

	if ok := client.Query(indexA, q); !ok {
		t.Fatal("Query(A) failed")
	}
	// A is now Sent; preparing it again must fail.
	if ok := client.PrepareQuery(indexA, csprng); ok {
		t.Fatal("PrepareQuery(A) succeeded while A was Sent")
	}
	// B is still only Prepared; finalizing A must not have touched it.
	if ok := client.Query(indexB, q); !ok {
		t.Fatal("Query(B) failed after unrelated operations on A")
	}
}

// TestDeterminismOfA checks that two independently constructed clients
// derive bitwise identical A from the same seed.
func TestDeterminismOfA(t *testing.T) {
	const numRows, rowByteLen, bitlen = 1 << 16, 32, 10
	params, err := NewParams(numRows, rowByteLen, bitlen)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	seed := []byte("determinism-of-a-seed!!")[:SeedLen]
	rawDB := deterministicDB("determinism-of-a-raw-db", numRows, rowByteLen)

	_, hintBytes, err := ServerSetup(params, seed, rawDB)
	if err != nil {
		t.Fatalf("ServerSetup: %v", err)
	}

	clientOne, err := ClientSetup(params, seed, hintBytes)
	if err != nil {
		t.Fatalf("ClientSetup (1): %v", err)
	}
	clientTwo, err := ClientSetup(params, seed, hintBytes)
	if err != nil {
		t.Fatalf("ClientSetup (2): %v", err)
	}

	if !clientOne.a.Equals(clientTwo.a) {
		t.Fatal("two clients derived different A from the same seed")
	}
}

func TestNewParamsRejectsUnsupportedDims(t *testing.T) {
	cases := []struct {
		numRows, rowByteLen, bitlen uint64
	}{
		{1 << 16, 32, 9},  // wrong b for this N
		{1 << 15, 32, 10}, // N not in the supported set
		{1 << 19, 32, 10}, // wrong b for this N
	}
	for _, c := range cases {
		if _, err := NewParams(c.numRows, c.rowByteLen, c.bitlen); err == nil {
			t.Fatalf("NewParams(%d, %d, %d) succeeded, want ErrInvalidParameters", c.numRows, c.rowByteLen, c.bitlen)
		}
	}
}

func TestNewParamsAcceptsEverySupportedDim(t *testing.T) {
	cases := []struct {
		numRows, bitlen uint64
	}{
		{1 << 16, 10},
		{1 << 17, 10},
		{1 << 18, 10},
		{1 << 19, 9},
		{1 << 20, 9},
	}
	for _, c := range cases {
		if _, err := NewParams(c.numRows, 32, c.bitlen); err != nil {
			t.Fatalf("NewParams(%d, 32, %d): %v", c.numRows, c.bitlen, err)
		}
	}
}

// TestEndToEndLargeDB retrieves 32 random rows from a large database,
// each decoding correctly.
func TestEndToEndLargeDB(t *testing.T) {
	const numRows, rowByteLen, bitlen = 1 << 20, 32, 9
	params, err := NewParams(numRows, rowByteLen, bitlen)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	seed := []byte("S5-setup-seed-0123456")[:SeedLen]
	rawDB := deterministicDB("S5-raw-db-seed", numRows, rowByteLen)
	server, client := setupPair(t, params, seed, rawDB)
	csprng := rng.NewCsprngFromSeed([]byte("S5-client-csprng-seed"))

	indexPrng := rng.NewPrngFromSeed([]byte("S5-index-seed"))
	idxBuf := make([]byte, 4)

	for q := 0; q < 32; q++ {
		if _, err := indexPrng.Read(idxBuf); err != nil {
			t.Fatalf("draw index: %v", err)
		}
		index := (uint64(idxBuf[0]) | uint64(idxBuf[1])<<8 | uint64(idxBuf[2])<<16 | uint64(idxBuf[3])<<24) % numRows

		got := queryRow(t, server, client, csprng, params, index)
		want := rawDB[index*rowByteLen : (index+1)*rowByteLen]
		if !bytes.Equal(got, want) {
			t.Fatalf("query %d (index %d): decoded row != source row", q, index)
		}
	}
}
