package frodopir

import (
	"github.com/itzmeanjan/frodopir/dbcodec"
	"github.com/itzmeanjan/frodopir/matrix"
	"github.com/itzmeanjan/frodopir/rng"
)

// Client holds the regenerated public matrix A, the downloaded hint M,
// and the in-flight query cache. A Client is not safe for concurrent use
// by multiple goroutines: the query cache is exclusive to its owner, and
// every mutating call is expected to be strictly ordered by the caller,
// exactly as the rest of the scheme's state machines are.
type Client struct {
	params *Params
	a      *matrix.Matrix
	m      *matrix.Matrix

	queries map[uint64]*queryEntry
}

// ClientSetup regenerates A from seed and deserializes the hint M from
// hintBytes (4*n*k bytes, as produced by ServerSetup).
func ClientSetup(params *Params, seed []byte, hintBytes []byte) (*Client, error) {
	if len(seed) != SeedLen {
		return nil, errInvalidSeedLen(len(seed))
	}
	want := 4 * params.LWEDimension * params.Cols
	if uint64(len(hintBytes)) != want {
		return nil, errInvalidHintLen(uint64(len(hintBytes)), want)
	}

	a := matrix.GenerateFromSeed(seed, params.LWEDimension, params.NumRows)
	m := matrix.DeserializeLE(hintBytes, params.LWEDimension, params.Cols)

	return &Client{
		params:  params,
		a:       a,
		m:       m,
		queries: make(map[uint64]*queryEntry),
	}, nil
}

// PrepareQuery samples fresh secret and error vectors for dbRowIndex and
// caches the resulting (b, c) pair. It returns false, making no change to
// the client's state, if an entry already exists for dbRowIndex.
func (c *Client) PrepareQuery(dbRowIndex uint64, csprng *rng.Csprng) bool {
	if _, exists := c.queries[dbRowIndex]; exists {
		return false
	}

	s := matrix.SampleTernaryVector(csprng, c.params.LWEDimension)
	e := matrix.SampleTernaryVector(csprng, c.params.NumRows)

	b := matrix.Add(matrix.Mul(s, c.a), e)
	cc := matrix.Mul(s, c.m)

	c.queries[dbRowIndex] = &queryEntry{status: queryPrepared, b: b, c: cc}
	return true
}

// PrepareQueries prepares a query for every index in dbRowIndices,
// returning one success boolean per index in the same order. No retry is
// attempted for indices that already have a cache entry.
func (c *Client) PrepareQueries(dbRowIndices []uint64, csprng *rng.Csprng) []bool {
	out := make([]bool, len(dbRowIndices))
	for i, idx := range dbRowIndices {
		out[i] = c.PrepareQuery(idx, csprng)
	}
	return out
}

// Query finalizes the prepared query for dbRowIndex: it adds the noised
// indicator Δ at position dbRowIndex of the cached b vector, serializes b
// into outQuery (4*N bytes), and transitions the entry to sent. It
// returns false, making no change, unless an entry exists for
// dbRowIndex and its status is Prepared; it also returns false, making no
// change, if outQuery is not 4*N bytes long.
func (c *Client) Query(dbRowIndex uint64, outQuery []byte) bool {
	entry, exists := c.queries[dbRowIndex]
	if !exists || entry.status != queryPrepared {
		return false
	}
	if uint64(len(outQuery)) != 4*c.params.NumRows {
		return false
	}

	entry.b.AddAt(0, dbRowIndex, c.params.Delta())
	entry.b.SerializeLE(outQuery)
	entry.status = querySent

	return true
}

// ProcessResponse decodes a server response for dbRowIndex: it subtracts
// the cached c vector from the deserialized response, rounds each element
// by Δ, serializes the resulting row back into its original ℓ-byte form
// via dbcodec, and removes the cache entry. It returns false, making no
// change, unless an entry exists for dbRowIndex and its status is Sent;
// it also returns false, making no change, if responseBytes is not 4*k
// bytes or outRow is not ℓ bytes long.
func (c *Client) ProcessResponse(dbRowIndex uint64, responseBytes []byte, outRow []byte) bool {
	entry, exists := c.queries[dbRowIndex]
	if !exists || entry.status != querySent {
		return false
	}
	if uint64(len(responseBytes)) != 4*c.params.Cols || uint64(len(outRow)) != c.params.RowByteLen {
		return false
	}

	cTilde := matrix.DeserializeLE(responseBytes, 1, c.params.Cols)

	delta := c.params.Delta()
	rho := uint32(c.params.Rho())
	half := delta / 2

	decoded := matrix.New(1, c.params.Cols)
	cRow := entry.c.Row(0)
	cTildeRow := cTilde.Row(0)
	decodedRow := decoded.Row(0)

	for j := uint64(0); j < c.params.Cols; j++ {
		u := cTildeRow[j] - cRow[j]
		quot := u / delta
		rem := u % delta

		rounded := quot
		if rem > half {
			rounded++
		}
		decodedRow[j] = rounded % rho
	}

	dbcodec.SerializeRow(decodedRow, c.params.RowByteLen, c.params.Bitlen, outRow)
	delete(c.queries, dbRowIndex)

	return true
}
