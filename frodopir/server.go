package frodopir

import (
	"github.com/itzmeanjan/frodopir/dbcodec"
	"github.com/itzmeanjan/frodopir/matrix"
)

// Server holds the parsed database for the lifetime of one database
// version. It never stores A; the client regenerates it independently
// from the same seed. D is read-only after setup, so Respond may be
// called concurrently by any number of callers sharing one Server.
type Server struct {
	params *Params
	// dT is D transposed, cached once at setup so Respond can run the
	// row-vector × transposed-matrix kernel, whose inner loop streams
	// contiguously over dT instead of striding down columns of D.
	dT *matrix.Matrix
}

// ServerSetup runs the server side of database setup: it parses the raw
// database into D, regenerates A from seed, and computes the hint
// M = A·D. It returns the Server (ready to answer Respond calls) and the
// little-endian serialized hint, which the caller hands to every client.
func ServerSetup(params *Params, seed []byte, rawDB []byte) (*Server, []byte, error) {
	if len(seed) != SeedLen {
		return nil, nil, errInvalidSeedLen(len(seed))
	}
	if uint64(len(rawDB)) != params.NumRows*params.RowByteLen {
		return nil, nil, errInvalidDBLen(uint64(len(rawDB)), params.NumRows*params.RowByteLen)
	}

	a := matrix.GenerateFromSeed(seed, params.LWEDimension, params.NumRows)
	d := dbcodec.Parse(rawDB, params.NumRows, params.RowByteLen, params.Bitlen)
	hint := matrix.Mul(a, d)

	s := &Server{
		params: params,
		dT:     d.Transpose(),
	}

	hintBytes := make([]byte, hint.ByteLen())
	hint.SerializeLE(hintBytes)

	return s, hintBytes, nil
}

// Respond answers one serialized query, 4*N bytes, producing a 4*k byte
// response. It is stateless and pure in queryBytes: D is immutable after
// setup, so concurrent Respond calls over the same Server never race.
func (s *Server) Respond(queryBytes []byte) ([]byte, error) {
	want := s.params.NumRows * 4
	if uint64(len(queryBytes)) != want {
		return nil, errInvalidQueryLen(uint64(len(queryBytes)), want)
	}

	qTilde := matrix.DeserializeLE(queryBytes, 1, s.params.NumRows)
	cTilde := matrix.RowVecTimesTransposedMatrix(qTilde, s.dT)

	out := make([]byte, cTilde.ByteLen())
	cTilde.SerializeLE(out)
	return out, nil
}
