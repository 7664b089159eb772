package logger

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// IDGenerator mints the per-request LogID.
type IDGenerator interface {
	NewLogID(ctx context.Context) LogID
}

type randomIDGenerator struct {
	randSource *rand.ChaCha8
}

var _ IDGenerator = &randomIDGenerator{}

// NewLogID draws from the seeded source until it hits a valid ID, since
// the zero LogID is reserved for "no log context".
func (gen *randomIDGenerator) NewLogID(context.Context) LogID {
	var sid LogID
	for !sid.IsValid() {
		_, _ = gen.randSource.Read(sid[:])
	}
	return sid
}

func defaultIDGenerator() IDGenerator {
	var seed [32]byte
	_ = binary.Read(crand.Reader, binary.LittleEndian, &seed)
	return &randomIDGenerator{randSource: rand.NewChaCha8(seed)}
}
