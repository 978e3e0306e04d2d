// Package addressbook tracks recently observed aircraft ICAO addresses
// so that DF20/DF21 Comm-B replies — which carry no address of their
// own, only an address/parity field XORed against the transmitter's
// ICAO — can be matched to a transmitting aircraft. This is exactly the
// per-aircraft state tracking spec'd out of the commb classifier's
// core as an external collaborator's job.
//
// Addresses are learned passively from DF11/17/18 squitters, which do
// carry a plain-text ICAO address, the same recently-seen-ICAO cache
// and brute-force-the-known-fleet technique dump1090-family receivers
// use to validate solicited replies they can't otherwise attribute.
package addressbook

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"commbdecode/internal/modescrc"
)

// cleanupInterval controls how often the underlying cache sweeps
// expired entries; it has no bearing on how long an address stays
// eligible, which is governed entirely by maxAge.
const cleanupInterval = 10 * time.Second

// Book is a TTL-bounded cache of recently seen ICAO addresses.
type Book struct {
	icaoCache *cache.Cache
}

// New creates a Book that forgets addresses not observed within maxAge.
func New(maxAge time.Duration) *Book {
	return &Book{icaoCache: cache.New(maxAge, cleanupInterval)}
}

// Observe records icao as seen right now.
func (b *Book) Observe(icao uint32) {
	if icao == 0 {
		return
	}
	b.icaoCache.SetDefault(fmt.Sprint(icao), icao)
}

// Candidates returns the addresses currently unexpired in the cache.
func (b *Book) Candidates() []uint32 {
	items := b.icaoCache.Items()
	out := make([]uint32, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(uint32))
	}
	return out
}

// Resolve tries every known address against raw's address/parity field
// and returns the one that makes the frame clean (CorrectedBits == 0
// worth of trust — Resolve never invokes error correction, since
// guessing the wrong address and "correcting" toward it would fabricate
// an aircraft). It returns ok=false if no known address matches.
func (b *Book) Resolve(raw [14]byte) (icao uint32, ok bool) {
	parity := uint32(raw[11])<<16 | uint32(raw[12])<<8 | uint32(raw[13])
	address := modescrc.Compute(raw[:11]) ^ parity
	for _, candidate := range b.Candidates() {
		if address == candidate {
			return candidate, true
		}
	}
	return 0, false
}
