package game

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"strings"
)

// Snapshot captures the card names held by each zone of a deck, in zone order.
type Snapshot struct {
	Zones map[ZoneID][]string
}

// Snapshot records the current layout of every zone, including the deck list.
func (d *Deck) Snapshot() *Snapshot {
	s := &Snapshot{Zones: make(map[ZoneID][]string, len(GameplayZones)+1)}
	s.Zones[ZoneDeckList] = d.list.Names()
	for _, id := range GameplayZones {
		z, _ := d.Zone(id)
		s.Zones[id] = z.Names()
	}
	return s
}

// Checksum returns the hex SHA-256 of the snapshot's canonical form. Zones are
// written in a fixed order and card order within a zone is significant, so two
// decks shuffled with the same seed produce the same checksum.
func (s *Snapshot) Checksum() string {
	sum := sha256.Sum256([]byte(s.canonical()))
	return hex.EncodeToString(sum[:])
}

func (s *Snapshot) canonical() string {
	var buf strings.Builder
	for _, id := range append([]ZoneID{ZoneDeckList}, GameplayZones...) {
		buf.WriteString(id.String())
		buf.WriteByte(':')
		buf.WriteString(strings.Join(s.Zones[id], "\x1f"))
		buf.WriteByte('\n')
	}
	return buf.String()
}

// MarshalBinary encodes the snapshot with gob.
func (s *Snapshot) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s.Zones); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a snapshot produced by MarshalBinary.
func (s *Snapshot) UnmarshalBinary(data []byte) error {
	zones := make(map[ZoneID][]string)
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&zones); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	s.Zones = zones
	return nil
}
