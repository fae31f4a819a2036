package gear

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint is a stable digest of a set's character context and items.
// Two sets with equal fingerprints satisfy SameSet.
type Fingerprint [blake2b.Size256]byte

func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Fingerprint hashes the set in item order.
func (s *EquipmentSet) Fingerprint() Fingerprint {
	buf := make([]byte, 0, 16+len(s.Items)*(5+MaxMelds*5))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(s.Level)))
	buf = append(buf, s.Tribe, s.Gender, s.Job)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s.Items)))

	for _, it := range s.Items {
		buf = binary.LittleEndian.AppendUint32(buf, it.ID)
		if it.HighQuality {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
		for _, m := range it.Melds {
			buf = binary.LittleEndian.AppendUint32(buf, m.ID)
			buf = append(buf, m.Grade)
		}
	}

	return blake2b.Sum256(buf)
}
