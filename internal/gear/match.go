package gear

// Matches reports whether a freshly read item list is the same loadout as
// the cached one: same items in the same order, same quality flags, and
// identical materia in every slot. A difference in either the materia id
// or its grade is a mismatch.
func Matches(cached, fresh []Item) bool {
	if len(cached) != len(fresh) {
		return false
	}
	for i := range cached {
		a, b := cached[i], fresh[i]
		if a.ID != b.ID || a.HighQuality != b.HighQuality {
			return false
		}
		for j := range a.Melds {
			if a.Melds[j].ID != b.Melds[j].ID || a.Melds[j].Grade != b.Melds[j].Grade {
				return false
			}
		}
	}
	return true
}

// SameSet also compares the character context, so level or job changes
// trigger a rebuild.
func SameSet(cached, fresh *EquipmentSet) bool {
	if cached == nil || fresh == nil {
		return false
	}
	return cached.Character == fresh.Character && Matches(cached.Items, fresh.Items)
}
