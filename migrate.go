package expense

import "fmt"

// Schema migrations. Each step is a pure function lifting a snapshot from
// one version to the next; Migrate composes them forward from any historical
// version to the current one. Steps must be idempotent and must never touch
// entity ids: ids are the join key between transactions and categories.

type migration struct {
	from  int
	apply func(*Snapshot) error
}

var migrations = []migration{
	{from: 1, apply: refreshSeedCategories},
}

// Migrate lifts the snapshot to the current schema version, applying every
// step in order. Snapshots predating version tags are treated as version 1.
// On failure the snapshot is left as read from disk and an error is
// returned; the caller should preserve the raw document and warn.
func Migrate(s *Snapshot) error {
	if s.SchemaVersion == 0 {
		s.SchemaVersion = 1
	}
	if s.SchemaVersion > SchemaVersion {
		return fmt.Errorf("%w: snapshot schema version %d is newer than supported %d", ErrMalformedSnapshot, s.SchemaVersion, SchemaVersion)
	}
	for _, m := range migrations {
		if s.SchemaVersion != m.from {
			continue
		}
		if err := m.apply(s); err != nil {
			return fmt.Errorf("migrating snapshot from version %d: %w", m.from, err)
		}
		s.SchemaVersion = m.from + 1
	}
	return nil
}

// refreshSeedCategories overwrites the display fields of every persisted
// category whose id still matches a seed category with the current seed
// definition. User data and unrecognized (custom) category ids are left
// untouched. This is a soft schema upgrade: it refreshes derived metadata,
// it never rewrites ids.
func refreshSeedCategories(s *Snapshot) error {
	seeds := make(map[string]Category, 48)
	for _, seed := range SeedCategories() {
		seeds[seed.ID] = seed
	}
	for i, cat := range s.Categories {
		seed, ok := seeds[cat.ID]
		if !ok {
			continue
		}
		cat.Name = seed.Name
		cat.Group = seed.Group
		cat.GroupKey = seed.GroupKey
		cat.TranslationKey = seed.TranslationKey
		if seed.Type != "" {
			cat.Type = seed.Type
		}
		s.Categories[i] = cat
	}
	return nil
}
