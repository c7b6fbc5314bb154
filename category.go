package expense

// Category is a spending or income category. Categories are seeded by the
// system and mutated only through schema migration, never by user CRUD; the
// id is the stable join key for transactions and must survive migrations.
//
// Type is optional: legacy categories without a type are shown for both
// expenses and incomes.
type Category struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Icon  string          `json:"icon"`
	Color string          `json:"color"`
	Type  TransactionType `json:"type,omitempty"`
	Group string          `json:"group,omitempty"`

	// Stable identifiers for the localization layer; display names above are
	// only the fallback.
	TranslationKey string `json:"translationKey,omitempty"`
	GroupKey       string `json:"groupKey,omitempty"`
}

// Matches reports whether the category applies to the given transaction
// type. Categories without a type match everything.
func (c Category) Matches(t TransactionType) bool {
	return c.Type == "" || c.Type == t
}
