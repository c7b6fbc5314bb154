package expense

// Seed category data. Ids are stable forever: transactions join on them and
// the snapshot migration refreshes the display fields of any persisted
// category whose id matches this list.

func seed(id, name, icon, color, group, groupKey, key string, t TransactionType) Category {
	return Category{ID: id, Name: name, Icon: icon, Color: color, Group: group, GroupKey: groupKey, TranslationKey: key, Type: t}
}

// SeedCategories returns a fresh copy of the built-in category list.
func SeedCategories() []Category {
	return []Category{
		// Food & Drink
		seed("1", "Dining", "utensils", "#ef4444", "Food & Drink", "food_drink", "dining", Expense),
		seed("2", "Meals", "sandwich", "#f97316", "Food & Drink", "food_drink", "meals", Expense),
		seed("3", "Drinks & Fruit", "cup-soda", "#f59e0b", "Food & Drink", "food_drink", "drinks_fruit", Expense),
		seed("4", "Snacks & Alcohol", "wine", "#e11d48", "Food & Drink", "food_drink", "snacks_alcohol", Expense),
		seed("5", "Groceries", "shopping-basket", "#22c55e", "Food & Drink", "food_drink", "groceries", Expense),
		seed("6", "Food Delivery", "bike", "#ef4444", "Food & Drink", "food_drink", "food_delivery", Expense),

		// Transport
		seed("7", "Public Transit", "tram-front", "#3b82f6", "Transport", "transport", "public_transit", Expense),
		seed("8", "Taxi & Rideshare", "car", "#2563eb", "Transport", "transport", "taxi_rideshare", Expense),
		seed("9", "Private Car", "fuel", "#1d4ed8", "Transport", "transport", "private_car", Expense),
		seed("10", "Bike Share", "bike", "#38bdf8", "Transport", "transport", "bike_share", Expense),
		seed("11", "Long Distance", "plane", "#0ea5e9", "Transport", "transport", "long_distance", Expense),

		// Shopping
		seed("12", "Clothing & Bags", "shirt", "#ec4899", "Shopping", "shopping", "clothing_bags", Expense),
		seed("13", "Beauty & Skincare", "sparkles", "#f472b6", "Shopping", "shopping", "beauty_skincare", Expense),
		seed("14", "Daily Goods", "shopping-bag", "#8b5cf6", "Shopping", "shopping", "daily_goods", Expense),
		seed("15", "Electronics", "cpu", "#a855f7", "Shopping", "shopping", "electronics", Expense),
		seed("16", "Home & Furnishing", "lamp", "#f97316", "Shopping", "shopping", "home_furnishing", Expense),
		seed("17", "Virtual Goods", "gamepad-2", "#22d3ee", "Shopping", "shopping", "virtual_goods", Expense),

		// Housing & Bills
		seed("18", "Rent & Mortgage", "home", "#f59e0b", "Housing & Bills", "housing_bills", "rent_mortgage", Expense),
		seed("19", "Utilities", "flame", "#f97316", "Housing & Bills", "housing_bills", "utilities", Expense),
		seed("20", "Property Fees", "building-2", "#d97706", "Housing & Bills", "housing_bills", "property_fees", Expense),
		seed("21", "Phone & Internet", "wifi", "#0ea5e9", "Housing & Bills", "housing_bills", "phone_internet", Expense),
		seed("22", "Repairs & Cleaning", "wrench", "#6b7280", "Housing & Bills", "housing_bills", "repairs_cleaning", Expense),

		// Entertainment
		seed("23", "Parties & Treats", "glass-water", "#a855f7", "Entertainment", "entertainment", "parties_treats", Expense),
		seed("24", "Movies & Shows", "clapperboard", "#6366f1", "Entertainment", "entertainment", "movies_shows", Expense),
		seed("25", "Sports & Fitness", "dumbbell", "#22c55e", "Entertainment", "entertainment", "sports_fitness", Expense),
		seed("26", "Leisure", "gamepad-2", "#0ea5e9", "Entertainment", "entertainment", "leisure", Expense),
		seed("27", "Travel", "luggage", "#10b981", "Entertainment", "entertainment", "travel", Expense),

		// Health & Education
		seed("28", "Medical", "stethoscope", "#14b8a6", "Health & Education", "health_education", "medical", Expense),
		seed("29", "Insurance", "shield-check", "#0f172a", "Health & Education", "health_education", "insurance", Expense),
		seed("30", "Books", "book-open", "#f97316", "Health & Education", "health_education", "books", Expense),
		seed("31", "Courses", "graduation-cap", "#2563eb", "Health & Education", "health_education", "courses", Expense),
		seed("32", "Tuition", "school", "#38bdf8", "Health & Education", "health_education", "tuition", Expense),

		// Gifts & Social
		seed("33", "Gifts & Treating", "gift", "#ec4899", "Gifts & Social", "gifts_social", "gifts_treating", Expense),
		seed("34", "Red Packets", "party-popper", "#fb7185", "Gifts & Social", "gifts_social", "red_packets", Expense),
		seed("35", "Family Support", "hand-heart", "#f472b6", "Gifts & Social", "gifts_social", "family_support", Expense),
		seed("36", "Money Lent", "hand-coins", "#f59e0b", "Gifts & Social", "gifts_social", "money_lent", Expense),
		seed("37", "Charity", "hand-heart", "#ef4444", "Gifts & Social", "gifts_social", "charity", Expense),

		// Other
		seed("38", "Pets", "paw-print", "#f59e0b", "Other", "other", "pets", Expense),
		seed("39", "Accidental Loss", "alert-circle", "#f87171", "Other", "other", "accidental_loss", Expense),
		seed("40", "Fees", "receipt", "#6b7280", "Other", "other", "fees", Expense),
		seed("41", "Bad Debt", "help-circle", "#9ca3af", "Other", "other", "bad_debt", Expense),

		// Income
		seed("42", "Salary", "badge-dollar-sign", "#22c55e", "Income", "income", "salary", Income),
		seed("43", "Bonus", "medal", "#84cc16", "Income", "income", "bonus", Income),
		seed("44", "Side Hustle", "briefcase", "#0ea5e9", "Income", "income", "side_hustle", Income),
		seed("45", "Investments", "piggy-bank", "#10b981", "Income", "income", "investment_income", Income),
		seed("46", "Gift Money", "party-popper", "#ec4899", "Income", "income", "gift_money", Income),
		seed("47", "Refunds", "rotate-ccw", "#f97316", "Income", "income", "refunds", Income),
		seed("48", "Money Borrowed", "wallet", "#06b6d4", "Income", "income", "money_borrowed", Income),
	}
}
