package classify

// CategoryKeywords associates a taxonomy category with keywords scored by the
// keyword fallback. Declaration order breaks score ties.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// DefaultCategoryKeywords returns the keyword map used by the score fallback.
func DefaultCategoryKeywords() []CategoryKeywords {
	return []CategoryKeywords{
		{"Housing", []string{
			"rent", "mortgage", "home", "apartment", "electric", "water", "gas",
			"utility", "utilities", "internet", "sewage", "waste", "homeowner",
			"hoa", "maintenance", "repair", "lawn", "garden",
		}},
		{"Transportation", []string{
			"gas", "gasoline", "fuel", "uber", "lyft", "taxi", "car", "auto",
			"vehicle", "public transit", "bus", "train", "subway", "metro",
			"parking", "toll", "maintenance", "repair", "insurance", "dmv",
			"registration",
		}},
		{"Food", []string{
			"grocery", "groceries", "supermarket", "market", "food", "restaurant",
			"cafe", "coffee", "diner", "dinner", "lunch", "breakfast", "take-out",
			"takeout", "delivery", "grubhub", "doordash", "ubereats", "bakery",
			"pizza",
		}},
		{"Healthcare", []string{
			"doctor", "hospital", "medical", "dental", "dentist", "pharmacy",
			"prescription", "drug", "health", "insurance", "therapy", "gym",
			"fitness", "vitamin", "eyecare", "optometrist", "eyeglasses",
			"contacts",
		}},
		{"Entertainment", []string{
			"movie", "theatre", "theater", "concert", "music", "spotify",
			"netflix", "hulu", "disney", "amazon prime", "streaming", "game",
			"book", "hobby", "ticket", "event", "sports", "subscription",
		}},
		{"Shopping", []string{
			"amazon", "walmart", "target", "clothing", "apparel", "department",
			"store", "mall", "retail", "electronics", "computer", "phone",
			"merchandise", "ebay", "online", "purchase", "shop",
		}},
		{"Education", []string{
			"school", "university", "college", "tuition", "education", "student",
			"loan", "book", "course", "class", "degree", "training",
		}},
		{"Travel", []string{
			"hotel", "airbnb", "airline", "flight", "travel", "trip", "vacation",
			"rental car", "cruise", "tour", "booking", "resort", "airport",
		}},
		{"Savings", []string{
			"transfer", "savings", "investment", "deposit", "stock", "bond",
			"retirement", "401k", "ira", "roth", "etf", "mutual fund",
		}},
		{"Miscellaneous", []string{
			"gift", "donation", "charity", "fee", "interest", "tax", "insurance",
			"subscription", "dues", "membership", "service", "misc",
		}},
	}
}
