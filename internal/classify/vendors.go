package classify

import "github.com/desco97/financedashboard/internal/model"

// DefaultVendorRules is the static vendor rule table: ordered pattern to
// (category, subcategory) mappings matched against lowercased descriptions.
// Order matters for the substring and overlap passes.
func DefaultVendorRules() []model.VendorRule {
	return []model.VendorRule{
		// Payment services and credit cards
		{Pattern: "amex", Category: "Bills & Payments", Subcategory: "Credit Card"},
		{Pattern: "american express", Category: "Bills & Payments", Subcategory: "Credit Card"},
		{Pattern: "mastercard", Category: "Bills & Payments", Subcategory: "Credit Card"},
		{Pattern: "visa", Category: "Bills & Payments", Subcategory: "Credit Card"},
		{Pattern: "paypal", Category: "Shopping", Subcategory: "Online Services"},
		{Pattern: "stripe", Category: "Shopping", Subcategory: "Online Services"},
		{Pattern: "square", Category: "Shopping", Subcategory: "Retail"},
		{Pattern: "venmo", Category: "Transfer", Subcategory: "Money Transfer"},
		{Pattern: "zelle", Category: "Transfer", Subcategory: "Money Transfer"},
		{Pattern: "cash app", Category: "Transfer", Subcategory: "Money Transfer"},
		{Pattern: "etoro", Category: "Investments", Subcategory: "Trading Platform"},
		{Pattern: "payward", Category: "Savings", Subcategory: "Investments"},
		{Pattern: "kraken", Category: "Savings", Subcategory: "Investments"},
		{Pattern: "direct debit", Category: "Bills & Payments", Subcategory: "Direct Debit"},
		{Pattern: "counter credit", Category: "Income", Subcategory: "Deposit"},
		{Pattern: "hmrc", Category: "Taxes", Subcategory: "Income Tax"},
		{Pattern: "hmrc gov.uk", Category: "Bills & Payments", Subcategory: "Taxes"},
		{Pattern: "tax", Category: "Taxes", Subcategory: "General Tax"},

		// UK banking terms
		{Pattern: "instant saver", Category: "Transfer", Subcategory: "Internal Transfer"},
		{Pattern: "instant access", Category: "Transfer", Subcategory: "Internal Transfer"},
		{Pattern: "saver account", Category: "Transfer", Subcategory: "Internal Transfer"},
		{Pattern: "isa", Category: "Savings", Subcategory: "ISA"},
		{Pattern: "cash isa", Category: "Savings", Subcategory: "ISA"},
		{Pattern: "stocks and shares isa", Category: "Savings", Subcategory: "ISA"},

		// UK banks
		{Pattern: "barclays", Category: "Transfer", Subcategory: "Bank Transfer"},
		{Pattern: "hsbc", Category: "Transfer", Subcategory: "Bank Transfer"},
		{Pattern: "lloyds", Category: "Transfer", Subcategory: "Bank Transfer"},
		{Pattern: "natwest", Category: "Transfer", Subcategory: "Bank Transfer"},
		{Pattern: "nationwide", Category: "Insurance", Subcategory: "Auto Insurance"},
		{Pattern: "santander", Category: "Transfer", Subcategory: "Bank Transfer"},
		{Pattern: "monzo", Category: "Transfer", Subcategory: "Bank Transfer"},
		{Pattern: "starling", Category: "Transfer", Subcategory: "Bank Transfer"},
		{Pattern: "revolut", Category: "Transfer", Subcategory: "Bank Transfer"},

		// Banking and investments
		{Pattern: "bank transfer", Category: "Transfer", Subcategory: "Bank Transfer"},
		{Pattern: "direct deposit", Category: "Income", Subcategory: "Salary/Wages"},
		{Pattern: "interest", Category: "Income", Subcategory: "Interest", SignHint: model.SignPositive},
		{Pattern: "dividend", Category: "Income", Subcategory: "Dividends"},
		{Pattern: "vanguard", Category: "Investments", Subcategory: "Brokerage"},
		{Pattern: "fidelity", Category: "Investments", Subcategory: "Brokerage"},
		{Pattern: "schwab", Category: "Investments", Subcategory: "Brokerage"},
		{Pattern: "robinhood", Category: "Investments", Subcategory: "Brokerage"},
		{Pattern: "etrade", Category: "Investments", Subcategory: "Brokerage"},
		{Pattern: "td ameritrade", Category: "Investments", Subcategory: "Brokerage"},
		{Pattern: "ramco", Category: "Income", Subcategory: "Business Income"},
		{Pattern: "ramco manor park", Category: "Income", Subcategory: "Business Income"},
		{Pattern: "jn desai limited", Category: "Income", Subcategory: "Business Income"},
		{Pattern: "saver", Category: "Transfer", Subcategory: "Internal Transfer"},
		{Pattern: "astrenska", Category: "Income", Subcategory: "Insurance Payout"},
		{Pattern: "astrenska insuranc", Category: "Income", Subcategory: "Insurance Payout"},

		// Groceries and supermarkets
		{Pattern: "tesco", Category: "Food", Subcategory: "Groceries"},
		{Pattern: "sainsbury", Category: "Food", Subcategory: "Groceries"},
		{Pattern: "asda", Category: "Food", Subcategory: "Groceries"},
		{Pattern: "waitrose", Category: "Food", Subcategory: "Groceries"},
		{Pattern: "morrisons", Category: "Food", Subcategory: "Groceries"},
		{Pattern: "aldi", Category: "Food", Subcategory: "Groceries"},
		{Pattern: "lidl", Category: "Food", Subcategory: "Groceries"},
		{Pattern: "kroger", Category: "Food", Subcategory: "Groceries"},
		{Pattern: "walmart", Category: "Food", Subcategory: "Groceries"},
		{Pattern: "target", Category: "Shopping", Subcategory: "Department Store"},
		{Pattern: "safeway", Category: "Food", Subcategory: "Groceries"},
		{Pattern: "trader joe", Category: "Food", Subcategory: "Groceries"},
		{Pattern: "whole foods", Category: "Food", Subcategory: "Groceries"},
		{Pattern: "costco", Category: "Food", Subcategory: "Groceries"},
		{Pattern: "sams club", Category: "Food", Subcategory: "Groceries"},

		// Dining and restaurants
		{Pattern: "mcdonalds", Category: "Food", Subcategory: "Fast Food"},
		{Pattern: "mcdonald's", Category: "Food", Subcategory: "Fast Food"},
		{Pattern: "burger king", Category: "Food", Subcategory: "Fast Food"},
		{Pattern: "wendys", Category: "Food", Subcategory: "Fast Food"},
		{Pattern: "starbucks", Category: "Food", Subcategory: "Coffee Shops"},
		{Pattern: "costa", Category: "Food", Subcategory: "Coffee Shops"},
		{Pattern: "pret", Category: "Food", Subcategory: "Coffee Shops"},
		{Pattern: "subway", Category: "Transportation", Subcategory: "Public Transit"},
		{Pattern: "kfc", Category: "Food", Subcategory: "Fast Food"},
		{Pattern: "taco bell", Category: "Food", Subcategory: "Fast Food"},
		{Pattern: "pizza hut", Category: "Food", Subcategory: "Dining"},
		{Pattern: "dominos", Category: "Food", Subcategory: "Dining"},
		{Pattern: "domino's", Category: "Food", Subcategory: "Dining"},
		{Pattern: "chipotle", Category: "Food", Subcategory: "Dining"},
		{Pattern: "nandos", Category: "Food", Subcategory: "Dining"},
		{Pattern: "greggs", Category: "Food", Subcategory: "Fast Food"},

		// Food delivery
		{Pattern: "ubereats", Category: "Food", Subcategory: "Food Delivery"},
		{Pattern: "uber eats", Category: "Food", Subcategory: "Food Delivery"},
		{Pattern: "doordash", Category: "Food", Subcategory: "Food Delivery"},
		{Pattern: "grubhub", Category: "Food", Subcategory: "Food Delivery"},
		{Pattern: "deliveroo", Category: "Food", Subcategory: "Food Delivery"},
		{Pattern: "just eat", Category: "Food", Subcategory: "Food Delivery"},

		// Retail and shopping
		{Pattern: "amazon", Category: "Shopping", Subcategory: "Online Shopping"},
		{Pattern: "ebay", Category: "Shopping", Subcategory: "Online Shopping"},
		{Pattern: "etsy", Category: "Shopping", Subcategory: "Online Shopping"},
		{Pattern: "apple", Category: "Shopping", Subcategory: "Electronics"},
		{Pattern: "best buy", Category: "Shopping", Subcategory: "Electronics"},
		{Pattern: "ikea", Category: "Shopping", Subcategory: "Home Furnishings"},
		{Pattern: "wayfair", Category: "Shopping", Subcategory: "Home Furnishings"},
		{Pattern: "home depot", Category: "Shopping", Subcategory: "Home Improvement"},
		{Pattern: "lowes", Category: "Shopping", Subcategory: "Home Improvement"},
		{Pattern: "b&q", Category: "Shopping", Subcategory: "Home Improvement"},
		{Pattern: "homebase", Category: "Shopping", Subcategory: "Home Improvement"},
		{Pattern: "marshalls", Category: "Shopping", Subcategory: "Clothing"},
		{Pattern: "tj maxx", Category: "Shopping", Subcategory: "Clothing"},
		{Pattern: "tk maxx", Category: "Shopping", Subcategory: "Clothing"},
		{Pattern: "foot locker", Category: "Shopping", Subcategory: "Clothing"},
		{Pattern: "primark", Category: "Shopping", Subcategory: "Clothing"},
		{Pattern: "zara", Category: "Shopping", Subcategory: "Clothing"},
		{Pattern: "h&m", Category: "Shopping", Subcategory: "Clothing"},
		{Pattern: "asos", Category: "Shopping", Subcategory: "Clothing"},
		{Pattern: "next", Category: "Shopping", Subcategory: "Clothing"},
		{Pattern: "marks & spencer", Category: "Shopping", Subcategory: "Department Store"},
		{Pattern: "m&s", Category: "Shopping", Subcategory: "Department Store"},
		{Pattern: "john lewis", Category: "Shopping", Subcategory: "Department Store"},
		{Pattern: "argos", Category: "Shopping", Subcategory: "Department Store"},
		{Pattern: "debenhams", Category: "Shopping", Subcategory: "Department Store"},

		// Transportation and travel
		{Pattern: "uber", Category: "Transportation", Subcategory: "Taxi"},
		{Pattern: "lyft", Category: "Transportation", Subcategory: "Taxi"},
		{Pattern: "bolt", Category: "Transportation", Subcategory: "Taxi"},
		{Pattern: "gett", Category: "Transportation", Subcategory: "Taxi"},
		{Pattern: "free now", Category: "Transportation", Subcategory: "Taxi"},
		{Pattern: "black cab", Category: "Transportation", Subcategory: "Taxi"},
		{Pattern: "taxi", Category: "Transportation", Subcategory: "Taxi"},
		{Pattern: "tube", Category: "Transportation", Subcategory: "Public Transit"},
		{Pattern: "tfl", Category: "Transportation", Subcategory: "Public Transit"},
		{Pattern: "transport for london", Category: "Transportation", Subcategory: "Public Transit"},
		{Pattern: "train", Category: "Transportation", Subcategory: "Public Transit"},
		{Pattern: "bus", Category: "Transportation", Subcategory: "Public Transit"},
		{Pattern: "oyster", Category: "Transportation", Subcategory: "Public Transit"},
		{Pattern: "underground", Category: "Transportation", Subcategory: "Public Transit"},
		{Pattern: "avis", Category: "Transportation", Subcategory: "Car Rental"},
		{Pattern: "hertz", Category: "Transportation", Subcategory: "Car Rental"},
		{Pattern: "enterprise", Category: "Transportation", Subcategory: "Car Rental"},
		{Pattern: "zipcar", Category: "Transportation", Subcategory: "Car Rental"},
		{Pattern: "national rail", Category: "Transportation", Subcategory: "Public Transit"},
		{Pattern: "british rail", Category: "Transportation", Subcategory: "Public Transit"},
		{Pattern: "amtrak", Category: "Transportation", Subcategory: "Public Transit"},
		{Pattern: "airline", Category: "Travel", Subcategory: "Flights"},
		{Pattern: "british airways", Category: "Travel", Subcategory: "Flights"},
		{Pattern: "easyjet", Category: "Travel", Subcategory: "Flights"},
		{Pattern: "ryanair", Category: "Travel", Subcategory: "Flights"},
		{Pattern: "delta", Category: "Travel", Subcategory: "Flights"},
		{Pattern: "american airlines", Category: "Travel", Subcategory: "Flights"},
		{Pattern: "united", Category: "Travel", Subcategory: "Flights"},
		{Pattern: "southwest", Category: "Travel", Subcategory: "Flights"},
		{Pattern: "jet blue", Category: "Travel", Subcategory: "Flights"},
		{Pattern: "virgin atlantic", Category: "Travel", Subcategory: "Flights"},
		{Pattern: "emirates", Category: "Travel", Subcategory: "Flights"},
		{Pattern: "hotel", Category: "Travel", Subcategory: "Accommodation"},
		{Pattern: "hilton", Category: "Travel", Subcategory: "Accommodation"},
		{Pattern: "marriott", Category: "Travel", Subcategory: "Accommodation"},
		{Pattern: "airbnb", Category: "Travel", Subcategory: "Accommodation"},
		{Pattern: "booking.com", Category: "Travel", Subcategory: "Accommodation"},
		{Pattern: "expedia", Category: "Travel", Subcategory: "Travel Services"},
		{Pattern: "trivago", Category: "Travel", Subcategory: "Travel Services"},

		// Utilities and housing
		{Pattern: "rent", Category: "Housing", Subcategory: "Rent"},
		{Pattern: "mortgage", Category: "Housing", Subcategory: "Mortgage"},
		{Pattern: "council tax", Category: "Housing", Subcategory: "Property Tax"},
		{Pattern: "property tax", Category: "Taxes", Subcategory: "Property Tax"},
		{Pattern: "water", Category: "Utilities", Subcategory: "Water"},
		{Pattern: "electric", Category: "Utilities", Subcategory: "Electricity"},
		{Pattern: "electricity", Category: "Utilities", Subcategory: "Electricity"},
		{Pattern: "gas", Category: "Utilities", Subcategory: "Gas"},
		{Pattern: "heating", Category: "Utilities", Subcategory: "Gas"},
		{Pattern: "internet", Category: "Utilities", Subcategory: "Internet"},
		{Pattern: "broadband", Category: "Utilities", Subcategory: "Internet"},
		{Pattern: "wifi", Category: "Utilities", Subcategory: "Internet"},
		{Pattern: "sewage", Category: "Utilities", Subcategory: "Water"},
		{Pattern: "waste", Category: "Utilities", Subcategory: "Waste Management"},
		{Pattern: "comcast", Category: "Utilities", Subcategory: "Internet"},
		{Pattern: "xfinity", Category: "Utilities", Subcategory: "Internet"},
		{Pattern: "verizon", Category: "Utilities", Subcategory: "Phone"},
		{Pattern: "at&t", Category: "Utilities", Subcategory: "Phone"},
		{Pattern: "t-mobile", Category: "Utilities", Subcategory: "Phone"},
		{Pattern: "british gas", Category: "Utilities", Subcategory: "Gas"},
		{Pattern: "british telecom", Category: "Utilities", Subcategory: "Phone"},
		{Pattern: "bt", Category: "Utilities", Subcategory: "Internet"},
		{Pattern: "eon", Category: "Utilities", Subcategory: "Electricity"},
		{Pattern: "edf", Category: "Utilities", Subcategory: "Electricity"},
		{Pattern: "scottish power", Category: "Utilities", Subcategory: "Electricity"},
		{Pattern: "thames water", Category: "Utilities", Subcategory: "Water"},
		{Pattern: "severn trent", Category: "Utilities", Subcategory: "Water"},
		{Pattern: "virgin media", Category: "Utilities", Subcategory: "Internet"},
		{Pattern: "sky", Category: "Utilities", Subcategory: "TV/Internet"},

		// Telecommunications
		{Pattern: "vodafone", Category: "Utilities", Subcategory: "Phone"},
		{Pattern: "o2", Category: "Utilities", Subcategory: "Phone"},
		{Pattern: "ee", Category: "Utilities", Subcategory: "Phone"},
		{Pattern: "three", Category: "Utilities", Subcategory: "Phone"},
		{Pattern: "giffgaff", Category: "Utilities", Subcategory: "Phone"},
		{Pattern: "sprint", Category: "Utilities", Subcategory: "Phone"},
		{Pattern: "cricket", Category: "Utilities", Subcategory: "Phone"},
		{Pattern: "boost mobile", Category: "Utilities", Subcategory: "Phone"},

		// Subscriptions and entertainment
		{Pattern: "netflix", Category: "Entertainment", Subcategory: "Streaming Services"},
		{Pattern: "hulu", Category: "Entertainment", Subcategory: "Streaming Services"},
		{Pattern: "disney+", Category: "Entertainment", Subcategory: "Streaming Services"},
		{Pattern: "amazon prime", Category: "Entertainment", Subcategory: "Streaming Services"},
		{Pattern: "spotify", Category: "Entertainment", Subcategory: "Music"},
		{Pattern: "apple music", Category: "Entertainment", Subcategory: "Music"},
		{Pattern: "youtube", Category: "Entertainment", Subcategory: "Streaming Services"},
		{Pattern: "youtube premium", Category: "Entertainment", Subcategory: "Streaming Services"},
		{Pattern: "hbo", Category: "Entertainment", Subcategory: "Streaming Services"},
		{Pattern: "paramount+", Category: "Entertainment", Subcategory: "Streaming Services"},
		{Pattern: "peacock", Category: "Entertainment", Subcategory: "Streaming Services"},
		{Pattern: "now tv", Category: "Entertainment", Subcategory: "Streaming Services"},
		{Pattern: "cinema", Category: "Entertainment", Subcategory: "Movies"},
		{Pattern: "odeon", Category: "Entertainment", Subcategory: "Movies"},
		{Pattern: "vue", Category: "Entertainment", Subcategory: "Movies"},
		{Pattern: "cineworld", Category: "Entertainment", Subcategory: "Movies"},
		{Pattern: "amc", Category: "Entertainment", Subcategory: "Movies"},
		{Pattern: "regal", Category: "Entertainment", Subcategory: "Movies"},
		{Pattern: "cinemark", Category: "Entertainment", Subcategory: "Movies"},
		{Pattern: "concert", Category: "Entertainment", Subcategory: "Events"},
		{Pattern: "ticketmaster", Category: "Entertainment", Subcategory: "Events"},
		{Pattern: "stubhub", Category: "Entertainment", Subcategory: "Events"},
		{Pattern: "seetickets", Category: "Entertainment", Subcategory: "Events"},

		// Health and medical
		{Pattern: "bupa", Category: "Healthcare", Subcategory: "Health Insurance"},
		{Pattern: "bupa central", Category: "Healthcare", Subcategory: "Health Insurance"},
		{Pattern: "eyecare payments", Category: "Healthcare", Subcategory: "Vision"},
		{Pattern: "eyecare", Category: "Healthcare", Subcategory: "Vision"},
		{Pattern: "aig life", Category: "Insurance", Subcategory: "Life Insurance"},
		{Pattern: "royal london", Category: "Insurance", Subcategory: "Life Insurance"},
		{Pattern: "clubwise", Category: "Healthcare", Subcategory: "Fitness"},
		{Pattern: "etika", Category: "Healthcare", Subcategory: "Medical Services"},
		{Pattern: "blue rewards", Category: "Banking", Subcategory: "Rewards Program"},
		{Pattern: "axa", Category: "Healthcare", Subcategory: "Health Insurance"},
		{Pattern: "cvs", Category: "Healthcare", Subcategory: "Pharmacy"},
		{Pattern: "walgreens", Category: "Healthcare", Subcategory: "Pharmacy"},
		{Pattern: "boots", Category: "Healthcare", Subcategory: "Pharmacy"},
		{Pattern: "lloyds pharmacy", Category: "Healthcare", Subcategory: "Pharmacy"},
		{Pattern: "superdrug", Category: "Healthcare", Subcategory: "Pharmacy"},
		{Pattern: "nhs", Category: "Healthcare", Subcategory: "Medical Services"},
		{Pattern: "hospital", Category: "Healthcare", Subcategory: "Medical Services"},
		{Pattern: "clinic", Category: "Healthcare", Subcategory: "Medical Services"},
		{Pattern: "doctor", Category: "Healthcare", Subcategory: "Medical Services"},
		{Pattern: "dentist", Category: "Healthcare", Subcategory: "Dental"},
		{Pattern: "optician", Category: "Healthcare", Subcategory: "Vision"},
		{Pattern: "vision express", Category: "Healthcare", Subcategory: "Vision"},
		{Pattern: "specsavers", Category: "Healthcare", Subcategory: "Vision"},
		{Pattern: "gym", Category: "Healthcare", Subcategory: "Fitness"},
		{Pattern: "fitness", Category: "Healthcare", Subcategory: "Fitness"},
		{Pattern: "pure gym", Category: "Healthcare", Subcategory: "Fitness"},
		{Pattern: "virgin active", Category: "Healthcare", Subcategory: "Fitness"},
		{Pattern: "la fitness", Category: "Healthcare", Subcategory: "Fitness"},
		{Pattern: "planet fitness", Category: "Healthcare", Subcategory: "Fitness"},
		{Pattern: "24 hour fitness", Category: "Healthcare", Subcategory: "Fitness"},
		{Pattern: "gold's gym", Category: "Healthcare", Subcategory: "Fitness"},
		{Pattern: "equinox", Category: "Healthcare", Subcategory: "Fitness"},

		// Insurance
		{Pattern: "insurance", Category: "Insurance", Subcategory: "General Insurance"},
		{Pattern: "geico", Category: "Insurance", Subcategory: "Auto Insurance"},
		{Pattern: "state farm", Category: "Insurance", Subcategory: "Auto Insurance"},
		{Pattern: "progressive", Category: "Insurance", Subcategory: "Auto Insurance"},
		{Pattern: "allstate", Category: "Insurance", Subcategory: "Auto Insurance"},
		{Pattern: "liberty mutual", Category: "Insurance", Subcategory: "Auto Insurance"},
		{Pattern: "aviva", Category: "Insurance", Subcategory: "General Insurance"},
		{Pattern: "direct line", Category: "Insurance", Subcategory: "Auto Insurance"},
		{Pattern: "admiral", Category: "Insurance", Subcategory: "Auto Insurance"},
		{Pattern: "churchill", Category: "Insurance", Subcategory: "Home Insurance"},
		{Pattern: "hastings", Category: "Insurance", Subcategory: "Auto Insurance"},
		{Pattern: "legal & general", Category: "Insurance", Subcategory: "Life Insurance"},
		{Pattern: "prudential", Category: "Insurance", Subcategory: "Life Insurance"},

		// Education
		{Pattern: "university", Category: "Education", Subcategory: "Tuition"},
		{Pattern: "college", Category: "Education", Subcategory: "Tuition"},
		{Pattern: "school", Category: "Education", Subcategory: "Tuition"},
		{Pattern: "student loans", Category: "Education", Subcategory: "Student Loans"},
		{Pattern: "student loan", Category: "Education", Subcategory: "Student Loans"},
		{Pattern: "sallie mae", Category: "Education", Subcategory: "Student Loans"},
		{Pattern: "navient", Category: "Education", Subcategory: "Student Loans"},
		{Pattern: "great lakes", Category: "Education", Subcategory: "Student Loans"},
		{Pattern: "nelnet", Category: "Education", Subcategory: "Student Loans"},
		{Pattern: "chegg", Category: "Education", Subcategory: "Books & Supplies"},
		{Pattern: "textbooks", Category: "Education", Subcategory: "Books & Supplies"},
		{Pattern: "coursera", Category: "Education", Subcategory: "Online Courses"},
		{Pattern: "udemy", Category: "Education", Subcategory: "Online Courses"},
		{Pattern: "skillshare", Category: "Education", Subcategory: "Online Courses"},
		{Pattern: "student finance", Category: "Education", Subcategory: "Student Loans"},

		// Business and professional services
		{Pattern: "payroll", Category: "Income", Subcategory: "Salary/Wages"},
		{Pattern: "salary", Category: "Income", Subcategory: "Salary/Wages"},
		{Pattern: "wages", Category: "Income", Subcategory: "Salary/Wages"},
		{Pattern: "commission", Category: "Income", Subcategory: "Commission"},
		{Pattern: "freelance", Category: "Income", Subcategory: "Self-Employment"},
		{Pattern: "consulting", Category: "Income", Subcategory: "Self-Employment"},
		{Pattern: "upwork", Category: "Income", Subcategory: "Self-Employment"},
		{Pattern: "fiverr", Category: "Income", Subcategory: "Self-Employment"},
		{Pattern: "business", Category: "Business", Subcategory: "General Business"},
		{Pattern: "advertising", Category: "Business", Subcategory: "Marketing"},
		{Pattern: "office", Category: "Business", Subcategory: "Office Supplies"},
		{Pattern: "staples", Category: "Business", Subcategory: "Office Supplies"},
		{Pattern: "office depot", Category: "Business", Subcategory: "Office Supplies"},
		{Pattern: "quickbooks", Category: "Business", Subcategory: "Accounting"},
		{Pattern: "xero", Category: "Business", Subcategory: "Accounting"},
		{Pattern: "freshbooks", Category: "Business", Subcategory: "Accounting"},
		{Pattern: "mailchimp", Category: "Business", Subcategory: "Marketing"},
		{Pattern: "godaddy", Category: "Business", Subcategory: "Web Services"},
		{Pattern: "squarespace", Category: "Business", Subcategory: "Web Services"},
		{Pattern: "wix", Category: "Business", Subcategory: "Web Services"},
		{Pattern: "zoom", Category: "Business", Subcategory: "Software & Services"},
		{Pattern: "microsoft", Category: "Business", Subcategory: "Software & Services"},
		{Pattern: "adobe", Category: "Business", Subcategory: "Software & Services"},
		{Pattern: "google", Category: "Business", Subcategory: "Software & Services"},

		// Cash, fees, taxes, giving
		{Pattern: "atm", Category: "Cash", Subcategory: "ATM Withdrawal"},
		{Pattern: "fee", Category: "Fees & Charges", Subcategory: "Service Fee"},
		{Pattern: "interest fee", Category: "Fees & Charges", Subcategory: "Interest"},
		{Pattern: "overdraft", Category: "Fees & Charges", Subcategory: "Bank Fees"},
		{Pattern: "service charge", Category: "Fees & Charges", Subcategory: "Bank Fees"},
		{Pattern: "maintenance fee", Category: "Fees & Charges", Subcategory: "Bank Fees"},
		{Pattern: "late fee", Category: "Fees & Charges", Subcategory: "Late Payment"},
		{Pattern: "irs", Category: "Taxes", Subcategory: "Income Tax"},
		{Pattern: "income tax", Category: "Taxes", Subcategory: "Income Tax"},
		{Pattern: "charity", Category: "Giving", Subcategory: "Charitable Donations"},
		{Pattern: "donation", Category: "Giving", Subcategory: "Charitable Donations"},
		{Pattern: "gift", Category: "Giving", Subcategory: "Gifts"},
		{Pattern: "birthday", Category: "Giving", Subcategory: "Gifts"},
		{Pattern: "wedding", Category: "Giving", Subcategory: "Gifts"},
	}
}
