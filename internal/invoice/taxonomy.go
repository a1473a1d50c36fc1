package invoice

import "strings"

// Category is one entry of the fixed extraction taxonomy: a top-level
// category name plus the descriptive list of items that fall under it.
// The same taxonomy is embedded in the extraction instruction and seeded
// into the expense_categories table, so the model's vocabulary and the
// ledger's vocabulary never drift apart.
type Category struct {
	Name  string
	Items string
}

var Taxonomy = []Category{
	{"Housing and Utilities", "Rent/Mortgage, Property Taxes, Home Maintenance/Repairs, Furniture & Appliances, Home Improvement Supplies, Cleaning Supplies, Utility Bills, Security Systems"},
	{"Groceries & Food", "Groceries, Beverages, Dining Out/Restaurant Bills, Snacks & Confectionery, Meal Delivery Services, Alcohol & Spirits"},
	{"Transportation", "Fuel/Gasoline, Car Payment/Lease, Car Maintenance/Repairs, Public Transportation, Vehicle Insurance, Parking Fees/Tolls, Ride-sharing services"},
	{"Healthcare & Personal Care", "Medical Expenses, Health Insurance, Medications/Pharmacy, Dental Care, Vision Care, Personal Hygiene Products, Beauty Products, Gym Memberships, Mental Health"},
	{"Insurance", "Health Insurance, Home Insurance, Car Insurance, Business Insurance, Life Insurance, Disability Insurance"},
	{"Entertainment & Leisure", "Streaming Services, Movies/Concert Tickets, Books/Magazines, Video Games, Sports Equipment/Activities, Hobbies & Crafts, Toys/Games, Event Tickets"},
	{"Education", "Tuition Fees, Books & School Supplies, Online Courses & Training, Seminars/Workshops, Student Loan Payments, Professional Development Programs"},
	{"Clothing & Accessories", "Apparel, Footwear, Jewelry & Watches, Handbags & Accessories, Workwear/Uniforms, Sportswear/Activewear"},
	{"Technology & Electronics", "Computers & Laptops, Smartphones & Tablets, Software & Apps, Printers/Office Equipment, Wearables, Cameras & Photography Equipment, Video/Audio Equipment, Gadgets & Accessories, Subscriptions to Software Services (e.g., Adobe)"},
	{"Office Supplies & Stationery", "Paper Products, Pens, Notebooks, and Folders, Office Furniture, Printer Ink/Cartridges, Mailing Supplies"},
	{"Business Expenses", "Advertising & Marketing, Office Space Rent, Employee Salaries, Business Meals & Entertainment, Travel Expenses, Utilities (business-specific), Inventory & Supplies, Software & Licensing Fees, Client Gifts, Professional Services"},
	{"Travel & Accommodation", "Flights, Hotels/Accommodation, Car Rentals, Travel Insurance, Meals/Per Diems, Tourism & Activities"},
	{"Pets & Pet Care", "Pet Food, Veterinary Bills, Pet Supplies, Pet Grooming, Pet Insurance"},
	{"Miscellaneous", "Gifts, Charitable Donations, Subscriptions, Legal Fees, Childcare Expenses, Laundry Services, Household Items"},
	{"Taxes", "Income Taxes, Sales Taxes, Property Taxes, Business Taxes, Import/Export Duties"},
	{"Savings & Investments", "Savings Contributions, Investment Accounts, Stocks/Bonds, Retirement Funds, Real Estate Investments"},
	{"Subscriptions & Memberships", "Club Memberships, Professional Associations, Streaming/Subscription Services (e.g., newspapers, entertainment, software)"},
}

// TaxonomyPrompt renders the taxonomy as the "(name, items)" pair list the
// extraction instruction embeds to bias the model's classification.
func TaxonomyPrompt() string {
	var b strings.Builder
	for i, c := range Taxonomy {
		b.WriteString("('" + c.Name + "', '" + c.Items + "')")
		if i < len(Taxonomy)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString(";")
		}
	}
	return b.String()
}

// CanonicalCategory resolves a model-reported category name to its taxonomy
// spelling, case-insensitively. Returns false for names outside the taxonomy.
func CanonicalCategory(name string) (string, bool) {
	norm := strings.ToLower(strings.TrimSpace(name))
	for _, c := range Taxonomy {
		if strings.ToLower(c.Name) == norm {
			return c.Name, true
		}
	}
	return "", false
}
