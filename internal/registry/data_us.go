package registry

import "regexp"

// englishSurnames is shared by the English-speaking countries.
var englishSurnames = latin(
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
	"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
	"Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz", "Parker",
	"Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales", "Murphy",
	"Cook", "Rogers", "Morgan", "Cooper", "Peterson", "Bailey", "Reed", "Kelly",
	"Howard", "Cox", "Ward", "Richardson", "Watson", "Brooks", "Wood", "Bennett",
	"Gray", "Hughes", "Price", "Sanders", "Patel", "Myers", "Long", "Ross", "Foster",
)

var englishMaleNames = latin(
	"James", "Robert", "John", "Michael", "David", "William", "Richard", "Joseph",
	"Thomas", "Charles", "Christopher", "Daniel", "Matthew", "Anthony", "Mark", "Donald",
	"Steven", "Paul", "Andrew", "Joshua", "Kenneth", "Kevin", "Brian", "George",
	"Timothy", "Ronald", "Edward", "Jason", "Jeffrey", "Ryan", "Jacob", "Gary",
	"Nicholas", "Eric", "Jonathan", "Stephen", "Larry", "Justin", "Scott", "Brandon",
	"Benjamin", "Samuel", "Raymond", "Gregory", "Frank", "Alexander", "Patrick", "Jack",
)

var englishFemaleNames = latin(
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica",
	"Sarah", "Karen", "Lisa", "Nancy", "Betty", "Margaret", "Sandra", "Ashley",
	"Kimberly", "Emily", "Donna", "Michelle", "Carol", "Amanda", "Dorothy", "Melissa",
	"Deborah", "Stephanie", "Rebecca", "Sharon", "Laura", "Cynthia", "Kathleen", "Amy",
	"Angela", "Shirley", "Anna", "Brenda", "Pamela", "Emma", "Nicole", "Helen",
	"Samantha", "Katherine", "Christine", "Debra", "Rachel", "Carolyn", "Janet", "Catherine",
)

var englishStreets = []string{
	"Main", "Oak", "Maple", "Cedar", "Elm", "Pine", "Walnut", "Lake",
	"Hill", "Washington", "Park", "River", "Spring", "Church", "High",
	"Meadow", "Forest", "Sunset", "Valley", "Highland", "Lincoln",
	"Willow", "Birch", "Jackson", "Madison", "Franklin", "Jefferson",
	"Adams", "Monroe", "Cherry", "Chestnut", "Dogwood", "Magnolia",
	"Poplar", "Sycamore", "Linden", "Ash", "Beech", "Laurel", "Holly",
	"Market", "Broad", "Center", "Union", "Liberty",
}

var englishEducation = []string{
	"High School", "Vocational Certificate", "Associate Degree",
	"Bachelor's Degree", "Master's Degree", "Doctorate",
}

var unitedStates = Country{
	Code:        US,
	Name:        "United States",
	Nationality: "American",

	Surnames:    englishSurnames,
	MaleNames:   englishMaleNames,
	FemaleNames: englishFemaleNames,

	Regions: []Region{
		{Name: "Alabama", Code: "AL", PostalPrefix: "35", Cities: []string{"Birmingham", "Montgomery", "Mobile", "Huntsville"}},
		{Name: "Arizona", Code: "AZ", PostalPrefix: "85", Cities: []string{"Phoenix", "Tucson", "Mesa", "Scottsdale"}},
		{Name: "California", Code: "CA", PostalPrefix: "9", Cities: []string{"Los Angeles", "San Diego", "San Jose", "San Francisco", "Sacramento", "Fresno"}},
		{Name: "Colorado", Code: "CO", PostalPrefix: "80", Cities: []string{"Denver", "Colorado Springs", "Aurora", "Boulder"}},
		{Name: "Florida", Code: "FL", PostalPrefix: "3", Cities: []string{"Miami", "Orlando", "Tampa", "Jacksonville", "Tallahassee"}},
		{Name: "Georgia", Code: "GA", PostalPrefix: "30", Cities: []string{"Atlanta", "Savannah", "Augusta", "Athens"}},
		{Name: "Illinois", Code: "IL", PostalPrefix: "60", Cities: []string{"Chicago", "Springfield", "Naperville", "Peoria"}},
		{Name: "Massachusetts", Code: "MA", PostalPrefix: "02", Cities: []string{"Boston", "Worcester", "Cambridge", "Springfield"}},
		{Name: "Michigan", Code: "MI", PostalPrefix: "48", Cities: []string{"Detroit", "Grand Rapids", "Ann Arbor", "Lansing"}},
		{Name: "Minnesota", Code: "MN", PostalPrefix: "55", Cities: []string{"Minneapolis", "Saint Paul", "Rochester", "Duluth"}},
		{Name: "Nevada", Code: "NV", PostalPrefix: "89", Cities: []string{"Las Vegas", "Reno", "Henderson"}},
		{Name: "New Jersey", Code: "NJ", PostalPrefix: "07", Cities: []string{"Newark", "Jersey City", "Trenton", "Princeton"}},
		{Name: "New York", Code: "NY", PostalPrefix: "1", Cities: []string{"New York", "Buffalo", "Rochester", "Albany", "Syracuse"}},
		{Name: "North Carolina", Code: "NC", PostalPrefix: "27", Cities: []string{"Charlotte", "Raleigh", "Durham", "Greensboro"}},
		{Name: "Ohio", Code: "OH", PostalPrefix: "4", Cities: []string{"Columbus", "Cleveland", "Cincinnati", "Toledo"}},
		{Name: "Oregon", Code: "OR", PostalPrefix: "97", Cities: []string{"Portland", "Salem", "Eugene", "Bend"}},
		{Name: "Pennsylvania", Code: "PA", PostalPrefix: "1", Cities: []string{"Philadelphia", "Pittsburgh", "Harrisburg", "Allentown"}},
		{Name: "Tennessee", Code: "TN", PostalPrefix: "37", Cities: []string{"Nashville", "Memphis", "Knoxville", "Chattanooga"}},
		{Name: "Texas", Code: "TX", PostalPrefix: "7", Cities: []string{"Houston", "Dallas", "Austin", "San Antonio", "Fort Worth", "El Paso"}},
		{Name: "Utah", Code: "UT", PostalPrefix: "84", Cities: []string{"Salt Lake City", "Provo", "Ogden"}},
		{Name: "Virginia", Code: "VA", PostalPrefix: "2", Cities: []string{"Richmond", "Virginia Beach", "Norfolk", "Arlington"}},
		{Name: "Washington", Code: "WA", PostalPrefix: "98", Cities: []string{"Seattle", "Spokane", "Tacoma", "Olympia"}},
	},
	Streets:        englishStreets,
	StreetSuffixes: []string{"St", "Ave", "Blvd", "Dr", "Ln", "Ct", "Pl", "Way", "Rd", "Cir"},

	IDFormat: Format{
		Pattern: regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`),
		Digits:  9,
	},
	PhoneFormat: Format{
		Pattern: regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`),
		Digits:  10,
	},
	PassportFormat: Format{
		Pattern: regexp.MustCompile(`^\d{9}$`),
		Digits:  9,
	},

	OccupationCategories: []OccupationCategory{
		{Name: "technology", Titles: []string{"Software Engineer", "Data Scientist", "Systems Administrator", "Product Manager", "QA Analyst", "Network Engineer"}},
		{Name: "healthcare", Titles: []string{"Registered Nurse", "Physician", "Pharmacist", "Dental Hygienist", "Physical Therapist", "Medical Assistant"}},
		{Name: "education", Titles: []string{"Elementary Teacher", "High School Teacher", "Professor", "School Counselor", "Librarian"}},
		{Name: "finance", Titles: []string{"Accountant", "Financial Analyst", "Loan Officer", "Auditor", "Insurance Agent"}},
		{Name: "service", Titles: []string{"Restaurant Manager", "Chef", "Retail Associate", "Barista", "Hotel Clerk", "Customer Service Representative"}},
		{Name: "trades", Titles: []string{"Electrician", "Plumber", "Carpenter", "Welder", "HVAC Technician", "Mechanic"}},
		{Name: "government", Titles: []string{"Police Officer", "Firefighter", "Postal Worker", "Social Worker", "Civil Engineer"}},
		{Name: "creative", Titles: []string{"Graphic Designer", "Photographer", "Writer", "Architect", "Video Editor"}},
	},
	EducationLevels: englishEducation,
	EmailProviders:  []string{"aol.com", "comcast.net", "att.net", "verizon.net"},

	LicenseRules: map[string]LicenseRule{
		"CA": {Letters: 1, Digits: 7},
		"TX": {Letters: 0, Digits: 8},
		"FL": {Letters: 1, Digits: 12},
		"NY": {Letters: 0, Digits: 9},
	},
	DefaultLicense: LicenseRule{Letters: 2, Digits: 6},
}
