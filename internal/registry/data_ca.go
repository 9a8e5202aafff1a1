package registry

import "regexp"

// PostalLetters are the letters Canada Post uses in postal codes.
const PostalLetters = "ABCEGHJKLMNPRSTVWXYZ"

var canada = Country{
	Code:        CA,
	Name:        "Canada",
	Nationality: "Canadian",

	Surnames:    append(latin("Tremblay", "Gagnon", "Roy", "Côté", "Bouchard", "Gauthier", "Morin", "Lavoie"), englishSurnames...),
	MaleNames:   append(latin("Liam", "Noah", "Lucas", "Logan", "Félix", "Étienne"), englishMaleNames...),
	FemaleNames: append(latin("Charlotte", "Chloé", "Léa", "Zoé", "Maëlle", "Avery"), englishFemaleNames...),

	Regions: []Region{
		{Name: "Ontario", Code: "ON", PostalPrefix: "M", Cities: []string{"Toronto", "North York", "Scarborough", "Etobicoke"}},
		{Name: "Quebec", Code: "QC", PostalPrefix: "H", Cities: []string{"Montreal", "Laval", "Longueuil"}},
		{Name: "British Columbia", Code: "BC", PostalPrefix: "V", Cities: []string{"Vancouver", "Victoria", "Surrey", "Burnaby"}},
		{Name: "Alberta", Code: "AB", PostalPrefix: "T", Cities: []string{"Calgary", "Edmonton", "Red Deer"}},
		{Name: "Manitoba", Code: "MB", PostalPrefix: "R", Cities: []string{"Winnipeg", "Brandon"}},
		{Name: "Saskatchewan", Code: "SK", PostalPrefix: "S", Cities: []string{"Saskatoon", "Regina"}},
		{Name: "Nova Scotia", Code: "NS", PostalPrefix: "B", Cities: []string{"Halifax", "Dartmouth", "Sydney"}},
		{Name: "New Brunswick", Code: "NB", PostalPrefix: "E", Cities: []string{"Moncton", "Saint John", "Fredericton"}},
		{Name: "Newfoundland and Labrador", Code: "NL", PostalPrefix: "A", Cities: []string{"St. John's", "Mount Pearl"}},
		{Name: "Prince Edward Island", Code: "PE", PostalPrefix: "C", Cities: []string{"Charlottetown", "Summerside"}},
	},
	Streets:        append([]string{"Yonge", "Bloor", "King", "Queen", "Dundas", "Sherbrooke", "Granville"}, englishStreets...),
	StreetSuffixes: []string{"Street", "Avenue", "Road", "Drive", "Crescent", "Boulevard", "Court"},

	IDFormat: Format{
		Pattern: regexp.MustCompile(`^\d{3}-\d{3}-\d{3}$`),
		Digits:  9,
	},
	PhoneFormat: Format{
		Pattern: regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`),
		Digits:  10,
	},
	PassportFormat: Format{
		Pattern: regexp.MustCompile(`^\d{8}$`),
		Digits:  8,
	},

	EducationLevels: englishEducation,
	EmailProviders:  []string{"rogers.com", "shaw.ca", "sympatico.ca", "videotron.ca"},
}
