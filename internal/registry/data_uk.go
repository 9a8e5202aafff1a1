package registry

import "regexp"

// National Insurance number alphabets. The prefix letters exclude D, F, I,
// Q, U and V.
const (
	NIPrefixLetters = "ABCEGHJKLMNOPRSTWXYZ"
	NISuffixLetters = "ABCD"
)

var unitedKingdom = Country{
	Code:        UK,
	Name:        "United Kingdom",
	Nationality: "British",

	Surnames:    englishSurnames,
	MaleNames:   append(latin("Oliver", "Harry", "George", "Arthur", "Alfie", "Freddie", "Archie"), englishMaleNames...),
	FemaleNames: append(latin("Olivia", "Amelia", "Isla", "Ava", "Poppy", "Freya", "Lily"), englishFemaleNames...),

	Regions: []Region{
		{Name: "Greater London", Code: "ENG", PostalPrefix: "SW", Cities: []string{"London", "Croydon", "Wimbledon", "Richmond"}},
		{Name: "Greater Manchester", Code: "ENG", PostalPrefix: "M", Cities: []string{"Manchester", "Salford", "Stockport"}},
		{Name: "West Midlands", Code: "ENG", PostalPrefix: "B", Cities: []string{"Birmingham", "Solihull", "Sutton Coldfield"}},
		{Name: "Merseyside", Code: "ENG", PostalPrefix: "L", Cities: []string{"Liverpool", "Bootle", "Huyton"}},
		{Name: "West Yorkshire", Code: "ENG", PostalPrefix: "LS", Cities: []string{"Leeds", "Wakefield", "Pudsey"}},
		{Name: "Tyne and Wear", Code: "ENG", PostalPrefix: "NE", Cities: []string{"Newcastle upon Tyne", "Gateshead", "North Shields"}},
		{Name: "Bristol", Code: "ENG", PostalPrefix: "BS", Cities: []string{"Bristol", "Clifton", "Bedminster"}},
		{Name: "Oxfordshire", Code: "ENG", PostalPrefix: "OX", Cities: []string{"Oxford", "Banbury", "Abingdon"}},
		{Name: "Cambridgeshire", Code: "ENG", PostalPrefix: "CB", Cities: []string{"Cambridge", "Ely", "Newmarket"}},
		{Name: "City of Edinburgh", Code: "SCT", PostalPrefix: "EH", Cities: []string{"Edinburgh", "Leith", "Portobello"}},
		{Name: "Glasgow City", Code: "SCT", PostalPrefix: "G", Cities: []string{"Glasgow", "Partick", "Govan"}},
		{Name: "Cardiff", Code: "WLS", PostalPrefix: "CF", Cities: []string{"Cardiff", "Penarth", "Llandaff"}},
		{Name: "Belfast", Code: "NIR", PostalPrefix: "BT", Cities: []string{"Belfast", "Holywood", "Lisburn"}},
	},
	Streets:        englishStreets,
	StreetSuffixes: []string{"Street", "Road", "Lane", "Avenue", "Close", "Crescent", "Gardens", "Terrace", "Way"},

	IDFormat: Format{
		Pattern: regexp.MustCompile(`^[ABCEGHJ-PRSTW-Z]{2} \d{2} \d{2} \d{2} [A-D]$`),
		Digits:  6,
	},
	PhoneFormat: Format{
		Pattern:  regexp.MustCompile(`^\+44 7\d{3} \d{6}$`),
		Prefixes: []string{"7"},
		Digits:   10,
	},
	PassportFormat: Format{
		Pattern:  regexp.MustCompile(`^[56]\d{8}$`),
		Prefixes: []string{"5", "6"},
		Digits:   8,
	},

	EducationLevels: []string{"GCSEs", "A-Levels", "BTEC Diploma", "Bachelor's Degree", "Master's Degree", "PhD"},
	EmailProviders:  []string{"btinternet.com", "sky.com", "virginmedia.com", "hotmail.co.uk"},
}
