package registry

import "regexp"

var australia = Country{
	Code:        AU,
	Name:        "Australia",
	Nationality: "Australian",

	Surnames:    append(latin("Kelly", "O'Brien", "Ryan", "Byrne", "Walsh", "McDonald"), englishSurnames...),
	MaleNames:   append(latin("Jack", "Cooper", "Lachlan", "Harrison", "Riley", "Hamish"), englishMaleNames...),
	FemaleNames: append(latin("Matilda", "Chloe", "Zoe", "Mia", "Ruby", "Sienna"), englishFemaleNames...),

	Regions: []Region{
		{Name: "New South Wales", Code: "NSW", PostalPrefix: "2", Cities: []string{"Sydney", "Newcastle", "Wollongong", "Parramatta"}},
		{Name: "Victoria", Code: "VIC", PostalPrefix: "3", Cities: []string{"Melbourne", "Geelong", "Ballarat", "Bendigo"}},
		{Name: "Queensland", Code: "QLD", PostalPrefix: "4", Cities: []string{"Brisbane", "Gold Coast", "Cairns", "Townsville"}},
		{Name: "South Australia", Code: "SA", PostalPrefix: "5", Cities: []string{"Adelaide", "Mount Gambier"}},
		{Name: "Western Australia", Code: "WA", PostalPrefix: "6", Cities: []string{"Perth", "Fremantle", "Bunbury"}},
		{Name: "Tasmania", Code: "TAS", PostalPrefix: "7", Cities: []string{"Hobart", "Launceston"}},
		{Name: "Northern Territory", Code: "NT", PostalPrefix: "08", Cities: []string{"Darwin", "Alice Springs"}},
		{Name: "Australian Capital Territory", Code: "ACT", PostalPrefix: "26", Cities: []string{"Canberra", "Belconnen"}},
	},
	Streets:        append([]string{"George", "Pitt", "Collins", "Flinders", "Swanston", "Bourke"}, englishStreets...),
	StreetSuffixes: []string{"Street", "Road", "Avenue", "Parade", "Terrace", "Crescent", "Drive", "Place"},

	IDFormat: Format{
		Pattern: regexp.MustCompile(`^(\d{3} \d{3} \d{3}|\d{3} \d{2} \d{3})$`),
		Digits:  9,
	},
	PhoneFormat: Format{
		Pattern:  regexp.MustCompile(`^\+61 4\d{2} \d{3} \d{3}$`),
		Prefixes: []string{"4"},
		Digits:   9,
	},
	PassportFormat: Format{
		Pattern:  regexp.MustCompile(`^P\d{8}$`),
		Prefixes: []string{"P"},
		Digits:   8,
	},

	EducationLevels: englishEducation,
	EmailProviders:  []string{"bigpond.com", "optusnet.com.au", "iinet.net.au"},
}
