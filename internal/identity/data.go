package identity

// emailDomains is the general pool mixed with each country's providers.
var emailDomains = []string{"gmail.com", "outlook.com", "yahoo.com", "icloud.com", "proton.me"}

// genericEducation covers countries without their own vocabulary.
var genericEducation = []string{
	"Secondary School", "Vocational Training", "Bachelor's Degree", "Master's Degree", "Doctorate",
}

// issuer describes a card network's numbering rules.
type issuer struct {
	name     string
	prefixes []prefixRange
	length   int
	cvv      int
}

// prefixRange is an inclusive range of issuer prefixes of equal width.
type prefixRange struct {
	lo, hi int
}

var issuers = []issuer{
	{name: "Visa", prefixes: []prefixRange{{4, 4}}, length: 16, cvv: 3},
	{name: "MasterCard", prefixes: []prefixRange{{51, 55}, {2221, 2720}}, length: 16, cvv: 3},
	{name: "American Express", prefixes: []prefixRange{{34, 34}, {37, 37}}, length: 15, cvv: 4},
	{name: "Discover", prefixes: []prefixRange{{6011, 6011}, {65, 65}, {644, 649}}, length: 16, cvv: 3},
}

// platform is a social network. url holds one %s for the username and is
// empty when profiles have no public address.
type platform struct {
	name string
	url  string
}

var platforms = []platform{
	{name: "X", url: "https://x.com/%s"},
	{name: "Instagram", url: "https://www.instagram.com/%s"},
	{name: "Facebook", url: "https://www.facebook.com/%s"},
	{name: "LinkedIn", url: "https://www.linkedin.com/in/%s"},
	{name: "GitHub", url: "https://github.com/%s"},
	{name: "TikTok", url: "https://www.tiktok.com/@%s"},
	{name: "Reddit", url: "https://www.reddit.com/user/%s"},
	{name: "Snapchat"},
}

// defaultAvatarServices are the avatar URL templates used unless
// WithAvatarServices overrides them.
var defaultAvatarServices = []string{
	"https://randomuser.me/api/portraits/{gender_plural}/{n}.jpg",
	"https://api.dicebear.com/9.x/personas/svg?seed={seed}",
	"https://i.pravatar.cc/300?u={seed}",
	"https://avatar.iran.liara.run/public/{gender}?username={seed}",
}
