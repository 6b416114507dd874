package screenscraper

// Region codes supported by the provider, in fallback priority order.
// Entries at the front are searched first. Generated from the
// regionsListe.php API call.
var RegionChain = []string{
	"wor", // World
	"eu",  // Europe
	"us",  // USA
	"jp",  // Japan
	"ss",  // ScreenScraper
	"ame", // American continent
	"asi", // Asia
	"au",  // Australia
	"bg",  // Bulgaria
	"br",  // Brazil
	"ca",  // Canada
	"cl",  // Chile
	"cn",  // China
	"cus", // Custom
	"cz",  // Czech republic
	"de",  // Germany
	"dk",  // Denmark
	"fi",  // Finland
	"fr",  // France
	"gr",  // Greece
	"hu",  // Hungary
	"il",  // Israel
	"it",  // Italy
	"kr",  // Korea
	"kw",  // Kuwait
	"mor", // Middle East
	"nl",  // Netherlands
	"no",  // Norway
	"nz",  // New Zealand
	"oce", // Oceania
	"pe",  // Peru
	"pl",  // Poland
	"pt",  // Portugal
	"ru",  // Russia
	"se",  // Sweden
	"sk",  // Slovakia
	"sp",  // Spain
	"tr",  // Turkey
	"tw",  // Taiwan
	"uk",  // United Kingdom
}

// Language codes supported by the provider, in fallback priority order.
// Generated from the languesListe.php API call.
var LanguageChain = []string{
	"en", // English
	"es", // Spanish
	"ja", // Japanese
	"cz", // Czech
	"da", // Danish
	"de", // German
	"fi", // Finnish
	"fr", // French
	"hu", // Hungarian
	"it", // Italian
	"ko", // Korean
	"nl", // Dutch
	"no", // Norwegian
	"pl", // Polish
	"pt", // Portuguese
	"ru", // Russian
	"sk", // Slovak
	"sv", // Swedish
	"tr", // Turkish
	"zh", // Chinese
}

// Chain is an ordered preference list of region or language codes with
// the user's preferred value promoted to the front. Immutable for the
// lifetime of one scraper instance.
type Chain []string

// NewChain builds a chain from the base priority list with preferred
// moved to position zero. An unknown preferred value is still honored
// first; the base order follows unchanged.
func NewChain(preferred string, base []string) Chain {
	chain := make(Chain, 0, len(base)+1)
	if preferred != "" {
		chain = append(chain, preferred)
	}
	for _, code := range base {
		if code == preferred {
			continue
		}
		chain = append(chain, code)
	}
	return chain
}

// Preferred returns the user's preferred code, the chain's front element.
func (c Chain) Preferred() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}
