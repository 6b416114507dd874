package screenscraper

// UnknownPlatformID is returned for platforms the provider does not
// know. Scraping with it is unreliable: the provider falls back to a
// fuzzy match and usually returns an unrelated game.
const UnknownPlatformID = 0

// platformIDs maps compact platform names to provider system ids.
// Generated from the systemesListe.php API call.
var platformIDs = map[string]int{
	"3do":         29,
	"cpc":         65,
	"a2600":       26,
	"a5200":       40,
	"a7800":       41,
	"atari-8bit":  43,
	"jaguar":      27,
	"jaguarcd":    171,
	"lynx":        28,
	"atari-st":    42,
	"wswan":       45,
	"wswancolor":  46,
	"loopy":       98,
	"pv1000":      74,
	"cvision":     48,
	"c16":         99,
	"c64":         66,
	"amiga":       64,
	"cd32":        130,
	"cdtv":        129,
	"vic20":       73,
	"arcadia2001": 94,
	"avision":     78,
	"scvision":    67,
	"channelf":    80,
	"fmtmarty":    97,
	"superacan":   100,
	"gp32":        101,
	"vectrex":     102,
	"gamemaster":  103,
	"lutro":       206,
	"tic80":       222,
	"odyssey2":    104,
	"mame":        75,
	"ivision":     115,
	"msdos":       135,
	"msx":         113,
	"msx2":        116,
	"windows":     136,
	"xbox":        32,
	"xbox360":     33,
	"pce":         31,
	"pcecd":       114,
	"pcfx":        72,
	"sgx":         105,
	"n3ds":        17,
	"n64":         14,
	"n64dd":       122,
	"nds":         15,
	"ndsi":        15,
	"ereader":     119,
	"fds":         106,
	"gb":          9,
	"gba":         12,
	"gbcolor":     10,
	"gamecube":    13,
	"nes":         3,
	"pokemini":    211,
	"satellaview": 107,
	"snes":        4,
	"sufami":      108,
	"vb":          11,
	"wii":         16,
	"wiiu":        18,
	"g7400":       104,
	"scummvm":     123,
	"32x":         19,
	"dreamcast":   23,
	"gamegear":    21,
	"sms":         2,
	"megadrive":   1,
	"megacd":      20,
	"saturn":      22,
	"sg1000":      109,
	"x68k":        79,
	"spectrum":    76,
	"zx81":        77,
	"neocd":       70,
	"ngp":         25,
	"ngpcolor":    82,
	"psx":         57,
	"ps2":         58,
	"ps3":         59,
	"psp":         61,
	"psvita":      62,
	"tigergame":   121,
	"vsmile":      120,
	"supervision": 207,
}

// platformNames is the reverse lookup, built once at init. Where two
// compact names share a provider id the lexicographically smaller name
// wins; the table is only used for display.
var platformNames = func() map[int]string {
	names := make(map[int]string, len(platformIDs))
	for name, id := range platformIDs {
		if existing, ok := names[id]; !ok || name < existing {
			names[id] = name
		}
	}
	return names
}()

// PlatformID returns the provider system id for a compact platform
// name, or UnknownPlatformID when the platform is not supported.
func PlatformID(name string) int {
	if id, ok := platformIDs[name]; ok {
		return id
	}
	return UnknownPlatformID
}

// PlatformName returns a compact platform name for a provider system
// id, or the empty string for an unknown id.
func PlatformName(id int) string {
	return platformNames[id]
}
