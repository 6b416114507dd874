package screenscraper

import (
	"fmt"
	"net/url"

	"romscraper/pkg/checksum"
	"romscraper/pkg/config"
)

// API V2 endpoint set. Kept as one constant block so an API version
// bump is a single edit.
const (
	URLGameInfo   = "https://www.screenscraper.fr/api2/jeuInfos.php"
	URLGameSearch = "https://www.screenscraper.fr/api2/jeuRecherche.php"
	URLImage      = "https://www.screenscraper.fr/image.php"

	URLUserInfo            = "https://www.screenscraper.fr/api2/ssuserInfos.php"
	URLUserLevelsList      = "https://www.screenscraper.fr/api2/userlevelsListe.php"
	URLSupportTypesList    = "https://www.screenscraper.fr/api2/supportTypesListe.php"
	URLRomTypesList        = "https://www.screenscraper.fr/api2/romTypesListe.php"
	URLGenresList          = "https://www.screenscraper.fr/api2/genresListe.php"
	URLRegionsList         = "https://www.screenscraper.fr/api2/regionsListe.php"
	URLLanguagesList       = "https://www.screenscraper.fr/api2/languesListe.php"
	URLClassificationsList = "https://www.screenscraper.fr/api2/classificationListe.php"
	URLSystemsList         = "https://www.screenscraper.fr/api2/systemesListe.php"
)

// Thumbnail display dimensions used by the provider's own website.
const (
	thumbMaxWidth  = 338
	thumbMaxHeight = 190
)

// commonQuery builds the credential preamble every API call carries.
func commonQuery(creds config.ProviderConfig) string {
	return fmt.Sprintf("?devid=%s&devpassword=%s&softname=%s&output=json&ssid=%s&sspassword=%s",
		url.QueryEscape(creds.DevID),
		url.QueryEscape(creds.DevPassword),
		url.QueryEscape(creds.Softname),
		url.QueryEscape(creds.UserID),
		url.QueryEscape(creds.UserPass))
}

// GameInfoURL builds the identification call URL from the checksum
// record and provider platform id. The provider accepts all-zero
// checksums with a zero size, so nothing is validated locally.
func GameInfoURL(creds config.ProviderConfig, sums *checksum.Record, platformID int) string {
	romType := "rom"
	if discPlatformIDs[platformID] {
		romType = "iso"
	}
	tail := fmt.Sprintf("&romtype=%s&systemeid=%d&crc=%s&md5=%s&sha1=%s&romnom=%s&romtaille=%d",
		romType, platformID, sums.CRC, sums.MD5, sums.SHA1,
		url.QueryEscape(sums.Name), sums.Size)
	return URLGameInfo + commonQuery(creds) + tail
}

// GameSearchURL builds the name-search call URL. Search is off the
// identification path; it never feeds the cache.
func GameSearchURL(creds config.ProviderConfig, term string, platformID int) string {
	tail := fmt.Sprintf("&systemeid=%d&recherche=%s", platformID, url.QueryEscape(term))
	return URLGameSearch + commonQuery(creds) + tail
}

// ListURL builds a parameter-free listing call URL (regions, genres,
// platforms and the like).
func ListURL(creds config.ProviderConfig, endpoint string) string {
	return endpoint + commonQuery(creds)
}

// ThumbnailURL builds the small preview URL the provider's image
// service renders for one media entry.
func ThumbnailURL(gameID, mediaType, region string) string {
	display := mediaType
	if region != "" {
		display = mediaType + " " + region
	}
	return fmt.Sprintf("%s?gameid=%s&media=%s&region=%s&hd=0&num=&version=&maxwidth=%d&maxheight=%d",
		URLImage, gameID, url.QueryEscape(display), region, thumbMaxWidth, thumbMaxHeight)
}

// discPlatformIDs is the set of optical-disc platforms. Sending
// romtype=rom for these makes the provider return garbage matches.
var discPlatformIDs = map[int]bool{
	13:  true, // Nintendo GameCube
	16:  true, // Nintendo Wii
	22:  true, // Sega Saturn
	23:  true, // Sega Dreamcast
	57:  true, // Sony PlayStation
	58:  true, // Sony PlayStation 2
	61:  true, // Sony PlayStation Portable
	97:  true, // Fujitsu FM Towns Marty
	114: true, // NEC PC Engine CDROM2 / TurboGrafx CD
}
