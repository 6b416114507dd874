package screenscraper

import (
	"romscraper/pkg/checksum"
	"romscraper/pkg/status"
)

// ResolveGame identifies a game by its checksum record and stores the
// full provider record in the cache under cacheKey. The provider
// returns one game or nothing for an identification call, so the
// result is a single candidate or nil.
//
// A nil result with a successful report means the provider has no
// match for these checksums. Metadata and asset extraction read the
// cached record later, so only this path writes the cache.
func (c *Client) ResolveGame(sums *checksum.Record, platform, cacheKey string, rep *status.Report) *Candidate {
	platformID := PlatformID(platform)
	if platformID == UnknownPlatformID {
		c.log.WithField("platform", platform).Warn("platform has no provider id, identifying without one")
	}

	c.log.WithFields(map[string]interface{}{
		"rom":      sums.Name,
		"platform": platform,
		"provider": platformID,
	}).Debug("identifying game by checksum")

	record := c.FetchJSON(GameInfoURL(c.creds, sums, platformID), rep)
	if record == nil || !rep.OK() {
		return nil
	}

	response := treeMap(record, "response")
	if response == nil {
		rep.Fail("Provider response is missing its envelope")
		return nil
	}
	jeu, ok := response["jeu"].(map[string]interface{})
	if !ok {
		rep.Fail("Provider response is missing the game object")
		return nil
	}

	candidate := &Candidate{
		ID:                 treeString(jeu, "id"),
		DisplayName:        firstName(jeu),
		Platform:           platform,
		ProviderPlatformID: platformID,
		Order:              1,
	}

	// The roms list can run to hundreds of entries and nothing
	// downstream reads it. Clearing it keeps cache files small.
	jeu["roms"] = []interface{}{}
	if err := c.store.Put(cacheKey, jeu); err != nil {
		c.log.WithError(err).WithField("key", cacheKey).Warn("caching game record failed")
	}

	return candidate
}

// SearchGames looks games up by name. Search results never feed the
// cache, so they cannot serve metadata or asset extraction. This is a
// diagnostic and exploratory surface only.
func (c *Client) SearchGames(term, platform string, rep *status.Report) []Candidate {
	platformID := PlatformID(platform)

	record := c.FetchJSON(GameSearchURL(c.creds, term, platformID), rep)
	if record == nil || !rep.OK() {
		return nil
	}

	response := treeMap(record, "response")
	if response == nil {
		rep.Fail("Provider response is missing its envelope")
		return nil
	}
	jeux, _ := response["jeux"].([]interface{})

	candidates := make([]Candidate, 0, len(jeux))
	for _, entry := range jeux {
		jeu, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{
			ID:                 treeString(jeu, "id"),
			DisplayName:        firstName(jeu),
			Platform:           platform,
			ProviderPlatformID: platformID,
			Order:              1,
		})
	}
	return candidates
}

// firstName returns the first entry of the game's name list, which the
// provider orders by its own preference.
func firstName(jeu map[string]interface{}) string {
	noms, _ := jeu["noms"].([]interface{})
	if len(noms) == 0 {
		return ""
	}
	first, ok := noms[0].(map[string]interface{})
	if !ok {
		return ""
	}
	return treeString(first, "text")
}
