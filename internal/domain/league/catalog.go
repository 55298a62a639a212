package league

import (
	"fmt"
	"strings"
)

const UnknownLeagueName = "Unknown League"

const (
	PremierLeagueID = "39"
	LaLigaID        = "140"
	Ligue1ID        = "61"
	SerieAID        = "135"
	BundesligaID    = "78"
)

var defaultEntries = []Entry{
	{Name: "Premier League", ExternalID: PremierLeagueID, LogoRef: "PremierLeague.png"},
	{Name: "La Liga", ExternalID: LaLigaID, LogoRef: "LaLiga.png"},
	{Name: "Ligue 1", ExternalID: Ligue1ID, LogoRef: "Ligue1.png"},
	{Name: "Serie A", ExternalID: SerieAID, LogoRef: "SeriaA.png"},
	{Name: "Bundesliga", ExternalID: BundesligaID, LogoRef: "Bundesliga.png"},
}

var schemes = map[string]ColorScheme{
	PremierLeagueID: {Background: "#3D195B", GradientEnd: "#7F54B3", HeaderForeground: "#FFFFFF", Text: "#000000"},
	LaLigaID:        {Background: "#EE8707", GradientEnd: "#FFC300", HeaderForeground: "#FFFFFF", Text: "#000000"},
	Ligue1ID:        {Background: "#091C3E", GradientEnd: "#1C4F9C", HeaderForeground: "#FFFFFF", Text: "#000000"},
	SerieAID:        {Background: "#008FD7", GradientEnd: "#60C8FF", HeaderForeground: "#FFFFFF", Text: "#000000"},
	BundesligaID:    {Background: "#D20515", GradientEnd: "#FF4D4D", HeaderForeground: "#FFFFFF", Text: "#000000"},
}

// SchemeFor falls back to the Premier League palette for unknown ids.
func SchemeFor(externalID string) ColorScheme {
	if scheme, ok := schemes[strings.TrimSpace(externalID)]; ok {
		return scheme
	}
	return schemes[PremierLeagueID]
}

// Catalog is built once at start-up and never mutated afterwards.
type Catalog struct {
	entries []Entry
	byName  map[string]Entry
	byID    map[string]Entry
}

// DefaultCatalog returns the top five European leagues.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog(defaultEntries)
	if err != nil {
		panic(err)
	}
	return catalog
}

func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]Entry, len(entries)),
		byID:    make(map[string]Entry, len(entries)),
	}
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byName[entry.Name]; exists {
			return nil, fmt.Errorf("duplicate league name %q", entry.Name)
		}
		if _, exists := c.byID[entry.ExternalID]; exists {
			return nil, fmt.Errorf("duplicate league external id %q", entry.ExternalID)
		}
		c.entries = append(c.entries, entry)
		c.byName[entry.Name] = entry
		c.byID[entry.ExternalID] = entry
	}
	return c, nil
}

// List returns the entries in display order.
func (c *Catalog) List() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// ByName matches the display name exactly; surrounding whitespace is ignored.
func (c *Catalog) ByName(name string) (Entry, bool) {
	entry, ok := c.byName[strings.TrimSpace(name)]
	return entry, ok
}

func (c *Catalog) ByExternalID(externalID string) (Entry, bool) {
	entry, ok := c.byID[strings.TrimSpace(externalID)]
	return entry, ok
}

func (c *Catalog) NameFor(externalID string) string {
	if entry, ok := c.ByExternalID(externalID); ok {
		return entry.Name
	}
	return UnknownLeagueName
}
