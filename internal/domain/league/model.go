package league

import (
	"fmt"
	"strings"
)

// Entry is one selectable league of the catalog.
type Entry struct {
	Name       string
	ExternalID string
	LogoRef    string
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if strings.TrimSpace(e.ExternalID) == "" {
		return fmt.Errorf("league external id is required")
	}
	for _, r := range e.ExternalID {
		if r < '0' || r > '9' {
			return fmt.Errorf("league external id %q must be numeric", e.ExternalID)
		}
	}
	return nil
}

// ColorScheme is the presentation palette used when a league table is displayed.
type ColorScheme struct {
	Background       string
	GradientEnd      string
	HeaderForeground string
	Text             string
}
