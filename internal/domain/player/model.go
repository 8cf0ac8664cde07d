package player

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

// Player is a rated competitor that can appear on either side of a match.
type Player struct {
	ID        string
	Name      string
	MemberRef string
	Rating    int
	Club      string
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Rating < 0 {
		return fmt.Errorf("player rating must be >= 0")
	}

	return nil
}

// Slug returns a URL-safe handle derived from the display name.
func (p Player) Slug() string {
	return slug.Make(p.Name)
}
