package sofascore

import (
	"fmt"
	"strings"
	"time"
)

const (
	// BaseURL is the SofaScore API host
	BaseURL = "https://api.sofascore.com"

	// TeamImagePath is the path pattern for a team's logo image
	TeamImagePath = "/api/v1/team/%d/image"

	// DefaultTimeout bounds a single image request
	DefaultTimeout = 15 * time.Second

	// Browser-like header values; the image endpoint rejects bare clients
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
	DefaultReferer   = "https://www.sofascore.com/"
	DefaultAccept    = "image/webp,image/apng,image/*,*/*;q=0.8"
)

// TeamImageURL builds the logo URL for a team id under base
func TeamImageURL(base string, teamID int) string {
	if base == "" {
		base = BaseURL
	}
	return strings.TrimSuffix(base, "/") + fmt.Sprintf(TeamImagePath, teamID)
}
