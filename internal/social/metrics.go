// Package social looks up audience metrics for a creator's handle on a
// social network. The only Fetcher shipped is a deterministic stand-in; a
// real integration plugs in behind the same interface.
package social

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

type Platform string

const (
	Instagram Platform = "instagram"
	TikTok    Platform = "tiktok"
	YouTube   Platform = "youtube"
	Twitter   Platform = "twitter"
)

// Platforms lists the supported platforms in display order.
var Platforms = []Platform{Instagram, TikTok, YouTube, Twitter}

var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrEmptyHandle         = errors.New("handle is required")
)

// UnsupportedPlatformError names the rejected platform and the supported ones.
type UnsupportedPlatformError struct {
	Platform string
}

func (e *UnsupportedPlatformError) Error() string {
	names := make([]string, len(Platforms))
	for i, p := range Platforms {
		names[i] = string(p)
	}
	return fmt.Sprintf("unsupported platform %q; supported: %s", e.Platform, strings.Join(names, ", "))
}

func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}

// ParsePlatform is case-insensitive.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Platforms {
		if p == known {
			return p, nil
		}
	}
	return "", &UnsupportedPlatformError{Platform: s}
}

// NormalizeHandle drops surrounding whitespace and a leading "@" and lowercases.
func NormalizeHandle(handle string) (string, error) {
	h := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
	if h == "" {
		return "", ErrEmptyHandle
	}
	return h, nil
}

// Metrics is a point-in-time snapshot of an account's audience.
type Metrics struct {
	Platform       Platform  `json:"platform"`
	Handle         string    `json:"handle"`
	Followers      int64     `json:"followers"`
	EngagementRate float64   `json:"engagementRate"`
	AvgLikes       int64     `json:"avgLikes"`
	AvgComments    int64     `json:"avgComments"`
	AvgViews       int64     `json:"avgViews,omitempty"`
	Verified       bool      `json:"verified"`
	FetchedAt      time.Time `json:"fetchedAt"`
}

// Fetcher returns metrics for a handle. Implementations return an error
// matching ErrUnsupportedPlatform for unknown platforms.
type Fetcher interface {
	Fetch(ctx context.Context, platform, handle string) (*Metrics, error)
}
