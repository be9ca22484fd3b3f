package social

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"time"
)

// profile bounds the numbers the mock produces for one platform.
type profile struct {
	minFollowers, maxFollowers   int64
	minEngagement, maxEngagement float64
	hasViews                     bool
	verifiedAbove                int64
}

var profiles = map[Platform]profile{
	Instagram: {minFollowers: 1_000, maxFollowers: 2_000_000, minEngagement: 1, maxEngagement: 8, verifiedAbove: 500_000},
	TikTok:    {minFollowers: 5_000, maxFollowers: 5_000_000, minEngagement: 3, maxEngagement: 15, hasViews: true, verifiedAbove: 1_000_000},
	YouTube:   {minFollowers: 1_000, maxFollowers: 3_000_000, minEngagement: 2, maxEngagement: 10, hasViews: true, verifiedAbove: 100_000},
	Twitter:   {minFollowers: 500, maxFollowers: 1_000_000, minEngagement: 0.5, maxEngagement: 4, verifiedAbove: 250_000},
}

// MockFetcher fabricates plausible metrics. The numbers depend only on
// (platform, handle), so repeated lookups agree.
type MockFetcher struct {
	now func() time.Time
}

func NewMockFetcher() *MockFetcher {
	return &MockFetcher{now: time.Now}
}

func (f *MockFetcher) Fetch(ctx context.Context, platform, handle string) (*Metrics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := ParsePlatform(platform)
	if err != nil {
		return nil, err
	}
	h, err := NormalizeHandle(handle)
	if err != nil {
		return nil, err
	}

	bounds := profiles[p]
	rng := rand.New(rand.NewPCG(seed(p, h)))

	followers := bounds.minFollowers + rng.Int64N(bounds.maxFollowers-bounds.minFollowers+1)
	engagement := bounds.minEngagement + rng.Float64()*(bounds.maxEngagement-bounds.minEngagement)
	engagement = math.Round(engagement*100) / 100

	interactions := int64(float64(followers) * engagement / 100)
	m := &Metrics{
		Platform:       p,
		Handle:         h,
		Followers:      followers,
		EngagementRate: engagement,
		AvgLikes:       interactions * 9 / 10,
		AvgComments:    interactions / 10,
		Verified:       followers >= bounds.verifiedAbove,
		FetchedAt:      f.now().UTC(),
	}
	if bounds.hasViews {
		m.AvgViews = followers/4 + rng.Int64N(followers/4+1)
	}
	return m, nil
}

func seed(p Platform, handle string) (uint64, uint64) {
	h := fnv.New64a()
	h.Write([]byte(p))
	h.Write([]byte{0})
	h.Write([]byte(handle))
	sum := h.Sum64()
	return sum, sum ^ 0x9e3779b97f4a7c15
}
