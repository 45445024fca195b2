package models

import "time"

// Subscription is the quota side of a user's entitlement
type Subscription struct {
	UserID      string    `json:"-"`
	Plan        Plan      `json:"plan"`
	Status      string    `json:"status"`
	VideosLimit int       `json:"videosLimit"`
	VideosUsed  int       `json:"videosUsed"`
	PeriodEnd   time.Time `json:"periodEnd,omitempty"`
}

// Entitlement combines subscription quota with the bonus credit balance.
// Bonus credits are the overflow pool: they are spent only once the
// subscription quota is exhausted.
type Entitlement struct {
	Subscription Subscription `json:"subscription"`
	BonusCredits int          `json:"bonusCredits"`
}

// Remaining returns the total usable generation allowance
func (e Entitlement) Remaining() int {
	quota := e.Subscription.VideosLimit - e.Subscription.VideosUsed
	if quota < 0 {
		quota = 0
	}
	return quota + e.BonusCredits
}

// CanGenerate reports whether at least one generation is allowed
func (e Entitlement) CanGenerate() bool {
	return e.Subscription.VideosUsed < e.Subscription.VideosLimit || e.BonusCredits > 0
}
