package models

// Plan represents the subscription tier of a user
type Plan string

const (
	PlanFree     Plan = "free"
	PlanPro      Plan = "pro"
	PlanBusiness Plan = "business"
)

// planArticleLimits maps each plan to the maximum number of articles
// that can be selected for a single video
var planArticleLimits = map[Plan]int{
	PlanFree:     5,
	PlanPro:      10,
	PlanBusiness: 20,
}

// ParsePlan parses a plan string, defaulting to free for unknown values
func ParsePlan(s string) Plan {
	switch Plan(s) {
	case PlanFree, PlanPro, PlanBusiness:
		return Plan(s)
	}
	return PlanFree
}

// MaxArticles returns the article selection limit for the plan
func (p Plan) MaxArticles() int {
	if limit, ok := planArticleLimits[p]; ok {
		return limit
	}
	return planArticleLimits[PlanFree]
}

// EffectiveMaxArticles returns min(requestedMax, plan limit).
// A requestedMax <= 0 means "no client-side preference" and yields the plan limit.
func (p Plan) EffectiveMaxArticles(requestedMax int) int {
	limit := p.MaxArticles()
	if requestedMax > 0 && requestedMax < limit {
		return requestedMax
	}
	return limit
}
