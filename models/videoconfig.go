package models

// VideoConfig holds the render parameters for a generation job.
// Every field is restricted to a plan-specific allowed set; a value
// outside the plan's set never reaches the render call (see ClampToPlan).
type VideoConfig struct {
	MusicTrack   string `json:"musicTrack"`
	Template     string `json:"template"`
	CustomText   string `json:"customText"`
	HasWatermark bool   `json:"hasWatermark"`
	Resolution   string `json:"resolution"`
	AspectRatio  string `json:"aspectRatio"`
	Duration     int    `json:"duration"`
}

const (
	TemplateClassic  = "classic"
	TemplateDynamic  = "dynamic"
	TemplateElegant  = "elegant"
	TemplateShowcase = "showcase"

	Resolution1080p = "1080p"
	Resolution4K    = "4k"

	AspectPortrait  = "9:16"
	AspectSquare    = "1:1"
	AspectLandscape = "16:9"
)

// planTemplates lists the templates each plan may use, first entry is the fallback
var planTemplates = map[Plan][]string{
	PlanFree:     {TemplateClassic},
	PlanPro:      {TemplateClassic, TemplateDynamic, TemplateElegant},
	PlanBusiness: {TemplateClassic, TemplateDynamic, TemplateElegant, TemplateShowcase},
}

var planResolutions = map[Plan][]string{
	PlanFree:     {Resolution1080p},
	PlanPro:      {Resolution1080p},
	PlanBusiness: {Resolution1080p, Resolution4K},
}

var planAspectRatios = map[Plan][]string{
	PlanFree:     {AspectPortrait},
	PlanPro:      {AspectPortrait, AspectSquare, AspectLandscape},
	PlanBusiness: {AspectPortrait, AspectSquare, AspectLandscape},
}

// DefaultVideoConfig returns the configuration every session starts with.
// The defaults are valid on every plan.
func DefaultVideoConfig() VideoConfig {
	return VideoConfig{
		MusicTrack:   "default",
		Template:     TemplateClassic,
		HasWatermark: true,
		Resolution:   Resolution1080p,
		AspectRatio:  AspectPortrait,
		Duration:     15,
	}
}

func allowedValue(allowed []string, value string) string {
	for _, v := range allowed {
		if v == value {
			return value
		}
	}
	return allowed[0]
}

// ClampToPlan returns a copy of the config with every field forced into
// the plan's allowed set. The free plan additionally forces the watermark
// on and strips custom text.
func (c VideoConfig) ClampToPlan(plan Plan) VideoConfig {
	out := c
	out.Template = allowedValue(planTemplates[planOrFree(plan)], c.Template)
	out.Resolution = allowedValue(planResolutions[planOrFree(plan)], c.Resolution)
	out.AspectRatio = allowedValue(planAspectRatios[planOrFree(plan)], c.AspectRatio)
	if planOrFree(plan) == PlanFree {
		out.HasWatermark = true
		out.CustomText = ""
	}
	if out.Duration <= 0 {
		out.Duration = DefaultVideoConfig().Duration
	}
	return out
}

func planOrFree(p Plan) Plan {
	if _, ok := planTemplates[p]; ok {
		return p
	}
	return PlanFree
}
