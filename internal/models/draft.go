package models

// Video type and orientation choices for the first wizard step. Empty string
// means "not chosen yet".
const (
	VideoProductDemo = "product-demo"
	VideoExplainer   = "explainer"
	VideoTutorial    = "tutorial"
	VideoBrandStory  = "brand-story"
	VideoSocialAd    = "social-ad"
	VideoCustom      = "custom"

	OrientationHorizontal = "horizontal"
	OrientationVertical   = "vertical"
)

// VideoTypes lists the selectable video categories in display order.
var VideoTypes = []string{
	VideoProductDemo, VideoExplainer, VideoTutorial,
	VideoBrandStory, VideoSocialAd, VideoCustom,
}

// Tones lists the selectable tones in display order.
var Tones = []string{
	"professional", "casual", "energetic", "serious", "humorous", "inspirational",
}

// ScriptRequirements is filled when the customer asks for scriptwriting help
// instead of providing a script.
type ScriptRequirements struct {
	TargetAudience  string `json:"target_audience"`
	KeyMessages     string `json:"key_messages"`
	Duration        string `json:"duration"`
	BrandGuidelines string `json:"brand_guidelines"`
}

// AttachedFile is the metadata of an uploaded resource. Only metadata is ever
// persisted with the draft; bytes live in object storage under StorageKey.
type AttachedFile struct {
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	StorageKey string `json:"storage_key,omitempty"`
}

// OrderDraft is the in-progress order the wizard builds field by field.
// Exactly one draft is active per session. It is cleared on successful
// submission or explicit discard.
type OrderDraft struct {
	VideoType          string             `json:"video_type"`
	Orientation        string             `json:"orientation"`
	Tone               string             `json:"tone"`
	Avatar             *Avatar            `json:"avatar"`
	Script             string             `json:"script"`
	NeedsScriptHelp    bool               `json:"needs_script_help"`
	ScriptRequirements ScriptRequirements `json:"script_requirements"`
	AttachedFiles      []AttachedFile     `json:"attached_files"`
	Instructions       string             `json:"instructions"`
	AdditionalNotes    string             `json:"additional_notes"`
	Plan               *PricingPlan       `json:"plan"`
	CustomerEmail      string             `json:"customer_email"`
	CustomerName       string             `json:"customer_name"`
}
