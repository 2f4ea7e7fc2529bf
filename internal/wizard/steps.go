// Package wizard implements the seven-step order flow: per-step completion
// predicates, forward/backward navigation, running price computation and
// debounced draft persistence.
package wizard

// Step identifies one of the seven ordered wizard steps.
type Step int

const (
	StepVideoType Step = iota + 1
	StepTone
	StepAvatar
	StepScript
	StepResources
	StepPlan
	StepReview
)

const (
	FirstStep = StepVideoType
	LastStep  = StepReview
)

var stepTitles = map[Step]string{
	StepVideoType: "Video Type",
	StepTone:      "Tone",
	StepAvatar:    "Avatar",
	StepScript:    "Script",
	StepResources: "Resources",
	StepPlan:      "Plan",
	StepReview:    "Review",
}

var stepDescriptions = map[Step]string{
	StepVideoType: "Choose your video category & orientation",
	StepTone:      "Select the right tone & style",
	StepAvatar:    "Pick your AI presenter",
	StepScript:    "Upload script or get professional help",
	StepResources: "Upload files and add instructions",
	StepPlan:      "Choose your package",
	StepReview:    "Confirm and submit order",
}

func (s Step) Title() string {
	return stepTitles[s]
}

func (s Step) Description() string {
	return stepDescriptions[s]
}

func (s Step) String() string {
	return s.Title()
}
