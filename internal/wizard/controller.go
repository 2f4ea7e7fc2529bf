package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/drishya/internal/catalog"
	"github.com/dmitrijs2005/drishya/internal/common"
	"github.com/dmitrijs2005/drishya/internal/kvstore"
	"github.com/dmitrijs2005/drishya/internal/logging"
	"github.com/dmitrijs2005/drishya/internal/models"
	"github.com/jonboulle/clockwork"
)

const draftSchemaVersion = 1

// scriptHelpSurcharge applies only to the basic plan; pricier plans already
// bundle scriptwriting.
const (
	scriptHelpSurcharge = 8
	scriptHelpPlanID    = "basic"
)

const (
	defaultAutosaveDelay  = 5 * time.Second
	defaultSavedIndicator = 2 * time.Second
)

// EntryMode selects how the wizard starts: from scratch, or resuming at the
// plan step with a pre-selected plan (e.g. arriving from the pricing page).
type EntryMode struct {
	planID string
}

func Fresh() EntryMode {
	return EntryMode{}
}

func ResumeAtPlan(planID string) EntryMode {
	return EntryMode{planID: planID}
}

// Options tunes draft autosave timing. Zero values select the defaults.
type Options struct {
	AutosaveDelay  time.Duration
	SavedIndicator time.Duration
}

type draftBlob struct {
	SchemaVersion int               `json:"schema_version"`
	Draft         models.OrderDraft `json:"draft"`
}

// Controller is the wizard state machine. One active draft per session;
// every field mutation (re)starts the autosave debounce timer.
//
// The mutex only serializes the autosave timer callback against interactive
// mutations; there is a single interactive writer.
type Controller struct {
	store  kvstore.Store
	clock  clockwork.Clock
	logger logging.Logger

	autosaveDelay  time.Duration
	savedIndicator time.Duration

	mu        sync.Mutex
	draft     models.OrderDraft
	step      Step
	complete  bool
	timer     clockwork.Timer
	savedUpTo time.Time
}

func NewController(store kvstore.Store, clock clockwork.Clock, logger logging.Logger, opts Options) *Controller {
	if opts.AutosaveDelay == 0 {
		opts.AutosaveDelay = defaultAutosaveDelay
	}
	if opts.SavedIndicator == 0 {
		opts.SavedIndicator = defaultSavedIndicator
	}
	return &Controller{
		store:          store,
		clock:          clock,
		logger:         logger.With("module", "wizard"),
		autosaveDelay:  opts.AutosaveDelay,
		savedIndicator: opts.SavedIndicator,
		step:           FirstStep,
	}
}

// Start initializes the draft according to the entry mode. Fresh mode
// restores a previously persisted draft when one exists; resume-at-plan mode
// seeds the selected plan and jumps straight to the plan step without
// validating the earlier steps (Submit re-checks them).
func (c *Controller) Start(ctx context.Context, mode EntryMode) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft = models.OrderDraft{}
	c.step = FirstStep
	c.complete = false

	if mode.planID != "" {
		plan, err := catalog.FindPlan(mode.planID)
		if err != nil {
			return fmt.Errorf("resume with plan %q: %w", mode.planID, err)
		}
		c.draft.Plan = plan
		c.step = StepPlan
		c.logger.Info(ctx, "wizard resumed at plan step", "plan", plan.ID)
		return nil
	}

	raw, err := c.store.Get(ctx, kvstore.KeyDraft)
	if err != nil {
		return fmt.Errorf("load draft: %w", err)
	}
	if raw == nil {
		return nil
	}

	var blob draftBlob
	if err := json.Unmarshal(raw, &blob); err != nil || blob.SchemaVersion != draftSchemaVersion {
		c.logger.Warn(ctx, "discarding unreadable draft blob")
		return nil
	}
	c.draft = blob.Draft
	c.logger.Info(ctx, "draft restored")
	return nil
}

// Draft returns the current draft. The caller must treat it as read-only and
// mutate through the setters.
func (c *Controller) Draft() *models.OrderDraft {
	return &c.draft
}

func (c *Controller) Step() Step {
	return c.step
}

func (c *Controller) Complete() bool {
	return c.complete
}

// MarkComplete records that the order was submitted successfully. The wizard
// is terminal after this; a new order needs a new Start.
func (c *Controller) MarkComplete() {
	c.complete = true
}

// StepComplete reports whether the given step's required fields are
// populated on the current draft.
func (c *Controller) StepComplete(step Step) bool {
	d := &c.draft
	switch step {
	case StepVideoType:
		return d.VideoType != "" && d.Orientation != ""
	case StepTone:
		return d.Tone != ""
	case StepAvatar:
		return d.Avatar != nil
	case StepScript:
		if strings.TrimSpace(d.Script) != "" {
			return true
		}
		return d.NeedsScriptHelp &&
			strings.TrimSpace(d.ScriptRequirements.TargetAudience) != "" &&
			strings.TrimSpace(d.ScriptRequirements.KeyMessages) != ""
	case StepResources:
		return true // files and notes are optional
	case StepPlan:
		return d.Plan != nil
	case StepReview:
		return d.CustomerEmail != "" && d.CustomerName != ""
	default:
		return false
	}
}

// CanAdvance reports whether the current step's predicate holds.
func (c *Controller) CanAdvance() bool {
	return c.StepComplete(c.step)
}

// IncompleteSteps returns the steps whose predicates do not hold, in order.
func (c *Controller) IncompleteSteps() []Step {
	var missing []Step
	for s := FirstStep; s <= LastStep; s++ {
		if !c.StepComplete(s) {
			missing = append(missing, s)
		}
	}
	return missing
}

// Next advances to the following step iff the current step is complete.
func (c *Controller) Next() error {
	if c.step >= LastStep {
		return common.ErrValidationFailed
	}
	if !c.CanAdvance() {
		return common.ErrValidationFailed
	}
	c.step++
	return nil
}

// Prev moves back one step. Backward navigation is always permitted.
func (c *Controller) Prev() error {
	if c.step <= FirstStep {
		return common.ErrValidationFailed
	}
	c.step--
	return nil
}

// TotalPrice computes the running total: the plan price plus the
// scriptwriting surcharge when it applies.
func (c *Controller) TotalPrice() int {
	if c.draft.Plan == nil {
		return 0
	}
	total := c.draft.Plan.Price
	if c.draft.NeedsScriptHelp && c.draft.Plan.ID == scriptHelpPlanID {
		total += scriptHelpSurcharge
	}
	return total
}

// ---- field setters ----

func (c *Controller) SetVideoType(ctx context.Context, videoType string) error {
	if !slices.Contains(models.VideoTypes, videoType) {
		return common.ErrValidationFailed
	}
	c.mutate(ctx, func(d *models.OrderDraft) { d.VideoType = videoType })
	return nil
}

func (c *Controller) SetOrientation(ctx context.Context, orientation string) error {
	if orientation != models.OrientationHorizontal && orientation != models.OrientationVertical {
		return common.ErrValidationFailed
	}
	c.mutate(ctx, func(d *models.OrderDraft) { d.Orientation = orientation })
	return nil
}

func (c *Controller) SetTone(ctx context.Context, tone string) error {
	if !slices.Contains(models.Tones, tone) {
		return common.ErrValidationFailed
	}
	c.mutate(ctx, func(d *models.OrderDraft) { d.Tone = tone })
	return nil
}

func (c *Controller) SetAvatar(ctx context.Context, avatar *models.Avatar) {
	c.mutate(ctx, func(d *models.OrderDraft) { d.Avatar = avatar })
}

func (c *Controller) SetScript(ctx context.Context, script string) {
	c.mutate(ctx, func(d *models.OrderDraft) { d.Script = script })
}

func (c *Controller) SetNeedsScriptHelp(ctx context.Context, needsHelp bool) {
	c.mutate(ctx, func(d *models.OrderDraft) { d.NeedsScriptHelp = needsHelp })
}

func (c *Controller) SetScriptRequirements(ctx context.Context, req models.ScriptRequirements) {
	c.mutate(ctx, func(d *models.OrderDraft) { d.ScriptRequirements = req })
}

func (c *Controller) AddAttachedFile(ctx context.Context, f models.AttachedFile) {
	c.mutate(ctx, func(d *models.OrderDraft) { d.AttachedFiles = append(d.AttachedFiles, f) })
}

func (c *Controller) SetInstructions(ctx context.Context, instructions string) {
	c.mutate(ctx, func(d *models.OrderDraft) { d.Instructions = instructions })
}

func (c *Controller) SetAdditionalNotes(ctx context.Context, notes string) {
	c.mutate(ctx, func(d *models.OrderDraft) { d.AdditionalNotes = notes })
}

func (c *Controller) SetPlan(ctx context.Context, plan *models.PricingPlan) {
	c.mutate(ctx, func(d *models.OrderDraft) { d.Plan = plan })
}

func (c *Controller) SetContact(ctx context.Context, email, name string) {
	c.mutate(ctx, func(d *models.OrderDraft) {
		d.CustomerEmail = email
		d.CustomerName = name
	})
}

// ---- persistence ----

// SaveDraft persists the draft immediately, bypassing the debounce.
func (c *Controller) SaveDraft(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.persistLocked(ctx)
}

// RecentlySaved reports whether the transient "saved" indicator is still
// visible.
func (c *Controller) RecentlySaved() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clock.Now().Before(c.savedUpTo)
}

// Discard clears the draft and its persisted blob.
func (c *Controller) Discard(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.draft = models.OrderDraft{}
	c.step = FirstStep
	if err := c.store.Delete(ctx, kvstore.KeyDraft); err != nil {
		return fmt.Errorf("discard draft: %w", err)
	}
	return nil
}

// mutate applies fn to the draft and (re)starts the autosave debounce.
func (c *Controller) mutate(ctx context.Context, fn func(*models.OrderDraft)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fn(&c.draft)

	if c.timer != nil {
		c.timer.Reset(c.autosaveDelay)
		return
	}
	c.timer = c.clock.AfterFunc(c.autosaveDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.timer = nil

		// empty drafts are not worth persisting
		if c.draft.VideoType == "" && c.draft.Tone == "" && c.draft.Script == "" {
			return
		}
		if err := c.persistLocked(context.Background()); err != nil {
			c.logger.Error(context.Background(), "draft autosave failed", "error", err)
		}
	})
}

func (c *Controller) persistLocked(ctx context.Context) error {
	blob := draftBlob{SchemaVersion: draftSchemaVersion, Draft: c.draft}
	raw, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := c.store.Set(ctx, kvstore.KeyDraft, raw); err != nil {
		return fmt.Errorf("persist draft: %w", err)
	}
	c.savedUpTo = c.clock.Now().Add(c.savedIndicator)
	return nil
}
