package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/drishya/internal/catalog"
	"github.com/dmitrijs2005/drishya/internal/models"
	"github.com/dmitrijs2005/drishya/internal/wizard"
)

// readFile is a test seam for attachment reading.
var readFile = os.ReadFile

// Order starts the wizard from scratch, resuming a previously saved draft
// when one exists.
func (a *App) Order(ctx context.Context) error {
	return a.runWizard(ctx, wizard.Fresh())
}

// PlanOrder asks for a plan first and enters the wizard at the plan step,
// mirroring the "choose plan on the pricing page" entry.
func (a *App) PlanOrder(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return nil
	}

	plans := catalog.Plans()
	options := make([]string, len(plans))
	for i, p := range plans {
		options[i] = planLabel(&p)
	}
	idx, err := GetChoice(a.reader, "Select a plan:", options, a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	if idx < 0 {
		return nil
	}
	return a.runWizard(ctx, wizard.ResumeAtPlan(plans[idx].ID))
}

// Discard throws away the in-memory and persisted draft.
func (a *App) Discard(ctx context.Context) error {
	if err := a.wizard.Discard(ctx); err != nil {
		fmt.Fprintf(a.out, "Discard failed: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Draft discarded")
	return nil
}

func (a *App) runWizard(ctx context.Context, mode wizard.EntryMode) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return nil
	}
	if err := a.wizard.Start(ctx, mode); err != nil {
		fmt.Fprintf(a.out, "Could not start the wizard: %s\n", err.Error())
		return err
	}

	for {
		step := a.wizard.Step()
		fmt.Fprintf(a.out, "\n-- Step %d of %d: %s --\n%s\n",
			int(step), int(wizard.LastStep), step.Title(), step.Description())

		if step == wizard.StepReview {
			done, err := a.reviewStep(ctx)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			continue
		}

		if err := a.editStep(ctx, step); err != nil {
			fmt.Fprintln(a.out, err.Error())
			continue
		}

		action, err := getSimpleText(a.reader, "[n]ext, [b]ack, [q]uit (draft is kept)", a.out)
		if err != nil {
			return err
		}
		switch action {
		case "", "n", "next":
			if err := a.wizard.Next(); err != nil {
				fmt.Fprintln(a.out, "Please complete this step first")
			}
		case "b", "back":
			if err := a.wizard.Prev(); err != nil {
				fmt.Fprintln(a.out, "Already on the first step")
			}
		case "q", "quit":
			if err := a.wizard.SaveDraft(ctx); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Draft saved - 'order' resumes it")
			return nil
		}
	}
}

func (a *App) editStep(ctx context.Context, step wizard.Step) error {
	switch step {
	case wizard.StepVideoType:
		return a.editVideoType(ctx)
	case wizard.StepTone:
		return a.editTone(ctx)
	case wizard.StepAvatar:
		return a.editAvatar(ctx)
	case wizard.StepScript:
		return a.editScript(ctx)
	case wizard.StepResources:
		return a.editResources(ctx)
	case wizard.StepPlan:
		return a.editPlan(ctx)
	default:
		return nil
	}
}

func (a *App) editVideoType(ctx context.Context) error {
	d := a.wizard.Draft()

	idx, err := GetChoice(a.reader, currentLabel("Video type", d.VideoType), models.VideoTypes, a.out)
	if err != nil {
		return err
	}
	if idx >= 0 {
		if err := a.wizard.SetVideoType(ctx, models.VideoTypes[idx]); err != nil {
			return err
		}
	}

	orientations := []string{models.OrientationHorizontal, models.OrientationVertical}
	idx, err = GetChoice(a.reader, currentLabel("Orientation", d.Orientation), orientations, a.out)
	if err != nil {
		return err
	}
	if idx >= 0 {
		return a.wizard.SetOrientation(ctx, orientations[idx])
	}
	return nil
}

func (a *App) editTone(ctx context.Context) error {
	d := a.wizard.Draft()
	idx, err := GetChoice(a.reader, currentLabel("Tone", d.Tone), models.Tones, a.out)
	if err != nil {
		return err
	}
	if idx >= 0 {
		return a.wizard.SetTone(ctx, models.Tones[idx])
	}
	return nil
}

func (a *App) editAvatar(ctx context.Context) error {
	avatars := catalog.Avatars()
	options := make([]string, len(avatars))
	for i, av := range avatars {
		options[i] = fmt.Sprintf("%s - %s", av.Name, av.Description)
	}

	current := ""
	if d := a.wizard.Draft(); d.Avatar != nil {
		current = d.Avatar.Name
	}
	idx, err := GetChoice(a.reader, currentLabel("Avatar", current), options, a.out)
	if err != nil {
		return err
	}
	if idx >= 0 {
		av := avatars[idx]
		a.wizard.SetAvatar(ctx, &av)
	}
	return nil
}

func (a *App) editScript(ctx context.Context) error {
	d := a.wizard.Draft()

	needHelp, err := GetYesNo(a.reader, "Need professional help writing the script?", d.NeedsScriptHelp, a.out)
	if err != nil {
		return err
	}
	a.wizard.SetNeedsScriptHelp(ctx, needHelp)

	if needHelp {
		req := d.ScriptRequirements
		if v, err := getSimpleText(a.reader, currentLabel("Target audience", req.TargetAudience), a.out); err != nil {
			return err
		} else if v != "" {
			req.TargetAudience = v
		}
		if v, err := getSimpleText(a.reader, currentLabel("Key messages", req.KeyMessages), a.out); err != nil {
			return err
		} else if v != "" {
			req.KeyMessages = v
		}
		if v, err := getSimpleText(a.reader, currentLabel("Desired duration", req.Duration), a.out); err != nil {
			return err
		} else if v != "" {
			req.Duration = v
		}
		if v, err := getSimpleText(a.reader, currentLabel("Brand guidelines", req.BrandGuidelines), a.out); err != nil {
			return err
		} else if v != "" {
			req.BrandGuidelines = v
		}
		a.wizard.SetScriptRequirements(ctx, req)
		return nil
	}

	script, err := GetMultiline(a.reader, "Paste your script", a.out)
	if err != nil {
		return err
	}
	if script != "" {
		a.wizard.SetScript(ctx, script)
	}
	return nil
}

func (a *App) editResources(ctx context.Context) error {
	attach, err := GetYesNo(a.reader, "Attach a file?", false, a.out)
	if err != nil {
		return err
	}
	for attach {
		path, err := getSimpleText(a.reader, "File path", a.out)
		if err != nil {
			return err
		}
		if path != "" {
			data, err := readFile(path)
			if err != nil {
				fmt.Fprintf(a.out, "Could not read %s: %s\n", path, err.Error())
			} else {
				f, err := a.uploader.Upload(ctx, filepath.Base(path), data)
				if err != nil {
					fmt.Fprintf(a.out, "Upload failed: %s\n", err.Error())
				} else {
					a.wizard.AddAttachedFile(ctx, f)
					fmt.Fprintf(a.out, "Attached %s (%d bytes)\n", f.Name, f.Size)
				}
			}
		}
		attach, err = GetYesNo(a.reader, "Attach another file?", false, a.out)
		if err != nil {
			return err
		}
	}

	instructions, err := GetMultiline(a.reader, "Special instructions (optional)", a.out)
	if err != nil {
		return err
	}
	if instructions != "" {
		a.wizard.SetInstructions(ctx, instructions)
	}

	notes, err := GetMultiline(a.reader, "Additional notes (optional)", a.out)
	if err != nil {
		return err
	}
	if notes != "" {
		a.wizard.SetAdditionalNotes(ctx, notes)
	}
	return nil
}

func (a *App) editPlan(ctx context.Context) error {
	plans := catalog.Plans()
	options := make([]string, len(plans))
	for i, p := range plans {
		options[i] = planLabel(&p)
	}

	current := ""
	if d := a.wizard.Draft(); d.Plan != nil {
		current = d.Plan.Name
	}
	idx, err := GetChoice(a.reader, currentLabel("Plan", current), options, a.out)
	if err != nil {
		return err
	}
	if idx >= 0 {
		p := plans[idx]
		a.wizard.SetPlan(ctx, &p)
	}
	return nil
}

// reviewStep shows the order summary, collects contact details and submits.
// It returns true when the wizard is finished (submitted or abandoned).
func (a *App) reviewStep(ctx context.Context) (bool, error) {
	d := a.wizard.Draft()

	// contact details, prefilled from the signed-in account
	defEmail, defName := d.CustomerEmail, d.CustomerName
	if u := a.session.Current(); u != nil {
		if defEmail == "" {
			defEmail = u.Email
		}
		if defName == "" {
			defName = u.Name
		}
	}
	email, err := getSimpleText(a.reader, currentLabel("Contact email", defEmail), a.out)
	if err != nil {
		return false, err
	}
	if email == "" {
		email = defEmail
	}
	name, err := getSimpleText(a.reader, currentLabel("Contact name", defName), a.out)
	if err != nil {
		return false, err
	}
	if name == "" {
		name = defName
	}
	a.wizard.SetContact(ctx, email, name)

	a.printSummary()

	action, err := getSimpleText(a.reader, "[s]ubmit, [b]ack, [q]uit (draft is kept)", a.out)
	if err != nil {
		return false, err
	}
	switch action {
	case "s", "submit":
		conf, err := a.pipeline.Submit(ctx, a.wizard)
		if err != nil {
			fmt.Fprintf(a.out, "We could not process your order: %s\nYour draft is untouched - please try again.\n", err.Error())
			return false, nil
		}
		fmt.Fprintf(a.out, "\nOrder confirmed! 🎉\n")
		fmt.Fprintf(a.out, "Order ID: %s\n", conf.OrderID)
		fmt.Fprintf(a.out, "Total: $%d\n", conf.OrderTotal)
		fmt.Fprintf(a.out, "Estimated delivery: %s\n", conf.DeliveryDate.Format("Monday, January 2, 2006"))
		fmt.Fprintf(a.out, "A confirmation email was sent to %s\n", conf.CustomerEmail)
		return true, nil
	case "b", "back":
		_ = a.wizard.Prev()
		return false, nil
	case "q", "quit":
		if err := a.wizard.SaveDraft(ctx); err != nil {
			return false, err
		}
		fmt.Fprintln(a.out, "Draft saved - 'order' resumes it")
		return true, nil
	default:
		return false, nil
	}
}

func (a *App) printSummary() {
	d := a.wizard.Draft()

	fmt.Fprintln(a.out, "\n==== Order Summary ====")
	fmt.Fprintf(a.out, "Video:   %s, %s, %s tone\n", d.VideoType, d.Orientation, d.Tone)
	if d.Avatar != nil {
		fmt.Fprintf(a.out, "Avatar:  %s\n", d.Avatar.Name)
	}
	if d.NeedsScriptHelp {
		fmt.Fprintln(a.out, "Script:  professional scriptwriting requested")
	} else {
		fmt.Fprintf(a.out, "Script:  provided (%d characters)\n", len(d.Script))
	}
	if len(d.AttachedFiles) > 0 {
		fmt.Fprintf(a.out, "Files:   %d attached\n", len(d.AttachedFiles))
	}
	if d.Plan != nil {
		fmt.Fprintf(a.out, "Plan:    %s - %d-day delivery\n", d.Plan.Name, d.Plan.DeliveryDays)
	}
	fmt.Fprintf(a.out, "Contact: %s <%s>\n", d.CustomerName, d.CustomerEmail)
	fmt.Fprintf(a.out, "Total:   $%d\n", a.wizard.TotalPrice())
}

func currentLabel(field, current string) string {
	if current == "" {
		return field + ":"
	}
	return fmt.Sprintf("%s (current: %s, Enter keeps it):", field, current)
}

func planLabel(p *models.PricingPlan) string {
	price := fmt.Sprintf("$%d", p.Price)
	if p.Type == models.PlanEnterprise {
		price = "custom pricing"
	} else if p.Type == models.PlanSubscription {
		price += "/" + p.BillingPeriod
	}
	return fmt.Sprintf("%s - %s, %d-day delivery", p.Name, price, p.DeliveryDays)
}
