package models

// Avatar is an immutable catalog entry describing an AI presenter. Entries
// are selected by the wizard, never created.
type Avatar struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Gender      string   `json:"gender"`
	Ethnicity   string   `json:"ethnicity"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Languages   []string `json:"languages"`
	Specialties []string `json:"specialties"`
}

// PlanType distinguishes how a plan is billed.
type PlanType string

const (
	PlanOneTime      PlanType = "one-time"
	PlanSubscription PlanType = "subscription"
	PlanEnterprise   PlanType = "enterprise"
)

// PricingPlan is an immutable catalog entry. Price is in whole dollars;
// MaxRevisions of -1 means unlimited.
type PricingPlan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	Features      []string `json:"features"`
	MaxRevisions  int      `json:"max_revisions"`
	DeliveryDays  int      `json:"delivery_days"`
	Type          PlanType `json:"type"`
	BillingPeriod string   `json:"billing_period,omitempty"`
}

// Testimonial is shown on the landing page and served by the admin API.
type Testimonial struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Company   string `json:"company"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Rating    int    `json:"rating"`
	AvatarURL string `json:"avatar_url"`
}
