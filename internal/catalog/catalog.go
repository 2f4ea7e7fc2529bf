// Package catalog holds the immutable reference data the wizard selects
// from: AI avatars, pricing plans, and landing-page testimonials.
package catalog

import (
	"github.com/dmitrijs2005/drishya/internal/common"
	"github.com/dmitrijs2005/drishya/internal/models"
)

var avatars = []models.Avatar{
	{
		ID:          "1",
		Name:        "Sarah",
		Gender:      "female",
		Ethnicity:   "Caucasian",
		ImageURL:    "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		Description: "Professional and approachable",
		Languages:   []string{"English", "Spanish"},
		Specialties: []string{"product-demo", "explainer"},
	},
	{
		ID:          "2",
		Name:        "Marcus",
		Gender:      "male",
		Ethnicity:   "African American",
		ImageURL:    "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		Description: "Confident and engaging",
		Languages:   []string{"English"},
		Specialties: []string{"brand-story", "social-ad"},
	},
	{
		ID:          "3",
		Name:        "Elena",
		Gender:      "female",
		Ethnicity:   "Hispanic",
		ImageURL:    "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		Description: "Warm and trustworthy",
		Languages:   []string{"English", "Spanish", "Portuguese"},
		Specialties: []string{"tutorial", "explainer"},
	},
	{
		ID:          "4",
		Name:        "David",
		Gender:      "male",
		Ethnicity:   "Asian",
		ImageURL:    "https://images.pexels.com/photos/2182970/pexels-photo-2182970.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		Description: "Tech-savvy and modern",
		Languages:   []string{"English", "Mandarin"},
		Specialties: []string{"product-demo", "tutorial"},
	},
}

var plans = []models.PricingPlan{
	{
		ID:    "basic",
		Name:  "Basic",
		Price: 15,
		Features: []string{
			"Single video creation",
			"Basic AI avatar selection",
			"Up to 60 seconds video",
			"Standard script review",
			"Basic editing & effects",
			"7-day delivery",
			"1 revision included",
		},
		MaxRevisions: 1,
		DeliveryDays: 7,
		Type:         models.PlanOneTime,
	},
	{
		ID:    "starter",
		Name:  "Starter",
		Price: 100,
		Features: []string{
			"2 videos per week (8/month)",
			"Premium AI avatar library",
			"Up to 3 minutes per video",
			"Script assistance included",
			"Professional editing",
			"Background music & graphics",
			"3-day delivery per video",
			"2 revisions per video",
			"Priority support",
			"Team collaboration tools",
		},
		MaxRevisions:  2,
		DeliveryDays:  3,
		Type:          models.PlanSubscription,
		BillingPeriod: "monthly",
	},
	{
		ID:    "enterprise",
		Name:  "Enterprise",
		Price: 0, // custom pricing
		Features: []string{
			"Unlimited video creation",
			"Custom AI avatar training",
			"Unlimited video length",
			"Dedicated scriptwriting team",
			"Advanced editing & animations",
			"Custom graphics & branding",
			"White-label solutions",
			"API access & integrations",
			"24-hour delivery available",
			"Unlimited revisions",
			"Dedicated account manager",
			"Custom training & onboarding",
		},
		MaxRevisions: -1, // unlimited
		DeliveryDays: 1,
		Type:         models.PlanEnterprise,
	},
}

var testimonials = []models.Testimonial{
	{
		ID:        "1",
		Name:      "Jennifer Chen",
		Company:   "TechStart Inc.",
		Role:      "Marketing Director",
		Content:   "Drishya transformed our training videos. The subscription model lets us create consistent content for our growing team.",
		Rating:    5,
		AvatarURL: "https://images.pexels.com/photos/1181519/pexels-photo-1181519.jpeg?auto=compress&cs=tinysrgb&w=64&h=64&fit=crop",
	},
	{
		ID:        "2",
		Name:      "Michael Rodriguez",
		Company:   "Growth Agency",
		Role:      "Founder",
		Content:   "From product demos to client presentations, Drishya helps us deliver professional videos at scale. Game-changer!",
		Rating:    5,
		AvatarURL: "https://images.pexels.com/photos/2379005/pexels-photo-2379005.jpeg?auto=compress&cs=tinysrgb&w=64&h=64&fit=crop",
	},
	{
		ID:        "3",
		Name:      "Sarah Kim",
		Company:   "EduTech Solutions",
		Role:      "Content Lead",
		Content:   "The avatar quality and turnaround time are unmatched. Our tutorial library doubled in a quarter.",
		Rating:    5,
		AvatarURL: "https://images.pexels.com/photos/1239288/pexels-photo-1239288.jpeg?auto=compress&cs=tinysrgb&w=64&h=64&fit=crop",
	},
}

// Avatars returns the avatar catalog. Callers must not modify the result.
func Avatars() []models.Avatar {
	return avatars
}

// Plans returns the pricing plan catalog. Callers must not modify the result.
func Plans() []models.PricingPlan {
	return plans
}

// Testimonials returns the testimonial list. Callers must not modify the result.
func Testimonials() []models.Testimonial {
	return testimonials
}

// FindAvatar returns the avatar with the given ID or common.ErrNotFound.
func FindAvatar(id string) (*models.Avatar, error) {
	for i := range avatars {
		if avatars[i].ID == id {
			a := avatars[i]
			return &a, nil
		}
	}
	return nil, common.ErrNotFound
}

// FindPlan returns the plan with the given ID or common.ErrNotFound.
func FindPlan(id string) (*models.PricingPlan, error) {
	for i := range plans {
		if plans[i].ID == id {
			p := plans[i]
			return &p, nil
		}
	}
	return nil, common.ErrNotFound
}
