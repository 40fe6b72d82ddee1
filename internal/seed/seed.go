// internal/seed/seed.go
package seed

import (
	"github.com/leadgrid/leadgrid-backend/internal/repository"
	"github.com/leadgrid/leadgrid-backend/internal/types"
)

func ptr(s string) *string { return &s }

// DemoLeads returns the fixed example leads used to seed the in-memory
// store the first time a user is touched. The caller owns the slice.
func DemoLeads(userID int) []*repository.Lead {
	return []*repository.Lead{
		{
			Name:             "Elena Fisher",
			Title:            ptr("VP of Product"),
			Company:          "Stripe",
			CompanyLogo:      ptr("https://logo.clearbit.com/stripe.com"),
			Avatar:           ptr("https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop&crop=faces"),
			Status:           types.StatusEnriched,
			Confidence:       98,
			Email:            ptr("elena.fisher@stripe.com"),
			Phone:            ptr("+1 (415) 555-0123"),
			Linkedin:         ptr("linkedin.com/in/elenafisher"),
			Location:         ptr("San Francisco, CA"),
			TechStack:        []string{"React", "Ruby on Rails", "AWS", "Linear"},
			AIInsight:        ptr("Elena recently posted about API infrastructure scaling. She is actively hiring for product roles."),
			MutualConnection: ptr("Sarah Jenkins"),
			UserID:           userID,
		},
		{
			Name:             "David Chen",
			Title:            ptr("Head of Engineering"),
			Company:          "Vercel",
			CompanyLogo:      ptr("https://logo.clearbit.com/vercel.com"),
			Avatar:           ptr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=faces"),
			Status:           types.StatusEnriched,
			Confidence:       94,
			Email:            ptr("david@vercel.com"),
			Linkedin:         ptr("linkedin.com/in/davidchen"),
			Location:         ptr("Remote"),
			TechStack:        []string{"Next.js", "Turbo", "Edge Functions"},
			AIInsight:        ptr("Frequent speaker at Next.js Conf. Recently published a blog post on edge computing performance."),
			MutualConnection: ptr("Guillermo Rauch"),
			UserID:           userID,
		},
		{
			Name:        "Sarah Miller",
			Title:       ptr("Chief Revenue Officer"),
			Company:     "Linear",
			CompanyLogo: ptr("https://logo.clearbit.com/linear.app"),
			Avatar:      ptr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=faces"),
			Status:      types.StatusProcessing,
			Confidence:  45,
			Location:    ptr("New York, NY"),
			UserID:      userID,
		},
		{
			Name:       "James Wilson",
			Title:      ptr("Founder"),
			Company:    "Unknown Stealth",
			Avatar:     ptr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=faces"),
			Status:     types.StatusFailed,
			Confidence: 12,
			AIInsight:  ptr("Company website appears to be down or parked. No recent LinkedIn activity found."),
			UserID:     userID,
		},
		{
			Name:        "Michael Chang",
			Title:       ptr("Director of Sales"),
			Company:     "Retool",
			CompanyLogo: ptr("https://logo.clearbit.com/retool.com"),
			Avatar:      ptr("https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=faces"),
			Status:      types.StatusEnriched,
			Confidence:  88,
			Email:       ptr("michael@retool.com"),
			Linkedin:    ptr("linkedin.com/in/mchang"),
			Location:    ptr("San Francisco, CA"),
			TechStack:   []string{"Retool", "Postgres", "Salesforce"},
			AIInsight:   ptr("Recently promoted from Senior Manager. Hiring for 3 AE roles."),
			UserID:      userID,
		},
		{
			Name:        "Amanda Torres",
			Title:       ptr("CTO"),
			Company:     "Supabase",
			CompanyLogo: ptr("https://logo.clearbit.com/supabase.com"),
			Avatar:      ptr("https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=150&h=150&fit=crop&crop=faces"),
			Status:      types.StatusEnriched,
			Confidence:  96,
			Email:       ptr("amanda@supabase.io"),
			Linkedin:    ptr("linkedin.com/in/amandatorres"),
			Location:    ptr("Singapore"),
			TechStack:   []string{"Postgres", "Elixir", "Go"},
			AIInsight:   ptr("Active contributor to open source Postgres extensions."),
			UserID:      userID,
		},
		{
			Name:        "Robert Fox",
			Title:       ptr("VP Marketing"),
			Company:     "Figma",
			CompanyLogo: ptr("https://logo.clearbit.com/figma.com"),
			Avatar:      ptr("https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=150&h=150&fit=crop&crop=faces"),
			Status:      types.StatusPending,
			Confidence:  0,
			UserID:      userID,
		},
		{
			Name:        "Lisa Wong",
			Title:       ptr("Product Designer"),
			Company:     "Airbnb",
			CompanyLogo: ptr("https://logo.clearbit.com/airbnb.com"),
			Avatar:      ptr("https://images.unsplash.com/photo-1517841905240-472988babdf9?w=150&h=150&fit=crop&crop=faces"),
			Status:      types.StatusEnriched,
			Confidence:  92,
			Email:       ptr("lisa.wong@airbnb.com"),
			Linkedin:    ptr("linkedin.com/in/lisawongdesign"),
			Location:    ptr("Los Angeles, CA"),
			AIInsight:   ptr("Portfolio features extensive work on design systems."),
			UserID:      userID,
		},
	}
}
