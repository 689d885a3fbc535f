// Package fixtures provides the seed data every store starts from on first run.
// Each function builds fresh values so callers may mutate what they receive.
package fixtures

import "github.com/AtRiskMedia/glowyn-go/internal/domain/entities"

const unsplash = "https://images.unsplash.com/"
const thumb = "?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"

func photo(id string) string { return unsplash + id + thumb }

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// CurrentUser is the default account the mock login signs into.
func CurrentUser() entities.UserProfile {
	return entities.UserProfile{
		ID:         "user-1",
		Name:       "Cantik",
		Username:   "cantik_style",
		Avatar:     photo("photo-1494790108377-be9c29b29330"),
		Bio:        strPtr("Fashion enthusiast | Beauty lover | Style explorer"),
		Followers:  245,
		Following:  178,
		IsVerified: boolPtr(true),
	}
}

func PopularUsers() []entities.UserProfile {
	return []entities.UserProfile{
		{
			ID:         "user-2",
			Name:       "Anisa Wijaya",
			Username:   "anisa_style",
			Avatar:     photo("photo-1494790108377-be9c29b29330"),
			Followers:  15400,
			Following:  342,
			IsVerified: boolPtr(true),
		},
		{
			ID:         "user-3",
			Name:       "Maya Putri",
			Username:   "maya_fashion",
			Avatar:     photo("photo-1531123897727-8f129e1688ce"),
			Followers:  8920,
			Following:  512,
			IsVerified: boolPtr(true),
		},
		{
			ID:         "user-4",
			Name:       "Dian Sastro",
			Username:   "dian_beauty",
			Avatar:     photo("photo-1544005313-94ddf0286df2"),
			Followers:  12300,
			Following:  230,
			IsVerified: boolPtr(true),
		},
		{
			ID:         "user-5",
			Name:       "Rini Susanti",
			Username:   "rini_glow",
			Avatar:     photo("photo-1554151228-14d9def656e4"),
			Followers:  5670,
			Following:  432,
			IsVerified: boolPtr(false),
		},
	}
}
