// Package entities defines the domain records held by the Glowyn state stores.
package entities

// UserProfile identifies a person. Posts and comments embed a copy of the
// author profile rather than a reference to the session store.
type UserProfile struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Username   string  `json:"username"`
	Avatar     string  `json:"avatar"`
	Bio        *string `json:"bio,omitempty"`
	Followers  int     `json:"followers"`
	Following  int     `json:"following"`
	IsVerified *bool   `json:"isVerified,omitempty"`
}

// Clone returns a copy that shares no mutable state with p.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	c := *p
	if p.Bio != nil {
		bio := *p.Bio
		c.Bio = &bio
	}
	if p.IsVerified != nil {
		v := *p.IsVerified
		c.IsVerified = &v
	}
	return &c
}
