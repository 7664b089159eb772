package structs

import "time"

type Profile struct {
	UID         string    `json:"uid"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsComplete reports whether the profile carries enough identity for a
// booking message (name and phone).
func (p Profile) IsComplete() bool {
	return p.Name != "" && p.PhoneNumber != ""
}

type UpsertProfile struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Language    string `json:"language"`
}

type GoogleSignIn struct {
	IDToken string `json:"idToken"`
}

type SessionResponse struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}
