package domain

import "time"

// NameChangeCooldown is the minimum time between two display name changes.
const NameChangeCooldown = 30 * 24 * time.Hour

// Profile is the mutable, public-facing part of a user.
type Profile struct {
	UserID           int64
	DisplayName      string
	ProfileImageURL  *string
	LastNameChangeAt *time.Time
	UpdatedAt        time.Time

	// Details holds the role-specific fields. Its concrete type always
	// matches the owning user's role.
	Details ProfileDetails
}

// ProfileDetails is implemented by ArtistDetails and EstablishmentDetails.
type ProfileDetails interface {
	Role() Role
}

// ArtistDetails are the profile fields only artists carry.
type ArtistDetails struct {
	Bio           string
	ArtisticStyle string
}

func (ArtistDetails) Role() Role { return RoleArtist }

// EstablishmentDetails are the profile fields only establishments carry.
type EstablishmentDetails struct {
	Category     string
	Street       string
	Number       string
	PostalCode   string
	Colony       *string
	Municipality *string
}

func (EstablishmentDetails) Role() Role { return RoleEstablishment }

// Artist returns the artist details, or false when the profile belongs to
// another role.
func (p *Profile) Artist() (ArtistDetails, bool) {
	d, ok := p.Details.(ArtistDetails)
	return d, ok
}

// Establishment returns the establishment details, or false when the profile
// belongs to another role.
func (p *Profile) Establishment() (EstablishmentDetails, bool) {
	d, ok := p.Details.(EstablishmentDetails)
	return d, ok
}

// CanChangeName reports whether the display name may change at now.
func (p *Profile) CanChangeName(now time.Time) bool {
	if p.LastNameChangeAt == nil {
		return true
	}
	return now.Sub(*p.LastNameChangeAt) >= NameChangeCooldown
}

// ProfileChanges is a partial update. Nil fields are left untouched.
type ProfileChanges struct {
	DisplayName      *string
	LastNameChangeAt *time.Time
	Bio              *string
	ArtisticStyle    *string
	Category         *string
}

// Empty reports whether the change set would not modify anything.
func (c ProfileChanges) Empty() bool {
	return c.DisplayName == nil && c.Bio == nil && c.ArtisticStyle == nil && c.Category == nil
}
