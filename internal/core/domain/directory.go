package domain

// ArtistCard is the summary of an artist shown in public listings.
type ArtistCard struct {
	UserID          int64
	DisplayName     string
	ProfileImageURL *string
	ArtisticStyle   *string
}

// EstablishmentCard is the summary of an establishment shown in public listings.
type EstablishmentCard struct {
	UserID          int64
	DisplayName     string
	ProfileImageURL *string
	Category        *string
	Municipality    *string
}

// ArtworkCard is a gallery image joined with its owner's display name.
type ArtworkCard struct {
	GalleryID   int64
	ImageURL    string
	UserID      int64
	DisplayName string
}
