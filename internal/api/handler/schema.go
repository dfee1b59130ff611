package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerArtistRequest struct {
	Role          string   `json:"role"                 validate:"omitempty,eq=artist"`
	Email         string   `json:"email"                validate:"required,email"`
	Password      string   `json:"password"             validate:"required,min=8"`
	DisplayName   string   `json:"display_name"         validate:"required,min=3,max=120"`
	ArtisticStyle string   `json:"artistic_style"       validate:"required,min=2,max=120"`
	Bio           string   `json:"bio"                  validate:"required,min=20"`
	ProfileImage  string   `json:"profile_image_base64"`
	Gallery       []string `json:"gallery_base64"       validate:"omitempty,dive,required"`
}

type registerEstablishmentRequest struct {
	Role         string  `json:"role"                 validate:"omitempty,eq=establishment"`
	Email        string  `json:"email"                validate:"required,email"`
	Password     string  `json:"password"             validate:"required,min=8"`
	DisplayName  string  `json:"display_name"         validate:"required,min=2,max=120"`
	Category     string  `json:"category"             validate:"required,min=2,max=120"`
	Street       string  `json:"street"               validate:"required,max=200"`
	Number       string  `json:"number"               validate:"required,max=50"`
	PostalCode   string  `json:"postal_code"          validate:"required,max=20"`
	Colony       *string `json:"colony"               validate:"omitempty,max=120"`
	Municipality *string `json:"municipality"         validate:"omitempty,max=120"`
	ProfileImage string  `json:"profile_image_base64"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// --- Profile ---

type updateProfileRequest struct {
	DisplayName   *string `json:"display_name"   validate:"omitempty,min=3,max=120"`
	Bio           *string `json:"bio"            validate:"omitempty,min=20"`
	ArtisticStyle *string `json:"artistic_style" validate:"omitempty,min=2,max=120"`
	Category      *string `json:"category"       validate:"omitempty,min=2,max=120"`
}

type profileImageRequest struct {
	ProfileImage string `json:"profile_image_base64" validate:"required"`
}

type galleryRequest struct {
	Gallery []string `json:"gallery_base64" validate:"required,min=1,dive,required"`
}

type galleryItemResponse struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
}

type profileResponse struct {
	Role             string  `json:"role"`
	Email            string  `json:"email"`
	DisplayName      string  `json:"display_name"`
	ProfileImageURL  *string `json:"profile_image_url"`
	LastNameChangeAt *string `json:"last_name_change_at"`

	Bio           *string `json:"bio"`
	ArtisticStyle *string `json:"artistic_style"`

	Category     *string `json:"category"`
	Street       *string `json:"street"`
	Number       *string `json:"number"`
	PostalCode   *string `json:"postal_code"`
	Colony       *string `json:"colony"`
	Municipality *string `json:"municipality"`

	Gallery []galleryItemResponse `json:"gallery"`
}

type profileImageResponse struct {
	OK              bool   `json:"ok"`
	ProfileImageURL string `json:"profile_image_url"`
}

type galleryAddedResponse struct {
	OK    bool     `json:"ok"`
	Items []string `json:"items"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// --- Public directory ---

type pageResponse[T any] struct {
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}

type artistCardResponse struct {
	UserID          int64   `json:"user_id"`
	DisplayName     string  `json:"display_name"`
	ProfileImageURL *string `json:"profile_image_url"`
	ArtisticStyle   *string `json:"artistic_style"`
}

type establishmentCardResponse struct {
	UserID          int64   `json:"user_id"`
	DisplayName     string  `json:"display_name"`
	ProfileImageURL *string `json:"profile_image_url"`
	Category        *string `json:"category"`
	Municipality    *string `json:"municipality"`
}

type artworkCardResponse struct {
	GalleryID   int64  `json:"gallery_id"`
	ImageURL    string `json:"image_url"`
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// homeArtworkResponse names the owner artist_name on the home feed.
type homeArtworkResponse struct {
	GalleryID  int64  `json:"gallery_id"`
	ImageURL   string `json:"image_url"`
	UserID     int64  `json:"user_id"`
	ArtistName string `json:"artist_name"`
}

type homeResponse struct {
	Artists        []artistCardResponse        `json:"artists"`
	Establishments []establishmentCardResponse `json:"establishments"`
	Artworks       []homeArtworkResponse       `json:"artworks"`
}

type publicArtistResponse struct {
	UserID          int64                 `json:"user_id"`
	DisplayName     string                `json:"display_name"`
	ProfileImageURL *string               `json:"profile_image_url"`
	Bio             string                `json:"bio"`
	ArtisticStyle   string                `json:"artistic_style"`
	Gallery         []galleryItemResponse `json:"gallery"`
}

type listQuery struct {
	Search string `query:"search"`
	Page   int    `query:"page"`
	Size   int    `query:"size"`
}

type homeQuery struct {
	Artists        int `query:"artists_size"        json:"artists_size"        validate:"gte=1,lte=30"`
	Establishments int `query:"establishments_size" json:"establishments_size" validate:"gte=1,lte=30"`
	Artworks       int `query:"artworks_size"       json:"artworks_size"       validate:"gte=1,lte=30"`
}
