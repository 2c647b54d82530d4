package types

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	SkinTone string `json:"skin_tone,optional"`
	Gender   string `json:"gender,optional"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type UserProfile struct {
	Id        uint64  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	SkinTone  *string `json:"skin_tone"`
	Gender    *string `json:"gender"`
	CreatedAt int64   `json:"created_at"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,optional"`
	SkinTone *string `json:"skin_tone,optional"`
	Gender   *string `json:"gender,optional"`
}

type ItemPathRequest struct {
	Id uint64 `path:"id"`
}

type WardrobeItem struct {
	Id          uint64 `json:"id"`
	Filename    string `json:"filename"`
	FileUrl     string `json:"file_url"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"created_at"`
	UserId      uint64 `json:"user_id"`
}

type UploadItemsResponse struct {
	Uploaded []WardrobeItem `json:"uploaded"`
}

type DeleteItemResponse struct {
	Message string `json:"message"`
	Id      uint64 `json:"id"`
}

type OutfitRequest struct {
	City       string `form:"city,optional"`
	Hemisphere string `form:"hemisphere,default=north"`
	Units      string `form:"units,default=metric"`
	Date       string `form:"date,optional"`
	Lat        string `form:"lat,optional"`
	Lon        string `form:"lon,optional"`
	Gender     string `form:"gender,optional"`
	SkinTone   string `form:"skin_tone,optional"`
}

type OutfitDescription struct {
	ImageIndex  int    `json:"image_index"`
	Filename    string `json:"filename"`
	Description string `json:"description"`
}

type ResolvedRecommendation struct {
	WardrobeId   *uint64       `json:"wardrobe_id"`
	Reason       string        `json:"reason"`
	FallbackText *string       `json:"fallback_text"`
	// 只有 wardrobe_id 非空时才出现, 值为 *WardrobeItem, 找不到时为 null
	Item any `json:"item,omitempty"`
}

type OutfitResponse struct {
	OutfitDescriptions    []OutfitDescription      `json:"outfit_descriptions"`
	Season                string                   `json:"season"`
	Weather               map[string]any           `json:"weather"`
	SuggestionsRaw        string                   `json:"suggestions_raw"`
	Suggestions           []ResolvedRecommendation `json:"suggestions"`
	Notes                 string                   `json:"notes"`
	WeatherConsiderations string                   `json:"weather_considerations"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
	Mode   string `json:"mode,omitempty"`
}
