package transport

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Errors  string `json:"errors,omitempty"`
}

type AddProductRequest struct {
	Brand       string  `json:"brand"       validate:"required"`
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image"       validate:"required"`
	Category    string  `json:"category"    validate:"required"`
	NewPrice    float64 `json:"new_price"   validate:"required"`
	OldPrice    float64 `json:"old_price"   validate:"required"`
}

type RemoveProductRequest struct {
	ID   uint   `json:"id" validate:"required"`
	Name string `json:"name"`
}

type ProductResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
}

type CartRequest struct {
	ItemID uint `json:"itemId"`
}

type UploadResponse struct {
	Success  int    `json:"success"`
	ImageURL string `json:"image_url"`
}
