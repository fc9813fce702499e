package dto

// SignUpRequest is the body of POST /auth/signup.
type SignUpRequest struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=8"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// SignInRequest is the body of POST /auth/signin.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the body of PUT /auth/me. Pointers distinguish
// omitted fields from zero values; password, when present, is rehashed.
type UpdateProfileRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Password        *string `json:"password" binding:"omitempty,min=8"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// AuthResponse is returned by signup, signin and profile update.
type AuthResponse struct {
	ID    string       `json:"id"`
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ExchangeCodeRequest carries the Google authorization code from the frontend.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// TokenResponse wraps a freshly minted access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// UploadImageResponse is returned by POST /auth/upload-image.
type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}
