package auth

// LoginInput represents the request body for authentication.
type LoginInput struct {
	Document string `json:"document" validate:"required" example:"569.679.155-76"`
	Password string `json:"password" validate:"required" example:"s3cret"`
}

// LoginResponse carries a token ready for the Authorization header.
type LoginResponse struct {
	Token string `json:"token" example:"Bearer eyJhbGciOiJIUzI1NiIs..."`
}
