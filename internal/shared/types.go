package shared

// shared types across the application

// AuthClaims is the identity carried by an access token. Handlers trust it
// without going back to the user table.
type AuthClaims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	HostelID string `json:"hostel_id"`
}

func (c AuthClaims) IsAdmin() bool {
	return c.Role == "ADMIN"
}
