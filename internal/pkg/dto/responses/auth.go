package responses

type AccessDecision struct {
	Allowed      bool `json:"allowed"`
	IsSuperAdmin bool `json:"is_super_admin"`
}

type AdminLogin struct {
	Token     string         `json:"token"`
	ExpiresAt string         `json:"expires_at"`
	UserID    string         `json:"user_id"`
	Email     string         `json:"email"`
	Tenant    string         `json:"tenant"`
	Decision  AccessDecision `json:"decision"`
}

type Me struct {
	UserID   string         `json:"user_id"`
	Email    string         `json:"email"`
	Name     string         `json:"name,omitempty"`
	Tenant   string         `json:"tenant"`
	Decision AccessDecision `json:"decision"`
}
