package requests

type CreateBusiness struct {
	Slug     string `json:"slug" validate:"required,slug"`
	Name     string `json:"name" validate:"required,max=120"`
	Timezone string `json:"timezone" validate:"omitempty,timezone"`
}

// AddMember links a staff user to a business. When no user exists for the
// email, Name and Password are used to create one.
type AddMember struct {
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"omitempty,oneof=owner staff"`
	Name     string `json:"name" validate:"max=120"`
	Password string `json:"password" validate:"omitempty,min=8"`
}
