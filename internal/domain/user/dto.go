package user

type RegisterDTO struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Email    string `json:"email" form:"email"`
}

type LoginDTO struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileDTO struct {
	FirstName *string `json:"first_name,omitempty" form:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty" form:"last_name,omitempty"`
	Email     *string `json:"email,omitempty" form:"email,omitempty"`
	Role      *Role   `json:"role,omitempty" form:"role,omitempty"`
	Phone     *string `json:"phone,omitempty" form:"phone,omitempty"`
}
