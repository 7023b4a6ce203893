package validation

// RegisterRequest is the POST /auth/register body.
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
}

func (r *RegisterRequest) Validate() error {
	return Schema{
		{Name: "email", Rules: []Rule{
			email(r.Email, "Invalid email address"),
		}},
		{Name: "password", Rules: []Rule{
			minLen(r.Password, 6, "Password must be at least 6 characters"),
			maxLen(r.Password, 100, "Password is too long"),
		}},
		{Name: "name", Rules: []Rule{
			optMinLen(r.Name, 1, "Name is required"),
			optMaxLen(r.Name, 100, "Name is too long"),
		}},
	}.Validate()
}

// LoginRequest is the POST /auth/login body. Unlike registration,
// the password only has to be non-empty here.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	return Schema{
		{Name: "email", Rules: []Rule{
			email(r.Email, "Invalid email address"),
		}},
		{Name: "password", Rules: []Rule{
			minLen(r.Password, 1, "Password is required"),
		}},
	}.Validate()
}
