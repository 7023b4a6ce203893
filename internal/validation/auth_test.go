package validation

import "testing"

func TestRegister_Valid(t *testing.T) {
	req := &RegisterRequest{
		Email:    "test@example.com",
		Password: "password123",
		Name:     strPtr("Test User"),
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegister_OptionalName(t *testing.T) {
	req := &RegisterRequest{Email: "test@example.com", Password: "password123"}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegister_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		req     RegisterRequest
		wantMsg string
	}{
		{"invalid email", RegisterRequest{Email: "invalid-email", Password: "password123"}, "Invalid email address"},
		{"short password", RegisterRequest{Email: "test@example.com", Password: "123"}, "Password must be at least 6 characters"},
		{"empty name", RegisterRequest{Email: "test@example.com", Password: "password123", Name: strPtr("")}, "Name is required"},
	}
	for _, tc := range cases {
		err := tc.req.Validate()
		if err == nil || err.Error() != tc.wantMsg {
			t.Errorf("%s: err = %v; want %q", tc.name, err, tc.wantMsg)
		}
	}
}

func TestRegister_FieldOrder(t *testing.T) {
	// both email and password invalid: the email rule is declared first
	req := &RegisterRequest{Email: "nope", Password: ""}
	err := req.Validate()
	if err == nil || err.Error() != "Invalid email address" {
		t.Fatalf("err = %v; want first declared failure", err)
	}
}

func TestLogin(t *testing.T) {
	ok := &LoginRequest{Email: "test@example.com", Password: "password123"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// short passwords are fine on login, only emptiness is checked
	short := &LoginRequest{Email: "test@example.com", Password: "123"}
	if err := short.Validate(); err != nil {
		t.Fatalf("short password should pass login validation: %v", err)
	}

	empty := &LoginRequest{Email: "test@example.com", Password: ""}
	if err := empty.Validate(); err == nil || err.Error() != "Password is required" {
		t.Errorf("err = %v; want password required", err)
	}
}
