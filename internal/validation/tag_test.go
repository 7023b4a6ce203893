package validation

import (
	"strings"
	"testing"
)

func TestCreateTag_DefaultColor(t *testing.T) {
	in, err := (&CreateTagRequest{Name: "Work"}).Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Color != DefaultTagColor {
		t.Errorf("color = %s; want %s", in.Color, DefaultTagColor)
	}
}

func TestCreateTag_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		req     CreateTagRequest
		wantMsg string
	}{
		{"empty name", CreateTagRequest{Name: ""}, "Name is required"},
		{"long name", CreateTagRequest{Name: strings.Repeat("n", 51)}, "Name is too long"},
		{"bad color", CreateTagRequest{Name: "Work", Color: strPtr("red")}, "Invalid color format"},
		{"short hex", CreateTagRequest{Name: "Work", Color: strPtr("#fff")}, "Invalid color format"},
	}
	for _, tc := range cases {
		_, err := tc.req.Validate()
		if err == nil || err.Error() != tc.wantMsg {
			t.Errorf("%s: err = %v; want %q", tc.name, err, tc.wantMsg)
		}
	}
}

func TestCreateTag_ColorCase(t *testing.T) {
	for _, c := range []string{"#ef4444", "#EF4444", "#3B82f6"} {
		if _, err := (&CreateTagRequest{Name: "x", Color: strPtr(c)}).Validate(); err != nil {
			t.Errorf("%s rejected: %v", c, err)
		}
	}
}

func TestUpdateTag_AllOptional(t *testing.T) {
	if err := (&UpdateTagRequest{}).Validate(); err != nil {
		t.Fatalf("empty update rejected: %v", err)
	}
	if err := (&UpdateTagRequest{Color: strPtr("#ffffff")}).Validate(); err != nil {
		t.Fatalf("color-only update rejected: %v", err)
	}
	err := (&UpdateTagRequest{Name: strPtr("")}).Validate()
	if err == nil || err.Error() != "Name is required" {
		t.Errorf("err = %v; want name required", err)
	}
}
