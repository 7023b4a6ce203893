package validation

import "regexp"

var colorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// DefaultTagColor is used when a tag is created without a color.
const DefaultTagColor = "#3b82f6"

// CreateTagRequest is the POST /tags body.
type CreateTagRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

// TagInput is a validated tag payload with defaults applied.
type TagInput struct {
	Name  string
	Color string
}

func (r *CreateTagRequest) Validate() (*TagInput, error) {
	err := Schema{
		{Name: "name", Rules: []Rule{
			minLen(r.Name, 1, "Name is required"),
			maxLen(r.Name, 50, "Name is too long"),
		}},
		{Name: "color", Rules: []Rule{
			optMatch(r.Color, colorRe, "Invalid color format"),
		}},
	}.Validate()
	if err != nil {
		return nil, err
	}

	in := &TagInput{Name: r.Name, Color: DefaultTagColor}
	if r.Color != nil {
		in.Color = *r.Color
	}
	return in, nil
}

// UpdateTagRequest is the PUT /tags/:id body; both fields optional.
type UpdateTagRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

func (r *UpdateTagRequest) Validate() error {
	return Schema{
		{Name: "name", Rules: []Rule{
			optMinLen(r.Name, 1, "Name is required"),
			optMaxLen(r.Name, 50, "Name is too long"),
		}},
		{Name: "color", Rules: []Rule{
			optMatch(r.Color, colorRe, "Invalid color format"),
		}},
	}.Validate()
}
