package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BlogForm is the editable part of a Blog. Create requests and the admin CLI
// both work on this shape.
type BlogForm struct {
	Title        string `json:"title" validate:"required"`
	Image        string `json:"image" validate:"required"`
	TextSummary  string `json:"textSummary" validate:"required"`
	RedirectLink string `json:"redirectLink"`
	Active       bool   `json:"active"`
}

// BlogPatch holds the fields a PATCH request may change. nil means unchanged.
type BlogPatch struct {
	Title        *string `json:"title,omitempty"`
	Image        *string `json:"image,omitempty"`
	TextSummary  *string `json:"textSummary,omitempty"`
	RedirectLink *string `json:"redirectLink,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

// IsEmpty reports whether no field is set.
func (p BlogPatch) IsEmpty() bool {
	return p.Title == nil && p.Image == nil && p.TextSummary == nil && p.RedirectLink == nil && p.Active == nil
}

// MergeInto returns f with every non-nil field of p applied.
func (p BlogPatch) MergeInto(f BlogForm) BlogForm {
	if p.Title != nil {
		f.Title = *p.Title
	}
	if p.Image != nil {
		f.Image = *p.Image
	}
	if p.TextSummary != nil {
		f.TextSummary = *p.TextSummary
	}
	if p.RedirectLink != nil {
		f.RedirectLink = *p.RedirectLink
	}
	if p.Active != nil {
		f.Active = *p.Active
	}
	return f
}

// Field error messages keyed by json field name.
var requiredMessages = map[string]string{
	"title":       "Title is required",
	"image":       "Image is required",
	"textSummary": "Summary is required",
}

// formFieldOrder keeps the error listing stable for callers that print them.
var formFieldOrder = []string{"title", "image", "textSummary"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Normalize trims surrounding whitespace from every text field.
func (f BlogForm) Normalize() BlogForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Image = strings.TrimSpace(f.Image)
	f.TextSummary = strings.TrimSpace(f.TextSummary)
	f.RedirectLink = strings.TrimSpace(f.RedirectLink)
	return f
}

// Validate returns field -> message for every invalid field. The map is
// empty when the form is valid. Whitespace-only values count as missing.
func (f BlogForm) Validate() map[string]string {
	out := map[string]string{}
	err := validate.Struct(f.Normalize())
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			out[field] = requiredMessages[field]
		default:
			out[field] = fe.Error()
		}
	}
	return out
}

// OrderedErrors returns the messages of errs in form field order.
func OrderedErrors(errs map[string]string) []string {
	msgs := make([]string, 0, len(errs))
	seen := map[string]bool{}
	for _, k := range formFieldOrder {
		if m, ok := errs[k]; ok {
			msgs = append(msgs, m)
			seen[k] = true
		}
	}
	for k, m := range errs {
		if !seen[k] {
			msgs = append(msgs, m)
		}
	}
	return msgs
}
