package web

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// plain strips markup from user supplied text before it is stored.
func (s *Server) plain(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}

// check validates a form struct and turns the first failure into a message
// fit for the page.
func (s *Server) check(form any) error {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required.", fe.Field())
	case "email":
		msg = "Enter a valid email address."
	case "min":
		msg = fmt.Sprintf("%s must be at least %s characters.", fe.Field(), fe.Param())
	case "uuid4", "uuid":
		msg = "That link has expired. Please start again."
	default:
		msg = fmt.Sprintf("%s is invalid.", fe.Field())
	}
	return reject(http.StatusUnprocessableEntity, msg)
}

func formValues(r *http.Request, keys ...string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		m[k] = r.FormValue(k)
	}
	return m
}
