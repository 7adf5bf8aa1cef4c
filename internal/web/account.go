package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/muhammadolammi/jobfit/internal/auth"
	"go.uber.org/zap"
)

type signupForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (s *Server) handleSignupForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "signup", page{Title: "Sign up"})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	form := signupForm{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
	retry := func(status int, msg string) {
		s.render(w, r, status, "signup", page{Title: "Sign up", Error: msg, Form: formValues(r, "name", "email")})
	}
	if err := s.check(form); err != nil {
		retry(statusFor(err))
		return
	}

	_, err := s.cfg.Auth.Signup(r.Context(), form.Email, form.Password, s.plain(form.Name))
	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		retry(http.StatusConflict, err.Error())
		return
	case errors.Is(err, auth.ErrWeakPassword):
		retry(http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		s.fail(w, r, err)
		return
	}
	s.signIn(w, r, form.Email, form.Password)
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "login", page{Title: "Log in"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	form := loginForm{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
	if err := s.check(form); err != nil {
		status, msg := statusFor(err)
		s.render(w, r, status, "login", page{Title: "Log in", Error: msg, Form: formValues(r, "email")})
		return
	}
	s.signIn(w, r, form.Email, form.Password)
}

func (s *Server) signIn(w http.ResponseWriter, r *http.Request, email, password string) {
	sess, err := s.cfg.Auth.Login(r.Context(), email, password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		s.render(w, r, http.StatusUnauthorized, "login", page{Title: "Log in", Error: err.Error(), Form: formValues(r, "email")})
		return
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	auth.SetTokenCookie(w, sess.Token, sess.ExpiresAt, s.cfg.SecureCookies)
	s.logger.Info("user signed in", zap.String("user_id", sess.User.ID.String()))
	http.Redirect(w, r, "/history", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	auth.ClearTokenCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
