package handler

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/yndnr/memohalo-go/internal/core/domain"
)

func validateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < 1 || n > domain.MaxUsernameLength {
		return domain.ErrInvalidArgument.WithDetails(
			fmt.Sprintf("username must be 1 to %d characters", domain.MaxUsernameLength))
	}
	return nil
}

// readCredentials decodes the sign-up and sign-in body and checks the
// username shape.
func readCredentials(w http.ResponseWriter, r *http.Request) (*CredentialsRequest, error) {
	var req CredentialsRequest
	if err := decode(w, r, &req); err != nil {
		return nil, err
	}
	if err := validateUsername(req.Username); err != nil {
		return nil, err
	}
	return &req, nil
}

// SignUp handles POST /user/sign-up.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	req, err := readCredentials(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if utf8.RuneCountInString(req.Password) < h.minPwLen {
		h.writeError(w, r, domain.ErrInvalidArgument.WithDetails(
			fmt.Sprintf("password must be at least %d characters", h.minPwLen)))
		return
	}

	identity, err := h.identities.Register(r.Context(), req.Username, req.Password)
	h.recordAuth("sign_up", err)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, UserResponse{Username: identity.Username})
}

// SignIn handles POST /user/sign-in. The password length rule is not
// applied here; any mismatch is AuthFailure.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	req, err := readCredentials(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	identity, err := h.identities.Verify(r.Context(), req.Username, req.Password)
	if err != nil {
		h.recordAuth("sign_in", err)
		h.logger.InfoContext(r.Context(), "sign-in rejected",
			"username", req.Username,
			"code", domain.GetErrorCode(err),
		)
		h.writeError(w, r, err)
		return
	}

	resp, err := h.sessions.Create(r.Context(), identity)
	h.recordAuth("sign_in", err)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "session created",
		"session_id", resp.Session.ID,
		"username", identity.Username,
	)

	h.cookies.Set(w, resp.Token)
	h.writeJSON(w, r, http.StatusOK, UserResponse{Username: identity.Username})
}

// SignOut handles POST /user/sign-out. It must run behind the identity
// middleware.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	err := h.sessions.End(r.Context(), h.cookies.Token(r))
	h.recordAuth("sign_out", err)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if s := SessionFromContext(r.Context()); s != nil {
		h.logger.InfoContext(r.Context(), "session ended", "session_id", s.ID)
	}

	h.cookies.Clear(w)
	h.writeJSON(w, r, http.StatusOK, SignOutResponse{Success: true})
}

// Profile handles GET /user/profile.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	username := UsernameFromContext(r.Context())
	if username == "" {
		h.writeError(w, r, domain.ErrUnauthenticated)
		return
	}
	h.writeJSON(w, r, http.StatusOK, UserResponse{Username: username})
}
