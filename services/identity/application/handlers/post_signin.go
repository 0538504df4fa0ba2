package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/pkg/errhttp"
	"github.com/aikombin/aikombin-server/pkg/httpx"
	pkgvalidator "github.com/aikombin/aikombin-server/pkg/validator"
	appsvcs "github.com/aikombin/aikombin-server/services/identity/application/services"
)

// SignInRequest is the request body for POST /auth/signin.
type SignInRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"ayse@example.com"`
	Password string `json:"password" validate:"required"       example:"hunter42"`
} // @name SignInRequest

// PostSignInHandler handles POST /auth/signin requests.
type PostSignInHandler struct {
	svc      *appsvcs.Services
	sessions sessions.Store
	tokens   *auth.TokenIssuer
}

// NewPostSignInHandler returns a PostSignInHandler backed by the given services.
func NewPostSignInHandler(svc *appsvcs.Services, store sessions.Store, tokens *auth.TokenIssuer) *PostSignInHandler {
	return &PostSignInHandler{svc: svc, sessions: store, tokens: tokens}
}

// Execute checks credentials and establishes a session.
//
//	@Summary		Sign in
//	@Description	Verifies credentials and establishes a session
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SignInRequest	true	"Credentials"
//	@Success		200		{object}	AuthResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/auth/signin [post]
func (h *PostSignInHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SignInRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Identity.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	token, err := establishSession(w, r, h.sessions, h.tokens, user.ID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, AuthResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Token:     token,
	})
}
