package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/pkg/errhttp"
	"github.com/aikombin/aikombin-server/pkg/httpx"
	pkgvalidator "github.com/aikombin/aikombin-server/pkg/validator"
	appsvcs "github.com/aikombin/aikombin-server/services/identity/application/services"
)

// SignUpRequest is the request body for POST /auth/signup.
type SignUpRequest struct {
	Email    string `json:"email"    validate:"required,email"       example:"ayse@example.com"`
	Password string `json:"password" validate:"required,min=6,max=72" example:"hunter42"`
} // @name SignUpRequest

// AuthResponse is returned on successful sign-up and sign-in.
// Token is the bearer token for the v1 API; the session cookie is set
// alongside it.
type AuthResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Email     string    `json:"email"      example:"ayse@example.com"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	Token     string    `json:"token"`
} // @name AuthResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"email already in use"`
} // @name ErrorResponse

// PostSignUpHandler handles POST /auth/signup requests.
type PostSignUpHandler struct {
	svc      *appsvcs.Services
	sessions sessions.Store
	tokens   *auth.TokenIssuer
}

// NewPostSignUpHandler returns a PostSignUpHandler backed by the given services.
func NewPostSignUpHandler(svc *appsvcs.Services, store sessions.Store, tokens *auth.TokenIssuer) *PostSignUpHandler {
	return &PostSignUpHandler{svc: svc, sessions: store, tokens: tokens}
}

// Execute registers a new account and signs it in.
//
//	@Summary		Sign up
//	@Description	Creates an account and establishes a session
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SignUpRequest	true	"Registration request"
//	@Success		201		{object}	AuthResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/auth/signup [post]
func (h *PostSignUpHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SignUpRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Identity.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	token, err := establishSession(w, r, h.sessions, h.tokens, user.ID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, AuthResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Token:     token,
	})
}

// establishSession writes the session cookie and issues a bearer token for
// the signed-in user.
func establishSession(w http.ResponseWriter, r *http.Request, store sessions.Store, tokens *auth.TokenIssuer, userID uuid.UUID) (string, error) {
	session, _ := store.Get(r, auth.SessionName)
	session.Values[auth.SessionUserIDKey] = userID.String()
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return tokens.Issue(userID)
}
