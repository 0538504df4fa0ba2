package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/pkg/httpx"
)

// PostSignOutHandler handles POST /auth/signout requests.
type PostSignOutHandler struct {
	sessions sessions.Store
}

// NewPostSignOutHandler returns a PostSignOutHandler using the given session store.
func NewPostSignOutHandler(store sessions.Store) *PostSignOutHandler {
	return &PostSignOutHandler{sessions: store}
}

// Execute destroys the current session.
//
//	@Summary		Sign out
//	@Description	Invalidates the session cookie
//	@Tags			auth
//	@Produce		json
//	@Success		204	"session destroyed"
//	@Router			/auth/signout [post]
func (h *PostSignOutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	session, _ := h.sessions.Get(r, auth.SessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "could not destroy session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
