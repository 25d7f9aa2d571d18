package handlers

import (
	"errors"
	"log"
	"net/http"

	"budget_tracker/internal/adapter/http/dto/request"
	"budget_tracker/internal/adapter/http/dto/response"
	"budget_tracker/internal/adapter/http/middleware"
	"budget_tracker/internal/adapter/http/session"
	"budget_tracker/internal/usecase"
	"budget_tracker/pkg"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, logout and the current session.
type AuthHandler struct {
	usecase      usecase.IIdentityUseCase
	sessions     *session.Manager
	revocations  session.RevocationStore
	secureCookie bool
}

func NewAuthHandler(uc usecase.IIdentityUseCase, sessions *session.Manager, revocations session.RevocationStore, secureCookie bool) *AuthHandler {
	return &AuthHandler{usecase: uc, sessions: sessions, revocations: revocations, secureCookie: secureCookie}
}

// Login godoc
// @Summary      Log in
// @Description  Verifies the credentials and opens a session. The token is set as the "session" cookie and also returned in the body.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Credentials"
// @Success      200   {object}  response.LoginResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	identity, err := h.usecase.Authenticate(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		writeError(c, mapIdentityError(err))
		return
	}

	token, _, err := h.sessions.Issue(identity)
	if err != nil {
		writeError(c, internalError(err))
		return
	}

	h.setSessionCookie(c, token, int(h.sessions.TTL().Seconds()))
	c.JSON(http.StatusOK, response.LoginResponse{
		Message: "登录成功",
		User:    response.FromIdentity(identity),
		Token:   token,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the current session token and clears the cookie. Always succeeds.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.MessageResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if claims, ok := middleware.ClaimsFrom(c); ok && claims.ExpiresAt != nil {
		if err := h.revocations.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
			log.Printf("[auth][handler] revoke failed jti=%s err=%v", claims.ID, err)
		}
	}
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "登出成功"})
}

// Session godoc
// @Summary      Current identity
// @Description  Returns the logged-in identity with its role read from the store.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.IdentityResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		writeError(c, errAuthenticationRequired)
		return
	}

	role, err := h.usecase.RoleOf(c.Request.Context(), identity.ID)
	if err != nil {
		writeError(c, mapIdentityError(err))
		return
	}

	current := *identity
	current.Role = role
	c.JSON(http.StatusOK, response.FromIdentity(current))
}

// ListUsers godoc
// @Summary      List accounts
// @Description  Administrative listing of every identity. Leaders and project managers only.
// @Tags         admin
// @Produce      json
// @Success      200  {array}   response.IdentityResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Router       /admin/users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	list, err := h.usecase.ListIdentities(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		writeError(c, mapIdentityError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromIdentities(list))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, value, maxAge, "/", "", h.secureCookie, true)
}

func mapIdentityError(err error) *pkg.AppError {
	if appErr := mapAccessError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "用户名或密码错误", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrIdentityNotFound):
		return pkg.NewDomainErrorSimple("IDENTITY_NOT_FOUND", "用户不存在", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
