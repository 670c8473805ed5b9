package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pgnest/hostel-system/internal/api/metrics"
	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

// AuthHandler handles login, logout and session mutations.
type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Email        string `json:"email"         validate:"required,email"`
	Password     string `json:"password"      validate:"required"`
	Role         string `json:"role"          validate:"required,oneof=admin guest"`
	AdminSubRole string `json:"admin_sub_role" validate:"omitempty,oneof=super_admin pg_admin warden"`
	Remember     bool   `json:"remember"`
}

type sessionResponse struct {
	Token   string          `json:"token,omitempty"`
	Session *domain.Session `json:"session"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin guest public"`
}

type setSubRoleRequest struct {
	AdminSubRole string `json:"admin_sub_role" validate:"required,oneof=super_admin pg_admin warden"`
}

type updateProfileRequest struct {
	Name         string `json:"name"  validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	ProfileImage string `json:"profile_image"`
}

type roleOption struct {
	Role     string   `json:"role"`
	SubRoles []string `json:"sub_roles,omitempty"`
}

// Login authenticates the caller and opens a session.
//
// @Summary      Log in as one of the dashboard audiences
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials and target audience"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.sessions.Login(c.Request().Context(), ports.LoginInput{
		Email:        req.Email,
		Password:     req.Password,
		Role:         domain.Role(req.Role),
		AdminSubRole: domain.AdminSubRole(req.AdminSubRole),
		Remember:     req.Remember,
	})
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure", req.Role).Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success", req.Role).Inc()
	return c.JSON(http.StatusOK, sessionResponse{
		Token:   result.Token,
		Session: result.Session,
	})
}

// Logout closes the caller's session. Idempotent.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Logout(c.Request().Context(), sess.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session returns the caller's current session state.
//
// @Summary      Get the current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Session: sess})
}

// SetRole overwrites the session's role.
//
// @Summary      Switch the session role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setRoleRequest  true  "New role"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/session/role [put]
func (h *AuthHandler) SetRole(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.sessions.SetRole(c.Request().Context(), sess.ID, domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Session: updated})
}

// SetAdminSubRole overwrites the session's admin sub-role.
//
// @Summary      Switch the admin sub-role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setSubRoleRequest  true  "New admin sub-role"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/session/sub-role [put]
func (h *AuthHandler) SetAdminSubRole(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req setSubRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.sessions.SetAdminSubRole(c.Request().Context(), sess.ID, domain.AdminSubRole(req.AdminSubRole))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Session: updated})
}

// UpdateProfile replaces the mutable identity fields wholesale. Role, sub-role
// and guest placement are preserved from the current identity.
//
// @Summary      Update the session profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/session/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if sess.Identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	identity := *sess.Identity
	identity.Name = req.Name
	identity.Email = req.Email
	identity.ProfileImage = req.ProfileImage

	updated, err := h.sessions.UpdateUser(c.Request().Context(), sess.ID, identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Session: updated})
}

// Profile returns the caller's own identity.
//
// @Summary      Get the caller's profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Identity
// @Failure      401  {object}  errorResponse
// @Router       /guest/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if sess.Identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return c.JSON(http.StatusOK, sess.Identity)
}

// RoleSelection is the public landing page denied requests are redirected to.
// It lists the audiences an actor can log in as.
//
// @Summary      List selectable audiences
// @Tags         auth
// @Produce      json
// @Success      200  {array}  roleOption
// @Router       /role-selection [get]
func (h *AuthHandler) RoleSelection(c echo.Context) error {
	return c.JSON(http.StatusOK, []roleOption{
		{
			Role: string(domain.RoleAdmin),
			SubRoles: []string{
				string(domain.SubRoleSuperAdmin),
				string(domain.SubRolePGAdmin),
				string(domain.SubRoleWarden),
			},
		},
		{Role: string(domain.RoleGuest)},
	})
}
