package handler

import (
	"go-auth-api/common"
	"go-auth-api/logger"
	"go-auth-api/model"
	"go-auth-api/service"
	"net/http"
)

// AuthHandler exposes registration, login, the refresh token lifecycle and password recovery.
type AuthHandler struct {
	service IAuthService
}

func NewAuthHandler(s IAuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates an account. The security question and answer are optional but must be sent together.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body model.RegisterRequest true "Registration details"
// @Success      201  {object}  model.PublicUser
// @Failure      400  {object}  common.AppError "Email or username taken, or invalid security question"
// @Failure      422  {object}  common.AppError "Validation failed"
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		return toAppError(err, "Could not register user")
	}

	common.WriteJSON(w, http.StatusCreated, user)
	return nil
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges a username and password for an access token and a refresh token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Username and password"
// @Success      200  {object}  service.TokenPair
// @Failure      400  {object}  common.AppError "Inactive user"
// @Failure      401  {object}  common.AppError "Incorrect username or password"
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	pair, err := h.service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		return toAppError(err, "Could not log in")
	}

	common.WriteJSON(w, http.StatusOK, pair)
	return nil
}

// Refresh godoc
// @Summary      Refresh the access token
// @Description  Issues a new access token and slides the refresh token's expiry forward.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body model.RefreshRequest true "Refresh token"
// @Success      200  {object}  model.AccessTokenResponse
// @Failure      400  {object}  common.AppError "Inactive user"
// @Failure      401  {object}  common.AppError "Invalid, expired or revoked refresh token"
// @Failure      404  {object}  common.AppError "User not found"
// @Router       /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RefreshRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	accessToken, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		return toAppError(err, "Could not refresh token")
	}

	common.WriteJSON(w, http.StatusOK, model.AccessTokenResponse{
		AccessToken: accessToken,
		TokenType:   service.TokenTypeBearer,
	})
	return nil
}

// Extend godoc
// @Summary      Extend a refresh token
// @Description  Pushes the refresh token's expiry forward without issuing an access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body model.ExtendRequest true "Refresh token and optional number of days"
// @Success      200  {object}  model.ExtendResponse
// @Failure      401  {object}  common.AppError "Refresh token expired or revoked"
// @Router       /api/v1/auth/extend [post]
func (h *AuthHandler) Extend(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.ExtendRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	extended, err := h.service.Extend(r.Context(), req.RefreshToken, req.ExtendDays)
	if err != nil {
		return toAppError(err, "Could not extend token")
	}

	common.WriteJSON(w, http.StatusOK, model.ExtendResponse{Extended: extended})
	return nil
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes a single refresh token. Unknown or already revoked tokens report false.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body model.RefreshRequest true "Refresh token"
// @Success      200  {object}  model.RevokeResponse
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RefreshRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	revoked, err := h.service.Revoke(r.Context(), req.RefreshToken)
	if err != nil {
		return toAppError(err, "Could not revoke token")
	}

	common.WriteJSON(w, http.StatusOK, model.RevokeResponse{Revoked: revoked})
	return nil
}

// LogoutAll godoc
// @Summary      Log out everywhere
// @Description  Revokes every live refresh token of the authenticated user.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.RevokeAllResponse
// @Failure      401  {object}  common.AppError "Could not validate credentials"
// @Router       /api/v1/auth/logout-all [post]
func (h *AuthHandler) LogoutAll(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, ok := UserFromContext(r.Context())
	if !ok {
		return unauthorized(nil)
	}

	n, err := h.service.RevokeAllForUser(r.Context(), user.ID)
	if err != nil {
		return toAppError(err, "Could not revoke tokens")
	}

	common.WriteJSON(w, http.StatusOK, model.RevokeAllResponse{RevokedCount: n})
	return nil
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.PublicUser
// @Failure      401  {object}  common.AppError "Could not validate credentials"
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, ok := UserFromContext(r.Context())
	if !ok {
		return unauthorized(nil)
	}
	common.WriteJSON(w, http.StatusOK, user.Public())
	return nil
}

// ForgotPassword godoc
// @Summary      Start password recovery
// @Description  Returns the security question configured for the account.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.ForgotPasswordRequest true "Account email"
// @Success      200  {object}  model.SecurityQuestionResponse
// @Failure      400  {object}  common.AppError "No security question set for this account"
// @Failure      404  {object}  common.AppError "Unknown email"
// @Router       /api/v1/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.ForgotPasswordRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	question, err := h.service.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		return toAppError(err, "Could not start password recovery")
	}

	common.WriteJSON(w, http.StatusOK, model.SecurityQuestionResponse{Question: question})
	return nil
}

// ResetPassword godoc
// @Summary      Reset password
// @Description  Sets a new password after a correct security answer and revokes every session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.ResetPasswordRequest true "Email, security answer and new password"
// @Success      200  {object}  model.MessageResponse
// @Failure      400  {object}  common.AppError "Incorrect security answer or no question set"
// @Failure      404  {object}  common.AppError "Unknown email"
// @Failure      500  {object}  common.AppError "Password could not be stored"
// @Router       /api/v1/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.ResetPasswordRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	msg, err := h.service.ResetPassword(r.Context(), req.Email, req.SecurityAnswer, req.NewPassword)
	if err != nil {
		return toAppError(err, "Could not reset password")
	}

	logger.Log.WithField("email", req.Email).Info("Password reset via security question")
	common.WriteJSON(w, http.StatusOK, model.MessageResponse{Message: msg})
	return nil
}
