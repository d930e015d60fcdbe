package handler

import (
	"go-auth-api/common"
	"go-auth-api/logger"
	"net/http"

	"github.com/sirupsen/logrus"
)

type SecurityQuestionHandler struct {
	service ISecurityQuestionService
}

func NewSecurityQuestionHandler(s ISecurityQuestionService) *SecurityQuestionHandler {
	return &SecurityQuestionHandler{service: s}
}

// ListSecurityQuestions godoc
// @Summary      List security questions
// @Description  Returns the active recovery questions. Defaults are seeded on first use.
// @Tags         security-questions
// @Produce      json
// @Success      200  {array}   model.SecurityQuestion
// @Failure      500  {object}  common.AppError
// @Router       /api/v1/auth/security-questions [get]
func (h *SecurityQuestionHandler) ListSecurityQuestions(w http.ResponseWriter, r *http.Request) *common.AppError {
	questions, err := h.service.ListActive(r.Context())
	if err != nil {
		return toAppError(err, "Could not retrieve security questions")
	}
	common.WriteJSON(w, http.StatusOK, questions)
	return nil
}

// DeactivateSecurityQuestion godoc
// @Summary      Retire a security question
// @Description  Hides the question from the list. Accounts that chose it can still recover with it.
// @Tags         security-questions
// @Security     BearerAuth
// @Param        id path string true "Security question ID"
// @Success      204
// @Failure      401  {object}  common.AppError "Could not validate credentials"
// @Failure      403  {object}  common.AppError "Superuser privileges required"
// @Failure      404  {object}  common.AppError "Security question not found"
// @Router       /api/v1/auth/security-questions/{id} [delete]
func (h *SecurityQuestionHandler) DeactivateSecurityQuestion(w http.ResponseWriter, r *http.Request) *common.AppError {
	id := r.PathValue("id")

	if err := h.service.Deactivate(r.Context(), id); err != nil {
		return toAppError(err, "Could not deactivate security question")
	}

	fields := logrus.Fields{"security_question_id": id}
	if user, ok := UserFromContext(r.Context()); ok {
		fields["user_id"] = user.ID
	}
	logger.Log.WithFields(fields).Info("Security question retired")

	w.WriteHeader(http.StatusNoContent)
	return nil
}
