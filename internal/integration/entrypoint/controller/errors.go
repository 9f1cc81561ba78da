// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/six-jars/backend/internal/application/usecase/state"
	domainerror "github.com/six-jars/backend/internal/domain/error"
	"github.com/six-jars/backend/internal/integration/entrypoint/dto"
	"github.com/six-jars/backend/internal/integration/entrypoint/middleware"
)

// handleError maps coded domain errors to HTTP responses.
func handleError(ctx *gin.Context, err error) {
	var (
		budgetErr  *domainerror.BudgetError
		savingsErr *domainerror.SavingsError
		petErr     *domainerror.PetError
		advisorErr *domainerror.AdvisorError
		authErr    *domainerror.AuthError
	)

	switch {
	case errors.As(err, &budgetErr):
		respondError(ctx, budgetStatus(budgetErr.Code), budgetErr.Message, string(budgetErr.Code))
	case errors.As(err, &savingsErr):
		respondError(ctx, savingsStatus(savingsErr.Code), savingsErr.Message, string(savingsErr.Code))
	case errors.As(err, &petErr):
		respondError(ctx, petStatus(petErr.Code), petErr.Message, string(petErr.Code))
	case errors.As(err, &advisorErr):
		respondError(ctx, advisorStatus(advisorErr.Code), advisorErr.Message, string(advisorErr.Code))
	case errors.As(err, &authErr):
		respondError(ctx, authStatus(authErr.Code), authErr.Message, string(authErr.Code))
	default:
		slog.Error("request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func respondError(ctx *gin.Context, status int, message, code string) {
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// bindJSON binds the request body and answers 400 when it is malformed.
func bindJSON(ctx *gin.Context, req interface{}, code string) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    code,
			Details: err.Error(),
		})
		return false
	}
	return true
}

// requireOwner returns the authenticated budget owner or answers 401.
func requireOwner(ctx *gin.Context) (state.Owner, bool) {
	owner, ok := middleware.GetOwnerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return state.Owner{}, false
	}
	return owner, true
}

func budgetStatus(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidIncome,
		domainerror.ErrCodeEmptyName,
		domainerror.ErrCodeUnknownJar,
		domainerror.ErrCodeMissingBudgetFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInsufficientFunds:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeNoPendingExpense:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func savingsStatus(code domainerror.SavingsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidDeposit,
		domainerror.ErrCodeEmptyGoalName,
		domainerror.ErrCodeMissingSavingsFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalAlreadyCompleted:
		return http.StatusConflict
	case domainerror.ErrCodeSavingsJarInsufficient:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func petStatus(code domainerror.PetErrorCode) int {
	switch code {
	case domainerror.ErrCodePetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePetNotCollected,
		domainerror.ErrCodeMissingPetID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func advisorStatus(code domainerror.AdvisorErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingAdvisorFields:
		return http.StatusBadRequest
	default:
		return http.StatusServiceUnavailable
	}
}

func authStatus(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists,
		domainerror.ErrCodeUsernameExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeInvalidUsername:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeUserNotFound,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
