package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/six-jars/backend/internal/application/usecase/budget"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
	"github.com/six-jars/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles the two-step expense flow and expense deletion.
type ExpenseController struct {
	requestUseCase *budget.RequestExpenseUseCase
	confirmUseCase *budget.ConfirmExpenseUseCase
	cancelUseCase  *budget.CancelExpenseUseCase
	deleteUseCase  *budget.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	requestUseCase *budget.RequestExpenseUseCase,
	confirmUseCase *budget.ConfirmExpenseUseCase,
	cancelUseCase *budget.CancelExpenseUseCase,
	deleteUseCase *budget.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		requestUseCase: requestUseCase,
		confirmUseCase: confirmUseCase,
		cancelUseCase:  cancelUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// Request handles POST /expenses/requests requests.
// The expense is held for confirmation and the budget is not changed.
func (c *ExpenseController) Request(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.ExpenseRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingBudgetFields)) {
		return
	}

	output, err := c.requestUseCase.Execute(ctx.Request.Context(), budget.RequestExpenseInput{
		Owner:    owner,
		Name:     req.Name,
		Amount:   req.Amount,
		Category: entity.Category(req.Category),
		Jar:      entity.JarID(req.Jar),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.PendingExpenseResponse{
		Draft:              dto.ToExpenseDraftResponse(output.Draft),
		Covered:            output.Covered,
		JarBalance:         output.Balance,
		Suggested:          output.Suggested,
		SuggestionFallback: output.SuggestionFallback,
	})
}

// Confirm handles POST /expenses/requests/confirm requests.
func (c *ExpenseController) Confirm(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.confirmUseCase.Execute(ctx.Request.Context(), budget.ConfirmExpenseInput{Owner: owner})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ConfirmExpenseResponse{
		Expense: dto.ToExpenseResponse(output.Expense),
		Budget:  dto.ToBudgetResponse(output.State),
		Events:  dto.ToEventResponses(output.Events),
	})
}

// Cancel handles DELETE /expenses/requests requests.
func (c *ExpenseController) Cancel(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.cancelUseCase.Execute(ctx.Request.Context(), budget.CancelExpenseInput{Owner: owner})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CancelExpenseResponse{Cancelled: output.Cancelled})
}

// Delete handles DELETE /expenses/:id requests. Unknown ids answer 204.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteExpenseInput{
		Owner:     owner,
		ExpenseID: ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	if !output.Deleted {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetMutationResponse{
		Budget: dto.ToBudgetResponse(output.State),
		Events: dto.ToEventResponses(output.Events),
	})
}
