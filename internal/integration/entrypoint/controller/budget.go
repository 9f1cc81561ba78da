package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/six-jars/backend/internal/application/usecase/budget"
	domainerror "github.com/six-jars/backend/internal/domain/error"
	"github.com/six-jars/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles the budget overview and income allocation.
type BudgetController struct {
	getBudgetUseCase    *budget.GetBudgetUseCase
	setIncomeUseCase    *budget.SetIncomeUseCase
	getBreakdownUseCase *budget.GetBreakdownUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	getBudgetUseCase *budget.GetBudgetUseCase,
	setIncomeUseCase *budget.SetIncomeUseCase,
	getBreakdownUseCase *budget.GetBreakdownUseCase,
) *BudgetController {
	return &BudgetController{
		getBudgetUseCase:    getBudgetUseCase,
		setIncomeUseCase:    setIncomeUseCase,
		getBreakdownUseCase: getBreakdownUseCase,
	}
}

// Get handles GET /budget requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.getBudgetUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{Owner: owner})
	if err != nil {
		handleError(ctx, err)
		return
	}

	resp := dto.ToBudgetResponse(output.State)
	if output.ActivePet != nil {
		tier := dto.ToPetTierResponse(*output.ActivePet)
		resp.ActivePet = &tier
	}
	if output.Pending != nil {
		draft := dto.ToExpenseDraftResponse(*output.Pending)
		resp.Pending = &draft
	}

	ctx.JSON(http.StatusOK, resp)
}

// SetIncome handles PUT /budget/income requests.
func (c *BudgetController) SetIncome(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.SetIncomeRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingBudgetFields)) {
		return
	}

	output, err := c.setIncomeUseCase.Execute(ctx.Request.Context(), budget.SetIncomeInput{
		Owner:  owner,
		Income: *req.Income,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetMutationResponse{
		Budget: dto.ToBudgetResponse(output.State),
		Events: dto.ToEventResponses(output.Events),
	})
}

// Breakdown handles GET /budget/breakdown requests.
func (c *BudgetController) Breakdown(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	breakdown, err := c.getBreakdownUseCase.Execute(ctx.Request.Context(), budget.GetBreakdownInput{Owner: owner})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(*breakdown))
}
