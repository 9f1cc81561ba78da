package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/six-jars/backend/internal/application/usecase/savings"
	domainerror "github.com/six-jars/backend/internal/domain/error"
	"github.com/six-jars/backend/internal/integration/entrypoint/dto"
)

// SavingsController handles savings goal endpoints.
type SavingsController struct {
	createUseCase  *savings.CreateGoalUseCase
	depositUseCase *savings.DepositUseCase
	deleteUseCase  *savings.DeleteGoalUseCase
}

// NewSavingsController creates a new savings controller instance.
func NewSavingsController(
	createUseCase *savings.CreateGoalUseCase,
	depositUseCase *savings.DepositUseCase,
	deleteUseCase *savings.DeleteGoalUseCase,
) *SavingsController {
	return &SavingsController{
		createUseCase:  createUseCase,
		depositUseCase: depositUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// Create handles POST /goals requests.
func (c *SavingsController) Create(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingSavingsFields)) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), savings.CreateGoalInput{
		Owner:        owner,
		Name:         req.Name,
		Icon:         req.Icon,
		TargetAmount: req.TargetAmount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateGoalResponse{
		Goal:          dto.ToGoalResponse(output.Goal),
		IconSuggested: output.IconSuggested,
		Budget:        dto.ToBudgetResponse(output.State),
		Events:        dto.ToEventResponses(output.Events),
	})
}

// Deposit handles POST /goals/:id/deposits requests.
func (c *SavingsController) Deposit(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingSavingsFields)) {
		return
	}

	output, err := c.depositUseCase.Execute(ctx.Request.Context(), savings.DepositInput{
		Owner:  owner,
		GoalID: ctx.Param("id"),
		Amount: req.Amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	resp := dto.DepositResponse{
		Goal:   dto.ToGoalResponse(output.Goal),
		Budget: dto.ToBudgetResponse(output.State),
		Events: dto.ToEventResponses(output.Events),
	}
	if output.UnlockedPet != nil {
		pet := dto.ToPetResponse(*output.UnlockedPet)
		resp.UnlockedPet = &pet
	}

	ctx.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /goals/:id requests. Unknown ids answer 204.
func (c *SavingsController) Delete(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), savings.DeleteGoalInput{
		Owner:  owner,
		GoalID: ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	if !output.Deleted {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteGoalResponse{
		Deleted:  true,
		Refunded: output.Refunded,
		Budget:   dto.ToBudgetResponse(output.State),
		Events:   dto.ToEventResponses(output.Events),
	})
}
