package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/six-jars/backend/internal/application/usecase/advisor"
	domainerror "github.com/six-jars/backend/internal/domain/error"
	"github.com/six-jars/backend/internal/integration/entrypoint/dto"
)

// AdvisorController handles the AI advisor endpoints.
type AdvisorController struct {
	classifyUseCase *advisor.ClassifyExpenseUseCase
	adviceUseCase   *advisor.GetAdviceUseCase
}

// NewAdvisorController creates a new advisor controller instance.
func NewAdvisorController(
	classifyUseCase *advisor.ClassifyExpenseUseCase,
	adviceUseCase *advisor.GetAdviceUseCase,
) *AdvisorController {
	return &AdvisorController{
		classifyUseCase: classifyUseCase,
		adviceUseCase:   adviceUseCase,
	}
}

// Classify handles POST /advisor/classify requests.
// A failed suggestion still answers 200 with the default category and jar.
func (c *AdvisorController) Classify(ctx *gin.Context) {
	var req dto.ClassifyRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingAdvisorFields)) {
		return
	}

	output, err := c.classifyUseCase.Execute(ctx.Request.Context(), advisor.ClassifyExpenseInput{Name: req.Name})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ClassifyResponse{
		Category: string(output.Category),
		Jar:      string(output.Jar),
		Fallback: output.Fallback,
	})
}

// Advice handles GET /advisor/advice requests.
func (c *AdvisorController) Advice(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.adviceUseCase.Execute(ctx.Request.Context(), advisor.GetAdviceInput{Owner: owner})
	if err != nil {
		handleError(ctx, err)
		return
	}

	resp := dto.AdviceResponse{
		Advice:        output.Advice,
		NotEnoughData: output.NotEnoughData,
	}
	if output.Unavailable != nil {
		resp.Unavailable = true
		resp.Code = string(output.Unavailable.Code)
	}

	ctx.JSON(http.StatusOK, resp)
}
