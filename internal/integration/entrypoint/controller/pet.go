package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/six-jars/backend/internal/application/usecase/pet"
	domainerror "github.com/six-jars/backend/internal/domain/error"
	"github.com/six-jars/backend/internal/integration/entrypoint/dto"
)

// PetController handles the pet collection endpoints.
type PetController struct {
	activeUseCase     *pet.GetActivePetUseCase
	collectionUseCase *pet.ListCollectionUseCase
	selectUseCase     *pet.SelectPetUseCase
}

// NewPetController creates a new pet controller instance.
func NewPetController(
	activeUseCase *pet.GetActivePetUseCase,
	collectionUseCase *pet.ListCollectionUseCase,
	selectUseCase *pet.SelectPetUseCase,
) *PetController {
	return &PetController{
		activeUseCase:     activeUseCase,
		collectionUseCase: collectionUseCase,
		selectUseCase:     selectUseCase,
	}
}

// Active handles GET /pets/active requests.
func (c *PetController) Active(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.activeUseCase.Execute(ctx.Request.Context(), pet.GetActivePetInput{Owner: owner})
	if err != nil {
		handleError(ctx, err)
		return
	}

	var resp dto.ActivePetResponse
	if output.Tier != nil {
		tier := dto.ToPetTierResponse(*output.Tier)
		resp.ActivePet = &tier
	}

	ctx.JSON(http.StatusOK, resp)
}

// Collection handles GET /pets/collection requests.
func (c *PetController) Collection(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	output, err := c.collectionUseCase.Execute(ctx.Request.Context(), pet.ListCollectionInput{Owner: owner})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCollectionResponse(output.Entries, output.Collected, output.TotalSavings))
}

// Select handles PUT /pets/active requests.
func (c *PetController) Select(ctx *gin.Context) {
	owner, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req dto.SelectPetRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingPetID)) {
		return
	}

	output, err := c.selectUseCase.Execute(ctx.Request.Context(), pet.SelectPetInput{
		Owner: owner,
		PetID: req.PetID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SelectPetResponse{
		ActivePet: dto.ToPetTierResponse(output.Tier),
		Events:    dto.ToEventResponses(output.Events),
	})
}
