package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stockward/internal/application/item/usecases"
	reportusecases "stockward/internal/application/report/usecases"
	"stockward/internal/domain/item"
	"stockward/internal/interfaces/http/middleware"
	"stockward/internal/shared/constants"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
	"stockward/internal/shared/utils"
)

// ItemHandler handles HTTP requests for inventory item operations
type ItemHandler struct {
	createItemUC     CreateItemExecutor
	getItemUC        GetItemExecutor
	listItemsUC      ListItemsExecutor
	updateItemUC     UpdateItemExecutor
	updateQuantityUC UpdateQuantityExecutor
	deleteItemUC     DeleteItemExecutor
	bulkUpdateUC     BulkUpdateQuantityExecutor
	itemTrendsUC     ItemTrendsExecutor
	maxUploadBytes   int64
	logger           logger.Interface
}

// NewItemHandler creates a new item handler
func NewItemHandler(
	createItemUC CreateItemExecutor,
	getItemUC GetItemExecutor,
	listItemsUC ListItemsExecutor,
	updateItemUC UpdateItemExecutor,
	updateQuantityUC UpdateQuantityExecutor,
	deleteItemUC DeleteItemExecutor,
	bulkUpdateUC BulkUpdateQuantityExecutor,
	itemTrendsUC ItemTrendsExecutor,
	maxUploadBytes int64,
	log logger.Interface,
) *ItemHandler {
	return &ItemHandler{
		createItemUC:     createItemUC,
		getItemUC:        getItemUC,
		listItemsUC:      listItemsUC,
		updateItemUC:     updateItemUC,
		updateQuantityUC: updateQuantityUC,
		deleteItemUC:     deleteItemUC,
		bulkUpdateUC:     bulkUpdateUC,
		itemTrendsUC:     itemTrendsUC,
		maxUploadBytes:   maxUploadBytes,
		logger:           log,
	}
}

type CreateItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"gte=0"`
	Price    float64 `json:"price" validate:"gte=0"`
	Category string  `json:"category"`
}

type UpdateItemRequest struct {
	Name     *string  `json:"name"`
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// CreateItem handles POST /items
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create item", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createItemUC.Execute(c.Request.Context(), usecases.CreateItemCommand{
		ActorID:  middleware.PrincipalID(c),
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Item created successfully")
}

// ListItems handles GET /items
func (h *ItemHandler) ListItems(c *gin.Context) {
	items, err := h.listItemsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// GetItem handles GET /items/:id
func (h *ItemHandler) GetItem(c *gin.Context) {
	itemID, err := ParseItemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getItemUC.Execute(c.Request.Context(), usecases.GetItemQuery{ItemID: itemID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateItem handles PUT /items/:id
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	itemID, err := ParseItemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update item", "item_id", itemID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.updateItemUC.Execute(c.Request.Context(), usecases.UpdateItemCommand{
		ActorID: middleware.PrincipalID(c),
		ItemID:  itemID,
		Fields: item.UpdateFields{
			Name:     req.Name,
			Quantity: req.Quantity,
			Price:    req.Price,
			Category: req.Category,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Item updated successfully", result)
}

// UpdateQuantity handles PATCH /items/:id/quantity
func (h *ItemHandler) UpdateQuantity(c *gin.Context) {
	itemID, err := ParseItemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}
	if req.Quantity == nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("quantity is required"))
		return
	}

	result, err := h.updateQuantityUC.Execute(c.Request.Context(), usecases.UpdateQuantityCommand{
		ActorID:  middleware.PrincipalID(c),
		ItemID:   itemID,
		Quantity: *req.Quantity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Quantity updated successfully", result)
}

// DeleteItem handles DELETE /items/:id
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	itemID, err := ParseItemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteItemUC.Execute(c.Request.Context(), usecases.DeleteItemCommand{
		ActorID: middleware.PrincipalID(c),
		ItemID:  itemID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Item deleted successfully", nil)
}

// BulkUpdateQuantity handles POST /items/bulk-update-quantity
func (h *ItemHandler) BulkUpdateQuantity(c *gin.Context) {
	fileHeader, err := c.FormFile(constants.BulkUploadFileField)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("csv file is required"))
		return
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		utils.ErrorResponseWithError(c, errors.NewValidationError("csv file is too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("csv file is unreadable"))
		return
	}
	defer file.Close()

	result, err := h.bulkUpdateUC.Execute(c.Request.Context(), usecases.BulkUpdateQuantityCommand{
		ActorID: middleware.PrincipalID(c),
		Reader:  file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bulk update processed", result)
}

// GetItemTrends handles GET /items/:id/trends
func (h *ItemHandler) GetItemTrends(c *gin.Context) {
	itemID, err := ParseItemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.itemTrendsUC.Execute(c.Request.Context(), reportusecases.ItemTrendsQuery{ItemID: itemID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ParseItemID parses the :id path parameter as an item id.
func ParseItemID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid item id")
	}
	return uint(id), nil
}
