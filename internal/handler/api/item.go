package api

import (
	"net/http"
	"strconv"

	reqdto "lendit/internal/handler/dto/request"
	resdto "lendit/internal/handler/dto/response"
	"lendit/internal/handler/httperr"
	"lendit/internal/handler/middleware"
	"lendit/internal/usecase/commands"
	"lendit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	cmds     commands.ItemCommands
	comments commands.CommentCommands
	q        queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, comments commands.CommentCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, comments: comments, q: q}
}

// @Summary Create item
// @Description Register an item owned by the acting user
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param request body reqdto.CreateItemRequest true "Item request"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID := middleware.GetSharerID(c)

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), commands.CreateItemParams{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
	}, ownerID)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Update item
// @Description Patch an owned item; absent fields keep current values
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Item patch"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	userID := middleware.GetSharerID(c)

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}

	var req reqdto.UpdateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), itemID, commands.UpdateItemParams{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	}, userID)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Get item
// @Description Get an item; booking history is attached for the owner
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param itemId path int true "Item ID"
// @Success 200 {object} resdto.ItemDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	viewerID := middleware.GetSharerID(c)

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), itemID, viewerID)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemDetailView(view))
}

// @Summary List own items
// @Description List the acting user's items with booking history
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Success 200 {array} resdto.ItemDetailResponse
// @Router /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	ownerID := middleware.GetSharerID(c)

	views, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemDetailViews(views))
}

// @Summary Search items
// @Description Find available items matching the text; blank text yields an empty list
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param text query string true "Search text"
// @Success 200 {array} resdto.ItemResponse
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	viewerID := middleware.GetSharerID(c)

	views, err := h.q.Search(c.Request.Context(), c.Query("text"), viewerID)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Add comment
// @Description Leave a comment after a finished approved booking of the item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param itemId path int true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment request"
// @Success 200 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	authorID := middleware.GetSharerID(c)

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}

	var req reqdto.CreateCommentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.comments.Create(c.Request.Context(), itemID, req.Text, authorID)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCommentView(view))
}
