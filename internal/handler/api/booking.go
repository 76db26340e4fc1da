package api

import (
	"context"
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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book an item for a period; the booking starts in WAITING
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID := middleware.GetSharerID(c)

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), commands.CreateBookingParams{
		ItemID: req.ItemID,
		Start:  req.Start,
		End:    req.End,
	}, userID)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Approve or reject booking
// @Description Decide a WAITING booking; only the item owner may decide
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param bookingId path int true "Booking ID"
// @Param approved query bool true "true approves, false rejects"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [patch]
func (h *BookingHandler) Approve(c *gin.Context) {
	userID := middleware.GetSharerID(c)

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid approved parameter", nil)
		return
	}

	view, err := h.cmds.Approve(c.Request.Context(), bookingID, approved, userID)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking visible to the booker or the item owner
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID := middleware.GetSharerID(c)

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), bookingID, userID)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List the acting user's bookings filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"
// @Param from query int false "Offset"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	h.list(c, h.q.ListByBooker)
}

// @Summary List bookings of own items
// @Description List bookings of the acting user's items filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"
// @Param from query int false "Offset"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	h.list(c, h.q.ListByOwner)
}

func (h *BookingHandler) list(
	c *gin.Context,
	fn func(ctx context.Context, userID int64, state queries.State, page queries.Page) ([]*queries.BookingView, error),
) {
	userID := middleware.GetSharerID(c)

	state, err := parseStateQuery(c)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	page, err := parsePageQuery(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters", nil)
		return
	}

	views, err := fn(c.Request.Context(), userID, state, page)
	if err != nil {
		abortDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func parseStateQuery(c *gin.Context) (queries.State, error) {
	var raw *string
	if s, ok := c.GetQuery("state"); ok {
		raw = &s
	}
	return queries.ParseState(raw)
}

func parsePageQuery(c *gin.Context) (queries.Page, error) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		return queries.Page{}, err
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		return queries.Page{}, err
	}
	return queries.NewPage(from, size), nil
}
