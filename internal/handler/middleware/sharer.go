package middleware

import (
	"net/http"
	"strconv"

	"lendit/internal/handler/httperr"
	"lendit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// SharerHeader identifies the acting user on every authenticated route.
const SharerHeader = "X-Sharer-User-Id"

const sharerContextKey = "sharer_user_id"

var errMissingSharer = errs.New("sharer header missing or malformed")

// RequireSharer rejects requests without a parseable user id header.
// Whether that user exists is checked by the use cases, which return
// not-found for unknown ids.
func RequireSharer() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		id, err := strconv.ParseInt(raw, 10, 64)
		if raw == "" || err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharer,
				"X-Sharer-User-Id header is required", nil)
			return
		}

		c.Set(sharerContextKey, id)
		c.Next()
	}
}

func GetSharerID(c *gin.Context) int64 {
	if v, ok := c.Get(sharerContextKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
