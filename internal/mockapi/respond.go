package mockapi

import (
	"errors"
	"net/http"
	"strconv"

	"motor_seeder/internal/repository"

	"github.com/gin-gonic/gin"
)

// pageResponse is the paginated list envelope.
type pageResponse struct {
	Items      any `json:"items"`
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError maps domain and storage errors onto status codes.
func (h *Handler) respondError(c *gin.Context, logKey string, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrNoBaseline):
		code = http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicate):
		code = http.StatusConflict
	}

	if code == http.StatusInternalServerError {
		h.log.Errorw(logKey, "err", err, "request_id", c.GetString(ctxRequestID))
		c.JSON(code, gin.H{"error": "internal error"})
		return
	}
	h.log.Infow(logKey, "err", err, "status", code)
	c.JSON(code, gin.H{"error": err.Error()})
}

// pageFromQuery reads pageNumber and pageSize; junk values fall back to defaults.
func pageFromQuery(c *gin.Context) repository.Page {
	number, _ := strconv.Atoi(c.Query("pageNumber"))
	size, _ := strconv.Atoi(c.Query("pageSize"))
	return repository.Page{Number: number, Size: size}.Normalize()
}

func respondPage(c *gin.Context, items any, total int, p repository.Page) {
	c.JSON(http.StatusOK, pageResponse{
		Items:      items,
		TotalCount: total,
		PageNumber: p.Number,
		PageSize:   p.Size,
	})
}
