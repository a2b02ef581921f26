package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page é a resposta paginada usada pelas listagens administrativas.
type Page[T any] struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Paged[T any](c *gin.Context, page, limit int, total int64, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, Page[T]{
		Page:  page,
		Limit: limit,
		Total: total,
		Data:  data,
	})
}
