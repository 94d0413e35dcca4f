package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/dto"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func Page[T any](c *gin.Context, page dto.Page[T]) {
	c.JSON(http.StatusOK, page)
}
