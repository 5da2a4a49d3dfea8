package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Drolfothesgnir/tagmark/markup"
)

type TextRequest struct {
	Input string `json:"input" binding:"required"`
}

type TextResponse struct {
	Output string `json:"output"`
}

func (s *Service) escape(ctx *gin.Context) {
	var req TextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, TextResponse{Output: markup.Escape(req.Input)})
}

func (s *Service) strip(ctx *gin.Context) {
	var req TextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, TextResponse{Output: markup.Strip(req.Input)})
}
