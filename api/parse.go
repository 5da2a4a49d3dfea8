package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Drolfothesgnir/tagmark/markup"
)

type ParseRequest struct {
	Input        string            `json:"input" binding:"required"`
	Placeholders map[string]string `json:"placeholders"`
	Strict       bool              `json:"strict"`
}

func (s *Service) parse(ctx *gin.Context) {
	var req ParseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	result, err := s.interpreter(req.Strict).ParseMap(req.Input, req.Placeholders)
	if err != nil {
		// grammar violations in strict mode are the client's fault
		var parseErr *markup.ParseError
		if errors.As(err, &parseErr) {
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}
