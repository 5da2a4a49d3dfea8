package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Drolfothesgnir/tagmark/markup"
	"github.com/Drolfothesgnir/tagmark/render"
)

type RenderRequest struct {
	Input        string            `json:"input" binding:"required"`
	Placeholders map[string]string `json:"placeholders"`
	Strict       bool              `json:"strict"`
}

type RenderResponse struct {
	Output      string              `json:"output"`
	Diagnostics []markup.Diagnostic `json:"diagnostics,omitempty"`
}

func (s *Service) render(ctx *gin.Context) {
	var req RenderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
		return
	}

	result, err := s.interpreter(req.Strict).ParseMap(req.Input, req.Placeholders)
	if err != nil {
		var parseErr *markup.ParseError
		if errors.As(err, &parseErr) {
			ctx.JSON(http.StatusBadRequest, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, RenderResponse{
		Output:      render.ANSI(result.Node),
		Diagnostics: result.Diagnostics,
	})
}
