package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uzafar/campusdesk/internal/app/models/dto"
)

// respondBindError reports a request-body binding failure
func respondBindError(ctx *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data").
		WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
