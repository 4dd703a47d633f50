package api

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	ErrInternalServer   = errors.New("internal server error")
	ErrInvalidLatitude  = errors.New("latitude must be a number between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be a number between -180 and 180")
)

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
