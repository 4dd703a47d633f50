package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/artisora/artisan-BE/internal/geo"
	"github.com/gin-gonic/gin"
)

// parseCoordinate reads a latitude/longitude pair from query parameters and
// validates the ranges.
func parseCoordinate(ctx *gin.Context, latKey, lngKey string) (geo.Coordinate, error) {
	lat, err := strconv.ParseFloat(ctx.Query(latKey), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("invalid %s: %w", latKey, ErrInvalidLatitude)
	}

	lng, err := strconv.ParseFloat(ctx.Query(lngKey), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("invalid %s: %w", lngKey, ErrInvalidLongitude)
	}

	coordinate := geo.Coordinate{Latitude: lat, Longitude: lng}
	if err = coordinate.Validate(); err != nil {
		return geo.Coordinate{}, err
	}

	return coordinate, nil
}

func (server *Server) getDeliveryQuote(ctx *gin.Context) {
	origin, err := parseCoordinate(ctx, "origin_lat", "origin_lng")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	destination, err := parseCoordinate(ctx, "dest_lat", "dest_lng")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	quote := server.deliveryResolver.QuoteDelivery(ctx, origin, destination)

	ctx.JSON(http.StatusOK, quote)
}

func (server *Server) getDeliveryRoute(ctx *gin.Context) {
	origin, err := parseCoordinate(ctx, "origin_lat", "origin_lng")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	destination, err := parseCoordinate(ctx, "dest_lat", "dest_lng")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result := server.deliveryResolver.ResolveRoute(ctx, origin, destination)

	ctx.JSON(http.StatusOK, result)
}

func (server *Server) reverseGeocode(ctx *gin.Context) {
	coordinate, err := parseCoordinate(ctx, "lat", "lng")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	displayName := server.geocoder.DisplayName(ctx, coordinate)

	ctx.JSON(http.StatusOK, gin.H{"display_name": displayName})
}
