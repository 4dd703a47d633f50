package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	db "github.com/artisora/artisan-BE/internal/db/sqlc"
	"github.com/artisora/artisan-BE/internal/token"
	"github.com/artisora/artisan-BE/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type createProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   *string `json:"description"`
	Price         int64   `json:"price" binding:"required,min=1"`
	StockQuantity int64   `json:"stock_quantity" binding:"min=0"`
}

func (server *Server) createProduct(ctx *gin.Context) {
	req := new(createProductRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Error().Err(err).Msg("failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	sellerID := ctx.MustGet(authorizationPayloadKey).(*token.Payload).Subject

	product, err := server.dbStore.CreateProduct(ctx, db.CreateProductParams{
		SellerID:      sellerID,
		Name:          req.Name,
		Slug:          util.GenerateRandomSlug(req.Name),
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create product")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func (server *Server) listProducts(ctx *gin.Context) {
	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit <= 0 || limit > 100 {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("limit must be between 1 and 100")))
		return
	}

	offset, err := strconv.ParseInt(ctx.DefaultQuery("offset", "0"), 10, 64)
	if err != nil || offset < 0 {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("offset must be a non-negative number")))
		return
	}

	products, err := server.dbStore.ListProducts(ctx, db.ListProductsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list products")
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, products)
}

func (server *Server) getProductBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	product, err := server.dbStore.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("product %q not found", slug)))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, product)
}
