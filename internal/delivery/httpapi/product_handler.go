package httpapi

import (
	"errors"
	"net/http"

	"github.com/campuskart/campus-market-service/internal/domain"
	"github.com/campuskart/campus-market-service/internal/usecase"
	productdto "github.com/campuskart/campus-market-service/internal/usecase/dto/product"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
}

func NewProductHandler(productUsecase usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

type addProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required"`
}

func (h *ProductHandler) AddProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	product, err := h.productUsecase.AddProduct(c.Request.Context(), &productdto.AddProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		SellerID:    CallerID(c),
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to add product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "product": toProductView(product)})
}

type listProductsRequest struct {
	Seller     string   `json:"seller"`
	Categories []string `json:"categories"`
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	var req listProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	products, err := h.productUsecase.ListProducts(c.Request.Context(), &productdto.ListProductsInput{
		SellerID:   req.Seller,
		Categories: req.Categories,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch products"})
		return
	}

	views := make([]*productView, len(products))
	for i, product := range products {
		views[i] = toProductView(product)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": views})
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	product, err := h.productUsecase.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": toProductView(product)})
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	err := h.productUsecase.DeleteProduct(c.Request.Context(), c.Param("id"), CallerID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "product not found"})
		case errors.Is(err, domain.ErrNotProductSeller):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "not the product seller"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to delete product"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
