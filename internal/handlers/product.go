package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/blossom/internal/models"
	"github.com/example/blossom/internal/utils"
)

// ProductHandler manages the product catalog.
type ProductHandler struct {
	db *gorm.DB
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// UploadProduct creates a catalog entry.
func (h *ProductHandler) UploadProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.db.Create(&product).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Product uploaded successfully",
	})
}

// ListProducts returns the catalog.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var products []models.Product
	if err := h.db.Limit(pg.Limit).Offset(pg.Offset).Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(products)
}

// SearchProducts finds products whose name contains the search term,
// case-insensitively.
func (h *ProductHandler) SearchProducts(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Search term is required",
		})
	}

	var products []models.Product
	if err := h.db.
		Where("lower(name) LIKE lower(?)", "%"+name+"%").
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(products)
}
