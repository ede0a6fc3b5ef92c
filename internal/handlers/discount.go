package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/blossom/internal/models"
)

// DiscountHandler manages promotion codes.
type DiscountHandler struct {
	db *gorm.DB
}

// NewDiscountHandler constructs DiscountHandler.
func NewDiscountHandler(db *gorm.DB) *DiscountHandler {
	return &DiscountHandler{db: db}
}

// UploadDiscount creates a discount after checking every field is present.
func (h *DiscountHandler) UploadDiscount(c *fiber.Ctx) error {
	var discount models.Discount
	if err := c.BodyParser(&discount); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if discount.Code == "" || discount.Type == "" || discount.Value == 0 ||
		discount.StartDate.IsZero() || discount.EndDate.IsZero() ||
		discount.TimeFrame.Start == "" || discount.TimeFrame.End == "" ||
		discount.MinimumOrderValue == 0 || discount.MinimumItems == 0 ||
		len(discount.ApplicableCategories) == 0 || discount.UsageLimit == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
		})
	}

	if err := h.db.Create(&discount).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Discount added successfully!",
	})
}

// ListDiscounts returns all discounts.
func (h *DiscountHandler) ListDiscounts(c *fiber.Ctx) error {
	var discounts []models.Discount
	if err := h.db.Find(&discounts).Error; err != nil {
		return err
	}

	return c.JSON(discounts)
}
