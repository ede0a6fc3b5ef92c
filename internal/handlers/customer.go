package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/blossom/internal/models"
	"github.com/example/blossom/internal/utils"
)

// CustomerHandler manages delivery details keyed by email.
type CustomerHandler struct {
	db *gorm.DB
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

type customerInfoRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Dob      string `json:"dob" validate:"required"`
}

// UpdateCustomerInfo upserts the customer record for the given email.
func (h *CustomerHandler) UpdateCustomerInfo(c *fiber.Ctx) error {
	var req customerInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "All fields are required.",
		})
	}

	dob, err := parseDate(req.Dob)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid date of birth")
	}

	var info models.CustomerInfo
	err = h.db.Where("email = ?", req.Email).First(&info).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}

	info.FullName = req.FullName
	info.Email = req.Email
	info.Phone = req.Phone
	info.Address = req.Address
	info.Dob = dob

	if err := h.db.Save(&info).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Information updated successfully!",
	})
}

// GetCustomerInfo looks up the customer record by email.
func (h *CustomerHandler) GetCustomerInfo(c *fiber.Ctx) error {
	email := c.Params("email")

	var info models.CustomerInfo
	if err := h.db.Where("email = ?", email).First(&info).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Customer not found",
			})
		}
		return err
	}

	return c.JSON(info)
}

func parseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}
