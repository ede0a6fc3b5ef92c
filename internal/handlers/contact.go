package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/blossom/internal/models"
	"github.com/example/blossom/internal/utils"
)

// ContactHandler manages contact-form submissions.
type ContactHandler struct {
	db *gorm.DB
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// SubmitContact stores a contact-form submission.
func (h *ContactHandler) SubmitContact(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "All fields are required.",
		})
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.db.Create(&contact).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Form submitted successfully!",
	})
}

// ListContacts returns submissions, newest first.
func (h *ContactHandler) ListContacts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var contacts []models.Contact
	if err := h.db.
		Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&contacts).Error; err != nil {
		return err
	}

	return c.JSON(contacts)
}
