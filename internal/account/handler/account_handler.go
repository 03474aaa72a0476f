package handler

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/AnthoniusHendriyanto/account-service/internal/account/dto"
	"github.com/AnthoniusHendriyanto/account-service/internal/account/service"
	apperrors "github.com/AnthoniusHendriyanto/account-service/internal/errors"
	"github.com/AnthoniusHendriyanto/account-service/internal/validation"
)

type AccountHandler struct {
	userService *service.UserService
	validator   *validation.Validator
	uploadDir   string
}

func NewAccountHandler(userService *service.UserService, validator *validation.Validator, uploadDir string) *AccountHandler {
	return &AccountHandler{
		userService: userService,
		validator:   validator,
		uploadDir:   uploadDir,
	}
}

// Signup handles the multipart registration form. The user record keeps the
// upload's original filename; the bytes land under uploadDir with a generated
// name so uploads cannot collide. The file is saved before the record is
// created: a failed save aborts with no account inserted.
func (h *AccountHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return &apperrors.ValidationError{Messages: []string{"invalid request body"}}
	}

	if err := h.validator.Struct(input); err != nil {
		return err
	}

	image, err := c.FormFile("image")
	if err != nil {
		return &apperrors.ValidationError{Messages: []string{"image file is required"}}
	}

	storedName := uuid.NewString() + filepath.Ext(image.Filename)
	if err := c.SaveFile(image, filepath.Join(h.uploadDir, storedName)); err != nil {
		return fmt.Errorf("save profile image: %w", err)
	}

	resp, err := h.userService.Signup(c.Context(), input, image.Filename)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return &apperrors.ValidationError{Messages: []string{"invalid request body"}}
	}

	if err := h.validator.Struct(input); err != nil {
		return err
	}

	tokens, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AccountHandler) Withdraw(c *fiber.Ctx) error {
	email, ok := IdentityEmail(c)
	if !ok {
		// Only reachable when the route is registered without the guard.
		return fiber.NewError(fiber.StatusUnauthorized, "identity not resolved")
	}

	if err := h.userService.Withdraw(c.Context(), email); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
