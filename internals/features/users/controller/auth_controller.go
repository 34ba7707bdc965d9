package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ftms_backend/internals/configs"
	userDTO "ftms_backend/internals/features/users/dto"
	userModel "ftms_backend/internals/features/users/model"
	helper "ftms_backend/internals/helpers"
)

const tokenTTL = 12 * time.Hour

type Handler struct {
	DB *gorm.DB
}

// POST /auth/login
func (h *Handler) Login(c *fiber.Ctx) error {
	var in userDTO.LoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if err := userDTO.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.User
	err := h.DB.Where("user_email = ? AND user_is_active = TRUE", in.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(in.Password)) != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid credentials")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.UserID.String(),
		"role": user.UserRole,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "token signing failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  now.Add(tokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "login ok", fiber.Map{
		"access_token": token,
		"user": fiber.Map{
			"user_id":   user.UserID,
			"user_name": user.UserName,
			"user_role": user.UserRole,
		},
	})
}

// GET /auth/me
func (h *Handler) Me(c *fiber.Ctx) error {
	userID, ok := helper.UserIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "missing actor")
	}

	var user userModel.User
	if err := h.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "me", user)
}
