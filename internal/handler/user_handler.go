package handler

import (
	"github.com/labstack/echo/v4"

	"tuniskill/internal/model"
	"tuniskill/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService service.UserService
	clock       clock
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// InstructorDTO is the public profile of an instructor.
type InstructorDTO struct {
	ID          uint           `json:"id"`
	FullName    string         `json:"fullName"`
	Avatar      *string        `json:"avatar"`
	Bio         *string        `json:"bio"`
	Country     *string        `json:"country"`
	City        *string        `json:"city"`
	SocialLinks map[string]any `json:"socialLinks"`
}

func toInstructorDTO(u *model.User) InstructorDTO {
	return InstructorDTO{
		ID:          u.ID,
		FullName:    u.FullName(),
		Avatar:      u.Avatar,
		Bio:         u.Bio,
		Country:     u.Country,
		City:        u.City,
		SocialLinks: u.SocialLinks,
	}
}

// Stats godoc
// @Summary User statistics
// @Tags users
// @Produce json
// @Success 200 {object} ItemResponse{data=model.UserStats}
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/stats [get]
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.userService.Stats(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return item(c, h.clock.now(), stats)
}

// Instructors godoc
// @Summary Active instructors
// @Tags users
// @Produce json
// @Success 200 {object} ListResponse{data=[]InstructorDTO}
// @Failure 500 {object} errors.ErrorResponse
// @Router /instructors [get]
func (h *UserHandler) Instructors(c echo.Context) error {
	users, err := h.userService.Instructors(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	out := make([]InstructorDTO, 0, len(users))
	for i := range users {
		out = append(out, toInstructorDTO(&users[i]))
	}
	return list(c, h.clock.now(), out, len(out))
}
