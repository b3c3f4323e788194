package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-deals/internal/domain"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileSvs ProfileServicer
}

func NewProfileHandler(profileSvs ProfileServicer) *ProfileHandler {
	return &ProfileHandler{
		profileSvs: profileSvs,
	}
}

type ProfileResponse struct {
	FirstName  string             `json:"first_name"`
	LastName   string             `json:"last_name"`
	Profession string             `json:"profession"`
	Type       domain.ProfileType `json:"type"`
	ID         int64              `json:"id"`
	Balance    float64            `json:"balance"`
}

// Show GET RouteGroup + ProfileRoute. Профиль текущего авторизованного пользователя.
func (h *ProfileHandler) Show(c *gin.Context) {
	currentProfileID := getProfileIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profile, err := h.profileSvs.Get(reqCtx, currentProfileID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		Profession: profile.Profession,
		Type:       profile.Type,
		ID:         profile.ID,
		Balance:    profile.Balance.InexactFloat64(),
	})
}
