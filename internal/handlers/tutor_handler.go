package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/tutor-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/tutor-scheduler/internal/middleware"
	"github.com/BruksfildServices01/tutor-scheduler/internal/models"
	"github.com/BruksfildServices01/tutor-scheduler/internal/storage"
)

const avatarMaxUploadBytes = 5 << 20

type TutorHandler struct {
	db      *gorm.DB
	avatars *storage.AvatarStorage
}

func NewTutorHandler(db *gorm.DB, avatars *storage.AvatarStorage) *TutorHandler {
	return &TutorHandler{db: db, avatars: avatars}
}

type TutorListItem struct {
	UserID     uint    `json:"user_id"`
	Name       string  `json:"name"`
	Bio        string  `json:"bio"`
	Subjects   string  `json:"subjects"`
	HourlyRate float64 `json:"hourly_rate"`
	AvatarURL  string  `json:"avatar_url"`
}

type UpdateTutorProfileRequest struct {
	Bio        *string  `json:"bio"`
	Subjects   *string  `json:"subjects"`
	HourlyRate *float64 `json:"hourly_rate"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *TutorHandler) List(c *gin.Context) {
	var profiles []models.TutorProfile
	if err := h.db.Preload("User").
		Where("active = true").
		Order("id ASC").
		Find(&profiles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_tutors", "Erro ao listar tutores.")
		return
	}

	items := make([]TutorListItem, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, TutorListItem{
			UserID:     p.UserID,
			Name:       p.User.Name,
			Bio:        p.Bio,
			Subjects:   p.Subjects,
			HourlyRate: p.HourlyRate,
			AvatarURL:  p.AvatarURL,
		})
	}

	httpresp.List(c, items)
}

// ======================================================
// ME (tutor)
// ======================================================

func (h *TutorHandler) UpdateMeProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var profile models.TutorProfile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Perfil de tutor não encontrado.")
		return
	}

	var req UpdateTutorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Subjects != nil {
		profile.Subjects = *req.Subjects
	}
	if req.HourlyRate != nil {
		// Preço novo só vale para reservas futuras; as antigas têm snapshot
		if *req.HourlyRate <= 0 {
			httperr.BadRequest(c, "invalid_hourly_rate", "Valor hora deve ser positivo.")
			return
		}
		profile.HourlyRate = *req.HourlyRate
	}

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Erro ao salvar o perfil.")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *TutorHandler) UploadAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var profile models.TutorProfile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Perfil de tutor não encontrado.")
		return
	}

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar", "Envie o arquivo no campo 'avatar'.")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, avatarMaxUploadBytes))
	if err != nil {
		httperr.BadRequest(c, "invalid_avatar", "Não foi possível ler o arquivo.")
		return
	}

	url, err := h.avatars.Upload(c.Request.Context(), profile.UserID, raw)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_avatar", "Erro ao enviar a imagem.")
		return
	}

	profile.AvatarURL = url
	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Erro ao salvar o perfil.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
