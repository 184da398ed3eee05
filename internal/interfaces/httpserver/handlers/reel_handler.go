package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"samadhan-setu/services/reel-api/internal/config"
	domain "samadhan-setu/services/reel-api/internal/domain/reel"
	"samadhan-setu/services/reel-api/internal/interfaces/httpserver/responses"
)

// ReelHandler exposes the reel endpoints.
type ReelHandler struct {
	cfg     *config.Config
	service *domain.Service
	log     zerolog.Logger
}

func NewReelHandler(cfg *config.Config, service *domain.Service, log zerolog.Logger) *ReelHandler {
	return &ReelHandler{
		cfg:     cfg,
		service: service,
		log:     log.With().Str("component", "reel-handler").Logger(),
	}
}

// Upload godoc
// @Summary      Upload a reel
// @Description  Accepts a multipart form with title, description, by and a video file; publishes the video and returns its stable public URL.
// @Tags         reel
// @Accept       multipart/form-data
// @Produce      json
// @Param        title        formData  string  true  "Title"
// @Param        description  formData  string  true  "Description"
// @Param        by           formData  string  true  "Submitter"
// @Param        video        formData  file    true  "Video file"
// @Success      200  {object}  responses.UploadResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /api/reel [post]
func (h *ReelHandler) Upload(c *gin.Context) {
	form, err := domain.DecodeForm(c.Request, h.cfg.MaxUploadBytes)
	if err != nil {
		h.log.Warn().Err(err).Msg("multipart decode failed")
		responses.HandleError(c, err)
		return
	}

	rec, err := h.service.Publish(c.Request.Context(), form)
	if err != nil {
		h.log.Error().Err(err).Msg("publish failed")
		responses.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.BuildUploadResponse(rec))
}

// List godoc
// @Summary      List recent reels
// @Tags         reel
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of reels"
// @Success      200    {array}   responses.ReelResponse
// @Failure      500    {object}  responses.ErrorResponse
// @Router       /api/reel [get]
func (h *ReelHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	recs, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("list failed")
		responses.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.BuildReelListResponse(recs))
}

// Get godoc
// @Summary      Get one reel
// @Tags         reel
// @Produce      json
// @Param        id   path      string  true  "Reel ID"
// @Success      200  {object}  responses.ReelResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /api/reel/{id} [get]
func (h *ReelHandler) Get(c *gin.Context) {
	id := c.Param("id")

	rec, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("get failed")
		responses.HandleError(c, err)
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{Error: "Reel not found"})
		return
	}

	c.JSON(http.StatusOK, responses.BuildReelResponse(rec))
}
