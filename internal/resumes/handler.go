package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-scorer/internal/resume"
	"resume-scorer/internal/shared/server/middleware"
	"resume-scorer/internal/shared/server/respond"
)

const maxBodySize = 1 << 20 // 1MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume draft routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/sample", h.sample)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.delete)
}

// RegisterScoreRoutes attaches the draft scoring route. It is split out so the
// router can put it behind the scoring rate limit group.
func (h *Handler) RegisterScoreRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/score", h.score)
}

func (h *Handler) create(c *gin.Context) {
	title, data, ok := bindDraft(c)
	if !ok {
		return
	}

	d, err := h.Svc.Create(c.Request.Context(), middleware.GuestIDFromContext(c), title, data)
	if err != nil {
		writeError(c, err, "failed to save resume")
		return
	}
	c.Set(middleware.ResumeIDKey, d.ID)
	respond.Created(c, toResponse(d))
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	drafts, err := h.Svc.List(c.Request.Context(), middleware.GuestIDFromContext(c), limit, offset)
	if err != nil {
		writeError(c, err, "failed to list resumes")
		return
	}

	resp := make([]DraftSummary, 0, len(drafts))
	for _, d := range drafts {
		resp = append(resp, toSummary(d))
	}
	respond.OK(c, resp)
}

func (h *Handler) sample(c *gin.Context) {
	respond.OK(c, resume.Sample())
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ResumeIDKey, id)

	d, err := h.Svc.Get(c.Request.Context(), middleware.GuestIDFromContext(c), id)
	if err != nil {
		writeError(c, err, "failed to fetch resume")
		return
	}
	respond.OK(c, toResponse(d))
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ResumeIDKey, id)

	title, data, ok := bindDraft(c)
	if !ok {
		return
	}
	d, err := h.Svc.Update(c.Request.Context(), middleware.GuestIDFromContext(c), id, title, data)
	if err != nil {
		writeError(c, err, "failed to update resume")
		return
	}
	respond.OK(c, toResponse(d))
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ResumeIDKey, id)

	if err := h.Svc.Delete(c.Request.Context(), middleware.GuestIDFromContext(c), id); err != nil {
		writeError(c, err, "failed to delete resume")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) score(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ResumeIDKey, id)

	d, res, err := h.Svc.Score(c.Request.Context(), middleware.GuestIDFromContext(c), id)
	if err != nil {
		writeError(c, err, "failed to score resume")
		return
	}
	respond.OK(c, ScoreResponse{ResumeID: d.ID, Score: res})
}

// bindDraft reads a draft request body. On failure the error response has
// already been written.
func bindDraft(c *gin.Context) (string, resume.Resume, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)

	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return "", resume.Resume{}, false
	}
	if len(req.Resume) == 0 || string(req.Resume) == "null" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume is required", nil)
		return "", resume.Resume{}, false
	}

	data, err := resume.Decode(req.Resume)
	if err != nil {
		var verr *resume.ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "resume does not match the expected shape", verr.Errors)
			return "", resume.Resume{}, false
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume", nil)
		return "", resume.Resume{}, false
	}
	return req.Title, data, true
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
