package scores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-scorer/internal/resume"
	"resume-scorer/internal/scoring"
	"resume-scorer/internal/shared/server/middleware"
	"resume-scorer/internal/shared/server/respond"
)

const maxJSONBody = 4 << 20 // 4MB, enough for a full batch

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the JSON scoring routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/scores", h.score)
	rg.POST("/scores/batch", h.batch)
}

// RegisterUploadRoutes attaches the document upload route.
func (h *Handler) RegisterUploadRoutes(rg *gin.RouterGroup) {
	rg.POST("/scores/upload", h.upload)
}

type batchRequest struct {
	Resumes []json.RawMessage `json:"resumes"`
}

type batchResponse struct {
	Results []scoring.Result `json:"results"`
}

func (h *Handler) score(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxJSONBody)
	raw, err := c.GetRawData()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read request body", nil)
		return
	}

	r, err := resume.Decode(raw)
	if err != nil {
		writeDecodeError(c, err)
		return
	}

	res, err := h.Svc.Score(c.Request.Context(), r)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, res)
}

func (h *Handler) batch(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxJSONBody)

	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.Resumes) == 0 || len(req.Resumes) > MaxBatchSize {
		respond.Error(c, http.StatusBadRequest, "validation_error",
			fmt.Sprintf("resumes must contain between 1 and %d entries", MaxBatchSize), nil)
		return
	}

	records := make([]resume.Resume, 0, len(req.Resumes))
	var fieldErrs []resume.FieldError
	for i, raw := range req.Resumes {
		r, err := resume.Decode(raw)
		if err != nil {
			var verr *resume.ValidationError
			if !errors.As(err, &verr) {
				fieldErrs = append(fieldErrs, resume.FieldError{Field: fmt.Sprintf("resumes.%d", i), Message: "invalid resume"})
				continue
			}
			for _, fe := range verr.Errors {
				fieldErrs = append(fieldErrs, resume.FieldError{Field: fmt.Sprintf("resumes.%d.%s", i, fe.Field), Message: fe.Message})
			}
			continue
		}
		records = append(records, r)
	}
	if len(fieldErrs) > 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume does not match the expected shape", fieldErrs)
		return
	}

	results, err := h.Svc.Batch(c.Request.Context(), records)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, batchResponse{Results: results})
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize+(1<<20))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(c, ErrTooLarge)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size > MaxUploadSize {
		writeError(c, ErrTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	out, err := h.Svc.Upload(c.Request.Context(), middleware.GuestIDFromContext(c),
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.DocumentIDKey, out.Document.DocumentID)
	respond.OK(c, out)
}

func writeDecodeError(c *gin.Context, err error) {
	var verr *resume.ValidationError
	if errors.As(err, &verr) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume does not match the expected shape", verr.Errors)
		return
	}
	respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume", nil)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnsupportedDocument):
		respond.Error(c, http.StatusBadRequest, "validation_error", "Please upload a PDF or DOCX file", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrTooLarge):
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large",
			fmt.Sprintf("File must be at most %d MB", MaxUploadSize>>20), nil)
	case errors.Is(err, ErrUnreadable), errors.Is(err, ErrNoText):
		respond.Error(c, http.StatusUnprocessableEntity, "unreadable_document",
			"We could not read any text from this document", nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respond.Error(c, http.StatusServiceUnavailable, "canceled", "request canceled", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to score resume", nil)
	}
}
