package handlers

import (
	"context"
	stderrors "errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rohit/delimfmt/internal/api/middleware"
	"github.com/rohit/delimfmt/internal/diag"
	"github.com/rohit/delimfmt/internal/domain/errors"
	"github.com/rohit/delimfmt/internal/domain/models"
	processservice "github.com/rohit/delimfmt/internal/service/process"
	"github.com/rohit/delimfmt/pkg/logger"
	"github.com/rs/zerolog"
)

// FileProcessor runs a batch of input files
type FileProcessor interface {
	TryProcessFiles(ctx context.Context, filePaths []string, reporter diag.Reporter) (*models.RunSummary, error)
}

// RunHandler handles run-related HTTP requests
type RunHandler struct {
	processor FileProcessor
	logger    zerolog.Logger
	inputRoot string
}

// NewRunHandler creates a new run handler. Requested files are resolved
// against inputRoot and may not leave it.
func NewRunHandler(processor FileProcessor, logger zerolog.Logger, inputRoot string) *RunHandler {
	if inputRoot == "" {
		inputRoot = "."
	}
	return &RunHandler{
		processor: processor,
		logger:    logger,
		inputRoot: filepath.Clean(inputRoot),
	}
}

// CreateRunRequest represents the request body for starting a run
type CreateRunRequest struct {
	Files []string `json:"files" binding:"required"`
}

// RunResponse wraps a run summary, with the error when the run was aborted
type RunResponse struct {
	*models.RunSummary
	Error *errors.AppError `json:"error,omitempty"`
}

// CreateRun handles POST /v1/runs. The run executes synchronously and the
// response carries the summary with every diagnostic.
func (h *RunHandler) CreateRun(c *gin.Context) {
	log := logger.WithRequestID(h.logger, middleware.GetRequestID(c))

	var req CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrInvalidRequest("invalid request body: " + err.Error())})
		return
	}
	if len(req.Files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.NewAppErrorWithField(
			errors.ErrCodeInvalidRequest, "at least one file is required", "files", http.StatusBadRequest)})
		return
	}

	files := make([]string, 0, len(req.Files))
	for _, name := range req.Files {
		path, ok := resolveInput(h.inputRoot, name)
		if !ok {
			log.Warn().Str("path", name).Msg("Rejected path outside input root")
			c.JSON(http.StatusBadRequest, gin.H{"error": errors.NewAppErrorWithField(
				errors.ErrCodeInvalidRequest, "path must be relative to the input root: "+name, "files", http.StatusBadRequest)})
			return
		}
		files = append(files, path)
	}

	summary, err := h.processor.TryProcessFiles(c.Request.Context(), files, nil)
	if err != nil {
		if stderrors.Is(err, processservice.ErrRunInProgress) {
			appErr := errors.ErrRunInProgress()
			c.JSON(appErr.StatusCode, gin.H{"error": appErr})
			return
		}

		log.Error().Err(err).Int("files", len(files)).Msg("Run failed")
		code := errors.ErrCodeInternalError
		var ioErr *errors.IOError
		if stderrors.As(err, &ioErr) {
			code = ioErr.Code
		}
		c.JSON(http.StatusInternalServerError, RunResponse{
			RunSummary: summary,
			Error:      errors.NewAppError(code, err.Error(), http.StatusInternalServerError),
		})
		return
	}

	log.Info().
		Str("run_id", summary.RunID.String()).
		Int("files", len(summary.Files)).
		Int("lines_written", summary.TotalWritten()).
		Msg("Run completed")

	c.JSON(http.StatusOK, RunResponse{RunSummary: summary})
}

// resolveInput joins a client supplied path onto root. Absolute paths and
// paths that climb out of root are refused.
func resolveInput(root, name string) (string, bool) {
	if name == "" || filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return "", false
	}

	path := filepath.Join(root, name)
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return path, true
}
