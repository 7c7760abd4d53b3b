// Package receiver implements the file ingestion endpoints.
package receiver

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/datalake/receiver/internal/metrics"
	"github.com/datalake/receiver/internal/response"
	"github.com/datalake/receiver/internal/storage"
)

// Handler holds HTTP handlers for receiving and storing files.
type Handler struct {
	store  storage.Provider
	logger *zap.Logger
}

// NewHandler creates a new receiver Handler backed by the given provider.
func NewHandler(store storage.Provider, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Receive godoc
//
//	@Summary		Store an uploaded file
//	@Description	Stores the raw request body under a key resolved from the request path, the X-file-name header, or a generated timestamp name. A non-blank X-file-path header is prepended as a directory prefix.
//	@Tags			files
//	@Accept			octet-stream
//	@Produce		plain
//	@Param			X-file-name	header	string	false	"Filename used when the request path is /"
//	@Param			X-file-path	header	string	false	"Directory prefix prepended to the resolved filename"
//	@Security		BearerAuth
//	@Success		200	{string}	string	"File stored successfully: <key>"
//	@Failure		401	{string}	string
//	@Failure		500	{string}	string
//	@Router			/ [post]
func (h *Handler) Receive(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("failed to read request body", zap.Error(err))
		response.InternalError(w, "Failed to read request body: "+err.Error())
		return
	}

	key := resolveKey(r.URL.Path, r.Header)

	h.logger.Info("storing file", zap.String("key", key), zap.Int("bytes", len(data)))
	if err := h.store.Store(r.Context(), key, data); err != nil {
		metrics.UploadFailures.Inc()
		h.logger.Error("failed to store file", zap.String("key", key), zap.Error(err))
		response.InternalError(w, "Failed to store file: "+err.Error())
		return
	}

	metrics.UploadsStored.Inc()
	metrics.BytesStored.Add(float64(len(data)))
	response.OK(w, "File stored successfully: "+key)
}

// Health godoc
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	plain
//	@Success	200	{string}	string	"OK - Storage: <backend>"
//	@Router		/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, "OK - Storage: "+h.store.Describe())
}
