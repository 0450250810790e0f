package upload_booking_media

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-service/internal/api/handlers"
	"github.com/bestbuddies/grooming-service/internal/api/middleware"
	"github.com/bestbuddies/grooming-service/internal/domain"
	"github.com/bestbuddies/grooming-service/internal/integrations/mediastore"
	"github.com/bestbuddies/grooming-service/internal/service/bookings"
	"github.com/bestbuddies/grooming-service/internal/service/bookings/models"
)

const (
	msgInvalidForm    = "expected multipart form with a 'before' and/or 'after' file"
	msgFileTooLarge   = "file exceeds the upload limit"
	msgNotFound       = "booking not found"
	msgStoreDegraded  = "media store is unavailable, try again later"
	formFieldBefore   = "before"
	formFieldAfter    = "after"
	maxMultipartBytes = 2*domain.MaxUploadBytes + 1<<20
)

// UploadMediaResponse returns the stored photo URLs
type UploadMediaResponse struct {
	BeforeURL *string `json:"beforeUrl,omitempty"`
	AfterURL  *string `json:"afterUrl,omitempty"`
}

type Handler struct {
	store   MediaStore
	service BookingService
	logger  Logger
}

func NewHandler(store MediaStore, service BookingService, logger Logger) *Handler {
	return &Handler{
		store:   store,
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/media
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	r.Body = http.MaxBytesReader(w, r.Body, maxMultipartBytes)
	if err := r.ParseMultipartForm(maxMultipartBytes); err != nil {
		h.logger.Warn("POST /bookings/{id}/media - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	beforeURL, err := h.uploadField(r, formFieldBefore)
	if err != nil {
		h.respondUploadError(w, bookingID, err)
		return
	}
	afterURL, err := h.uploadField(r, formFieldAfter)
	if err != nil {
		h.respondUploadError(w, bookingID, err)
		return
	}
	if beforeURL == nil && afterURL == nil {
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	actor := models.Actor{
		UserID: middleware.UserIDFromContext(r.Context()),
		Role:   middleware.RoleFromContext(r.Context()),
	}

	err = h.service.SetMedia(r.Context(), bookingID, &models.SetMediaRequest{
		Actor:     actor,
		BeforeURL: beforeURL,
		AfterURL:  afterURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/media - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /bookings/{id}/media - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/media - Uploaded: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, UploadMediaResponse{
		BeforeURL: beforeURL,
		AfterURL:  afterURL,
	})
}

// uploadField reads one optional file part and pushes it to the media store.
// A missing part is not an error: the caller may send just one photo.
func (h *Handler) uploadField(r *http.Request, field string) (*string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, domain.MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > domain.MaxUploadBytes {
		return nil, mediastore.ErrFileTooLarge
	}

	result, err := h.store.UploadWithGracefulDegradation(r.Context(), header.Filename, partContentType(header), data)
	if err != nil {
		return nil, err
	}
	return &result.URL, nil
}

func partContentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func (h *Handler) respondUploadError(w http.ResponseWriter, bookingID string, err error) {
	switch {
	case errors.Is(err, mediastore.ErrFileTooLarge):
		h.logger.Warn("POST /bookings/{id}/media - File too large: booking_id=%s", bookingID)
		handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)

	case errors.Is(err, mediastore.ErrServiceDegraded):
		h.logger.Error("POST /bookings/{id}/media - Media store degraded: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreDegraded)

	default:
		h.logger.Error("POST /bookings/{id}/media - Upload failed: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
	}
}
