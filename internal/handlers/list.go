package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/qr-verification-service/internal/logger"
	"github.com/sbilibin2017/qr-verification-service/internal/models"
	"github.com/sbilibin2017/qr-verification-service/internal/services"
)

// QRCodeLister defines the interface that the service must implement.
type QRCodeLister interface {
	List(ctx context.Context, filter models.ListFilter) ([]services.QRCodeView, *models.Pagination, error)
}

// ListQRCodesResponseData is the payload of a list request
// swagger:model ListQRCodesResponseData
type ListQRCodesResponseData struct {
	QRCodes    []services.QRCodeView `json:"qrcodes"`
	Pagination *models.Pagination    `json:"pagination"`
}

// NewListQRCodesHandler returns an HTTP handler for listing codes.
// @Summary List QR codes
// @Description Returns a page of codes filtered by search text and status.
// @Tags qrcode
// @Produce json
// @Param search query string false "Substring match on title, description or code"
// @Param status query string false "all, active, inactive or expired" default(all)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} models.APIResponse "Page of QR codes"
// @Failure 401 {object} models.APIResponse "Unauthorized"
// @Router /api/qrcode [get]
// @Security BearerAuth
func NewListQRCodesHandler(svc QRCodeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		page, _ := strconv.Atoi(query.Get("page"))
		limit, _ := strconv.Atoi(query.Get("limit"))

		views, pagination, err := svc.List(r.Context(), models.ListFilter{
			Search: query.Get("search"),
			Status: query.Get("status"),
			Page:   page,
			Limit:  limit,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Data: ListQRCodesResponseData{
				QRCodes:    views,
				Pagination: pagination,
			},
		})
	}
}
