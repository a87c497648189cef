package http

import (
	"context"
	"net/http"
	"time"

	"github.com/flannelman48/whirly-rentals-website/internal/common/dto"
	commonhttp "github.com/flannelman48/whirly-rentals-website/internal/common/http"
	"github.com/flannelman48/whirly-rentals-website/internal/common/logger"
	"github.com/flannelman48/whirly-rentals-website/internal/common/mapper"
	"github.com/flannelman48/whirly-rentals-website/internal/inquiry/domain"
)

const inquiriesPath = "/api/rental-inquiries"

type InquiryService interface {
	Create(ctx context.Context, raw map[string]any) (domain.RentalInquiry, error)
	List(ctx context.Context) ([]domain.RentalInquiry, error)
	Get(ctx context.Context, id string) (domain.RentalInquiry, error)
}

type Handler struct {
	inquiries InquiryService
	log       *logger.Logger
}

func NewHandler(inquiries InquiryService, timeout time.Duration, log *logger.Logger) http.Handler {
	h := &Handler{
		inquiries: inquiries,
		log:       log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc(inquiriesPath, commonhttp.WithTimeout(timeout)(h.handleCollection))
	mux.HandleFunc(inquiriesPath+"/", commonhttp.RequireMethod(http.MethodGet)(commonhttp.WithTimeout(timeout)(h.get)))

	return mux
}

func (h *Handler) handleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed", nil, "")
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	raw, err := commonhttp.DecodeObject(r)
	if err != nil {
		h.log.Debugf("create inquiry decode failed: %v", err)
		commonhttp.WriteDecodeError(w, err)
		return
	}

	inquiry, err := h.inquiries.Create(r.Context(), raw)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, dto.CreateInquiryResponse{
		Success: true,
		Inquiry: mapper.InquiryToDTO(inquiry),
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.inquiries.List(r.Context())
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, mapper.InquiriesToDTO(inquiries))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := commonhttp.ExtractIDFromPath(r.URL.Path, inquiriesPath+"/")
	if !ok {
		h.list(w, r)
		return
	}

	inquiry, err := h.inquiries.Get(r.Context(), id)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, mapper.InquiryToDTO(inquiry))
}
