package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/flannelman48/whirly-rentals-website/internal/common/clock"
	"github.com/flannelman48/whirly-rentals-website/internal/common/dto"
	"github.com/flannelman48/whirly-rentals-website/internal/common/logger"
	commonvalidation "github.com/flannelman48/whirly-rentals-website/internal/common/validation"
	inquiryrepo "github.com/flannelman48/whirly-rentals-website/internal/inquiry/repository"
	"github.com/flannelman48/whirly-rentals-website/internal/inquiry/service"
)

type errorEnvelope struct {
	Code    string                        `json:"code"`
	Message string                        `json:"message"`
	Errors  []commonvalidation.FieldError `json:"errors"`
}

func setupHandler(t *testing.T) (http.Handler, *clock.MockClock) {
	t.Helper()
	log, err := logger.NewWithWriter(io.Discard, "", "test", "info")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	clk := clock.NewMockClock(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))
	svc := service.NewInquiryService(service.InquiryServiceDeps{
		Repo:  inquiryrepo.NewMemoryRepository(),
		Clock: clk,
		Log:   log,
	})
	return NewHandler(svc, 5*time.Second, log), clk
}

func validBody() map[string]any {
	return map[string]any{
		"firstName":            "Ada",
		"lastName":             "Lovelace",
		"email":                "ada@example.com",
		"phone":                "555-0100",
		"serviceAddress":       "1 Main St",
		"packageInterest":      "washer-dryer-new",
		"preferredInstallDate": "Saturday",
		"dryerHookupType":      "three-prong",
		"sixMonthAgreement":    true,
		"autopayAgreement":     true,
	}
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestInquiryHTTP_Create(t *testing.T) {
	h, clk := setupHandler(t)

	rec := do(t, h, http.MethodPost, "/api/rental-inquiries", validBody())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.CreateInquiryResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Error("expected success true")
	}
	if len(resp.Inquiry.ID) != 36 {
		t.Errorf("expected uuid id, got %q", resp.Inquiry.ID)
	}
	if resp.Inquiry.SixMonthAgreement != "true" || resp.Inquiry.AutopayAgreement != "true" {
		t.Errorf("expected agreements as \"true\", got %q %q", resp.Inquiry.SixMonthAgreement, resp.Inquiry.AutopayAgreement)
	}
	if resp.Inquiry.Message != nil {
		t.Errorf("expected null message, got %q", *resp.Inquiry.Message)
	}
	if !resp.Inquiry.CreatedAt.Equal(clk.Now()) {
		t.Errorf("expected createdAt %v, got %v", clk.Now(), resp.Inquiry.CreatedAt)
	}
}

func TestInquiryHTTP_Create_ValidationFailed(t *testing.T) {
	h, _ := setupHandler(t)

	body := validBody()
	body["sixMonthAgreement"] = false
	rec := do(t, h, http.MethodPost, "/api/rental-inquiries", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var env errorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Message != "Validation failed" {
		t.Errorf("expected Validation failed, got %q", env.Message)
	}
	if len(env.Errors) != 1 || env.Errors[0].Field != "sixMonthAgreement" {
		t.Errorf("unexpected errors %v", env.Errors)
	}

	list := do(t, h, http.MethodGet, "/api/rental-inquiries", nil)
	if strings.TrimSpace(list.Body.String()) != "[]" {
		t.Errorf("rejected inquiry should not be stored, got %s", list.Body.String())
	}
}

func TestInquiryHTTP_Create_InvalidJSON(t *testing.T) {
	h, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/rental-inquiries", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	var env errorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Code != "INVALID_JSON" {
		t.Errorf("expected INVALID_JSON, got %s", env.Code)
	}
}

func TestInquiryHTTP_ListNewestFirstAndGet(t *testing.T) {
	h, clk := setupHandler(t)

	first := validBody()
	first["firstName"] = "First"
	do(t, h, http.MethodPost, "/api/rental-inquiries", first)

	clk.Advance(time.Minute)
	second := validBody()
	second["firstName"] = "Second"
	second["message"] = "Please call first"
	do(t, h, http.MethodPost, "/api/rental-inquiries", second)

	rec := do(t, h, http.MethodGet, "/api/rental-inquiries", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list []dto.RentalInquiry
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 2 || list[0].FirstName != "Second" || list[1].FirstName != "First" {
		t.Fatalf("expected newest first, got %+v", list)
	}

	rec = do(t, h, http.MethodGet, "/api/rental-inquiries/"+list[0].ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var one dto.RentalInquiry
	if err := json.NewDecoder(rec.Body).Decode(&one); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if one.ID != list[0].ID || one.Message == nil || *one.Message != "Please call first" {
		t.Errorf("unexpected inquiry %+v", one)
	}
}

func TestInquiryHTTP_Get_NotFound(t *testing.T) {
	h, _ := setupHandler(t)

	rec := do(t, h, http.MethodGet, "/api/rental-inquiries/does-not-exist", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var env errorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Message != "Inquiry not found" {
		t.Errorf("expected Inquiry not found, got %q", env.Message)
	}
}

func TestInquiryHTTP_MethodNotAllowed(t *testing.T) {
	h, _ := setupHandler(t)

	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodDelete, path: "/api/rental-inquiries"},
		{method: http.MethodPost, path: "/api/rental-inquiries/abc"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, nil)
			if rec.Code != http.StatusMethodNotAllowed {
				t.Errorf("expected 405, got %d", rec.Code)
			}
		})
	}
}
