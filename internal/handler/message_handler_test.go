package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"marketplace-backend/internal/model"
	"marketplace-backend/internal/sample"
	"marketplace-backend/internal/service"
)

type fakeMessageService struct {
	result *service.SendResult
	err    error
}

func (f *fakeMessageService) Send(_ context.Context, _, _, _, _ string) (*service.SendResult, error) {
	return f.result, f.err
}

func (f *fakeMessageService) ListByListing(_ context.Context, _ string) ([]model.Message, error) {
	return nil, nil
}

func postMessage(t *testing.T, svc service.MessageService, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/listings/1/messages", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	h := NewMessageHandler(svc, &fakeListingService{provider: sample.NewProvider()})
	if err := h.Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestSendMessageReportsNotificationOutcome(t *testing.T) {
	msg := &model.Message{ID: "m1", ListingID: "1"}
	for _, sent := range []bool{true, false} {
		rec := postMessage(t, &fakeMessageService{result: &service.SendResult{Message: msg, NotificationSent: sent}},
			`{"buyerEmail":"buyer@example.com","buyerName":"Bea","message":"hi"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status=%d", rec.Code)
		}
		var resp SendMessageResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if resp.NotificationSent != sent {
			t.Fatalf("notificationSent=%v want %v", resp.NotificationSent, sent)
		}
	}
}

func TestSendMessageValidationFailure(t *testing.T) {
	rec := postMessage(t, &fakeMessageService{err: service.ErrValidation}, `{"message":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestSendMessageUnknownListing(t *testing.T) {
	rec := postMessage(t, &fakeMessageService{err: service.ErrNotFound}, `{"buyerEmail":"b@example.com","message":"hi"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d", rec.Code)
	}
}
