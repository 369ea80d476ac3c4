package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/mock"
	"github.com/google/uuid"
)

func TestDeleteAssetHandler(t *testing.T) {
	validID := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))

	tests := []struct {
		name       string
		ctxID      *db.UUID
		svcErr     error
		wantStatus int
		wantCalled bool
	}{
		{"missing id in context", nil, nil, http.StatusBadRequest, false},
		{"usecase failure", &validID, errors.New("boom"), http.StatusInternalServerError, true},
		{"happy path", &validID, nil, http.StatusNoContent, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.MockAssetDeleter{Err: tc.svcErr}
			handler := DeleteAssetHandler(svc)

			req := httptest.NewRequest("DELETE", "/assets/any", nil)
			if tc.ctxID != nil {
				req = req.WithContext(context.WithValue(req.Context(), IDKey, *tc.ctxID))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if svc.Called != tc.wantCalled {
				t.Errorf("svc.Called = %v; want %v", svc.Called, tc.wantCalled)
			}
			if tc.wantCalled && svc.ID != *tc.ctxID {
				t.Errorf("svc.ID = %s; want %s", svc.ID, *tc.ctxID)
			}
		})
	}
}
