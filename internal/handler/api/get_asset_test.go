package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/mock"
	"github.com/casthive/media-store-go/internal/usecase/asset"
	"github.com/google/uuid"
)

func TestGetAssetHandler(t *testing.T) {
	validID := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	rawBody := []byte(`{"id":"aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"}`)

	tests := []struct {
		name        string
		ctxID       *db.UUID
		ifNoneMatch string
		rendErr     error
		wantStatus  int
		wantBody    bool
	}{
		{"missing id in context", nil, "", nil, http.StatusBadRequest, false},
		{"asset not found", &validID, "", asset.ErrAssetNotFound, http.StatusNotFound, false},
		{"renderer failure", &validID, "", errors.New("boom"), http.StatusInternalServerError, false},
		{"happy path", &validID, "", nil, http.StatusOK, true},
		{"etag match returns 304", &validID, `"cafebabe"`, nil, http.StatusNotModified, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rend := &mock.MockHTTPRenderer{Data: rawBody, Etag: `"cafebabe"`, Err: tc.rendErr}
			getter := &mock.MockAssetGetter{}
			handler := GetAssetHandler(rend, getter)

			req := httptest.NewRequest("GET", "/assets/any", nil)
			if tc.ctxID != nil {
				req = req.WithContext(context.WithValue(req.Context(), IDKey, *tc.ctxID))
			}
			if tc.ifNoneMatch != "" {
				req.Header.Set("If-None-Match", tc.ifNoneMatch)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if tc.ctxID != nil && !rend.Called {
				t.Error("renderer should have been called")
			}
			if tc.wantBody {
				if got := rec.Header().Get("ETag"); got != `"cafebabe"` {
					t.Errorf("ETag = %q; want %q", got, `"cafebabe"`)
				}
				if rec.Body.String() != string(rawBody) {
					t.Errorf("body = %q; want %q", rec.Body.String(), rawBody)
				}
			}
			if tc.wantStatus == http.StatusNotFound {
				var resp ErrorResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("invalid error JSON: %v", err)
				}
				if resp.Error != "Asset not found" {
					t.Errorf("error message = %q", resp.Error)
				}
			}
		})
	}
}
