package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casthive/media-store-go/internal/db"
	"github.com/casthive/media-store-go/internal/mock"
	"github.com/casthive/media-store-go/internal/model"
	"github.com/casthive/media-store-go/internal/usecase/asset"
	"github.com/google/uuid"
)

func TestReplaceAudioHandler(t *testing.T) {
	validID := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	mp3Payload := []byte("replacement mp3 bytes")

	tests := []struct {
		name        string
		ctxID       *db.UUID
		filename    string
		contentType string
		svcErr      error
		wantStatus  int
		wantCalled  bool
	}{
		{"missing id in context", nil, "ep01.mp3", "audio/mpeg", nil, http.StatusBadRequest, false},
		{"missing file part", &validID, "", "", nil, http.StatusBadRequest, false},
		{"image mime rejected", &validID, "ep01.png", "image/png", nil, http.StatusUnsupportedMediaType, false},
		{"asset not found", &validID, "ep01.mp3", "audio/mpeg", asset.ErrAssetNotFound, http.StatusNotFound, true},
		{"storage unavailable", &validID, "ep01.mp3", "audio/mpeg", asset.ErrStorageUnavailable, http.StatusServiceUnavailable, true},
		{"happy path", &validID, "ep01.mp3", "audio/mpeg", nil, http.StatusOK, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.MockAudioReplacer{
				Out: &model.MediaAsset{Kind: model.AssetKindEpisodeAudio, MimeType: "audio/mpeg"},
				Err: tc.svcErr,
			}
			handler := ReplaceAudioHandler(svc)

			body, contentType := buildUpload(t, tc.filename, tc.contentType, mp3Payload, nil)
			req := httptest.NewRequest("PUT", "/assets/any/file", body)
			req.Header.Set("Content-Type", contentType)
			if tc.ctxID != nil {
				req = req.WithContext(context.WithValue(req.Context(), IDKey, *tc.ctxID))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d (body: %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if svc.Called != tc.wantCalled {
				t.Errorf("svc.Called = %v; want %v", svc.Called, tc.wantCalled)
			}
			if tc.wantCalled {
				if svc.ID != *tc.ctxID {
					t.Errorf("svc.ID = %s; want %s", svc.ID, *tc.ctxID)
				}
				if svc.In.Kind != model.AssetKindEpisodeAudio {
					t.Errorf("input kind = %s; want %s", svc.In.Kind, model.AssetKindEpisodeAudio)
				}
			}
		})
	}
}
