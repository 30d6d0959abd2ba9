package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/harwood/mediamap/config"
	"github.com/harwood/mediamap/pkg/catalog"
	catalogMocks "github.com/harwood/mediamap/pkg/catalog/mocks"
	"github.com/harwood/mediamap/pkg/manager"
	"github.com/harwood/mediamap/pkg/matcher"
	"github.com/harwood/mediamap/pkg/scanner"
	"github.com/harwood/mediamap/pkg/storage"
	storageMocks "github.com/harwood/mediamap/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func intPtr(i int) *int { return &i }

func newTestServer(t *testing.T, catalogClient catalog.Client, store storage.Storage) Server {
	t.Helper()
	m := manager.New(catalogClient, store, config.Config{}, manager.Instance{
		Name:  "movies",
		Roots: []scanner.FileSystem{},
	})
	return New(zap.NewNop().Sugar(), m)
}

func TestServer_Healthz(t *testing.T) {
	s := Server{baseLogger: zap.NewNop().Sugar()}

	req, err := http.NewRequest("GET", "/healthz", nil)
	assert.NoError(t, err)

	rr := httptest.NewRecorder()

	handler := s.Healthz()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("content-type"))

	var response GenericResponse
	err = json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ok", response.Response)
}

func TestServer_TriggerScan(t *testing.T) {
	t.Run("unknown instance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := newTestServer(t, catalogMocks.NewMockClient(ctrl), storageMocks.NewMockStorage(ctrl))

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/instances/tv/scan", nil)
		s.Handler().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storageMocks.NewMockStorage(ctrl)
		store.EXPECT().GetLastScanAt(gomock.Any(), "movies").Return(time.Time{}, storage.ErrNotFound).AnyTimes()
		store.EXPECT().SetLastScanAt(gomock.Any(), "movies", gomock.Any()).Return(nil).AnyTimes()

		s := newTestServer(t, catalogMocks.NewMockClient(ctrl), store)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/instances/movies/scan", nil)
		s.Handler().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusAccepted, rr.Code)

		var response struct {
			Response struct {
				Accepted bool `json:"accepted"`
			} `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.True(t, response.Response.Accepted)
	})
}

func TestServer_GetReconciliation(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	store.EXPECT().GetLastScanAt(gomock.Any(), "movies").Return(time.Time{}, storage.ErrNotFound).AnyTimes()

	s := newTestServer(t, catalogMocks.NewMockClient(ctrl), store)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/instances/movies/reconciliation", nil)
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Response struct {
			ScanInProgress bool  `json:"scanInProgress"`
			Items          []any `json:"items"`
		} `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.False(t, response.Response.ScanInProgress)
	assert.Empty(t, response.Response.Items)
}

func TestServer_ConfirmItem(t *testing.T) {
	t.Run("item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storageMocks.NewMockStorage(ctrl)
		store.EXPECT().LibraryItemExistsByExternalID(gomock.Any(), int32(42)).Return(false, nil)

		s := newTestServer(t, catalogMocks.NewMockClient(ctrl), store)

		body := `{"folderPath":"/movies/Unknown","candidate":{"externalID":42,"title":"Unknown"}}`
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/instances/movies/items/confirm", strings.NewReader(body))
		s.Handler().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := newTestServer(t, catalogMocks.NewMockClient(ctrl), storageMocks.NewMockStorage(ctrl))

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/instances/movies/items/confirm", strings.NewReader("{"))
		s.Handler().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestServer_SkipItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestServer(t, catalogMocks.NewMockClient(ctrl), storageMocks.NewMockStorage(ctrl))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/instances/movies/items/skip", strings.NewReader(`{"folderPath":"/movies/Unknown"}`))
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestServer_SearchCatalog(t *testing.T) {
	t.Run("missing query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := newTestServer(t, catalogMocks.NewMockClient(ctrl), storageMocks.NewMockStorage(ctrl))

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/search", nil)
		s.Handler().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("ranked candidates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalogClient := catalogMocks.NewMockClient(ctrl)
		catalogClient.EXPECT().SearchByTitle(gomock.Any(), "robocop", intPtr(1987)).Return([]catalog.SearchResult{
			{ExternalID: 5548, Title: "RoboCop", Year: intPtr(1987), VoteCount: 6000},
		}, nil)

		s := newTestServer(t, catalogClient, storageMocks.NewMockStorage(ctrl))

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/search?query=robocop&year=1987", nil)
		s.Handler().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response struct {
			Response []matcher.Candidate `json:"response"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		require.Len(t, response.Response, 1)
		assert.Equal(t, 5548, response.Response[0].ExternalID)
	})
}
