package mapbox

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoader_Load(t *testing.T) {
	logger := zap.NewNop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"TokenValid"}`))
	}))
	defer server.Close()

	t.Run("ready with places", func(t *testing.T) {
		loader := NewLoader(NewMapboxClient(testConfig(server.URL), logger), []string{"places"}, logger)
		assert.NoError(t, loader.Load(context.Background()))
	})

	t.Run("places library required", func(t *testing.T) {
		loader := NewLoader(NewMapboxClient(testConfig(server.URL), logger), []string{"geometry"}, logger)

		err := loader.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"places"`)
	})

	t.Run("rejected token", func(t *testing.T) {
		bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"code":"TokenExpired"}`))
		}))
		defer bad.Close()

		loader := NewLoader(NewMapboxClient(testConfig(bad.URL), logger), []string{"places"}, logger)

		err := loader.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TokenExpired")
	})
}
