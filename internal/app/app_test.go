package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daniilsolovey/persian-blog/config"
	_ "github.com/daniilsolovey/persian-blog/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postsResponse = `{
  "data": [
    {
      "id": 7,
      "documentId": "abc",
      "title": "تورم چیست؟",
      "slug": "inflation",
      "excerpt": "خلاصه",
      "content": "متن",
      "publishedAt": "2024-01-14T10:00:00.000Z",
      "is_featured": true,
      "categories": [{"id": 1, "name": "اقتصاد کلان", "slug": "macro"}]
    }
  ],
  "meta": {"pagination": {"page": 1, "pageSize": 6, "pageCount": 1, "total": 1}}
}`

func newTestApp(t *testing.T) *App {
	t.Helper()

	cmsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/posts" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, postsResponse)
	}))
	t.Cleanup(cmsSrv.Close)

	var cfg config.Config
	cfg.Content.APIURL = cmsSrv.URL
	cfg.Site.URL = "https://blog.test"
	cfg.Site.TimeZone = "UTC"
	cfg.SetDefaults()
	require.NoError(t, cfg.Validate())

	a, err := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return a
}

func do(a *App, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestApp_Routes(t *testing.T) {
	a := newTestApp(t)

	t.Run("ArticlesPage", func(t *testing.T) {
		rec := do(a, http.MethodGet, "/articles", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "تورم چیست؟")
		assert.Contains(t, rec.Body.String(), `href="/articles/inflation"`)
	})

	t.Run("ArticlesAPI", func(t *testing.T) {
		rec := do(a, http.MethodGet, "/api/v1/articles", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data []struct {
				Slug string `json:"slug"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Data, 1)
		assert.Equal(t, "inflation", body.Data[0].Slug)
	})

	t.Run("RPC", func(t *testing.T) {
		rec := do(a, http.MethodPost, "/rpc/", `{"jsonrpc":"2.0","id":1,"method":"articles.featured"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Result struct {
				Articles []struct {
					Slug string `json:"slug"`
				} `json:"articles"`
			} `json:"result"`
			Error json.RawMessage `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Empty(t, body.Error)
		require.Len(t, body.Result.Articles, 1)
		assert.Equal(t, "inflation", body.Result.Articles[0].Slug)
	})

	t.Run("Swagger", func(t *testing.T) {
		rec := do(a, http.MethodGet, "/swagger/doc.json", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"/api/v1/articles/{slug}"`)
	})

	t.Run("Metrics", func(t *testing.T) {
		rec := do(a, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `blog_cms_requests_total{collection="posts",outcome="ok"}`)
	})
}

func TestNew_BadLanguage(t *testing.T) {
	var cfg config.Config
	cfg.Content.APIURL = "http://cms.test"
	cfg.Site.TimeZone = "UTC"
	cfg.SetDefaults()
	cfg.Site.Lang = "not a language!"

	_, err := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
