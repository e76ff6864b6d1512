package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Grefendor/drinks/internal/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path != "/api/v0/product/4001.json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestProductName(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		want     string
		notFound bool
		wantErr  bool
	}{
		{name: "found", status: http.StatusOK, body: `{"status":1,"product":{"product_name":"Club-Mate"}}`, want: "Club-Mate"},
		{name: "status zero", status: http.StatusOK, body: `{"status":0,"status_verbose":"product not found"}`, notFound: true},
		{name: "empty name", status: http.StatusOK, body: `{"status":1,"product":{"product_name":""}}`, notFound: true},
		{name: "http 404", status: http.StatusNotFound, body: ``, notFound: true},
		{name: "http 500", status: http.StatusInternalServerError, body: ``, wantErr: true},
		{name: "bad json", status: http.StatusOK, body: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)
			c := New(srv.URL + "/")

			got, err := c.ProductName(context.Background(), "4001")
			switch {
			case tt.notFound:
				require.ErrorIs(t, err, ErrNotFound)
			case tt.wantErr:
				require.Error(t, err)
				require.NotErrorIs(t, err, ErrNotFound)
			default:
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestProductNameEmptyBarcode(t *testing.T) {
	_, err := New("").ProductName(context.Background(), "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProductNameCache(t *testing.T) {
	srv, hits := newServer(t, http.StatusOK, `{"status":1,"product":{"product_name":"Club-Mate"}}`)

	stored := map[string]string{}
	fc := &cache.FakeCache{
		GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			cmd := redis.NewStringCmd(ctx)
			if v, ok := stored[key]; ok {
				cmd.SetVal(v)
			} else {
				cmd.SetErr(redis.Nil)
			}
			return cmd
		},
		SetFn: func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
			require.Equal(t, 24*time.Hour, expiration)
			stored[key] = value.(string)
			return redis.NewStatusCmd(ctx)
		},
	}
	c := New(srv.URL, WithCache(fc), WithHTTPClient(srv.Client()))

	for i := 0; i < 3; i++ {
		got, err := c.ProductName(context.Background(), "4001")
		require.NoError(t, err)
		require.Equal(t, "Club-Mate", got)
	}
	require.Equal(t, 1, *hits)
	require.Equal(t, "Club-Mate", stored["lookup:4001"])
}
