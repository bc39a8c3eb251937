package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminPanel/internal/domain"
	"github.com/m04kA/SMC-AdminPanel/pkg/logger"
)

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (o *recordingObserver) ObserveBackend(family, operation, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, family+"/"+operation+"/"+outcome)
}

func family(t *testing.T, name domain.FamilyName) domain.Family {
	t.Helper()
	catalog, err := domain.NewCatalog(nil)
	require.NoError(t, err)
	f, err := catalog.Lookup(name)
	require.NoError(t, err)
	return f
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	observer := &recordingObserver{}
	return NewClient(srv.URL+"/", time.Second, logger.NewNop()).WithObserver(observer), observer
}

func TestClient_List_Envelope(t *testing.T) {
	client, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/service", r.URL.Path)
		_, _ = w.Write([]byte(`{"services":[{"_id":"s1","title":"Cut","price":30},{"_id":"s2","title":"Shave","price":15}]}`))
	})

	records, err := client.List(context.Background(), family(t, domain.FamilyService))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "s1", records[0].ID)
	assert.Equal(t, "Cut", records[0].Fields["title"])
	assert.Equal(t, float64(30), records[0].Fields["price"])
	assert.False(t, records[0].Fields.Has("_id"))
	assert.Equal(t, []string{"service/list/ok"}, observer.outcomes)
}

func TestClient_List_BareArray(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shop-timing", r.URL.Path)
		_, _ = w.Write([]byte(`[{"_id":"t1","day":"Monday","time":"10:00-18:00"}]`))
	})

	records, err := client.List(context.Background(), family(t, domain.FamilyShopTiming))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "t1", records[0].ID)
	assert.Equal(t, "Monday", records[0].Fields["day"])
}

func TestClient_List_FallbackItemsKeyAndNumericID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"id":12,"firstName":"Ann"}]}`))
	})

	records, err := client.List(context.Background(), family(t, domain.FamilyPayment))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "12", records[0].ID)
	assert.False(t, records[0].Fields.Has("id"))
}

func TestClient_List_InvalidShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>`},
		{name: "unknown envelope", body: `{"foo":[]}`},
		{name: "item without id", body: `{"services":[{"title":"Cut"}]}`},
		{name: "item not object", body: `{"services":["Cut"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.List(context.Background(), family(t, domain.FamilyService))
			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}

func TestClient_Create(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/professional", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Anna","image":""}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"professional":{"_id":"p1","name":"Anna","image":""}}`))
	})

	rec, err := client.Create(context.Background(), family(t, domain.FamilyProfessional), domain.Fields{"name": "Anna", "image": ""})
	require.NoError(t, err)
	assert.Equal(t, "p1", rec.ID)
	assert.Equal(t, "Anna", rec.Fields["name"])
}

func TestClient_Create_BareObject(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"_id":"t9","day":"Sunday","time":"09:00-17:00"}`))
	})

	rec, err := client.Create(context.Background(), family(t, domain.FamilyShopTiming), domain.Fields{"day": "Sunday", "time": "09:00-17:00"})
	require.NoError(t, err)
	assert.Equal(t, "t9", rec.ID)
}

func TestClient_Create_ResponseWithoutID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"created"}`))
	})

	_, err := client.Create(context.Background(), family(t, domain.FamilyService), domain.Fields{"title": "Cut"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_Update_UsesFamilyMethod(t *testing.T) {
	var (
		mu      sync.Mutex
		methods []string
	)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		methods = append(methods, r.Method)
		mu.Unlock()
		switch r.URL.Path {
		case "/service/s1":
			_, _ = w.Write([]byte(`{"service":{"_id":"s1","title":"Cut","price":35}}`))
		case "/shop-timing/t1":
			_, _ = w.Write([]byte(`{"acknowledged":true}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	rec, err := client.Update(context.Background(), family(t, domain.FamilyService), "s1", domain.Fields{"price": 35})
	require.NoError(t, err)
	assert.Equal(t, float64(35), rec.Fields["price"])

	timing, err := client.Update(context.Background(), family(t, domain.FamilyShopTiming), "t1", domain.Fields{"day": "Monday", "time": "10:00-18:00"})
	require.NoError(t, err)
	assert.Equal(t, "t1", timing.ID)
	assert.Equal(t, "10:00-18:00", timing.Fields["time"])

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{http.MethodPatch, http.MethodPut}, methods)
}

func TestClient_Update_MismatchedID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":{"_id":"other","title":"Cut"}}`))
	})

	_, err := client.Update(context.Background(), family(t, domain.FamilyService), "s1", domain.Fields{"title": "Cut"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_Delete(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/contactus/c%201", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.Delete(context.Background(), family(t, domain.FamilyContact), "c 1"))
}

func TestClient_ServerError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "error field", status: http.StatusBadRequest, body: `{"error":"Title is required"}`, message: "Title is required"},
		{name: "message field", status: http.StatusNotFound, body: `{"message":"Service not found"}`, message: "Service not found"},
		{name: "plain text", status: http.StatusInternalServerError, body: `boom`, message: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := client.Delete(context.Background(), family(t, domain.FamilyService), "s1")
			require.ErrorIs(t, err, ErrServer)

			var serverErr *ServerError
			require.True(t, errors.As(err, &serverErr))
			assert.Equal(t, tt.status, serverErr.StatusCode)
			assert.Equal(t, tt.message, serverErr.Message)
			assert.Equal(t, []string{"service/delete/server_error"}, observer.outcomes)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewNop())
	_, err := client.List(context.Background(), family(t, domain.FamilyService))
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestClient_ContextCancelled(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.List(ctx, family(t, domain.FamilyService))
	assert.ErrorIs(t, err, ErrNetwork)
}
