package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tikkeul/internal/domain"
	"tikkeul/internal/pkg/logger"
)

// recorder counts requests per path.
type recorder struct {
	mu   sync.Mutex
	hits map[string]int
}

func (r *recorder) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.mu.Lock()
		if r.hits == nil {
			r.hits = map[string]int{}
		}
		r.hits[req.Method+" "+req.URL.Path]++
		r.mu.Unlock()
		next.ServeHTTP(w, req)
	})
}

func (r *recorder) count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hits[key]
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func lookupMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /factories", func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, 200, `{"factories":[{"id":1,"name":"평택 공장"}]}`)
	})
	mux.HandleFunc("GET /threatTypes", func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, 200, `{"threatTypes":[{"id":2,"name":"추락"}]}`)
	})
	mux.HandleFunc("GET /workTypes", func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, 200, `{"workTypes":[{"id":3,"name":"용접"}]}`)
	})
	mux.HandleFunc("GET /checks", func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, 200, `{"checks":[{"question":"안전모 착용"}]}`)
	})
	mux.HandleFunc("GET /ageRanges", func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, 200, `{"ageRanges":[{"id":5,"range":"20-29"},{}]}`)
	})
	mux.HandleFunc("GET /workExperienceRanges", func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, 200, `{"workExperienceRanges":[{"id":1,"range":"1년 미만"}]}`)
	})
	mux.HandleFunc("GET /industryTypes/{size}", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, 200, `{"industryTypes":[{"id":1,"name":"`+r.PathValue("size")+`"}]}`)
	})
	return mux
}

func newTestClient(t *testing.T, h http.Handler) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(rec.wrap(h))
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, NewMemorySession(), WithClock(clockwork.NewFakeClockAt(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))))
	require.NoError(t, err)
	return c, rec
}

func TestLoadLookups(t *testing.T) {
	c, _ := newTestClient(t, lookupMux())
	l := c.LoadLookups(context.Background())

	assert.Equal(t, []domain.Factory{{ID: 1, Name: "평택 공장"}}, l.Factories)
	assert.Equal(t, []domain.Category{{ID: 2, Name: "추락"}}, l.ThreatTypes)
	assert.Equal(t, []domain.Category{{ID: 3, Name: "용접"}}, l.WorkTypes)
	assert.Equal(t, []string{"안전모 착용"}, l.Checks)
	assert.Equal(t, []domain.Category{{ID: 5, Name: "20-29"}, {ID: 0, Name: ""}}, l.AgeRanges)
	assert.Equal(t, []domain.Category{{ID: 1, Name: "1년 미만"}}, l.WorkExperienceRanges)
	assert.Equal(t, []domain.Category{{ID: 1, Name: "large"}}, l.IndustryLarge)
	assert.Equal(t, []domain.Category{{ID: 1, Name: "medium"}}, l.IndustryMedium)
}

func TestLoadLookupsIsolatesFailedFetch(t *testing.T) {
	mux := lookupMux()
	outer := http.NewServeMux()
	outer.Handle("/", mux)
	outer.HandleFunc("GET /factories", func(w http.ResponseWriter, _ *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		conn, _, err := hj.Hijack()
		if err == nil {
			conn.Close()
		}
	})
	outer.HandleFunc("GET /workTypes", func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, 500, `{"detail":"boom"}`)
	})

	c, rec := newTestClient(t, outer)
	l := c.LoadLookups(context.Background())

	assert.NotNil(t, l.Factories)
	assert.Empty(t, l.Factories)
	assert.Empty(t, l.WorkTypes)
	assert.Equal(t, []domain.Category{{ID: 2, Name: "추락"}}, l.ThreatTypes)
	assert.Equal(t, []string{"안전모 착용"}, l.Checks)
	assert.Equal(t, 1, rec.count("GET /threatTypes"))
}

func TestDecodeErrorOnSchemaMismatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /factories", func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, 200, `{"items":[]}`)
	})
	mux.HandleFunc("GET /threatTypes", func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, 200, `{"threatTypes":[{"id":1}]}`)
	})
	c, _ := newTestClient(t, mux)

	_, err := c.Factories(context.Background())
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "/factories", de.Endpoint)

	_, err = c.ThreatTypes(context.Background())
	require.ErrorAs(t, err, &de)
}

func TestFactoryIncidents(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /incidents/factory/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, 200, `{"incidents":[{"id":9,"threatLevel":2,"factory":{"id":1,"name":"평택 공장"}},{"id":10}]}`)
	})
	c, rec := newTestClient(t, mux)

	f, incs, err := c.FactoryIncidents(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.NoFactoriesAvailable(), f)
	assert.Empty(t, incs)
	assert.Zero(t, rec.count("GET /incidents/factory/-1"))

	f, incs, err = c.FactoryIncidents(context.Background(), []domain.Factory{{ID: 1, Name: "평택 공장"}, {ID: 2, Name: "울산 공장"}})
	require.NoError(t, err)
	assert.Equal(t, 1, f.ID)
	require.Len(t, incs, 2)
	assert.Equal(t, 9, incs[0].ID)
	assert.Equal(t, domain.RiskTierMedium, incs[0].RiskTier())
	assert.Equal(t, domain.Factory{}, incs[1].Factory)
	assert.Equal(t, domain.DateOf(2024, time.March, 5), incs[1].Date)
	assert.Equal(t, 1, rec.count("GET /incidents/factory/1"))
}

func TestIncidentDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /incidents/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "3" {
			writeBody(w, 404, `{"detail":"Not found"}`)
			return
		}
		writeBody(w, 200, `{"id":3,"worker":{"id":1,"name":"김철수"},"threatLevel":5,`+
			`"checks":{"안전모 착용":true,"안전화 착용":false},"date":"2024-03-01",`+
			`"imageUrl":"http://x/image/a.png"}`)
	})
	c, _ := newTestClient(t, mux)

	inc, err := c.Incident(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "김철수", inc.Worker.Name)
	assert.Equal(t, []string{"안전모 착용", "안전화 착용"}, inc.Checks.Questions())
	assert.JSONEq(t, `"http://x/image/a.png"`, string(inc.AdditionalData["imageUrl"]))
	assert.Equal(t, "2024. 3. 1.", inc.RelatedInfo()[7].Value)

	_, err = c.Incident(context.Background(), 4)
	assert.ErrorIs(t, err, ErrNotFound)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Not found", apiErr.Message)
}

func TestLoginStoresTokenAndSignsRequests(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("username") != "testuser" || r.PostForm.Get("password") != "Test1234!" {
			writeBody(w, 401, `{"detail":"Invalid username or password"}`)
			return
		}
		writeBody(w, 200, `{"access_token":"tok-1","token_type":"Bearer"}`)
	})
	mux.HandleFunc("GET /incidents", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			writeBody(w, 401, `{"detail":"Could not validate credentials"}`)
			return
		}
		writeBody(w, 200, `{"incidents":[]}`)
	})
	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	_, err := c.Incidents(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = c.Login(ctx, "testuser", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, c.Session().Token())

	require.NoError(t, c.Login(ctx, "testuser", "Test1234!"))
	assert.Equal(t, "tok-1", c.Session().Token())
	incs, err := c.Incidents(ctx)
	require.NoError(t, err)
	assert.Empty(t, incs)

	c.Logout()
	assert.Empty(t, c.Session().Token())
}

func TestSignup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/user", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["username"] == "abc" {
			writeBody(w, 400, `{"detail":"Username must be at least 5 characters long"}`)
			return
		}
		writeBody(w, 201, `{"username":"`+body["username"]+`"}`)
	})
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, 200, `{"access_token":"tok-2","token_type":"Bearer"}`)
	})
	c, rec := newTestClient(t, mux)
	ctx := context.Background()

	assert.ErrorIs(t, c.Signup(ctx, SignupForm{Username: "newuser", Password: "x"}), ErrSignupIncomplete)
	assert.ErrorIs(t, c.Signup(ctx, SignupForm{Username: "newuser", Password: "Password123!", ConfirmPassword: "Password123?"}), ErrPasswordMismatch)
	assert.Zero(t, rec.count("POST /auth/user"))

	err := c.Signup(ctx, SignupForm{Username: "abc", Password: "Password123!", ConfirmPassword: "Password123!"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Username must be at least 5 characters long", apiErr.Message)

	require.NoError(t, c.Signup(ctx, SignupForm{Username: "newuser", Password: "Password123!", ConfirmPassword: "Password123!"}))
	assert.Equal(t, "tok-2", c.Session().Token())
}

func TestUploadImageChunks(t *testing.T) {
	type put struct {
		contentType, contentRange string
		size                      int
	}
	var (
		mu   sync.Mutex
		puts []put
	)
	mux := http.NewServeMux()
	var srvURL string
	mux.HandleFunc("POST /image/uploadURL", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "image/png", body["fileType"])
		writeBody(w, 200, `{"presignedUrl":"`+srvURL+`/image/upload/k.png?sig=s","fileUrl":"`+srvURL+`/image/k.png"}`)
	})
	mux.HandleFunc("PUT /image/upload/{key}", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		puts = append(puts, put{r.Header.Get("Content-Type"), r.Header.Get("Content-Range"), len(b)})
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	rec := &recorder{}
	srv := httptest.NewServer(rec.wrap(mux))
	t.Cleanup(srv.Close)
	srvURL = srv.URL
	c, err := New(srv.URL, nil)
	require.NoError(t, err)

	data := append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{7}, ChunkSize*2+ChunkSize/2)...)
	var progress []float64
	fileURL, err := c.UploadImage(context.Background(), "a.png", data, func(p float64) { progress = append(progress, p) })
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/image/k.png", fileURL)

	total := len(data)
	require.Len(t, puts, 3)
	assert.Equal(t, put{"image/png", "bytes 0-1048575/" + itoa(total), ChunkSize}, puts[0])
	assert.Equal(t, put{"image/png", "bytes 1048576-2097151/" + itoa(total), ChunkSize}, puts[1])
	assert.Equal(t, "bytes 2097152-"+itoa(total-1)+"/"+itoa(total), puts[2].contentRange)
	assert.Equal(t, total-2*ChunkSize, puts[2].size)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 2.0 / 3, 1}, progress, 1e-9)

	_, err = c.UploadImage(context.Background(), "a.txt", []byte("hello"), nil)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
	_, err = c.UploadImage(context.Background(), "big.png", append(data, make([]byte, MaxUploadBytes)...), nil)
	assert.ErrorIs(t, err, ErrImageTooLarge)
	assert.Equal(t, MsgImageTooLarge, UploadMessage(err))
	assert.Equal(t, MsgUnsupportedImage, UploadMessage(fmt.Errorf("wrapped: %w", ErrUnsupportedImage)))
	assert.Equal(t, 1, rec.count("POST /image/uploadURL"))
}

func TestFileSessionPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tikkeul", "token")
	s := NewFileSession(path)
	assert.Empty(t, s.Token())

	s.SetToken("tok-3")
	assert.Equal(t, "tok-3", NewFileSession(path).Token())

	s.Clear()
	assert.Empty(t, s.Token())
	assert.Empty(t, NewFileSession(path).Token())
}

func TestFileSessionLogsFailedWrite(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(zap.NewNop()) })

	notADir := filepath.Join(t.TempDir(), "plain-file")
	require.NoError(t, os.WriteFile(notADir, nil, 0o600))

	s := NewFileSession(filepath.Join(notADir, "token"))
	s.SetToken("tok-4")

	assert.Equal(t, "tok-4", s.Token())
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "token not saved")
}

func itoa(n int) string { return strconv.Itoa(n) }
