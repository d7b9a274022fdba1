// Package storetest points a store.Minio at an in-process S3 endpoint.
package storetest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"piper-tts/pkg/store"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const Bucket = "speech"

// NewMinio serves handler as the object store. The region is fixed so the
// client never asks for the bucket location, and retries are off so a failing
// handler is hit once.
func NewMinio(t testing.TB, handler http.Handler) *store.Minio {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := minio.New(srv.Listener.Addr().String(), &minio.Options{
		Creds:      credentials.NewStaticV4("access", "secret", ""),
		Secure:     false,
		Region:     "us-east-1",
		MaxRetries: 1,
	})
	if err != nil {
		t.Fatalf("minio new client: %v", err)
	}
	return &store.Minio{Client: client, Bucket: Bucket}
}

// Upload is one PUT seen by the recorder.
type Upload struct {
	Path        string
	ContentType string
}

// Recorder accepts every PUT and remembers it.
type Recorder struct {
	mu      sync.Mutex
	uploads []Upload
}

func (r *Recorder) Uploads() []Upload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Upload(nil), r.uploads...)
}

func (r *Recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method == http.MethodPut {
		r.mu.Lock()
		r.uploads = append(r.uploads, Upload{Path: req.URL.Path, ContentType: req.Header.Get("Content-Type")})
		r.mu.Unlock()
	}
	w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
	w.WriteHeader(http.StatusOK)
}

// Failing answers every request with 500.
func Failing() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
}
