package pumpfun

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIPFSUploaderUpload(t *testing.T) {
	var gotForm map[string]string
	var gotFileName string
	var gotFile []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		gotForm = map[string]string{}
		for field, values := range r.MultipartForm.Value {
			gotForm[field] = values[0]
		}
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFileName = header.Filename
		gotFile = make([]byte, header.Size)
		_, err = file.Read(gotFile)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"metadata": {"name": "Moon Token", "symbol": "MOON", "description": "to the moon", "image": "ipfs://img"},
			"metadataUri": "ipfs://QmTestMetadata"
		}`))
	}))
	defer server.Close()

	uploader := NewIPFSUploaderWithEndpoint(server.URL, server.Client(), zap.NewNop())
	resp, err := uploader.Upload(context.Background(), CreateTokenMetadata{
		Name:        "Moon Token",
		Symbol:      "MOON",
		Description: "to the moon",
		Image:       []byte{0x89, 'P', 'N', 'G'},
		ImageName:   "moon.png",
		Twitter:     "https://x.com/moon",
		Telegram:    "https://t.me/moon",
		Website:     "https://moon.example",
	})
	require.NoError(t, err)

	assert.Equal(t, "ipfs://QmTestMetadata", resp.MetadataURI)
	assert.Equal(t, "Moon Token", resp.Metadata.Name)
	assert.Equal(t, "MOON", resp.Metadata.Symbol)

	assert.Equal(t, "Moon Token", gotForm["name"])
	assert.Equal(t, "MOON", gotForm["symbol"])
	assert.Equal(t, "to the moon", gotForm["description"])
	assert.Equal(t, "https://x.com/moon", gotForm["twitter"])
	assert.Equal(t, "https://t.me/moon", gotForm["telegram"])
	assert.Equal(t, "https://moon.example", gotForm["website"])
	assert.Equal(t, "true", gotForm["showName"])
	assert.Equal(t, "moon.png", gotFileName)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, gotFile)
}

func TestIPFSUploaderImageOptional(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("file")
		assert.Error(t, err, "no image part expected")
		_, _ = w.Write([]byte(`{"metadataUri": "ipfs://QmNoImage"}`))
	}))
	defer server.Close()

	uploader := NewIPFSUploaderWithEndpoint(server.URL, server.Client(), zap.NewNop())
	resp, err := uploader.Upload(context.Background(), CreateTokenMetadata{Name: "x", Symbol: "X"})
	require.NoError(t, err)
	assert.Equal(t, "ipfs://QmNoImage", resp.MetadataURI)
}

func TestIPFSUploaderNon200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	uploader := NewIPFSUploaderWithEndpoint(server.URL, server.Client(), zap.NewNop())
	_, err := uploader.Upload(context.Background(), CreateTokenMetadata{Name: "x", Symbol: "X"})
	require.Error(t, err)

	var uploadErr *UploadMetadataError
	require.ErrorAs(t, err, &uploadErr)
	assert.Contains(t, uploadErr.Error(), "429")
}

func TestIPFSUploaderMissingURI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"metadata": {"name": "x"}}`))
	}))
	defer server.Close()

	uploader := NewIPFSUploaderWithEndpoint(server.URL, server.Client(), zap.NewNop())
	_, err := uploader.Upload(context.Background(), CreateTokenMetadata{Name: "x", Symbol: "X"})

	var uploadErr *UploadMetadataError
	require.ErrorAs(t, err, &uploadErr)
	assert.Contains(t, uploadErr.Error(), "metadata URI")
}

func TestIPFSUploaderTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse connections

	uploader := NewIPFSUploaderWithEndpoint(server.URL, nil, zap.NewNop())
	_, err := uploader.Upload(context.Background(), CreateTokenMetadata{Name: "x", Symbol: "X"})

	var uploadErr *UploadMetadataError
	require.ErrorAs(t, err, &uploadErr)
	assert.NotNil(t, errors.Unwrap(uploadErr))
}

func TestIPFSUploaderContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uploader := NewIPFSUploaderWithEndpoint(server.URL, server.Client(), zap.NewNop())
	_, err := uploader.Upload(ctx, CreateTokenMetadata{Name: "x", Symbol: "X"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
