package pumpfun

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// DefaultIPFSEndpoint is the metadata hosting endpoint used by Pump.fun.
const DefaultIPFSEndpoint = "https://pump.fun/api/ipfs"

// CreateTokenMetadata describes the token being launched. Image holds the
// raw file bytes; ImageName is the multipart filename reported to the host.
type CreateTokenMetadata struct {
	Name        string
	Symbol      string
	Description string
	Image       []byte
	ImageName   string
	Twitter     string
	Telegram    string
	Website     string
}

// TokenMetadata is the hosted metadata document echoed back by the service.
type TokenMetadata struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// TokenMetadataResponse is the upload result. MetadataURI is the content
// URI passed to the create instruction.
type TokenMetadataResponse struct {
	Metadata    TokenMetadata `json:"metadata"`
	MetadataURI string        `json:"metadataUri"`
}

// MetadataUploader publishes token metadata and returns its content URI.
type MetadataUploader interface {
	Upload(ctx context.Context, meta CreateTokenMetadata) (*TokenMetadataResponse, error)
}

// IPFSUploader uploads token metadata to the Pump.fun IPFS gateway via a
// multipart form POST.
type IPFSUploader struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewIPFSUploader creates an uploader against the default endpoint.
func NewIPFSUploader(logger *zap.Logger) *IPFSUploader {
	return &IPFSUploader{
		endpoint:   DefaultIPFSEndpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.Named("ipfs-uploader"),
	}
}

// NewIPFSUploaderWithEndpoint creates an uploader against a custom endpoint.
func NewIPFSUploaderWithEndpoint(endpoint string, httpClient *http.Client, logger *zap.Logger) *IPFSUploader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &IPFSUploader{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger.Named("ipfs-uploader"),
	}
}

// Upload publishes the metadata document and image. Any transport or
// encoding failure surfaces as *UploadMetadataError.
func (u *IPFSUploader) Upload(ctx context.Context, meta CreateTokenMetadata) (*TokenMetadataResponse, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"name":        meta.Name,
		"symbol":      meta.Symbol,
		"description": meta.Description,
		"twitter":     meta.Twitter,
		"telegram":    meta.Telegram,
		"website":     meta.Website,
		"showName":    "true",
	}
	for field, value := range fields {
		if err := writer.WriteField(field, value); err != nil {
			return nil, &UploadMetadataError{Err: fmt.Errorf("write form field %s: %w", field, err)}
		}
	}

	if len(meta.Image) > 0 {
		name := meta.ImageName
		if name == "" {
			name = "image.png"
		}
		part, err := writer.CreateFormFile("file", name)
		if err != nil {
			return nil, &UploadMetadataError{Err: fmt.Errorf("create image part: %w", err)}
		}
		if _, err := part.Write(meta.Image); err != nil {
			return nil, &UploadMetadataError{Err: fmt.Errorf("write image part: %w", err)}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, &UploadMetadataError{Err: fmt.Errorf("finalize form: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, body)
	if err != nil {
		return nil, &UploadMetadataError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	u.logger.Debug("Uploading token metadata",
		zap.String("name", meta.Name),
		zap.String("symbol", meta.Symbol),
		zap.Int("image_bytes", len(meta.Image)))

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, &UploadMetadataError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &UploadMetadataError{
			Err: fmt.Errorf("unexpected status %s: %s", strconv.Itoa(resp.StatusCode), string(payload)),
		}
	}

	result := &TokenMetadataResponse{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, &UploadMetadataError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if result.MetadataURI == "" {
		return nil, &UploadMetadataError{Err: fmt.Errorf("response is missing metadata URI")}
	}

	u.logger.Debug("Token metadata uploaded", zap.String("uri", result.MetadataURI))
	return result, nil
}
