package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/internal/utils"
	"github.com/MKhiriev/go-face-register/models"
	"github.com/go-resty/resty/v2"
)

type httpRegisterAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRegisterAdapter constructs the resty implementation of
// [RegisterAdapter]. A zero cfg.RequestTimeout leaves uploads without a
// deadline other than the caller's context.
func NewHTTPRegisterAdapter(cfg config.Adapter, logger *logger.Logger) RegisterAdapter {
	return &httpRegisterAdapter{
		client: utils.NewHTTPClient(cfg.RequestTimeout),
		logger: logger,
	}
}

// ResolveEndpoint joins the receiver base address and the upload route into
// an absolute URL. A base without scheme is treated as http.
func ResolveEndpoint(base, path string) (string, error) {
	baseURL, err := normalizeBaseURL(base)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	if path == "" {
		return baseURL, nil
	}

	return baseURL + "/" + strings.TrimLeft(path, "/"), nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [RegisterAdapter].
func (h *httpRegisterAdapter) Register(ctx context.Context, endpoint string, req models.RegisterRequest) (models.RegisterResult, error) {
	fields := make([]*resty.MultipartField, 0, len(req.Images))
	for _, img := range req.Images {
		fields = append(fields, &resty.MultipartField{
			Param:       models.FieldImages,
			FileName:    img.FileName(),
			ContentType: models.ImageContentType,
			Reader:      bytes.NewReader(img.Data),
		})
	}

	h.logger.Debug().
		Str("endpoint", endpoint).
		Str("user_id", req.UserID.String()).
		Int("images", req.Images.Len()).
		Int("bytes", req.Images.TotalBytes()).
		Msg("uploading registration batch")

	resp, err := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{models.FieldUserID: req.UserID.String()}).
		SetMultipartFields(fields...).
		Post(endpoint)
	if err != nil {
		return models.RegisterResult{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	body := resp.Body()
	statusErr := mapStatus(resp.StatusCode(), body)

	pretty, err := utils.PrettyJSON(body)
	if err != nil {
		return models.RegisterResult{StatusCode: resp.StatusCode()},
			errors.Join(fmt.Errorf("%w: %w", ErrMalformedResponse, err), statusErr)
	}

	if statusErr != nil {
		h.logger.Warn().Err(statusErr).Int("status", resp.StatusCode()).Msg("registration endpoint answered with an error status")
	}

	return models.RegisterResult{
		StatusCode: resp.StatusCode(),
		Body:       bytes.TrimSpace(body),
		Pretty:     pretty,
	}, nil
}
