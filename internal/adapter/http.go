package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-cipher-desk/internal/config"
	"github.com/MKhiriev/go-cipher-desk/internal/logger"
	"github.com/MKhiriev/go-cipher-desk/internal/utils"
	"github.com/MKhiriev/go-cipher-desk/models"
)

const (
	transformPath = "/encrypt"
	downloadPath  = "/download"

	// defaultDownloadName is used when a download is requested without a
	// filename.
	defaultDownloadName = "download.dat"
)

type httpTransformAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPTransformAdapter constructs an HTTP implementation of
// [TransformAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPTransformAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (TransformAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpTransformAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Transform implements [TransformAdapter]. It POSTs the snapshot as
// multipart/form-data to /encrypt. The file part is attached only when the
// snapshot carries a file payload.
func (h *httpTransformAdapter) Transform(ctx context.Context, snapshot models.FormSnapshot) (models.TransformResponse, error) {
	fields, err := formFields(snapshot)
	if err != nil {
		return models.TransformResponse{}, fmt.Errorf("build transform form: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(fields)
	if snapshot.File != nil {
		req.SetFileReader("file", snapshot.File.Name, bytes.NewReader(snapshot.File.Data))
	}

	h.logger.Debug().Str("func", "*httpTransformAdapter.Transform").
		Str("cipher", snapshot.CipherID.String()).
		Str("operation", string(snapshot.Operation)).
		Str("mode", snapshot.Mode.String()).
		Msg("sending transform request")

	resp, err := req.Post(transformPath)
	if err != nil {
		return models.TransformResponse{}, fmt.Errorf("transform request: %w", err)
	}

	if out, ok := decodeOutcome(resp.Body()); ok {
		h.logger.Debug().Str("func", "*httpTransformAdapter.Transform").
			Int("status", resp.StatusCode()).
			Bool("success", out.Success).
			Msg("transform outcome received")
		return out, nil
	}

	if err = mapHTTPError(resp); err != nil {
		return models.TransformResponse{}, err
	}

	return models.TransformResponse{}, fmt.Errorf("%w: status %d", ErrMalformedResponse, resp.StatusCode())
}

// Download implements [TransformAdapter]. It POSTs payload and filename as a
// urlencoded form to /download and returns the raw response bytes.
func (h *httpTransformAdapter) Download(ctx context.Context, payload, filename string) ([]byte, error) {
	if filename == "" {
		filename = defaultDownloadName
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/octet-stream").
		SetFormData(map[string]string{
			"data":     payload,
			"filename": filename,
		}).
		Post(downloadPath)
	if err != nil {
		return nil, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Str("func", "*httpTransformAdapter.Download").
		Str("filename", filename).
		Int("bytes", len(resp.Body())).
		Msg("download received")

	return resp.Body(), nil
}

// formFields flattens snapshot into the form fields the service reads.
// Parameter groups absent from the snapshot are omitted so the service
// applies its own defaults.
func formFields(snapshot models.FormSnapshot) (map[string]string, error) {
	fields := map[string]string{
		"cipher_type": snapshot.CipherID.String(),
		"operation":   string(snapshot.Operation),
		"input_mode":  snapshot.Mode.String(),
		"key":         snapshot.Key,
	}

	if snapshot.Mode == models.ModeText {
		fields["text"] = snapshot.Text
	}
	if snapshot.Key2 != "" {
		fields["key2"] = snapshot.Key2
	}

	if a := snapshot.Affine; a != nil {
		fields["affine_a"] = strconv.Itoa(a.A)
		fields["affine_b"] = strconv.Itoa(a.B)
	}

	if hp := snapshot.Hill; hp != nil {
		matrix, err := json.Marshal(hp.Matrix)
		if err != nil {
			return nil, fmt.Errorf("encode hill matrix: %w", err)
		}
		fields["hill_matrix"] = string(matrix)
	}

	if e := snapshot.Enigma; e != nil {
		fields["enigma_rotors"] = e.Rotors
		fields["enigma_positions"] = e.Positions
		fields["enigma_rings"] = e.Rings
		fields["enigma_reflector"] = e.Reflector
		fields["enigma_plugboard"] = e.Plugboard
	}

	return fields, nil
}
