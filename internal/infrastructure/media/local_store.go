package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/quetzart/directory-api/internal/api/metrics"
	"github.com/quetzart/directory-api/internal/core/domain"
)

const defaultExt = "jpg"

var extPattern = regexp.MustCompile(`^[a-zA-Z0-9+-]{1,16}$`)

// LocalStore writes images into a single flat directory served under a
// public base URL.
type LocalStore struct {
	dir     string
	baseURL string
	newName func() string
	log     zerolog.Logger
}

func NewLocalStore(dir, publicBaseURL string, log zerolog.Logger) *LocalStore {
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		newName: func() string { return strings.ReplaceAll(uuid.NewString(), "-", "") },
		log:     log,
	}
}

// Store decodes a "<header>,<base64>" payload, writes it under a random name
// and returns "<base>/<name>.<ext>".
func (s *LocalStore) Store(_ context.Context, dataURL string) (string, error) {
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok {
		metrics.MediaErrorsTotal.WithLabelValues("malformed").Inc()
		return "", fmt.Errorf("%w: missing data separator", domain.ErrInvalidImage)
	}

	data, err := decodeBase64(payload)
	if err != nil {
		metrics.MediaErrorsTotal.WithLabelValues("decode").Inc()
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		metrics.MediaErrorsTotal.WithLabelValues("write").Inc()
		return "", fmt.Errorf("create media dir: %w", err)
	}

	name := s.newName() + "." + extension(header)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		metrics.MediaErrorsTotal.WithLabelValues("write").Inc()
		return "", fmt.Errorf("write media file: %w", err)
	}

	metrics.MediaStoredBytes.Observe(float64(len(data)))
	s.log.Debug().Str("file", name).Int("bytes", len(data)).Msg("media stored")

	return s.baseURL + "/" + name, nil
}

// extension pulls the subtype out of "data:image/png;base64". Anything that
// is not a plain token falls back to jpg.
func extension(header string) string {
	_, rest, ok := strings.Cut(header, "image/")
	if !ok {
		return defaultExt
	}
	ext, _, _ := strings.Cut(rest, ";")
	if !extPattern.MatchString(ext) {
		return defaultExt
	}
	return ext
}

func decodeBase64(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, fmt.Errorf("empty payload")
	}
	if data, err := base64.StdEncoding.DecodeString(payload); err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
}
