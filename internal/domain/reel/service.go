package reel

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/url"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"samadhan-setu/services/reel-api/internal/config"
	"samadhan-setu/services/reel-api/internal/infrastructure/metrics"
	"samadhan-setu/services/reel-api/internal/infrastructure/observability"
)

const (
	videoField = "video"

	// Objects are always stored under {id}.mp4 with this content type,
	// regardless of what the client declared.
	objectSuffix      = ".mp4"
	objectContentType = "video/mp4"

	defaultListLimit = 50
	maxListLimit     = 200
)

// Repository defines the record store contract: rows keyed by an
// identifier the store assigns at create time.
type Repository interface {
	Create(ctx context.Context, rec *Reel) error
	SetVideoURL(ctx context.Context, id, url string) error
	GetByID(ctx context.Context, id string) (*Reel, error)
	List(ctx context.Context, limit int) ([]Reel, error)
}

// Storage defines the blob store contract: upload-by-name with overwrite
// semantics, and public URL derivation from a stored name.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PublicURL(key string) (string, bool)
	Health(ctx context.Context) error
}

// Service is the upload orchestrator. It sequences validation, the
// placeholder record insert, the object upload, and the final record
// update into one request-scoped pipeline.
type Service struct {
	cfg     *config.Config
	repo    Repository
	storage Storage
	log     zerolog.Logger
}

func NewService(cfg *config.Config, repo Repository, storage Storage, log zerolog.Logger) *Service {
	return &Service{
		cfg:     cfg,
		repo:    repo,
		storage: storage,
		log:     log.With().Str("component", "reel-service").Logger(),
	}
}

// Publish runs the pipeline for one decoded upload form:
//
//	received -> validated -> record created -> uploaded -> published
//
// Validation failures reject the request before any store is touched.
// Failures after the record insert are reported as failures and may
// leave an orphaned placeholder; no rollback is attempted.
func (s *Service) Publish(ctx context.Context, form *Form) (*Reel, error) {
	ctx, span := observability.StartPublishSpan(ctx)
	defer span.End()

	meta, err := ValidateMeta(form)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}
	observability.AddStateTransition(span, string(StateReceived), string(StateValidated))

	header := form.File(videoField)
	if header == nil {
		err := rejected(KindValidation, "No video uploaded", nil)
		observability.RecordError(span, err)
		return nil, err
	}

	// The whole payload is buffered for the duration of the request.
	// This trades memory for a simple upload path and bounds safe
	// concurrency by available memory; streaming to storage is the
	// known improvement.
	data, err := readPayload(header)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}
	sniffed := mimetype.Detect(data).String()

	// A request whose body never completed must not create a record.
	if ctxErr := ctx.Err(); ctxErr != nil {
		err := rejected(KindInternal, "Internal server error", ctxErr)
		observability.RecordError(span, err)
		return nil, err
	}

	rec := &Reel{
		Title:       meta.Title,
		Description: meta.Description,
		SubmittedBy: meta.SubmittedBy,
		VideoURL:    "",
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		failure := failed(KindRecordStore, err.Error(), err)
		s.fail(span, failure, sniffed, "record create failed, nothing stored")
		return nil, failure
	}
	span.SetAttributes(observability.ReelAttributes(rec.ID, rec.SubmittedBy, int64(len(data)))...)
	observability.AddStateTransition(span, string(StateValidated), string(StateRecordCreated))

	key := rec.ID + objectSuffix
	if err := s.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), objectContentType); err != nil {
		failure := failed(KindBlobStore, err.Error(), err)
		s.fail(span, failure, sniffed, "upload failed, placeholder record orphaned")
		return nil, failure
	}
	observability.AddStateTransition(span, string(StateRecordCreated), string(StateUploaded))

	publicURL, ok := s.storage.PublicURL(key)
	if !ok {
		failure := failed(KindBlobStore, "Failed to get public URL", nil)
		s.fail(span, failure, sniffed, "no public URL, stored object unreferenced")
		return nil, failure
	}
	s.checkMediaHost(publicURL)

	if err := s.repo.SetVideoURL(ctx, rec.ID, publicURL); err != nil {
		failure := failed(KindRecordStore, err.Error(), err)
		s.fail(span, failure, sniffed, "finalize failed, stored object unreferenced")
		return nil, failure
	}
	rec.VideoURL = publicURL
	rec.Status = StatusPublished
	observability.AddStateTransition(span, string(StateUploaded), string(StatePublished))

	metrics.RecordUpload(sniffed, string(StatePublished), int64(len(data)))
	s.log.Info().
		Str("id", rec.ID).
		Str("key", key).
		Str("sniffed_type", sniffed).
		Int("bytes", len(data)).
		Msg("reel published")

	return rec, nil
}

// Get returns one reel by id, or nil when unknown.
func (s *Service) Get(ctx context.Context, id string) (*Reel, error) {
	return s.repo.GetByID(ctx, id)
}

// Recent lists the newest reels.
func (s *Service) Recent(ctx context.Context, limit int) ([]Reel, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	return s.repo.List(ctx, limit)
}

// StorageHealth reports whether the blob store is reachable.
func (s *Service) StorageHealth(ctx context.Context) error {
	return s.storage.Health(ctx)
}

func (s *Service) fail(span trace.Span, failure *PipelineError, contentType, msg string) {
	observability.RecordError(span, failure)
	metrics.RecordUpload(contentType, string(StateFailed), 0)
	s.log.Error().Err(failure).Str("kind", string(failure.Kind)).Msg(msg)
}

func (s *Service) checkMediaHost(raw string) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return
	}
	if !s.cfg.IsAllowedMediaHost(parsed.Hostname()) {
		s.log.Warn().
			Str("host", parsed.Hostname()).
			Msg("public media URL host is outside the configured allowlist")
	}
}

func readPayload(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, rejected(KindInternal, "Failed to read video file", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, rejected(KindInternal, "Failed to read video file", err)
	}
	return data, nil
}
