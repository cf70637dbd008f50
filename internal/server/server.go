// Package server implements the sigil HTTP server.
//
// A single endpoint serves identicons: GET /{input} renders the identicon
// for the path segment (GET / renders the empty input). Query parameters:
//
//   - w: image width in pixels; must be a multiple of (rows+1)*2 and at
//     most the configured maximum (default 120, max 600)
//   - inverted: swap foreground and background colours
//
// A path segment that is already a 32-character hex digest is used
// directly instead of being hashed, so clients can precompute digests.
// The digest doubles as the ETag: requests whose If-None-Match contains
// it are answered 304 without rendering. Rendered PNGs are stored in the
// configured cache backend keyed by digest, width and inversion.
package server

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"image/png"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/sigilgen/sigil/pkg/cache"
	"github.com/sigilgen/sigil/pkg/errors"
	"github.com/sigilgen/sigil/pkg/sigil"
)

// Clients may cache identicons essentially forever: the image is a pure
// function of the URL.
const cacheControl = "max-age=315360000"

// Server serves identicon images over HTTP.
type Server struct {
	theme        *sigil.Theme
	cache        cache.Cache
	logger       *log.Logger
	defaultWidth int
	maxWidth     int
	cacheTTL     time.Duration
}

// Options configures a Server. Zero-valued fields fall back to the
// reference defaults (120px default width, 600px maximum, no caching).
type Options struct {
	Cache        cache.Cache
	DefaultWidth int
	MaxWidth     int
	CacheTTL     time.Duration
}

// New creates a Server for the given theme. The theme is validated once
// here so that request handling never hits a configuration error.
func New(theme *sigil.Theme, logger *log.Logger, opts Options) (*Server, error) {
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.DefaultWidth == 0 {
		opts.DefaultWidth = 120
	}
	if opts.MaxWidth == 0 {
		opts.MaxWidth = 600
	}

	return &Server{
		theme:        theme,
		cache:        opts.Cache,
		logger:       logger,
		defaultWidth: opts.DefaultWidth,
		maxWidth:     opts.MaxWidth,
		cacheTTL:     opts.CacheTTL,
	}, nil
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(s.logger))

	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	r.Get("/", s.handleSigil)
	r.Get("/{input}", s.handleSigil)

	return r
}

func (s *Server) handleSigil(w http.ResponseWriter, r *http.Request) {
	input := chi.URLParam(r, "input")

	if err := errors.ValidateInput(input); err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
		return
	}

	width := s.defaultWidth
	if raw := r.URL.Query().Get("w"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid w parameter: %q", raw), http.StatusBadRequest)
			return
		}
		width = parsed
	}
	if err := errors.ValidateWidth(width, s.theme.Rows, s.maxWidth); err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
		return
	}

	inverted := false
	if raw := r.URL.Query().Get("inverted"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid inverted parameter: %q", raw), http.StatusBadRequest)
			return
		}
		inverted = parsed
	}

	digest := s.digestFor(input)
	etag := hex.EncodeToString(digest[:])

	// The client already has this image cached: return early without
	// rendering anything.
	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	key := cache.ImageKey(etag, width, inverted)
	if data, hit, err := s.cache.Get(r.Context(), key); err != nil {
		s.logger.Warn("cache get failed", "key", key, "err", err)
	} else if hit {
		s.writeImage(w, etag, data)
		return
	}

	data, err := s.render(digest, width, inverted)
	if err != nil {
		s.logger.Error("render failed", "etag", etag, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := s.cache.Set(r.Context(), key, data, s.cacheTTL); err != nil {
		s.logger.Warn("cache set failed", "key", key, "err", err)
	}

	s.writeImage(w, etag, data)
}

// digestFor resolves the request path to a 16-byte digest: a 32-char hex
// path is decoded directly, anything else is hashed.
func (s *Server) digestFor(input string) [16]byte {
	if errors.IsHexDigest(input) {
		var digest [16]byte
		decoded, err := hex.DecodeString(input)
		if err == nil {
			copy(digest[:], decoded)
			return digest
		}
	}
	return sigil.Hash([]byte(input))
}

// render rasterizes and PNG-encodes the identicon for a digest.
func (s *Server) render(digest [16]byte, width int, inverted bool) ([]byte, error) {
	sg, err := sigil.FromHash(s.theme, digest)
	if err != nil {
		return nil, err
	}
	if inverted {
		sg = sg.Invert()
	}

	img, err := sg.ToImage(width)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func (s *Server) writeImage(w http.ResponseWriter, etag string, data []byte) {
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", cacheControl)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}
