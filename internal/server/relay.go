package server

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/loregate/loregate/internal/resolve"
	"github.com/loregate/loregate/internal/upstream"
)

// handleRelay is the single relay pipeline: resolve, build, fetch, relay.
// All failures are intercepted here; nothing escapes unhandled and no
// partial response is ever written.
func (s *Server) handleRelay(w http.ResponseWriter, r *http.Request) {
	log := logrus.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"path":       r.URL.Path,
	})

	if r.URL.Path == "/" {
		s.writeHelp(w, r)
		return
	}

	parsed, err := resolve.Resolve(r.URL.RequestURI())
	if err != nil {
		s.writeFailure(w, log, err)
		return
	}

	target := upstream.BuildURL(s.cfg.DataBaseURL, s.cfg.DistBaseURL, parsed)
	log = log.WithField("upstream", target)

	body, err := s.client.Fetch(r.Context(), target)
	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		// Valid request, missing data. Plain text, no help payload.
		log.WithField("status", statusErr.Code).Info("[Gateway] upstream miss")
		if parsed.Kind == resolve.KindBulk {
			writeText(w, http.StatusNotFound, "Category name not found")
		} else {
			writeText(w, http.StatusNotFound, "File not found")
		}
		return
	}
	if err != nil {
		s.writeFailure(w, log, err)
		return
	}

	switch parsed.Kind {
	case resolve.KindBulk:
		data, err := gunzip(body, s.cfg.MaxResponseSize)
		if err != nil {
			s.writeFailure(w, log, fmt.Errorf("decompress bulk archive: %w", err))
			return
		}
		writeJSON(w, data)
	default:
		var buf bytes.Buffer
		if err := json.Indent(&buf, body, "", "  "); err != nil {
			s.writeFailure(w, log, fmt.Errorf("upstream body is not valid JSON: %w", err))
			return
		}
		writeJSON(w, buf.Bytes())
	}
	log.Info("[Gateway] relayed")
}

// writeFailure maps an error onto the response contract: malformed requests
// are 400s, everything else is a 500. Both carry the static help payload.
func (s *Server) writeFailure(w http.ResponseWriter, log *logrus.Entry, err error) {
	var invalid *resolve.InvalidURLError
	if errors.As(err, &invalid) {
		log.WithError(err).Warn("[Gateway] malformed request")
		s.writeError(w, http.StatusBadRequest, invalid.Reason)
		return
	}
	log.WithError(err).Error("[Gateway] relay failed")
	s.writeError(w, http.StatusInternalServerError, err.Error())
}

// gunzip decompresses a bulk archive, capped at maxSize decompressed bytes.
func gunzip(data []byte, maxSize int64) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out, err := io.ReadAll(io.LimitReader(zr, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > maxSize {
		return nil, fmt.Errorf("decompressed archive exceeds maximum size (%d bytes)", maxSize)
	}
	return out, nil
}
