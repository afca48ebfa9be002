package rest

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

// pathUUID parses the named path wildcard as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// parseDate accepts a calendar date (2006-01-02), read in the caller's time
// zone, or an RFC 3339 instant. An empty value yields the zero time, which
// services reject as missing.
func parseDate(r *http.Request, field, value string, fallback *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	loc := ctxutil.LocationFromCtx(r.Context(), fallback)
	if t, err := time.ParseInLocation(time.DateOnly, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, domain.NewValidationError(field, "must be a date (YYYY-MM-DD) or an RFC 3339 time")
}

// queryLimit reads the optional "limit" query parameter. Zero means the
// service default.
func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError("limit", "must be a non-negative integer")
	}
	return n, nil
}

// queryCursor reads the optional opaque "cursor" query parameter.
func queryCursor(r *http.Request) (*domain.PageCursor, error) {
	raw := r.URL.Query().Get("cursor")
	if raw == "" {
		return nil, nil
	}
	c, err := decodeCursor(raw)
	if err != nil {
		return nil, domain.NewValidationError("cursor", "malformed")
	}
	return c, nil
}

// encodeCursor renders c as base64url("<created_at>|<id>"). A nil cursor
// encodes to nil, the last-page marker.
func encodeCursor(c *domain.PageCursor) *string {
	if c == nil {
		return nil
	}
	raw := c.CreatedAt.UTC().Format(time.RFC3339Nano) + "|" + c.ID.String()
	s := base64.RawURLEncoding.EncodeToString([]byte(raw))
	return &s
}

func decodeCursor(s string) (*domain.PageCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	ts, id, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil, errMalformedCursor
	}
	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, err
	}
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return &domain.PageCursor{CreatedAt: createdAt, ID: parsedID}, nil
}

var errMalformedCursor = errors.New("cursor: missing separator")
