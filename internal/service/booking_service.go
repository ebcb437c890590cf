package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	apperrors "superdaily/internal/errors"
	"superdaily/internal/metrics"
	"superdaily/internal/model"
	"superdaily/internal/repository"
)

const timestampLayout = "2006-01-02 15:04:05"

// trimCutset is the whitespace stripped from text inputs, NUL and VT included.
const trimCutset = " \t\n\r\x00\x0B"

// BookingService creates bookings from raw request bodies.
type BookingService interface {
	Create(ctx context.Context, body []byte) (int64, error)
}

type bookingService struct {
	repo repository.BookingRepository
	now  func() time.Time
}

// NewBookingService creates a new booking service.
func NewBookingService(repo repository.BookingRepository) BookingService {
	return &bookingService{repo: repo, now: time.Now}
}

// Create validates body, builds the insert row and writes it.
func (s *bookingService) Create(ctx context.Context, body []byte) (int64, error) {
	row, err := ParseBooking(body, s.now())
	if err != nil {
		metrics.IncBookingCreate("rejected")
		return 0, err
	}

	if err := s.repo.Ping(ctx); err != nil {
		metrics.IncBookingCreate("failed")
		return 0, apperrors.Wrap(apperrors.ErrDBConnect, err)
	}

	id, err := s.repo.Insert(ctx, row)
	if err != nil {
		metrics.IncBookingCreate("failed")
		return 0, apperrors.Wrap(apperrors.ErrInsertFailed, err)
	}

	metrics.IncBookingCreate("created")
	return id, nil
}

// ParseBooking turns a request body into the ordered insert row. Keys outside
// model.BookingColumns are dropped; created_at and updated_at default to now.
func ParseBooking(body []byte, now time.Time) (model.BookingRow, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, apperrors.ErrInvalidBody
	}

	values := make(map[string]model.BookingValue, len(fields))
	for _, col := range model.BookingColumns {
		raw, ok := fields[col]
		if !ok {
			continue
		}
		v, err := model.ParseBookingValue(raw)
		if err != nil {
			return nil, apperrors.ErrInvalidBody
		}
		values[col] = v
	}

	for _, col := range model.RequiredBookingColumns {
		v, ok := values[col]
		if !ok || v.IsNull() || (v.Kind == model.KindString && v.Str == "") {
			return nil, &apperrors.MissingFieldError{Field: col}
		}
	}

	row := make(model.BookingRow, 0, len(values)+2)
	for _, col := range model.BookingColumns {
		v, ok := values[col]
		if !ok {
			continue
		}
		if col == model.ColumnAddressDetails {
			v = normalizeAddressDetails(fields[col], v)
		}
		row = append(row, model.BookingField{Column: col, Value: v})
	}

	stamp := model.StringValue(now.Format(timestampLayout))
	for _, col := range []string{model.ColumnCreatedAt, model.ColumnUpdatedAt} {
		if v, ok := row.Get(col); !ok || v.IsEmpty() {
			row = row.Set(col, stamp)
		}
	}
	return row, nil
}

// normalizeAddressDetails makes address_details storable in a JSON column.
// Structured input was already compacted by ParseBookingValue.
func normalizeAddressDetails(raw json.RawMessage, v model.BookingValue) model.BookingValue {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return v
	}

	trimmed := strings.Trim(v.Str, trimCutset)
	if trimmed == "" {
		return model.NullValue()
	}
	if json.Valid([]byte(trimmed)) {
		return model.StringValue(trimmed)
	}

	// TODO: product owner to decide whether non-JSON text should be rejected
	// with 422 instead of wrapped under "address".
	wrapped, err := marshalUnescaped(map[string]string{"address": v.Str})
	if err != nil {
		return v
	}
	return model.StringValue(wrapped)
}

func marshalUnescaped(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
