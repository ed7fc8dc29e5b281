package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Row fila plana devuelta por Query: columna -> valor tal como lo entrega el driver.
// Los accesores normalizan las diferencias entre drivers (int64/bool en SQLite, numeric en PostgreSQL, []byte, ...).
type Row map[string]any

// String valor textual; NULL -> "".
func (r Row) String(col string) string {
	v, ok := r[col]
	if !ok || v == nil {
		return ""
	}
	switch x := v.(type) {
	case []byte:
		return string(x)
	case [16]byte: // uuid en pgx
		return uuid.UUID(x).String()
	}
	return cast.ToString(v)
}

// StringPtr nil si la columna es NULL.
func (r Row) StringPtr(col string) *string {
	if r[col] == nil {
		return nil
	}
	s := r.String(col)
	return &s
}

// Int64 valor entero; NULL -> 0.
func (r Row) Int64(col string) int64 {
	v := r[col]
	if b, ok := v.([]byte); ok {
		v = string(b)
	}
	return cast.ToInt64(v)
}

// Int valor entero de conteos.
func (r Row) Int(col string) int {
	return int(r.Int64(col))
}

// Bool acepta bool, 0/1 y "true"/"false".
func (r Row) Bool(col string) bool {
	v := r[col]
	if b, ok := v.([]byte); ok {
		v = string(b)
	}
	return cast.ToBool(v)
}

// Decimal valor numérico exacto; NULL o no parseable -> 0.
func (r Row) Decimal(col string) decimal.Decimal {
	d := r.DecimalPtr(col)
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// DecimalPtr nil si la columna es NULL.
func (r Row) DecimalPtr(col string) *decimal.Decimal {
	v, ok := r[col]
	if !ok || v == nil {
		return nil
	}
	if d, ok := v.(decimal.Decimal); ok {
		return &d
	}
	d, err := decimal.NewFromString(r.String(col))
	if err != nil {
		return nil
	}
	return &d
}

// Time instante en UTC; NULL -> time.Time{}.
func (r Row) Time(col string) time.Time {
	t := r.TimePtr(col)
	if t == nil {
		return time.Time{}
	}
	return *t
}

// TimePtr nil si la columna es NULL.
func (r Row) TimePtr(col string) *time.Time {
	v, ok := r[col]
	if !ok || v == nil {
		return nil
	}
	if b, ok := v.([]byte); ok {
		v = string(b)
	}
	t, err := cast.ToTimeE(v)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// UTC normaliza instantes antes de persistirlos; SQLite compara fechas como texto.
func UTC(t time.Time) time.Time {
	return t.UTC()
}

// UTCPtr como UTC para columnas opcionales.
func UTCPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
