package domain

import (
	"context"
	"errors"
)

type Service interface {
	// Submit validates raw intake input, snapshots the provider
	// identity and creates the claim sheet.
	Submit(ctx context.Context, req SubmitRequest) (*Claim, error)
	// Update applies the staff-editable management fields.
	Update(ctx context.Context, req UpdateRequest) (*Claim, error)
	List(ctx context.Context) ([]Claim, error)
	GetForAdmin(ctx context.Context, id string) (*Claim, error)
	// GetByIDAndToken is the only unauthenticated read. A wrong or
	// absent token is indistinguishable from a missing record.
	GetByIDAndToken(ctx context.Context, id, token string) (*Claim, error)
}

// SubmitRequest carries the raw consumer-supplied values from the
// intake form, before any validation.
type SubmitRequest struct {
	FullName     string `json:"consumidor_nombre_completo"`
	Address      string `json:"consumidor_domicilio"`
	DocType      string `json:"consumidor_tipo_doc"`
	DocNumber    string `json:"consumidor_num_doc"`
	Phone        string `json:"consumidor_telefono"`
	Email        string `json:"consumidor_email"`
	IsMinor      bool   `json:"consumidor_es_menor"`
	GuardianName string `json:"consumidor_padre_madre"`

	SubjectKind        string `json:"bien_tipo"`
	Amount             string `json:"bien_monto_reclamado"`
	SubjectDescription string `json:"bien_descripcion"`

	RecordType string `json:"tipo_registro"`
	Detail     string `json:"detalle_reclamacion"`
	Remedy     string `json:"pedido_consumidor"`

	Confirmed bool `json:"confirmacion_consumidor"`
}

// UpdateRequest carries the provider-side mutable fields from the
// admin console. Dates are "2006-01-02" strings, empty means null.
type UpdateRequest struct {
	ID string `json:"-"`

	Status                  string `json:"estado"`
	ProviderResponse        string `json:"respuesta_proveedor"`
	ResponseCommunicatedOn  string `json:"fecha_comunicacion_respuesta"`
	ProviderActions         string `json:"acciones_proveedor"`
	ActionsOn               string `json:"acciones_fecha"`
	ProviderConfirmed       bool   `json:"confirmacion_proveedor"`
	ExtensionUntil          string `json:"prorroga_hasta"`
	ExtensionReason         string `json:"prorroga_motivo"`
	ExtensionCommunicatedOn string `json:"prorroga_fecha_comunicacion"`
}

var (
	ErrNotFound  = errors.New("not_found")
	ErrInvalidID = errors.New("invalid_id")
)

// ValidationError is a single human-readable intake rule violation.
// The message is shown to the consumer as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
