package domain

import (
	"context"
	"time"
)

// Status is the management state of a claim sheet. Staff may set any
// of the four values in any order; only enum membership is enforced.
type Status string

const (
	StatusRecibido   Status = "RECIBIDO"
	StatusEnRevision Status = "EN_REVISION"
	StatusRespondido Status = "RESPONDIDO"
	StatusCerrado    Status = "CERRADO"
)

func (s Status) Valid() bool {
	switch s {
	case StatusRecibido, StatusEnRevision, StatusRespondido, StatusCerrado:
		return true
	default:
		return false
	}
}

type DocType string

const (
	DocTypeDNI DocType = "DNI"
	DocTypeCE  DocType = "CE"
)

type SubjectKind string

const (
	SubjectProducto SubjectKind = "PRODUCTO"
	SubjectServicio SubjectKind = "SERVICIO"
)

type RecordType string

const (
	RecordReclamo RecordType = "RECLAMO"
	RecordQueja   RecordType = "QUEJA"
)

// Claim is one sheet of the libro de reclamaciones. Consumer, subject
// and provider-snapshot columns are written once at creation; only the
// management block below them changes afterwards. Rows are never
// deleted (regulatory retention).
type Claim struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	NumeroSeq   int64  `json:"-" gorm:"column:numero_seq;not null;uniqueIndex:ux_reclamaciones_numero_seq"`
	NumeroHoja  string `json:"numero_hoja" gorm:"column:numero_hoja;not null;uniqueIndex:ux_reclamaciones_numero_hoja"`
	PublicToken string `json:"-" gorm:"column:public_token;not null"`

	ProviderName    string  `json:"proveedor_nombre_razon_social" gorm:"column:proveedor_nombre_razon_social;not null"`
	ProviderRUC     string  `json:"proveedor_ruc" gorm:"column:proveedor_ruc;not null"`
	ProviderAddress string  `json:"proveedor_domicilio_establecimiento" gorm:"column:proveedor_domicilio_establecimiento;not null"`
	ProviderEstCode *string `json:"proveedor_codigo_identificacion_establecimiento,omitempty" gorm:"column:proveedor_codigo_identificacion_establecimiento"`

	ConsumerFullName  string  `json:"consumidor_nombre_completo" gorm:"column:consumidor_nombre_completo;not null"`
	ConsumerAddress   string  `json:"consumidor_domicilio" gorm:"column:consumidor_domicilio;not null"`
	ConsumerDocType   DocType `json:"consumidor_tipo_doc" gorm:"column:consumidor_tipo_doc;not null"`
	ConsumerDocNumber string  `json:"consumidor_num_doc" gorm:"column:consumidor_num_doc;not null"`
	ConsumerPhone     string  `json:"consumidor_telefono" gorm:"column:consumidor_telefono"`
	ConsumerEmail     string  `json:"consumidor_email" gorm:"column:consumidor_email"`
	ConsumerIsMinor   bool    `json:"consumidor_es_menor" gorm:"column:consumidor_es_menor;not null"`
	ConsumerGuardian  *string `json:"consumidor_padre_madre,omitempty" gorm:"column:consumidor_padre_madre"`

	SubjectKind        SubjectKind `json:"bien_tipo" gorm:"column:bien_tipo;not null"`
	ClaimedAmount      float64     `json:"bien_monto_reclamado" gorm:"column:bien_monto_reclamado;not null"`
	SubjectDescription string      `json:"bien_descripcion" gorm:"column:bien_descripcion;not null"`

	RecordType RecordType `json:"tipo_registro" gorm:"column:tipo_registro;not null"`
	Detail     string     `json:"detalle_reclamacion" gorm:"column:detalle_reclamacion;not null"`
	Remedy     string     `json:"pedido_consumidor" gorm:"column:pedido_consumidor;not null"`

	ConsumerConfirmed   bool       `json:"confirmacion_consumidor" gorm:"column:confirmacion_consumidor;not null"`
	ConsumerConfirmedAt *time.Time `json:"confirmacion_consumidor_fecha,omitempty" gorm:"column:confirmacion_consumidor_fecha"`

	Status                  Status     `json:"estado" gorm:"column:estado;not null"`
	ProviderResponse        *string    `json:"respuesta_proveedor,omitempty" gorm:"column:respuesta_proveedor"`
	RespondedAt             *time.Time `json:"fecha_respuesta,omitempty" gorm:"column:fecha_respuesta"`
	ResponseCommunicatedOn  *time.Time `json:"fecha_comunicacion_respuesta,omitempty" gorm:"column:fecha_comunicacion_respuesta"`
	ProviderActions         *string    `json:"acciones_proveedor,omitempty" gorm:"column:acciones_proveedor"`
	ActionsOn               *time.Time `json:"acciones_fecha,omitempty" gorm:"column:acciones_fecha"`
	ProviderConfirmed       bool       `json:"confirmacion_proveedor" gorm:"column:confirmacion_proveedor;not null"`
	ProviderConfirmedAt     *time.Time `json:"confirmacion_proveedor_fecha,omitempty" gorm:"column:confirmacion_proveedor_fecha"`
	ExtensionUntil          *time.Time `json:"prorroga_hasta,omitempty" gorm:"column:prorroga_hasta"`
	ExtensionReason         *string    `json:"prorroga_motivo,omitempty" gorm:"column:prorroga_motivo"`
	ExtensionCommunicatedOn *time.Time `json:"prorroga_fecha_comunicacion,omitempty" gorm:"column:prorroga_fecha_comunicacion"`

	RegisteredAt time.Time `json:"fecha_registro" gorm:"column:fecha_registro;not null"`
}

func (Claim) TableName() string { return "reclamaciones" }

// ProviderSnapshot is the provider identity captured into a claim at
// submission time. It is never live-joined afterwards.
type ProviderSnapshot struct {
	Name    string
	RUC     string
	Address string
	EstCode *string
}

// SnapshotSource resolves the current provider identity from site
// configuration.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (ProviderSnapshot, error)
}
