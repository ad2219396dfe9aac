// Package render builds the constancia document model for a claim
// sheet. The model is a fixed section/row layout mirroring the legal
// form; rendering is deterministic so the same record always produces
// the same document.
package render

import (
	"fmt"
	"time"

	"github.com/fogonlabs/fogon/internal/claim/domain"
	"github.com/fogonlabs/fogon/internal/pricing"
)

const (
	dateTimeLayout = "02/01/2006 15:04"
	dateLayout     = "02/01/2006"
	placeholder    = "-"
)

type Document struct {
	Title    string
	Subtitle string
	Sections []Section
}

type Section struct {
	Title string
	Rows  []Row
}

type Row struct {
	Label string
	Value string
}

// FileName is the deterministic download name for a claim's PDF.
func FileName(claim *domain.Claim) string {
	return fmt.Sprintf("reclamacion-%s.pdf", claim.NumeroHoja)
}

// Constancia assembles the paper-style summary of a claim sheet.
func Constancia(claim *domain.Claim) Document {
	return Document{
		Title:    "Libro de Reclamaciones",
		Subtitle: "Constancia de Hoja de Reclamacion",
		Sections: []Section{
			{
				Rows: []Row{
					{"Numero de hoja", claim.NumeroHoja},
					{"Fecha de registro", formatDateTime(&claim.RegisteredAt)},
				},
			},
			{
				Title: "Datos del proveedor",
				Rows: []Row{
					{"Razon social", claim.ProviderName},
					{"RUC", claim.ProviderRUC},
					{"Domicilio", claim.ProviderAddress},
					{"Codigo establecimiento", textOrDash(claim.ProviderEstCode)},
				},
			},
			{
				Title: "1. Identificacion del consumidor",
				Rows: []Row{
					{"Nombre completo", claim.ConsumerFullName},
					{"Domicilio", claim.ConsumerAddress},
					{"Documento", fmt.Sprintf("%s %s", claim.ConsumerDocType, claim.ConsumerDocNumber)},
					{"Telefono", orDash(claim.ConsumerPhone)},
					{"Email", orDash(claim.ConsumerEmail)},
					{"Menor de edad", yesNo(claim.ConsumerIsMinor)},
					{"Padre/madre o apoderado", textOrDash(claim.ConsumerGuardian)},
				},
			},
			{
				Title: "2. Identificacion del bien contratado",
				Rows: []Row{
					{"Tipo", string(claim.SubjectKind)},
					{"Monto reclamado", pricing.FormatPrice(claim.ClaimedAmount)},
					{"Descripcion", claim.SubjectDescription},
				},
			},
			{
				Title: "3. Detalle y pedido",
				Rows: []Row{
					{"Tipo de registro", string(claim.RecordType)},
					{"Detalle", claim.Detail},
					{"Pedido del consumidor", claim.Remedy},
				},
			},
			{
				Title: "4. Observaciones y acciones del proveedor",
				Rows: []Row{
					{"Acciones", textOrDash(claim.ProviderActions)},
					{"Fecha acciones", formatDate(claim.ActionsOn)},
				},
			},
			{
				Title: "Confirmaciones",
				Rows: []Row{
					{"Consumidor", confirmed(claim.ConsumerConfirmed)},
					{"Fecha confirmacion consumidor", formatDateTime(claim.ConsumerConfirmedAt)},
					{"Proveedor", confirmed(claim.ProviderConfirmed)},
					{"Fecha confirmacion proveedor", formatDateTime(claim.ProviderConfirmedAt)},
				},
			},
			{
				Title: "Gestion y respuesta",
				Rows: []Row{
					{"Estado", string(claim.Status)},
					{"Respuesta", textOrDash(claim.ProviderResponse)},
					{"Fecha respuesta", formatDateTime(claim.RespondedAt)},
					{"Fecha comunicacion respuesta", formatDate(claim.ResponseCommunicatedOn)},
					{"Prorroga hasta", formatDate(claim.ExtensionUntil)},
					{"Motivo prorroga", textOrDash(claim.ExtensionReason)},
					{"Fecha comunicacion prorroga", formatDate(claim.ExtensionCommunicatedOn)},
				},
			},
		},
	}
}

func formatDateTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return placeholder
	}
	return t.Format(dateTimeLayout)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return placeholder
	}
	return t.Format(dateLayout)
}

func orDash(value string) string {
	if value == "" {
		return placeholder
	}
	return value
}

func textOrDash(value *string) string {
	if value == nil || *value == "" {
		return placeholder
	}
	return *value
}

func yesNo(v bool) string {
	if v {
		return "Si"
	}
	return "No"
}

func confirmed(v bool) string {
	if v {
		return "Confirmado"
	}
	return "Pendiente"
}
