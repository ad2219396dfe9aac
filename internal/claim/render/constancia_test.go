package render

import (
	"testing"
	"time"

	"github.com/fogonlabs/fogon/internal/claim/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleClaim() *domain.Claim {
	registered := time.Date(2025, 3, 10, 15, 4, 0, 0, time.UTC)
	estCode := "EST-001"
	return &domain.Claim{
		NumeroHoja:  "R-000007",
		PublicToken: "token",

		ProviderName:    "Fogon del Valle",
		ProviderRUC:     "20601234567",
		ProviderAddress: "Av. Los Olivos 123, Lima",
		ProviderEstCode: &estCode,

		ConsumerFullName:  "Juana Perez",
		ConsumerAddress:   "Jr. Las Flores 456, Lima",
		ConsumerDocType:   domain.DocTypeDNI,
		ConsumerDocNumber: "45678912",
		ConsumerEmail:     "juana.perez@example.com",

		SubjectKind:        domain.SubjectProducto,
		ClaimedAmount:      49.9,
		SubjectDescription: "Pollo a la brasa familiar",

		RecordType: domain.RecordReclamo,
		Detail:     "El pedido llego incompleto.",
		Remedy:     "Reembolso del monto pagado.",

		ConsumerConfirmed:   true,
		ConsumerConfirmedAt: &registered,

		Status:       domain.StatusRecibido,
		RegisteredAt: registered,
	}
}

func TestConstanciaIsDeterministic(t *testing.T) {
	claim := sampleClaim()
	assert.Equal(t, Constancia(claim), Constancia(claim))
}

func TestConstanciaLayout(t *testing.T) {
	doc := Constancia(sampleClaim())

	assert.Equal(t, "Libro de Reclamaciones", doc.Title)
	require.Len(t, doc.Sections, 8)

	header := doc.Sections[0]
	assert.Equal(t, Row{"Numero de hoja", "R-000007"}, header.Rows[0])
	assert.Equal(t, Row{"Fecha de registro", "10/03/2025 15:04"}, header.Rows[1])

	subject := doc.Sections[3]
	assert.Equal(t, "2. Identificacion del bien contratado", subject.Title)
	assert.Contains(t, subject.Rows, Row{"Monto reclamado", "S/ 49.90"})
}

func TestConstanciaPlaceholders(t *testing.T) {
	claim := sampleClaim()
	claim.ConsumerPhone = ""
	claim.ProviderEstCode = nil

	doc := Constancia(claim)

	provider := doc.Sections[1]
	assert.Contains(t, provider.Rows, Row{"Codigo establecimiento", "-"})

	consumer := doc.Sections[2]
	assert.Contains(t, consumer.Rows, Row{"Telefono", "-"})
	assert.Contains(t, consumer.Rows, Row{"Menor de edad", "No"})

	management := doc.Sections[7]
	assert.Contains(t, management.Rows, Row{"Respuesta", "-"})
	assert.Contains(t, management.Rows, Row{"Fecha respuesta", "-"})

	confirmations := doc.Sections[6]
	assert.Contains(t, confirmations.Rows, Row{"Proveedor", "Pendiente"})
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "reclamacion-R-000007.pdf", FileName(sampleClaim()))
}
