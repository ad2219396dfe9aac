package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fogonlabs/fogon/internal/claim/domain"
	"github.com/fogonlabs/fogon/internal/claim/repository"
	"github.com/fogonlabs/fogon/internal/clock"
	"github.com/fogonlabs/fogon/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type stubSnapshot struct{}

func (stubSnapshot) Snapshot(ctx context.Context) (domain.ProviderSnapshot, error) {
	code := "EST-001"
	return domain.ProviderSnapshot{
		Name:    "Fogon del Valle",
		RUC:     "20601234567",
		Address: "Av. Los Olivos 123, Lima",
		EstCode: &code,
	}, nil
}

func newTestService(t *testing.T) (domain.Service, *clock.FakeClock, *gorm.DB) {
	t.Helper()

	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.Claim{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	fake := clock.NewFakeClock(time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC))
	svc := New(Params{
		DB:       conn,
		Log:      zap.NewNop(),
		GenID:    node,
		Clock:    fake,
		Repo:     repository.Provide(),
		Snapshot: stubSnapshot{},
	})
	return svc, fake, conn
}

func validSubmit() domain.SubmitRequest {
	return domain.SubmitRequest{
		FullName:           "Juana Perez",
		Address:            "Jr. Las Flores 456, Lima",
		DocType:            "DNI",
		DocNumber:          "45678912",
		Phone:              "+51 987 654 321",
		Email:              "juana.perez@example.com",
		SubjectKind:        "PRODUCTO",
		Amount:             "49.90",
		SubjectDescription: "Pollo a la brasa familiar",
		RecordType:         "RECLAMO",
		Detail:             "El pedido llego incompleto.",
		Remedy:             "Reembolso del monto pagado.",
		Confirmed:          true,
	}
}

func TestSubmitAssignsSequentialSheetNumbers(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)
	second, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)

	assert.Equal(t, "R-000001", first.NumeroHoja)
	assert.Equal(t, "R-000002", second.NumeroHoja)
	assert.Equal(t, int64(1), first.NumeroSeq)
	assert.Equal(t, int64(2), second.NumeroSeq)
}

func TestSubmitSnapshotsProviderAndStampsConfirmation(t *testing.T) {
	svc, fake, _ := newTestService(t)

	claim, err := svc.Submit(context.Background(), validSubmit())
	require.NoError(t, err)

	assert.Equal(t, "Fogon del Valle", claim.ProviderName)
	assert.Equal(t, "20601234567", claim.ProviderRUC)
	require.NotNil(t, claim.ProviderEstCode)
	assert.Equal(t, "EST-001", *claim.ProviderEstCode)

	assert.True(t, claim.ConsumerConfirmed)
	require.NotNil(t, claim.ConsumerConfirmedAt)
	assert.Equal(t, fake.Now(), claim.ConsumerConfirmedAt.UTC())
	assert.Equal(t, domain.StatusRecibido, claim.Status)
	assert.NotEmpty(t, claim.PublicToken)
}

func TestSubmitRejectsMissingConfirmation(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := validSubmit()
	req.Confirmed = false
	_, err := svc.Submit(context.Background(), req)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Equal(t, "Debes confirmar la informacion.", err.Error())
}

func TestSubmitMinorRequiresGuardian(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	req := validSubmit()
	req.IsMinor = true
	_, err := svc.Submit(ctx, req)
	require.Error(t, err)
	assert.Equal(t, "Ingresa el nombre del padre/madre o apoderado.", err.Error())

	req.GuardianName = "Rosa Perez"
	claim, err := svc.Submit(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, claim.ConsumerGuardian)
	assert.Equal(t, "Rosa Perez", *claim.ConsumerGuardian)
}

func TestSubmitRequiresPhoneOrEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := validSubmit()
	req.Phone = ""
	req.Email = ""
	_, err := svc.Submit(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, "Ingresa telefono o email.", err.Error())
}

func TestSubmitRejectsBadAmount(t *testing.T) {
	svc, _, _ := newTestService(t)

	for _, amount := range []string{"", "abc", "-5"} {
		req := validSubmit()
		req.Amount = amount
		_, err := svc.Submit(context.Background(), req)
		require.Error(t, err, "amount %q", amount)
		assert.Equal(t, "Ingresa el monto reclamado.", err.Error())
	}
}

func TestSubmitDefaultsEnums(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := validSubmit()
	req.DocType = ""
	req.SubjectKind = ""
	req.RecordType = ""
	claim, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.DocTypeDNI, claim.ConsumerDocType)
	assert.Equal(t, domain.SubjectProducto, claim.SubjectKind)
	assert.Equal(t, domain.RecordReclamo, claim.RecordType)
}

func TestUpdateResponseTimestampDerivation(t *testing.T) {
	svc, fake, _ := newTestService(t)
	ctx := context.Background()

	claim, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)
	id := idString(claim)

	fake.Advance(2 * time.Hour)
	firstStamp := fake.Now()

	updated, err := svc.Update(ctx, domain.UpdateRequest{
		ID:               id,
		Status:           "RESPONDIDO",
		ProviderResponse: "Procede el reembolso.",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.RespondedAt)
	assert.Equal(t, firstStamp, updated.RespondedAt.UTC())

	// Editing the text later keeps the original stamp.
	fake.Advance(3 * time.Hour)
	updated, err = svc.Update(ctx, domain.UpdateRequest{
		ID:               id,
		Status:           "RESPONDIDO",
		ProviderResponse: "Procede el reembolso total.",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.RespondedAt)
	assert.Equal(t, firstStamp, updated.RespondedAt.UTC())

	// Clearing the text clears the stamp.
	updated, err = svc.Update(ctx, domain.UpdateRequest{
		ID:     id,
		Status: "EN_REVISION",
	})
	require.NoError(t, err)
	assert.Nil(t, updated.ProviderResponse)
	assert.Nil(t, updated.RespondedAt)
}

func TestUpdateProviderConfirmationIsOneWay(t *testing.T) {
	svc, fake, _ := newTestService(t)
	ctx := context.Background()

	claim, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)
	id := idString(claim)

	fake.Advance(time.Hour)
	confirmStamp := fake.Now()

	updated, err := svc.Update(ctx, domain.UpdateRequest{
		ID:                id,
		Status:            "EN_REVISION",
		ProviderConfirmed: true,
	})
	require.NoError(t, err)
	assert.True(t, updated.ProviderConfirmed)
	require.NotNil(t, updated.ProviderConfirmedAt)
	assert.Equal(t, confirmStamp, updated.ProviderConfirmedAt.UTC())

	// A later payload with confirmed=false cannot undo it, and the
	// stamp survives.
	fake.Advance(time.Hour)
	updated, err = svc.Update(ctx, domain.UpdateRequest{
		ID:                id,
		Status:            "EN_REVISION",
		ProviderConfirmed: false,
	})
	require.NoError(t, err)
	assert.True(t, updated.ProviderConfirmed)
	require.NotNil(t, updated.ProviderConfirmedAt)
	assert.Equal(t, confirmStamp, updated.ProviderConfirmedAt.UTC())
}

func TestUpdateRejectsInvalidStatusAndDates(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	claim, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)
	id := idString(claim)

	_, err = svc.Update(ctx, domain.UpdateRequest{ID: id, Status: "ARCHIVADO"})
	require.Error(t, err)
	assert.Equal(t, "Estado invalido.", err.Error())

	_, err = svc.Update(ctx, domain.UpdateRequest{
		ID:        id,
		Status:    "EN_REVISION",
		ActionsOn: "10/03/2025",
	})
	require.Error(t, err)
	assert.Equal(t, "Fecha invalida.", err.Error())
}

func TestUpdateUnknownIDFails(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Update(context.Background(), domain.UpdateRequest{ID: "999999", Status: "RECIBIDO"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Update(context.Background(), domain.UpdateRequest{ID: "not-a-number", Status: "RECIBIDO"})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestGetByIDAndTokenAccessControl(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	claim, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)
	id := idString(claim)

	got, err := svc.GetByIDAndToken(ctx, id, claim.PublicToken)
	require.NoError(t, err)
	assert.Equal(t, claim.NumeroHoja, got.NumeroHoja)

	// Wrong token, empty token and malformed id all collapse into the
	// same not-found answer.
	_, err = svc.GetByIDAndToken(ctx, id, "wrong-token")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetByIDAndToken(ctx, id, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetByIDAndToken(ctx, "zzz", claim.PublicToken)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc, fake, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)
	fake.Advance(time.Minute)
	second, err := svc.Submit(ctx, validSubmit())
	require.NoError(t, err)

	claims, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, claims, 2)
	assert.Equal(t, second.NumeroHoja, claims[0].NumeroHoja)
	assert.Equal(t, first.NumeroHoja, claims[1].NumeroHoja)
}

func idString(c *domain.Claim) string {
	return snowflake.ID(c.ID).String()
}
