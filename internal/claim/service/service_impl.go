package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fogonlabs/fogon/internal/claim/domain"
	"github.com/fogonlabs/fogon/internal/clock"
	"github.com/fogonlabs/fogon/internal/validate"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Repo     domain.Repository
	Snapshot domain.SnapshotSource
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	repo     domain.Repository
	snapshot domain.SnapshotSource
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("claim.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		repo:     p.Repo,
		snapshot: p.Snapshot,
	}
}

func (s *Service) Submit(ctx context.Context, req domain.SubmitRequest) (*domain.Claim, error) {
	if err := validateIntake(req); err != nil {
		return nil, err
	}

	docType, err := parseDocType(req.DocType)
	if err != nil {
		return nil, err
	}
	subjectKind, err := parseSubjectKind(req.SubjectKind)
	if err != nil {
		return nil, err
	}
	recordType, err := parseRecordType(req.RecordType)
	if err != nil {
		return nil, err
	}

	// Already validated; parse cannot fail here.
	amount, _ := strconv.ParseFloat(strings.TrimSpace(req.Amount), 64)

	snapshot, err := s.snapshot.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	claim := &domain.Claim{
		ID:          s.genID.Generate().Int64(),
		PublicToken: token,

		ProviderName:    snapshot.Name,
		ProviderRUC:     snapshot.RUC,
		ProviderAddress: snapshot.Address,
		ProviderEstCode: snapshot.EstCode,

		ConsumerFullName:  strings.TrimSpace(req.FullName),
		ConsumerAddress:   strings.TrimSpace(req.Address),
		ConsumerDocType:   docType,
		ConsumerDocNumber: strings.TrimSpace(req.DocNumber),
		ConsumerPhone:     strings.TrimSpace(req.Phone),
		ConsumerEmail:     strings.TrimSpace(req.Email),
		ConsumerIsMinor:   req.IsMinor,

		SubjectKind:        subjectKind,
		ClaimedAmount:      amount,
		SubjectDescription: strings.TrimSpace(req.SubjectDescription),

		RecordType: recordType,
		Detail:     strings.TrimSpace(req.Detail),
		Remedy:     strings.TrimSpace(req.Remedy),

		ConsumerConfirmed:   true,
		ConsumerConfirmedAt: &now,

		Status:       domain.StatusRecibido,
		RegisteredAt: now,
	}
	if req.IsMinor {
		guardian := strings.TrimSpace(req.GuardianName)
		claim.ConsumerGuardian = &guardian
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, claim)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("claim registered",
		zap.String("numero_hoja", claim.NumeroHoja),
		zap.String("tipo_registro", string(claim.RecordType)),
	)
	return claim, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Claim, error) {
	claimID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, s.db, claimID.Int64())
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	status := domain.Status(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !status.Valid() {
		return nil, domain.NewValidationError("Estado invalido.")
	}

	responseCommunicatedOn, err := parseDate(req.ResponseCommunicatedOn)
	if err != nil {
		return nil, err
	}
	actionsOn, err := parseDate(req.ActionsOn)
	if err != nil {
		return nil, err
	}
	extensionUntil, err := parseDate(req.ExtensionUntil)
	if err != nil {
		return nil, err
	}
	extensionCommunicatedOn, err := parseDate(req.ExtensionCommunicatedOn)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	updated := *existing
	updated.Status = status

	// fecha_respuesta derives from the response text: stamped the
	// first time the text becomes non-empty, preserved on edits,
	// cleared when the text is cleared.
	response := strings.TrimSpace(req.ProviderResponse)
	if response == "" {
		updated.ProviderResponse = nil
		updated.RespondedAt = nil
	} else {
		updated.ProviderResponse = &response
		if existing.RespondedAt != nil {
			updated.RespondedAt = existing.RespondedAt
		} else {
			stamp := now
			updated.RespondedAt = &stamp
		}
	}
	updated.ResponseCommunicatedOn = responseCommunicatedOn

	updated.ProviderActions = optionalText(req.ProviderActions)
	updated.ActionsOn = actionsOn

	// Provider confirmation is one-way: once set it stays set and the
	// stamp is never overwritten, even if the payload is resent.
	switch {
	case existing.ProviderConfirmed:
		updated.ProviderConfirmed = true
		updated.ProviderConfirmedAt = existing.ProviderConfirmedAt
	case req.ProviderConfirmed:
		updated.ProviderConfirmed = true
		stamp := now
		updated.ProviderConfirmedAt = &stamp
	default:
		updated.ProviderConfirmed = false
		updated.ProviderConfirmedAt = nil
	}

	updated.ExtensionUntil = extensionUntil
	updated.ExtensionReason = optionalText(req.ExtensionReason)
	updated.ExtensionCommunicatedOn = extensionCommunicatedOn

	if err := s.repo.Update(ctx, s.db, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Claim, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) GetForAdmin(ctx context.Context, id string) (*domain.Claim, error) {
	claimID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, claimID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (s *Service) GetByIDAndToken(ctx context.Context, id, token string) (*domain.Claim, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrNotFound
	}

	claimID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		// The public path never distinguishes a malformed id from a
		// missing record.
		return nil, domain.ErrNotFound
	}

	item, err := s.repo.FindByID(ctx, s.db, claimID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if subtle.ConstantTimeCompare([]byte(item.PublicToken), []byte(token)) != 1 {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// validateIntake applies the intake rules in form order; the first
// violated rule wins.
func validateIntake(req domain.SubmitRequest) error {
	if !validate.Required(req.FullName) {
		return domain.NewValidationError("Ingresa tu nombre completo.")
	}
	if !validate.Required(req.Address) {
		return domain.NewValidationError("Ingresa tu domicilio.")
	}
	if !validate.Required(req.DocNumber) {
		return domain.NewValidationError("Ingresa tu documento.")
	}
	if !validate.Required(req.Phone) && !validate.Required(req.Email) {
		return domain.NewValidationError("Ingresa telefono o email.")
	}
	if validate.Required(req.Email) && !validate.Email(strings.TrimSpace(req.Email)) {
		return domain.NewValidationError("Ingresa un email valido.")
	}
	if validate.Required(req.Phone) && !validate.Phone(strings.TrimSpace(req.Phone)) {
		return domain.NewValidationError("Ingresa un telefono valido.")
	}
	if req.IsMinor && !validate.Required(req.GuardianName) {
		return domain.NewValidationError("Ingresa el nombre del padre/madre o apoderado.")
	}
	if !validate.Required(req.SubjectDescription) {
		return domain.NewValidationError("Describe el bien o servicio.")
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(req.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return domain.NewValidationError("Ingresa el monto reclamado.")
	}
	if !validate.Required(req.Detail) {
		return domain.NewValidationError("Ingresa el detalle del reclamo.")
	}
	if !validate.Required(req.Remedy) {
		return domain.NewValidationError("Ingresa el pedido del consumidor.")
	}
	if !req.Confirmed {
		return domain.NewValidationError("Debes confirmar la informacion.")
	}
	return nil
}

func parseDocType(raw string) (domain.DocType, error) {
	switch domain.DocType(strings.ToUpper(strings.TrimSpace(raw))) {
	case "":
		return domain.DocTypeDNI, nil
	case domain.DocTypeDNI:
		return domain.DocTypeDNI, nil
	case domain.DocTypeCE:
		return domain.DocTypeCE, nil
	default:
		return "", domain.NewValidationError("Tipo de documento invalido.")
	}
}

func parseSubjectKind(raw string) (domain.SubjectKind, error) {
	switch domain.SubjectKind(strings.ToUpper(strings.TrimSpace(raw))) {
	case "":
		return domain.SubjectProducto, nil
	case domain.SubjectProducto:
		return domain.SubjectProducto, nil
	case domain.SubjectServicio:
		return domain.SubjectServicio, nil
	default:
		return "", domain.NewValidationError("Tipo de bien invalido.")
	}
}

func parseRecordType(raw string) (domain.RecordType, error) {
	switch domain.RecordType(strings.ToUpper(strings.TrimSpace(raw))) {
	case "":
		return domain.RecordReclamo, nil
	case domain.RecordReclamo:
		return domain.RecordReclamo, nil
	case domain.RecordQueja:
		return domain.RecordQueja, nil
	default:
		return "", domain.NewValidationError("Tipo de registro invalido.")
	}
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, domain.NewValidationError("Fecha invalida.")
	}
	return &parsed, nil
}

func optionalText(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
