package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fogonlabs/fogon/internal/category/domain"
	"github.com/fogonlabs/fogon/internal/category/repository"
	"github.com/fogonlabs/fogon/internal/clock"
	productdomain "github.com/fogonlabs/fogon/internal/product/domain"
	productrepository "github.com/fogonlabs/fogon/internal/product/repository"
	"github.com/fogonlabs/fogon/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	tables []string
}

func (n *recordingNotifier) Notify(table string) {
	n.tables = append(n.tables, table)
}

func newTestService(t *testing.T) (domain.Service, *recordingNotifier, *gorm.DB) {
	t.Helper()

	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.Category{}, &productdomain.Product{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	svc := New(Params{
		DB:       conn,
		Log:      zap.NewNop(),
		GenID:    node,
		Clock:    clock.NewFakeClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)),
		Repo:     repository.Provide(),
		Products: productrepository.Provide(),
		Notifier: notifier,
	})
	return svc, notifier, conn
}

func create(t *testing.T, svc domain.Service, name string) *domain.Category {
	t.Helper()
	category, err := svc.Create(context.Background(), domain.CreateRequest{Name: name})
	require.NoError(t, err)
	return category
}

func TestCreateAssignsSlugAndOrder(t *testing.T) {
	svc, notifier, _ := newTestService(t)

	first := create(t, svc, "Pollos a la Brasa")
	second := create(t, svc, "Bebidas")

	assert.Equal(t, "pollos-a-la-brasa", first.Slug)
	assert.Equal(t, 1, first.DisplayOrder)
	assert.Equal(t, 2, second.DisplayOrder)
	assert.True(t, first.Active)
	assert.Contains(t, notifier.tables, "categories")
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	svc, _, _ := newTestService(t)

	create(t, svc, "Bebidas")
	_, err := svc.Create(context.Background(), domain.CreateRequest{Name: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrSlugTaken)
}

func TestMoveSwapsNeighborOrders(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	a := create(t, svc, "Entradas")
	b := create(t, svc, "Fondos")
	c := create(t, svc, "Postres")

	require.NoError(t, svc.Move(ctx, idString(c.ID), -1))

	listed, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, a.ID, listed[0].ID)
	assert.Equal(t, c.ID, listed[1].ID)
	assert.Equal(t, b.ID, listed[2].ID)

	// Orders stay a permutation of the originals.
	orders := []int{listed[0].DisplayOrder, listed[1].DisplayOrder, listed[2].DisplayOrder}
	assert.ElementsMatch(t, []int{1, 2, 3}, orders)
}

func TestMoveAtEdgeIsNoOp(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first := create(t, svc, "Entradas")
	create(t, svc, "Fondos")

	require.NoError(t, svc.Move(ctx, idString(first.ID), -1))

	listed, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, listed[0].ID)
}

func TestMoveRejectsBadDirection(t *testing.T) {
	svc, _, _ := newTestService(t)

	category := create(t, svc, "Entradas")
	err := svc.Move(context.Background(), idString(category.ID), 2)
	assert.ErrorIs(t, err, domain.ErrInvalidMove)
}

func TestDeleteDetachesProducts(t *testing.T) {
	svc, notifier, conn := newTestService(t)
	ctx := context.Background()

	category := create(t, svc, "Bebidas")

	product := productdomain.Product{
		ID:         42,
		CategoryID: &category.ID,
		Slug:       "chicha-morada",
		Name:       "Chicha Morada",
		Active:     true,
	}
	require.NoError(t, conn.Create(&product).Error)

	require.NoError(t, svc.Delete(ctx, idString(category.ID)))

	var got productdomain.Product
	require.NoError(t, conn.First(&got, "id = ?", product.ID).Error)
	assert.Nil(t, got.CategoryID)
	assert.Contains(t, notifier.tables, "products")
}

func TestListActiveFiltersInactive(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	create(t, svc, "Entradas")
	hidden := create(t, svc, "Fondos")

	inactive := false
	_, err := svc.Update(ctx, domain.UpdateRequest{ID: idString(hidden.ID), Active: &inactive})
	require.NoError(t, err)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "entradas", active[0].Slug)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func idString(id int64) string {
	return snowflake.ID(id).String()
}
