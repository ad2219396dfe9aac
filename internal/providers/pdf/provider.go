package pdf

import (
	"context"
	"io"

	"github.com/fogonlabs/fogon/internal/claim/render"
	"go.uber.org/fx"
)

// Provider turns a constancia document model into a downloadable PDF.
type Provider interface {
	GenerateConstancia(ctx context.Context, doc render.Document) (io.Reader, error)
}

var Module = fx.Module("providers.pdf",
	fx.Provide(New),
)
