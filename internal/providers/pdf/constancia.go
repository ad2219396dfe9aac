package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/fogonlabs/fogon/internal/claim/render"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateConstancia(ctx context.Context, doc render.Document) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(14).
		WithRightMargin(14).
		WithTopMargin(12).
		Build()

	m := maroto.New(cfg)

	m.AddRow(10,
		text.NewCol(12, doc.Title, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, doc.Subtitle, props.Text{
			Size: 12,
		}),
	)

	for i, section := range doc.Sections {
		if i > 0 {
			m.AddRow(4, line.NewCol(12))
		}
		if section.Title != "" {
			m.AddRow(8,
				text.NewCol(12, section.Title, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Top:   2,
				}),
			)
		}
		for _, row := range section.Rows {
			m.AddRow(6,
				text.NewCol(4, row.Label, props.Text{Size: 9}),
				col.New(8).Add(
					text.New(row.Value, props.Text{Size: 10}),
				),
			)
		}
	}

	generated, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(generated.GetBytes()), nil
}
