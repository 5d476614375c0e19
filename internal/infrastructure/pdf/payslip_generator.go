// Package pdf implementa la generación del desprendible de nómina en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app  │  Período + Fecha de pago       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPLEADO: Nombre / Email / Cargo / Cuenta bancaria          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Concepto | Período | Monto                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL PAGADO + referencia del procesador                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/nomina-api/internal/application/payroll"
	"github.com/jhoicas/nomina-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ payroll.PayslipGenerator = (*MarotoPayslipGenerator)(nil)

// MarotoPayslipGenerator implementa payroll.PayslipGenerator usando Maroto v2.
type MarotoPayslipGenerator struct {
	appName string
}

// NewMarotoPayslipGenerator construye el generador.
func NewMarotoPayslipGenerator(appName string) *MarotoPayslipGenerator {
	return &MarotoPayslipGenerator{appName: appName}
}

// GeneratePayslipPDF genera el desprendible y devuelve sus bytes.
// user puede ser nil si la cuenta fue creada después del pago por otro canal;
// el desprendible usa entonces los datos congelados en el pago.
func (g *MarotoPayslipGenerator) GeneratePayslipPDF(
	_ context.Context,
	payment *entity.Payment,
	user *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Desprendible de Nómina", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, payment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(employeeRow(payment, user))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(detailRow(payment))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(payment))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(payment))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la app (izq) y período + fecha de pago (der).
func headerRow(appName string, payment *entity.Payment) core.Row {
	period := fmt.Sprintf("%02d/%d", payment.Month, payment.Year)
	paid := payment.PaidAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Desprendible de nómina", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO "+period, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Pagado: "+paid, props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

// employeeRow: datos del empleado.
func employeeRow(payment *entity.Payment, user *entity.User) core.Row {
	designation := "—"
	bank := "—"
	if user != nil {
		designation = nonEmpty(user.Designation, "—")
		bank = nonEmpty(user.BankAccount, "—")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("EMPLEADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(payment.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Cargo: %s   |   Cuenta: %s",
				payment.Email, designation, bank,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de conceptos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Concepto", 6, align.Left),
		h("Período", 3, align.Center),
		h("Monto", 3, align.Right),
	)
}

// detailRow: única línea del desprendible (salario del período).
func detailRow(payment *entity.Payment) core.Row {
	period := fmt.Sprintf("%02d/%d", payment.Month, payment.Year)
	return row.New(7).Add(
		col.New(6).Add(text.New(
			"Salario mensual",
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			period,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(3).Add(text.New(
			"$"+formatMoney(payment.Amount.StringFixed(0)),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: total pagado alineado a la derecha.
func totalRow(payment *entity.Payment) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL PAGADO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+formatMoney(payment.Amount.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// footerRow: referencia del procesador + leyenda.
func footerRow(payment *entity.Payment) core.Row {
	ref := nonEmpty(payment.IntentID, "—")
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Referencia del procesador de pagos: "+ref, props.Text{
				Size: 7, Color: colorGray, Top: 1,
			}),
			text.New(
				"Este desprendible es un soporte informativo del pago de salario registrado. "+
					"Consérvelo para efectos de control interno.",
				props.Text{Size: 6.5, Color: colorGray, Top: 6},
			),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
