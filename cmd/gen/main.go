// Command gen writes type-safe GORM query builders for the persistence models.
package main

import (
	"flag"
	"log/slog"

	"autohub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gen"
)

// DashboardQuerier holds the hand-written SQL behind the shop dashboard counters.
type DashboardQuerier interface {
	// SELECT COUNT(*) FROM @@table
	// WHERE shop_id = @shopID AND manage_inventory AND quantity > 0 AND quantity <= low_stock_limit
	CountLowStock(shopID uuid.UUID) (int64, error)
}

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory of the generated package")
	withoutContext := flag.Bool("without-context", false, "omit the WithContext helpers")
	flag.Parse()

	mode := gen.WithDefaultQuery | gen.WithQueryInterface
	if *withoutContext {
		mode |= gen.WithoutContext
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       *outPath,
		Mode:          mode,
		FieldNullable: true,
	})

	g.ApplyBasic(
		model.UserModel{},
		model.UserProfileModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.PasswordResetModel{},
		model.ShopModel{},
		model.ServiceModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.AppointmentModel{},
		model.ReviewModel{},
	)
	g.ApplyInterface(func(DashboardQuerier) {}, model.SparePartModel{})

	g.Execute()
	slog.Info("Generated query package", slog.String("out", *outPath))
}
