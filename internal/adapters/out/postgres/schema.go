package postgres

import (
	"courier/internal/adapters/out/postgres/parcelrepo"
	"courier/internal/adapters/out/postgres/paymentrepo"
	"courier/internal/adapters/out/postgres/riderrepo"
	"courier/internal/adapters/out/postgres/trackingrepo"
	"courier/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns, in creation order.
func Models() []any {
	return []any{
		&parcelrepo.ParcelDTO{},
		&paymentrepo.PaymentDTO{},
		&trackingrepo.TrackingEventDTO{},
		&riderrepo.RiderDTO{},
		&userrepo.UserDTO{},
	}
}

// legacyIndexes were replaced by wider indexes and are dropped on migrate.
var legacyIndexes = []struct {
	model any
	name  string
}{
	{&trackingrepo.TrackingEventDTO{}, "idx_tracking_events_idempotency_key"},
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}

	m := db.Migrator()
	for _, idx := range legacyIndexes {
		if !m.HasIndex(idx.model, idx.name) {
			continue
		}
		if err := m.DropIndex(idx.model, idx.name); err != nil {
			return err
		}
	}
	return nil
}

// TableNames returns the table names in Models order, for test cleanup.
func TableNames() []string {
	return []string{"parcels", "payments", "tracking_events", "riders", "users"}
}
