package postgres

import (
	"context"
	"fmt"

	"bioacoustic-monitor/internal/infrastructure/database/postgres/models"
	"bioacoustic-monitor/internal/logger"

	"go.uber.org/zap"
)

// Tenant isolation lives in these policies. Claims are set per call by
// DB.Scoped. Background processes connect with a BYPASSRLS role.
var rlsStatements = []string{
	`CREATE OR REPLACE FUNCTION app_role() RETURNS text LANGUAGE sql STABLE AS
		$$ SELECT NULLIF(current_setting('app.role', true), '') $$`,
	`CREATE OR REPLACE FUNCTION app_org() RETURNS uuid LANGUAGE sql STABLE AS
		$$ SELECT NULLIF(current_setting('app.organization_id', true), '')::uuid $$`,
	`CREATE OR REPLACE FUNCTION app_user() RETURNS uuid LANGUAGE sql STABLE AS
		$$ SELECT NULLIF(current_setting('app.user_id', true), '')::uuid $$`,
	`CREATE OR REPLACE FUNCTION app_rooms() RETURNS SETOF uuid LANGUAGE sql STABLE AS
		$$ SELECT r.id FROM rooms r JOIN buildings b ON b.id = r.building_id
		   JOIN sites s ON s.id = b.site_id WHERE s.organization_id = app_org() $$`,
}

var tenantPolicies = map[string]string{
	"organizations": `app_role() = 'super_admin' OR id = app_org()`,
	"sites":         `app_role() = 'super_admin' OR organization_id = app_org()`,
	"buildings": `app_role() = 'super_admin' OR site_id IN
		(SELECT id FROM sites WHERE organization_id = app_org())`,
	"rooms": `app_role() = 'super_admin' OR building_id IN
		(SELECT b.id FROM buildings b JOIN sites s ON s.id = b.site_id WHERE s.organization_id = app_org())`,
	"events":   `app_role() = 'super_admin' OR room_id IN (SELECT app_rooms())`,
	"profiles": `app_role() = 'super_admin' OR id = app_user() OR organization_id = app_org()`,
}

// Unassigned stock is readable by roles that claim devices, but a write
// must land the device in one of the caller's own rooms.
const (
	deviceReadPolicy = `app_role() = 'super_admin' OR room_id IN (SELECT app_rooms())
		OR (room_id IS NULL AND app_role() IN ('org_admin', 'site_manager'))`
	deviceWritePolicy = `app_role() = 'super_admin' OR room_id IN (SELECT app_rooms())`
)

var changeFeedStatements = []string{
	`CREATE OR REPLACE FUNCTION notify_fleet_change() RETURNS trigger LANGUAGE plpgsql AS $$
	BEGIN
		PERFORM pg_notify(TG_ARGV[0], TG_TABLE_NAME);
		RETURN NULL;
	END $$`,
}

// Migrate creates the schema. On Postgres it also installs row level
// security and the NOTIFY triggers feeding the realtime hub.
func (d *DB) Migrate(ctx context.Context, channel string) error {
	err := d.DB.WithContext(ctx).AutoMigrate(
		&models.OrganizationModel{},
		&models.SiteModel{},
		&models.BuildingModel{},
		&models.RoomModel{},
		&models.DeviceModel{},
		&models.EventModel{},
		&models.ProfileModel{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if d.driver != DriverPostgres {
		logger.Info("Schema migrated", zap.String("driver", d.driver))
		return nil
	}

	for _, stmt := range policyStatements() {
		if err := d.DB.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply row level security: %w", err)
		}
	}
	for _, stmt := range triggerStatements(channel) {
		if err := d.DB.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("install change feed: %w", err)
		}
	}

	logger.Info("Schema migrated",
		zap.String("driver", d.driver),
		zap.Int("policies", len(tenantPolicies)+1),
	)
	return nil
}

func policyStatements() []string {
	stmts := append([]string{}, rlsStatements...)
	for table, expr := range tenantPolicies {
		stmts = append(stmts, enableRLS(table)...)
		stmts = append(stmts,
			fmt.Sprintf(`DROP POLICY IF EXISTS tenant_isolation ON %s`, table),
			fmt.Sprintf(`CREATE POLICY tenant_isolation ON %s USING (%s) WITH CHECK (%s)`, table, expr, expr),
		)
	}

	stmts = append(stmts, enableRLS("devices")...)
	stmts = append(stmts,
		`DROP POLICY IF EXISTS tenant_isolation ON devices`,
		fmt.Sprintf(`CREATE POLICY tenant_isolation ON devices USING (%s) WITH CHECK (%s)`, deviceReadPolicy, deviceWritePolicy),
	)
	return stmts
}

func enableRLS(table string) []string {
	return []string{
		fmt.Sprintf(`ALTER TABLE %s ENABLE ROW LEVEL SECURITY`, table),
		fmt.Sprintf(`ALTER TABLE %s FORCE ROW LEVEL SECURITY`, table),
	}
}

func triggerStatements(channel string) []string {
	stmts := append([]string{}, changeFeedStatements...)
	for _, table := range []string{"events", "devices"} {
		stmts = append(stmts,
			fmt.Sprintf(`DROP TRIGGER IF EXISTS %s_notify ON %s`, table, table),
			fmt.Sprintf(`CREATE TRIGGER %s_notify AFTER INSERT OR UPDATE OR DELETE ON %s
				FOR EACH STATEMENT EXECUTE FUNCTION notify_fleet_change('%s')`, table, table, channel),
		)
	}
	return stmts
}
