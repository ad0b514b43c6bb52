package storage

import (
	"context"
	"fmt"
)

// schemaTemplate is shared by both backends; only the key, integer, and
// floating-point column types differ. Column order is load-bearing: scan
// functions and RETURNING * rely on it.
const schemaTemplate = `
CREATE TABLE IF NOT EXISTS users (
	id %[1]s,
	name TEXT NOT NULL,
	email TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS domains (
	id %[1]s,
	name TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS documents (
	id %[1]s,
	user_id %[2]s NOT NULL REFERENCES users(id),
	title TEXT NOT NULL,
	original_filename TEXT,
	source_path TEXT,
	content_text TEXT,
	uploaded_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS properties (
	id %[1]s,
	user_id %[2]s NOT NULL REFERENCES users(id),
	address TEXT NOT NULL,
	type TEXT NOT NULL,
	rent_weekly %[3]s,
	status TEXT,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS job_options (
	id %[1]s,
	user_id %[2]s NOT NULL REFERENCES users(id),
	employer TEXT NOT NULL,
	role TEXT,
	hours_per_week %[3]s,
	pay_rate_hourly %[3]s,
	status TEXT,
	pros TEXT,
	cons TEXT,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS childcare_options (
	id %[1]s,
	user_id %[2]s NOT NULL REFERENCES users(id),
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	location TEXT,
	min_age_months %[2]s,
	max_age_months %[2]s,
	daily_fee %[3]s,
	status TEXT,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS providers (
	id %[1]s,
	user_id %[2]s NOT NULL REFERENCES users(id),
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	phone TEXT,
	email TEXT,
	address TEXT,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS appointments (
	id %[1]s,
	user_id %[2]s NOT NULL REFERENCES users(id),
	provider_id %[2]s REFERENCES providers(id),
	title TEXT NOT NULL,
	description TEXT,
	location TEXT,
	start_datetime TEXT NOT NULL,
	end_datetime TEXT,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS trips (
	id %[1]s,
	user_id %[2]s NOT NULL REFERENCES users(id),
	date TEXT NOT NULL,
	origin TEXT NOT NULL,
	destination TEXT NOT NULL,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS trip_assignments (
	id %[1]s,
	trip_id %[2]s NOT NULL REFERENCES trips(id),
	vehicle TEXT NOT NULL,
	driver_name TEXT NOT NULL,
	passengers TEXT,
	cargo_notes TEXT,
	misc_notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
	id %[1]s,
	user_id %[2]s NOT NULL REFERENCES users(id),
	domain_id %[2]s NOT NULL REFERENCES domains(id),
	title TEXT NOT NULL,
	description TEXT,
	status TEXT NOT NULL,
	priority %[2]s NOT NULL,
	due_date TEXT,
	origin_doc_id %[2]s REFERENCES documents(id),
	related_property_id %[2]s REFERENCES properties(id),
	related_job_id %[2]s REFERENCES job_options(id),
	related_provider_id %[2]s REFERENCES providers(id),
	related_childcare_id %[2]s REFERENCES childcare_options(id),
	related_trip_id %[2]s REFERENCES trips(id),
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS work_links (
	id %[1]s,
	user_id %[2]s NOT NULL REFERENCES users(id),
	title TEXT NOT NULL,
	url TEXT NOT NULL,
	description TEXT,
	category TEXT,
	icon_emoji TEXT,
	related_task_id %[2]s REFERENCES tasks(id),
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS compliance_items (
	id %[1]s,
	user_id %[2]s NOT NULL REFERENCES users(id),
	subject_type TEXT NOT NULL,
	subject_name TEXT NOT NULL,
	category TEXT NOT NULL,
	status TEXT NOT NULL,
	due_date TEXT,
	completed_date TEXT,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS packing_areas (
	id %[1]s,
	user_id %[2]s NOT NULL REFERENCES users(id),
	name TEXT NOT NULL,
	location_description TEXT,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS packing_boxes (
	id %[1]s,
	area_id %[2]s NOT NULL REFERENCES packing_areas(id) ON DELETE CASCADE,
	label TEXT NOT NULL,
	box_type TEXT,
	weight_kg %[3]s,
	status TEXT,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS packing_items (
	id %[1]s,
	box_id %[2]s NOT NULL REFERENCES packing_boxes(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	quantity %[2]s DEFAULT 1,
	fragile %[2]s DEFAULT 0,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS community_places (
	id %[1]s,
	user_id %[2]s NOT NULL REFERENCES users(id),
	name TEXT NOT NULL,
	address TEXT,
	category TEXT,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS community_visits (
	id %[1]s,
	place_id %[2]s NOT NULL REFERENCES community_places(id) ON DELETE CASCADE,
	visited_at TEXT NOT NULL,
	notes TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

func schemaFor(d dialect) string {
	if d.name() == "postgres" {
		return fmt.Sprintf(schemaTemplate, "BIGSERIAL PRIMARY KEY", "BIGINT", "DOUBLE PRECISION")
	}
	return fmt.Sprintf(schemaTemplate, "INTEGER PRIMARY KEY AUTOINCREMENT", "INTEGER", "REAL")
}

var seedDomains = []struct{ Name, Slug string }{
	{"Housing & Rentals", "housing"},
	{"Work & Career", "work_career"},
	{"Childcare & Schooling", "childcare_schooling"},
	{"Health & Medical", "health"},
	{"Support Plans & Therapies", "support_therapies"},
	{"Licensing, Rego & Checks", "licensing_rego"},
	{"Utilities & Services", "utilities_services"},
	{"Packing, Logistics & Travel", "packing_logistics"},
	{"Church & Community", "church_community"},
	{"Documents & Admin", "documents_admin"},
	{"What Should I Do Next", "next_actions"},
}

// Init creates the schema and seeds base data. It is idempotent: every seed
// block is guarded by a count check, so restarts leave existing data alone.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaFor(s.dialect)); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if err := s.seed(ctx); err != nil {
		return fmt.Errorf("seed data: %w", err)
	}
	return nil
}

func (s *Store) seed(ctx context.Context) error {
	now := nowISO()

	var users int
	if err := s.QueryOne(ctx, "SELECT COUNT(*) FROM users").Scan(&users); err != nil {
		return err
	}
	if users == 0 {
		if _, err := s.Execute(ctx,
			"INSERT INTO users (name, email, created_at, updated_at) VALUES (?, ?, ?, ?)",
			"Primary User", nil, now, now); err != nil {
			return err
		}
	}

	var domains int
	if err := s.QueryOne(ctx, "SELECT COUNT(*) FROM domains").Scan(&domains); err != nil {
		return err
	}
	if domains == 0 {
		for _, d := range seedDomains {
			if _, err := s.Execute(ctx,
				"INSERT INTO domains (name, slug, created_at, updated_at) VALUES (?, ?, ?, ?)",
				d.Name, d.Slug, now, now); err != nil {
				return err
			}
		}
	}

	var properties int
	if err := s.QueryOne(ctx, "SELECT COUNT(*) FROM properties").Scan(&properties); err != nil {
		return err
	}
	if properties == 0 {
		if _, err := s.Execute(ctx,
			"INSERT INTO properties (user_id, address, type, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			1, "Current home (origin city)", "origin_home", "owned", now, now); err != nil {
			return err
		}
	}

	var areas int
	if err := s.QueryOne(ctx, "SELECT COUNT(*) FROM packing_areas").Scan(&areas); err != nil {
		return err
	}
	if areas == 0 {
		if err := s.seedPacking(ctx, now); err != nil {
			return err
		}
	}

	var places int
	if err := s.QueryOne(ctx, "SELECT COUNT(*) FROM community_places").Scan(&places); err != nil {
		return err
	}
	if places == 0 {
		for _, p := range [][2]string{{"Local Church", "religion"}, {"Community Centre", "community"}} {
			if _, err := s.Execute(ctx,
				"INSERT INTO community_places (user_id, name, address, category, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
				1, p[0], nil, p[1], nil, now, now); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Store) seedPacking(ctx context.Context, now string) error {
	areaRow, err := s.InsertReturning(ctx, "packing_areas",
		"INSERT INTO packing_areas (user_id, name, location_description, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		1, "Lounge", "Downstairs lounge", "Main living area boxes", now, now)
	if err != nil {
		return err
	}
	area, err := scanPackingArea(areaRow)
	if err != nil {
		return err
	}

	type box struct {
		label, notes string
		weight       float64
		items        [][3]any // name, quantity, fragile
	}
	boxes := []box{
		{"Box A - Books", "Heavy with books", 10, [][3]any{{"Hardcover books", 12, 0}, {"Magazines", 5, 0}}},
		{"Box B - Kitchen", "", 8, [][3]any{{"Plates", 8, 1}}},
	}
	for _, b := range boxes {
		var notes *string
		if b.notes != "" {
			notes = &b.notes
		}
		boxRow, err := s.InsertReturning(ctx, "packing_boxes",
			"INSERT INTO packing_boxes (area_id, label, box_type, weight_kg, status, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			area.ID, b.label, "cardboard", b.weight, "packed", notes, now, now)
		if err != nil {
			return err
		}
		created, err := scanPackingBox(boxRow)
		if err != nil {
			return err
		}
		for _, it := range b.items {
			if _, err := s.Execute(ctx,
				"INSERT INTO packing_items (box_id, name, quantity, fragile, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
				created.ID, it[0], it[1], it[2], nil, now, now); err != nil {
				return err
			}
		}
	}
	return nil
}
