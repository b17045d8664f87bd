package database

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) UNIQUE NOT NULL,
		display_name VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'viewer',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS academies (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		season VARCHAR(100) NOT NULL,
		has_levels BOOLEAN NOT NULL DEFAULT FALSE,
		teacher_email VARCHAR(255),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS levels (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		academy_id UUID NOT NULL REFERENCES academies(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		teacher_email VARCHAR(255),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(academy_id, name)
	)`,

	`CREATE TABLE IF NOT EXISTS students (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		email VARCHAR(255),
		phone VARCHAR(50),
		birth_date DATE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS registrations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		academy_id UUID NOT NULL REFERENCES academies(id) ON DELETE CASCADE,
		level_id UUID REFERENCES levels(id) ON DELETE SET NULL,
		season VARCHAR(100) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(student_id, academy_id, season)
	)`,

	`CREATE TABLE IF NOT EXISTS invoices (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		registration_id UUID NOT NULL REFERENCES registrations(id) ON DELETE CASCADE,
		description VARCHAR(500) NOT NULL DEFAULT '',
		amount_cents BIGINT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'open',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		invoice_id UUID NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
		amount_cents BIGINT NOT NULL,
		method VARCHAR(50) NOT NULL,
		paid_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS attendance_sessions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		academy_id UUID NOT NULL REFERENCES academies(id) ON DELETE CASCADE,
		level_id UUID REFERENCES levels(id) ON DELETE CASCADE,
		held_on DATE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS attendance_records (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		session_id UUID NOT NULL REFERENCES attendance_sessions(id) ON DELETE CASCADE,
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		status VARCHAR(20) NOT NULL,
		UNIQUE(session_id, student_id)
	)`,

	`CREATE TABLE IF NOT EXISTS volunteer_hours (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		activity VARCHAR(255) NOT NULL,
		hours NUMERIC(5,2) NOT NULL,
		served_on DATE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS impersonation_state (
		admin_id UUID PRIMARY KEY REFERENCES profiles(id) ON DELETE CASCADE,
		impersonated_email VARCHAR(255) NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		profile_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		token_hash VARCHAR(255) NOT NULL UNIQUE,
		expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	// Assignment matching is case-insensitive, index the lowered column
	`CREATE INDEX IF NOT EXISTS idx_academies_teacher_email ON academies(LOWER(teacher_email))`,
	`CREATE INDEX IF NOT EXISTS idx_levels_teacher_email ON levels(LOWER(teacher_email))`,
	`CREATE INDEX IF NOT EXISTS idx_levels_academy_id ON levels(academy_id)`,
	`CREATE INDEX IF NOT EXISTS idx_registrations_academy_id ON registrations(academy_id)`,
	`CREATE INDEX IF NOT EXISTS idx_registrations_student_id ON registrations(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_registrations_season ON registrations(season)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_registration_id ON invoices(registration_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_invoice_id ON payments(invoice_id)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_sessions_academy_id ON attendance_sessions(academy_id)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_records_session_id ON attendance_records(session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_records_student_id ON attendance_records(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_volunteer_hours_email ON volunteer_hours(LOWER(email))`,
	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_profile_id ON refresh_tokens(profile_id)`,
}
