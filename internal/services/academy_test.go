package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/database"
	"github.com/iyforlando/academy-api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAcademyService(t *testing.T) (*AcademyService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewAcademyService(db), mock
}

func academyRows(a *models.Academy) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "season", "has_levels", "teacher_email", "created_at", "updated_at"}).
		AddRow(a.ID, a.Name, a.Season, a.HasLevels, a.TeacherEmail, a.CreatedAt, a.UpdatedAt)
}

func TestAcademyService_Create(t *testing.T) {
	svc, mock := setupAcademyService(t)
	ctx := context.Background()
	teacher := "coach@example.com"

	expected := &models.Academy{
		ID:           uuid.New(),
		Name:         "Soccer",
		Season:       "2026-spring",
		TeacherEmail: &teacher,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	mock.ExpectQuery(`INSERT INTO academies`).
		WithArgs("Soccer", "2026-spring", false, &teacher).
		WillReturnRows(academyRows(expected))

	academy, err := svc.Create(ctx, "Soccer", "2026-spring", false, &teacher)

	require.NoError(t, err)
	assert.Equal(t, expected.ID, academy.ID)
	require.NotNil(t, academy.TeacherEmail)
	assert.Equal(t, teacher, *academy.TeacherEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcademyService_List_FilterBySeason(t *testing.T) {
	svc, mock := setupAcademyService(t)
	ctx := context.Background()

	rows := pgxmock.NewRows([]string{"id", "name", "season", "has_levels", "teacher_email", "created_at", "updated_at"}).
		AddRow(uuid.New(), "Korean", "2026-spring", true, nil, time.Now(), time.Now())

	mock.ExpectQuery(`SELECT id, name, season, has_levels, teacher_email, created_at, updated_at`).
		WithArgs("2026-spring").
		WillReturnRows(rows)

	academies, err := svc.List(ctx, "2026-spring")

	require.NoError(t, err)
	assert.Len(t, academies, 1)
	assert.Equal(t, "Korean", academies[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcademyService_AddLevel_RequiresHasLevels(t *testing.T) {
	svc, mock := setupAcademyService(t)
	ctx := context.Background()

	flat := &models.Academy{
		ID:        uuid.New(),
		Name:      "Soccer",
		Season:    "2026-spring",
		HasLevels: false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectQuery(`SELECT id, name, season, has_levels, teacher_email, created_at, updated_at`).
		WithArgs(flat.ID).
		WillReturnRows(academyRows(flat))

	_, err := svc.AddLevel(ctx, flat.ID, "Beginner", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not have levels")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcademyService_AddLevel(t *testing.T) {
	svc, mock := setupAcademyService(t)
	ctx := context.Background()
	teacher := "ms.kim@example.com"

	leveled := &models.Academy{
		ID:        uuid.New(),
		Name:      "Korean",
		Season:    "2026-spring",
		HasLevels: true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectQuery(`SELECT id, name, season, has_levels, teacher_email, created_at, updated_at`).
		WithArgs(leveled.ID).
		WillReturnRows(academyRows(leveled))

	levelID := uuid.New()
	levelRows := pgxmock.NewRows([]string{"id", "academy_id", "name", "teacher_email", "created_at"}).
		AddRow(levelID, leveled.ID, "Beginner", &teacher, time.Now())

	mock.ExpectQuery(`INSERT INTO levels`).
		WithArgs(leveled.ID, "Beginner", &teacher).
		WillReturnRows(levelRows)

	level, err := svc.AddLevel(ctx, leveled.ID, "Beginner", &teacher)

	require.NoError(t, err)
	assert.Equal(t, levelID, level.ID)
	assert.Equal(t, "Beginner", level.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcademyService_GetByID_NotFound(t *testing.T) {
	svc, mock := setupAcademyService(t)
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectQuery(`SELECT id, name, season, has_levels, teacher_email, created_at, updated_at`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.GetByID(ctx, id)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcademyService_Delete(t *testing.T) {
	svc, mock := setupAcademyService(t)
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM academies WHERE id`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := svc.Delete(ctx, id)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
