package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"beamtime-api/models"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	return db, mock
}

func TestMonthlyReportRollsBackOnQueryFailure(t *testing.T) {
	db, mock := newMockDB(t)
	failure := errors.New("connection reset by peer")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `created_at` FROM `beamtime_requests`")).WillReturnError(failure)
	mock.ExpectRollback()

	_, err := NewReportService(db).Monthly(ctx(), 2024)
	if !errors.Is(err, failure) {
		t.Fatalf("expected storage error, got %v", err)
	}
	var kind *Error
	if errors.As(err, &kind) {
		t.Fatalf("plain storage failures must not be classified, got %v", kind.Kind)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMonthlyReportAgainstMySQLDialect(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `created_at` FROM `beamtime_requests` WHERE created_at BETWEEN ? AND ?")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).
			AddRow(time.Date(2024, time.May, 2, 8, 0, 0, 0, time.UTC)).
			AddRow(time.Date(2024, time.May, 9, 8, 0, 0, 0, time.UTC)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `created_at` FROM `allocations` WHERE created_at BETWEEN ? AND ?")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).
			AddRow(time.Date(2024, time.July, 1, 8, 0, 0, 0, time.UTC)))
	mock.ExpectCommit()

	report, err := NewReportService(db).Monthly(ctx(), 2024)
	if err != nil {
		t.Fatalf("Monthly returned error: %v", err)
	}
	want := []models.MonthlyReportItem{
		{Month: "2024-05", RequestCount: 2},
		{Month: "2024-07", AllocationCount: 1},
	}
	if len(report) != 2 || report[0] != want[0] || report[1] != want[1] {
		t.Fatalf("unexpected report %#v", report)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDuplicateKeyFromMySQLBecomesConflict(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users`")).
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'pi@example.com' for key 'idx_users_email'"})
	mock.ExpectRollback()

	_, err := NewUserService(db).Create(ctx(), CreateUserInput{Name: "Dr. PI", Email: "pi@example.com", Role: models.RolePI})
	assertKind(t, err, ErrConflict)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTranslateStorageError(t *testing.T) {
	cases := []struct {
		err      error
		conflict bool
	}{
		{gorm.ErrDuplicatedKey, true},
		{gorm.ErrForeignKeyViolated, true},
		{errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)"), true},
		{errors.New("constraint failed: FOREIGN KEY constraint failed (787)"), true},
		{errors.New("i/o timeout"), false},
	}
	for _, tc := range cases {
		got := translateStorageError(tc.err)
		if errors.Is(got, ErrConflict) != tc.conflict {
			t.Fatalf("translateStorageError(%v) = %v, conflict want %v", tc.err, got, tc.conflict)
		}
	}

	domain := notFound("User")
	if translateStorageError(domain) != domain {
		t.Fatalf("domain errors must pass through unchanged")
	}
	if translateStorageError(nil) != nil {
		t.Fatalf("nil must stay nil")
	}
}
