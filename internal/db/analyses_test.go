package db

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return &DB{sqlDB}, mock
}

func TestInsertAnalysis(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(sqlmock.AnyArg(), "anonymous", 25, 70.0, 175.0, 28.0,
			false, false, false, true, 22.86, 55).
		WillReturnResult(sqlmock.NewResult(0, 1))

	a := &Analysis{
		UserID:    "anonymous",
		Age:       25,
		Weight:    70,
		Height:    175,
		Cycle:     28,
		Pimples:   true,
		BMI:       22.86,
		RiskLevel: 55,
	}

	id, err := db.InsertAnalysis(context.Background(), a)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if id == "" {
		t.Error("expected generated id")
	}
	if a.ID != id {
		t.Errorf("expected record id to be set to %s, got %s", id, a.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestInsertAnalysisComputesMissingBMI(t *testing.T) {
	db, mock := newMockDB(t)

	// BMI omitted by the caller gets recomputed from height/weight on save
	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(sqlmock.AnyArg(), "anonymous", 25, 70.0, 175.0, 28.0,
			false, false, false, false, 22.86, 55).
		WillReturnResult(sqlmock.NewResult(0, 1))

	a := &Analysis{
		UserID:    "anonymous",
		Age:       25,
		Weight:    70,
		Height:    175,
		Cycle:     28,
		RiskLevel: 55,
	}

	if _, err := db.InsertAnalysis(context.Background(), a); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if a.BMI != 22.86 {
		t.Errorf("expected BMI 22.86 attached on save, got %v", a.BMI)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestInsertAnalysisError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO analyses").
		WillReturnError(context.DeadlineExceeded)

	a := &Analysis{UserID: "anonymous", Age: 25, Weight: 70, Height: 175, Cycle: 28, BMI: 22.86}
	if _, err := db.InsertAnalysis(context.Background(), a); err == nil {
		t.Fatal("expected error")
	}
}
