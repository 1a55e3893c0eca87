package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
)

func newTxMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestMaintenanceService_Create_BumpsOdometer(t *testing.T) {
	db, mock := newTxMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	vehiclesRepo := &fakeVehiclesRepo{getOut: &models.Vehicle{ID: "v-1", KmOrHours: 100}}
	maintRepo := &fakeMaintenancesRepo{}
	svc := NewMaintenanceService(db, &fakeRepoManager{v: vehiclesRepo, m: maintRepo})

	m := &models.Maintenance{VehicleID: "v-1", Type: "oil change", Date: "2026-08-30", KmOrHours: 150}
	got, err := svc.Create(context.Background(), m)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected a minted maintenance id")
	}
	if len(vehiclesRepo.odometerCalls) != 1 || vehiclesRepo.odometerCalls[0] != 150 {
		t.Fatalf("expected odometer bump to 150, got %v", vehiclesRepo.odometerCalls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("tx expectations: %v", err)
	}
}

func TestMaintenanceService_Create_KeepsOdometerWhenLower(t *testing.T) {
	db, mock := newTxMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	vehiclesRepo := &fakeVehiclesRepo{getOut: &models.Vehicle{ID: "v-1", KmOrHours: 2000}}
	svc := NewMaintenanceService(db, &fakeRepoManager{v: vehiclesRepo, m: &fakeMaintenancesRepo{}})

	m := &models.Maintenance{VehicleID: "v-1", Type: "inspection", KmOrHours: 150}
	if _, err := svc.Create(context.Background(), m); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if len(vehiclesRepo.odometerCalls) != 0 {
		t.Fatalf("odometer must not move backwards, got %v", vehiclesRepo.odometerCalls)
	}
}

func TestMaintenanceService_Create_UnknownVehicle(t *testing.T) {
	db, mock := newTxMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	vehiclesRepo := &fakeVehiclesRepo{getErr: common.ErrorNotFound}
	svc := NewMaintenanceService(db, &fakeRepoManager{v: vehiclesRepo, m: &fakeMaintenancesRepo{}})

	m := &models.Maintenance{VehicleID: "v-ghost", Type: "oil change"}
	_, err := svc.Create(context.Background(), m)
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want common.ErrorValidation, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("tx expectations: %v", err)
	}
}

func TestMaintenanceService_Create_MissingFields(t *testing.T) {
	db, _ := newTxMockDB(t)
	svc := NewMaintenanceService(db, &fakeRepoManager{})

	if _, err := svc.Create(context.Background(), &models.Maintenance{Type: "oil change"}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want common.ErrorValidation for missing vehicle, got %v", err)
	}
	if _, err := svc.Create(context.Background(), &models.Maintenance{VehicleID: "v-1"}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want common.ErrorValidation for missing type, got %v", err)
	}
}

func TestMaintenanceService_Create_RepoErrorRollsBack(t *testing.T) {
	db, mock := newTxMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	vehiclesRepo := &fakeVehiclesRepo{getOut: &models.Vehicle{ID: "v-1"}}
	maintRepo := &fakeMaintenancesRepo{createErr: errors.New("db down")}
	svc := NewMaintenanceService(db, &fakeRepoManager{v: vehiclesRepo, m: maintRepo})

	_, err := svc.Create(context.Background(), &models.Maintenance{VehicleID: "v-1", Type: "oil change"})
	if err == nil {
		t.Fatalf("expected error from repository")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("tx expectations: %v", err)
	}
}

func TestMaintenanceService_Delete_Passthrough(t *testing.T) {
	db, _ := newTxMockDB(t)
	maintRepo := &fakeMaintenancesRepo{deleteErr: common.ErrorNotFound}
	svc := NewMaintenanceService(db, &fakeRepoManager{m: maintRepo})

	if err := svc.Delete(context.Background(), "m-ghost"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
