package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/fleetkeeper/internal/common"
	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
)

func TestVehicleService_Create(t *testing.T) {
	db, _ := newTxMockDB(t)
	svc := NewVehicleService(db, &fakeRepoManager{v: &fakeVehiclesRepo{}})

	got, err := svc.Create(context.Background(), &models.Vehicle{Name: "KTM 390", Plate: "AB-123-CD", KmOrHours: 12000})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected a minted vehicle id")
	}
}

func TestVehicleService_Create_MissingName(t *testing.T) {
	db, _ := newTxMockDB(t)
	svc := NewVehicleService(db, &fakeRepoManager{v: &fakeVehiclesRepo{}})

	if _, err := svc.Create(context.Background(), &models.Vehicle{Plate: "ZZ-999-ZZ"}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want common.ErrorValidation, got %v", err)
	}
}

func TestVehicleService_Update_Validation(t *testing.T) {
	db, _ := newTxMockDB(t)
	svc := NewVehicleService(db, &fakeRepoManager{v: &fakeVehiclesRepo{}})

	if _, err := svc.Update(context.Background(), &models.Vehicle{Name: "no id"}); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want common.ErrorValidation, got %v", err)
	}
}

func TestVehicleService_Get_NotFound(t *testing.T) {
	db, _ := newTxMockDB(t)
	svc := NewVehicleService(db, &fakeRepoManager{v: &fakeVehiclesRepo{getErr: common.ErrorNotFound}})

	if _, err := svc.Get(context.Background(), "v-ghost"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestVehicleService_List(t *testing.T) {
	db, _ := newTxMockDB(t)
	want := []*models.Vehicle{{ID: "v-1", Name: "tractor"}, {ID: "v-2", Name: "van"}}
	svc := NewVehicleService(db, &fakeRepoManager{v: &fakeVehiclesRepo{listOut: want}})

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "v-1" {
		t.Fatalf("unexpected list result: %+v", got)
	}
}
