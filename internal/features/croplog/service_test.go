package croplog

import (
	"context"
	"testing"
	"time"

	"kisanmitra/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeCropLogRepo keeps logs in memory, keyed by hex id.
type fakeCropLogRepo struct {
	logs map[string]*CropLog
}

func newFakeCropLogRepo() *fakeCropLogRepo {
	return &fakeCropLogRepo{logs: make(map[string]*CropLog)}
}

func (f *fakeCropLogRepo) Create(ctx context.Context, log *CropLog) error {
	log.ID = primitive.NewObjectID()
	copied := *log
	f.logs[log.ID.Hex()] = &copied
	return nil
}

func (f *fakeCropLogRepo) FindOwned(ctx context.Context, id string, userID primitive.ObjectID) (*CropLog, error) {
	if log, ok := f.logs[id]; ok && log.UserID == userID {
		copied := *log
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCropLogRepo) List(ctx context.Context, userID primitive.ObjectID, filter bson.M, params utils.PaginationParams) ([]CropLog, int64, error) {
	out := []CropLog{}
	for _, log := range f.logs {
		if log.UserID == userID {
			out = append(out, *log)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeCropLogRepo) Replace(ctx context.Context, log *CropLog) error {
	if existing, ok := f.logs[log.ID.Hex()]; !ok || existing.UserID != log.UserID {
		return mongo.ErrNoDocuments
	}
	copied := *log
	f.logs[log.ID.Hex()] = &copied
	return nil
}

func (f *fakeCropLogRepo) Delete(ctx context.Context, id string, userID primitive.ObjectID) error {
	if log, ok := f.logs[id]; ok && log.UserID == userID {
		delete(f.logs, id)
		return nil
	}
	return mongo.ErrNoDocuments
}

func (f *fakeCropLogRepo) Statistics(ctx context.Context, userID primitive.ObjectID) (*Statistics, error) {
	return &Statistics{}, nil
}

func (f *fakeCropLogRepo) FindAllOwned(ctx context.Context, userID primitive.ObjectID) ([]CropLog, error) {
	out := []CropLog{}
	for _, log := range f.logs {
		if log.UserID == userID {
			out = append(out, *log)
		}
	}
	return out, nil
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := NewCropLogService(newFakeCropLogRepo())

	log := &CropLog{
		UserID:       primitive.NewObjectID(),
		CropName:     "Wheat",
		Area:         5,
		PlantingDate: time.Now(),
		Expenses:     Expenses{Seeds: 200, Labor: 800, Total: 42},
	}
	if err := svc.Create(context.Background(), log); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if log.Status != StatusPlanning {
		t.Errorf("Status = %q, want %q", log.Status, StatusPlanning)
	}
	if log.Unit != "acres" {
		t.Errorf("Unit = %q, want %q", log.Unit, "acres")
	}
	if log.Activities == nil {
		t.Error("Activities = nil, want empty slice")
	}
	if log.Expenses.Total != 1000 {
		t.Errorf("Expenses.Total = %v, want 1000: client-supplied total must be recomputed", log.Expenses.Total)
	}
	if log.ID.IsZero() {
		t.Error("ID not assigned on create")
	}
}

func TestUpdateRecomputesExpenses(t *testing.T) {
	repo := newFakeCropLogRepo()
	svc := NewCropLogService(repo)
	owner := primitive.NewObjectID()

	log := &CropLog{UserID: owner, CropName: "Rice", PlantingDate: time.Now()}
	if err := svc.Create(context.Background(), log); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(context.Background(), log.ID.Hex(), owner, UpdateInput{
		Expenses: &Expenses{Seeds: 100, Fertilizers: 50, Total: 99999},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Expenses.Total != 150 {
		t.Errorf("Expenses.Total = %v, want 150", updated.Expenses.Total)
	}
}

func TestUpdateByNonOwner(t *testing.T) {
	repo := newFakeCropLogRepo()
	svc := NewCropLogService(repo)
	owner := primitive.NewObjectID()

	log := &CropLog{UserID: owner, CropName: "Rice", PlantingDate: time.Now()}
	if err := svc.Create(context.Background(), log); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	name := "Stolen"
	_, err := svc.Update(context.Background(), log.ID.Hex(), primitive.NewObjectID(), UpdateInput{CropName: &name})
	if err != mongo.ErrNoDocuments {
		t.Errorf("Update() by non-owner error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestAddActivity(t *testing.T) {
	repo := newFakeCropLogRepo()
	svc := NewCropLogService(repo)
	owner := primitive.NewObjectID()

	log := &CropLog{UserID: owner, CropName: "Cotton", PlantingDate: time.Now()}
	if err := svc.Create(context.Background(), log); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.AddActivity(context.Background(), log.ID.Hex(), owner, Activity{
		Type:        ActivityIrrigation,
		Description: "Drip irrigation, north field",
		Cost:        150,
	})
	if err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}

	if len(updated.Activities) != 1 {
		t.Fatalf("len(Activities) = %d, want 1", len(updated.Activities))
	}
	if updated.Activities[0].Date.IsZero() {
		t.Error("activity date not defaulted to now")
	}
}

func TestExportWorkbook(t *testing.T) {
	repo := newFakeCropLogRepo()
	svc := NewCropLogService(repo)
	owner := primitive.NewObjectID()

	log := &CropLog{
		UserID:       owner,
		CropName:     "Wheat",
		Variety:      "HD-2967",
		Area:         5,
		PlantingDate: time.Now(),
		Expenses:     Expenses{Seeds: 200},
		Revenue:      5000,
	}
	if err := svc.Create(context.Background(), log); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	file, err := svc.ExportWorkbook(context.Background(), owner)
	if err != nil {
		t.Fatalf("ExportWorkbook() error = %v", err)
	}

	name, err := file.GetCellValue("Crop Logs", "A2")
	if err != nil {
		t.Fatalf("GetCellValue() error = %v", err)
	}
	if name != "Wheat" {
		t.Errorf("first data row crop name = %q, want %q", name, "Wheat")
	}
}
