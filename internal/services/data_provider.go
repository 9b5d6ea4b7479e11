package services

import (
	"strconv"
	"time"

	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/dto"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/fixtures"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/models"
)

// DataProvider is the nine-operation contract the admin shell reads and writes through.
// Operations never fail.
type DataProvider interface {
	GetList(resource string) dto.ListResult
	GetOne(resource string, params dto.GetOneParams) dto.RecordResult
	GetMany(resource string, params dto.GetManyParams) dto.RecordsResult
	GetManyReference(resource string, params dto.GetManyReferenceParams) dto.ListResult
	Create(resource string, params dto.CreateParams) dto.RecordResult
	Update(resource string, params dto.UpdateParams) dto.RecordResult
	UpdateMany(resource string, params dto.UpdateManyParams) dto.IDsResult
	Delete(resource string, params dto.DeleteParams) dto.RecordResult
	DeleteMany(resource string, params dto.DeleteManyParams) dto.IDsResult
}

// MockDataProvider answers from a fixed fixture set. Writes are synthesized
// and discarded, so GetList always returns the fixtures it was built with.
// It holds no mutable state and is safe for concurrent use.
type MockDataProvider struct {
	fixtures *fixtures.Set
	now      func() time.Time
}

func NewMockDataProvider(set *fixtures.Set) *MockDataProvider {
	if set == nil {
		set = fixtures.Default()
	}
	return &MockDataProvider{
		fixtures: set.Clone(),
		now:      time.Now,
	}
}

// WithClock replaces the clock used to mint ids on Create.
func (p *MockDataProvider) WithClock(now func() time.Time) *MockDataProvider {
	p.now = now
	return p
}

func (p *MockDataProvider) GetList(resource string) dto.ListResult {
	r, _ := models.ParseResource(resource)
	data := p.fixtures.Records(r)
	return dto.ListResult{Data: data, Total: len(data)}
}

// GetOne returns a placeholder; it does not look the id up in the fixtures.
func (p *MockDataProvider) GetOne(resource string, params dto.GetOneParams) dto.RecordResult {
	return dto.RecordResult{Data: models.Record{
		"id":   params.ID,
		"name": "Mock " + resource,
	}}
}

func (p *MockDataProvider) GetMany(resource string, params dto.GetManyParams) dto.RecordsResult {
	data := make([]models.Record, 0, len(params.IDs))
	for _, id := range params.IDs {
		data = append(data, models.Record{
			"id":   id,
			"name": "Mock " + resource + " " + id,
		})
	}
	return dto.RecordsResult{Data: data}
}

func (p *MockDataProvider) GetManyReference(string, dto.GetManyReferenceParams) dto.ListResult {
	return dto.ListResult{Data: []models.Record{}, Total: 0}
}

func (p *MockDataProvider) Create(_ string, params dto.CreateParams) dto.RecordResult {
	data := params.Data.Clone()
	data["id"] = strconv.FormatInt(p.now().UnixMilli(), 10)
	return dto.RecordResult{Data: data}
}

func (p *MockDataProvider) Update(_ string, params dto.UpdateParams) dto.RecordResult {
	data := params.Data.Clone()
	data["id"] = params.ID
	return dto.RecordResult{Data: data}
}

func (p *MockDataProvider) UpdateMany(_ string, params dto.UpdateManyParams) dto.IDsResult {
	return dto.IDsResult{Data: copyIDs(params.IDs)}
}

func (p *MockDataProvider) Delete(_ string, params dto.DeleteParams) dto.RecordResult {
	return dto.RecordResult{Data: models.Record{"id": params.ID}}
}

func (p *MockDataProvider) DeleteMany(_ string, params dto.DeleteManyParams) dto.IDsResult {
	return dto.IDsResult{Data: copyIDs(params.IDs)}
}

func copyIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
