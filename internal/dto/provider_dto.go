package dto

import "github.com/ahmetcoskunkizilkaya/sifter-admin/internal/models"

type GetOneParams struct {
	ID string `json:"id"`
}

type GetManyParams struct {
	IDs []string `json:"ids"`
}

type GetManyReferenceParams struct {
	Target string `json:"target"`
	ID     string `json:"id"`
}

type CreateParams struct {
	Data models.Record `json:"data"`
}

type UpdateParams struct {
	ID   string        `json:"id"`
	Data models.Record `json:"data"`
}

type UpdateManyParams struct {
	IDs  []string      `json:"ids"`
	Data models.Record `json:"data"`
}

type DeleteParams struct {
	ID string `json:"id"`
}

type DeleteManyParams struct {
	IDs []string `json:"ids"`
}

// ListResult answers GetList and GetManyReference.
type ListResult struct {
	Data  []models.Record `json:"data"`
	Total int             `json:"total"`
}

// RecordResult answers GetOne, Create, Update and Delete.
type RecordResult struct {
	Data models.Record `json:"data"`
}

// RecordsResult answers GetMany.
type RecordsResult struct {
	Data []models.Record `json:"data"`
}

// IDsResult answers UpdateMany and DeleteMany.
type IDsResult struct {
	Data []string `json:"data"`
}
