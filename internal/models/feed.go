package models

import (
	"encoding/json"
	"sort"
	"time"
)

// FeedEntry - элемент суточного списка выгрузки: краткая запись об
// опубликованном документе со ссылкой на полный конверт.
type FeedEntry struct {
	BidderOrgCode          string    `json:"bidderOrgCode"`
	RightHolderCode        string    `json:"rightHolderCode"`
	DocumentType           string    `json:"documentType"`
	RegNum                 string    `json:"regNum"`
	PublishDate            time.Time `json:"publishDate"`
	BiddTypeCode           string    `json:"biddTypeCode"`
	OwnershipFormsCode     string    `json:"ownershipFormsCode"`
	SubjectEstateCode      string    `json:"subjectEstateCode"`
	SubjectRightHolderCode string    `json:"subjectRightHolderCode"`
	Href                   string    `json:"href"`
}

func (e *FeedEntry) validate(path string) error {
	if e.DocumentType == "" {
		return missingField(path, "documentType")
	}
	if e.RegNum == "" {
		return missingField(path, "regNum")
	}
	if e.Href == "" {
		return missingField(path, "href")
	}
	return nil
}

// DayList - суточный список опубликованных документов.
type DayList struct {
	ListObjects []FeedEntry `json:"listObjects"`
}

// ParseDayList разбирает и валидирует суточный список выгрузки.
func ParseDayList(data []byte) (*DayList, error) {
	var d DayList
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &ValidationError{Path: "listObjects", Reason: "malformed payload", Err: err}
	}
	if d.ListObjects == nil {
		d.ListObjects = []FeedEntry{}
	}
	for i := range d.ListObjects {
		if err := d.ListObjects[i].validate(indexPath("listObjects", i)); err != nil {
			return nil, err
		}
	}
	return &d, nil
}

// Filtered возвращает записи списка с указанным видом документа.
func (d *DayList) Filtered(documentType string) []FeedEntry {
	var entries []FeedEntry
	for _, entry := range d.ListObjects {
		if entry.DocumentType == documentType {
			entries = append(entries, entry)
		}
	}
	return entries
}

// DataBlock - описание блока данных в метаинформации выгрузки.
type DataBlock struct {
	Source     string   `json:"source"`
	Created    DateTime `json:"created"`
	Provenance string   `json:"provenance"`
	Valid      Date     `json:"valid"`
	Structure  Date     `json:"structure"`
}

func (b *DataBlock) validate(path string) error {
	if b.Source == "" {
		return missingField(path, "source")
	}
	if err := b.Created.parse(); err != nil {
		return invalidField(path, "created", err)
	}
	if err := b.Valid.parse(); err != nil {
		return invalidField(path, "valid", err)
	}
	if err := b.Structure.parse(); err != nil {
		return invalidField(path, "structure", err)
	}
	return nil
}

// StructureBlock - описание структуры данных в метаинформации выгрузки.
type StructureBlock struct {
	Source  string `json:"source"`
	Created Date   `json:"created"`
}

func (b *StructureBlock) validate(path string) error {
	if b.Source == "" {
		return missingField(path, "source")
	}
	if err := b.Created.parse(); err != nil {
		return invalidField(path, "created", err)
	}
	return nil
}

// Publisher - издатель выгрузки.
type Publisher struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Mbox  string `json:"mbox"`
}

// ExportMeta - метаинформация выгрузки открытых данных.
type ExportMeta struct {
	StandardVersion string           `json:"standardversion"`
	Identifier      string           `json:"identifier"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Creator         string           `json:"creator"`
	Created         Date             `json:"created"`
	Modified        DateTime         `json:"modified"`
	Subject         string           `json:"subject"`
	Format          string           `json:"format"`
	Data            []DataBlock      `json:"data"`
	Structure       []StructureBlock `json:"structure"`
	Publisher       Publisher        `json:"publisher"`
}

// ParseExportMeta разбирает и валидирует метаинформацию выгрузки.
func ParseExportMeta(data []byte) (*ExportMeta, error) {
	var m ExportMeta
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &ValidationError{Path: "meta", Reason: "malformed payload", Err: err}
	}
	if m.Identifier == "" {
		return nil, missingField("meta", "identifier")
	}
	if err := m.Created.parse(); err != nil {
		return nil, invalidField("meta", "created", err)
	}
	if err := m.Modified.parse(); err != nil {
		return nil, invalidField("meta", "modified", err)
	}
	if m.Data == nil {
		m.Data = []DataBlock{}
	}
	for i := range m.Data {
		if err := m.Data[i].validate(indexPath("meta.data", i)); err != nil {
			return nil, err
		}
	}
	if m.Structure == nil {
		m.Structure = []StructureBlock{}
	}
	for i := range m.Structure {
		if err := m.Structure[i].validate(indexPath("meta.structure", i)); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// SortedData возвращает блоки данных от новых к старым.
func (m *ExportMeta) SortedData() []DataBlock {
	blocks := make([]DataBlock, len(m.Data))
	copy(blocks, m.Data)
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Created.Time().After(blocks[j].Created.Time())
	})
	return blocks
}
