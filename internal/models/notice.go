package models

import (
	"fmt"
	"time"
)

// CommonInfo - общие сведения об извещении.
type CommonInfo struct {
	NoticeNumber  string    `json:"noticeNumber"`
	BiddType      CodeName  `json:"biddType"`
	BiddForm      CodeName  `json:"biddForm"`
	PublishDate   DateTime  `json:"publishDate"`
	ProcedureName string    `json:"procedureName"`
	ETP           *CodeName `json:"etp"`
	Href          string    `json:"href"`
}

func (c *CommonInfo) validate(path string) error {
	if c.NoticeNumber == "" {
		return missingField(path, "noticeNumber")
	}
	if err := c.BiddType.validate(joinPath(path, "biddType")); err != nil {
		return err
	}
	if err := c.BiddForm.validate(joinPath(path, "biddForm")); err != nil {
		return err
	}
	if c.PublishDate.IsZero() {
		return missingField(path, "publishDate")
	}
	if err := c.PublishDate.parse(); err != nil {
		return invalidField(path, "publishDate", err)
	}
	if c.ProcedureName == "" {
		return missingField(path, "procedureName")
	}
	if c.ETP != nil {
		if err := c.ETP.validate(joinPath(path, "etp")); err != nil {
			return err
		}
	}
	if c.Href == "" {
		return missingField(path, "href")
	}
	return nil
}

// OrgInfo - реквизиты организации.
type OrgInfo struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	INN           string `json:"INN"`
	KPP           string `json:"KPP"`
	OGRN          string `json:"OGRN"`
	OrgType       string `json:"orgType"`
	LegalAddress  string `json:"legalAddress"`
	ActualAddress string `json:"actualAddress"`
}

func (o *OrgInfo) validate(path string) error {
	if o.Code == "" {
		return missingField(path, "code")
	}
	if o.Name == "" {
		return missingField(path, "name")
	}
	if o.INN == "" {
		return missingField(path, "INN")
	}
	if o.OGRN == "" {
		return missingField(path, "OGRN")
	}
	if o.OrgType == "" {
		return missingField(path, "orgType")
	}
	if o.LegalAddress == "" {
		return missingField(path, "legalAddress")
	}
	if o.ActualAddress == "" {
		return missingField(path, "actualAddress")
	}
	return nil
}

// ContactInfo - контактные данные организатора торгов.
type ContactInfo struct {
	ContPerson string `json:"contPerson"`
	Tel        string `json:"tel"`
	Email      string `json:"email"`
}

func (c *ContactInfo) validate(path string) error {
	if c.ContPerson == "" {
		return missingField(path, "contPerson")
	}
	if c.Tel == "" {
		return missingField(path, "tel")
	}
	if c.Email == "" {
		return missingField(path, "email")
	}
	return nil
}

// BidderOrg - организатор торгов с контактными данными.
type BidderOrg struct {
	OrgInfo     OrgInfo     `json:"orgInfo"`
	ContactInfo ContactInfo `json:"contactInfo"`
}

func (b *BidderOrg) validate(path string) error {
	if err := b.OrgInfo.validate(joinPath(path, "orgInfo")); err != nil {
		return err
	}
	return b.ContactInfo.validate(joinPath(path, "contactInfo"))
}

// RightHolderInfo - сведения о правообладателе.
type RightHolderInfo struct {
	BiddOrgRightHolder bool    `json:"biddOrgRightHolder"`
	RightHolderOrg     OrgInfo `json:"rightHolderOrg"`
}

func (r *RightHolderInfo) validate(path string) error {
	return r.RightHolderOrg.validate(joinPath(path, "rightHolderOrg"))
}

// BiddConditions - сроки проведения торгов.
type BiddConditions struct {
	BiddStartTime  DateTime `json:"biddStartTime"`
	BiddEndTime    DateTime `json:"biddEndTime"`
	BiddReviewDate Date     `json:"biddReviewDate"`
	StartDate      DateTime `json:"startDate"`
}

func (b *BiddConditions) validate(path string) error {
	if b.BiddStartTime.IsZero() {
		return missingField(path, "biddStartTime")
	}
	if err := b.BiddStartTime.parse(); err != nil {
		return invalidField(path, "biddStartTime", err)
	}
	if b.BiddEndTime.IsZero() {
		return missingField(path, "biddEndTime")
	}
	if err := b.BiddEndTime.parse(); err != nil {
		return invalidField(path, "biddEndTime", err)
	}
	if !b.BiddReviewDate.IsZero() {
		if err := b.BiddReviewDate.parse(); err != nil {
			return invalidField(path, "biddReviewDate", err)
		}
	}
	if !b.StartDate.IsZero() {
		if err := b.StartDate.parse(); err != nil {
			return invalidField(path, "startDate", err)
		}
	}
	return nil
}

// ChangeInfo - сведения об изменении извещения.
type ChangeInfo struct {
	ChangeReasonText string   `json:"changeReasonText"`
	ChangeReasonRef  CodeName `json:"changeReasonRef"`
}

func (c *ChangeInfo) validate(path string) error {
	return c.ChangeReasonRef.validate(joinPath(path, "changeReasonRef"))
}

// Notice - извещение о проведении торгов.
type Notice struct {
	SchemeVersion     string          `json:"schemeVersion"`
	ID                string          `json:"id"`
	RootID            string          `json:"rootId"`
	Version           int             `json:"version"`
	CommonInfo        CommonInfo      `json:"commonInfo"`
	BidderOrg         BidderOrg       `json:"bidderOrg"`
	RightHolderInfo   RightHolderInfo `json:"rightHolderInfo"`
	Lots              []Lot           `json:"lots"`
	BiddConditions    BiddConditions  `json:"biddConditions"`
	ChangeInfo        *ChangeInfo     `json:"changeInfo"`
	TimeZone          CodeName        `json:"timeZone"`
	AdditionalDetails []CodeNameValue `json:"additionalDetails"`
	SignedData        SignedData      `json:"signedData"`
	Docs              []Doc           `json:"docs"`
}

func (n *Notice) validate(path string) error {
	if n.SchemeVersion == "" {
		return missingField(path, "schemeVersion")
	}
	if n.ID == "" {
		return missingField(path, "id")
	}
	if n.RootID == "" {
		return missingField(path, "rootId")
	}
	if n.Version < 1 {
		return invalidField(path, "version", fmt.Errorf("version must be positive, got %d", n.Version))
	}
	if err := n.CommonInfo.validate(joinPath(path, "commonInfo")); err != nil {
		return err
	}
	if err := n.BidderOrg.validate(joinPath(path, "bidderOrg")); err != nil {
		return err
	}
	if err := n.RightHolderInfo.validate(joinPath(path, "rightHolderInfo")); err != nil {
		return err
	}
	if n.Lots == nil {
		n.Lots = []Lot{}
	}
	seen := make(map[int]bool, len(n.Lots))
	for i := range n.Lots {
		lotPath := indexPath(joinPath(path, "lots"), i)
		if err := n.Lots[i].validate(lotPath); err != nil {
			return err
		}
		if seen[n.Lots[i].LotNumber] {
			return invalidField(lotPath, "lotNumber", fmt.Errorf("duplicate lot number %d", n.Lots[i].LotNumber))
		}
		seen[n.Lots[i].LotNumber] = true
	}
	if err := n.BiddConditions.validate(joinPath(path, "biddConditions")); err != nil {
		return err
	}
	if n.ChangeInfo != nil {
		if err := n.ChangeInfo.validate(joinPath(path, "changeInfo")); err != nil {
			return err
		}
	}
	if err := n.TimeZone.validate(joinPath(path, "timeZone")); err != nil {
		return err
	}
	if n.AdditionalDetails == nil {
		n.AdditionalDetails = []CodeNameValue{}
	}
	for i := range n.AdditionalDetails {
		if err := n.AdditionalDetails[i].validate(indexPath(joinPath(path, "additionalDetails"), i)); err != nil {
			return err
		}
	}
	if err := n.SignedData.validate(joinPath(path, "signedData")); err != nil {
		return err
	}
	if n.Docs == nil {
		n.Docs = []Doc{}
	}
	for i := range n.Docs {
		if err := n.Docs[i].validate(indexPath(joinPath(path, "docs"), i)); err != nil {
			return err
		}
	}
	return nil
}

// Number возвращает номер извещения.
func (n *Notice) Number() string {
	return n.CommonInfo.NoticeNumber
}

// ProcedureName возвращает наименование процедуры торгов.
func (n *Notice) ProcedureName() string {
	return n.CommonInfo.ProcedureName
}

// BiddEndTime возвращает время окончания приёма заявок.
func (n *Notice) BiddEndTime() time.Time {
	return n.BiddConditions.BiddEndTime.Time()
}

// LinkBuilder строит публичные ссылки на извещения и лоты.
// Шаблоны задаются конфигурацией при создании, глобального состояния нет.
type LinkBuilder struct {
	NoticeURL string
	LotURL    string
}

// NoticeLink возвращает публичную ссылку на извещение.
func (b LinkBuilder) NoticeLink(n *Notice) string {
	return b.NoticeURL + n.Number()
}

// LotLink возвращает публичную ссылку на лот извещения. Номер лота
// обязан попадать в диапазон [1:len(lots)], иначе возвращается
// LotRangeError.
func (b LinkBuilder) LotLink(n *Notice, lotNumber int) (string, error) {
	if lotNumber < 1 || lotNumber > len(n.Lots) {
		return "", &LotRangeError{Requested: lotNumber, Max: len(n.Lots)}
	}
	return fmt.Sprintf("%s%s_%d", b.LotURL, n.Number(), lotNumber), nil
}
