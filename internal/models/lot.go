package models

import (
	"fmt"
	"strings"
)

// AdditionalDetail - дополнительный атрибут лота. Атрибуты хранятся
// упорядоченным списком и ищутся по префиксу кода, порядок значим.
type AdditionalDetail struct {
	Code  string       `json:"code"`
	Name  string       `json:"name"`
	Value VariantValue `json:"value"`
}

func (d *AdditionalDetail) validate(path string) error {
	if d.Code == "" {
		return missingField(path, "code")
	}
	if err := d.Value.classify(); err != nil {
		return invalidField(path, "value", err)
	}
	return nil
}

// Characteristic - характеристика объекта торгов.
type Characteristic struct {
	Code                string       `json:"code"`
	Name                string       `json:"name"`
	CharacteristicValue VariantValue `json:"characteristicValue"`
	OKEI                *CodeName    `json:"OKEI"`
}

func (c *Characteristic) validate(path string) error {
	if c.Code == "" {
		return missingField(path, "code")
	}
	if c.Name == "" {
		return missingField(path, "name")
	}
	if err := c.CharacteristicValue.classify(); err != nil {
		return invalidField(path, "characteristicValue", err)
	}
	if c.OKEI != nil {
		return c.OKEI.validate(joinPath(path, "OKEI"))
	}
	return nil
}

// BiddingObjectInfo - сведения об объекте торгов.
type BiddingObjectInfo struct {
	SubjectRF       *CodeName        `json:"subjectRF"`
	EstateAddress   string           `json:"estateAddress"`
	Category        CodeName         `json:"category"`
	IsCompound      *bool            `json:"isCompound"`
	OwnershipForms  CodeName         `json:"ownershipForms"`
	Characteristics []Characteristic `json:"characteristics"`
}

func (b *BiddingObjectInfo) validate(path string) error {
	if b.SubjectRF != nil {
		if err := b.SubjectRF.validate(joinPath(path, "subjectRF")); err != nil {
			return err
		}
	}
	if err := b.Category.validate(joinPath(path, "category")); err != nil {
		return err
	}
	if err := b.OwnershipForms.validate(joinPath(path, "ownershipForms")); err != nil {
		return err
	}
	if b.Characteristics == nil {
		b.Characteristics = []Characteristic{}
	}
	for i := range b.Characteristics {
		if err := b.Characteristics[i].validate(indexPath(joinPath(path, "characteristics"), i)); err != nil {
			return err
		}
	}
	return nil
}

// Recipient - получатель платежа.
type Recipient struct {
	Name string `json:"name"`
	INN  string `json:"INN"`
	KPP  string `json:"KPP"`
}

func (r *Recipient) validate(path string) error {
	if r.Name == "" {
		return missingField(path, "name")
	}
	if r.INN == "" {
		return missingField(path, "INN")
	}
	if r.KPP == "" {
		return missingField(path, "KPP")
	}
	return nil
}

// AccountsRequisites - платёжные реквизиты лота.
type AccountsRequisites struct {
	ElectronicPlatform bool      `json:"electronicPlatform"`
	BankName           string    `json:"bankName"`
	BIK                string    `json:"BIK"`
	PayAccount         string    `json:"payAccount"`
	CorAccount         string    `json:"corAccount"`
	TreasuryAccount    string    `json:"treasuryAccount"`
	PurposePayment     string    `json:"purposePayment"`
	Recipient          Recipient `json:"recipient"`
}

func (a *AccountsRequisites) validate(path string) error {
	if a.BankName == "" {
		return missingField(path, "bankName")
	}
	if a.BIK == "" {
		return missingField(path, "BIK")
	}
	if a.PayAccount == "" {
		return missingField(path, "payAccount")
	}
	if a.CorAccount == "" {
		return missingField(path, "corAccount")
	}
	return a.Recipient.validate(joinPath(path, "recipient"))
}

// Lot - лот извещения о торгах.
type Lot struct {
	LotNumber           int                 `json:"lotNumber"`
	LotStatus           string              `json:"lotStatus"`
	LotName             string              `json:"lotName"`
	LotDescription      string              `json:"lotDescription"`
	PrivatizationReason string              `json:"privatizationReason"`
	PriceMin            *float64            `json:"priceMin"`
	PriceStep           *float64            `json:"priceStep"`
	Deposit             *float64            `json:"deposit"`
	Currency            *CodeName           `json:"currency"`
	AccountsRequisites  *AccountsRequisites `json:"accountsRequisites"`
	BiddingObjectInfo   BiddingObjectInfo   `json:"biddingObjectInfo"`
	AdditionalDetails   []AdditionalDetail  `json:"additionalDetails"`
	BiddingFeatures     []CodeNameValue     `json:"biddingFeatures"`
	Docs                []Doc               `json:"docs"`
	ImageIDs            []ImageID           `json:"imageIds"`
}

func (l *Lot) validate(path string) error {
	if l.LotNumber < 1 {
		return invalidField(path, "lotNumber", fmt.Errorf("lot number must be positive, got %d", l.LotNumber))
	}
	if l.LotStatus == "" {
		return missingField(path, "lotStatus")
	}
	if l.LotName == "" {
		return missingField(path, "lotName")
	}
	if l.LotDescription == "" {
		return missingField(path, "lotDescription")
	}
	if l.Currency != nil {
		if err := l.Currency.validate(joinPath(path, "currency")); err != nil {
			return err
		}
	}
	if l.AccountsRequisites != nil {
		if err := l.AccountsRequisites.validate(joinPath(path, "accountsRequisites")); err != nil {
			return err
		}
	}
	if err := l.BiddingObjectInfo.validate(joinPath(path, "biddingObjectInfo")); err != nil {
		return err
	}
	if l.AdditionalDetails == nil {
		l.AdditionalDetails = []AdditionalDetail{}
	}
	for i := range l.AdditionalDetails {
		if err := l.AdditionalDetails[i].validate(indexPath(joinPath(path, "additionalDetails"), i)); err != nil {
			return err
		}
	}
	if l.BiddingFeatures == nil {
		l.BiddingFeatures = []CodeNameValue{}
	}
	for i := range l.BiddingFeatures {
		if err := l.BiddingFeatures[i].validate(indexPath(joinPath(path, "biddingFeatures"), i)); err != nil {
			return err
		}
	}
	if l.Docs == nil {
		l.Docs = []Doc{}
	}
	for i := range l.Docs {
		if err := l.Docs[i].validate(indexPath(joinPath(path, "docs"), i)); err != nil {
			return err
		}
	}
	if l.ImageIDs == nil {
		l.ImageIDs = []ImageID{}
	}
	for i := range l.ImageIDs {
		if err := l.ImageIDs[i].validate(indexPath(joinPath(path, "imageIds"), i)); err != nil {
			return err
		}
	}
	return nil
}

// Region возвращает пару (код, наименование) субъекта РФ, если он указан.
func (l *Lot) Region() (CodeName, bool) {
	if l.BiddingObjectInfo.SubjectRF == nil {
		return CodeName{}, false
	}
	return *l.BiddingObjectInfo.SubjectRF, true
}

// Address возвращает адрес объекта торгов.
func (l *Lot) Address() string {
	return l.BiddingObjectInfo.EstateAddress
}

// FindAdditionalDetailValue возвращает значение первого атрибута, код
// которого начинается с prefix. Список просматривается в исходном
// порядке, берётся первое совпадение.
func (l *Lot) FindAdditionalDetailValue(prefix string) (VariantValue, bool) {
	for i := range l.AdditionalDetails {
		if strings.HasPrefix(l.AdditionalDetails[i].Code, prefix) {
			return l.AdditionalDetails[i].Value, true
		}
	}
	return VariantValue{}, false
}

// rentPaymentPrefix - фиксированная фраза перед периодом арендного
// платежа в наименовании квалификатора минимальной цены.
const rentPaymentPrefix = "Арендный платеж "

// PriceQualifier возвращает наименование квалификатора минимальной цены
// из атрибута DA_priceMinFor.
func (l *Lot) PriceQualifier() (string, bool) {
	value, ok := l.FindAdditionalDetailValue("DA_priceMinFor")
	if !ok {
		return "", false
	}
	ref, ok := value.AsCodeName()
	if !ok {
		return "", false
	}
	return ref.Name, true
}

// PriceQualifierShort возвращает краткую форму квалификатора:
// "Арендный платеж за год" - "за год". Наименование без ожидаемой
// фразы возвращается как есть.
func (l *Lot) PriceQualifierShort() (string, bool) {
	qualifier, ok := l.PriceQualifier()
	if !ok {
		return "", false
	}
	if rest, found := strings.CutPrefix(qualifier, rentPaymentPrefix); found {
		return rest, true
	}
	return qualifier, true
}

// PriceMinDisplay возвращает минимальную цену с кратким квалификатором
// для отображения.
func (l *Lot) PriceMinDisplay() (string, bool) {
	if l.PriceMin == nil {
		return "", false
	}
	short, ok := l.PriceQualifierShort()
	if !ok {
		return fmt.Sprintf("%v", *l.PriceMin), true
	}
	return fmt.Sprintf("%v (%s)", *l.PriceMin, short), true
}

// ContractYears возвращает срок договора в годах из атрибута
// DA_contractYears.
func (l *Lot) ContractYears() (VariantValue, bool) {
	return l.FindAdditionalDetailValue("DA_contractYears")
}

// ContractMonths возвращает срок договора в месяцах из атрибута
// DA_contractMonths.
func (l *Lot) ContractMonths() (VariantValue, bool) {
	return l.FindAdditionalDetailValue("DA_contractMonths")
}

// ContractDate возвращает дату договора из атрибута DA_contractDate.
func (l *Lot) ContractDate() (VariantValue, bool) {
	return l.FindAdditionalDetailValue("DA_contractDate")
}
