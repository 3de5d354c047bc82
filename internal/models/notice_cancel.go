package models

// CancelCommonInfo - общие сведения извещения об отмене торгов.
type CancelCommonInfo struct {
	NoticeNumber string   `json:"noticeNumber"`
	PublishDate  DateTime `json:"publishDate"`
	Href         string   `json:"href"`
}

func (c *CancelCommonInfo) validate(path string) error {
	if c.NoticeNumber == "" {
		return missingField(path, "noticeNumber")
	}
	if c.PublishDate.IsZero() {
		return missingField(path, "publishDate")
	}
	if err := c.PublishDate.parse(); err != nil {
		return invalidField(path, "publishDate", err)
	}
	if c.Href == "" {
		return missingField(path, "href")
	}
	return nil
}

// NoticeCancel - извещение об отмене торгов.
type NoticeCancel struct {
	SchemeVersion string           `json:"schemeVersion"`
	ID            string           `json:"id"`
	CommonInfo    CancelCommonInfo `json:"commonInfo"`
	CancelReason  CodeName         `json:"cancelReason"`
	DecisionDate  Date             `json:"decisionDate"`
	Timezone      CodeName         `json:"timezone"`
	SignedData    SignedData       `json:"signedData"`
	Docs          []Doc            `json:"docs"`
}

func (n *NoticeCancel) validate(path string) error {
	if n.SchemeVersion == "" {
		return missingField(path, "schemeVersion")
	}
	if n.ID == "" {
		return missingField(path, "id")
	}
	if err := n.CommonInfo.validate(joinPath(path, "commonInfo")); err != nil {
		return err
	}
	if err := n.CancelReason.validate(joinPath(path, "cancelReason")); err != nil {
		return err
	}
	if n.DecisionDate.IsZero() {
		return missingField(path, "decisionDate")
	}
	if err := n.DecisionDate.parse(); err != nil {
		return invalidField(path, "decisionDate", err)
	}
	if err := n.Timezone.validate(joinPath(path, "timezone")); err != nil {
		return err
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

// Number возвращает номер отменённого извещения.
func (n *NoticeCancel) Number() string {
	return n.CommonInfo.NoticeNumber
}
