package models

// StopCommonInfo - общие сведения извещения о приостановке торгов.
// В отличие от отмены приостановка относится к конкретному лоту.
type StopCommonInfo struct {
	NoticeNumber string   `json:"noticeNumber"`
	LotNumber    int      `json:"lotNumber"`
	PublishDate  DateTime `json:"publishDate"`
	Href         string   `json:"href"`
}

func (c *StopCommonInfo) validate(path string) error {
	if c.NoticeNumber == "" {
		return missingField(path, "noticeNumber")
	}
	if c.LotNumber < 1 {
		return missingField(path, "lotNumber")
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

// NoticeStop - извещение о приостановке торгов.
type NoticeStop struct {
	SchemeVersion string         `json:"schemeVersion"`
	ID            string         `json:"id"`
	CommonInfo    StopCommonInfo `json:"commonInfo"`
	StopReason    CodeName       `json:"stopReason"`
	DecisionDate  Date           `json:"decisionDate"`
	AddInfo       string         `json:"addInfo"`
	Timezone      CodeName       `json:"timezone"`
	SignedData    SignedData     `json:"signedData"`
	Docs          []Doc          `json:"docs"`
	Attachments   []Attachment   `json:"attachments"`
}

func (n *NoticeStop) validate(path string) error {
	if n.SchemeVersion == "" {
		return missingField(path, "schemeVersion")
	}
	if n.ID == "" {
		return missingField(path, "id")
	}
	if err := n.CommonInfo.validate(joinPath(path, "commonInfo")); err != nil {
		return err
	}
	if err := n.StopReason.validate(joinPath(path, "stopReason")); err != nil {
		return err
	}
	if n.DecisionDate.IsZero() {
		return missingField(path, "decisionDate")
	}
	if err := n.DecisionDate.parse(); err != nil {
		return invalidField(path, "decisionDate", err)
	}
	if n.AddInfo == "" {
		return missingField(path, "addInfo")
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
	if n.Attachments == nil {
		n.Attachments = []Attachment{}
	}
	for i := range n.Attachments {
		if err := n.Attachments[i].validate(indexPath(joinPath(path, "attachments"), i)); err != nil {
			return err
		}
	}
	return nil
}

// Number возвращает номер приостановленного извещения.
func (n *NoticeStop) Number() string {
	return n.CommonInfo.NoticeNumber
}
