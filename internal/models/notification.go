package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DocumentKind - вид документа внутри конверта выгрузки.
type DocumentKind string

const (
	KindNotice DocumentKind = "notice"       // Извещение о торгах
	KindCancel DocumentKind = "noticeCancel" // Отмена торгов
	KindStop   DocumentKind = "noticeStop"   // Приостановка торгов
)

// StructuredObject содержит документ выгрузки. Три поля взаимно
// исключающие: заполненным обязано быть ровно одно.
type StructuredObject struct {
	Notice       *Notice       `json:"notice"`
	NoticeCancel *NoticeCancel `json:"noticeCancel"`
	NoticeStop   *NoticeStop   `json:"noticeStop"`
}

// ExportObject - объект выгрузки: документ плюс вложения верхнего уровня.
type ExportObject struct {
	StructuredObject StructuredObject `json:"structuredObject"`
	Attachments      []Attachment     `json:"attachments"`
}

// Notification - конверт выгрузки уведомлений о торгах.
// После успешного разбора документ неизменяем.
type Notification struct {
	ExportObject ExportObject `json:"exportObject"`
}

// ParseNotification разбирает и валидирует конверт выгрузки. Первая же
// ошибка валидации прерывает разбор всего документа: частично
// собранных документов не бывает, некорректная выгрузка отбрасывается
// целиком.
func ParseNotification(data []byte) (*Notification, error) {
	var n Notification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, &ValidationError{Path: "exportObject", Reason: "malformed payload", Err: err}
	}
	if err := n.validate(); err != nil {
		return nil, err
	}
	return &n, nil
}

func (n *Notification) validate() error {
	const path = "exportObject.structuredObject"

	so := &n.ExportObject.StructuredObject
	populated := 0
	if so.Notice != nil {
		populated++
	}
	if so.NoticeCancel != nil {
		populated++
	}
	if so.NoticeStop != nil {
		populated++
	}
	if populated != 1 {
		return &ValidationError{
			Path:   path,
			Reason: fmt.Sprintf("%d document variants populated", populated),
			Err:    ErrInvalidEnvelopeVariant,
		}
	}

	switch {
	case so.Notice != nil:
		if err := so.Notice.validate(joinPath(path, "notice")); err != nil {
			return err
		}
	case so.NoticeCancel != nil:
		if err := so.NoticeCancel.validate(joinPath(path, "noticeCancel")); err != nil {
			return err
		}
	case so.NoticeStop != nil:
		if err := so.NoticeStop.validate(joinPath(path, "noticeStop")); err != nil {
			return err
		}
	}

	if n.ExportObject.Attachments == nil {
		n.ExportObject.Attachments = []Attachment{}
	}
	for i := range n.ExportObject.Attachments {
		if err := n.ExportObject.Attachments[i].validate(indexPath("exportObject.attachments", i)); err != nil {
			return err
		}
	}
	return nil
}

// Kind возвращает вид документа в конверте.
func (n *Notification) Kind() DocumentKind {
	so := &n.ExportObject.StructuredObject
	switch {
	case so.NoticeCancel != nil:
		return KindCancel
	case so.NoticeStop != nil:
		return KindStop
	default:
		return KindNotice
	}
}

// Notice возвращает извещение о торгах, если конверт содержит его.
func (n *Notification) Notice() *Notice {
	return n.ExportObject.StructuredObject.Notice
}

// Cancel возвращает извещение об отмене, если конверт содержит его.
func (n *Notification) Cancel() *NoticeCancel {
	return n.ExportObject.StructuredObject.NoticeCancel
}

// Stop возвращает извещение о приостановке, если конверт содержит его.
func (n *Notification) Stop() *NoticeStop {
	return n.ExportObject.StructuredObject.NoticeStop
}

// NoticeNumber возвращает номер извещения независимо от вида документа.
func (n *Notification) NoticeNumber() string {
	so := &n.ExportObject.StructuredObject
	switch {
	case so.Notice != nil:
		return so.Notice.Number()
	case so.NoticeCancel != nil:
		return so.NoticeCancel.Number()
	case so.NoticeStop != nil:
		return so.NoticeStop.Number()
	}
	return ""
}

// PublishDate возвращает дату публикации документа независимо от вида.
func (n *Notification) PublishDate() time.Time {
	so := &n.ExportObject.StructuredObject
	switch {
	case so.Notice != nil:
		return so.Notice.CommonInfo.PublishDate.Time()
	case so.NoticeCancel != nil:
		return so.NoticeCancel.CommonInfo.PublishDate.Time()
	case so.NoticeStop != nil:
		return so.NoticeStop.CommonInfo.PublishDate.Time()
	}
	return time.Time{}
}

// Attachments возвращает вложения конверта. Для приостановки торгов
// вложения могут лежать внутри самого документа: оба источника
// объединяются за одним аксессором.
func (n *Notification) Attachments() []Attachment {
	attachments := n.ExportObject.Attachments
	if stop := n.ExportObject.StructuredObject.NoticeStop; stop != nil && len(stop.Attachments) > 0 {
		merged := make([]Attachment, 0, len(attachments)+len(stop.Attachments))
		merged = append(merged, attachments...)
		merged = append(merged, stop.Attachments...)
		return merged
	}
	return attachments
}
