package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dayListPayload = `{
  "listObjects": [
    {
      "bidderOrgCode": "1300100",
      "rightHolderCode": "1300100",
      "documentType": "notice",
      "regNum": "21000013010000000042",
      "publishDate": "2024-03-12T17:45:00Z",
      "biddTypeCode": "178FZ",
      "ownershipFormsCode": "MUN",
      "subjectRightHolderCode": "13",
      "href": "https://torgi.gov.ru/files/notice-42.json"
    },
    {
      "bidderOrgCode": "1300100",
      "rightHolderCode": "1300100",
      "documentType": "noticeCancel",
      "regNum": "21000013010000000099",
      "publishDate": "2024-03-12T18:00:00Z",
      "biddTypeCode": "178FZ",
      "ownershipFormsCode": "MUN",
      "subjectRightHolderCode": "13",
      "href": "https://torgi.gov.ru/files/cancel-99.json"
    }
  ]
}`

func TestParseDayList(t *testing.T) {
	dayList, err := ParseDayList([]byte(dayListPayload))
	require.NoError(t, err)
	require.Len(t, dayList.ListObjects, 2)

	notices := dayList.Filtered("notice")
	require.Len(t, notices, 1)
	assert.Equal(t, "21000013010000000042", notices[0].RegNum)

	assert.Empty(t, dayList.Filtered("noticeStop"))
}

func TestParseDayList_MissingHref(t *testing.T) {
	payload := `{"listObjects": [{"documentType": "notice", "regNum": "1"}]}`
	_, err := ParseDayList([]byte(payload))
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "listObjects[0].href", vErr.Path)
}

const metaPayload = `{
  "standardversion": "5.0",
  "identifier": "7710568760-notice",
  "title": "Извещения о торгах",
  "description": "Выгрузка извещений",
  "creator": "Федеральное казначейство",
  "created": "20230101",
  "modified": "20240312T0300",
  "subject": "torgi",
  "format": "json",
  "data": [
    {"source": "https://torgi.gov.ru/files/20240310.json", "created": "20240310T0300", "provenance": "daily", "valid": "20240410", "structure": "20230101"},
    {"source": "https://torgi.gov.ru/files/20240312.json", "created": "20240312T0300", "provenance": "daily", "valid": "20240412", "structure": "20230101"},
    {"source": "https://torgi.gov.ru/files/20240311.json", "created": "20240311T0300", "provenance": "daily", "valid": "20240411", "structure": "20230101"}
  ],
  "structure": [
    {"source": "https://torgi.gov.ru/files/structure.json", "created": "20230101"}
  ],
  "publisher": {"name": "Казначейство России", "phone": "+7 (495) 000-00-00", "mbox": "od@roskazna.ru"}
}`

func TestParseExportMeta_SortedData(t *testing.T) {
	meta, err := ParseExportMeta([]byte(metaPayload))
	require.NoError(t, err)
	require.Len(t, meta.Data, 3)

	sorted := meta.SortedData()
	require.Len(t, sorted, 3)
	assert.Equal(t, "https://torgi.gov.ru/files/20240312.json", sorted[0].Source)
	assert.Equal(t, "https://torgi.gov.ru/files/20240310.json", sorted[2].Source)

	// исходный порядок не меняется
	assert.Equal(t, "https://torgi.gov.ru/files/20240310.json", meta.Data[0].Source)
}
